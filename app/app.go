package app

import (
	"log"
	"os"
	"os/signal"
	"procurement-management-api/internal/controller"
	"procurement-management-api/internal/repo"
	"procurement-management-api/internal/service"
	"procurement-management-api/pkg/http_server"
	"procurement-management-api/pkg/postgres"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/labstack/echo"
)

func runMigrations(postgresDB *postgres.Postgres, databaseName string) {
	driver, err := pgmigrate.WithInstance(postgresDB.Database, &pgmigrate.Config{DatabaseName: databaseName})
	if err != nil {
		log.Fatal(err)
	}

	migrations, err := migrate.NewWithDatabaseInstance("file://migrations", databaseName, driver)
	if err != nil {
		log.Fatal(err)
	}

	if err := migrations.Up(); err != nil {
		if err == migrate.ErrNoChange {
			log.Println("no change made by migration scripts")
		} else {
			log.Fatal(err)
		}
	}
}

func Run() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on the environment")
	}

	serverAddressEnv := os.Getenv("SERVER_ADDRESS")
	dbConnEnv := os.Getenv("POSTGRES_CONN")
	databaseEnv := os.Getenv("POSTGRES_DATABASE")

	log.Println("Connecting database...")
	postgresDB, err := postgres.NewDB(dbConnEnv)
	if err != nil {
		log.Fatal("Error occurred while connecting to db: ", err)
	}
	defer postgresDB.Close()

	log.Println("Running migrations...")
	runMigrations(postgresDB, databaseEnv)

	repositories := repo.NewRepositories(postgresDB)
	services, err := service.NewServices(repositories)
	if err != nil {
		log.Fatal("Error occurred while building services: ", err)
	}
	handler := echo.New()

	log.Println("Setup routes...")
	controller.SetupRoutesHandlers(handler, services)

	log.Println("Starting server...")
	httpServer := http_server.New(handler, serverAddressEnv)

	log.Println("Ready to process requests...")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Println("Got signal: " + s.String())
	case err = <-httpServer.Notify():
		log.Fatal("Notify error: ", err)
	}

	log.Println("Shutting down...")
	err = httpServer.Shutdown()
	if err != nil {
		log.Fatal("Shutdown error: ", err)
	} else {
		log.Println("Successful shutdown")
	}
}
