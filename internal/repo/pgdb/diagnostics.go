package pgdb

import (
	"procurement-management-api/pkg/postgres"
)

type DiagnosticsRepo struct {
	*postgres.Postgres
}

func NewDiagnosticsRepo(pgdb *postgres.Postgres) *DiagnosticsRepo {
	return &DiagnosticsRepo{pgdb}
}

func (dr *DiagnosticsRepo) Ping() error {
	if err := dr.Database.Ping(); err != nil {
		return err
	}

	return nil
}
