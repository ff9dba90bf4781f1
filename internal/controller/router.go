package controller

import (
	"procurement-management-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

func SetupRoutesHandlers(handler *echo.Echo, services *service.Services) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	api := handler.Group("/api")
	newDiagnosticRoutesHandler(api, services)
	newBiddingRoutesHandler(api, services, validate)
	newPartyRoutesHandler(api, services, validate)
	newTradeRoutesHandler(api, services, validate)
	newGridRoutesHandler(api, services, validate)
}
