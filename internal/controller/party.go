package controller

import (
	"net/http"
	"procurement-management-api/internal/entity"
	"procurement-management-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type partyRoutesHandler struct {
	partyService service.Party
	validate     *validator.Validate
}

func newPartyRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *partyRoutesHandler {
	h := &partyRoutesHandler{partyService: services.Party, validate: v}

	outer.GET("/suppliers", h.GetSuppliers)
	outer.POST("/suppliers/new", h.PostSupplier)
	outer.GET("/bidders", h.GetBidders)
	outer.POST("/bidders/new", h.PostBidder)

	return h
}

type postPartyInput struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Website     *string `json:"website" validate:"omitempty,max=300"`
	Email       *string `json:"email" validate:"omitempty,email,max=200"`
	Phone       *string `json:"phone" validate:"omitempty,max=50"`
	Description string  `json:"description" validate:"max=1000"`
}

// /suppliers
func (h *partyRoutesHandler) GetSuppliers(c echo.Context) error {
	suppliers, err := h.partyService.GetSuppliers(c.Request().Context())
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{err.Error()}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, suppliers); e != nil {
		return e
	}

	return nil
}

// /suppliers/new
func (h *partyRoutesHandler) PostSupplier(c echo.Context) error {
	var input postPartyInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := &entity.CreateSupplierInput{
		Name: input.Name, Website: input.Website, Email: input.Email,
		Phone: input.Phone, Description: input.Description,
	}

	supplier, err := h.partyService.CreateSupplier(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, supplier); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrSupplierNameTaken:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"A supplier with this name already exists"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{err.Error()}); e != nil {
			return e
		}
	}

	return err
}

// /bidders
func (h *partyRoutesHandler) GetBidders(c echo.Context) error {
	bidders, err := h.partyService.GetBidders(c.Request().Context())
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{err.Error()}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, bidders); e != nil {
		return e
	}

	return nil
}

// /bidders/new
func (h *partyRoutesHandler) PostBidder(c echo.Context) error {
	var input postPartyInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := &entity.CreateBidderInput{
		Name: input.Name, Website: input.Website, Email: input.Email,
		Phone: input.Phone, Description: input.Description,
	}

	bidder, err := h.partyService.CreateBidder(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, bidder); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrBidderNameTaken:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"A bidder with this name already exists"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{err.Error()}); e != nil {
			return e
		}
	}

	return err
}
