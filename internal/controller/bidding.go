package controller

import (
	"net/http"
	"procurement-management-api/internal/common"
	"procurement-management-api/internal/entity"
	"procurement-management-api/internal/service"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
	"github.com/shopspring/decimal"
)

type biddingRoutesHandler struct {
	biddingService service.Bidding
	validate       *validator.Validate
}

func newBiddingRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *biddingRoutesHandler {
	h := &biddingRoutesHandler{biddingService: services.Bidding, validate: v}

	outer.GET("/biddings", h.GetBiddings)
	outer.POST("/biddings/new", h.PostBidding)
	outer.GET("/biddings/:biddingId/items", h.GetBiddingItems)
	outer.POST("/items/new", h.PostItem)

	return h
}

type getBiddingsInput struct {
	Limit  int32 `query:"limit" validate:"gte=0,lte=50"`
	Offset int32 `query:"offset" validate:"gte=0"`
}

// /biddings
func (h *biddingRoutesHandler) GetBiddings(c echo.Context) error {
	input := getBiddingsInput{Limit: defaultLimit, Offset: defaultOffset}
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

	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	biddings, err := h.biddingService.GetBiddings(c.Request().Context(), pg)
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{err.Error()}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, biddings); e != nil {
		return e
	}

	return nil
}

type postBiddingInput struct {
	City          string `json:"city" validate:"required,max=100"`
	Date          string `json:"date" validate:"required"`
	Mode          string `json:"mode" validate:"required,oneof=InPerson Electronic"`
	ProcessNumber string `json:"processNumber" validate:"required,max=100"`
}

// /biddings/new
func (h *biddingRoutesHandler) PostBidding(c echo.Context) error {
	var input postBiddingInput
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

	date, err := time.Parse(time.RFC3339, input.Date)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"'date': should be an RFC3339 timestamp"}); e != nil {
			return e
		}

		return err
	}

	model := &entity.CreateBiddingInput{
		City: input.City, Date: date, Mode: input.Mode, ProcessNumber: input.ProcessNumber,
	}

	bidding, err := h.biddingService.CreateBidding(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, bidding); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrUnknownBiddingMode:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Mode must be " + common.InPerson + " or " + common.Electronic}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{err.Error()}); e != nil {
			return e
		}
	}

	return err
}

// /biddings/:biddingId/items
func (h *biddingRoutesHandler) GetBiddingItems(c echo.Context) error {
	items, err := h.biddingService.GetBiddingItems(c.Request().Context(), c.Param("biddingId"))
	if err == nil {
		if e := c.JSON(http.StatusOK, items); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrBiddingNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no bidding with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{err.Error()}); e != nil {
			return e
		}
	}

	return err
}

type postItemInput struct {
	BiddingId   string `json:"biddingId" validate:"required,max=100"`
	Code        string `json:"code" validate:"required,max=50"`
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=1000"`
	Unit        string `json:"unit" validate:"max=50"`
	Quantity    string `json:"quantity" validate:"required"`
	Notes       string `json:"notes" validate:"max=1000"`
}

// /items/new
func (h *biddingRoutesHandler) PostItem(c echo.Context) error {
	var input postItemInput
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

	quantity, err := decimal.NewFromString(input.Quantity)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"'quantity': should be a number"}); e != nil {
			return e
		}

		return err
	}

	model := &entity.CreateItemInput{
		BiddingId: input.BiddingId, Code: input.Code, Name: input.Name,
		Description: input.Description, Unit: input.Unit, Quantity: quantity, Notes: input.Notes,
	}

	item, err := h.biddingService.CreateItem(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, item); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrBiddingNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no bidding with given id"}); e != nil {
			return e
		}
	case service.ErrQuantityNegative:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Quantity can't be negative"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{err.Error()}); e != nil {
			return e
		}
	}

	return err
}
