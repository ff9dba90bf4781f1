package controller

import (
	"net/http"
	"procurement-management-api/internal/entity"
	"procurement-management-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
	"github.com/shopspring/decimal"
)

type tradeRoutesHandler struct {
	tradeService service.Trade
	validate     *validator.Validate
}

func newTradeRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *tradeRoutesHandler {
	h := &tradeRoutesHandler{tradeService: services.Trade, validate: v}

	outer.POST("/quotes/new", h.PostQuote)
	outer.GET("/quotes/:quoteId/price", h.GetQuotePrice)
	outer.POST("/bids/new", h.PostBid)

	return h
}

type postQuoteInput struct {
	ItemId          string  `json:"itemId" validate:"required,max=100"`
	SupplierId      string  `json:"supplierId" validate:"required,max=100"`
	BasePrice       string  `json:"basePrice" validate:"required"`
	Freight         string  `json:"freight"`
	AdditionalCosts string  `json:"additionalCosts"`
	TaxPct          string  `json:"taxPct"`
	MarginPct       string  `json:"marginPct" validate:"required"`
	Notes           string  `json:"notes" validate:"max=1000"`
	Link            *string `json:"link" validate:"omitempty,max=500"`
}

// /quotes/new
func (h *tradeRoutesHandler) PostQuote(c echo.Context) error {
	var input postQuoteInput
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

	model := &entity.CreateQuoteInput{
		ItemId: input.ItemId, SupplierId: input.SupplierId,
		Notes: input.Notes, Link: input.Link,
	}

	amounts := []struct {
		name  string
		raw   string
		field *decimal.Decimal
	}{
		{"basePrice", input.BasePrice, &model.BasePrice},
		{"freight", input.Freight, &model.Freight},
		{"additionalCosts", input.AdditionalCosts, &model.AdditionalCosts},
		{"taxPct", input.TaxPct, &model.TaxPct},
		{"marginPct", input.MarginPct, &model.MarginPct},
	}
	for _, a := range amounts {
		if a.raw == "" {
			continue
		}

		value, err := decimal.NewFromString(a.raw)
		if err != nil {
			if e := c.JSON(http.StatusBadRequest, errorResponse{"'" + a.name + "': should be a number"}); e != nil {
				return e
			}

			return err
		}
		*a.field = value
	}

	quote, err := h.tradeService.CreateQuote(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, quote); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrItemNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no item with given id"}); e != nil {
			return e
		}
	case service.ErrSupplierNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no supplier with given id"}); e != nil {
			return e
		}
	case service.ErrBasePriceNotPositive:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Base price must be positive"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{err.Error()}); e != nil {
			return e
		}
	}

	return err
}

// /quotes/:quoteId/price
func (h *tradeRoutesHandler) GetQuotePrice(c echo.Context) error {
	price, err := h.tradeService.GetQuoteSalePrice(c.Request().Context(), c.Param("quoteId"))
	if err == nil {
		if e := c.JSON(http.StatusOK, map[string]string{"salePrice": price}); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrQuoteNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no quote with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{err.Error()}); e != nil {
			return e
		}
	}

	return err
}

type postBidInput struct {
	ItemId    string  `json:"itemId" validate:"required,max=100"`
	BiddingId string  `json:"biddingId" validate:"required,max=100"`
	BidderId  *string `json:"bidderId" validate:"omitempty,max=100"`
	Price     string  `json:"price" validate:"required"`
	Notes     string  `json:"notes" validate:"max=1000"`
}

// /bids/new
func (h *tradeRoutesHandler) PostBid(c echo.Context) error {
	var input postBidInput
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

	price, err := decimal.NewFromString(input.Price)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"'price': should be a number"}); e != nil {
			return e
		}

		return err
	}

	model := &entity.CreateBidInput{
		ItemId: input.ItemId, BiddingId: input.BiddingId, BidderId: input.BidderId,
		Price: price, Notes: input.Notes,
	}

	bid, err := h.tradeService.CreateBid(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, bid); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrItemNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no item with given id"}); e != nil {
			return e
		}
	case service.ErrBidderNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no bidder with given id"}); e != nil {
			return e
		}
	case service.ErrBidBiddingMismatch:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Item does not belong to the given bidding"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{err.Error()}); e != nil {
			return e
		}
	}

	return err
}
