package controller

import (
	"fmt"
	"procurement-management-api/internal/common"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	defaultLimit  = 20
	defaultOffset = 0
)

type errorResponse struct {
	Reason string `json:"reason"`
}

// parseKindParam maps the :kind path segment onto an entity kind.
func parseKindParam(param string) (common.EntityKind, bool) {
	switch strings.ToLower(param) {
	case "biddings":
		return common.KindBidding, true
	case "items":
		return common.KindItem, true
	case "suppliers":
		return common.KindSupplier, true
	case "bidders":
		return common.KindBidder, true
	case "quotes":
		return common.KindQuote, true
	case "bids":
		return common.KindBid, true
	}

	return "", false
}

func getAllErrorMessages(err error) string {
	var builder strings.Builder
	for _, fe := range err.(validator.ValidationErrors) {
		message := fmt.Sprintf("'%s': %s\n", fe.Field(), getMessage(fe))
		builder.WriteString(message)
	}

	return builder.String()
}

func getMessage(fe validator.FieldError) string {
	s, i := "", int32(0)
	if fe.Type() == reflect.TypeOf(s) {
		return getMessageForString(fe)
	}

	if fe.Type() == reflect.TypeOf(i) {
		return getMessageForInt(fe)
	}

	if fe.Type() == reflect.TypeOf(0) {
		return getMessageForInt(fe)
	}

	return "Unknown error (2)"
}

func getMessageForInt(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "lte", "max":
		return "should be less or equal than " + fe.Param()
	case "gte", "min":
		return "should be greater or equal than " + fe.Param()
	}

	return "incorrect value passed"
}

func getMessageForString(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "lte", "max":
		return "length should be less or equal than " + fe.Param()
	case "gte", "min":
		return "length should be greater or equal than " + fe.Param()
	case "oneof":
		return "should have value in: " + fe.Param()
	}

	return "incorrect value passed"
}
