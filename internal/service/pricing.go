package service

import (
	"procurement-management-api/internal/entity"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CalculateSalePrice derives the sellable price from a cost quote with the
// additive-compounding formula: tax is applied on the cost subtotal, margin
// on the taxed price. All arithmetic stays in fixed-point decimal.
func CalculateSalePrice(base, freight, additionalCosts, taxPct, marginPct decimal.Decimal) decimal.Decimal {
	costSubtotal := base.Add(freight).Add(additionalCosts)
	priceWithTax := costSubtotal.Add(costSubtotal.Mul(taxPct).Div(hundred))
	finalPrice := priceWithTax.Add(priceWithTax.Mul(marginPct).Div(hundred))

	return finalPrice.Round(2)
}

func QuoteSalePrice(quote *entity.Quote) decimal.Decimal {
	return CalculateSalePrice(quote.BasePrice, quote.Freight, quote.AdditionalCosts,
		quote.TaxPct, quote.MarginPct)
}

// DecimalOrZero parses leniently for pricing inputs: a blank or unparseable
// value computes as zero instead of propagating a parse failure.
func DecimalOrZero(v entity.Value) decimal.Decimal {
	d, err := v.Decimal()
	if err != nil {
		return decimal.Zero
	}

	return d
}
