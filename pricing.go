package magazyn

import "github.com/shopspring/decimal"

// DefaultMargin is the margin fraction applied when neither the configuration
// nor the caller supplies one.
var DefaultMargin = decimal.NewFromFloat(0.30)

// SalePrice derives the sale price from a purchase price and a margin
// fraction (0.30 means 30%):
//
//	sale = round(purchase * (1 + margin), 2)
//
// Rounding is half-away-from-zero, which is what price labels show.
// Callers that carry an explicit sale price must use it verbatim instead of
// calling SalePrice.
func SalePrice(purchase Money, margin decimal.Decimal) Money {
	one := decimal.NewFromInt(1)
	return Money{value: purchase.value.Mul(one.Add(margin)).Round(2)}
}
