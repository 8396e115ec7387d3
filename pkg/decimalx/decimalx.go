package decimalx

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Mid 返回买一卖一的中间价
func Mid(ask, bid decimal.Decimal) decimal.Decimal {
	return ask.Add(bid).Div(decimal.NewFromInt(2))
}

// PercentChange returns (to - from) / from * 100. from must not be zero.
func PercentChange(from, to decimal.Decimal) decimal.Decimal {
	return to.Sub(from).Div(from).Mul(hundred)
}

// Positive reports whether d is valid and strictly greater than zero.
func Positive(d decimal.NullDecimal) bool {
	return d.Valid && d.Decimal.IsPositive()
}
