package report

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Placeholder is rendered for any missing value.
const Placeholder = "N/A"

// FormatMoney renders a price with two decimals and its currency code,
// e.g. "25.00 USD". Null values render as Placeholder.
func FormatMoney(v decimal.NullDecimal, currency string) string {
	if !v.Valid {
		return Placeholder
	}
	s := v.Decimal.StringFixed(2)
	if currency == "" {
		return s
	}
	return s + " " + currency
}

// FormatCount renders an optional count.
func FormatCount(n *int) string {
	if n == nil {
		return Placeholder
	}
	return strconv.Itoa(*n)
}
