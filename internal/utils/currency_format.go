package utils

import (
	"github.com/shopspring/decimal"
)

// DisplayPrecision is the number of fractional digits shown for amounts.
const DisplayPrecision = 2

// FormatWithPrecision formats an amount with the given precision, always
// printing that many fractional digits.
// Example: 12.345 with precision 2 returns "12.35"
// Example: 5000 with precision 2 returns "5000.00"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatAmount formats an amount for display with two decimal places.
// The stored value is never rounded.
func FormatAmount(amount decimal.Decimal) string {
	return FormatWithPrecision(amount, DisplayPrecision)
}
