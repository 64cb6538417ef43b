package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

const thousandsSep = ","

// FormatMoney renders `amount` with the configured currency symbol, thousands separators and 2 decimals.
// Amounts of any size are supported.
func FormatMoney(amount decimal.Decimal) string {
	amount = amount.Round(2)
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}
	units, cents, _ := strings.Cut(amount.StringFixed(2), ".")
	return sign + currencySymbol() + groupDigits(units) + "." + cents
}

// groupDigits inserts thousandsSep every 3 digits from the right.
func groupDigits(digits string) string {
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	var b strings.Builder
	b.WriteString(digits[:min(head, len(digits))])
	for i := head; i < len(digits); i += 3 {
		b.WriteString(thousandsSep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func currencySymbol() string {
	if Conf == nil {
		return "$"
	}
	return Conf.CurrencySymbol
}
