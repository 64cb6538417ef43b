package core

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{amount: "0", want: "$0.00"},
		{amount: "500", want: "$500.00"},
		{amount: "12.5", want: "$12.50"},
		{amount: "99.999", want: "$100.00"},
		{amount: "1234567.891", want: "$1,234,567.89"},
		{amount: "-3.2", want: "-$3.20"},
		{amount: "-0.001", want: "$0.00"},
		{amount: "100000", want: "$100,000.00"},
		{amount: "9223372036854775807", want: "$9,223,372,036,854,775,807.00"},
		{amount: "99999999999999999999", want: "$99,999,999,999,999,999,999.00"},
		{amount: "-12345678901234567890.125", want: "-$12,345,678,901,234,567,890.13"},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(decimal.RequireFromString(tt.amount)))
		})
	}
}
