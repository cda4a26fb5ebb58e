package utils_test

import (
	"testing"

	"github.com/SscSPs/venue_ledger_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"5000", "5000.00"},
		{"12.345", "12.35"},
		{"12.344", "12.34"},
		{"-50", "-50.00"},
		{"0", "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.FormatAmount(decimal.RequireFromString(tt.in)))
		})
	}

	assert.Equal(t, "12", utils.FormatWithPrecision(decimal.RequireFromString("12.3456"), 0))
}
