package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "R$ 0,00"},
		{"9.9", "R$ 9,90"},
		{"750", "R$ 750,00"},
		{"1234.56", "R$ 1.234,56"},
		{"1234567.89", "R$ 1.234.567,89"},
		{"-50", "-R$ 50,00"},
		{"-1234.5", "-R$ 1.234,50"},
	}
	for _, tt := range tests {
		d := decimal.RequireFromString(tt.in)
		assert.Equal(t, tt.want, Currency(d), "input %s", tt.in)
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0 min"},
		{30, "30 min"},
		{60, "1h"},
		{90, "1h 30min"},
		{120, "2h"},
		{125, "2h 5min"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Duration(tt.minutes), "minutes %d", tt.minutes)
	}
}

func TestHours(t *testing.T) {
	assert.Equal(t, "2.5h", Hours(2.5))
	assert.Equal(t, "0.0h", Hours(0))
	assert.Equal(t, "20.0h", Hours(20))
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, "0%", Percentage(3, 0), "zero total never divides")
	assert.Equal(t, "50.0%", Percentage(2, 4))
	assert.Equal(t, "100.0%", Percentage(4, 4))
	assert.Equal(t, "33.3%", Percentage(1, 3))
}
