package format

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency renders an amount in pt-BR style: "R$ 1.234,56".
func Currency(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "R$ " + b.String() + "," + fracPart
	if d.IsNegative() {
		out = "-" + out
	}
	return out
}

// Duration renders minutes as "30 min", "2h" or "1h 30min".
func Duration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	switch {
	case hours == 0:
		return fmt.Sprintf("%d min", mins)
	case mins == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dmin", hours, mins)
	}
}

// Hours renders fractional hours with one decimal: "2.5h".
func Hours(h float64) string {
	return fmt.Sprintf("%.1fh", h)
}

// Percentage renders value/total as a percentage; "0%" when total is 0.
func Percentage(value, total float64) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", value/total*100)
}
