package output

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/immocalc/immo-vs-etf/pkg/money"
)

// FormatCurrency formats an amount in euros with German separators ("9.600,00 €").
func FormatCurrency(amount float64) string {
	d := money.Decimal(amount)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	intPart, frac, _ := strings.Cut(d.StringFixed(2), ".")
	return sign + groupThousands(intPart) + "," + frac + " €"
}

// FormatPercentage formats a percentage with 2 decimals and a German decimal comma.
func FormatPercentage(pct float64) string {
	return strings.Replace(decimal.NewFromFloat(pct).StringFixed(2), ".", ",", 1) + " %"
}

// FormatAmount renders an amount with 2 decimals and no grouping, for machine-readable output.
func FormatAmount(amount float64) string {
	return money.Decimal(amount).StringFixed(2)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
