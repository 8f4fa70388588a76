package greenops

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats a float with the given number of decimals and
// thousand separators. Example: FormatFloat(1234.567, 2) returns "1,234.57".
// NaN and infinities are returned in their plain fmt form.
func FormatFloat(f float64, precision int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	precision = max(precision, 0)

	const base = 10
	multiplier := math.Pow(base, float64(precision))
	rounded := math.Round(f*multiplier) / multiplier

	formatted := strconv.FormatFloat(math.Abs(rounded), 'f', precision, 64)
	intPart, frac, hasFrac := strings.Cut(formatted, ".")

	n, err := strconv.ParseInt(intPart, base, 64)
	if err != nil {
		return fmt.Sprintf("%.*f", precision, rounded)
	}

	out := FormatNumber(n)
	if hasFrac {
		out += "." + frac
	}
	if rounded < 0 {
		out = "-" + out
	}
	return out
}

// FormatLarge formats large numbers with abbreviated notation.
//
// Values at or above LargeNumberThreshold use "~X.X million", values at or
// above BillionThreshold use "~X.X billion", and smaller values use the
// comma-separated integer form.
func FormatLarge(n float64) string {
	if n >= BillionThreshold {
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	}
	if n >= LargeNumberThreshold {
		return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
	}
	return FormatNumber(int64(math.Round(n)))
}
