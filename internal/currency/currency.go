// Package currency renders amounts for display under a selected currency.
// Formatting is display-only: stored values keep full decimal precision.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
	xcurrency "golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Supported is the fixed display list offered in settings.
var Supported = []string{"USD", "EUR", "INR"}

// IsSupported reports whether code is on the display list.
func IsSupported(code string) bool {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range Supported {
		if c == code {
			return true
		}
	}
	return false
}

var printer = message.NewPrinter(language.English)

// Format renders an amount with the currency's symbol and locale-aware
// digit grouping, rounded to whole units for display. Unknown codes fall
// back to the code itself as a prefix.
func Format(amount decimal.Decimal, code string) string {
	whole := amount.Round(0)
	grouped := printer.Sprintf("%v",
		number.Decimal(whole.Abs().InexactFloat64(), number.MaxFractionDigits(0)))

	prefix := code + " "
	if unit, err := xcurrency.ParseISO(code); err == nil {
		prefix = printer.Sprint(xcurrency.Symbol(unit))
	}

	if whole.IsNegative() {
		return "-" + prefix + grouped
	}
	return prefix + grouped
}
