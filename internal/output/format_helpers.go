package output

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/storefront/price-formatter/internal/domain"
)

var printer = message.NewPrinter(language.English)

// FormatAmount renders an amount with its currency symbol, rounded to the
// currency's standard number of decimals. Unknown codes fall back to "CODE value".
func FormatAmount(a domain.Amount) string {
	unit, err := currency.ParseISO(a.Currency)
	if err != nil {
		return a.Currency + " " + a.Value.String()
	}
	scale, _ := currency.Standard.Rounding(unit)
	return printer.Sprint(currency.Symbol(unit)) + a.Value.Decimal.StringFixed(int32(scale))
}

// FormatInclusion renders the adjustment description for console output.
func FormatInclusion(i domain.Inclusion) string {
	switch i {
	case domain.AdjustmentIncluded:
		return "included in display price"
	case domain.AdjustmentExcluded:
		return "excluded from display price"
	default:
		return i.String()
	}
}
