package billing

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyFormatter renders an amount for display. Formatting never changes
// the stored value.
type CurrencyFormatter interface {
	Format(amount decimal.Decimal, c Currency) string
}

// LocaleFormatter formats amounts with the symbol and separators of the
// locale usually associated with each currency.
type LocaleFormatter struct{}

var currencyLocales = map[Currency]language.Tag{
	USD: language.AmericanEnglish,
	EUR: language.German,
	BRL: language.BrazilianPortuguese,
}

// printers holds one message.Printer per locale
var printers = cache.New(cache.NoExpiration, 0)

func printerFor(tag language.Tag) *message.Printer {
	key := tag.String()
	if p, ok := printers.Get(key); ok {
		return p.(*message.Printer)
	}
	p := message.NewPrinter(tag)
	printers.SetDefault(key, p)
	return p
}

// Format implements CurrencyFormatter
func (LocaleFormatter) Format(amount decimal.Decimal, c Currency) string {
	unit, err := currency.ParseISO(c.Code())
	if err != nil {
		return fmt.Sprintf("%s %s", c.Code(), amount.StringFixed(2))
	}
	tag, ok := currencyLocales[c]
	if !ok {
		tag = language.English
	}
	return printerFor(tag).Sprint(currency.Symbol(unit.Amount(amount.InexactFloat64())))
}

// DateFormatter renders the issue date
type DateFormatter struct {
	Now func() time.Time
}

// FormatDate returns a long date such as "October 18th, 2026".
// A zero time renders as today.
func (f DateFormatter) FormatDate(t time.Time) string {
	if t.IsZero() {
		now := time.Now
		if f.Now != nil {
			now = f.Now
		}
		t = now()
	}
	return fmt.Sprintf("%s %s, %d", t.Month(), humanize.Ordinal(t.Day()), t.Year())
}
