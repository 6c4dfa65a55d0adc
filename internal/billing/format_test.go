package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLocaleFormatter_UsesCurrencySymbol(t *testing.T) {
	f := LocaleFormatter{}
	amount := decimal.NewFromInt(40)

	usd := f.Format(amount, USD)
	assert.Contains(t, usd, "$")
	assert.Contains(t, usd, "40.00")

	brl := f.Format(amount, BRL)
	assert.Contains(t, brl, "R$")
	assert.Contains(t, brl, "40,00")

	eur := f.Format(amount, EUR)
	assert.Contains(t, eur, "€")
}

func TestLocaleFormatter_DoesNotChangeValue(t *testing.T) {
	amount := decimal.RequireFromString("12.345")
	LocaleFormatter{}.Format(amount, USD)
	assert.Equal(t, "12.345", amount.String())
}

func TestPrinterFor_ReusesPrinterPerLocale(t *testing.T) {
	first := printerFor(currencyLocales[BRL])
	second := printerFor(currencyLocales[BRL])
	assert.Same(t, first, second)
	assert.NotSame(t, first, printerFor(currencyLocales[USD]))
}

func TestDateFormatter(t *testing.T) {
	f := DateFormatter{Now: func() time.Time { return time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC) }}

	assert.Equal(t, "October 18th, 2026", f.FormatDate(time.Time{}))
	assert.Equal(t, "January 1st, 2025", f.FormatDate(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "March 22nd, 2024", f.FormatDate(time.Date(2024, time.March, 22, 0, 0, 0, 0, time.UTC)))
}

func TestParseAmount(t *testing.T) {
	cases := map[string]string{
		"":      "0",
		"  ":    "0",
		"abc":   "0",
		"3":     "3",
		" 2.5 ": "2.5",
		"-1":    "-1",
		"1e2":   "100",
		"1,5":   "0",
		"0.1":   "0.1",
	}
	for in, want := range cases {
		got := parseAmount(in)
		assert.True(t, decimal.RequireFromString(want).Equal(got), "parseAmount(%q) = %s, want %s", in, got, want)
	}
}

func TestParseAmount_NonFiniteAndExtremeExponents(t *testing.T) {
	for _, in := range []string{"Infinity", "-inf", "NaN", "1e400", "1e-2000000000", "1e-2147483648"} {
		got := parseAmount(in)
		assert.True(t, got.IsZero(), "parseAmount(%q) = %s, want 0", in, got)
	}

	tiny := parseAmount("5e-324")
	assert.True(t, tiny.IsPositive())
	assert.GreaterOrEqual(t, tiny.Exponent(), int32(-400))
}

func TestCurrency_Cycle(t *testing.T) {
	assert.Equal(t, EUR, USD.Next())
	assert.Equal(t, USD, BRL.Next())
	assert.Equal(t, BRL, USD.Prev())
	assert.Equal(t, "EUR", EUR.Code())

	c, err := ParseCurrency(" Brl ")
	assert.NoError(t, err)
	assert.Equal(t, BRL, c)
}

func TestParseDocumentType(t *testing.T) {
	dt, err := ParseDocumentType("Invoice")
	assert.NoError(t, err)
	assert.Equal(t, DocumentInvoice, dt)

	_, err = ParseDocumentType("memo")
	assert.Error(t, err)
}
