package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Step is a screen of the wizard
type Step int

const (
	StepClientDocument Step = iota
	StepItems
	StepTerms
	StepFinish
)

// TotalSteps is the fixed length of the wizard
const TotalSteps = 4

// Title returns the heading shown for the step
func (s Step) Title() string {
	switch s {
	case StepClientDocument:
		return "Client & Document"
	case StepItems:
		return "Items/Service"
	case StepTerms:
		return "Terms and Payment"
	case StepFinish:
		return "Finish"
	}
	return fmt.Sprintf("Step %d", int(s))
}

// DocumentType is fixed for the lifetime of a wizard session
type DocumentType string

const (
	DocumentQuote   DocumentType = "quote"
	DocumentInvoice DocumentType = "invoice"
)

// Label returns the capitalized document type
func (t DocumentType) Label() string {
	switch t {
	case DocumentQuote:
		return "Quote"
	case DocumentInvoice:
		return "Invoice"
	}
	return string(t)
}

// ParseDocumentType accepts "quote" or "invoice" in any case
func ParseDocumentType(s string) (DocumentType, error) {
	switch DocumentType(strings.ToLower(strings.TrimSpace(s))) {
	case DocumentQuote:
		return DocumentQuote, nil
	case DocumentInvoice:
		return DocumentInvoice, nil
	}
	return "", fmt.Errorf("unknown document type %q", s)
}

// Currency is one of the supported currency codes
type Currency string

const (
	USD Currency = "usd"
	EUR Currency = "eur"
	BRL Currency = "brl"
)

var currencies = []Currency{USD, EUR, BRL}

// Currencies returns the supported codes in display order
func Currencies() []Currency {
	out := make([]Currency, len(currencies))
	copy(out, currencies)
	return out
}

// ParseCurrency accepts a code such as "EUR" or "eur"
func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range currencies {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, s)
}

// Code returns the upper-case ISO code
func (c Currency) Code() string { return strings.ToUpper(string(c)) }

// Next cycles forward through the supported currencies
func (c Currency) Next() Currency { return c.shift(1) }

// Prev cycles backward through the supported currencies
func (c Currency) Prev() Currency { return c.shift(-1) }

func (c Currency) shift(delta int) Currency {
	idx := 0
	for i, known := range currencies {
		if known == c {
			idx = i
			break
		}
	}
	n := len(currencies)
	return currencies[((idx+delta)%n+n)%n]
}

// PaymentMethod identifies an accepted way of paying
type PaymentMethod string

const (
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentCreditCard   PaymentMethod = "credit_card"
	PaymentCash         PaymentMethod = "cash"
	PaymentPix          PaymentMethod = "pix"
	PaymentPayPal       PaymentMethod = "paypal"
)

var paymentMethods = []PaymentMethod{
	PaymentBankTransfer,
	PaymentCreditCard,
	PaymentCash,
	PaymentPix,
	PaymentPayPal,
}

// PaymentMethods returns the fixed list of selectable methods
func PaymentMethods() []PaymentMethod {
	out := make([]PaymentMethod, len(paymentMethods))
	copy(out, paymentMethods)
	return out
}

// Label returns the display name of the method
func (p PaymentMethod) Label() string {
	switch p {
	case PaymentBankTransfer:
		return "Bank transfer"
	case PaymentCreditCard:
		return "Credit card"
	case PaymentCash:
		return "Cash"
	case PaymentPix:
		return "Pix"
	case PaymentPayPal:
		return "PayPal"
	}
	return string(p)
}

func (p PaymentMethod) valid() bool {
	for _, known := range paymentMethods {
		if p == known {
			return true
		}
	}
	return false
}

// Client holds who the document is addressed to
type Client struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Contact string `json:"contact"`
	Save    bool   `json:"save_client"`
}

// Document holds type, numbering and currency
type Document struct {
	Type      DocumentType `json:"doc_type"`
	Number    string       `json:"doc_number"`
	IssueDate time.Time    `json:"issue_date"`
	Currency  Currency     `json:"currency"`
}

// LineItem is one billable row. Total is always Quantity x UnitValue.
type LineItem struct {
	Token       RowToken        `json:"token"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitValue   decimal.Decimal `json:"unit_value"`
	Total       decimal.Decimal `json:"total"`
}

func newLineItem(token RowToken) LineItem {
	return LineItem{
		Token:     token,
		Quantity:  decimal.NewFromInt(1),
		UnitValue: decimal.Zero,
		Total:     decimal.Zero,
	}
}

func (li *LineItem) recompute() {
	li.Total = li.Quantity.Mul(li.UnitValue)
}

// Terms holds payment conditions
type Terms struct {
	PaymentMethods []PaymentMethod `json:"payment_methods"`
	BankDetails    string          `json:"bank_details"`
	Deposit        bool            `json:"deposit"`
	DepositValue   decimal.Decimal `json:"deposit_value"`
	Notes          string          `json:"notes"`
}

// Draft is the in-progress document of one wizard session
type Draft struct {
	Client   Client     `json:"client"`
	Document Document   `json:"document"`
	Items    []LineItem `json:"items"`
	Terms    Terms      `json:"terms"`
}

// Clone returns a deep copy so callers cannot mutate controller state
func (d Draft) Clone() Draft {
	out := d
	out.Items = append([]LineItem(nil), d.Items...)
	out.Terms.PaymentMethods = append([]PaymentMethod(nil), d.Terms.PaymentMethods...)
	return out
}

// Sum returns the grand total by re-scanning every item
func (d Draft) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, item := range d.Items {
		total = total.Add(item.Total)
	}
	return total
}
