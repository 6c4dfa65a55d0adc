package billing

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrRowNotFound          = errors.New("line item not found")
	ErrFieldDisabled        = errors.New("field is disabled")
	ErrUnknownField         = errors.New("unknown field")
	ErrUnknownCurrency      = errors.New("unknown currency")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
	ErrInvalidDate          = errors.New("invalid date, use YYYY-MM-DD")
)

// IssueDateLayout is the layout accepted when typing an issue date
const IssueDateLayout = "2006-01-02"

// Field names a free-text field of the draft
type Field int

const (
	FieldClientName Field = iota
	FieldClientEmail
	FieldClientAddress
	FieldClientContact
	FieldDocumentNumber
	FieldIssueDate
	FieldBankDetails
	FieldDepositValue
	FieldNotes
)

// ItemField names an editable column of a line item
type ItemField int

const (
	ItemDescription ItemField = iota
	ItemQuantity
	ItemUnitValue
)

// Controller owns the step index and the Draft of one wizard session.
// It is not safe for concurrent use; a single user drives it.
type Controller struct {
	step       Step
	draft      Draft
	grandTotal decimal.Decimal

	docType   DocumentType
	currency  Currency
	strict    bool
	tokens    TokenSource
	submitter Submitter
	now       func() time.Time
	logger    *slog.Logger
}

// Option configures a Controller
type Option func(*Controller)

// WithCurrency sets the currency a fresh draft starts with
func WithCurrency(c Currency) Option {
	return func(ctl *Controller) { ctl.currency = c }
}

// WithClock replaces time.Now, used for the default issue date
func WithClock(now func() time.Time) Option {
	return func(ctl *Controller) { ctl.now = now }
}

// WithTokens replaces the row token source
func WithTokens(ts TokenSource) Option {
	return func(ctl *Controller) { ctl.tokens = ts }
}

// WithSubmitter sets where completed drafts go
func WithSubmitter(s Submitter) Option {
	return func(ctl *Controller) { ctl.submitter = s }
}

// WithLogger sets the logger for controller events
func WithLogger(l *slog.Logger) Option {
	return func(ctl *Controller) { ctl.logger = l }
}

// WithStrictValidation blocks Advance while the current step has validation errors
func WithStrictValidation(strict bool) Option {
	return func(ctl *Controller) { ctl.strict = strict }
}

// NewController creates a controller with a fresh draft of the given type
func NewController(docType DocumentType, opts ...Option) (*Controller, error) {
	if _, err := ParseDocumentType(string(docType)); err != nil {
		return nil, err
	}

	ctl := &Controller{
		docType:  docType,
		currency: USD,
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(ctl)
	}

	if _, err := ParseCurrency(string(ctl.currency)); err != nil {
		return nil, err
	}
	if ctl.tokens == nil {
		ts, err := NewSnowflakeTokens(1)
		if err != nil {
			return nil, err
		}
		ctl.tokens = ts
	}
	if ctl.submitter == nil {
		ctl.submitter = NewLogSubmitter(ctl.logger)
	}

	ctl.reset()
	return ctl, nil
}

// reset puts the controller back to its initial state
func (c *Controller) reset() {
	c.step = StepClientDocument
	c.draft = Draft{
		Document: Document{
			Type:      c.docType,
			IssueDate: c.today(),
			Currency:  c.currency,
		},
		Items: []LineItem{newLineItem(c.tokens.Next())},
		Terms: Terms{DepositValue: decimal.Zero},
	}
	c.recomputeGrandTotal()
}

func (c *Controller) today() time.Time {
	t := c.now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Step returns the current step
func (c *Controller) Step() Step { return c.step }

// IsFirstStep reports whether Back is disabled
func (c *Controller) IsFirstStep() bool { return c.step == StepClientDocument }

// IsLastStep reports whether Next has become Submit
func (c *Controller) IsLastStep() bool { return c.step == TotalSteps-1 }

// DocumentType returns the fixed document type of this session
func (c *Controller) DocumentType() DocumentType { return c.docType }

// Draft returns a copy of the current draft
func (c *Controller) Draft() Draft { return c.draft.Clone() }

// GrandTotal returns the sum of all line-item totals
func (c *Controller) GrandTotal() decimal.Decimal { return c.grandTotal }

// Advance moves to the next step. On the last step it submits the draft and
// resets the session; submitted reports that this happened.
func (c *Controller) Advance() (submitted bool, err error) {
	if c.strict {
		if verrs := c.ValidateStep(c.step); len(verrs) > 0 {
			return false, verrs
		}
	}

	if c.step < TotalSteps-1 {
		c.step++
		c.logger.Debug("wizard advanced", "step", int(c.step), "title", c.step.Title())
		return false, nil
	}

	sub := Submission{
		Draft:       c.draft.Clone(),
		GrandTotal:  c.grandTotal,
		SubmittedAt: c.now(),
	}
	if err := c.submitter.Submit(sub); err != nil {
		return false, fmt.Errorf("failed to submit %s: %w", c.docType, err)
	}

	c.reset()
	return true, nil
}

// Retreat moves one step back. It is a no-op on the first step.
func (c *Controller) Retreat() bool {
	if c.step <= StepClientDocument {
		return false
	}
	c.step--
	c.logger.Debug("wizard retreated", "step", int(c.step), "title", c.step.Title())
	return true
}

// AddLineItem appends a default row and returns its token
func (c *Controller) AddLineItem() RowToken {
	item := newLineItem(c.tokens.Next())
	c.draft.Items = append(c.draft.Items, item)
	c.recomputeGrandTotal()
	c.logger.Debug("line item added", "token", item.Token.String())
	return item.Token
}

// RemoveLineItem drops the row with the given token
func (c *Controller) RemoveLineItem(token RowToken) bool {
	idx := c.indexOf(token)
	if idx < 0 {
		return false
	}
	c.draft.Items = append(c.draft.Items[:idx], c.draft.Items[idx+1:]...)
	c.recomputeGrandTotal()
	c.logger.Debug("line item removed", "token", token.String())
	return true
}

// LineItem returns the row with the given token
func (c *Controller) LineItem(token RowToken) (LineItem, bool) {
	idx := c.indexOf(token)
	if idx < 0 {
		return LineItem{}, false
	}
	return c.draft.Items[idx], true
}

// UpdateLineItem sets one column of a row and recomputes the totals.
// Numbers that do not parse count as zero.
func (c *Controller) UpdateLineItem(token RowToken, field ItemField, value string) error {
	idx := c.indexOf(token)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrRowNotFound, token)
	}

	item := &c.draft.Items[idx]
	switch field {
	case ItemDescription:
		item.Description = value
	case ItemQuantity:
		item.Quantity = parseAmount(value)
	case ItemUnitValue:
		item.UnitValue = parseAmount(value)
	default:
		return fmt.Errorf("%w: item field %d", ErrUnknownField, field)
	}

	item.recompute()
	c.recomputeGrandTotal()
	return nil
}

func (c *Controller) indexOf(token RowToken) int {
	for i, item := range c.draft.Items {
		if item.Token == token {
			return i
		}
	}
	return -1
}

func (c *Controller) recomputeGrandTotal() {
	c.grandTotal = c.draft.Sum()
}

// SetField sets a free-text field of the draft
func (c *Controller) SetField(field Field, value string) error {
	switch field {
	case FieldClientName:
		c.draft.Client.Name = value
	case FieldClientEmail:
		c.draft.Client.Email = value
	case FieldClientAddress:
		c.draft.Client.Address = value
	case FieldClientContact:
		c.draft.Client.Contact = value
	case FieldDocumentNumber:
		c.draft.Document.Number = value
	case FieldIssueDate:
		value = strings.TrimSpace(value)
		if value == "" {
			c.draft.Document.IssueDate = c.today()
			return nil
		}
		t, err := time.ParseInLocation(IssueDateLayout, value, c.now().Location())
		if err != nil {
			return ErrInvalidDate
		}
		c.draft.Document.IssueDate = t
	case FieldBankDetails:
		if !c.BankDetailsEnabled() {
			return ErrFieldDisabled
		}
		c.draft.Terms.BankDetails = value
	case FieldDepositValue:
		if !c.DepositValueEnabled() {
			return ErrFieldDisabled
		}
		c.draft.Terms.DepositValue = parseAmount(value)
	case FieldNotes:
		c.draft.Terms.Notes = value
	default:
		return fmt.Errorf("%w: %d", ErrUnknownField, field)
	}
	return nil
}

// ToggleSaveClient flips the "save this client" switch
func (c *Controller) ToggleSaveClient() bool {
	c.draft.Client.Save = !c.draft.Client.Save
	return c.draft.Client.Save
}

// ToggleDeposit flips the deposit flag. The deposit value is kept.
func (c *Controller) ToggleDeposit() bool {
	c.draft.Terms.Deposit = !c.draft.Terms.Deposit
	return c.draft.Terms.Deposit
}

// SetCurrency changes the draft currency
func (c *Controller) SetCurrency(cur Currency) error {
	parsed, err := ParseCurrency(string(cur))
	if err != nil {
		return err
	}
	c.draft.Document.Currency = parsed
	return nil
}

// TogglePaymentMethod adds the method if absent and removes it otherwise.
// Bank details survive deselecting bank transfer.
func (c *Controller) TogglePaymentMethod(m PaymentMethod) error {
	if !m.valid() {
		return fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, m)
	}

	selected := c.draft.Terms.PaymentMethods
	for i, existing := range selected {
		if existing == m {
			c.draft.Terms.PaymentMethods = append(selected[:i:i], selected[i+1:]...)
			return nil
		}
	}
	c.draft.Terms.PaymentMethods = append(selected, m)
	return nil
}

// HasPaymentMethod reports whether m is selected
func (c *Controller) HasPaymentMethod(m PaymentMethod) bool {
	for _, existing := range c.draft.Terms.PaymentMethods {
		if existing == m {
			return true
		}
	}
	return false
}

// BankDetailsEnabled reports whether bank details may be edited
func (c *Controller) BankDetailsEnabled() bool {
	return c.HasPaymentMethod(PaymentBankTransfer)
}

// DepositValueEnabled reports whether the deposit value may be edited
func (c *Controller) DepositValueEnabled() bool {
	return c.draft.Terms.Deposit
}

// DisplayTotal renders the grand total through f in the draft currency
func (c *Controller) DisplayTotal(f CurrencyFormatter) string {
	return f.Format(c.grandTotal, c.draft.Document.Currency)
}
