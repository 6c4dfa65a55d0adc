package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mikelcalvo/invoice-cli/internal/billing"
)

type fieldKind int

const (
	kindText fieldKind = iota
	kindItem
	kindSaveClient
	kindCurrency
	kindPayment
	kindDeposit
)

// focusable is one element of the current step that can take focus
type focusable struct {
	id     string
	kind   fieldKind
	field  billing.Field
	token  billing.RowToken
	item   billing.ItemField
	method billing.PaymentMethod
}

func (f focusable) isInput() bool { return f.kind == kindText || f.kind == kindItem }

const (
	idSaveClient = "client.save"
	idCurrency   = "document.currency"
	idDeposit    = "terms.deposit"
)

func textID(f billing.Field) string { return "field:" + strconv.Itoa(int(f)) }

func itemID(tok billing.RowToken, f billing.ItemField) string {
	return "item:" + tok.String() + ":" + strconv.Itoa(int(f))
}

func paymentID(m billing.PaymentMethod) string { return "pay:" + string(m) }

type fieldInfo struct {
	label       string
	placeholder string
}

var textFields = map[billing.Field]fieldInfo{
	billing.FieldClientName:     {"Client name", "Jhon Doe"},
	billing.FieldClientEmail:    {"Email", "jhon@doe.com"},
	billing.FieldClientAddress:  {"Address", "Street, number, city"},
	billing.FieldClientContact:  {"Contact", "+1 555 0100"},
	billing.FieldDocumentNumber: {"Number", ""},
	billing.FieldIssueDate:      {"Issue date", billing.IssueDateLayout},
	billing.FieldBankDetails:    {"Bank details", "Bank, agency, account"},
	billing.FieldDepositValue:   {"Deposit value", "0.00"},
	billing.FieldNotes:          {"Notes", "Anything the client should know"},
}

var textFieldOrder = []billing.Field{
	billing.FieldClientName,
	billing.FieldClientEmail,
	billing.FieldClientAddress,
	billing.FieldClientContact,
	billing.FieldDocumentNumber,
	billing.FieldIssueDate,
	billing.FieldBankDetails,
	billing.FieldDepositValue,
	billing.FieldNotes,
}

var itemFields = []billing.ItemField{billing.ItemDescription, billing.ItemQuantity, billing.ItemUnitValue}

var itemInfo = map[billing.ItemField]fieldInfo{
	billing.ItemDescription: {"Description", "Service or product"},
	billing.ItemQuantity:    {"Qty", "1"},
	billing.ItemUnitValue:   {"Unit value", "0.00"},
}

// Wizard is the four-step quote/invoice form. It owns no draft state itself:
// every keystroke is pushed into the billing controller.
type Wizard struct {
	ctl              *billing.Controller
	opts             Options
	keys             wizardKeys
	help             help.Model
	inputs           map[string]textinput.Model
	focusIndex       int
	fieldErrs        map[string]string
	message          string
	notification     string
	showNotification bool
	summary          viewport.Model
	standalone       bool
}

// NewWizard creates a wizard session for the document type
func NewWizard(docType billing.DocumentType, opts Options) (Wizard, error) {
	opts = opts.withDefaults()

	ctl, err := billing.NewController(docType, opts.controllerOptions()...)
	if err != nil {
		return Wizard{}, fmt.Errorf("failed to start wizard: %w", err)
	}

	w := Wizard{
		ctl:       ctl,
		opts:      opts,
		keys:      newWizardKeys(),
		help:      help.New(),
		inputs:    make(map[string]textinput.Model),
		fieldErrs: make(map[string]string),
		summary:   viewport.New(60, 12),
	}
	w.syncInputs()
	w.applyFocus()
	return w, nil
}

// Controller exposes the session controller
func (w Wizard) Controller() *billing.Controller { return w.ctl }

func (w Wizard) Init() tea.Cmd {
	return textinput.Blink
}

func newInput(placeholder, value string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 256
	in.Width = 40
	in.SetValue(value)
	return in
}

// syncInputs creates inputs for every field of the draft and drops inputs of
// removed rows
func (w *Wizard) syncInputs() {
	d := w.ctl.Draft()

	for _, f := range textFieldOrder {
		id := textID(f)
		if _, ok := w.inputs[id]; ok {
			continue
		}
		placeholder := textFields[f].placeholder
		value := ""
		switch f {
		case billing.FieldDocumentNumber:
			placeholder = w.opts.NumberPlaceholder(w.ctl.DocumentType())
		case billing.FieldIssueDate:
			value = d.Document.IssueDate.Format(billing.IssueDateLayout)
		}
		w.inputs[id] = newInput(placeholder, value)
	}

	live := make(map[string]bool)
	for _, it := range d.Items {
		for _, f := range itemFields {
			id := itemID(it.Token, f)
			live[id] = true
			if _, ok := w.inputs[id]; ok {
				continue
			}
			value := ""
			switch f {
			case billing.ItemDescription:
				value = it.Description
			case billing.ItemQuantity:
				value = it.Quantity.String()
			}
			in := newInput(itemInfo[f].placeholder, value)
			if f != billing.ItemDescription {
				in.Width = 10
			}
			w.inputs[id] = in
		}
	}
	for id := range w.inputs {
		if strings.HasPrefix(id, "item:") && !live[id] {
			delete(w.inputs, id)
			delete(w.fieldErrs, id)
		}
	}
}

// resetInputs rebuilds every input from the controller's fresh draft
func (w *Wizard) resetInputs() {
	w.inputs = make(map[string]textinput.Model)
	w.fieldErrs = make(map[string]string)
	w.focusIndex = 0
	w.syncInputs()
}

// focusables lists what can take focus on the current step. Disabled fields
// are left out.
func (w Wizard) focusables() []focusable {
	text := func(f billing.Field) focusable {
		return focusable{id: textID(f), kind: kindText, field: f}
	}

	var fs []focusable
	switch w.ctl.Step() {
	case billing.StepClientDocument:
		fs = append(fs,
			text(billing.FieldClientName),
			text(billing.FieldClientEmail),
			text(billing.FieldClientAddress),
			text(billing.FieldClientContact),
			focusable{id: idSaveClient, kind: kindSaveClient},
			text(billing.FieldDocumentNumber),
			text(billing.FieldIssueDate),
			focusable{id: idCurrency, kind: kindCurrency},
		)

	case billing.StepItems:
		for _, it := range w.ctl.Draft().Items {
			for _, f := range itemFields {
				fs = append(fs, focusable{id: itemID(it.Token, f), kind: kindItem, token: it.Token, item: f})
			}
		}

	case billing.StepTerms:
		for _, m := range billing.PaymentMethods() {
			fs = append(fs, focusable{id: paymentID(m), kind: kindPayment, method: m})
		}
		if w.ctl.BankDetailsEnabled() {
			fs = append(fs, text(billing.FieldBankDetails))
		}
		fs = append(fs, focusable{id: idDeposit, kind: kindDeposit})
		if w.ctl.DepositValueEnabled() {
			fs = append(fs, text(billing.FieldDepositValue))
		}
		fs = append(fs, text(billing.FieldNotes))
	}
	return fs
}

func (w Wizard) focused() (focusable, bool) {
	fs := w.focusables()
	if w.focusIndex < 0 || w.focusIndex >= len(fs) {
		return focusable{}, false
	}
	return fs[w.focusIndex], true
}

func (w Wizard) isFocused(id string) bool {
	f, ok := w.focused()
	return ok && f.id == id
}

func (w *Wizard) focusID(id string) {
	for i, f := range w.focusables() {
		if f.id == id {
			w.focusIndex = i
			return
		}
	}
}

// applyFocus clamps the focus index and focuses the matching input
func (w *Wizard) applyFocus() tea.Cmd {
	fs := w.focusables()
	if w.focusIndex >= len(fs) {
		w.focusIndex = max(len(fs)-1, 0)
	}

	focusedID := ""
	if len(fs) > 0 {
		focusedID = fs[w.focusIndex].id
	}

	var cmd tea.Cmd
	for id, in := range w.inputs {
		in := in // per-iteration copy: Focus() returns a cmd that captures &in
		if id == focusedID {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
		w.inputs[id] = in
	}
	return cmd
}

func (w Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.help.Width = msg.Width
		w.summary.Width = max(msg.Width-8, 20)
		w.summary.Height = max(msg.Height-14, 5)
		if w.ctl.Step() == billing.StepFinish {
			w.summary.SetContent(w.renderSummary())
		}
		return w, nil

	case clearNotificationMsg:
		w.showNotification = false
		w.notification = ""
		return w, nil

	case wizardClosedMsg:
		if w.standalone {
			return w, tea.Quit
		}
		return w, nil

	case tea.KeyMsg:
		return w.handleKey(msg)
	}

	return w, w.updateFocusedInput(msg)
}

func (w Wizard) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	w.message = ""
	hasFocusables := len(w.focusables()) > 0

	switch {
	case key.Matches(msg, w.keys.Quit):
		return w, tea.Quit

	case key.Matches(msg, w.keys.Leave):
		return w, func() tea.Msg { return wizardClosedMsg{} }

	case key.Matches(msg, w.keys.Next) && hasFocusables:
		w.focusIndex++
		if w.focusIndex >= len(w.focusables()) {
			w.focusIndex = 0
		}
		return w, w.applyFocus()

	case key.Matches(msg, w.keys.Prev) && hasFocusables:
		w.focusIndex--
		if w.focusIndex < 0 {
			w.focusIndex = len(w.focusables()) - 1
		}
		return w, w.applyFocus()

	case key.Matches(msg, w.keys.Advance):
		return w.advance()

	case key.Matches(msg, w.keys.Back):
		if w.ctl.Retreat() {
			w.focusIndex = 0
			return w, w.applyFocus()
		}
		return w, nil

	case key.Matches(msg, w.keys.AddItem):
		if w.ctl.Step() != billing.StepItems {
			return w, nil
		}
		tok := w.ctl.AddLineItem()
		w.syncInputs()
		w.focusID(itemID(tok, billing.ItemDescription))
		return w, w.applyFocus()

	case key.Matches(msg, w.keys.RemoveItem):
		if f, ok := w.focused(); ok && f.kind == kindItem {
			w.ctl.RemoveLineItem(f.token)
			w.syncInputs()
			w.focusIndex -= int(f.item)
			return w, w.applyFocus()
		}
		return w, nil
	}

	if f, ok := w.focused(); ok && !f.isInput() {
		switch {
		case key.Matches(msg, w.keys.Toggle):
			w.toggle(f)
		case f.kind == kindCurrency && key.Matches(msg, w.keys.CycleLeft):
			_ = w.ctl.SetCurrency(w.ctl.Draft().Document.Currency.Prev())
		case f.kind == kindCurrency && key.Matches(msg, w.keys.CycleRight):
			_ = w.ctl.SetCurrency(w.ctl.Draft().Document.Currency.Next())
		}
		return w, nil
	}

	if w.ctl.Step() == billing.StepFinish {
		var cmd tea.Cmd
		w.summary, cmd = w.summary.Update(msg)
		return w, cmd
	}

	return w, w.updateFocusedInput(msg)
}

func (w *Wizard) toggle(f focusable) {
	switch f.kind {
	case kindSaveClient:
		w.ctl.ToggleSaveClient()
	case kindDeposit:
		w.ctl.ToggleDeposit()
	case kindPayment:
		if err := w.ctl.TogglePaymentMethod(f.method); err != nil {
			w.message = err.Error()
		}
	}
}

// advance runs Next or Submit
func (w Wizard) advance() (tea.Model, tea.Cmd) {
	docType := w.ctl.DocumentType()
	total := w.ctl.DisplayTotal(w.opts.Formatter)

	submitted, err := w.ctl.Advance()
	if err != nil {
		var verrs billing.ValidationErrors
		if errors.As(err, &verrs) {
			w.message = "Complete this step before continuing: " + verrs.Error()
		} else {
			w.message = err.Error()
		}
		return w, nil
	}

	if submitted {
		w.resetInputs()
		w.notification = fmt.Sprintf("%s submitted • total %s", docType.Label(), total)
		w.showNotification = true
		// Auto-dismiss notification after 3 seconds
		return w, tea.Batch(
			w.applyFocus(),
			tea.Tick(3*time.Second, func(time.Time) tea.Msg {
				return clearNotificationMsg{}
			}),
		)
	}

	w.focusIndex = 0
	if w.ctl.Step() == billing.StepFinish {
		w.summary.SetContent(w.renderSummary())
		w.summary.GotoTop()
	}
	return w, w.applyFocus()
}

// updateFocusedInput forwards msg to the focused input and pushes a changed
// value into the controller
func (w *Wizard) updateFocusedInput(msg tea.Msg) tea.Cmd {
	f, ok := w.focused()
	if !ok || !f.isInput() {
		return nil
	}

	in := w.inputs[f.id]
	before := in.Value()
	in, cmd := in.Update(msg)
	w.inputs[f.id] = in

	if in.Value() != before {
		w.push(f, in.Value())
	}
	return cmd
}

func (w *Wizard) push(f focusable, value string) {
	var err error
	if f.kind == kindItem {
		err = w.ctl.UpdateLineItem(f.token, f.item, value)
	} else {
		err = w.ctl.SetField(f.field, value)
	}

	if err != nil {
		w.fieldErrs[f.id] = err.Error()
		return
	}
	delete(w.fieldErrs, f.id)
}
