package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mikelcalvo/invoice-cli/internal/billing"
)

func (w Wizard) View() string {
	var b strings.Builder

	if w.standalone {
		b.WriteString(titleStyle.Render(fmt.Sprintf(" %s | New %s ", w.opts.Brand, strings.ToLower(w.ctl.DocumentType().Label()))))
		b.WriteString("\n\n")
	}

	// Notification (success feedback that auto-dismisses)
	if w.showNotification {
		b.WriteString(notificationSuccess.Render("✓ " + w.notification))
		b.WriteString("\n\n")
	}

	b.WriteString(w.renderProgress())
	b.WriteString("\n\n")

	var content string
	switch w.ctl.Step() {
	case billing.StepClientDocument:
		content = w.renderClientDocument()
	case billing.StepItems:
		content = w.renderItems()
	case billing.StepTerms:
		content = w.renderTerms()
	case billing.StepFinish:
		content = w.renderFinish()
	}
	b.WriteString(boxStyle.Render(content))
	b.WriteString("\n")

	if hints := w.renderHints(); hints != "" {
		b.WriteString(hints)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(w.renderButtons())

	// Error message (persists until the next key)
	if w.message != "" {
		b.WriteString("\n\n")
		b.WriteString(notificationError.Render("✗ " + w.message))
	}

	b.WriteString("\n\n")
	b.WriteString(w.help.View(w.activeKeys()))

	return b.String()
}

// activeKeys adjusts the help bindings to the current step
func (w Wizard) activeKeys() wizardKeys {
	k := w.keys
	if w.ctl.IsLastStep() {
		k.Advance.SetHelp("enter", "submit")
	}
	k.Back.SetEnabled(!w.ctl.IsFirstStep())
	onItems := w.ctl.Step() == billing.StepItems
	k.AddItem.SetEnabled(onItems)
	k.RemoveItem.SetEnabled(onItems)
	k.CycleLeft.SetEnabled(w.ctl.Step() == billing.StepClientDocument)
	k.Toggle.SetEnabled(w.ctl.Step() == billing.StepClientDocument || w.ctl.Step() == billing.StepTerms)
	return k
}

func (w Wizard) renderProgress() string {
	current := w.ctl.Step()
	parts := make([]string, 0, billing.TotalSteps)
	for s := billing.StepClientDocument; s <= billing.StepFinish; s++ {
		label := fmt.Sprintf("%d %s", int(s)+1, s.Title())
		switch {
		case s == current:
			parts = append(parts, stepActiveStyle.Render(label))
		case s < current:
			parts = append(parts, stepDoneStyle.Render("✓ "+label))
		default:
			parts = append(parts, stepTodoStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (w Wizard) renderButtons() string {
	back := buttonStyle.Render("Back")
	if w.ctl.IsFirstStep() {
		back = buttonDisabledStyle.Render("Back")
	}
	next := "Next"
	if w.ctl.IsLastStep() {
		next = "Submit"
	}
	return back + "  " + buttonStyle.Render(next)
}

// renderHints lists validation findings of the current step. They never block
// Next unless strict validation is on.
func (w Wizard) renderHints() string {
	var errs billing.ValidationErrors
	if w.ctl.Step() == billing.StepFinish {
		for s := billing.StepClientDocument; s < billing.StepFinish; s++ {
			errs = append(errs, w.ctl.ValidateStep(s)...)
		}
	} else {
		errs = w.ctl.ValidateStep(w.ctl.Step())
	}
	if len(errs) == 0 {
		return ""
	}

	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = warnStyle.Render("  ! " + e.Error())
	}
	return strings.Join(lines, "\n")
}

func (w Wizard) renderText(f billing.Field, required bool) string {
	id := textID(f)
	info := textFields[f]

	var b strings.Builder
	b.WriteString(labelStyle.Render(info.label))
	if required {
		b.WriteString(labelStyle.Render(" *"))
	}
	b.WriteString("\n")
	b.WriteString(w.inputs[id].View())
	if msg, ok := w.fieldErrs[id]; ok {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(msg))
	}
	return b.String()
}

func (w Wizard) renderDisabled(f billing.Field) string {
	info := textFields[f]
	value := w.inputs[textID(f)].Value()
	if value == "" {
		value = "(disabled)"
	}
	return disabledStyle.Render(info.label) + "\n" + disabledStyle.Render("  "+value)
}

func (w Wizard) renderCheck(id, label string, on bool) string {
	box := "[ ]"
	if on {
		box = "[x]"
	}
	line := box + " " + label
	if w.isFocused(id) {
		return selectedStyle.Render("› " + line)
	}
	return "  " + line
}

func (w Wizard) renderClientDocument() string {
	d := w.ctl.Draft()

	var b strings.Builder
	b.WriteString(titleStyle.Render(" Client ") + "\n\n")
	b.WriteString(w.renderText(billing.FieldClientName, true) + "\n\n")
	b.WriteString(w.renderText(billing.FieldClientEmail, false) + "\n\n")
	b.WriteString(w.renderText(billing.FieldClientAddress, false) + "\n\n")
	b.WriteString(w.renderText(billing.FieldClientContact, false) + "\n\n")
	b.WriteString(w.renderCheck(idSaveClient, "Save this client", d.Client.Save) + "\n\n")

	b.WriteString(titleStyle.Render(" "+d.Document.Type.Label()+" ") + "\n\n")
	b.WriteString(w.renderText(billing.FieldDocumentNumber, false) + "\n\n")
	b.WriteString(w.renderText(billing.FieldIssueDate, false) + "\n")
	b.WriteString(hintStyle.Render(w.opts.Dates.FormatDate(d.Document.IssueDate)) + "\n\n")

	b.WriteString(labelStyle.Render("Currency") + "\n")
	b.WriteString(w.renderCurrency(d.Document.Currency))

	return b.String()
}

func (w Wizard) renderCurrency(selected billing.Currency) string {
	parts := make([]string, 0, len(billing.Currencies()))
	for _, c := range billing.Currencies() {
		if c == selected {
			parts = append(parts, selectedStyle.Render("‹"+c.Code()+"›"))
		} else {
			parts = append(parts, helpStyle.Render(" "+c.Code()+" "))
		}
	}
	line := strings.Join(parts, " ")
	if w.isFocused(idCurrency) {
		return selectedStyle.Render("› ") + line + hintStyle.Render("  ←/→ to change")
	}
	return "  " + line
}

func (w Wizard) renderItems() string {
	d := w.ctl.Draft()

	var b strings.Builder
	b.WriteString(titleStyle.Render(" Items/Service ") + "\n\n")

	if len(d.Items) == 0 {
		b.WriteString(hintStyle.Render("No items. Press ctrl+a to add one.") + "\n\n")
	}

	for i, it := range d.Items {
		header := labelStyle.Render(fmt.Sprintf("Item %d", i+1))
		rowTotal := "Total: " + totalStyle.Render(w.opts.Formatter.Format(it.Total, d.Document.Currency))
		b.WriteString(header + "   " + rowTotal + "\n")

		desc := w.inputs[itemID(it.Token, billing.ItemDescription)]
		qty := w.inputs[itemID(it.Token, billing.ItemQuantity)]
		unit := w.inputs[itemID(it.Token, billing.ItemUnitValue)]

		b.WriteString(helpStyle.Render(itemInfo[billing.ItemDescription].label) + "\n")
		b.WriteString(desc.View() + "\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			helpStyle.Render(itemInfo[billing.ItemQuantity].label+" ")+qty.View(),
			"   ",
			helpStyle.Render(itemInfo[billing.ItemUnitValue].label+" ")+unit.View(),
		))
		b.WriteString("\n\n")
	}

	b.WriteString(labelStyle.Render("Grand total: ") + totalStyle.Render(w.ctl.DisplayTotal(w.opts.Formatter)))
	return b.String()
}

func (w Wizard) renderTerms() string {
	d := w.ctl.Draft()

	var b strings.Builder
	b.WriteString(titleStyle.Render(" Terms and Payment ") + "\n\n")

	b.WriteString(labelStyle.Render("Payment methods") + "\n")
	for _, m := range billing.PaymentMethods() {
		b.WriteString(w.renderCheck(paymentID(m), m.Label(), w.ctl.HasPaymentMethod(m)) + "\n")
	}
	b.WriteString("\n")

	if w.ctl.BankDetailsEnabled() {
		b.WriteString(w.renderText(billing.FieldBankDetails, true) + "\n\n")
	} else {
		b.WriteString(w.renderDisabled(billing.FieldBankDetails) + "\n\n")
	}

	b.WriteString(w.renderCheck(idDeposit, "Require a deposit", d.Terms.Deposit) + "\n")
	if w.ctl.DepositValueEnabled() {
		b.WriteString(w.renderText(billing.FieldDepositValue, true) + "\n\n")
	} else {
		b.WriteString(w.renderDisabled(billing.FieldDepositValue) + "\n\n")
	}

	b.WriteString(w.renderText(billing.FieldNotes, false))
	return b.String()
}

func (w Wizard) renderFinish() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(" Finish ") + "\n\n")
	b.WriteString(w.summary.View())
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render(fmt.Sprintf("Press enter to submit this %s", strings.ToLower(w.ctl.DocumentType().Label()))))
	return b.String()
}

// renderSummary builds the read-only review shown on the last step
func (w Wizard) renderSummary() string {
	d := w.ctl.Draft()
	cur := d.Document.Currency
	orDash := func(s string) string {
		if strings.TrimSpace(s) == "" {
			return "-"
		}
		return s
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render("Client") + "\n")
	b.WriteString(fmt.Sprintf("  Name:    %s\n", orDash(d.Client.Name)))
	b.WriteString(fmt.Sprintf("  Email:   %s\n", orDash(d.Client.Email)))
	b.WriteString(fmt.Sprintf("  Address: %s\n", orDash(d.Client.Address)))
	b.WriteString(fmt.Sprintf("  Contact: %s\n", orDash(d.Client.Contact)))
	if d.Client.Save {
		b.WriteString("  Saved for later use\n")
	}
	b.WriteString("\n")

	b.WriteString(labelStyle.Render(d.Document.Type.Label()) + "\n")
	b.WriteString(fmt.Sprintf("  Number:   %s\n", orDash(d.Document.Number)))
	b.WriteString(fmt.Sprintf("  Date:     %s\n", w.opts.Dates.FormatDate(d.Document.IssueDate)))
	b.WriteString(fmt.Sprintf("  Currency: %s\n\n", cur.Code()))

	b.WriteString(labelStyle.Render(fmt.Sprintf("Items (%d)", len(d.Items))) + "\n")
	for _, it := range d.Items {
		b.WriteString(fmt.Sprintf("  • %s  %s × %s = %s\n",
			orDash(it.Description),
			it.Quantity.String(),
			w.opts.Formatter.Format(it.UnitValue, cur),
			w.opts.Formatter.Format(it.Total, cur),
		))
	}
	b.WriteString("\n")

	methods := make([]string, len(d.Terms.PaymentMethods))
	for i, m := range d.Terms.PaymentMethods {
		methods[i] = m.Label()
	}
	b.WriteString(labelStyle.Render("Terms") + "\n")
	b.WriteString(fmt.Sprintf("  Payment: %s\n", orDash(strings.Join(methods, ", "))))
	if w.ctl.BankDetailsEnabled() {
		b.WriteString(fmt.Sprintf("  Bank:    %s\n", orDash(d.Terms.BankDetails)))
	}
	if d.Terms.Deposit {
		b.WriteString(fmt.Sprintf("  Deposit: %s\n", w.opts.Formatter.Format(d.Terms.DepositValue, cur)))
	}
	b.WriteString(fmt.Sprintf("  Notes:   %s\n\n", orDash(d.Terms.Notes)))

	b.WriteString(labelStyle.Render("Total: ") + totalStyle.Render(w.ctl.DisplayTotal(w.opts.Formatter)))
	return b.String()
}
