package billing

import (
	"fmt"
	"net/mail"
	"strings"
)

// ValidationError is a problem with a single field of a step
type ValidationError struct {
	Step    Step
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found on a step
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// ValidateStep checks the fields shown on the given step. It never blocks
// navigation by itself; the controller only consults it in strict mode.
func (c *Controller) ValidateStep(step Step) ValidationErrors {
	var errs ValidationErrors
	add := func(field, msg string) {
		errs = append(errs, ValidationError{Step: step, Field: field, Message: msg})
	}

	d := c.draft
	switch step {
	case StepClientDocument:
		if strings.TrimSpace(d.Client.Name) == "" {
			add("client name", "is required")
		}
		if email := strings.TrimSpace(d.Client.Email); email != "" {
			if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
				add("client email", "is not a valid email address")
			}
		}

	case StepItems:
		if len(d.Items) == 0 {
			add("items", "add at least one line item")
		}
		for i, item := range d.Items {
			if strings.TrimSpace(item.Description) == "" {
				add(fmt.Sprintf("item %d", i+1), "description is required")
			}
		}

	case StepTerms:
		if c.BankDetailsEnabled() && strings.TrimSpace(d.Terms.BankDetails) == "" {
			add("bank details", "required for bank transfer")
		}
		if c.DepositValueEnabled() && !d.Terms.DepositValue.IsPositive() {
			add("deposit value", "must be greater than zero")
		}
	}

	return errs
}
