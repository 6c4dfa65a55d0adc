package billing_test

import (
	"testing"

	"github.com/mikelcalvo/invoice-cli/internal/billing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fields(errs billing.ValidationErrors) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Field
	}
	return out
}

func TestValidateStep_ClientDocument(t *testing.T) {
	ctl, _ := newController(t)
	assert.Equal(t, []string{"client name"}, fields(ctl.ValidateStep(billing.StepClientDocument)))

	require.NoError(t, ctl.SetField(billing.FieldClientName, "Jhon Doe"))
	require.NoError(t, ctl.SetField(billing.FieldClientEmail, "not-an-email"))
	assert.Equal(t, []string{"client email"}, fields(ctl.ValidateStep(billing.StepClientDocument)))

	require.NoError(t, ctl.SetField(billing.FieldClientEmail, "jhon@doe.com"))
	assert.Empty(t, ctl.ValidateStep(billing.StepClientDocument))
}

func TestValidateStep_Items(t *testing.T) {
	ctl, _ := newController(t)
	tok := ctl.Draft().Items[0].Token
	assert.Equal(t, []string{"item 1"}, fields(ctl.ValidateStep(billing.StepItems)))

	require.NoError(t, ctl.UpdateLineItem(tok, billing.ItemDescription, "Design"))
	assert.Empty(t, ctl.ValidateStep(billing.StepItems))

	ctl.RemoveLineItem(tok)
	assert.Equal(t, []string{"items"}, fields(ctl.ValidateStep(billing.StepItems)))
}

func TestValidateStep_Terms(t *testing.T) {
	ctl, _ := newController(t)
	assert.Empty(t, ctl.ValidateStep(billing.StepTerms))

	require.NoError(t, ctl.TogglePaymentMethod(billing.PaymentBankTransfer))
	ctl.ToggleDeposit()
	assert.Equal(t, []string{"bank details", "deposit value"}, fields(ctl.ValidateStep(billing.StepTerms)))

	require.NoError(t, ctl.SetField(billing.FieldBankDetails, "IBAN"))
	require.NoError(t, ctl.SetField(billing.FieldDepositValue, "50"))
	assert.Empty(t, ctl.ValidateStep(billing.StepTerms))
}

func TestValidationErrors_Error(t *testing.T) {
	errs := billing.ValidationErrors{
		{Field: "client name", Message: "is required"},
		{Field: "item 1", Message: "description is required"},
	}
	assert.Equal(t, "client name: is required; item 1: description is required", errs.Error())
}
