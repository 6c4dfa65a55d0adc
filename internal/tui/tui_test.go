package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikelcalvo/invoice-cli/internal/billing"
)

func sendShell(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func newTestShell(t *testing.T) Model {
	t.Helper()
	opts := testOptions(nil)
	opts.Brand = "Acme Billing"
	m, _ := sendShell(NewTUI(opts), tea.WindowSizeMsg{Width: 140, Height: 50})
	return m
}

func TestShell_LoadingBeforeSize(t *testing.T) {
	assert.Equal(t, "Loading...", NewTUI(Options{}).View())
}

func TestShell_RendersPages(t *testing.T) {
	m := newTestShell(t)
	view := m.View()

	assert.Contains(t, view, "Acme Billing")
	assert.Contains(t, view, "Quotes")
	assert.Contains(t, view, "Invoices")
	assert.Contains(t, view, "Create a new quote")
	assert.Contains(t, view, "v"+Version)
}

func TestShell_OpensWizardForSelectedPage(t *testing.T) {
	m := newTestShell(t)

	m, _ = sendShell(m, keyMsg("down"))
	assert.Equal(t, "Invoices", m.activePage().title)

	m, _ = sendShell(m, keyMsg("enter"))
	require.Equal(t, ViewWizard, m.view)
	assert.Equal(t, billing.DocumentInvoice, m.wizard.Controller().DocumentType())
	assert.Equal(t, []string{"Invoices", "New invoice"}, m.breadcrumbs)
	assert.Contains(t, m.View(), "Client & Document")
}

func TestShell_NewKeyOpensQuoteWizard(t *testing.T) {
	m := newTestShell(t)
	m, _ = sendShell(m, keyMsg("n"))
	require.Equal(t, ViewWizard, m.view)
	assert.Equal(t, billing.DocumentQuote, m.wizard.Controller().DocumentType())
}

func TestShell_WizardReceivesKeysAndEscReturns(t *testing.T) {
	m := newTestShell(t)
	m, _ = sendShell(m, keyMsg("enter"))

	// 'q' is text inside the wizard, not quit
	m, _ = sendShell(m, keyMsg("q"))
	assert.Equal(t, "q", m.wizard.Controller().Draft().Client.Name)

	m, cmd := sendShell(m, keyMsg("esc"))
	require.NotNil(t, cmd)
	m, _ = sendShell(m, cmd())
	assert.Equal(t, ViewPage, m.view)
	assert.Equal(t, []string{"Quotes"}, m.breadcrumbs)
}

func TestShell_QuitFromPage(t *testing.T) {
	m := newTestShell(t)
	_, cmd := sendShell(m, keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
