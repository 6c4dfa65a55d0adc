package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mikelcalvo/invoice-cli/internal/billing"
)

// Version info
const (
	Version = "1.0.0"
	Author  = "Mikel Calvo"
	Year    = "2026"
)

const sidebarWidth = 26

// Options configures the shell and every wizard it mounts
type Options struct {
	Brand     string
	Theme     string
	Currency  billing.Currency
	Strict    bool
	Formatter billing.CurrencyFormatter
	Dates     billing.DateFormatter
	Submitter billing.Submitter
	Logger    *slog.Logger
	Clock     func() time.Time
	Tokens    billing.TokenSource
	// NumberPlaceholder suggests a document number for the type
	NumberPlaceholder func(billing.DocumentType) string
}

func (o Options) withDefaults() Options {
	if o.Brand == "" {
		o.Brand = "Invoice CLI"
	}
	if o.Currency == "" {
		o.Currency = billing.USD
	}
	if o.Formatter == nil {
		o.Formatter = billing.LocaleFormatter{}
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	if o.Dates.Now == nil {
		o.Dates.Now = o.Clock
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.NumberPlaceholder == nil {
		o.NumberPlaceholder = func(t billing.DocumentType) string {
			if t == billing.DocumentInvoice {
				return "INV-001"
			}
			return "QUO-001"
		}
	}
	return o
}

func (o Options) controllerOptions() []billing.Option {
	opts := []billing.Option{
		billing.WithCurrency(o.Currency),
		billing.WithClock(o.Clock),
		billing.WithLogger(o.Logger),
		billing.WithStrictValidation(o.Strict),
	}
	if o.Tokens != nil {
		opts = append(opts, billing.WithTokens(o.Tokens))
	}
	if o.Submitter != nil {
		opts = append(opts, billing.WithSubmitter(o.Submitter))
	}
	return opts
}

// View represents different screens
type View int

const (
	ViewPage View = iota
	ViewWizard
)

// PageItem is a sidebar entry hosting one document type
type PageItem struct {
	title       string
	description string
	docType     billing.DocumentType
}

func (i PageItem) Title() string       { return i.title }
func (i PageItem) Description() string { return i.description }
func (i PageItem) FilterValue() string { return i.title }

// Model is the main TUI model
type Model struct {
	opts        Options
	keys        shellKeys
	help        help.Model
	view        View
	width       int
	height      int
	sidebar     list.Model
	wizard      Wizard
	breadcrumbs []string
	message     string
}

// Messages
type wizardClosedMsg struct{}

type clearNotificationMsg struct{}

// NewTUI creates the shell with the Quotes and Invoices pages
func NewTUI(opts Options) Model {
	opts = opts.withDefaults()

	pages := []list.Item{
		PageItem{"Quotes", "New quote", billing.DocumentQuote},
		PageItem{"Invoices", "New invoice", billing.DocumentInvoice},
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(accentColor)

	sidebar := list.New(pages, delegate, 0, 0)
	sidebar.Title = opts.Brand
	sidebar.SetShowStatusBar(false)
	sidebar.SetFilteringEnabled(false)
	sidebar.SetShowHelp(false)
	sidebar.DisableQuitKeybindings()
	sidebar.Styles.Title = titleStyle

	return Model{
		opts:        opts,
		keys:        newShellKeys(),
		help:        help.New(),
		view:        ViewPage,
		sidebar:     sidebar,
		breadcrumbs: []string{"Quotes"},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// activePage returns the page selected in the sidebar
func (m Model) activePage() PageItem {
	if p, ok := m.sidebar.SelectedItem().(PageItem); ok {
		return p
	}
	return PageItem{"Quotes", "New quote", billing.DocumentQuote}
}

func (m Model) contentSize() (int, int) {
	return max(m.width-sidebarWidth-6, 20), max(m.height-6, 10)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.sidebar.SetSize(sidebarWidth, msg.Height-6)

		if m.view == ViewWizard {
			w, h := m.contentSize()
			updated, cmd := m.wizard.Update(tea.WindowSizeMsg{Width: w, Height: h})
			m.wizard = updated.(Wizard)
			return m, cmd
		}
		return m, nil

	case wizardClosedMsg:
		m.view = ViewPage
		m.breadcrumbs = []string{m.activePage().title}
		return m, nil

	case tea.KeyMsg:
		m.message = ""

		if key.Matches(msg, m.keys.Abort) {
			return m, tea.Quit
		}
		if m.view == ViewWizard {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Open), key.Matches(msg, m.keys.New):
			return m.handleEnter()
		}

		var cmd tea.Cmd
		m.sidebar, cmd = m.sidebar.Update(msg)
		m.breadcrumbs = []string{m.activePage().title}
		return m, cmd
	}

	if m.view == ViewWizard {
		updated, cmd := m.wizard.Update(msg)
		m.wizard = updated.(Wizard)
		return m, cmd
	}
	return m, nil
}

// handleEnter mounts a fresh wizard for the selected page
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	page := m.activePage()

	wiz, err := NewWizard(page.docType, m.opts)
	if err != nil {
		m.message = err.Error()
		return m, nil
	}

	w, h := m.contentSize()
	updated, _ := wiz.Update(tea.WindowSizeMsg{Width: w, Height: h})
	m.wizard = updated.(Wizard)
	m.view = ViewWizard
	m.breadcrumbs = []string{page.title, "New " + strings.ToLower(page.docType.Label())}
	return m, m.wizard.Init()
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.view {
	case ViewPage:
		content = m.renderPage()
	case ViewWizard:
		content = m.wizard.View()
	}

	var b strings.Builder

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderBreadcrumbs())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(m.sidebar.View()),
		lipgloss.NewStyle().PaddingLeft(2).Render(content),
	))

	if m.message != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.message))
	}

	if m.view == ViewPage {
		b.WriteString("\n\n")
		b.WriteString(m.renderHelp())
	}

	b.WriteString("\n")
	b.WriteString(m.renderCredits())

	return b.String()
}

func (m Model) renderPage() string {
	page := m.activePage()
	label := strings.ToLower(page.docType.Label())

	var b strings.Builder
	b.WriteString(titleStyle.Render(" "+page.title+" ") + "\n\n")
	b.WriteString(fmt.Sprintf("  Create a new %s in four steps:\n\n", label))
	for s := billing.StepClientDocument; s <= billing.StepFinish; s++ {
		b.WriteString(fmt.Sprintf("    %d. %s\n", int(s)+1, s.Title()))
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render(fmt.Sprintf("  Press enter or n to start a new %s", label)))

	return boxStyle.Render(b.String())
}

func (m Model) renderStatusBar() string {
	status := fmt.Sprintf(" %s | %s | %s ", m.opts.Brand, m.activePage().title, m.opts.Currency.Code())
	if m.opts.Strict {
		status += "| strict "
	}
	return statusBarStyle.Render(status)
}

func (m Model) renderBreadcrumbs() string {
	if len(m.breadcrumbs) == 0 {
		return ""
	}
	return breadcrumbStyle.Render("  " + strings.Join(m.breadcrumbs, " > "))
}

func (m Model) renderHelp() string {
	return m.help.View(m.keys)
}

func (m Model) renderCredits() string {
	return creditStyle.Render(fmt.Sprintf("Created by %s in %s • v%s", Author, Year, Version))
}

// RunTUI starts the shell
func RunTUI(opts Options) error {
	ApplyTheme(opts.Theme)
	p := tea.NewProgram(NewTUI(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RunWizard opens the wizard for one document type without the shell
func RunWizard(docType billing.DocumentType, opts Options) error {
	ApplyTheme(opts.Theme)
	wiz, err := NewWizard(docType, opts)
	if err != nil {
		return err
	}
	wiz.standalone = true
	p := tea.NewProgram(wiz, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
