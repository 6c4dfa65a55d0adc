package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mikelcalvo/invoice-cli/internal/billing"
	"github.com/mikelcalvo/invoice-cli/internal/config"
	"github.com/mikelcalvo/invoice-cli/internal/tui"
)

// launcher starts the interactive screens
type launcher struct {
	shell  func(tui.Options) error
	wizard func(billing.DocumentType, tui.Options) error
}

var defaultLauncher = launcher{
	shell:  tui.RunTUI,
	wizard: tui.RunWizard,
}

// globalFlags are the persistent flags shared by every command
type globalFlags struct {
	configDir string
	currency  string
	theme     string
	logLevel  string
	strict    bool
}

// effectiveConfig loads the config directory and applies flag overrides
func (g *globalFlags) effectiveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(g.configDir)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("currency") {
		cfg.Currency = g.currency
	}
	if flags.Changed("theme") {
		cfg.Theme = g.theme
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = g.logLevel
	}
	if flags.Changed("strict") {
		cfg.StrictValidation = g.strict
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func newRootCmd(l launcher) *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "invoice-cli",
		Short: "Create quotes and invoices from the terminal",
		Long:  "Invoice CLI walks you through client, items, terms and review to build a quote or an invoice.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, g, l)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&g.configDir, "config", ".", "Directory holding "+config.FileName+" and .env")
	pf.StringVar(&g.currency, "currency", "", "Default currency (usd, eur, brl)")
	pf.StringVar(&g.theme, "theme", "", "Color theme (system, light, dark)")
	pf.StringVar(&g.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.BoolVar(&g.strict, "strict", false, "Block Next while the current step has validation errors")

	cmd.AddCommand(newTUICmd(g, l))
	cmd.AddCommand(newDocumentCmd(billing.DocumentQuote, g, l))
	cmd.AddCommand(newDocumentCmd(billing.DocumentInvoice, g, l))
	cmd.AddCommand(newConfigCmd(g))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd(defaultLauncher)
}

func Execute() error {
	return newRootCmd(defaultLauncher).Execute()
}
