package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mikelcalvo/invoice-cli/internal/billing"
	"github.com/mikelcalvo/invoice-cli/internal/logger"
	"github.com/mikelcalvo/invoice-cli/internal/tui"
)

func newTUICmd(g *globalFlags, l launcher) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the Quotes and Invoices pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, g, l)
		},
	}
}

func newDocumentCmd(docType billing.DocumentType, g *globalFlags, l launcher) *cobra.Command {
	return &cobra.Command{
		Use:   string(docType),
		Short: "Open the wizard for a new " + string(docType),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, closeLog, err := sessionOptions(cmd, g)
			if err != nil {
				return err
			}
			defer closeLog()
			return l.wizard(docType, opts)
		},
	}
}

func runShell(cmd *cobra.Command, g *globalFlags, l launcher) error {
	opts, closeLog, err := sessionOptions(cmd, g)
	if err != nil {
		return err
	}
	defer closeLog()
	return l.shell(opts)
}

// sessionOptions builds the TUI options from the effective config. The TUI
// owns the terminal, so logging goes to the configured file.
func sessionOptions(cmd *cobra.Command, g *globalFlags) (tui.Options, func(), error) {
	cfg, err := g.effectiveConfig(cmd)
	if err != nil {
		return tui.Options{}, nil, err
	}

	logPath := cfg.LogFile
	if !filepath.IsAbs(logPath) {
		logPath = filepath.Join(g.configDir, logPath)
	}
	log, closer, err := logger.OpenFile(logPath, cfg.LogLevel)
	if err != nil {
		return tui.Options{}, nil, err
	}
	log.Info("session started", "command", cmd.Name(), "currency", cfg.Currency, "strict", cfg.StrictValidation)

	opts := tui.Options{
		Brand:             cfg.Brand,
		Theme:             cfg.Theme,
		Currency:          cfg.CurrencyCode(),
		Strict:            cfg.StrictValidation,
		Formatter:         billing.LocaleFormatter{},
		Submitter:         billing.NewLogSubmitter(log),
		Logger:            log,
		NumberPlaceholder: cfg.NumberPlaceholder,
	}
	return opts, func() { _ = closer.Close() }, nil
}
