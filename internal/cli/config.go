package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mikelcalvo/invoice-cli/internal/config"
)

func newConfigCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long:  "Print the configuration after applying " + config.FileName + ", .env, INVOICE_* variables and flags.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.effectiveConfig(cmd)
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", filepath.Join(g.configDir, config.FileName), data)
			return nil
		},
	}
	cmd.AddCommand(newConfigInitCmd(g))
	return cmd
}

func newConfigInitCmd(g *globalFlags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write " + config.FileName + " with default values",
		RunE: func(cmd *cobra.Command, args []string) error {
			dest := filepath.Join(g.configDir, config.FileName)
			if _, err := os.Stat(dest); err == nil {
				if !force {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%sOverwriting %s%s\n", Yellow, dest, Reset)
			}

			cfg := config.Default()
			if cmd.Flags().Changed("currency") {
				cfg.Currency = g.currency
			}
			if cmd.Flags().Changed("theme") {
				cfg.Theme = g.theme
			}

			path, err := config.Save(g.configDir, cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%sCreated %s%s\n", Green, path, Reset)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing "+config.FileName)
	return cmd
}
