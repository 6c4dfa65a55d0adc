package cli

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikelcalvo/invoice-cli/internal/billing"
	"github.com/mikelcalvo/invoice-cli/internal/config"
	"github.com/mikelcalvo/invoice-cli/internal/tui"
)

type fakeLauncher struct {
	shellOpts  *tui.Options
	wizardType billing.DocumentType
	wizardOpts *tui.Options
}

func (f *fakeLauncher) launcher() launcher {
	return launcher{
		shell: func(o tui.Options) error {
			f.shellOpts = &o
			return nil
		},
		wizard: func(t billing.DocumentType, o tui.Options) error {
			f.wizardType = t
			f.wizardOpts = &o
			return nil
		},
	}
}

func execute(t *testing.T, l launcher, args ...string) (string, error) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var out bytes.Buffer
	root := newRootCmd(l)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, defaultLauncher, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "invoice-cli v"+tui.Version)
	assert.Contains(t, out, tui.Author)
}

func TestNewRootCmdForTest_RunsVersion(t *testing.T) {
	var out bytes.Buffer
	cmd := NewRootCmdForTest()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "invoice-cli v"+tui.Version)
}

func TestRootCmd_LaunchesShellWithConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("currency: brl\nbrand: Acme\n"), 0600))

	f := &fakeLauncher{}
	_, err := execute(t, f.launcher(), "--config", dir)
	require.NoError(t, err)
	require.NotNil(t, f.shellOpts)
	assert.Equal(t, billing.BRL, f.shellOpts.Currency)
	assert.Equal(t, "Acme", f.shellOpts.Brand)
	assert.False(t, f.shellOpts.Strict)

	// session log lands next to the config
	data, err := os.ReadFile(filepath.Join(dir, "invoice-cli.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "session started")
}

func TestDocumentCmds_OpenWizard(t *testing.T) {
	for _, docType := range []billing.DocumentType{billing.DocumentQuote, billing.DocumentInvoice} {
		f := &fakeLauncher{}
		_, err := execute(t, f.launcher(), string(docType), "--config", t.TempDir(), "--currency", "eur", "--strict")
		require.NoError(t, err)
		assert.Equal(t, docType, f.wizardType)
		require.NotNil(t, f.wizardOpts)
		assert.Equal(t, billing.EUR, f.wizardOpts.Currency)
		assert.True(t, f.wizardOpts.Strict)
		assert.Equal(t, "INV-001", f.wizardOpts.NumberPlaceholder(billing.DocumentInvoice))
	}
}

func TestRootCmd_RejectsBadFlag(t *testing.T) {
	f := &fakeLauncher{}
	_, err := execute(t, f.launcher(), "tui", "--config", t.TempDir(), "--theme", "neon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neon")
	assert.Nil(t, f.shellOpts)
}

func TestConfigCmd_PrintsEffectiveConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("INVOICE_BRAND", "From Env")

	out, err := execute(t, defaultLauncher, "config", "--config", dir, "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "brand: From Env")
	assert.Contains(t, out, "log_level: debug")
	assert.Contains(t, out, "currency: usd")
}

func TestConfigInitCmd(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, defaultLauncher, "config", "init", "--config", dir, "--currency", "brl")
	require.NoError(t, err)
	assert.Contains(t, out, "Created")

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "brl", cfg.Currency)

	_, err = execute(t, defaultLauncher, "config", "init", "--config", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, defaultLauncher, "config", "init", "--config", dir, "--force")
	require.NoError(t, err)
}
