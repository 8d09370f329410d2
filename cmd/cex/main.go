package main

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/minicex/minicex/cli/internal/api"
	"github.com/minicex/minicex/cli/internal/cmd"
	"github.com/minicex/minicex/cli/internal/config"
	"github.com/minicex/minicex/cli/internal/health"
	"github.com/minicex/minicex/cli/internal/session"
	"github.com/minicex/minicex/cli/internal/store"
	"github.com/minicex/minicex/cli/internal/ui"
	"github.com/minicex/minicex/cli/internal/ui/components"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Debug("command failed")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "cex",
		Short: "cex - Minimal CEX client",
		Long:  "cex CLI: point at an exchange API, log in, check service health, and inspect your session.",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(cmd.APICmd())
	root.AddCommand(cmd.HealthCmd())
	root.AddCommand(cmd.RegisterCmd())
	root.AddCommand(cmd.LoginCmd())
	root.AddCommand(cmd.SessionCmd())
	root.AddCommand(cmd.KYCCmd())
	root.AddCommand(cmd.BalancesCmd())
	return root
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")

	log.SetHandler(cli.New(os.Stderr))
	log.SetLevel(log.InfoLevel)
}

func runTUI() error {
	if !isInteractiveTerminal(os.Stdin) || !isInteractiveTerminal(os.Stdout) {
		return fmt.Errorf("status screen needs a terminal; try 'cex health' or 'cex session'")
	}

	st, err := store.OpenDefault()
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	cfg := config.Load(st)
	sess := session.Get(st)

	board := components.NewBoard(ui.HealthIndicatorID)
	prober := health.NewProber(api.NewSessionClient(cfg, sess), board)
	model := ui.NewStatusModel(cfg, sess, prober, board)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
