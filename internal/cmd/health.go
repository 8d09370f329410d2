package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minicex/minicex/cli/internal/api"
	"github.com/minicex/minicex/cli/internal/health"
	"github.com/minicex/minicex/cli/internal/ui"
	"github.com/minicex/minicex/cli/internal/ui/components"
)

// HealthCmd returns the `cex health` command.
func HealthCmd() *cobra.Command {
	var (
		target string
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check the API health endpoint",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, cfg, err := openState()
			if err != nil {
				return err
			}

			board := components.NewBoard(ui.HealthIndicatorID)
			prober := health.NewProber(api.NewClient(cfg.APIURL(), ""), board)

			res, err := prober.PingHealth(cmd.Context(), target)
			if err != nil {
				return err
			}

			ind, _ := board.Lookup(target)
			fmt.Fprintln(cmd.OutOrStdout(), ind.Render())

			if strict && res.Outcome != health.Healthy {
				return fmt.Errorf("api %s", res.Outcome)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&target, "target", ui.HealthIndicatorID, "indicator to update")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero unless the API is healthy")
	return cmd
}
