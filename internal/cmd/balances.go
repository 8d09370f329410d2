package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/minicex/minicex/cli/internal/api"
)

// BalancesCmd returns the `cex balances` command.
func BalancesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balances",
		Short: "Show wallet balances for the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, cfg, err := openState()
			if err != nil {
				return err
			}
			sess, err := requireSession(st)
			if err != nil {
				return err
			}

			b, err := api.NewSessionClient(cfg, sess).Balances(cmd.Context(), sess.User)
			if err != nil {
				return fmt.Errorf("balances: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(b.Balances) == 0 {
				fmt.Fprintln(out, "no balances")
				return nil
			}
			assets := make([]string, 0, len(b.Balances))
			for asset := range b.Balances {
				assets = append(assets, asset)
			}
			sort.Strings(assets)
			for _, asset := range assets {
				bal := b.Balances[asset]
				fmt.Fprintf(out, "  %-6s total %s  available %s  locked %s\n", asset, bal.Total, bal.Available, bal.Locked)
			}
			return nil
		},
	}
}
