package cmd

import (
	"fmt"

	"github.com/apex/log"
	"github.com/spf13/cobra"
)

// APICmd returns the `cex api` command.
func APICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "api [url]",
		Short: "Show or set the API base URL",
		Long:  "Without arguments, prints the API base URL. With a URL, stores it (surrounding whitespace is trimmed).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := openState()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				if err := cfg.SetAPIURL(args[0]); err != nil {
					return fmt.Errorf("set api url: %w", err)
				}
				log.WithField("api", cfg.APIURL()).Debug("api url updated")
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfg.APIURL())
			return nil
		},
	}
}
