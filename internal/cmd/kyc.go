package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minicex/minicex/cli/internal/api"
	"github.com/minicex/minicex/cli/internal/session"
)

// KYCCmd returns the `cex kyc` command group.
func KYCCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kyc",
		Short: "Know-your-customer verification",
	}
	cmd.AddCommand(kycSubmitCmd())
	return cmd
}

func kycSubmitCmd() *cobra.Command {
	var input api.KYCInput
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit KYC details for the logged-in user",
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
			if input.Email == "" {
				return fmt.Errorf("--email is required")
			}
			input.UserID = sess.User

			resp, err := api.NewSessionClient(cfg, sess).SubmitKYC(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("submit kyc: %w", err)
			}

			if err := session.Save(st, sess.Token, sess.User, sess.IsAdmin, resp.Status, session.WithEmail(resp.Email)); err != nil {
				return fmt.Errorf("save session: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "kyc %s for %s\n", resp.Status, resp.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&input.Email, "email", "", "contact email (required)")
	cmd.Flags().StringVar(&input.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&input.Country, "country", "", "country")
	cmd.Flags().StringVar(&input.DocumentID, "doc", "", "identity document id")
	return cmd
}
