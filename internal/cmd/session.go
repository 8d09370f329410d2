package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/minicex/minicex/cli/internal/session"
)

// SessionCmd returns the `cex session` command group.
func SessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Show or store the local session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, _, err := openState()
			if err != nil {
				return err
			}
			printSession(cmd.OutOrStdout(), session.Get(st))
			return nil
		},
	}
	cmd.AddCommand(sessionSaveCmd())
	cmd.AddCommand(sessionHeadersCmd())
	return cmd
}

func printSession(out io.Writer, sess session.Session) {
	token := "(none)"
	if sess.LoggedIn() {
		token = "(present)"
	}
	fmt.Fprintf(out, "user:       %s\n", sess.User)
	fmt.Fprintf(out, "admin:      %t\n", sess.IsAdmin)
	fmt.Fprintf(out, "kyc_status: %s\n", sess.KYCStatus)
	fmt.Fprintf(out, "email:      %s\n", sess.Email)
	fmt.Fprintf(out, "token:      %s\n", token)
}

func sessionSaveCmd() *cobra.Command {
	var (
		token, user, kyc, email string
		admin                   bool
	)
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Store a session issued elsewhere",
		Long:  "Overwrites token, user, admin flag and KYC status. The email is only written when --email is given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, _, err := openState()
			if err != nil {
				return err
			}
			var opts []session.SaveOption
			if cmd.Flags().Changed("email") {
				opts = append(opts, session.WithEmail(email))
			}
			if err := session.Save(st, token, user, admin, kyc, opts...); err != nil {
				return fmt.Errorf("save session: %w", err)
			}
			printSession(cmd.OutOrStdout(), session.Get(st))
			return nil
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "bearer token")
	cmd.Flags().StringVar(&user, "user", "", "user id")
	cmd.Flags().BoolVar(&admin, "admin", false, "mark the user as admin")
	cmd.Flags().StringVar(&kyc, "kyc", "", "KYC status (default pending)")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	return cmd
}

func sessionHeadersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "headers",
		Short: "Print the auth headers derived from the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, _, err := openState()
			if err != nil {
				return err
			}
			headers := session.AuthHeaders(st)
			keys := make([]string, 0, len(headers))
			for k := range headers {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", k, headers.Get(k))
			}
			return nil
		},
	}
}
