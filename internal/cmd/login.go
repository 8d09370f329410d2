package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/minicex/minicex/cli/internal/api"
	"github.com/minicex/minicex/cli/internal/session"
	"github.com/minicex/minicex/cli/internal/store"
)

func readCredentials(in io.Reader, out io.Writer, userID string) (string, string, error) {
	reader := bufio.NewReader(in)
	if userID == "" {
		userID = prompt(reader, out, "user id: ")
	}
	if userID == "" {
		return "", "", fmt.Errorf("user id is required")
	}
	password := prompt(reader, out, "password: ")
	if password == "" {
		return "", "", fmt.Errorf("password is required")
	}
	return userID, password, nil
}

// RunInteractiveLogin prompts for credentials, calls the login API and stores the session.
func RunInteractiveLogin(ctx context.Context, in io.Reader, out io.Writer, userID string) error {
	userID, password, err := readCredentials(in, out, userID)
	if err != nil {
		return err
	}

	st, cfg, err := openState()
	if err != nil {
		return err
	}

	resp, err := api.NewClient(cfg.APIURL(), "").Login(ctx, userID, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := saveLogin(st, resp); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	fmt.Fprintf(out, "logged in as %s\n", resp.UserID)
	fmt.Fprintf(out, "session saved to %s\n", st.Location())
	return nil
}

// saveLogin stores a login response. A null email means the user has none on
// file, so it clears whatever email the previous session held.
func saveLogin(st store.Store, resp *api.LoginResponse) error {
	email := ""
	if resp.Email != nil {
		email = *resp.Email
	}
	log.WithField("user", resp.UserID).WithField("kyc", resp.KYCStatus).Debug("saving session")
	return session.Save(st, resp.AccessToken, resp.UserID, resp.IsAdmin, resp.KYCStatus, session.WithEmail(email))
}

// LoginCmd returns the `cex login` command.
func LoginCmd() *cobra.Command {
	var userID string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the exchange and store the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunInteractiveLogin(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), userID)
		},
	}
	cmd.Flags().StringVarP(&userID, "user", "u", "", "user id (prompted when empty)")
	return cmd
}

// RegisterCmd returns the `cex register` command.
func RegisterCmd() *cobra.Command {
	var userID string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an exchange account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			userID, password, err := readCredentials(cmd.InOrStdin(), out, userID)
			if err != nil {
				return err
			}

			_, cfg, err := openState()
			if err != nil {
				return err
			}

			resp, err := api.NewClient(cfg.APIURL(), "").Register(cmd.Context(), userID, password)
			if err != nil {
				return fmt.Errorf("register failed: %w", err)
			}

			role := "user"
			if resp.IsAdmin {
				role = "admin"
			}
			fmt.Fprintf(out, "registered %s (%s)\n", userID, role)
			fmt.Fprintln(out, "run 'cex login' to start a session")
			return nil
		},
	}
	cmd.Flags().StringVarP(&userID, "user", "u", "", "user id (prompted when empty)")
	return cmd
}
