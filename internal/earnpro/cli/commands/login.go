package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/api"
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/auth"
)

func LoginCmd(env Env) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fe := auth.ValidateLogin(email, password); !fe.Valid() {
				for _, msg := range fe {
					return errors.New(msg)
				}
			}
			svc, store, _, err := env()
			if err != nil {
				return err
			}
			resp, err := svc.Login(cmd.Context(), api.LoginRequest{Email: email, Password: password})
			if err != nil {
				return err
			}
			store.Start(resp.Token, resp.User)
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", resp.User.Name, resp.User.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func LogoutCmd(env Env) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Destroy the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, store, _, err := env()
			if err != nil {
				return err
			}
			// Best effort server side; the local token goes regardless.
			_ = svc.Logout(cmd.Context())
			store.Clear()
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}
