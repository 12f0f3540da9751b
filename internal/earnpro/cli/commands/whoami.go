package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/forms"
)

func WhoamiCmd(env Env) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, store, _, err := env()
			if err != nil {
				return err
			}
			if !store.HasToken() {
				return errors.New("not logged in")
			}
			user, err := svc.Profile(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s <%s>\n", user.Name, user.Email)
			fmt.Fprintf(out, "Role:    %s\n", user.Role)
			fmt.Fprintf(out, "Plan:    %s\n", user.Plan)
			fmt.Fprintf(out, "Balance: %s\n", forms.FormatCurrency(user.Balance))
			return nil
		},
	}
}
