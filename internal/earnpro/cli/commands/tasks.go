package commands

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/domain"
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/forms"
)

func TasksCmd(env Env) *cobra.Command {
	var pendingOnly bool
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List available tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, store, _, err := env()
			if err != nil {
				return err
			}
			if !store.HasToken() {
				return errors.New("not logged in")
			}
			tasks, err := svc.Tasks(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, t := range tasks {
				if pendingOnly && t.Status != domain.TaskPending {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Title, forms.FormatCurrency(t.Reward), t.Status)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&pendingOnly, "pending", false, "Only show tasks you can still complete")
	return cmd
}
