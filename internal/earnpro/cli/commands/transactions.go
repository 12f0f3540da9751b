package commands

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/api"
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/domain"
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/forms"
)

func TransactionsCmd(env Env) *cobra.Command {
	var txType string
	var limit int
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List wallet transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch txType {
			case "", "deposit", "withdrawal", "task_reward":
			default:
				return fmt.Errorf("unknown transaction type %q", txType)
			}
			svc, store, _, err := env()
			if err != nil {
				return err
			}
			if !store.HasToken() {
				return errors.New("not logged in")
			}
			txs, err := svc.Transactions(cmd.Context(), api.Page{Limit: limit}, domain.TransactionType(txType))
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, tx := range txs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					forms.FormatDate(tx.CreatedAt), tx.Type, forms.FormatCurrency(tx.Amount), tx.Status, tx.Description)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&txType, "type", "", "Filter by type: deposit, withdrawal, task_reward")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of entries")
	return cmd
}
