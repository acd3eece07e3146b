package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"wallet-watch/internal/database"
	"wallet-watch/internal/explorer"
	"wallet-watch/internal/models"
	"wallet-watch/internal/rpc"
	"wallet-watch/internal/ui"
)

func newTransactionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "transactions",
		Short: "Show recent transactions of the stored ETH addresses",
		Long:  "Transactions are served from the local store and fetched from Etherscan only when none are cached yet.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			app.run(cmd, func(ctx context.Context) error {
				return app.withServices(ctx, func(store *database.Store, svc *Services) error {
					return app.transactions(ctx, store, svc)
				})
			})
		},
	}
}

func (a *App) transactions(ctx context.Context, store *database.Store, svc *Services) error {
	addresses, err := store.AddressesByChain(ctx, models.Ethereum)
	if err != nil {
		return err
	}
	if len(addresses) == 0 {
		a.UI.Warn("No ETH addresses stored, run setup first.")
		return nil
	}

	for _, addr := range addresses {
		a.UI.Heading(fmt.Sprintf("Last %d transactions for %s", explorer.MaxTransactions, addr.Address))

		stop := a.UI.Spinner("Fetching transactions...")
		txns, err := svc.Transactions.FetchEthTransactions(ctx, addr.Address)
		stop()
		if errors.Is(err, rpc.ErrUnavailable) {
			a.Logger.Warn().Err(err).Str("address", addr.Address).Msg("Transactions unavailable")
			a.UI.Warn("Transactions unavailable: %s", notAvailable)
			continue
		}
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(txns))
		for _, tx := range txns {
			rows = append(rows, []string{
				strconv.FormatInt(tx.ID, 10),
				ui.HashOrAddr(tx.Hash),
				ui.HashOrAddr(tx.From),
				ui.HashOrAddr(tx.To),
				tx.Type.String(),
				tx.Value,
			})
		}
		a.UI.Table([]string{"ID", "Txn Hash", "From", "To", "Txn Type", "Value(Wei)"}, rows)
	}
	return nil
}
