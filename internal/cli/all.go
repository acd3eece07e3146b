package cli

import (
	"context"

	"github.com/spf13/cobra"

	"wallet-watch/internal/currency"
	"wallet-watch/internal/database"
	"wallet-watch/internal/models"
)

func newAllCmd(app *App) *cobra.Command {
	var code string

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Show BTC balances, ETH balances and ETH transactions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			app.run(cmd, func(ctx context.Context) error {
				return app.withServices(ctx, func(store *database.Store, svc *Services) error {
					// A failing section is reported and the next one still runs.
					sections := []func() error{
						func() error { return app.balances(ctx, store, svc, models.Bitcoin, code) },
						func() error { return app.balances(ctx, store, svc, models.Ethereum, code) },
						func() error { return app.transactions(ctx, store, svc) },
					}
					for _, section := range sections {
						if err := section(); err != nil {
							app.fail(cmd, err)
						}
					}
					return nil
				})
			})
		},
	}

	cmd.Flags().StringVar(&code, "currency", currency.USD, "fiat currency to convert balances into")

	return cmd
}
