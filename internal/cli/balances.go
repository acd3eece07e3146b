package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"wallet-watch/internal/currency"
	"wallet-watch/internal/database"
	"wallet-watch/internal/models"
	"wallet-watch/internal/rpc"
	"wallet-watch/internal/ui"
)

const notAvailable = "N/A"

func newBalancesCmd(app *App) *cobra.Command {
	var chain, code string

	cmd := &cobra.Command{
		Use:   "balances",
		Short: "Show balances of the stored addresses of one chain",
		Long: `For BTC, shows the confirmed balance of every stored Bitcoin address.
For ETH, shows the Ether balance and the nonzero ERC-20 token balances of every
stored Ethereum address. Balances are also converted to --currency.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			app.run(cmd, func(ctx context.Context) error {
				parsed, err := models.ParseChain(chain)
				if err != nil {
					return err
				}
				return app.withServices(ctx, func(store *database.Store, svc *Services) error {
					return app.balances(ctx, store, svc, parsed, code)
				})
			})
		},
	}

	cmd.Flags().StringVarP(&chain, "chain", "c", "", "chain to report: btc or eth")
	cmd.Flags().StringVar(&code, "currency", currency.USD, "fiat currency to convert balances into")
	_ = cmd.MarkFlagRequired("chain")

	return cmd
}

func (a *App) balances(ctx context.Context, store *database.Store, svc *Services, chain models.Chain, code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))

	addresses, err := store.AddressesByChain(ctx, chain)
	if err != nil {
		return err
	}
	if len(addresses) == 0 {
		a.UI.Warn("No %s addresses stored, run setup first.", chain.Symbol())
		return nil
	}

	stop := a.UI.Spinner(fmt.Sprintf("Fetching %s balances...", chain.Symbol()))
	var (
		headers []string
		rows    [][]string
	)
	switch chain {
	case models.Bitcoin:
		headers = []string{"BTC Address", "Balance(BTC)", fmt.Sprintf("Balance(%s)", code)}
		rows, err = a.btcRows(ctx, svc, addresses, code)
	case models.Ethereum:
		headers = []string{"ETH Address", "Ether Balance(ETH)", fmt.Sprintf("Ether Balance(%s)", code), "Token Name", "Token Balance"}
		rows, err = a.ethRows(ctx, svc, addresses, code)
	}
	stop()
	if err != nil {
		return err
	}

	a.UI.Heading(fmt.Sprintf("%s balances", chain.Symbol()))
	a.UI.Table(headers, rows)
	return nil
}

func (a *App) btcRows(ctx context.Context, svc *Services, addresses []models.Address, code string) ([][]string, error) {
	rows := make([][]string, 0, len(addresses))
	for _, addr := range addresses {
		balance, err := svc.Btc.GetBtcBalance(ctx, addr.Address)
		if err != nil {
			if !errors.Is(err, rpc.ErrUnavailable) {
				return nil, err
			}
			a.Logger.Warn().Err(err).Str("address", addr.Address).Msg("BTC balance unavailable")
			rows = append(rows, []string{ui.HashOrAddr(addr.Address), notAvailable, notAvailable})
			continue
		}

		converted, err := a.convert(ctx, svc, models.Bitcoin, code, balance)
		if err != nil {
			return nil, err
		}
		rows = append(rows, []string{ui.HashOrAddr(addr.Address), balance.String(), converted})
	}
	return rows, nil
}

// ethRows emits one row per nonzero token, repeating the Ether columns, or a
// single N/A token row when the address holds none.
func (a *App) ethRows(ctx context.Context, svc *Services, addresses []models.Address, code string) ([][]string, error) {
	var rows [][]string
	for _, addr := range addresses {
		balance, err := svc.Eth.GetEthBalance(ctx, addr.Address)
		if err != nil {
			return nil, err
		}

		converted, err := a.convert(ctx, svc, models.Ethereum, code, balance)
		if err != nil {
			return nil, err
		}

		tokens, err := svc.Tokens.GetEthTokenBalances(ctx, addr.Address)
		if err != nil {
			return nil, err
		}

		short := ui.HashOrAddr(addr.Address)
		if len(tokens) == 0 {
			rows = append(rows, []string{short, balance.String(), converted, notAvailable, notAvailable})
			continue
		}
		for _, token := range tokens {
			rows = append(rows, []string{short, balance.String(), converted, token.Name, token.Amount.String()})
		}
	}
	return rows, nil
}

// convert formats amount in code. An unavailable price API renders as N/A;
// an unknown currency is an error.
func (a *App) convert(ctx context.Context, svc *Services, chain models.Chain, code string, amount decimal.Decimal) (string, error) {
	value, err := svc.Converter.FetchCurrencyPrice(ctx, chain, code, amount)
	if errors.Is(err, rpc.ErrUnavailable) {
		a.Logger.Warn().Err(err).Str("currency", code).Msg("Price unavailable")
		return notAvailable, nil
	}
	if err != nil {
		return "", err
	}
	return decimal.NewFromFloat(value).StringFixed(2), nil
}
