package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"wallet-watch/internal/database"
	"wallet-watch/internal/models"
	"wallet-watch/internal/validation"
)

func newSetupCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Register the BTC and ETH addresses to watch",
		Long:  "Recreates the local store, then asks for comma-separated BTC and ETH addresses and saves them.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			app.run(cmd, app.setup)
		},
	}
}

func (a *App) setup(ctx context.Context) error {
	store, err := database.InitStore(ctx, a.dbPath, a.Logger)
	if err != nil {
		return err
	}
	defer store.Close()

	btc := a.promptAddresses(models.Bitcoin)
	eth := a.promptAddresses(models.Ethereum)

	for _, list := range []struct {
		chain     models.Chain
		addresses []string
	}{{models.Bitcoin, btc}, {models.Ethereum, eth}} {
		for _, address := range list.addresses {
			if _, err := store.AddAddress(ctx, address, list.chain); err != nil {
				return err
			}
		}
	}

	a.Logger.Info().
		Int("btc", len(btc)).
		Int("eth", len(eth)).
		Msg("Saved addresses")

	a.UI.Success("BTC & ETH addresses saved to DB!")
	return nil
}

// promptAddresses reads one comma-separated list. Validation stops at the
// first invalid entry, which is reported; only the entries before it are kept.
func (a *App) promptAddresses(chain models.Chain) []string {
	input := a.UI.Ask("Enter " + chain.Symbol() + " addresses separated by a comma: ")

	var valid []string
	for _, address := range splitAddresses(input) {
		if err := validation.ValidateAddress(address, chain); err != nil {
			a.Logger.Warn().
				Err(err).
				Str("chain", chain.String()).
				Str("address", address).
				Msg("Rejected address")
			a.UI.Error("One or more of the %s addresses provided are invalid!", chain.Symbol())
			break
		}
		valid = append(valid, address)
	}
	return valid
}

func splitAddresses(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
