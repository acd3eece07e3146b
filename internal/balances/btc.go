package balances

import (
	"context"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"wallet-watch/internal/rpc"
)

const satoshiDecimals = 8

type blockonomicsRequest struct {
	Addr string `json:"addr"`
}

type blockonomicsResponse struct {
	Response []struct {
		Addr        string         `json:"addr"`
		Confirmed   btcutil.Amount `json:"confirmed"`
		Unconfirmed btcutil.Amount `json:"unconfirmed"`
	} `json:"response"`
}

// BtcBalances reads confirmed balances from the Blockonomics balance API.
type BtcBalances struct {
	BaseURL string
	Client  *rpc.Client
	Logger  *zerolog.Logger
}

func NewBtcBalances(baseURL string, client *rpc.Client, logger *zerolog.Logger) *BtcBalances {
	return &BtcBalances{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  client,
		Logger:  logger,
	}
}

// GetBtcBalance returns the confirmed balance of address in BTC. A non-200
// reply yields an error matching rpc.ErrUnavailable.
func (b *BtcBalances) GetBtcBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	var resp blockonomicsResponse
	url := fmt.Sprintf("%s/balance", b.BaseURL)
	if err := b.Client.PostJSON(ctx, url, blockonomicsRequest{Addr: address}, &resp); err != nil {
		return decimal.Zero, err
	}

	if len(resp.Response) == 0 {
		return decimal.Zero, fmt.Errorf("blockonomics: no balance entry for %s", address)
	}

	confirmed := resp.Response[0].Confirmed

	b.Logger.Debug().
		Str("address", address).
		Str("confirmed", confirmed.String()).
		Msg("Fetched bitcoin balance")

	return decimal.New(int64(confirmed), -satoshiDecimals), nil
}
