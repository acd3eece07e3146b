package currency

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"wallet-watch/internal/models"
	"wallet-watch/internal/rpc"
)

// USD is the quote currency CoinCap prices assets in.
const USD = "USD"

// ErrUnknownCurrency is returned when CoinCap has no rate for the requested
// currency symbol.
var ErrUnknownCurrency = errors.New("unknown currency")

type assetsResponse struct {
	Data []struct {
		ID       string `json:"id"`
		Symbol   string `json:"symbol"`
		PriceUsd string `json:"priceUsd"`
	} `json:"data"`
}

type ratesResponse struct {
	Data []struct {
		ID      string `json:"id"`
		Symbol  string `json:"symbol"`
		RateUsd string `json:"rateUsd"`
	} `json:"data"`
}

// Converter turns coin amounts into fiat using CoinCap.
type Converter struct {
	BaseURL string
	Client  *rpc.Client
	Logger  *zerolog.Logger
}

func NewConverter(baseURL string, client *rpc.Client, logger *zerolog.Logger) *Converter {
	return &Converter{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  client,
		Logger:  logger,
	}
}

// FetchCurrencyPrice converts amount of chain's coin into currency. USD uses the
// asset price directly, any other currency is divided by its USD rate.
func (c *Converter) FetchCurrencyPrice(ctx context.Context, chain models.Chain, currency string, amount decimal.Decimal) (float64, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))

	priceUsd, err := c.assetPriceUsd(ctx, chain)
	if err != nil {
		return 0, err
	}

	value := priceUsd.Mul(amount)
	if currency == USD {
		return value.InexactFloat64(), nil
	}

	rateUsd, err := c.rateUsd(ctx, currency)
	if err != nil {
		return 0, err
	}
	if rateUsd.IsZero() {
		return 0, fmt.Errorf("coincap: zero rate for %s", currency)
	}

	converted := value.Div(rateUsd)

	c.Logger.Debug().
		Str("chain", chain.String()).
		Str("currency", currency).
		Str("amount", amount.String()).
		Str("converted", converted.String()).
		Msg("Converted amount")

	return converted.InexactFloat64(), nil
}

func (c *Converter) assetPriceUsd(ctx context.Context, chain models.Chain) (decimal.Decimal, error) {
	q := url.Values{}
	q.Set("search", chain.String())
	q.Set("limit", "1")

	var resp assetsResponse
	if err := c.Client.GetJSON(ctx, fmt.Sprintf("%s/assets?%s", c.BaseURL, q.Encode()), &resp); err != nil {
		return decimal.Zero, err
	}
	if len(resp.Data) == 0 {
		return decimal.Zero, fmt.Errorf("coincap: no asset matches %s", chain)
	}

	price, err := decimal.NewFromString(resp.Data[0].PriceUsd)
	if err != nil {
		return decimal.Zero, fmt.Errorf("coincap: invalid priceUsd %q: %w", resp.Data[0].PriceUsd, err)
	}
	return price, nil
}

func (c *Converter) rateUsd(ctx context.Context, currency string) (decimal.Decimal, error) {
	var resp ratesResponse
	if err := c.Client.GetJSON(ctx, fmt.Sprintf("%s/rates", c.BaseURL), &resp); err != nil {
		return decimal.Zero, err
	}

	for _, rate := range resp.Data {
		if rate.Symbol != currency {
			continue
		}
		value, err := decimal.NewFromString(rate.RateUsd)
		if err != nil {
			return decimal.Zero, fmt.Errorf("coincap: invalid rateUsd %q: %w", rate.RateUsd, err)
		}
		return value, nil
	}
	return decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownCurrency, currency)
}
