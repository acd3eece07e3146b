package currency

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"wallet-watch/internal/models"
	"wallet-watch/internal/rpc"
)

func newCoinCapServer(t *testing.T, assetsStatus, ratesStatus int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/assets":
			if r.URL.Query().Get("limit") != "1" {
				t.Errorf("unexpected limit %q", r.URL.Query().Get("limit"))
			}
			w.WriteHeader(assetsStatus)
			switch r.URL.Query().Get("search") {
			case "btc":
				_, _ = w.Write([]byte(`{"data":[{"id":"bitcoin","symbol":"BTC","priceUsd":"100"}]}`))
			case "eth":
				_, _ = w.Write([]byte(`{"data":[{"id":"ethereum","symbol":"ETH","priceUsd":"2500.5"}]}`))
			default:
				_, _ = w.Write([]byte(`{"data":[]}`))
			}
		case "/rates":
			w.WriteHeader(ratesStatus)
			_, _ = w.Write([]byte(`{"data":[
				{"id":"euro","symbol":"EUR","rateUsd":"1.25"},
				{"id":"british-pound-sterling","symbol":"GBP","rateUsd":"1.6"}
			]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func newTestConverter(serverURL string) *Converter {
	logger := zerolog.New(nil)
	client := rpc.NewClient("coincap", "", 0, 1, time.Millisecond, 5*time.Second, &logger)
	return NewConverter(serverURL, client, &logger)
}

func TestFetchCurrencyPrice(t *testing.T) {
	server := newCoinCapServer(t, http.StatusOK, http.StatusOK)
	defer server.Close()
	c := newTestConverter(server.URL)

	tests := []struct {
		name     string
		chain    models.Chain
		currency string
		amount   string
		want     float64
	}{
		{name: "usd", chain: models.Bitcoin, currency: "USD", amount: "2", want: 200},
		{name: "lowercase usd", chain: models.Bitcoin, currency: "usd", amount: "0.5", want: 50},
		{name: "eur divides by rate", chain: models.Bitcoin, currency: "EUR", amount: "2", want: 160},
		{name: "eth gbp", chain: models.Ethereum, currency: "GBP", amount: "1", want: 1562.8125},
		{name: "zero amount", chain: models.Ethereum, currency: "USD", amount: "0", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.FetchCurrencyPrice(context.Background(), tt.chain, tt.currency, decimal.RequireFromString(tt.amount))
			if err != nil {
				t.Fatalf("FetchCurrencyPrice() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("FetchCurrencyPrice() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFetchCurrencyPrice_UnknownCurrency(t *testing.T) {
	server := newCoinCapServer(t, http.StatusOK, http.StatusOK)
	defer server.Close()

	_, err := newTestConverter(server.URL).FetchCurrencyPrice(context.Background(), models.Bitcoin, "XYZ", decimal.NewFromInt(1))
	if !errors.Is(err, ErrUnknownCurrency) {
		t.Fatalf("expected ErrUnknownCurrency, got %v", err)
	}
}

func TestFetchCurrencyPrice_Unavailable(t *testing.T) {
	tests := []struct {
		name         string
		assetsStatus int
		ratesStatus  int
		currency     string
	}{
		{name: "assets down", assetsStatus: http.StatusTooManyRequests, ratesStatus: http.StatusOK, currency: "USD"},
		{name: "rates down", assetsStatus: http.StatusOK, ratesStatus: http.StatusBadGateway, currency: "EUR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newCoinCapServer(t, tt.assetsStatus, tt.ratesStatus)
			defer server.Close()

			_, err := newTestConverter(server.URL).FetchCurrencyPrice(context.Background(), models.Bitcoin, tt.currency, decimal.NewFromInt(1))
			if !errors.Is(err, rpc.ErrUnavailable) {
				t.Errorf("expected rpc.ErrUnavailable, got %v", err)
			}
		})
	}
}
