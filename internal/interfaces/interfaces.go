package interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	"wallet-watch/internal/models"
)

// EventEmitter defines the interface for emitting events
type EventEmitter interface {
	EmitEvent(ctx context.Context, event models.TransactionEvent) error
}

// TransactionStore is the part of the persistence layer the transaction
// fetcher depends on.
type TransactionStore interface {
	AddEthTransaction(ctx context.Context, tx models.EthTransaction) (int64, error)
	EthTransactionsByAddress(ctx context.Context, address string) ([]models.EthTransaction, error)
}

// TransactionSource returns the most recent explorer transactions of an
// address, already classified.
type TransactionSource interface {
	GetEthTxns(ctx context.Context, address string) ([]models.RawTxn, error)
}

// BtcBalanceFetcher returns the confirmed BTC balance of an address.
type BtcBalanceFetcher interface {
	GetBtcBalance(ctx context.Context, address string) (decimal.Decimal, error)
}

// EthBalanceFetcher returns the Ether balance of an address.
type EthBalanceFetcher interface {
	GetEthBalance(ctx context.Context, address string) (decimal.Decimal, error)
}

// TokenBalanceFetcher returns the nonzero ERC-20 balances of an address.
type TokenBalanceFetcher interface {
	GetEthTokenBalances(ctx context.Context, address string) ([]models.TokenBalance, error)
}

// CurrencyConverter converts an amount of a chain's coin into a fiat currency.
type CurrencyConverter interface {
	FetchCurrencyPrice(ctx context.Context, chain models.Chain, currency string, amount decimal.Decimal) (float64, error)
}

// TransactionFetcher serves the cached transactions of an ETH address.
type TransactionFetcher interface {
	FetchEthTransactions(ctx context.Context, address string) ([]models.EthTransaction, error)
}

// AddressStore is the part of the persistence layer the commands use.
type AddressStore interface {
	AddAddress(ctx context.Context, address string, chain models.Chain) (int64, error)
	AddressesByChain(ctx context.Context, chain models.Chain) ([]models.Address, error)
}
