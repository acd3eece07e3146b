package balances

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const weiDecimals = 18

// EthBackend is the subset of *ethclient.Client used for balance reads.
type EthBackend interface {
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

type EthBalances struct {
	Backend EthBackend
	Logger  *zerolog.Logger
}

func NewEthBalances(backend EthBackend, logger *zerolog.Logger) *EthBalances {
	return &EthBalances{Backend: backend, Logger: logger}
}

// GetEthBalance returns the ether balance of address at the latest block.
func (e *EthBalances) GetEthBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	if !common.IsHexAddress(address) {
		return decimal.Zero, fmt.Errorf("invalid Ethereum address: %s", address)
	}

	wei, err := e.Backend.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get balance of %s: %w", address, err)
	}

	balance := decimal.NewFromBigInt(wei, -weiDecimals)

	e.Logger.Debug().
		Str("address", address).
		Str("wei", wei.String()).
		Msg("Fetched ether balance")

	return balance, nil
}
