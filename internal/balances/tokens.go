package balances

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"wallet-watch/internal/models"
)

const erc20BalanceOfABI = `[{"constant":true,"inputs":[{"name":"_owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"balance","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"}]`

var erc20ABI = mustParseABI(erc20BalanceOfABI)

func mustParseABI(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(err)
	}
	return parsed
}

// LoadTokenList reads the token descriptors at path.
func LoadTokenList(path string) ([]models.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read token list: %w", err)
	}

	var tokens []models.Token
	if err := json.Unmarshal(data, &tokens); err != nil {
		return nil, fmt.Errorf("parse token list %s: %w", path, err)
	}
	return tokens, nil
}

type TokenBalances struct {
	Backend       EthBackend
	TokenListPath string
	Logger        *zerolog.Logger
}

func NewTokenBalances(backend EthBackend, tokenListPath string, logger *zerolog.Logger) *TokenBalances {
	return &TokenBalances{Backend: backend, TokenListPath: tokenListPath, Logger: logger}
}

// GetEthTokenBalances returns the nonzero balances of address for every token
// in the token list. Contracts that do not answer balanceOf with a decodable
// uint256 are skipped.
func (t *TokenBalances) GetEthTokenBalances(ctx context.Context, address string) ([]models.TokenBalance, error) {
	tokens, err := LoadTokenList(t.TokenListPath)
	if err != nil {
		return nil, err
	}

	owner := common.HexToAddress(address)
	var balances []models.TokenBalance

	for _, token := range tokens {
		raw, ok, err := t.balanceOf(ctx, common.HexToAddress(token.Address), owner)
		if err != nil {
			return nil, fmt.Errorf("balanceOf %s on %s: %w", address, token.Symbol, err)
		}
		if !ok {
			t.Logger.Debug().
				Str("token", token.Symbol).
				Str("contract", token.Address).
				Msg("Contract does not implement balanceOf, skipping")
			continue
		}
		if raw.Sign() == 0 {
			continue
		}

		balances = append(balances, models.TokenBalance{
			Name:   token.Symbol,
			Amount: decimal.NewFromBigInt(raw, -token.Decimals),
		})
	}

	return balances, nil
}

// balanceOf reports ok=false when the call succeeded but its output could not
// be decoded as a uint256.
func (t *TokenBalances) balanceOf(ctx context.Context, contract, owner common.Address) (*big.Int, bool, error) {
	data, err := erc20ABI.Pack("balanceOf", owner)
	if err != nil {
		return nil, false, err
	}

	out, err := t.Backend.CallContract(ctx, ethereum.CallMsg{
		To:   &contract,
		Data: data,
	}, nil)
	if err != nil {
		return nil, false, err
	}

	if len(out) == 0 {
		return nil, false, nil
	}

	values, err := erc20ABI.Unpack("balanceOf", out)
	if err != nil || len(values) != 1 {
		return nil, false, nil
	}

	balance, ok := values[0].(*big.Int)
	if !ok {
		return nil, false, nil
	}

	return balance, true, nil
}
