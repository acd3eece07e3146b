package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxType classifies an Ethereum transaction by its call data.
type TxType string

const (
	TxNormal   TxType = "NORMAL"
	TxTransfer TxType = "TRANSFER"
	TxSwap     TxType = "SWAP"
	TxUnknown  TxType = "UNKNOWN"
)

func (t TxType) String() string {
	return string(t)
}

// Address is a registered address row.
type Address struct {
	ID      int64  `json:"id"`
	Address string `json:"address"`
	Chain   Chain  `json:"chain"`
}

// EthTransaction is a cached transaction row. Value is in wei.
type EthTransaction struct {
	ID    int64  `json:"id"`
	Hash  string `json:"hash"`
	From  string `json:"from"`
	To    string `json:"to"`
	Type  TxType `json:"type"`
	Value string `json:"value"`
}

// RawTxn is a single entry of the explorer's txlist response.
type RawTxn struct {
	BlockNumber string `json:"blockNumber"`
	TimeStamp   string `json:"timeStamp"`
	Hash        string `json:"hash"`
	From        string `json:"from"`
	To          string `json:"to"`
	Value       string `json:"value"`
	Input       string `json:"input"`
	IsError     string `json:"isError"`
	Type        TxType `json:"-"`
}

// Token describes an ERC-20 contract from the token list file.
type Token struct {
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Decimals int32  `json:"decimals"`
}

type TokenBalance struct {
	Name   string
	Amount decimal.Decimal
}

// TransactionEvent is emitted for every transaction written to the cache.
type TransactionEvent struct {
	Owner    string    `json:"owner"`
	Chain    Chain     `json:"chain"`
	TxHash   string    `json:"tx_hash"`
	From     string    `json:"from"`
	To       string    `json:"to"`
	Type     TxType    `json:"type"`
	Value    string    `json:"value"`
	CachedAt time.Time `json:"cached_at"`
}
