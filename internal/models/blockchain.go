package models

import "fmt"

type Chain string

const (
	Bitcoin  Chain = "btc"
	Ethereum Chain = "eth"
)

func (c Chain) String() string {
	return string(c)
}

// Symbol is the ticker used when pricing the chain's native coin.
func (c Chain) Symbol() string {
	switch c {
	case Bitcoin:
		return "BTC"
	case Ethereum:
		return "ETH"
	default:
		return string(c)
	}
}

// ParseChain accepts "btc" or "eth".
func ParseChain(s string) (Chain, error) {
	switch Chain(s) {
	case Bitcoin, Ethereum:
		return Chain(s), nil
	default:
		return "", fmt.Errorf("unsupported chain %q (allowed: btc, eth)", s)
	}
}
