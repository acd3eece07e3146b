package explorer

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"wallet-watch/internal/models"
	"wallet-watch/internal/rpc"
)

const (
	swapSignature     = "swapETHForExactTokens"
	transferSignature = "transfer"
)

type signatureResponse struct {
	Count   int `json:"count"`
	Results []struct {
		ID            int    `json:"id"`
		TextSignature string `json:"text_signature"`
		HexSignature  string `json:"hex_signature"`
	} `json:"results"`
}

// Classifier resolves a transaction's function selector against the 4byte
// signature directory.
type Classifier struct {
	BaseURL string
	Client  *rpc.Client
	Logger  *zerolog.Logger
}

func NewClassifier(baseURL string, client *rpc.Client, logger *zerolog.Logger) *Classifier {
	return &Classifier{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  client,
		Logger:  logger,
	}
}

// DecodeEthTxnInput sets txn.Type from its call data. Lookup failures are not
// errors, they classify as UNKNOWN.
func (c *Classifier) DecodeEthTxnInput(ctx context.Context, txn models.RawTxn) models.RawTxn {
	input := strings.TrimPrefix(txn.Input, "0x")
	if input == "" {
		txn.Type = models.TxNormal
		return txn
	}

	selector := input
	if len(selector) > 8 {
		selector = selector[:8]
	}

	names, err := c.lookup(ctx, selector)
	if err != nil {
		c.Logger.Warn().
			Err(err).
			Str("txHash", txn.Hash).
			Str("selector", selector).
			Msg("Signature lookup failed")
		txn.Type = models.TxUnknown
		return txn
	}

	txn.Type = classify(names)
	return txn
}

// classify looks only at the last candidate the directory returns.
// TODO: confirm with the directory's ordering whether the first candidate
// should win instead.
func classify(names []string) models.TxType {
	if len(names) == 0 {
		return models.TxUnknown
	}

	switch names[len(names)-1] {
	case swapSignature:
		return models.TxSwap
	case transferSignature:
		return models.TxTransfer
	default:
		return models.TxUnknown
	}
}

// lookup returns the function names registered for selector, in directory order.
func (c *Classifier) lookup(ctx context.Context, selector string) ([]string, error) {
	q := url.Values{}
	q.Set("hex_signature", "0x"+selector)

	var resp signatureResponse
	if err := c.Client.GetJSON(ctx, fmt.Sprintf("%s/api/v1/signatures/?%s", c.BaseURL, q.Encode()), &resp); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(resp.Results))
	for _, r := range resp.Results {
		name, _, _ := strings.Cut(r.TextSignature, "(")
		names = append(names, name)
	}
	return names, nil
}
