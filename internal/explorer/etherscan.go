package explorer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"wallet-watch/internal/interfaces"
	"wallet-watch/internal/models"
	"wallet-watch/internal/rpc"
)

// MaxTransactions is how many of the most recent transactions are fetched.
const MaxTransactions = 25

const noTransactionsMessage = "No transactions found"

var _ interfaces.TransactionSource = (*Etherscan)(nil)

type txListResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

type Etherscan struct {
	BaseURL    string
	ApiKey     string
	Client     *rpc.Client
	Classifier *Classifier
	Logger     *zerolog.Logger
}

func NewEtherscan(baseURL, apiKey string, client *rpc.Client, classifier *Classifier, logger *zerolog.Logger) *Etherscan {
	return &Etherscan{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		ApiKey:     apiKey,
		Client:     client,
		Classifier: classifier,
		Logger:     logger,
	}
}

func (e *Etherscan) TxListURL(address string) string {
	q := url.Values{}
	q.Set("module", "account")
	q.Set("action", "txlist")
	q.Set("address", address)
	q.Set("page", "1")
	q.Set("offset", strconv.Itoa(MaxTransactions))
	q.Set("sort", "desc")
	q.Set("apikey", e.ApiKey)
	return fmt.Sprintf("%s/api?%s", e.BaseURL, q.Encode())
}

// GetEthTxns returns up to MaxTransactions of the newest transactions of
// address, each classified by its call data.
func (e *Etherscan) GetEthTxns(ctx context.Context, address string) ([]models.RawTxn, error) {
	var resp txListResponse
	if err := e.Client.GetJSON(ctx, e.TxListURL(address), &resp); err != nil {
		return nil, err
	}

	if resp.Status != "1" && resp.Message != noTransactionsMessage {
		var reason string
		_ = json.Unmarshal(resp.Result, &reason)
		return nil, fmt.Errorf("etherscan: %s: %s", resp.Message, reason)
	}

	var txns []models.RawTxn
	if err := json.Unmarshal(resp.Result, &txns); err != nil {
		return nil, fmt.Errorf("etherscan: failed to decode txlist: %w", err)
	}

	if len(txns) > MaxTransactions {
		txns = txns[:MaxTransactions]
	}

	e.Logger.Debug().
		Str("address", address).
		Int("count", len(txns)).
		Msg("Fetched transactions from explorer")

	for i := range txns {
		txns[i] = e.Classifier.DecodeEthTxnInput(ctx, txns[i])
	}

	return txns, nil
}
