package transactions

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"wallet-watch/internal/interfaces"
	"wallet-watch/internal/models"
	"wallet-watch/internal/validation"
)

// Service serves Ethereum transactions from the local cache and fills it from
// the explorer on a miss.
type Service struct {
	Store        interfaces.TransactionStore
	Source       interfaces.TransactionSource
	EventEmitter interfaces.EventEmitter
	Logger       *zerolog.Logger
}

func NewService(store interfaces.TransactionStore, source interfaces.TransactionSource, emitter interfaces.EventEmitter, logger *zerolog.Logger) *Service {
	return &Service{
		Store:        store,
		Source:       source,
		EventEmitter: emitter,
		Logger:       logger,
	}
}

// FetchEthTransactions returns the cached transactions of address. When none
// are cached it fetches the most recent ones once, stores every one of them
// and reads the cache again. Rows are never deduplicated.
func (s *Service) FetchEthTransactions(ctx context.Context, address string) ([]models.EthTransaction, error) {
	address = validation.NormalizeEthAddress(address)

	cached, err := s.Store.EthTransactionsByAddress(ctx, address)
	if err != nil {
		return nil, err
	}
	if len(cached) > 0 {
		s.Logger.Debug().
			Str("address", address).
			Int("count", len(cached)).
			Msg("Serving transactions from cache")
		return cached, nil
	}

	txns, err := s.Source.GetEthTxns(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions of %s: %w", address, err)
	}

	for _, txn := range txns {
		tx := models.EthTransaction{
			Hash:  txn.Hash,
			From:  normalizeOptional(txn.From),
			To:    normalizeOptional(txn.To),
			Type:  txn.Type,
			Value: txn.Value,
		}
		if _, err := s.Store.AddEthTransaction(ctx, tx); err != nil {
			return nil, err
		}
		s.emit(ctx, address, tx)
	}

	s.Logger.Info().
		Str("address", address).
		Int("count", len(txns)).
		Msg("Cached transactions")

	return s.Store.EthTransactionsByAddress(ctx, address)
}

func (s *Service) emit(ctx context.Context, owner string, tx models.EthTransaction) {
	if s.EventEmitter == nil {
		return
	}

	event := models.TransactionEvent{
		Owner:    owner,
		Chain:    models.Ethereum,
		TxHash:   tx.Hash,
		From:     tx.From,
		To:       tx.To,
		Type:     tx.Type,
		Value:    tx.Value,
		CachedAt: time.Now().UTC(),
	}
	if err := s.EventEmitter.EmitEvent(ctx, event); err != nil {
		s.Logger.Error().
			Err(err).
			Str("txHash", tx.Hash).
			Msg("Failed to emit event for transaction")
	}
}

// Contract creations have an empty "to".
func normalizeOptional(address string) string {
	if address == "" {
		return ""
	}
	return validation.NormalizeEthAddress(address)
}
