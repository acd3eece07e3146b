package database

import (
	"context"
	"fmt"

	"wallet-watch/internal/models"
)

// AddAddress stores an address and returns the number of rows written.
func (s *Store) AddAddress(ctx context.Context, address string, chain models.Chain) (int64, error) {
	res, err := s.DB.ExecContext(ctx, `
		INSERT INTO address (address, chain)
		VALUES (?, ?)
	`, address, chain.String())
	if err != nil {
		return 0, fmt.Errorf("failed to insert address %s: %w", address, err)
	}

	return res.RowsAffected()
}

// AddEthTransaction caches a transaction and returns the number of rows written.
func (s *Store) AddEthTransaction(ctx context.Context, tx models.EthTransaction) (int64, error) {
	res, err := s.DB.ExecContext(ctx, `
		INSERT INTO eth_transaction (txn_hash, from_addr, to_addr, txn_type, value)
		VALUES (?, ?, ?, ?, ?)
	`, tx.Hash, tx.From, tx.To, tx.Type.String(), tx.Value)
	if err != nil {
		return 0, fmt.Errorf("failed to insert transaction %s: %w", tx.Hash, err)
	}

	return res.RowsAffected()
}

// AddressesByChain returns every registered address of chain in insertion order.
func (s *Store) AddressesByChain(ctx context.Context, chain models.Chain) ([]models.Address, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, address, chain
		FROM address
		WHERE chain = ?
		ORDER BY id
	`, chain.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query addresses: %w", err)
	}
	defer rows.Close()

	var addresses []models.Address
	for rows.Next() {
		var a models.Address
		if err := rows.Scan(&a.ID, &a.Address, &a.Chain); err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}

// EthTransactionsByAddress returns cached transactions sent from or to address.
func (s *Store) EthTransactionsByAddress(ctx context.Context, address string) ([]models.EthTransaction, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, txn_hash, from_addr, to_addr, txn_type, value
		FROM eth_transaction
		WHERE from_addr = ? OR to_addr = ?
		ORDER BY id
	`, address, address)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.EthTransaction
	for rows.Next() {
		var tx models.EthTransaction
		if err := rows.Scan(&tx.ID, &tx.Hash, &tx.From, &tx.To, &tx.Type, &tx.Value); err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}
