package cli

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ethereum/go-ethereum/ethclient"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/rs/zerolog"

	"wallet-watch/internal/balances"
	"wallet-watch/internal/config"
	"wallet-watch/internal/currency"
	"wallet-watch/internal/database"
	"wallet-watch/internal/emitters"
	"wallet-watch/internal/explorer"
	"wallet-watch/internal/health"
	"wallet-watch/internal/interfaces"
	"wallet-watch/internal/models"
	"wallet-watch/internal/rpc"
	"wallet-watch/internal/transactions"
)

// Services bundles the clients one command invocation talks to.
type Services struct {
	Btc          interfaces.BtcBalanceFetcher
	Eth          interfaces.EthBalanceFetcher
	Tokens       interfaces.TokenBalanceFetcher
	Converter    interfaces.CurrencyConverter
	Transactions interfaces.TransactionFetcher
	Heads        map[string]health.BlockHeadSource

	closers []func()
}

// Close releases every client opened for the invocation.
func (s *Services) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

// ServicesBuilder constructs the services of one invocation over an open store.
type ServicesBuilder func(ctx context.Context, cfg *config.Config, store *database.Store, logger *zerolog.Logger) (*Services, error)

// NewServices wires the production clients from cfg. store may be nil for
// commands that never touch the transaction cache.
func NewServices(ctx context.Context, cfg *config.Config, store *database.Store, logger *zerolog.Logger) (*Services, error) {
	svc := &Services{}

	newClient := func(name, apiKey string, sc config.ServiceConfig) *rpc.Client {
		c := rpc.NewClient(name, apiKey, sc.RateLimit, cfg.MaxRetries, cfg.RetryDelay, cfg.HTTP.Timeout, logger)
		svc.closers = append(svc.closers, c.Close)
		return c
	}

	rpcClient, err := gethrpc.DialHTTPWithClient(cfg.Ethereum.BaseURL, &http.Client{Timeout: cfg.HTTP.Timeout})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Ethereum RPC: %w", err)
	}
	ethRPC := ethclient.NewClient(rpcClient)
	svc.closers = append(svc.closers, ethRPC.Close)

	svc.Heads = map[string]health.BlockHeadSource{models.Ethereum.String(): ethRPC}
	svc.Eth = balances.NewEthBalances(ethRPC, logger)
	svc.Tokens = balances.NewTokenBalances(ethRPC, cfg.TokenListPath, logger)
	svc.Btc = balances.NewBtcBalances(cfg.Blockonomics.BaseURL, newClient("blockonomics", cfg.Blockonomics.ApiKey, cfg.Blockonomics), logger)
	svc.Converter = currency.NewConverter(cfg.CoinCap.BaseURL, newClient("coincap", cfg.CoinCap.ApiKey, cfg.CoinCap), logger)

	classifier := explorer.NewClassifier(cfg.FourByte.BaseURL, newClient("4byte", "", cfg.FourByte), logger)
	// Etherscan takes its key as a query parameter.
	source := explorer.NewEtherscan(cfg.Etherscan.BaseURL, cfg.Etherscan.ApiKey, newClient("etherscan", "", cfg.Etherscan), classifier, logger)

	var sink interfaces.EventEmitter
	if cfg.Kafka.BrokerAddress != "" {
		kafkaEmitter := emitters.NewKafkaEmitter(cfg.Kafka.BrokerAddress, cfg.Kafka.Topic, cfg.Kafka.BatchSize, cfg.Kafka.BatchTimeout, logger)
		svc.closers = append(svc.closers, func() {
			if err := kafkaEmitter.Close(); err != nil {
				logger.Error().Err(err).Msg("Failed to close Kafka emitter")
			}
		})
		sink = kafkaEmitter
	}
	svc.Transactions = transactions.NewService(store, source, emitters.NewLogEmitter(sink, logger), logger)

	return svc, nil
}
