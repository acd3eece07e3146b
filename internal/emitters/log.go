package emitters

import (
	"context"

	"github.com/rs/zerolog"

	"wallet-watch/internal/interfaces"
	"wallet-watch/internal/models"
)

// ExplorerURLs maps a chain to the transaction page prefix of its explorer.
var ExplorerURLs = map[models.Chain]string{
	models.Ethereum: "https://etherscan.io/tx/",
	models.Bitcoin:  "https://www.blockchain.com/explorer/transactions/btc/",
}

// LogEmitter logs every cached transaction and forwards it to the wrapped
// emitter, if any.
type LogEmitter struct {
	WrappedEmitter interfaces.EventEmitter
	Logger         *zerolog.Logger
}

func NewLogEmitter(wrapped interfaces.EventEmitter, logger *zerolog.Logger) *LogEmitter {
	return &LogEmitter{WrappedEmitter: wrapped, Logger: logger}
}

// EmitEvent logs the stored values and forwards to the wrapped emitter
func (l *LogEmitter) EmitEvent(ctx context.Context, event models.TransactionEvent) error {
	entry := l.Logger.Debug().
		Str("chain", event.Chain.String()).
		Str("owner", event.Owner).
		Str("from", event.From).
		Str("to", event.To).
		Str("type", event.Type.String()).
		Str("value", event.Value).
		Str("txHash", event.TxHash).
		Time("cachedAt", event.CachedAt)
	if prefix, ok := ExplorerURLs[event.Chain]; ok {
		entry = entry.Str("explorer", prefix+event.TxHash)
	}
	entry.Msg("Transaction cached")

	if l.WrappedEmitter != nil {
		return l.WrappedEmitter.EmitEvent(ctx, event)
	}
	return nil
}
