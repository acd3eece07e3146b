package health

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
)

// BlockHeadSource reports the latest block of a chain. *ethclient.Client
// satisfies it.
type BlockHeadSource interface {
	BlockNumber(ctx context.Context) (uint64, error)
}

type BlockchainStatus struct {
	Name      string `json:"name"`
	LastBlock uint64 `json:"last_block"`
	Ready     bool   `json:"ready"`
	Error     string `json:"error,omitempty"`
}

// Check queries every source once and returns their statuses sorted by name.
// A failing source is reported as not ready, it does not fail the check.
func Check(ctx context.Context, sources map[string]BlockHeadSource, logger *zerolog.Logger) []BlockchainStatus {
	statuses := make([]BlockchainStatus, 0, len(sources))
	for name, source := range sources {
		status := BlockchainStatus{Name: name}

		head, err := source.BlockNumber(ctx)
		if err != nil {
			logger.Error().
				Err(err).
				Str("chain", name).
				Msg("Error getting latest block")
			status.Error = err.Error()
		} else {
			status.LastBlock = head
			status.Ready = true
		}
		statuses = append(statuses, status)
	}

	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].Name < statuses[j].Name
	})
	return statuses
}

// Ready reports whether every status is ready. No statuses means not ready.
func Ready(statuses []BlockchainStatus) bool {
	if len(statuses) == 0 {
		return false
	}
	for _, s := range statuses {
		if !s.Ready {
			return false
		}
	}
	return true
}
