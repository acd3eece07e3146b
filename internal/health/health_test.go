package health

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

type fakeHead struct {
	head uint64
	err  error
}

func (f fakeHead) BlockNumber(_ context.Context) (uint64, error) {
	return f.head, f.err
}

func TestCheck(t *testing.T) {
	logger := zerolog.New(nil)
	statuses := Check(context.Background(), map[string]BlockHeadSource{
		"eth":     fakeHead{head: 19000000},
		"sepolia": fakeHead{err: errors.New("connection refused")},
	}, &logger)

	if len(statuses) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(statuses))
	}
	if statuses[0].Name != "eth" || !statuses[0].Ready || statuses[0].LastBlock != 19000000 {
		t.Errorf("eth status = %+v", statuses[0])
	}
	if statuses[1].Name != "sepolia" || statuses[1].Ready || statuses[1].Error != "connection refused" {
		t.Errorf("sepolia status = %+v", statuses[1])
	}
	if Ready(statuses) {
		t.Error("Ready() = true with a failing source")
	}
}

func TestReady(t *testing.T) {
	tests := []struct {
		name     string
		statuses []BlockchainStatus
		want     bool
	}{
		{name: "none", statuses: nil, want: false},
		{name: "all ready", statuses: []BlockchainStatus{{Name: "eth", Ready: true}}, want: true},
		{name: "one down", statuses: []BlockchainStatus{{Name: "eth", Ready: true}, {Name: "btc"}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ready(tt.statuses); got != tt.want {
				t.Errorf("Ready() = %v, want %v", got, tt.want)
			}
		})
	}
}
