package emitters

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"wallet-watch/internal/models"
)

// KafkaEmitter publishes cached transactions to a Kafka topic
type KafkaEmitter struct {
	writer *kafka.Writer
	logger *zerolog.Logger
	mu     sync.Mutex
}

// NewKafkaEmitter creates a new KafkaEmitter
func NewKafkaEmitter(brokerAddress, topic string, batchSize int, batchTimeout time.Duration, logger *zerolog.Logger) *KafkaEmitter {
	return &KafkaEmitter{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokerAddress),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchSize:    batchSize,
			BatchTimeout: batchTimeout,
		},
		logger: logger,
	}
}

// EmitEvent writes event as JSON keyed by its transaction hash.
func (k *KafkaEmitter) EmitEvent(ctx context.Context, event models.TransactionEvent) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.writer == nil {
		return fmt.Errorf("kafka emitter is closed")
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.TxHash),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}

	k.logger.Debug().
		Str("chain", event.Chain.String()).
		Str("txHash", event.TxHash).
		Msg("Emitted event to Kafka")
	return nil
}

func (k *KafkaEmitter) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.writer != nil {
		err := k.writer.Close()
		k.writer = nil
		return err
	}
	return nil
}
