package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/IBM/sarama"

	"tracking/internal/core/ports"
)

// Producer publishes shipment status events to a Kafka topic.
// It implements ports.EventPublisher.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewProducer creates a Kafka producer. Returns (nil, nil) when no brokers
// are configured so callers can run without a broker.
func NewProducer(brokers []string, topic string) (*Producer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Producer{
		producer: producer,
		topic:    topic,
	}, nil
}

func (p *Producer) PublishStatusChanged(_ context.Context, event ports.StatusChangedEvent) error {
	if p == nil {
		return nil
	}
	if event.TrackingNumber == "" {
		return errors.New("event tracking number is empty")
	}

	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.TrackingNumber),
		Value: sarama.ByteEncoder(value),
	}

	_, _, err = p.producer.SendMessage(msg)
	return err
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
