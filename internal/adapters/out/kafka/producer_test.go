package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracking/internal/core/ports"
)

func testEvent() ports.StatusChangedEvent {
	return ports.StatusChangedEvent{
		TrackingNumber: "TRK-A1B2C3D4E5",
		TenantID:       "0c576ff4-1710-4036-9188-61ac5a49c264",
		OldStatus:      "PENDING",
		NewStatus:      "PICKED_UP",
		Location:       "Rotterdam Port",
		OccurredAt:     time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestNewProducer_NoBrokers_ReturnsNil(t *testing.T) {
	t.Parallel()

	producer, err := NewProducer(nil, "shipment-status")
	require.NoError(t, err)
	assert.Nil(t, producer)

	producer, err = NewProducer([]string{"localhost:9092"}, "  ")
	require.NoError(t, err)
	assert.Nil(t, producer)
}

func TestPublishStatusChanged_SendsJSONKeyedByTrackingNumber(t *testing.T) {
	t.Parallel()

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	producerMock := mocks.NewSyncProducer(t, cfg)
	producer := &Producer{producer: producerMock, topic: "shipment-status"}

	event := testEvent()
	producerMock.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		key, err := msg.Key.Encode()
		require.NoError(t, err)
		assert.Equal(t, event.TrackingNumber, string(key))
		assert.Equal(t, "shipment-status", msg.Topic)

		value, err := msg.Value.Encode()
		require.NoError(t, err)
		var decoded ports.StatusChangedEvent
		require.NoError(t, json.Unmarshal(value, &decoded))
		assert.Equal(t, event, decoded)
		return nil
	})

	err := producer.PublishStatusChanged(context.Background(), event)
	require.NoError(t, err)
	require.NoError(t, producerMock.Close())
}

func TestPublishStatusChanged_BrokerError_IsReturned(t *testing.T) {
	t.Parallel()

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	producerMock := mocks.NewSyncProducer(t, cfg)
	producer := &Producer{producer: producerMock, topic: "shipment-status"}

	producerMock.ExpectSendMessageAndFail(sarama.ErrNotLeaderForPartition)

	err := producer.PublishStatusChanged(context.Background(), testEvent())
	require.Error(t, err)
	require.NoError(t, producerMock.Close())
}

func TestPublishStatusChanged_EmptyTrackingNumber_Rejected(t *testing.T) {
	t.Parallel()

	producer := &Producer{topic: "shipment-status"}
	err := producer.PublishStatusChanged(context.Background(), ports.StatusChangedEvent{})
	require.Error(t, err)
}

func TestNilProducer_IsSafe(t *testing.T) {
	t.Parallel()

	var producer *Producer
	require.NoError(t, producer.PublishStatusChanged(context.Background(), testEvent()))
	require.NoError(t, producer.Close())
}
