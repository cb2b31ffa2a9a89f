package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"tracking/internal/core/application/usecases/queries"
)

// TrackingCache stores public tracking responses in Redis with a short TTL.
// It implements queries.TrackingCache.
type TrackingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTrackingCache(client *redis.Client, ttl time.Duration) (*TrackingCache, error) {
	if client == nil {
		return nil, errors.New("client is required")
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &TrackingCache{client: client, ttl: ttl}, nil
}

func (c *TrackingCache) Get(ctx context.Context, trackingNumber string) (*queries.TrackShipmentQueryResponse, error) {
	data, err := c.client.Get(ctx, cacheKey(trackingNumber)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var response queries.TrackShipmentQueryResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *TrackingCache) Set(ctx context.Context, trackingNumber string, response *queries.TrackShipmentQueryResponse) error {
	data, err := json.Marshal(response)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(trackingNumber), data, c.ttl).Err()
}

func cacheKey(trackingNumber string) string {
	return fmt.Sprintf("tracking:%s", trackingNumber)
}
