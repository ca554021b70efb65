// File: services/assistant/contextStore.go
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ttravels/models"
	"ttravels/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	tripContextKeyPrefix = "trip:ctx:"
	tripContextTTL       = 24 * time.Hour
)

// RedisTripContextStore keeps per-conversation trip details in Redis so a
// partially specified trip survives across turns and service restarts.
type RedisTripContextStore struct {
	client *redis.Client
}

func NewRedisTripContextStore(client *redis.Client) *RedisTripContextStore {
	return &RedisTripContextStore{client: client}
}

func (s *RedisTripContextStore) key(conversationID string) string {
	return tripContextKeyPrefix + conversationID
}

// Get returns the stored context for the conversation. A missing or corrupt
// entry yields an empty context rather than an error surfaced to the user.
func (s *RedisTripContextStore) Get(ctx context.Context, conversationID string) (models.TripContext, error) {
	data, err := s.client.Get(ctx, s.key(conversationID)).Result()
	if err == redis.Nil {
		return models.TripContext{}, nil
	}
	if err != nil {
		return models.TripContext{}, fmt.Errorf("failed to fetch trip context: %w", err)
	}
	var tc models.TripContext
	if err := json.Unmarshal([]byte(data), &tc); err != nil {
		utils.GetLogger().Warn("Corrupt trip context entry, resetting",
			zap.String("conversationID", conversationID), zap.Error(err))
		return models.TripContext{}, nil
	}
	return tc, nil
}

func (s *RedisTripContextStore) Set(ctx context.Context, conversationID string, tc models.TripContext) error {
	data, err := json.Marshal(tc)
	if err != nil {
		return fmt.Errorf("failed to marshal trip context: %w", err)
	}
	if err := s.client.Set(ctx, s.key(conversationID), data, tripContextTTL).Err(); err != nil {
		return fmt.Errorf("failed to store trip context: %w", err)
	}
	return nil
}

func (s *RedisTripContextStore) Clear(ctx context.Context, conversationID string) error {
	if err := s.client.Del(ctx, s.key(conversationID)).Err(); err != nil {
		return fmt.Errorf("failed to clear trip context: %w", err)
	}
	return nil
}
