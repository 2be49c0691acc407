package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/VincentPrime/Survey-client/internal/model"
)

// AttemptCache stores in-progress take-survey state per
// (session, survey) pair. State is ephemeral view state with a TTL;
// it never outlives the session it belongs to by much.
type AttemptCache interface {
	Set(ctx context.Context, sessionID string, state *model.AttemptState) error
	Get(ctx context.Context, sessionID string, surveyID int) (*model.AttemptState, error)
	Delete(ctx context.Context, sessionID string, surveyID int) error
}

type attemptCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAttemptCache creates a new attempt cache
func NewAttemptCache(client *redis.Client) AttemptCache {
	return &attemptCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *attemptCache) key(sessionID string, surveyID int) string {
	return fmt.Sprintf("attempt:%s:%d", sessionID, surveyID)
}

func (c *attemptCache) Set(ctx context.Context, sessionID string, state *model.AttemptState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(sessionID, state.SurveyID), data, c.ttl).Err()
}

func (c *attemptCache) Get(ctx context.Context, sessionID string, surveyID int) (*model.AttemptState, error) {
	data, err := c.client.Get(ctx, c.key(sessionID, surveyID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var state model.AttemptState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (c *attemptCache) Delete(ctx context.Context, sessionID string, surveyID int) error {
	return c.client.Del(ctx, c.key(sessionID, surveyID)).Err()
}
