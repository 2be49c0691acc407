package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/VincentPrime/Survey-client/internal/model"
)

// DraftCache stores authoring wizard drafts. A draft that is never
// published simply expires; nothing is sent to the backend until the
// publish step.
type DraftCache interface {
	Set(ctx context.Context, draft *model.SurveyDraft) error
	Get(ctx context.Context, id string) (*model.SurveyDraft, error)
	Delete(ctx context.Context, id string) error
}

type draftCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDraftCache creates a new draft cache
func NewDraftCache(client *redis.Client) DraftCache {
	return &draftCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *draftCache) Set(ctx context.Context, draft *model.SurveyDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "draft:"+draft.ID, data, c.ttl).Err()
}

func (c *draftCache) Get(ctx context.Context, id string) (*model.SurveyDraft, error) {
	data, err := c.client.Get(ctx, "draft:"+id).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var draft model.SurveyDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (c *draftCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, "draft:"+id).Err()
}
