package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"werkbon/internal/app/ds"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	draftPrefix = "draft."
	lockPrefix  = "lock."
)

func draftKey(technicianID, workOrderID string) string {
	return servicePrefix + draftPrefix + technicianID + "." + workOrderID
}

func lockKey(workOrderID string) string {
	return servicePrefix + lockPrefix + workOrderID
}

// LoadDraft returns nil when the technician has no open draft for the work order.
func (c *Client) LoadDraft(ctx context.Context, technicianID, workOrderID string) (*ds.Draft, error) {
	raw, err := c.client.Get(ctx, draftKey(technicianID, workOrderID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var draft ds.Draft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}
	return &draft, nil
}

// SaveDraft stores the draft and restarts its TTL.
func (c *Client) SaveDraft(ctx context.Context, technicianID string, draft *ds.Draft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	return c.client.Set(ctx, draftKey(technicianID, draft.WorkOrderID), raw, c.drafts).Err()
}

func (c *Client) DeleteDraft(ctx context.Context, technicianID, workOrderID string) error {
	return c.client.Del(ctx, draftKey(technicianID, workOrderID)).Err()
}

// releaseLock deletes the lock only if it still holds our value.
var releaseLock = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// TryLock takes the work order's lock. ok is false when it is already held.
// The lock expires after the configured lock TTL if unlock is never called.
func (c *Client) TryLock(ctx context.Context, workOrderID string) (func(), bool, error) {
	key := lockKey(workOrderID)
	value := uuid.NewString()

	ok, err := c.client.SetNX(ctx, key, value, c.lockTTL).Result()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	unlock := func() {
		// the request context may already be cancelled
		_ = releaseLock.Run(context.Background(), c.client, []string{key}, value).Err()
	}
	return unlock, true, nil
}
