// internal/journal/journal.go
//
// Append-only action history for game sessions, queued through Redis. Each
// session gets one list; a historian service drains it for replay and audit.
package journal

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Record is one session action in the historian queue.
type Record struct {
	SessionID   uuid.UUID              `json:"sessionId"`
	ActionIndex int                    `json:"actionIndex"`
	ActorID     uuid.UUID              `json:"actorId"` // Nil for session-level events.
	ActionType  string                 `json:"actionType"`
	Payload     map[string]interface{} `json:"payload,omitempty"`
	Timestamp   int64                  `json:"timestamp"` // Unix milliseconds.
}

// Client publishes records to Redis.
type Client struct {
	rdb    *redis.Client
	prefix string
}

// NewClient connects to the Redis instance at addr. keyPrefix namespaces the
// per-session lists (e.g. "boardwalk:actions").
func NewClient(ctx context.Context, addr, keyPrefix string) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("journal: ping %s: %w", addr, err)
	}
	return &Client{rdb: rdb, prefix: keyPrefix}, nil
}

// Publish appends rec to its session's action list.
func (c *Client) Publish(ctx context.Context, rec Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("journal: marshal record %d: %w", rec.ActionIndex, err)
	}
	key := fmt.Sprintf("%s:%s", c.prefix, rec.SessionID)
	if err := c.rdb.RPush(ctx, key, raw).Err(); err != nil {
		return fmt.Errorf("journal: push record %d: %w", rec.ActionIndex, err)
	}
	return nil
}

// Replay returns every record queued for a session, oldest first.
func (c *Client) Replay(ctx context.Context, sessionID uuid.UUID) ([]Record, error) {
	key := fmt.Sprintf("%s:%s", c.prefix, sessionID)
	raws, err := c.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("journal: range %s: %w", key, err)
	}
	records := make([]Record, 0, len(raws))
	for i, raw := range raws {
		var rec Record
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("journal: decode record %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Close releases the underlying Redis connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}
