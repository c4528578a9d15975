package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultDedupWindow = 10 * time.Minute

// MessageDedup remembers recent contact form submissions in Redis.
// Key format: dedup:message:<sha256(email|subject|body)>
type MessageDedup struct {
	client *redis.Client
	window time.Duration
}

// NewMessageDedup creates a MessageDedup wrapping the given Redis client.
// A non-positive window falls back to ten minutes.
func NewMessageDedup(client *redis.Client, window time.Duration) *MessageDedup {
	if window <= 0 {
		window = defaultDedupWindow
	}
	return &MessageDedup{client: client, window: window}
}

// Lookup returns the id of the message stored for this submission, or "".
func (d *MessageDedup) Lookup(ctx context.Context, email, subject, body string) (string, error) {
	id, err := d.client.Get(ctx, d.key(email, subject, body)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("dedup lookup: %w", err)
	}
	return id, nil
}

// Remember records messageID for this submission until the window elapses.
func (d *MessageDedup) Remember(ctx context.Context, email, subject, body, messageID string) error {
	if err := d.client.Set(ctx, d.key(email, subject, body), messageID, d.window).Err(); err != nil {
		return fmt.Errorf("dedup remember: %w", err)
	}
	return nil
}

func (d *MessageDedup) key(email, subject, body string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(email)) + "\x00" + subject + "\x00" + body))
	return "dedup:message:" + hex.EncodeToString(sum[:])
}
