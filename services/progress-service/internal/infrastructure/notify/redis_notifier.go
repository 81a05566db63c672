package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const DefaultChannel = "couplepath:notifications"

// Event is the message published for the delivery workers.
type Event struct {
	RecipientID uuid.UUID `json:"recipient_id"`
	Type        string    `json:"type"`
	SentAt      time.Time `json:"sent_at"`
}

// RedisNotifier publishes events on a redis channel. Delivery (push, email)
// is someone else's job.
type RedisNotifier struct {
	rdb     *redis.Client
	channel string
	now     func() time.Time
}

func NewRedisNotifier(rdb *redis.Client, channel string) *RedisNotifier {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisNotifier{rdb: rdb, channel: channel, now: time.Now}
}

func (n *RedisNotifier) Notify(ctx context.Context, recipientID uuid.UUID, eventType string) error {
	data, err := json.Marshal(Event{RecipientID: recipientID, Type: eventType, SentAt: n.now().UTC()})
	if err != nil {
		return err
	}
	return n.rdb.Publish(ctx, n.channel, data).Err()
}
