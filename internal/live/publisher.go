package live

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// streamMaxLen caps the update stream; spectators only ever need the latest entries.
const streamMaxLen = 10000

// StreamPublisher appends score updates to a redis stream.
type StreamPublisher struct {
	client *redis.Client
	stream string
}

func NewStreamPublisher(client *redis.Client, stream string) *StreamPublisher {
	return &StreamPublisher{client: client, stream: stream}
}

// Publish appends update to the stream.
func (p *StreamPublisher) Publish(ctx context.Context, update Update) error {
	data, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("marshaling score update: %w", err)
	}

	return p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: streamMaxLen,
		Approx: true,
		Values: map[string]interface{}{
			"data":     string(data),
			"match_id": update.MatchID,
			"status":   string(update.Status),
		},
	}).Err()
}
