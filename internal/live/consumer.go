package live

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Batch size for reading messages
	batchSize = 100

	// Block duration when waiting for new messages
	blockDuration = 1 * time.Second

	// Pause after a failed read before trying again
	retryDelay = 1 * time.Second
)

// StreamConsumer reads score updates from the redis stream and hands them to the hub.
// Each process uses its own consumer group so every instance sees every update.
type StreamConsumer struct {
	redis      *redis.Client
	hub        *Hub
	stream     string
	group      string
	consumerID string
}

func NewStreamConsumer(client *redis.Client, hub *Hub, stream, group, consumerID string) *StreamConsumer {
	return &StreamConsumer{
		redis:      client,
		hub:        hub,
		stream:     stream,
		group:      group,
		consumerID: consumerID,
	}
}

// Start consumes until ctx is cancelled.
func (sc *StreamConsumer) Start(ctx context.Context) error {
	if err := sc.createConsumerGroup(ctx); err != nil {
		return err
	}
	log.Printf("Live stream consumer started (stream=%s group=%s)", sc.stream, sc.group)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		streams, err := sc.redis.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    sc.group,
			Consumer: sc.consumerID,
			Streams:  []string{sc.stream, ">"},
			Count:    batchSize,
			Block:    blockDuration,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if ctx.Err() != nil {
				return nil
			}
			log.Printf("Live stream read error (%s): %v", sc.stream, err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(retryDelay):
			}
			continue
		}

		for _, s := range streams {
			for _, msg := range s.Messages {
				sc.processMessage(ctx, msg)
			}
		}
	}
}

// createConsumerGroup starts new groups at "$" so a restarted node does not replay old overs.
func (sc *StreamConsumer) createConsumerGroup(ctx context.Context) error {
	err := sc.redis.XGroupCreateMkStream(ctx, sc.stream, sc.group, "$").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

// DestroyGroup removes the consumer group from the stream. Groups named after a throwaway
// consumer id are never read again once the process exits.
func (sc *StreamConsumer) DestroyGroup(ctx context.Context) error {
	if err := sc.redis.XGroupDestroy(ctx, sc.stream, sc.group).Err(); err != nil {
		return fmt.Errorf("destroy consumer group %s: %w", sc.group, err)
	}
	log.Printf("Live stream consumer group %s removed", sc.group)
	return nil
}

func (sc *StreamConsumer) processMessage(ctx context.Context, msg redis.XMessage) {
	defer sc.ackMessage(ctx, msg.ID)

	data, ok := msg.Values["data"].(string)
	if !ok {
		log.Printf("Invalid message format in %s: %v", sc.stream, msg.Values)
		return
	}

	var update Update
	if err := json.Unmarshal([]byte(data), &update); err != nil {
		log.Printf("Failed to parse score update from %s: %v", sc.stream, err)
		return
	}
	sc.hub.Broadcast(update)
}

func (sc *StreamConsumer) ackMessage(ctx context.Context, messageID string) {
	if err := sc.redis.XAck(ctx, sc.stream, sc.group, messageID).Err(); err != nil {
		log.Printf("Failed to ack message %s in %s: %v", messageID, sc.stream, err)
	}
}
