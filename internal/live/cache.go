package live

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/DhavalSuthar-24/livescore/internal/scoring"
	"github.com/redis/go-redis/v9"
)

// ScoreboardCache keeps the latest scoreboard of each match in redis.
// Finished matches are kept longer than running ones.
type ScoreboardCache struct {
	client   *redis.Client
	liveTTL  time.Duration
	finalTTL time.Duration
}

func NewScoreboardCache(client *redis.Client, liveTTL, finalTTL time.Duration) *ScoreboardCache {
	return &ScoreboardCache{client: client, liveTTL: liveTTL, finalTTL: finalTTL}
}

func scoreboardKey(matchID string) string {
	return fmt.Sprintf("livescore:match:%s:scoreboard", matchID)
}

// WriteScoreboard stores sb under its match id.
func (w *ScoreboardCache) WriteScoreboard(ctx context.Context, sb scoring.Scoreboard) error {
	data, err := json.Marshal(sb)
	if err != nil {
		return fmt.Errorf("marshaling scoreboard: %w", err)
	}
	return w.client.Set(ctx, scoreboardKey(sb.MatchID), data, w.ttlFor(sb.Status)).Err()
}

// Invalidate drops the cached scoreboard so readers fall back to the match store.
func (w *ScoreboardCache) Invalidate(ctx context.Context, matchID string) error {
	return w.client.Del(ctx, scoreboardKey(matchID)).Err()
}

// GetScoreboard returns the cached scoreboard, or nil when none is cached.
func (w *ScoreboardCache) GetScoreboard(ctx context.Context, matchID string) (*scoring.Scoreboard, error) {
	data, err := w.client.Get(ctx, scoreboardKey(matchID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var sb scoring.Scoreboard
	if err := json.Unmarshal(data, &sb); err != nil {
		return nil, fmt.Errorf("unmarshaling scoreboard: %w", err)
	}
	return &sb, nil
}

func (w *ScoreboardCache) ttlFor(status scoring.MatchStatus) time.Duration {
	if status == scoring.StatusCompleted {
		return w.finalTTL
	}
	return w.liveTTL
}
