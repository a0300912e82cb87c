package live

import (
	"context"
	"errors"
	"fmt"

	"github.com/DhavalSuthar-24/livescore/internal/scoring"
)

// Feed pushes every scored match to spectators. With a publisher the update goes through the
// redis stream so every instance's hub receives it; without one it goes straight to the local hub.
type Feed struct {
	cache     *ScoreboardCache
	publisher *StreamPublisher
	hub       *Hub
}

// NewFeed builds a feed. cache and publisher may be nil.
func NewFeed(cache *ScoreboardCache, publisher *StreamPublisher, hub *Hub) *Feed {
	return &Feed{cache: cache, publisher: publisher, hub: hub}
}

// Publish caches the scoreboard and broadcasts the update. Both are attempted even if one fails;
// when the cache write fails the old entry is dropped.
func (f *Feed) Publish(ctx context.Context, m scoring.Match) error {
	update := NewUpdate(m)

	var errs []error
	if f.cache != nil {
		if err := f.cache.WriteScoreboard(ctx, update.Scoreboard); err != nil {
			errs = append(errs, fmt.Errorf("cache scoreboard: %w", err))
			// readers must not see the previous scoreboard
			if err := f.cache.Invalidate(ctx, m.ID); err != nil {
				errs = append(errs, fmt.Errorf("invalidate scoreboard: %w", err))
			}
		}
	}

	switch {
	case f.publisher != nil:
		if err := f.publisher.Publish(ctx, update); err != nil {
			errs = append(errs, fmt.Errorf("publish update: %w", err))
			if f.hub != nil {
				f.hub.Broadcast(update)
			}
		}
	case f.hub != nil:
		f.hub.Broadcast(update)
	}
	return errors.Join(errs...)
}
