package match

import (
	"context"
	"errors"
	"log"
	"sync"
	"sync/atomic"

	"github.com/DhavalSuthar-24/livescore/internal/scoring"
)

// FallbackMatchRepository writes through to a remote primary and keeps a local copy of
// every document it has seen. When the primary fails, reads and writes are served from
// the local copy and the repository reports itself offline. Every later call first pushes
// the local documents back; only once that succeeds is the primary used again.
type FallbackMatchRepository struct {
	primary MatchRepository
	local   MatchRepository
	offline atomic.Bool
	syncMu  sync.Mutex
}

func NewFallbackMatchRepository(primary, local MatchRepository) *FallbackMatchRepository {
	return &FallbackMatchRepository{primary: primary, local: local}
}

// Offline reports whether the primary is unreachable or not yet resynced.
func (r *FallbackMatchRepository) Offline() bool {
	return r.offline.Load()
}

func (r *FallbackMatchRepository) Create(ctx context.Context, m scoring.Match) error {
	if !r.reconnect(ctx) {
		return r.local.Create(ctx, m)
	}
	if err := r.primary.Create(ctx, m); err != nil {
		if isDomainError(err) {
			return err
		}
		r.markOffline("create", err)
		return r.local.Save(ctx, m)
	}
	r.mirror(ctx, m)
	return nil
}

func (r *FallbackMatchRepository) Load(ctx context.Context, id string) (scoring.Match, error) {
	if !r.reconnect(ctx) {
		return r.local.Load(ctx, id)
	}
	m, err := r.primary.Load(ctx, id)
	switch {
	case err == nil:
		r.mirror(ctx, m)
		return m, nil
	case errors.Is(err, scoring.ErrNotFound):
		return r.local.Load(ctx, id)
	default:
		r.markOffline("load", err)
		return r.local.Load(ctx, id)
	}
}

func (r *FallbackMatchRepository) Save(ctx context.Context, m scoring.Match) error {
	if !r.reconnect(ctx) {
		return r.local.Save(ctx, m)
	}
	if err := r.primary.Save(ctx, m); err != nil {
		r.markOffline("save", err)
		return r.local.Save(ctx, m)
	}
	r.mirror(ctx, m)
	return nil
}

func (r *FallbackMatchRepository) List(ctx context.Context, filter ListFilter) ([]scoring.Match, int64, error) {
	if !r.reconnect(ctx) {
		return r.local.List(ctx, filter)
	}
	matches, total, err := r.primary.List(ctx, filter)
	if err != nil {
		r.markOffline("list", err)
		return r.local.List(ctx, filter)
	}
	return matches, total, nil
}

// Sync pushes every local document to the primary. It stops at the first failure.
func (r *FallbackMatchRepository) Sync(ctx context.Context) error {
	matches, _, err := r.local.List(ctx, ListFilter{})
	if err != nil {
		return err
	}
	for _, m := range matches {
		if err := r.primary.Save(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func (r *FallbackMatchRepository) mirror(ctx context.Context, m scoring.Match) {
	if err := r.local.Save(ctx, m); err != nil {
		log.Printf("match %s: local copy not updated: %v", m.ID, err)
	}
}

func (r *FallbackMatchRepository) markOffline(op string, err error) {
	if !r.offline.Swap(true) {
		log.Printf("match store unavailable during %s, switching to local storage: %v", op, err)
	}
}

// reconnect reports whether the primary may be used. While offline it retries the sync of
// local documents and only returns true once the primary holds all of them.
func (r *FallbackMatchRepository) reconnect(ctx context.Context) bool {
	if !r.offline.Load() {
		return true
	}
	r.syncMu.Lock()
	defer r.syncMu.Unlock()
	if !r.offline.Load() {
		return true
	}
	if err := r.Sync(ctx); err != nil {
		return false
	}
	r.offline.Store(false)
	log.Println("match store reachable again, local matches synced")
	return true
}

func isDomainError(err error) bool {
	_, ok := scoring.CodeOf(err)
	return ok
}
