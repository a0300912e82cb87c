package match

import (
	"context"
	"slices"
	"sync"

	"github.com/DhavalSuthar-24/livescore/internal/scoring"
)

// MemoryMatchRepository keeps match documents in process memory. It backs tests and
// serves as the local copy behind FallbackMatchRepository.
type MemoryMatchRepository struct {
	mu      sync.RWMutex
	matches map[string]scoring.Match
}

func NewMemoryMatchRepository() *MemoryMatchRepository {
	return &MemoryMatchRepository{matches: make(map[string]scoring.Match)}
}

func (r *MemoryMatchRepository) Create(_ context.Context, m scoring.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.matches[m.ID]; ok {
		return &scoring.Error{Code: scoring.CodeInvalidState, Message: "match " + m.ID + " already exists"}
	}
	r.matches[m.ID] = m.Clone()
	return nil
}

func (r *MemoryMatchRepository) Load(_ context.Context, id string) (scoring.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.matches[id]
	if !ok {
		return scoring.Match{}, scoring.NotFound("match", id)
	}
	return m.Clone(), nil
}

func (r *MemoryMatchRepository) Save(_ context.Context, m scoring.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matches[m.ID] = m.Clone()
	return nil
}

func (r *MemoryMatchRepository) List(_ context.Context, filter ListFilter) ([]scoring.Match, int64, error) {
	r.mu.RLock()
	all := make([]scoring.Match, 0, len(r.matches))
	for _, m := range r.matches {
		if filter.Status != "" && m.Status != filter.Status {
			continue
		}
		if filter.TournamentID != "" && m.TournamentID != filter.TournamentID {
			continue
		}
		all = append(all, m.Clone())
	}
	r.mu.RUnlock()

	slices.SortFunc(all, func(a, b scoring.Match) int {
		if c := a.StartTime.Compare(b.StartTime); c != 0 {
			return c
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})

	total := int64(len(all))
	if filter.PageSize > 0 {
		start := min(filter.offset(), len(all))
		end := min(start+filter.PageSize, len(all))
		all = all[start:end]
	}
	return all, total, nil
}
