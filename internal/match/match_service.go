package match

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/DhavalSuthar-24/livescore/internal/scoring"
	"github.com/google/uuid"
)

// Roster is what the service needs from the team and player store.
type Roster interface {
	scoring.RosterProvider
	GetTeam(ctx context.Context, teamID string) (scoring.Team, error)
}

// LiveFeed receives every match after a successful mutation.
type LiveFeed interface {
	Publish(ctx context.Context, m scoring.Match) error
}

// ScoreboardCache serves scoreboards without touching the match store. A nil board means a miss.
type ScoreboardCache interface {
	GetScoreboard(ctx context.Context, matchID string) (*scoring.Scoreboard, error)
}

type ServiceConfig struct {
	DefaultMaxOvers   int
	RequireNewBatsman bool
}

// Service applies scorer actions to stored matches: load, transform, save, publish.
// Mutations of one match are serialised; different matches proceed in parallel.
type Service struct {
	repo   MatchRepository
	roster Roster
	feed   LiveFeed
	cache  ScoreboardCache
	cfg    ServiceConfig
	locks  *keyedMutex
	now    func() time.Time
}

// NewService wires the service. feed and cache may be nil.
func NewService(repo MatchRepository, roster Roster, feed LiveFeed, cache ScoreboardCache, cfg ServiceConfig) *Service {
	if cfg.DefaultMaxOvers < 1 {
		cfg.DefaultMaxOvers = 20
	}
	return &Service{
		repo:   repo,
		roster: roster,
		feed:   feed,
		cache:  cache,
		cfg:    cfg,
		locks:  newKeyedMutex(),
		now:    time.Now,
	}
}

// ScheduleRequest describes a fixture to create.
type ScheduleRequest struct {
	TeamAID      string
	TeamBID      string
	MaxOvers     int
	Venue        string
	StartTime    time.Time
	TournamentID string
	ScorerID     string
}

// Schedule creates an UPCOMING match between two roster teams.
func (s *Service) Schedule(ctx context.Context, req ScheduleRequest) (scoring.Match, error) {
	if req.TeamAID == req.TeamBID {
		return scoring.Match{}, &scoring.Error{Code: scoring.CodeInvalidInput, Message: "a team cannot play itself"}
	}
	teamA, err := s.roster.GetTeam(ctx, req.TeamAID)
	if err != nil {
		return scoring.Match{}, err
	}
	teamB, err := s.roster.GetTeam(ctx, req.TeamBID)
	if err != nil {
		return scoring.Match{}, err
	}

	m := scoring.Match{
		ID:           uuid.NewString(),
		TournamentID: req.TournamentID,
		TeamA:        teamA,
		TeamB:        teamB,
		Status:       scoring.StatusUpcoming,
		MaxOvers:     req.MaxOvers,
		Innings:      []scoring.Inning{},
		Venue:        req.Venue,
		StartTime:    req.StartTime,
		ScorerID:     req.ScorerID,
	}
	if m.MaxOvers == 0 {
		m.MaxOvers = s.cfg.DefaultMaxOvers
	}
	if m.StartTime.IsZero() {
		m.StartTime = s.now().UTC()
	}
	if err := m.Validate(); err != nil {
		return scoring.Match{}, err
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return scoring.Match{}, err
	}
	s.publish(ctx, m)
	return m, nil
}

func (s *Service) Get(ctx context.Context, id string) (scoring.Match, error) {
	return s.repo.Load(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]scoring.Match, int64, error) {
	return s.repo.List(ctx, filter)
}

// OpenInnings starts the first innings with battingTeamID batting.
func (s *Service) OpenInnings(ctx context.Context, id, battingTeamID string) (scoring.Match, error) {
	return s.mutate(ctx, id, func(m scoring.Match) (scoring.Match, error) {
		return scoring.OpenInnings(m, battingTeamID)
	})
}

// AssignPlayers binds the batsmen and bowler of the open innings.
func (s *Service) AssignPlayers(ctx context.Context, id string, a scoring.Assignment) (scoring.Match, error) {
	if a.Empty() {
		return scoring.Match{}, &scoring.Error{Code: scoring.CodeInvalidInput, Message: "no players given"}
	}
	return s.mutate(ctx, id, func(m scoring.Match) (scoring.Match, error) {
		return scoring.AssignPlayers(ctx, m, a, s.roster)
	})
}

// RecordBall applies one delivery. A closed innings, or an innings still waiting for a
// new batsman when that is required, rejects the ball.
func (s *Service) RecordBall(ctx context.Context, id string, ev scoring.BallEvent) (scoring.Match, error) {
	return s.mutate(ctx, id, func(m scoring.Match) (scoring.Match, error) {
		if closed, reason := m.InningsClosed(); closed {
			return m, &scoring.Error{
				Code:    scoring.CodeInvalidState,
				Message: fmt.Sprintf("innings %d is over (%s)", m.CurrentInnings, reason),
			}
		}
		if s.cfg.RequireNewBatsman {
			if in, err := m.OpenInning(); err == nil && in.AwaitingBatsman {
				return m, &scoring.Error{
					Code:    scoring.CodeUnassignedPlayers,
					Message: "a new batsman must be assigned after the wicket",
				}
			}
		}
		return scoring.ApplyBall(m, ev)
	})
}

func (s *Service) EndFirstInnings(ctx context.Context, id string) (scoring.Match, error) {
	return s.mutate(ctx, id, scoring.EndFirstInnings)
}

func (s *Service) CompleteMatch(ctx context.Context, id string) (scoring.Match, error) {
	return s.mutate(ctx, id, scoring.CompleteMatch)
}

// Scoreboard returns the spectator view, from the cache when it has one.
func (s *Service) Scoreboard(ctx context.Context, id string) (scoring.Scoreboard, error) {
	if s.cache != nil {
		sb, err := s.cache.GetScoreboard(ctx, id)
		if err != nil {
			log.Printf("match %s: scoreboard cache read failed: %v", id, err)
		} else if sb != nil {
			return *sb, nil
		}
	}
	m, err := s.repo.Load(ctx, id)
	if err != nil {
		return scoring.Scoreboard{}, err
	}
	return scoring.NewScoreboard(m), nil
}

// Offline reports whether the match store is running on its local fallback.
func (s *Service) Offline() bool {
	if o, ok := s.repo.(interface{ Offline() bool }); ok {
		return o.Offline()
	}
	return false
}

func (s *Service) mutate(ctx context.Context, id string, fn func(scoring.Match) (scoring.Match, error)) (scoring.Match, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	m, err := s.repo.Load(ctx, id)
	if err != nil {
		return scoring.Match{}, err
	}
	next, err := fn(m)
	if err != nil {
		return scoring.Match{}, err
	}
	if err := s.repo.Save(ctx, next); err != nil {
		return scoring.Match{}, err
	}
	s.publish(ctx, next)
	return next, nil
}

func (s *Service) publish(ctx context.Context, m scoring.Match) {
	if s.feed == nil {
		return
	}
	if err := s.feed.Publish(ctx, m); err != nil {
		log.Printf("match %s: live update not published: %v", m.ID, err)
	}
}

// keyedMutex hands out one mutex per match id and forgets it once nobody holds or waits for it.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*refMutex)}
}

func (k *keyedMutex) Lock(key string) (unlock func()) {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &refMutex{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

func (k *keyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
