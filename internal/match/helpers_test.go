package match

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/livescore/internal/scoring"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	teamAID = "6f1c2d3e-0000-4000-8000-00000000000a"
	teamBID = "6f1c2d3e-0000-4000-8000-00000000000b"
)

type stubRoster struct {
	teams   map[string]scoring.Team
	players map[string]scoring.Player
}

func newStubRoster() *stubRoster {
	return &stubRoster{
		teams: map[string]scoring.Team{
			teamAID: {ID: teamAID, Name: "Ahmedabad", ShortName: "AHM"},
			teamBID: {ID: teamBID, Name: "Baroda", ShortName: "BRD"},
		},
		players: map[string]scoring.Player{
			"S1": {ID: "S1", Name: "Striker One", TeamID: teamAID},
			"S2": {ID: "S2", Name: "Striker Two", TeamID: teamAID},
			"S3": {ID: "S3", Name: "Striker Three", TeamID: teamAID},
			"B1": {ID: "B1", Name: "Bowler One", TeamID: teamBID},
			"B2": {ID: "B2", Name: "Bowler Two", TeamID: teamBID},
		},
	}
}

func (r *stubRoster) GetPlayer(_ context.Context, id string) (scoring.Player, error) {
	p, ok := r.players[id]
	if !ok {
		return scoring.Player{}, scoring.NotFound("player", id)
	}
	return p, nil
}

func (r *stubRoster) GetTeam(_ context.Context, id string) (scoring.Team, error) {
	t, ok := r.teams[id]
	if !ok {
		return scoring.Team{}, scoring.NotFound("team", id)
	}
	return t, nil
}

// recordingFeed remembers every published match.
type recordingFeed struct {
	mu        sync.Mutex
	published []scoring.Match
	err       error
}

func (f *recordingFeed) Publish(_ context.Context, m scoring.Match) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, m)
	return f.err
}

func (f *recordingFeed) last() scoring.Match {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.published[len(f.published)-1]
}

func (f *recordingFeed) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.published)
}

// flakyRepo fails every call while down is set.
type flakyRepo struct {
	MatchRepository
	mu   sync.Mutex
	down bool
}

var errStoreDown = errors.New("connection refused")

func (r *flakyRepo) setDown(down bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.down = down
}

func (r *flakyRepo) isDown() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.down
}

func (r *flakyRepo) Create(ctx context.Context, m scoring.Match) error {
	if r.isDown() {
		return errStoreDown
	}
	return r.MatchRepository.Create(ctx, m)
}

func (r *flakyRepo) Load(ctx context.Context, id string) (scoring.Match, error) {
	if r.isDown() {
		return scoring.Match{}, errStoreDown
	}
	return r.MatchRepository.Load(ctx, id)
}

func (r *flakyRepo) Save(ctx context.Context, m scoring.Match) error {
	if r.isDown() {
		return errStoreDown
	}
	return r.MatchRepository.Save(ctx, m)
}

func (r *flakyRepo) List(ctx context.Context, f ListFilter) ([]scoring.Match, int64, error) {
	if r.isDown() {
		return nil, 0, errStoreDown
	}
	return r.MatchRepository.List(ctx, f)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&MatchRecord{}))
	return db
}

func fixture(id string, status scoring.MatchStatus, start time.Time) scoring.Match {
	return scoring.Match{
		ID:           id,
		TournamentID: "t1",
		TeamA:        scoring.Team{ID: teamAID, Name: "Ahmedabad"},
		TeamB:        scoring.Team{ID: teamBID, Name: "Baroda"},
		Status:       status,
		MaxOvers:     20,
		Innings:      []scoring.Inning{},
		Venue:        "Motera",
		StartTime:    start,
	}
}

// scoredFixture is an UPCOMING fixture taken through an innings opening, an assignment and a few balls.
func scoredFixture(t *testing.T, id string) scoring.Match {
	t.Helper()
	m, err := scoring.OpenInnings(fixture(id, scoring.StatusUpcoming, time.Date(2026, 4, 1, 14, 0, 0, 0, time.UTC)), teamAID)
	require.NoError(t, err)
	s1, s2, b1 := "S1", "S2", "B1"
	m, err = scoring.AssignPlayers(context.Background(), m, scoring.Assignment{StrikerID: &s1, NonStrikerID: &s2, CurrentBowlerID: &b1}, newStubRoster())
	require.NoError(t, err)
	for _, ev := range []scoring.BallEvent{{Runs: 4}, {ExtraType: scoring.ExtraWide}, {Runs: 1}} {
		m, err = scoring.ApplyBall(m, ev)
		require.NoError(t, err)
	}
	return m
}

func strPtr(s string) *string { return &s }
