package scoring

import (
	"slices"
	"strconv"
	"time"
)

// MatchStatus is the lifecycle state of a fixture.
type MatchStatus string

const (
	StatusUpcoming  MatchStatus = "UPCOMING"
	StatusLive      MatchStatus = "LIVE"
	StatusCompleted MatchStatus = "COMPLETED"
)

// ExtraType for runs not scored off the bat
type ExtraType string

const (
	ExtraNone   ExtraType = "none"
	ExtraWide   ExtraType = "wide"
	ExtraNoBall ExtraType = "no-ball"
	ExtraBye    ExtraType = "bye"
	ExtraLegBye ExtraType = "leg-bye"
)

const (
	BallsPerOver  = 6
	MaxWickets    = 10
	TieWinnerID   = "TIE" // WinnerID of a tied match
	penaltyRuns   = 1     // awarded for every wide and no-ball
	maxRunsOnBall = 6
)

// normalize maps the empty value to ExtraNone.
func (e ExtraType) normalize() ExtraType {
	if e == "" {
		return ExtraNone
	}
	return e
}

// Valid reports whether e is one of the known extra types (the empty value counts as none).
func (e ExtraType) Valid() bool {
	switch e.normalize() {
	case ExtraNone, ExtraWide, ExtraNoBall, ExtraBye, ExtraLegBye:
		return true
	}
	return false
}

// Rebowled reports whether the delivery has to be bowled again (wide and no-ball).
func (e ExtraType) Rebowled() bool {
	n := e.normalize()
	return n == ExtraWide || n == ExtraNoBall
}

// Penalty is the extra run added to the team total for the delivery.
func (e ExtraType) Penalty() int {
	if e.Rebowled() {
		return penaltyRuns
	}
	return 0
}

// Team is a side as supplied by the roster.
type Team struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name,omitempty"`
	LogoURL   string `json:"logo_url,omitempty"`
}

// Player is a roster entry.
type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	TeamID string `json:"team_id,omitempty"`
}

// BatsmanStats is one batting line of an innings.
type BatsmanStats struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Runs     int    `json:"runs"`
	Balls    int    `json:"balls"`
	Fours    int    `json:"fours"`
	Sixes    int    `json:"sixes"`
	Out      bool   `json:"out"`
	HowOut   string `json:"how_out,omitempty"`
}

// StrikeRate is runs per hundred balls faced.
func (b BatsmanStats) StrikeRate() float64 {
	if b.Balls == 0 {
		return 0
	}
	return float64(b.Runs) * 100 / float64(b.Balls)
}

// BowlerStats is one bowling line of an innings.
type BowlerStats struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Overs    int    `json:"overs"`
	Balls    int    `json:"balls"` // legal balls in the current over
	Runs     int    `json:"runs"`
	Wickets  int    `json:"wickets"`
}

// OversString renders the spell as "overs.balls", e.g. "2.2".
func (b BowlerStats) OversString() string {
	return oversString(b.Overs, b.Balls)
}

// Economy is runs conceded per six legal balls.
func (b BowlerStats) Economy() float64 {
	legal := b.Overs*BallsPerOver + b.Balls
	if legal == 0 {
		return 0
	}
	return float64(b.Runs) * BallsPerOver / float64(legal)
}

// Ball is one delivery as recorded in the overs history.
type Ball struct {
	Run        int       `json:"run"`
	ExtraType  ExtraType `json:"extra_type,omitempty"`
	IsWicket   bool      `json:"is_wicket"`
	WicketType string    `json:"wicket_type,omitempty"`
	BatsmanID  string    `json:"batsman_id"`
	BowlerID   string    `json:"bowler_id"`
}

// Label is the short mark shown in the "this over" tracker.
func (b Ball) Label() string {
	switch {
	case b.IsWicket:
		return "W"
	case b.ExtraType.normalize() == ExtraWide:
		return "wd"
	case b.ExtraType.normalize() == ExtraNoBall:
		return "nb"
	case b.ExtraType.normalize() == ExtraBye:
		return strconv.Itoa(b.Run) + "b"
	case b.ExtraType.normalize() == ExtraLegBye:
		return strconv.Itoa(b.Run) + "lb"
	case b.Run == 0:
		return "•"
	}
	return strconv.Itoa(b.Run)
}

// Over groups the deliveries bowled in one over, re-bowled ones included.
type Over struct {
	Number int    `json:"number"` // 1-indexed
	Balls  []Ball `json:"balls"`
}

// Inning represents one team's batting session in a match.
type Inning struct {
	BattingTeamID string `json:"batting_team_id"`
	BowlingTeamID string `json:"bowling_team_id"`

	Runs    int `json:"runs"`
	Wickets int `json:"wickets"`
	Overs   int `json:"overs"` // completed overs
	Balls   int `json:"balls"` // legal balls in the current over, 0-5

	StrikerID       string `json:"striker_id,omitempty"`
	NonStrikerID    string `json:"non_striker_id,omitempty"`
	CurrentBowlerID string `json:"current_bowler_id,omitempty"`

	// AwaitingBatsman is set by a wicket and cleared once a batsman is assigned.
	AwaitingBatsman bool `json:"awaiting_batsman"`

	BatsmenStats []BatsmanStats `json:"batsmen_stats"`
	BowlerStats  []BowlerStats  `json:"bowler_stats"`
	OversHistory []Over         `json:"overs_history"`
}

// LegalBalls is the number of legal deliveries bowled in the innings.
func (in Inning) LegalBalls() int {
	return in.Overs*BallsPerOver + in.Balls
}

// OversString renders the innings progress as "overs.balls".
func (in Inning) OversString() string {
	return oversString(in.Overs, in.Balls)
}

// Batsman returns the batting line for playerID, if any.
func (in Inning) Batsman(playerID string) (BatsmanStats, bool) {
	for _, b := range in.BatsmenStats {
		if b.PlayerID == playerID {
			return b, true
		}
	}
	return BatsmanStats{}, false
}

// Bowler returns the bowling line for playerID, if any.
func (in Inning) Bowler(playerID string) (BowlerStats, bool) {
	for _, b := range in.BowlerStats {
		if b.PlayerID == playerID {
			return b, true
		}
	}
	return BowlerStats{}, false
}

func (in *Inning) batsman(playerID string) *BatsmanStats {
	for i := range in.BatsmenStats {
		if in.BatsmenStats[i].PlayerID == playerID {
			return &in.BatsmenStats[i]
		}
	}
	return nil
}

func (in *Inning) bowler(playerID string) *BowlerStats {
	for i := range in.BowlerStats {
		if in.BowlerStats[i].PlayerID == playerID {
			return &in.BowlerStats[i]
		}
	}
	return nil
}

func (in Inning) clone() Inning {
	out := in
	out.BatsmenStats = slices.Clone(in.BatsmenStats)
	out.BowlerStats = slices.Clone(in.BowlerStats)
	out.OversHistory = slices.Clone(in.OversHistory)
	for i := range out.OversHistory {
		out.OversHistory[i].Balls = slices.Clone(in.OversHistory[i].Balls)
	}
	return out
}

// Match is one fixture between two teams.
type Match struct {
	ID           string `json:"id"`
	TournamentID string `json:"tournament_id,omitempty"`
	TeamA        Team   `json:"team_a"`
	TeamB        Team   `json:"team_b"`

	Status         MatchStatus `json:"status"`
	CurrentInnings int         `json:"current_innings"`
	MaxOvers       int         `json:"max_overs"`
	Innings        []Inning    `json:"innings"`

	WinnerID      string `json:"winner_id,omitempty"`
	ResultSummary string `json:"result_summary,omitempty"`

	Venue     string    `json:"venue,omitempty"`
	StartTime time.Time `json:"start_time"`
	ScorerID  string    `json:"scorer_id,omitempty"`
}

// Clone returns a deep copy; the engine only ever mutates clones.
func (m Match) Clone() Match {
	out := m
	out.Innings = slices.Clone(m.Innings)
	for i := range out.Innings {
		out.Innings[i] = m.Innings[i].clone()
	}
	return out
}

// OpenInning returns the innings currently being played.
func (m Match) OpenInning() (Inning, error) {
	if err := m.requireOpenInnings(); err != nil {
		return Inning{}, err
	}
	return m.Innings[m.CurrentInnings-1], nil
}

func (m Match) requireOpenInnings() error {
	if m.Status == StatusCompleted {
		return invalidState("match %s is completed", m.ID)
	}
	if m.CurrentInnings < 1 || len(m.Innings) != m.CurrentInnings {
		return invalidState("match %s has no open innings", m.ID)
	}
	return nil
}

// Team resolves one of the two sides by id.
func (m Match) Team(id string) (Team, bool) {
	switch id {
	case m.TeamA.ID:
		return m.TeamA, true
	case m.TeamB.ID:
		return m.TeamB, true
	}
	return Team{}, false
}

func (m Match) teamName(id string) string {
	if t, ok := m.Team(id); ok && t.Name != "" {
		return t.Name
	}
	return id
}

// Target is the score the second innings must reach to win; ok is false before innings two.
func (m Match) Target() (target int, ok bool) {
	if m.CurrentInnings < 2 || len(m.Innings) < 2 {
		return 0, false
	}
	return m.Innings[0].Runs + 1, true
}

// Validate checks the structural invariants of a match value.
func (m Match) Validate() error {
	if m.TeamA.ID == "" || m.TeamB.ID == "" {
		return invalidInput("match %s must have two teams", m.ID)
	}
	if m.TeamA.ID == m.TeamB.ID {
		return invalidInput("match %s has the same team on both sides", m.ID)
	}
	if m.MaxOvers < 0 {
		return invalidInput("max overs must not be negative, got %d", m.MaxOvers)
	}
	switch m.Status {
	case StatusUpcoming:
		if len(m.Innings) != 0 {
			return invalidState("upcoming match %s already has %d innings", m.ID, len(m.Innings))
		}
	case StatusLive, StatusCompleted:
		if len(m.Innings) == 0 || len(m.Innings) > 2 || len(m.Innings) != m.CurrentInnings {
			return invalidState("match %s has %d innings but current innings %d", m.ID, len(m.Innings), m.CurrentInnings)
		}
	default:
		return invalidInput("unknown match status %q", m.Status)
	}
	for i, in := range m.Innings {
		if in.Wickets < 0 || in.Wickets > MaxWickets {
			return invalidState("innings %d has %d wickets", i+1, in.Wickets)
		}
		if in.Balls < 0 || in.Balls >= BallsPerOver {
			return invalidState("innings %d has %d balls in the current over", i+1, in.Balls)
		}
	}
	return nil
}

// InningsClosed reports whether the open innings can take no further deliveries, and why.
// The engine itself never applies this; callers check it before recording a ball.
func (m Match) InningsClosed() (closed bool, reason string) {
	in, err := m.OpenInning()
	if err != nil {
		return false, ""
	}
	if in.Wickets >= MaxWickets {
		return true, "all out"
	}
	if m.MaxOvers > 0 && in.LegalBalls() >= m.MaxOvers*BallsPerOver {
		return true, plural(m.MaxOvers, "over") + " completed"
	}
	if target, ok := m.Target(); ok && in.Runs >= target {
		return true, "target reached"
	}
	return false, ""
}

func oversString(overs, balls int) string {
	return strconv.Itoa(overs) + "." + strconv.Itoa(balls)
}
