package match

import (
	"database/sql/driver"
	"time"

	"github.com/DhavalSuthar-24/livescore/internal/models"
	"github.com/DhavalSuthar-24/livescore/internal/scoring"
)

// TeamColumn stores a match side as JSON so the scorecard survives roster edits.
type TeamColumn scoring.Team

func (t TeamColumn) Value() (driver.Value, error) {
	return models.JSONValue(t)
}

func (t *TeamColumn) Scan(src interface{}) error {
	return models.ScanJSON(src, t, "TeamColumn")
}

// InningsColumn holds both innings, stats and overs history included, as one JSON document.
type InningsColumn []scoring.Inning

func (in InningsColumn) Value() (driver.Value, error) {
	if in == nil {
		in = InningsColumn{}
	}
	return models.JSONValue(in)
}

func (in *InningsColumn) Scan(src interface{}) error {
	return models.ScanJSON(src, in, "InningsColumn")
}

// MatchRecord is the row a scoring.Match is persisted as.
type MatchRecord struct {
	models.BaseModel
	TournamentID string     `gorm:"index"`
	TeamAID      string     `gorm:"type:varchar(36);index;not null"`
	TeamBID      string     `gorm:"type:varchar(36);index;not null"`
	TeamA        TeamColumn `gorm:"type:json"`
	TeamB        TeamColumn `gorm:"type:json"`

	Status         string        `gorm:"index;not null;default:'UPCOMING'"`
	CurrentInnings int           `gorm:"not null;default:0"`
	MaxOvers       int           `gorm:"not null"`
	Innings        InningsColumn `gorm:"type:json"`

	WinnerID      string
	ResultSummary string

	Venue     string
	StartTime time.Time `gorm:"index"`
	ScorerID  string    `gorm:"index"`
}

func (MatchRecord) TableName() string {
	return "matches"
}

func recordFromMatch(m scoring.Match) MatchRecord {
	return MatchRecord{
		BaseModel:      models.BaseModel{ID: m.ID},
		TournamentID:   m.TournamentID,
		TeamAID:        m.TeamA.ID,
		TeamBID:        m.TeamB.ID,
		TeamA:          TeamColumn(m.TeamA),
		TeamB:          TeamColumn(m.TeamB),
		Status:         string(m.Status),
		CurrentInnings: m.CurrentInnings,
		MaxOvers:       m.MaxOvers,
		Innings:        InningsColumn(m.Innings),
		WinnerID:       m.WinnerID,
		ResultSummary:  m.ResultSummary,
		Venue:          m.Venue,
		StartTime:      m.StartTime,
		ScorerID:       m.ScorerID,
	}
}

func (r MatchRecord) toMatch() scoring.Match {
	innings := []scoring.Inning(r.Innings)
	if innings == nil {
		innings = []scoring.Inning{}
	}
	return scoring.Match{
		ID:             r.ID,
		TournamentID:   r.TournamentID,
		TeamA:          scoring.Team(r.TeamA),
		TeamB:          scoring.Team(r.TeamB),
		Status:         scoring.MatchStatus(r.Status),
		CurrentInnings: r.CurrentInnings,
		MaxOvers:       r.MaxOvers,
		Innings:        innings,
		WinnerID:       r.WinnerID,
		ResultSummary:  r.ResultSummary,
		Venue:          r.Venue,
		StartTime:      r.StartTime,
		ScorerID:       r.ScorerID,
	}
}
