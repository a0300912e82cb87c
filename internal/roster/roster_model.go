package roster

import (
	"github.com/DhavalSuthar-24/livescore/internal/models"
	"github.com/DhavalSuthar-24/livescore/internal/scoring"
)

// Team is a side registered for the tournament.
type Team struct {
	models.BaseModel
	Name      string   `json:"name" gorm:"not null;uniqueIndex"`
	ShortName string   `json:"short_name" gorm:"size:10"`
	LogoURL   string   `json:"logo_url"`
	Players   []Player `json:"players,omitempty" gorm:"foreignKey:TeamID"`
}

// Player is a squad member of a team.
type Player struct {
	models.BaseModel
	Name         string `json:"name" gorm:"not null"`
	TeamID       string `json:"team_id" gorm:"type:varchar(36);index;not null"`
	Role         string `json:"role" gorm:"default:'batsman'"` // batsman, bowler, all_rounder, wicket_keeper
	JerseyNumber int    `json:"jersey_number"`
}

// ToScoring converts the row into the value carried inside a match document.
func (t Team) ToScoring() scoring.Team {
	return scoring.Team{ID: t.ID, Name: t.Name, ShortName: t.ShortName, LogoURL: t.LogoURL}
}

func (p Player) ToScoring() scoring.Player {
	return scoring.Player{ID: p.ID, Name: p.Name, TeamID: p.TeamID}
}
