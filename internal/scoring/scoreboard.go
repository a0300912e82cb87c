package scoring

import (
	"fmt"
	"math"
)

// InningsSummary is the headline of one innings, e.g. "104/2" off "12.3".
type InningsSummary struct {
	Number        int     `json:"number"`
	BattingTeamID string  `json:"batting_team_id"`
	BattingTeam   string  `json:"batting_team"`
	Score         string  `json:"score"`
	Overs         string  `json:"overs"`
	Runs          int     `json:"runs"`
	Wickets       int     `json:"wickets"`
	RunRate       float64 `json:"run_rate"`
}

// BatsmanLine is a batsman as shown to spectators.
type BatsmanLine struct {
	PlayerID   string  `json:"player_id"`
	Name       string  `json:"name"`
	Runs       int     `json:"runs"`
	Balls      int     `json:"balls"`
	Fours      int     `json:"fours"`
	Sixes      int     `json:"sixes"`
	StrikeRate float64 `json:"strike_rate"`
	OnStrike   bool    `json:"on_strike"`
}

// BowlerLine is the current bowler as shown to spectators.
type BowlerLine struct {
	PlayerID string  `json:"player_id"`
	Name     string  `json:"name"`
	Overs    string  `json:"overs"`
	Runs     int     `json:"runs"`
	Wickets  int     `json:"wickets"`
	Economy  float64 `json:"economy"`
}

// Scoreboard is the read-only spectator view of a match.
type Scoreboard struct {
	MatchID        string           `json:"match_id"`
	Status         MatchStatus      `json:"status"`
	TeamA          Team             `json:"team_a"`
	TeamB          Team             `json:"team_b"`
	MaxOvers       int              `json:"max_overs"`
	CurrentInnings int              `json:"current_innings"`
	Innings        []InningsSummary `json:"innings"`

	Target         int `json:"target,omitempty"`
	RunsNeeded     int `json:"runs_needed,omitempty"`
	BallsRemaining int `json:"balls_remaining,omitempty"`

	ThisOver        []string      `json:"this_over"`
	Batsmen         []BatsmanLine `json:"batsmen"`
	Bowler          *BowlerLine   `json:"bowler,omitempty"`
	AwaitingBatsman bool          `json:"awaiting_batsman"`

	WinnerID      string `json:"winner_id,omitempty"`
	ResultSummary string `json:"result_summary,omitempty"`
}

// NewScoreboard projects m into the spectator view.
func NewScoreboard(m Match) Scoreboard {
	sb := Scoreboard{
		MatchID:        m.ID,
		Status:         m.Status,
		TeamA:          m.TeamA,
		TeamB:          m.TeamB,
		MaxOvers:       m.MaxOvers,
		CurrentInnings: m.CurrentInnings,
		Innings:        make([]InningsSummary, 0, len(m.Innings)),
		ThisOver:       []string{},
		Batsmen:        []BatsmanLine{},
		WinnerID:       m.WinnerID,
		ResultSummary:  m.ResultSummary,
	}
	for i, in := range m.Innings {
		sb.Innings = append(sb.Innings, InningsSummary{
			Number:        i + 1,
			BattingTeamID: in.BattingTeamID,
			BattingTeam:   m.teamName(in.BattingTeamID),
			Score:         fmt.Sprintf("%d/%d", in.Runs, in.Wickets),
			Overs:         in.OversString(),
			Runs:          in.Runs,
			Wickets:       in.Wickets,
			RunRate:       runRate(in.Runs, in.LegalBalls()),
		})
	}

	if m.CurrentInnings < 1 || m.CurrentInnings > len(m.Innings) {
		return sb
	}
	cur := m.Innings[m.CurrentInnings-1]

	if target, ok := m.Target(); ok {
		sb.Target = target
		if need := target - cur.Runs; need > 0 {
			sb.RunsNeeded = need
		}
		if m.MaxOvers > 0 {
			if left := m.MaxOvers*BallsPerOver - cur.LegalBalls(); left > 0 {
				sb.BallsRemaining = left
			}
		}
	}

	// the over in progress, or the one just finished when the next has not started
	if n := len(cur.OversHistory); n > 0 {
		for _, b := range cur.OversHistory[n-1].Balls {
			sb.ThisOver = append(sb.ThisOver, b.Label())
		}
	}

	for _, id := range []string{cur.StrikerID, cur.NonStrikerID} {
		if id == "" {
			continue
		}
		bat, _ := cur.Batsman(id)
		sb.Batsmen = append(sb.Batsmen, BatsmanLine{
			PlayerID:   id,
			Name:       bat.Name,
			Runs:       bat.Runs,
			Balls:      bat.Balls,
			Fours:      bat.Fours,
			Sixes:      bat.Sixes,
			StrikeRate: round2(bat.StrikeRate()),
			OnStrike:   id == cur.StrikerID,
		})
	}
	if cur.CurrentBowlerID != "" {
		bowl, _ := cur.Bowler(cur.CurrentBowlerID)
		sb.Bowler = &BowlerLine{
			PlayerID: cur.CurrentBowlerID,
			Name:     bowl.Name,
			Overs:    bowl.OversString(),
			Runs:     bowl.Runs,
			Wickets:  bowl.Wickets,
			Economy:  round2(bowl.Economy()),
		}
	}
	sb.AwaitingBatsman = cur.AwaitingBatsman
	return sb
}

func runRate(runs, legalBalls int) float64 {
	if legalBalls == 0 {
		return 0
	}
	return round2(float64(runs) * BallsPerOver / float64(legalBalls))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
