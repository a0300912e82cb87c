package scoring

import (
	"context"
	"fmt"
)

// RosterProvider resolves player ids to display names.
type RosterProvider interface {
	GetPlayer(ctx context.Context, playerID string) (Player, error)
}

// Assignment names the players to bind; nil fields are left unchanged.
type Assignment struct {
	StrikerID       *string `json:"striker_id,omitempty"`
	NonStrikerID    *string `json:"non_striker_id,omitempty"`
	CurrentBowlerID *string `json:"current_bowler_id,omitempty"`
}

// Empty reports whether no field is set.
func (a Assignment) Empty() bool {
	return a.StrikerID == nil && a.NonStrikerID == nil && a.CurrentBowlerID == nil
}

// AssignPlayers binds the striker, non-striker and bowler of the open innings.
// New ids get a zeroed stats line named from the roster; existing lines are reused.
func AssignPlayers(ctx context.Context, m Match, a Assignment, roster RosterProvider) (Match, error) {
	if err := m.requireOpenInnings(); err != nil {
		return m, err
	}
	for _, id := range []*string{a.StrikerID, a.NonStrikerID, a.CurrentBowlerID} {
		if id != nil && *id == "" {
			return m, invalidInput("player id must not be empty")
		}
	}

	cur := m.Innings[m.CurrentInnings-1]
	striker, nonStriker := cur.StrikerID, cur.NonStrikerID
	if a.StrikerID != nil {
		striker = *a.StrikerID
	}
	if a.NonStrikerID != nil {
		nonStriker = *a.NonStrikerID
	}
	if striker != "" && striker == nonStriker {
		return m, invalidInput("player %s cannot be both striker and non-striker", striker)
	}

	next := m.Clone()
	in := &next.Innings[next.CurrentInnings-1]

	for _, id := range []*string{a.StrikerID, a.NonStrikerID} {
		if id == nil || in.batsman(*id) != nil {
			continue
		}
		p, err := roster.GetPlayer(ctx, *id)
		if err != nil {
			return m, lookupError(*id, err)
		}
		in.BatsmenStats = append(in.BatsmenStats, BatsmanStats{PlayerID: *id, Name: p.Name})
	}
	if a.CurrentBowlerID != nil && in.bowler(*a.CurrentBowlerID) == nil {
		p, err := roster.GetPlayer(ctx, *a.CurrentBowlerID)
		if err != nil {
			return m, lookupError(*a.CurrentBowlerID, err)
		}
		in.BowlerStats = append(in.BowlerStats, BowlerStats{PlayerID: *a.CurrentBowlerID, Name: p.Name})
	}

	if a.StrikerID != nil || a.NonStrikerID != nil {
		in.AwaitingBatsman = false
	}
	in.StrikerID = striker
	in.NonStrikerID = nonStriker
	if a.CurrentBowlerID != nil {
		in.CurrentBowlerID = *a.CurrentBowlerID
	}
	return next, nil
}

func lookupError(playerID string, err error) error {
	if _, ok := CodeOf(err); ok {
		return err
	}
	return fmt.Errorf("resolve player %s: %w", playerID, err)
}
