package scoring

import "strings"

// BallEvent is one delivery as entered by the scorer.
type BallEvent struct {
	Runs       int       `json:"runs"`
	IsWicket   bool      `json:"is_wicket"`
	WicketType string    `json:"wicket_type,omitempty"`
	ExtraType  ExtraType `json:"extra_type,omitempty"`
}

// Validate rejects impossible deliveries before they reach the engine.
func (b BallEvent) Validate() error {
	if b.Runs < 0 || b.Runs > maxRunsOnBall {
		return invalidInput("runs must be between 0 and %d, got %d", maxRunsOnBall, b.Runs)
	}
	if !b.ExtraType.Valid() {
		return invalidInput("unknown extra type %q", b.ExtraType)
	}
	return nil
}

// ApplyBall returns the match after one delivery has been bowled in the open innings.
//
// The input is never mutated. Innings limits (ten wickets, max overs, a reached target)
// are not enforced here; see Match.InningsClosed.
func ApplyBall(m Match, ev BallEvent) (Match, error) {
	if err := ev.Validate(); err != nil {
		return m, err
	}
	if err := m.requireOpenInnings(); err != nil {
		return m, err
	}
	cur := m.Innings[m.CurrentInnings-1]
	if cur.StrikerID == "" || cur.NonStrikerID == "" || cur.CurrentBowlerID == "" {
		return m, unassigned("striker, non-striker and bowler must be assigned before a ball is recorded")
	}

	next := m.Clone()
	in := &next.Innings[next.CurrentInnings-1]
	extra := ev.ExtraType.normalize()
	penalty := extra.Penalty()
	legal := !extra.Rebowled()

	in.recordDelivery(Ball{
		Run:        ev.Runs,
		ExtraType:  extra,
		IsWicket:   ev.IsWicket,
		WicketType: strings.TrimSpace(ev.WicketType),
		BatsmanID:  in.StrikerID,
		BowlerID:   in.CurrentBowlerID,
	})

	// wicket
	if ev.IsWicket {
		in.Wickets++
		if bat := in.batsman(in.StrikerID); bat != nil {
			bat.Out = true
			bat.HowOut = dismissal(ev.WicketType)
		}
		in.AwaitingBatsman = true
	}

	// team score
	credited := 0
	if !ev.IsWicket {
		credited = ev.Runs
	}
	in.Runs += credited + penalty

	// legal delivery
	overDone := false
	if legal {
		in.Balls++
		if in.Balls == BallsPerOver {
			in.Balls = 0
			in.Overs++
			overDone = true
		}
	}

	// batsman; a dismissed striker's line is frozen
	if !ev.IsWicket {
		if bat := in.batsman(in.StrikerID); bat != nil {
			switch extra {
			case ExtraNone:
				bat.Balls++
				bat.Runs += ev.Runs
				switch ev.Runs {
				case 4:
					bat.Fours++
				case 6:
					bat.Sixes++
				}
			case ExtraBye, ExtraLegBye:
				bat.Balls++
			case ExtraNoBall:
				bat.Balls++
				bat.Runs += ev.Runs
			}
		}
	}

	// bowler
	if bowl := in.bowler(in.CurrentBowlerID); bowl != nil {
		bowl.Runs += credited + penalty
		if ev.IsWicket {
			bowl.Wickets++
		}
		if legal {
			bowl.Balls++
			if bowl.Balls == BallsPerOver {
				bowl.Balls = 0
				bowl.Overs++
			}
		}
	}

	// strike rotation
	if !ev.IsWicket {
		if overDone {
			in.swapStrike()
		}
		if ev.Runs%2 == 1 {
			in.swapStrike()
		}
	}

	if next.Status == StatusUpcoming {
		next.Status = StatusLive
	}
	return next, nil
}

func (in *Inning) swapStrike() {
	in.StrikerID, in.NonStrikerID = in.NonStrikerID, in.StrikerID
}

// recordDelivery appends b to the over currently in progress, opening it if needed.
func (in *Inning) recordDelivery(b Ball) {
	number := in.Overs + 1
	if n := len(in.OversHistory); n == 0 || in.OversHistory[n-1].Number != number {
		in.OversHistory = append(in.OversHistory, Over{Number: number})
	}
	last := &in.OversHistory[len(in.OversHistory)-1]
	last.Balls = append(last.Balls, b)
}

func dismissal(wicketType string) string {
	if w := strings.TrimSpace(wicketType); w != "" {
		return w
	}
	return "out"
}
