package scoring

import "fmt"

// OpenInnings starts the first innings of an upcoming match with battingTeamID at the crease.
func OpenInnings(m Match, battingTeamID string) (Match, error) {
	if m.Status != StatusUpcoming || len(m.Innings) != 0 {
		return m, invalidState("match %s is %s with %d innings, cannot open the first innings", m.ID, m.Status, len(m.Innings))
	}
	var bowlingTeamID string
	switch battingTeamID {
	case m.TeamA.ID:
		bowlingTeamID = m.TeamB.ID
	case m.TeamB.ID:
		bowlingTeamID = m.TeamA.ID
	default:
		return m, invalidInput("team %q is not playing in match %s", battingTeamID, m.ID)
	}

	next := m.Clone()
	next.Innings = []Inning{newInning(battingTeamID, bowlingTeamID)}
	next.CurrentInnings = 1
	next.Status = StatusLive
	return next, nil
}

// EndFirstInnings closes innings one and opens innings two with the sides swapped.
func EndFirstInnings(m Match) (Match, error) {
	if m.CurrentInnings != 1 || len(m.Innings) != 1 {
		return m, invalidState("match %s is in innings %d, cannot end the first innings", m.ID, m.CurrentInnings)
	}
	if m.Status == StatusCompleted {
		return m, invalidState("match %s is completed", m.ID)
	}

	first := m.Innings[0]
	next := m.Clone()
	next.Innings = append(next.Innings, newInning(first.BowlingTeamID, first.BattingTeamID))
	next.CurrentInnings = 2
	next.Status = StatusLive
	return next, nil
}

// CompleteMatch decides the result from the two innings totals and closes the match.
func CompleteMatch(m Match) (Match, error) {
	if m.CurrentInnings != 2 || len(m.Innings) != 2 {
		return m, invalidState("match %s is in innings %d, cannot complete", m.ID, m.CurrentInnings)
	}
	if m.Status == StatusCompleted {
		return m, invalidState("match %s is already completed", m.ID)
	}

	first, second := m.Innings[0], m.Innings[1]
	next := m.Clone()
	switch {
	case first.Runs > second.Runs:
		margin := first.Runs - second.Runs
		next.WinnerID = first.BattingTeamID
		next.ResultSummary = fmt.Sprintf("%s won by %s", m.teamName(first.BattingTeamID), plural(margin, "run"))
	case second.Runs > first.Runs:
		margin := MaxWickets - second.Wickets
		next.WinnerID = second.BattingTeamID
		next.ResultSummary = fmt.Sprintf("%s won by %s", m.teamName(second.BattingTeamID), plural(margin, "wicket"))
	default:
		next.WinnerID = TieWinnerID
		next.ResultSummary = "Match tied"
	}
	next.Status = StatusCompleted
	return next, nil
}

func newInning(battingTeamID, bowlingTeamID string) Inning {
	return Inning{
		BattingTeamID: battingTeamID,
		BowlingTeamID: bowlingTeamID,
		BatsmenStats:  []BatsmanStats{},
		BowlerStats:   []BowlerStats{},
		OversHistory:  []Over{},
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
