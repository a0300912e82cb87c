package scoring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScoreboard_FirstInnings(t *testing.T) {
	m := applyAll(t, liveMatch(t), runs(4), BallEvent{ExtraType: ExtraWide}, runs(0), BallEvent{Runs: 1, ExtraType: ExtraLegBye})

	sb := NewScoreboard(m)
	require.Len(t, sb.Innings, 1)
	assert.Equal(t, "6/0", sb.Innings[0].Score)
	assert.Equal(t, "0.3", sb.Innings[0].Overs)
	assert.Equal(t, "Ahmedabad", sb.Innings[0].BattingTeam)
	assert.Equal(t, 12.0, sb.Innings[0].RunRate)
	assert.Equal(t, []string{"4", "wd", "•", "1lb"}, sb.ThisOver)
	assert.Zero(t, sb.Target)

	require.Len(t, sb.Batsmen, 2)
	assert.Equal(t, "S2", sb.Batsmen[0].PlayerID)
	assert.True(t, sb.Batsmen[0].OnStrike)
	assert.Equal(t, 4, sb.Batsmen[1].Runs)
	assert.Equal(t, 133.33, sb.Batsmen[1].StrikeRate)

	require.NotNil(t, sb.Bowler)
	assert.Equal(t, "0.3", sb.Bowler.Overs)
	assert.Equal(t, 6, sb.Bowler.Runs)
	assert.Equal(t, 12.0, sb.Bowler.Economy)
}

func TestNewScoreboard_Chase(t *testing.T) {
	m, err := EndFirstInnings(applyAll(t, liveMatch(t), runs(6), runs(6)))
	require.NoError(t, err)
	m, err = AssignPlayers(context.Background(), m, Assignment{
		StrikerID:       strPtr("B1"),
		NonStrikerID:    strPtr("B2"),
		CurrentBowlerID: strPtr("S1"),
	}, testRoster)
	require.NoError(t, err)
	m = applyAll(t, m, runs(2))

	sb := NewScoreboard(m)
	assert.Equal(t, 13, sb.Target)
	assert.Equal(t, 11, sb.RunsNeeded)
	assert.Equal(t, 20*6-1, sb.BallsRemaining)
	assert.Equal(t, []string{"2"}, sb.ThisOver)
}

func TestNewScoreboard_Upcoming(t *testing.T) {
	sb := NewScoreboard(upcomingMatch())
	assert.Empty(t, sb.Innings)
	assert.Empty(t, sb.ThisOver)
	assert.Nil(t, sb.Bowler)
	assert.Equal(t, StatusUpcoming, sb.Status)
}
