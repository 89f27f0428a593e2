package football

import (
	"testing"

	"github.com/mauv0809/scoreline/internal/ledger"
	"github.com/mauv0809/scoreline/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMatch(t *testing.T, seconds int, allowDraw bool) Match {
	t.Helper()
	m, err := NewMatch(Config{ID: "f1", TeamA: "Rovers", TeamB: "United", DurationSeconds: seconds, AllowDraw: allowDraw})
	require.NoError(t, err)
	return m
}

func tick(m Match, n int) Match {
	for i := 0; i < n; i++ {
		m = Tick(m)
	}
	return m
}

// playToFullTime runs both halves with no added time.
func playToFullTime(t *testing.T, m Match) Match {
	t.Helper()
	m = tick(m, m.Halftime())
	require.Equal(t, PhaseFirstHalfPause, m.Phase)
	m, err := ConfirmAddedTime(m, 0)
	require.NoError(t, err)
	require.Equal(t, PhaseHalftimeBreak, m.Phase)
	m, err = StartSecondHalf(m)
	require.NoError(t, err)
	m = tick(m, m.DurationSeconds-m.Halftime())
	require.Equal(t, PhaseSecondHalfPause, m.Phase)
	m, err = ConfirmAddedTime(m, 0)
	require.NoError(t, err)
	require.Equal(t, PhaseEnded, m.Phase)
	return m
}

func TestNewMatch_Validation(t *testing.T) {
	_, err := NewMatch(Config{TeamA: "Rovers", DurationSeconds: 120})
	assert.ErrorIs(t, err, rules.ErrValidation)
	_, err = NewMatch(Config{TeamA: "Rovers", TeamB: "ROVERS", DurationSeconds: 120})
	assert.ErrorIs(t, err, rules.ErrValidation)
	_, err = NewMatch(Config{TeamA: "Rovers", TeamB: "United", DurationSeconds: 0})
	assert.ErrorIs(t, err, rules.ErrValidation)
}

func TestTick_IgnoredOutsideRunningPhases(t *testing.T) {
	m := tick(newMatch(t, 120, false), 60)
	require.Equal(t, PhaseFirstHalfPause, m.Phase)

	paused := tick(m, 30)
	assert.Equal(t, m, paused)
}

func TestAddedTime(t *testing.T) {
	m := tick(newMatch(t, 120, false), 60)

	_, err := ConfirmAddedTime(m, -1)
	assert.ErrorIs(t, err, rules.ErrValidation)

	m, err = ConfirmAddedTime(m, 1)
	require.NoError(t, err)
	assert.Equal(t, PhaseFirstHalfAdded, m.Phase)
	assert.Equal(t, 60, m.AddedTime)

	m = tick(m, 59)
	assert.Equal(t, PhaseFirstHalfAdded, m.Phase)
	m = Tick(m)
	assert.Equal(t, PhaseHalftimeBreak, m.Phase)

	_, err = ConfirmAddedTime(m, 1)
	assert.ErrorIs(t, err, rules.ErrIllegalTransition)

	m, err = StartSecondHalf(m)
	require.NoError(t, err)
	assert.Equal(t, 60, m.Timer)
	assert.Equal(t, 0, m.AddedTime)
	assert.Equal(t, "01:00", ClockText(m))

	_, err = StartSecondHalf(m)
	assert.ErrorIs(t, err, rules.ErrIllegalTransition)
}

func TestGoals(t *testing.T) {
	m := tick(newMatch(t, 600, false), 125)

	m, err := RecordGoal(m, SideA, " Sam ")
	require.NoError(t, err)
	m, err = RecordGoal(m, SideB, "")
	require.NoError(t, err)
	assert.Equal(t, "1-1", ScoreLine(m))

	last, _ := m.Goals.Last()
	assert.Equal(t, GoalEvent{Team: SideB, Second: 125, Minute: 3}, last)
	first := m.Goals.Entries()[0]
	assert.Equal(t, "Sam", first.Scorer)

	_, err = RecordGoal(m, "C", "")
	assert.ErrorIs(t, err, rules.ErrValidation)

	m, err = UndoGoal(m)
	require.NoError(t, err)
	m, err = UndoGoal(m)
	require.NoError(t, err)
	assert.Equal(t, "0-0", ScoreLine(m))

	_, err = UndoGoal(m)
	assert.ErrorIs(t, err, ledger.ErrNothingToUndo)
}

func TestGoals_OnlyWhileRunning(t *testing.T) {
	m := tick(newMatch(t, 120, false), 60)
	_, err := RecordGoal(m, SideA, "")
	assert.ErrorIs(t, err, rules.ErrIllegalTransition)
}

func TestUndoGoal_AllowedDuringPauseNotAfterEnd(t *testing.T) {
	m := tick(newMatch(t, 120, false), 10)
	m, err := RecordGoal(m, SideA, "")
	require.NoError(t, err)
	m = tick(m, 50)
	require.Equal(t, PhaseFirstHalfPause, m.Phase)

	undone, err := UndoGoal(m)
	require.NoError(t, err)
	assert.Equal(t, 0, undone.GoalsA)

	m = playToFullTime(t, undone)
	_, err = UndoGoal(m)
	assert.ErrorIs(t, err, rules.ErrIllegalTransition)
}

func TestFullTime_RegulationWinner(t *testing.T) {
	m := tick(newMatch(t, 120, false), 30)
	m, err := RecordGoal(m, SideB, "")
	require.NoError(t, err)
	m = playToFullTime(t, m)

	assert.Equal(t, ResolutionRegulation, m.Resolution)
	assert.Equal(t, "United", m.Winner)
	assert.Nil(t, m.Shootout)
	assert.True(t, m.Completed())
	assert.Equal(t, "United Wins!", ResultText(m))
}

func TestTwoMinuteGoallessMatchGoesToPenalties(t *testing.T) {
	m := playToFullTime(t, newMatch(t, 120, false))

	require.NotNil(t, m.Shootout)
	assert.Equal(t, 1, m.Shootout.Round)
	assert.Equal(t, SideA, m.Shootout.CurrentTeam)
	assert.Equal(t, ResolutionPending, m.Resolution)
	assert.False(t, m.Completed())
	assert.Equal(t, "Penalty Round 1 of 5", ShootoutLabel(*m.Shootout))
}

func TestLevelMatch_DrawDecision(t *testing.T) {
	m := playToFullTime(t, newMatch(t, 120, true))
	assert.Equal(t, ResolutionAwaitingDraw, m.Resolution)
	assert.Nil(t, m.Shootout)

	drawn, err := ConcludeDraw(m)
	require.NoError(t, err)
	assert.Equal(t, "Match Draw!", ResultText(drawn))
	assert.True(t, drawn.Completed())

	_, err = StartShootout(drawn)
	assert.ErrorIs(t, err, rules.ErrIllegalTransition)

	penalties, err := StartShootout(m)
	require.NoError(t, err)
	require.NotNil(t, penalties.Shootout)
	assert.Equal(t, ResolutionPending, penalties.Resolution)
}

func TestSummary(t *testing.T) {
	m := tick(newMatch(t, 600, false), 61)
	m, err := RecordGoal(m, SideA, "Sam")
	require.NoError(t, err)
	m = tick(m, 10)
	m, err = RecordGoal(m, SideB, "")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Rovers 1-1 United",
		"2' Sam (Rovers)",
		"2' Goal (United)",
	}, Summary(m))

	m = playToFullTime(t, m)
	m, err = RecordPenalty(m, SideA, PenaltyScored)
	require.NoError(t, err)
	assert.Equal(t, "Penalties: Rovers 1/1 - 0/0 United", Summary(m)[3])
}
