package football

import (
	"testing"

	"github.com/mauv0809/scoreline/internal/ledger"
	"github.com/mauv0809/scoreline/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shootoutMatch(t *testing.T) Match {
	t.Helper()
	return playToFullTime(t, newMatch(t, 120, false))
}

func kick(t *testing.T, m Match, results ...PenaltyResult) Match {
	t.Helper()
	for _, r := range results {
		var err error
		m, err = RecordPenalty(m, m.Shootout.CurrentTeam, r)
		require.NoError(t, err)
	}
	return m
}

const (
	in  = PenaltyScored
	out = PenaltyMissed
)

func TestRecordPenalty_TurnOrder(t *testing.T) {
	m := shootoutMatch(t)

	_, err := RecordPenalty(m, SideB, in)
	assert.ErrorIs(t, err, rules.ErrIllegalTransition)

	_, err = RecordPenalty(m, SideA, "saved")
	assert.ErrorIs(t, err, rules.ErrValidation)

	m, err = RecordPenalty(m, SideA, in)
	require.NoError(t, err)
	assert.Equal(t, SideB, m.Shootout.CurrentTeam)
	assert.Equal(t, 1, m.Shootout.Round)

	m, err = RecordPenalty(m, SideB, out)
	require.NoError(t, err)
	assert.Equal(t, SideA, m.Shootout.CurrentTeam)
	assert.Equal(t, 2, m.Shootout.Round)
	assert.Equal(t, "1/1", PenaltySummary(*m.Shootout, SideA))
	assert.Equal(t, "0/1", PenaltySummary(*m.Shootout, SideB))
}

func TestRecordPenalty_NoShootout(t *testing.T) {
	m := newMatch(t, 120, false)
	_, err := RecordPenalty(m, SideA, in)
	assert.ErrorIs(t, err, rules.ErrIllegalTransition)
	_, err = UndoPenalty(m)
	assert.ErrorIs(t, err, rules.ErrIllegalTransition)
}

func TestShootout_NoEarlyFinishInRegulationRounds(t *testing.T) {
	m := kick(t, shootoutMatch(t), in, out, in, out, in, out)
	assert.Equal(t, 4, m.Shootout.Round)
	assert.Empty(t, m.Shootout.Winner)
}

func TestShootout_DecidedAfterFiveRounds(t *testing.T) {
	m := kick(t, shootoutMatch(t), in, in, in, in, in, in, in, in, in, out)

	assert.Equal(t, SideA, m.Shootout.Winner)
	assert.Equal(t, 5, m.Shootout.Round)
	assert.Equal(t, ResolutionPenalties, m.Resolution)
	assert.Equal(t, "Rovers", m.Winner)
	assert.Equal(t, "Rovers Wins on Penalties (5-4)!", ResultText(m))

	_, err := RecordPenalty(m, m.Shootout.CurrentTeam, in)
	assert.ErrorIs(t, err, rules.ErrIllegalTransition)
}

func TestShootout_SuddenDeathRounds(t *testing.T) {
	m := kick(t, shootoutMatch(t), in, in, in, in, in, in, in, in, in, in)
	require.Equal(t, 6, m.Shootout.Round)
	assert.Equal(t, "Sudden Death - Round 6", ShootoutLabel(*m.Shootout))

	m = kick(t, m, in, in)
	require.Equal(t, 7, m.Shootout.Round)
	assert.Empty(t, m.Shootout.Winner)

	m = kick(t, m, out, out)
	require.Equal(t, 8, m.Shootout.Round)
	assert.Empty(t, m.Shootout.Winner)

	m = kick(t, m, out, in)
	assert.Equal(t, 8, m.Shootout.Round)
	assert.Equal(t, SideB, m.Shootout.Winner)
	assert.Equal(t, "United", m.Winner)
	assert.Equal(t, "United Wins on Penalties (7-6)!", ResultText(m))
	assert.Equal(t, "Sudden Death - Round 8", ShootoutLabel(*m.Shootout))
}

func TestUndoPenalty_ReopensDecidedShootout(t *testing.T) {
	decided := kick(t, shootoutMatch(t), in, in, in, in, in, in, in, in, in, out)
	require.Equal(t, ResolutionPenalties, decided.Resolution)

	m, err := UndoPenalty(decided)
	require.NoError(t, err)
	assert.Empty(t, m.Shootout.Winner)
	assert.Empty(t, m.Winner)
	assert.Equal(t, ResolutionPending, m.Resolution)
	assert.Equal(t, 5, m.Shootout.Round)
	assert.Equal(t, SideB, m.Shootout.CurrentTeam)
	assert.Equal(t, 0, m.Shootout.MissesB)
	assert.Equal(t, 4, m.Shootout.ScoreB)

	m = kick(t, m, in)
	assert.Equal(t, 6, m.Shootout.Round)
}

func TestUndoPenalty_RoundTrip(t *testing.T) {
	start := shootoutMatch(t)
	m := kick(t, start, in, out, out, in, in)
	for i := 0; i < 5; i++ {
		var err error
		m, err = UndoPenalty(m)
		require.NoError(t, err)
	}
	assert.Equal(t, *start.Shootout, *m.Shootout)

	_, err := UndoPenalty(m)
	assert.ErrorIs(t, err, ledger.ErrNothingToUndo)
}
