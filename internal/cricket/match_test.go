package cricket

import (
	"testing"

	"github.com/mauv0809/scoreline/internal/ledger"
	"github.com/mauv0809/scoreline/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedCoin int

func (c fixedCoin) IntN(int) int { return int(c) }

func startedMatch(t *testing.T, overs int) Match {
	t.Helper()
	m, err := NewMatch(Config{ID: "m1", TeamA: "Lions", TeamB: "Tigers", OversLimit: overs})
	require.NoError(t, err)
	m, err = Toss(m, fixedCoin(0))
	require.NoError(t, err)
	m, err = Decide(m, DecisionBat)
	require.NoError(t, err)
	return m
}

func bowl(t *testing.T, m Match, deliveries ...Delivery) Match {
	t.Helper()
	for _, d := range deliveries {
		var err error
		m, err = RecordBall(m, d)
		require.NoError(t, err)
	}
	return m
}

func runs(n ...int) []Delivery {
	out := make([]Delivery, len(n))
	for i, r := range n {
		out[i] = Delivery{Runs: r}
	}
	return out
}

func TestNewMatch_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing team", Config{TeamA: "Lions", OversLimit: 2}},
		{"same teams", Config{TeamA: "Lions", TeamB: "lions", OversLimit: 2}},
		{"zero overs", Config{TeamA: "Lions", TeamB: "Tigers"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMatch(tt.cfg)
			assert.ErrorIs(t, err, rules.ErrValidation)
		})
	}
}

func TestTossAndDecision(t *testing.T) {
	m, err := NewMatch(Config{ID: "m1", TeamA: "Lions", TeamB: "Tigers", OversLimit: 2})
	require.NoError(t, err)
	assert.Equal(t, StatusAwaitingToss, m.Status)

	_, err = RecordBall(m, Delivery{Runs: 1})
	assert.ErrorIs(t, err, rules.ErrIllegalTransition)

	m, err = Toss(m, fixedCoin(1))
	require.NoError(t, err)
	assert.Equal(t, "Tigers", m.TossWinner)
	assert.Equal(t, StatusAwaitingDecision, m.Status)

	_, err = Toss(m, fixedCoin(0))
	assert.ErrorIs(t, err, rules.ErrIllegalTransition)

	_, err = Decide(m, "field")
	assert.ErrorIs(t, err, rules.ErrValidation)

	m, err = Decide(m, DecisionBowl)
	require.NoError(t, err)
	assert.Equal(t, "Lions", m.BattingTeam)
	assert.Equal(t, "Tigers", m.BowlingTeam)
	assert.Equal(t, 1, m.CurrentInning)
	assert.Equal(t, StatusInProgress, m.Status)
	assert.Equal(t, "Tigers won the toss and chose to bowl", TossText(m))
}

func TestSetTossWinner_UnknownTeam(t *testing.T) {
	m, err := NewMatch(Config{TeamA: "Lions", TeamB: "Tigers", OversLimit: 1})
	require.NoError(t, err)
	_, err = SetTossWinner(m, "Bears")
	assert.ErrorIs(t, err, rules.ErrValidation)
}

func TestRecordBall_Deliveries(t *testing.T) {
	tests := []struct {
		name        string
		delivery    Delivery
		wantScore   int
		wantLegal   int
		wantWickets int
		wantStriker int
	}{
		{"dot ball", Delivery{Runs: 0}, 0, 1, 0, 0},
		{"single rotates strike", Delivery{Runs: 1}, 1, 1, 0, 1},
		{"boundary keeps strike", Delivery{Runs: 4}, 4, 1, 0, 0},
		{"wide adds penalty run", Delivery{Runs: 0, Extra: ExtraWide}, 1, 0, 0, 0},
		{"no ball with runs", Delivery{Runs: 1, Extra: ExtraNoBall}, 2, 0, 0, 0},
		{"leg bye is a legal ball", Delivery{Runs: 1, Extra: ExtraLegBye}, 1, 1, 0, 1},
		{"wicket", Delivery{Wicket: true}, 0, 1, 1, 0},
		{"wicket on a wide", Delivery{Wicket: true, Extra: ExtraWide}, 0, 0, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := bowl(t, startedMatch(t, 2), tt.delivery)
			inn := m.Current()
			assert.Equal(t, tt.wantScore, inn.Score)
			assert.Equal(t, tt.wantLegal, inn.LegalBalls)
			assert.Equal(t, tt.wantWickets, inn.Wickets)
			assert.Equal(t, tt.wantStriker, inn.Striker)
			assert.Equal(t, 1, inn.History.Len())
		})
	}
}

func TestRecordBall_InvalidRuns(t *testing.T) {
	m := startedMatch(t, 2)
	for _, r := range []int{-1, 8} {
		_, err := RecordBall(m, Delivery{Runs: r})
		assert.ErrorIs(t, err, rules.ErrValidation)
	}
	_, err := RecordBall(m, Delivery{Extra: "bye"})
	assert.ErrorIs(t, err, rules.ErrValidation)
}

func TestRecordBall_EndOfOverSwapsStrike(t *testing.T) {
	m := bowl(t, startedMatch(t, 3), runs(0, 0, 0, 0, 0, 0)...)
	assert.Equal(t, 1, m.Current().Striker)
	assert.Equal(t, "1.0", m.Current().OversText())

	// a single off the last ball rotates twice
	m = bowl(t, m, runs(0, 0, 0, 0, 0, 1)...)
	assert.Equal(t, 1, m.Current().Striker)
}

func TestTwoOverMatch(t *testing.T) {
	m := startedMatch(t, 2)
	m = bowl(t, m, runs(1, 1, 1, 1, 1, 1, 1, 1, 1, 1)...)
	m = bowl(t, m, Delivery{Wicket: true}, Delivery{Wicket: true})

	require.NotNil(t, m.Target)
	assert.Equal(t, 11, *m.Target)
	assert.Equal(t, 2, m.CurrentInning)
	assert.Equal(t, "Tigers", m.BattingTeam)
	assert.Equal(t, "Lions", m.BowlingTeam)
	assert.Equal(t, "10/2 (2.0 ov)", m.Innings[0].Summary())
	assert.Equal(t, []string{"Lions: 10/2 (2.0 ov)", "Tigers: 0/0 (0.0 ov)"}, Summary(m))

	m = bowl(t, m, runs(0, 0, 0, 0, 0, 0, 6)...)
	m = bowl(t, m, Delivery{Wicket: true})
	assert.Equal(t, 5, m.RunsRequired())
	m = bowl(t, m, Delivery{Runs: 5})

	assert.Equal(t, StatusCompleted, m.Status)
	assert.Equal(t, "Tigers", m.Winner)
	assert.Equal(t, "11/1 (1.3 ov)", m.Innings[1].Summary())
	assert.Equal(t, "Tigers won by 9 wickets", ResultText(m))

	_, err := RecordBall(m, Delivery{Runs: 1})
	assert.ErrorIs(t, err, rules.ErrIllegalTransition)
	_, err = UndoLastBall(m)
	assert.ErrorIs(t, err, rules.ErrIllegalTransition)
}

func TestChaseEndsOnTargetBeforeOversExhausted(t *testing.T) {
	m := bowl(t, startedMatch(t, 1), runs(1, 0, 0, 0, 0, 0)...)
	require.Equal(t, 2, m.CurrentInning)
	assert.Equal(t, 2, *m.Target)

	m = bowl(t, m, Delivery{Runs: 0, Extra: ExtraWide}, Delivery{Runs: 0, Extra: ExtraWide})
	assert.Equal(t, StatusCompleted, m.Status)
	assert.Equal(t, 0, m.Innings[1].LegalBalls)
	assert.Equal(t, "Tigers won by 10 wickets", ResultText(m))
}

func TestDefendingSideWinsByRuns(t *testing.T) {
	m := bowl(t, startedMatch(t, 1), runs(4, 4, 0, 0, 0, 0)...)
	m = bowl(t, m, runs(1, 1, 1, 0, 0, 0)...)
	assert.Equal(t, StatusCompleted, m.Status)
	assert.Equal(t, "Lions", m.Winner)
	assert.Equal(t, "Lions won by 5 runs", ResultText(m))
}

func TestAllOutEndsInnings(t *testing.T) {
	m := startedMatch(t, 5)
	for i := 0; i < MaxWickets; i++ {
		m = bowl(t, m, Delivery{Wicket: true})
	}
	assert.Equal(t, 2, m.CurrentInning)
	assert.Equal(t, 1, *m.Target)
	assert.Equal(t, "1.4", m.Innings[0].OversText())
}

func TestTieGoesToSuperOver(t *testing.T) {
	m := bowl(t, startedMatch(t, 1), runs(1, 1, 1, 1, 1, 1)...)
	m = bowl(t, m, runs(1, 1, 1, 1, 1, 1)...)

	require.Equal(t, StatusSuperOver, m.Status)
	require.NotNil(t, m.SuperOver)
	assert.Equal(t, 1, m.SuperOverCount)
	assert.Equal(t, "Tigers", m.SuperOver.BattingTeam, "side that batted second bats first")
	assert.Equal(t, 1, m.SuperOver.OversLimit)
	assert.Equal(t, "", ResultText(m))

	m = bowl(t, m, runs(4, 0, 0, 0, 0, 0)...)
	assert.Equal(t, "Lions", m.Active().BattingTeam)
	assert.Equal(t, 5, *m.Active().Target)

	m = bowl(t, m, runs(0, 6)...)
	assert.Equal(t, StatusCompleted, m.Status)
	assert.Equal(t, "Lions", m.Winner)
	assert.Equal(t, "Lions won the Super Over", ResultText(m))
}

func TestTiedSuperOverStartsAnother(t *testing.T) {
	m := bowl(t, startedMatch(t, 1), runs(1, 1, 1, 1, 1, 1)...)
	m = bowl(t, m, runs(1, 1, 1, 1, 1, 1)...)
	m = bowl(t, m, runs(2, 0, 0, 0, 0, 0)...)
	m = bowl(t, m, runs(1, 0, 0, 0, 0, 1)...)

	assert.Equal(t, StatusSuperOver, m.Status)
	assert.Equal(t, 2, m.SuperOverCount)
	assert.Equal(t, "Lions", m.SuperOver.BattingTeam)
	assert.Equal(t, 0, m.SuperOver.Current().LegalBalls)
}

func TestUndoRoundTrip(t *testing.T) {
	base := bowl(t, startedMatch(t, 3), runs(1, 2)...)
	deliveries := []Delivery{
		{Runs: 1},
		{Runs: 0, Extra: ExtraWide},
		{Runs: 2, Extra: ExtraNoBall},
		{Wicket: true},
		{Runs: 3, Extra: ExtraLegBye},
		{Runs: 4},
		{Runs: 1},
	}
	m := bowl(t, base, deliveries...)
	for range deliveries {
		var err error
		m, err = UndoLastBall(m)
		require.NoError(t, err)
	}
	assert.Equal(t, base, m)
}

func TestUndo_OnlyWithinCurrentInnings(t *testing.T) {
	m := bowl(t, startedMatch(t, 1), runs(1, 1, 1, 1, 1, 1)...)
	require.Equal(t, 2, m.CurrentInning)

	_, err := UndoLastBall(m)
	assert.ErrorIs(t, err, ledger.ErrNothingToUndo)

	fresh := startedMatch(t, 1)
	_, err = UndoLastBall(fresh)
	assert.ErrorIs(t, err, ledger.ErrNothingToUndo)
}

func TestUndo_InSuperOver(t *testing.T) {
	m := bowl(t, startedMatch(t, 1), runs(1, 1, 1, 1, 1, 1)...)
	m = bowl(t, m, runs(1, 1, 1, 1, 1, 1)...)
	m = bowl(t, m, Delivery{Runs: 4})

	m, err := UndoLastBall(m)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Active().Current().Score)
	assert.Equal(t, 6, m.Innings[1].Score, "main match innings untouched")
}

func TestRecordBall_DoesNotMutateInput(t *testing.T) {
	m := bowl(t, startedMatch(t, 2), runs(1, 2)...)
	before := m.Current().History.Entries()
	_ = bowl(t, m, runs(4, 6)...)
	assert.Equal(t, before, m.Current().History.Entries())
}
