package bracket

import (
	"fmt"
	"testing"

	"github.com/mauv0809/scoreline/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// playRound completes every open fixture with TeamA winning.
func playRound(t *testing.T, b Bracket) Bracket {
	t.Helper()
	for _, f := range b.Fixtures {
		if f.Status == FixtureCompleted {
			continue
		}
		var err error
		b, err = RecordResult(b, f.ID, f.TeamA, 2, 1)
		require.NoError(t, err)
	}
	return b
}

func TestBracket_RoundsToChampion(t *testing.T) {
	for n := 2; n <= 17; n++ {
		t.Run(fmt.Sprintf("%d teams", n), func(t *testing.T) {
			b, err := New("b1", teamNames(n), seeded())
			require.NoError(t, err)

			rounds := 0
			for b.Champion == "" {
				rounds++
				require.LessOrEqual(t, rounds, n, "bracket never finishes")
				b, err = Next(playRound(t, b), seeded())
				require.NoError(t, err)
			}
			assert.Equal(t, RoundsToChampion(n), rounds)
			assert.Equal(t, "Champion", b.Name())
		})
	}
}

func TestBracket_Lifecycle(t *testing.T) {
	b, err := New("b1", []string{"T1", "T2", "T3", "T4"}, inOrder{})
	require.NoError(t, err)
	assert.Equal(t, 1, b.Round)
	assert.Equal(t, "Semi Finals", b.Name())
	assert.False(t, b.RoundComplete())

	first := b.Fixtures[0]
	b, err = StartFixture(b, first.ID)
	require.NoError(t, err)
	f, ok := b.Fixture(first.ID)
	require.True(t, ok)
	assert.Equal(t, FixtureInProgress, f.Status)

	_, err = StartFixture(b, first.ID)
	assert.ErrorIs(t, err, rules.ErrIllegalTransition)

	_, err = Next(b, inOrder{})
	assert.ErrorIs(t, err, rules.ErrIncompleteRound)

	_, err = RecordResult(b, first.ID, "T3", 1, 0)
	assert.ErrorIs(t, err, rules.ErrValidation)
	_, err = RecordResult(b, "missing", "T1", 1, 0)
	assert.ErrorIs(t, err, rules.ErrValidation)

	b, err = RecordResult(b, first.ID, "T2", 0, 1)
	require.NoError(t, err)
	f, _ = b.Fixture(first.ID)
	assert.Equal(t, "0-1", f.Score)
	assert.Equal(t, "T2", f.Winner)

	_, err = RecordResult(b, first.ID, "T1", 1, 0)
	assert.ErrorIs(t, err, rules.ErrIllegalTransition)

	b, err = RecordResult(b, b.Fixtures[1].ID, "T3", 3, 2)
	require.NoError(t, err)
	assert.True(t, b.RoundComplete())

	b, err = Next(b, inOrder{})
	require.NoError(t, err)
	assert.Equal(t, 2, b.Round)
	assert.Equal(t, []string{"T2", "T3"}, b.Teams)
	assert.Equal(t, "Finals", b.Name())
	require.Len(t, b.Fixtures, 1)

	b, err = RecordResult(b, b.Fixtures[0].ID, "T3", 1, 1)
	require.NoError(t, err)
	b, err = Next(b, inOrder{})
	require.NoError(t, err)
	assert.Equal(t, "T3", b.Champion)

	_, err = Next(b, inOrder{})
	assert.ErrorIs(t, err, rules.ErrIllegalTransition)
}

func TestRecordResult_ByeIsAlreadyCompleted(t *testing.T) {
	b, err := New("b1", []string{"T1", "T2", "T3"}, inOrder{})
	require.NoError(t, err)
	bye := b.Fixtures[1]
	require.True(t, bye.IsBye())

	_, err = RecordResult(b, bye.ID, "T1", 1, 0)
	assert.ErrorIs(t, err, rules.ErrIllegalTransition)
}

func TestRecordResult_DoesNotMutateInput(t *testing.T) {
	b, err := New("b1", teamNames(4), inOrder{})
	require.NoError(t, err)
	_, err = RecordResult(b, b.Fixtures[0].ID, b.Fixtures[0].TeamA, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, FixtureUpcoming, b.Fixtures[0].Status)
}
