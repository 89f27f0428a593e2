package ledger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_AppendDoesNotAlias(t *testing.T) {
	base := Ledger[int]{}.Append(1).Append(2)
	a := base.Append(3)
	b := base.Append(4)

	assert.Equal(t, []int{1, 2, 3}, a.Entries())
	assert.Equal(t, []int{1, 2, 4}, b.Entries())
	assert.Equal(t, 2, base.Len())
}

func TestLedger_Pop(t *testing.T) {
	l := Ledger[string]{}.Append("run").Append("wicket")

	rest, last, err := l.Pop()
	require.NoError(t, err)
	assert.Equal(t, "wicket", last)
	assert.Equal(t, []string{"run"}, rest.Entries())
	assert.Equal(t, 2, l.Len(), "Pop must not modify the receiver")

	rest, last, err = rest.Pop()
	require.NoError(t, err)
	assert.Equal(t, "run", last)
	assert.Equal(t, 0, rest.Len())

	_, _, err = rest.Pop()
	assert.ErrorIs(t, err, ErrNothingToUndo)
}

func TestLedger_Last(t *testing.T) {
	var l Ledger[int]
	_, ok := l.Last()
	assert.False(t, ok)

	l = l.Append(7)
	v, ok := l.Last()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestLedger_JSON(t *testing.T) {
	type entry struct {
		Kind string `json:"kind"`
		Runs int    `json:"runs"`
	}
	l := Ledger[entry]{}.Append(entry{"run", 4}).Append(entry{"extra", 1})

	data, err := json.Marshal(l)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"kind":"run","runs":4},{"kind":"extra","runs":1}]`, string(data))

	var decoded Ledger[entry]
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, l, decoded)
}
