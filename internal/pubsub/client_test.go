package pubsub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestDisabledClient(t *testing.T) {
	c, err := New(context.Background(), "")
	require.NoError(t, err)
	defer c.Close()

	assert.False(t, Enabled(c))
	assert.True(t, Enabled(NewMock()))
	assert.NoError(t, c.SendMessage(EventMatchCompleted, MatchCompleted{Sport: "cricket", MatchID: "m1"}))
}

func TestProcessMessage_RoundTrip(t *testing.T) {
	c, err := New(context.Background(), "")
	require.NoError(t, err)

	in := ChampionCrowned{Sport: "football", BracketID: "b1", Champion: "Rovers", Rounds: 3}
	data, err := msgpack.Marshal(in)
	require.NoError(t, err)

	var out ChampionCrowned
	require.NoError(t, c.ProcessMessage(data, &out))
	assert.Equal(t, in, out)

	assert.Error(t, c.ProcessMessage([]byte{0xc1}, &out))
}
