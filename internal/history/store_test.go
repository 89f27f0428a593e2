package history

import (
	"testing"
	"time"

	"github.com/mauv0809/scoreline/internal/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AppendListClear(t *testing.T) {
	kv := kvstore.NewMock()
	s := New(kv)

	records, err := s.List(SportCricket)
	require.NoError(t, err)
	assert.Empty(t, records)

	played := time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)
	require.NoError(t, s.Append(Record{ID: "r1", Sport: SportCricket, MatchID: "m1", TeamA: "Lions", TeamB: "Tigers", Winner: "Lions", PlayedAt: played}))
	require.NoError(t, s.Append(Record{ID: "r2", Sport: SportCricket, MatchID: "m2", TeamA: "Lions", TeamB: "Bears", PlayedAt: played}))
	require.NoError(t, s.Append(Record{ID: "r3", Sport: SportFootball, MatchID: "f1", TeamA: "Rovers", TeamB: "United"}))

	records, err = s.List(SportCricket)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "r1", records[0].ID)
	assert.Equal(t, played, records[0].PlayedAt)

	_, err = kv.Get("matchHistory")
	assert.NoError(t, err)
	_, err = kv.Get("footballMatchHistory")
	assert.NoError(t, err)

	require.NoError(t, s.Clear(SportCricket))
	records, err = s.List(SportCricket)
	require.NoError(t, err)
	assert.Empty(t, records)

	football, err := s.List(SportFootball)
	require.NoError(t, err)
	assert.Len(t, football, 1, "clearing cricket leaves football alone")
}

func TestStore_UnknownSport(t *testing.T) {
	s := New(kvstore.NewMock())
	assert.Error(t, s.Append(Record{Sport: "hockey"}))
	_, err := s.List("hockey")
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	records := []Record{
		{TeamA: "Lions", TeamB: "Tigers", Winner: "Lions"},
		{TeamA: "Tigers", TeamB: "Bears", Winner: "Bears"},
		{TeamA: "Lions", TeamB: "Bears", Winner: ""},
		{TeamA: "Bears", TeamB: "Lions", Winner: "Lions"},
	}
	got := Summarize(records)
	assert.Equal(t, []TeamRecord{
		{Team: "Lions", Played: 3, Won: 2, Lost: 0, Tied: 1},
		{Team: "Bears", Played: 3, Won: 1, Lost: 1, Tied: 1},
		{Team: "Tigers", Played: 2, Won: 0, Lost: 2, Tied: 0},
	}, got)

	assert.Empty(t, Summarize(nil))
}
