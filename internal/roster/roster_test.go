package roster

import (
	"fmt"
	"testing"

	"github.com/mauv0809/scoreline/internal/history"
	"github.com/mauv0809/scoreline/internal/kvstore"
	"github.com/mauv0809/scoreline/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squad(prefix string) []string {
	out := make([]string, SquadSize)
	for i := range out {
		out[i] = fmt.Sprintf("%s Player %d", prefix, i+1)
	}
	return out
}

func TestValidateTeam(t *testing.T) {
	dup := squad("Lions")
	dup[10] = dup[0]
	blank := squad("Lions")
	blank[3] = " "

	tests := []struct {
		name    string
		team    Team
		wantErr bool
	}{
		{"valid", Team{Key: "team1", Name: "Lions", Players: squad("Lions")}, false},
		{"missing name", Team{Key: "team1", Players: squad("Lions")}, true},
		{"short squad", Team{Key: "team1", Name: "Lions", Players: squad("Lions")[:10]}, true},
		{"duplicate player", Team{Key: "team1", Name: "Lions", Players: dup}, true},
		{"blank player", Team{Key: "team1", Name: "Lions", Players: blank}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTeam(tt.team)
			if tt.wantErr {
				assert.ErrorIs(t, err, rules.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStore_SaveTeamAndGet(t *testing.T) {
	kv := kvstore.NewMock()
	s := New(kv)

	require.NoError(t, s.SaveTeam(history.SportCricket, Team{Key: "team2", Name: "Tigers", Players: squad("Tigers")}))
	require.NoError(t, s.SaveTeam(history.SportCricket, Team{Key: "team1", Name: " Lions ", Players: squad("Lions")}))
	require.NoError(t, s.SaveTeam(history.SportFootball, Team{Key: "team1", Name: "Rovers", Players: squad("Rovers")}))

	r, err := s.Get(history.SportCricket)
	require.NoError(t, err)
	assert.Equal(t, []string{"Lions", "Tigers"}, r.TeamNames())
	assert.Equal(t, squad("Tigers"), r.PlayersOf("Tigers"))
	assert.Nil(t, r.PlayersOf("Rovers"))

	_, err = kv.Get("teamPlayers")
	assert.NoError(t, err)
	_, err = kv.Get("footballTeamNames")
	assert.NoError(t, err)

	err = s.SaveTeam(history.SportCricket, Team{Key: "team3", Name: "Bears"})
	assert.ErrorIs(t, err, rules.ErrValidation)
}

func TestStore_Setup(t *testing.T) {
	s := New(kvstore.NewMock())

	_, err := s.GetSetup(history.SportFootball)
	assert.ErrorIs(t, err, kvstore.ErrNotFound)

	require.NoError(t, s.SaveSetup(history.SportFootball, Setup{MatchDuration: 600, Teams: 4}))
	setup, err := s.GetSetup(history.SportFootball)
	require.NoError(t, err)
	assert.Equal(t, Setup{MatchDuration: 600, Teams: 4}, setup)
}

func TestRoster_DisplayNameFallsBackToKey(t *testing.T) {
	r := Roster{Players: map[string][]string{"team1": nil}, Names: map[string]string{}}
	assert.Equal(t, "team1", r.DisplayName("team1"))
}

func TestFindPlayer(t *testing.T) {
	players := []string{"Virat Kohli", "Rohit Sharma", "Jasprit Bumrah"}
	tests := []struct {
		query string
		want  string
		found bool
	}{
		{"rohit sharma", "Rohit Sharma", true},
		{"Rohit Sharme", "Rohit Sharma", true},
		{"bumrah", "Jasprit Bumrah", true},
		{"Steve Smith", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, ok := FindPlayer(players, tt.query)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
