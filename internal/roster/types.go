package roster

// SquadSize is the number of players every team must name.
const SquadSize = 11

// Team is one entry of a roster.
type Team struct {
	Key     string   `json:"key" yaml:"key"`
	Name    string   `json:"name" yaml:"name"`
	Players []string `json:"players" yaml:"players"`
}

// Roster is the set of teams entered for a sport, keyed by team key.
type Roster struct {
	Players map[string][]string `json:"players"`
	Names   map[string]string   `json:"names"`
}

// Setup is the tournament configuration. Overs is used by cricket,
// MatchDuration (seconds) by football.
type Setup struct {
	Overs         int `json:"overs,omitempty" yaml:"overs,omitempty"`
	MatchDuration int `json:"matchDuration,omitempty" yaml:"matchDuration,omitempty"`
	Teams         int `json:"teams" yaml:"teams"`
}
