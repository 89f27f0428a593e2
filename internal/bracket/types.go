package bracket

// Bye is the placeholder opponent of a team that advances without playing.
const Bye = "BYE"

// FixtureStatus is the state of a single tie.
type FixtureStatus string

const (
	FixtureUpcoming   FixtureStatus = "upcoming"
	FixtureInProgress FixtureStatus = "in_progress"
	FixtureCompleted  FixtureStatus = "completed"
)

// Fixture is one knockout tie.
type Fixture struct {
	ID     string        `json:"id"`
	TeamA  string        `json:"teamA"`
	TeamB  string        `json:"teamB"`
	Status FixtureStatus `json:"status"`
	ScoreA int           `json:"scoreA"`
	ScoreB int           `json:"scoreB"`
	Score  string        `json:"score,omitempty"`
	Winner string        `json:"winner,omitempty"`
}

// IsBye reports whether the fixture is a walkover.
func (f Fixture) IsBye() bool {
	return f.TeamB == Bye
}

// Bracket is a knockout tournament in progress.
type Bracket struct {
	ID       string    `json:"id"`
	Round    int       `json:"round"`
	Fixtures []Fixture `json:"fixtures"`
	Teams    []string  `json:"teams"`
	Champion string    `json:"champion,omitempty"`
}

// Advance is the outcome of closing a round: either the teams that go through
// or, when a single team is left, the champion.
type Advance struct {
	Teams    []string `json:"teams,omitempty"`
	Champion string   `json:"champion,omitempty"`
}

// Shuffler is the random source used for draws. *rand.Rand satisfies it, so
// tests can pass a seeded generator.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
	IntN(n int) int
}
