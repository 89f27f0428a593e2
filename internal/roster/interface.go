package roster

import "github.com/mauv0809/scoreline/internal/history"

// Store persists rosters and tournament setups per sport.
type Store interface {
	Get(sport history.Sport) (Roster, error)
	SaveTeam(sport history.Sport, team Team) error
	GetSetup(sport history.Sport) (Setup, error)
	SaveSetup(sport history.Sport, setup Setup) error
}
