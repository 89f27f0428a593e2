package notifier

import (
	"github.com/mauv0809/scoreline/internal/bracket"
	"github.com/mauv0809/scoreline/internal/history"
	"github.com/mauv0809/scoreline/internal/pubsub"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For completed matches
	SendMatchResult(event pubsub.MatchCompleted, dryRun bool) error
	// For knockout progress
	SendRoundFixtures(event pubsub.RoundAdvanced, dryRun bool) error
	SendChampion(event pubsub.ChampionCrowned, dryRun bool) error

	// For formatting responses for slash commands
	FormatStandingsResponse(sport history.Sport, standings []history.TeamRecord) (any, error)
	FormatBracketResponse(sport history.Sport, b *bracket.Bracket) (any, error)
}
