package tracker

import (
	"fmt"

	"github.com/mauv0809/scoreline/internal/notifier"
	"github.com/mauv0809/scoreline/internal/pubsub"
)

// Deliver sends a decoded event through the matching notifier method.
func Deliver(n notifier.Notifier, event any, dryRun bool) error {
	switch ev := event.(type) {
	case pubsub.MatchCompleted:
		return n.SendMatchResult(ev, dryRun)
	case pubsub.RoundAdvanced:
		return n.SendRoundFixtures(ev, dryRun)
	case pubsub.ChampionCrowned:
		return n.SendChampion(ev, dryRun)
	default:
		return fmt.Errorf("no notification for event %T", event)
	}
}
