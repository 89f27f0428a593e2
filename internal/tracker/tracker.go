package tracker

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/scoreline/internal/history"
	"github.com/mauv0809/scoreline/internal/kvstore"
	"github.com/mauv0809/scoreline/internal/pubsub"
)

const (
	cricketMatchPrefix   = "currentMatchData/"
	footballMatchPrefix  = "currentFootballMatchData/"
	cricketBracketPrefix = "bracketState/"
	footballBracketPrfx  = "footballBracketState/"
)

// New creates a new Tracker.
func New(d Deps) *Tracker {
	return &Tracker{
		kv:       d.KV,
		history:  d.History,
		rosters:  d.Rosters,
		pubsub:   d.PubSub,
		notifier: d.Notifier,
		metrics:  d.Metrics,
		counters: d.Counters,
		rng:      d.Random,
		live:     d.Live,
		now:      time.Now,
		running:  make(map[string]bool),
	}
}

func bracketPrefix(sport history.Sport) string {
	if sport == history.SportFootball {
		return footballBracketPrfx
	}
	return cricketBracketPrefix
}

// load decodes the snapshot under key, mapping a missing key to ErrNotFound.
func (t *Tracker) load(key string, v any) error {
	err := kvstore.GetJSON(t.kv, key, v)
	if errors.Is(err, kvstore.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return err
}

func (t *Tracker) save(key string, v any) error {
	if err := kvstore.SetJSON(t.kv, key, v); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// publish hands an event to Pub/Sub, or straight to the notifier when
// publishing is disabled.
func (t *Tracker) publish(topic pubsub.EventType, event any) {
	if pubsub.Enabled(t.pubsub) {
		if err := t.pubsub.SendMessage(topic, event); err != nil {
			log.Error("Failed to publish event", "error", err, "topic", topic)
		}
		return
	}
	if err := Deliver(t.notifier, event, false); err != nil {
		log.Error("Failed to deliver notification", "error", err, "topic", topic)
	}
}

func (t *Tracker) broadcast(sport history.Sport, kind, id string, data any) {
	if t.live == nil {
		return
	}
	t.live.Broadcast(Update{Sport: sport, Kind: kind, ID: id, Data: data})
}

func (t *Tracker) observe(start time.Time) {
	t.metrics.ObserveActionDuration(time.Since(start).Seconds())
}

// Keys lists the IDs of stored match snapshots for sport.
func (t *Tracker) Keys(sport history.Sport) ([]string, error) {
	prefix := cricketMatchPrefix
	if sport == history.SportFootball {
		prefix = footballMatchPrefix
	}
	keys, err := t.kv.Keys(prefix)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(keys))
	for i, k := range keys {
		ids[i] = k[len(prefix):]
	}
	return ids, nil
}
