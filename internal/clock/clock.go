package clock

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-co-op/gocron/v2"
)

// Ticker advances every running match clock by one second.
type Ticker interface {
	TickRunning()
}

// Clock drives football match timers from a 1-second scheduler job.
type Clock struct {
	s        gocron.Scheduler
	ticker   Ticker
	interval time.Duration
}

// New creates a Clock that calls ticker every interval. A zero interval means one second.
func New(ticker Ticker, interval time.Duration) (*Clock, error) {
	if interval <= 0 {
		interval = time.Second
	}
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &Clock{s: s, ticker: ticker, interval: interval}, nil
}

// Start registers the tick job and starts the scheduler. Overlapping ticks are skipped.
func (c *Clock) Start() error {
	_, err := c.s.NewJob(
		gocron.DurationJob(c.interval),
		gocron.NewTask(c.tick),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName("match-clock"),
	)
	if err != nil {
		return fmt.Errorf("failed to create match clock job: %w", err)
	}
	c.s.Start()
	log.Info("Match clock started", "interval", c.interval)
	return nil
}

// Stop shuts the scheduler down, waiting for a running tick to finish.
func (c *Clock) Stop() error {
	return c.s.Shutdown()
}

func (c *Clock) tick() {
	c.ticker.TickRunning()
}
