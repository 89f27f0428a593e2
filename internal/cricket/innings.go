package cricket

import (
	"fmt"

	"github.com/mauv0809/scoreline/internal/rules"
)

// Overs returns the number of completed overs.
func (i Innings) Overs() int {
	return i.LegalBalls / 6
}

// BallInOver returns the legal balls bowled in the current over.
func (i Innings) BallInOver() int {
	return i.LegalBalls % 6
}

// OversText renders the overs bowled as "O.B".
func (i Innings) OversText() string {
	return fmt.Sprintf("%d.%d", i.Overs(), i.BallInOver())
}

// Terminal reports whether the innings is over for the given overs limit.
func (i Innings) Terminal(oversLimit int) bool {
	return i.Wickets >= MaxWickets || i.LegalBalls >= oversLimit*6
}

// Summary renders the innings as "score/wickets (O.B ov)".
func (i Innings) Summary() string {
	return fmt.Sprintf("%d/%d (%s ov)", i.Score, i.Wickets, i.OversText())
}

func validateDelivery(d Delivery) error {
	if d.Runs < 0 || d.Runs > MaxRunsPerBall {
		return fmt.Errorf("%w: runs must be between 0 and %d, got %d", rules.ErrValidation, MaxRunsPerBall, d.Runs)
	}
	switch d.Extra {
	case ExtraNone, ExtraWide, ExtraNoBall, ExtraLegBye:
	default:
		return fmt.Errorf("%w: unknown extra %q", rules.ErrValidation, d.Extra)
	}
	return nil
}

// apply records d and returns the updated innings.
func (i Innings) apply(d Delivery) Innings {
	ev := BallEvent{Extra: d.Extra, StrikerBefore: i.Striker}
	penalty := d.Extra == ExtraWide || d.Extra == ExtraNoBall

	switch {
	case d.Wicket:
		ev.Kind = KindWicket
		ev.LegalBall = !penalty
		i.Wickets++
	case penalty:
		ev.Kind = KindExtra
		ev.Runs = d.Runs + 1
	case d.Extra == ExtraLegBye:
		ev.Kind = KindExtra
		ev.Runs = d.Runs
		ev.LegalBall = true
	default:
		ev.Kind = KindRun
		ev.Runs = d.Runs
		ev.LegalBall = true
	}

	i.Score += ev.Runs
	if ev.LegalBall {
		i.LegalBalls++
		if ev.Kind != KindWicket && ev.Runs%2 == 1 {
			i.Striker = 1 - i.Striker
		}
		if i.LegalBalls%6 == 0 {
			i.Striker = 1 - i.Striker
		}
	}
	i.History = i.History.Append(ev)
	return i
}

// undo reverts the last recorded delivery.
func (i Innings) undo() (Innings, error) {
	history, ev, err := i.History.Pop()
	if err != nil {
		return i, err
	}
	i.History = history
	i.Score -= ev.Runs
	if ev.LegalBall {
		i.LegalBalls--
	}
	if ev.Kind == KindWicket {
		i.Wickets--
	}
	i.Striker = ev.StrikerBefore
	return i, nil
}
