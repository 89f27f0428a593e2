package rules

import "errors"

// Engine error kinds. Engines wrap these with context, callers match them with errors.Is.
var (
	// ErrValidation is returned for missing or malformed input.
	ErrValidation = errors.New("validation error")
	// ErrIllegalTransition is returned when an action is not allowed in the current state,
	// e.g. recording a ball after the match has ended.
	ErrIllegalTransition = errors.New("illegal transition")
	// ErrInsufficientTeams is returned when a bracket is requested for fewer than two teams.
	ErrInsufficientTeams = errors.New("insufficient teams")
	// ErrInvalidTeamCount is returned when the configured team count cannot form a tournament.
	ErrInvalidTeamCount = errors.New("invalid team count")
	// ErrIncompleteRound is returned when advancing a round that still has undecided fixtures.
	ErrIncompleteRound = errors.New("incomplete round")
)

// IsClientError reports whether err is one of the recoverable engine errors
// that should be surfaced back to the caller as bad input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInsufficientTeams) ||
		errors.Is(err, ErrInvalidTeamCount)
}

// IsConflict reports whether err is a refused state transition.
func IsConflict(err error) bool {
	return errors.Is(err, ErrIllegalTransition) || errors.Is(err, ErrIncompleteRound)
}
