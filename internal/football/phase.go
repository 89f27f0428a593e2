package football

// NextPhase is the single transition function of the period clock. Phases that
// are not running, and running phases whose boundary has not been reached, are
// returned unchanged.
func NextPhase(phase Phase, timer, addedTime, halftime, total int) Phase {
	switch phase {
	case PhaseFirstHalf:
		if timer >= halftime {
			return PhaseFirstHalfPause
		}
	case PhaseFirstHalfAdded:
		if timer >= halftime+addedTime {
			return PhaseHalftimeBreak
		}
	case PhaseSecondHalf:
		if timer >= total {
			return PhaseSecondHalfPause
		}
	case PhaseSecondHalfAdded:
		if timer >= total+addedTime {
			return PhaseEnded
		}
	}
	return phase
}
