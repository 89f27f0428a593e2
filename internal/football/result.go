package football

import "fmt"

// ResultText describes a decided match, or "" while it is undecided.
func ResultText(m Match) string {
	switch m.Resolution {
	case ResolutionRegulation:
		return fmt.Sprintf("%s Wins!", m.Winner)
	case ResolutionPenalties:
		if m.Shootout == nil {
			return fmt.Sprintf("%s Wins on Penalties!", m.Winner)
		}
		won, lost := m.Shootout.ScoreA, m.Shootout.ScoreB
		if m.Shootout.Winner == SideB {
			won, lost = lost, won
		}
		return fmt.Sprintf("%s Wins on Penalties (%d-%d)!", m.Winner, won, lost)
	case ResolutionDraw:
		return "Match Draw!"
	}
	return ""
}

// ScoreLine renders the regulation score as "A-B".
func ScoreLine(m Match) string {
	return fmt.Sprintf("%d-%d", m.GoalsA, m.GoalsB)
}

// ClockText renders the timer as "mm:ss".
func ClockText(m Match) string {
	return fmt.Sprintf("%02d:%02d", m.Timer/60, m.Timer%60)
}

// Summary returns the scoreline, the goal list and, if one was played, the shootout record.
func Summary(m Match) []string {
	lines := []string{fmt.Sprintf("%s %d-%d %s", m.TeamA, m.GoalsA, m.GoalsB, m.TeamB)}
	for _, g := range m.Goals.Entries() {
		scorer := g.Scorer
		if scorer == "" {
			scorer = "Goal"
		}
		lines = append(lines, fmt.Sprintf("%d' %s (%s)", g.Minute, scorer, m.TeamName(g.Team)))
	}
	if m.Shootout != nil {
		lines = append(lines, fmt.Sprintf("Penalties: %s %s - %s %s",
			m.TeamA, PenaltySummary(*m.Shootout, SideA), PenaltySummary(*m.Shootout, SideB), m.TeamB))
	}
	return lines
}
