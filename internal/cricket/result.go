package cricket

import "fmt"

// ResultText describes the outcome of a completed match, or "" while it is still being played.
func ResultText(m Match) string {
	if m.Status != StatusCompleted {
		return ""
	}
	if m.Winner == "" {
		return "Tie"
	}
	if m.SuperOver != nil && !m.IsSuperOver {
		return fmt.Sprintf("%s won the Super Over", m.Winner)
	}
	// the side batting when the match ended is the chasing side
	if m.Winner == m.BattingTeam {
		return fmt.Sprintf("%s won by %s", m.Winner, plural(MaxWickets-m.Innings[1].Wickets, "wicket"))
	}
	return fmt.Sprintf("%s won by %s", m.Winner, plural(m.Innings[0].Score-m.Innings[1].Score, "run"))
}

// TossText describes the toss, or "" before it is decided.
func TossText(m Match) string {
	if m.TossWinner == "" || m.TossDecision == "" {
		return ""
	}
	return fmt.Sprintf("%s won the toss and chose to %s", m.TossWinner, m.TossDecision)
}

// Summary returns one line per innings, first-innings side first.
func Summary(m Match) []string {
	first, second := m.BattingTeam, m.BowlingTeam
	if m.CurrentInning == 2 {
		first, second = m.BowlingTeam, m.BattingTeam
	}
	if first == "" {
		return nil
	}
	lines := []string{fmt.Sprintf("%s: %s", first, m.Innings[0].Summary())}
	if m.CurrentInning == 2 {
		lines = append(lines, fmt.Sprintf("%s: %s", second, m.Innings[1].Summary()))
	} else {
		lines = append(lines, fmt.Sprintf("%s: Yet to bat", second))
	}
	return lines
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
