package history

import "sort"

// Summarize tallies played, won, lost and tied per team. Teams are ordered by
// wins, then fewest losses, then name.
func Summarize(records []Record) []TeamRecord {
	byTeam := make(map[string]*TeamRecord)
	get := func(team string) *TeamRecord {
		tr, ok := byTeam[team]
		if !ok {
			tr = &TeamRecord{Team: team}
			byTeam[team] = tr
		}
		return tr
	}
	for _, r := range records {
		a, b := get(r.TeamA), get(r.TeamB)
		a.Played++
		b.Played++
		switch r.Winner {
		case "":
			a.Tied++
			b.Tied++
		case r.TeamA:
			a.Won++
			b.Lost++
		case r.TeamB:
			b.Won++
			a.Lost++
		}
	}

	out := make([]TeamRecord, 0, len(byTeam))
	for _, tr := range byTeam {
		out = append(out, *tr)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Won != out[j].Won {
			return out[i].Won > out[j].Won
		}
		if out[i].Lost != out[j].Lost {
			return out[i].Lost < out[j].Lost
		}
		return out[i].Team < out[j].Team
	})
	return out
}
