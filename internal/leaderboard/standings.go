// Package leaderboard derives standings and lap progress from entrant
// snapshots. It never touches a collection directly; Watcher re-reads a
// snapshot whenever the collection reports a change.
package leaderboard

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"sctime/internal/entrant"
)

// Standing is one row of the leaderboard.
type Standing struct {
	Position int
	ID       int
	Name     string
	Code     string
	Number   int
	Laps     int
	Total    float64
	Best     float64
	Last     float64

	// GapLaps is how many laps the entrant trails the leader by. When it is
	// zero, GapSeconds holds the time difference on the same lap count.
	GapLaps    int
	GapSeconds float64
}

// Standings ranks entrants by laps completed, then by total time, then by
// identity. Entrants without laps are ranked last.
func Standings(snapshot []*entrant.Entrant) []Standing {
	out := make([]Standing, 0, len(snapshot))
	for _, e := range snapshot {
		laps := e.Laps()
		s := Standing{
			ID:     e.ID(),
			Name:   e.Name(),
			Code:   CodeName(e.Name()),
			Number: e.Number(),
			Laps:   len(laps),
		}
		for i, d := range laps {
			s.Total += d
			if i == 0 || d < s.Best {
				s.Best = d
			}
		}
		if len(laps) > 0 {
			s.Last = laps[len(laps)-1]
		}
		out = append(out, s)
	}

	slices.SortStableFunc(out, func(a, b Standing) int {
		if c := cmp.Compare(b.Laps, a.Laps); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Total, b.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	for i := range out {
		out[i].Position = i + 1
		if i == 0 {
			continue
		}
		leader := out[0]
		if out[i].Laps < leader.Laps {
			out[i].GapLaps = leader.Laps - out[i].Laps
			continue
		}
		out[i].GapSeconds = out[i].Total - leader.Total
	}
	return out
}

// Series is the running elapsed time of one entrant after each lap.
type Series struct {
	ID      int
	Name    string
	Elapsed []float64
}

// Progress returns one cumulative series per entrant, in identity order.
func Progress(snapshot []*entrant.Entrant) []Series {
	out := make([]Series, 0, len(snapshot))
	for _, e := range snapshot {
		laps := e.Laps()
		elapsed := make([]float64, len(laps))
		var total float64
		for i, d := range laps {
			total += d
			elapsed[i] = total
		}
		out = append(out, Series{ID: e.ID(), Name: e.Name(), Elapsed: elapsed})
	}
	return out
}

// CodeName abbreviates a team name to three upper-case letters: the first
// letter of the first word and two letters of the second, or the first three
// letters of a single word.
func CodeName(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return ""
	}
	first := []rune(words[0])
	code := []rune{first[0]}
	if len(words) > 1 {
		second := []rune(words[1])
		code = append(code, second[:min(2, len(second))]...)
	} else if len(first) > 1 {
		code = append(code, first[1:min(3, len(first))]...)
	}
	return cases.Upper(language.Und).String(string(code))
}
