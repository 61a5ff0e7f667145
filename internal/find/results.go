package find

// Results is a match list with a current position that wraps at both ends.
type Results struct {
	Matches []Match
	Current int
}

// NewResults returns results positioned on the first match.
func NewResults(matches []Match) Results {
	return Results{Matches: matches}
}

// Len returns the number of matches.
func (r Results) Len() int {
	return len(r.Matches)
}

// Selected returns the current match.
func (r Results) Selected() (Match, bool) {
	if r.Current < 0 || r.Current >= len(r.Matches) {
		return Match{}, false
	}
	return r.Matches[r.Current], true
}

// Next moves to the following match, wrapping to the first.
func (r *Results) Next() {
	if len(r.Matches) == 0 {
		return
	}
	r.Current = (r.Current + 1) % len(r.Matches)
}

// Prev moves to the preceding match, wrapping to the last.
func (r *Results) Prev() {
	if len(r.Matches) == 0 {
		return
	}
	r.Current = (r.Current - 1 + len(r.Matches)) % len(r.Matches)
}

// Nearest positions on the first match at or after line.
func (r *Results) Nearest(line int) {
	for i, m := range r.Matches {
		if m.Line >= line {
			r.Current = i
			return
		}
	}
	r.Current = 0
}
