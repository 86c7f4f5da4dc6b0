package acceptance

import (
	"github.com/mauv0809/dsj-tournaments/internal/jump"
	"github.com/mauv0809/dsj-tournaments/internal/tournament"
)

// Candidates returns the codes of the active tournaments held on the jump's
// hill whose window contains the jump's date.
func Candidates(j *jump.Jump, active []tournament.Tournament) []string {
	var codes []string
	for i := range active {
		t := &active[i]
		if t.Hill == j.Hill && t.Covers(j.Date) {
			codes = append(codes, t.Code)
		}
	}
	return codes
}

// Match returns the code of the single tournament the jump belongs to, or nil
// when no tournament or more than one tournament qualifies.
func Match(j *jump.Jump, active []tournament.Tournament) *string {
	codes := Candidates(j, active)
	if len(codes) != 1 {
		return nil
	}
	return &codes[0]
}
