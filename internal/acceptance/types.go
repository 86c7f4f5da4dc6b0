package acceptance

import (
	"github.com/mauv0809/dsj-tournaments/internal/jump"
	"github.com/mauv0809/dsj-tournaments/internal/replay"
)

// Submission is a reported jump before it is resolved.
type Submission struct {
	ReplayCode string     `json:"replayCode"`
	User       *jump.User `json:"user,omitempty"`
}

// Verdict is the outcome of validating a submission. Exactly one of Jump and
// Rejection is set.
type Verdict struct {
	Jump      *jump.Jump
	Rejection *Rejection
}

// Accepted reports whether the submission passed every rule.
func (v Verdict) Accepted() bool {
	return v.Rejection == nil
}

// Validator decides whether a submission is admissible.
type Validator struct {
	results Results
	replays replay.Source
}
