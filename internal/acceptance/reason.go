package acceptance

import (
	"errors"
	"fmt"
)

// Reason is the machine readable cause of a rejected submission.
type Reason string

const (
	InvalidReplayFormat  Reason = "invalid_replay_format"
	NoActiveTournament   Reason = "no_active_tournament"
	DuplicateSubmission  Reason = "duplicate_submission"
	JumpNotFound         Reason = "jump_not_found"
	SimulatedParticipant Reason = "simulated_participant"
	TooEarly             Reason = "too_early"
	WrongHill            Reason = "wrong_hill"
	InferiorDuplicate    Reason = "inferior_duplicate"
)

var messages = map[Reason]string{
	InvalidReplayFormat:  "Jump with given replay code doesn't exist.",
	NoActiveTournament:   "No tournament is currently held.",
	DuplicateSubmission:  "The jump was already sent.",
	JumpNotFound:         "Jump with given replay code doesn't exist.",
	SimulatedParticipant: "Jump performed by CPU can't be sent.",
	TooEarly:             "Jump performed earlier than tournament day start can't be sent.",
	WrongHill:            "Jump was performed on invalid hill.",
	InferiorDuplicate:    "Jump with better result has been already sent.",
}

// Message returns the human readable description of the reason.
func (r Reason) Message() string {
	if msg, ok := messages[r]; ok {
		return msg
	}
	return string(r)
}

// Rejection is a submission that failed one of the acceptance rules. Input
// holds the offending submission or resolved jump for diagnostics.
type Rejection struct {
	Reason Reason
	Input  any
	// Cause is set when the rejection stems from an upstream failure.
	Cause error
}

func reject(reason Reason, input any) *Rejection {
	return &Rejection{Reason: reason, Input: input}
}

func (r *Rejection) Error() string {
	if r.Cause != nil {
		return fmt.Sprintf("jump rejected (%s): %v", r.Reason, r.Cause)
	}
	return fmt.Sprintf("jump rejected (%s)", r.Reason)
}

func (r *Rejection) Unwrap() error {
	return r.Cause
}

// AsRejection extracts a Rejection from err, if there is one.
func AsRejection(err error) (*Rejection, bool) {
	var rejection *Rejection
	if errors.As(err, &rejection) {
		return rejection, true
	}
	return nil, false
}
