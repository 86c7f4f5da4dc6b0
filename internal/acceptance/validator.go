package acceptance

import (
	"context"
	"errors"
	"fmt"

	"github.com/mauv0809/dsj-tournaments/internal/jump"
	"github.com/mauv0809/dsj-tournaments/internal/replay"
	"github.com/mauv0809/dsj-tournaments/internal/tournament"
)

// NewValidator creates a new Validator.
func NewValidator(results Results, replays replay.Source) *Validator {
	return &Validator{
		results: results,
		replays: replays,
	}
}

// Validate runs the acceptance rules in order and stops at the first failing
// one. It only reads state. The returned error is reserved for result store
// failures; every rule violation is reported through the verdict.
func (v *Validator) Validate(ctx context.Context, sub Submission, active []tournament.Tournament) (Verdict, error) {
	if !jump.ValidReplayCode(sub.ReplayCode) {
		return rejected(InvalidReplayFormat, sub), nil
	}

	if len(active) == 0 {
		return rejected(NoActiveTournament, sub), nil
	}

	exists, err := v.results.AlreadyExists(ctx, sub.ReplayCode)
	if err != nil {
		return Verdict{}, fmt.Errorf("duplicate check: %w", err)
	}
	if exists {
		return rejected(DuplicateSubmission, sub), nil
	}

	j, err := v.replays.Resolve(ctx, sub.ReplayCode, sub.User)
	if err != nil {
		rejection := reject(JumpNotFound, sub)
		if !errors.Is(err, replay.ErrNotFound) {
			rejection.Cause = err
		}
		return Verdict{Rejection: rejection}, nil
	}

	if reason, failed := CheckJump(j, active); failed {
		return rejected(reason, j), nil
	}

	better, err := v.results.AnyBetterThan(ctx, Stamped(j, active))
	if err != nil {
		return Verdict{}, fmt.Errorf("superiority check: %w", err)
	}
	if better {
		return rejected(InferiorDuplicate, j), nil
	}

	return Verdict{Jump: j}, nil
}

// CheckJump applies the rules that depend only on the resolved jump and the
// active tournaments.
func CheckJump(j *jump.Jump, active []tournament.Tournament) (Reason, bool) {
	if j.IsSimulated() {
		return SimulatedParticipant, true
	}
	if startsAfterAll(j, active) {
		return TooEarly, true
	}
	for i := range active {
		if active[i].Hill != j.Hill {
			return WrongHill, true
		}
	}
	return "", false
}

// startsAfterAll reports whether every active tournament starts on a later day
// than the jump. A tournament without a start date accepts any date.
func startsAfterAll(j *jump.Jump, active []tournament.Tournament) bool {
	for i := range active {
		if !active[i].StartsAfter(j.Date) {
			return false
		}
	}
	return true
}

// Stamped returns a copy of the jump carrying the code of the tournament it
// matches, if any.
func Stamped(j *jump.Jump, active []tournament.Tournament) *jump.Jump {
	stamped := *j
	stamped.TournamentCode = Match(j, active)
	return &stamped
}

func rejected(reason Reason, input any) Verdict {
	return Verdict{Rejection: reject(reason, input)}
}
