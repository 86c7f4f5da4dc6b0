package jump

import "context"

// Store persists accepted jumps.
type Store interface {
	// AlreadyExists reports whether a jump with the replay code was accepted.
	AlreadyExists(ctx context.Context, replayCode string) (bool, error)
	// AnyBetterThan reports whether the player already holds a strictly better
	// jump in the jump's tournament. Jumps without a tournament never compete.
	AnyBetterThan(ctx context.Context, j *Jump) (bool, error)
	// Insert stores the jump and drops the result it supersedes for the same
	// player and tournament. It returns ErrAlreadyExists for a known replay code.
	Insert(ctx context.Context, j *Jump) error
	// Delete removes the jump. Deleting an unknown replay code is not an error.
	Delete(ctx context.Context, replayCode string) error
	Get(ctx context.Context, replayCode string) (*Jump, error)
	ListByTournament(ctx context.Context, tournamentCode string) ([]Jump, error)
}
