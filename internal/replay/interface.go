package replay

import (
	"context"

	"github.com/mauv0809/dsj-tournaments/internal/jump"
)

// Source resolves replay codes into jumps.
// This allows for mock implementations to be used in tests.
type Source interface {
	// Resolve fetches the jump recorded in the replay. The submitting user, when
	// given, is stamped on the returned jump. It returns ErrNotFound for unknown
	// replays and ErrUnavailable when the upstream cannot be reached.
	Resolve(ctx context.Context, replayCode string, user *jump.User) (*jump.Jump, error)
}
