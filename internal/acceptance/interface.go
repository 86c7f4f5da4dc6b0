package acceptance

import (
	"context"

	"github.com/mauv0809/dsj-tournaments/internal/jump"
)

// Results defines the read operations the validator needs from the result store.
type Results interface {
	AlreadyExists(ctx context.Context, replayCode string) (bool, error)
	AnyBetterThan(ctx context.Context, j *jump.Jump) (bool, error)
}
