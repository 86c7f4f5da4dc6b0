package tournament

import (
	"context"
	"time"
)

// Registry exposes the tournaments jumps can be submitted to.
type Registry interface {
	// ListActive returns the tournaments active at now, in no particular order.
	ListActive(ctx context.Context, now time.Time) ([]Tournament, error)
	GetByCode(ctx context.Context, code string) (*Tournament, error)
}

// Store is a Registry backed by persistent storage.
type Store interface {
	Registry
	// ListUnfinished returns every tournament whose window has not closed at now.
	ListUnfinished(ctx context.Context, now time.Time) ([]Tournament, error)
	Create(ctx context.Context, t *Tournament) error
}
