package processor

import (
	"context"

	"github.com/mauv0809/dsj-tournaments/internal/notifier"
	"github.com/mauv0809/dsj-tournaments/internal/tournament"
)

// Store defines the tournament lookups required by the processor.
type Store interface {
	GetByCode(ctx context.Context, code string) (*tournament.Tournament, error)
}

// Notifier defines the notification operations required by the processor.
type Notifier interface {
	notifier.Notifier
}
