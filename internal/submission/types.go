package submission

import (
	"time"

	"github.com/mauv0809/dsj-tournaments/internal/acceptance"
	"github.com/mauv0809/dsj-tournaments/internal/jump"
	"github.com/mauv0809/dsj-tournaments/internal/keylock"
	"github.com/mauv0809/dsj-tournaments/internal/metrics"
	"github.com/mauv0809/dsj-tournaments/internal/pubsub"
	"github.com/mauv0809/dsj-tournaments/internal/replay"
	"github.com/mauv0809/dsj-tournaments/internal/tournament"
)

// Pipeline turns submissions into stored jumps.
type Pipeline struct {
	registry  tournament.Registry
	validator *acceptance.Validator
	replays   replay.Source
	store     jump.Store
	metrics   metrics.Metrics
	events    pubsub.PubSubClient
	locks     *keylock.Locker
	now       func() time.Time
}

// TournamentResults is a tournament together with its accepted jumps, best first.
type TournamentResults struct {
	Tournament tournament.Tournament `json:"tournament"`
	Jumps      []jump.Jump           `json:"jumps"`
}
