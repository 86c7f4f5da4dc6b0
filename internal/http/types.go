package http

import (
	"context"
	"net/http"

	"github.com/mauv0809/dsj-tournaments/internal/acceptance"
	"github.com/mauv0809/dsj-tournaments/internal/config"
	"github.com/mauv0809/dsj-tournaments/internal/jump"
	"github.com/mauv0809/dsj-tournaments/internal/notifier"
	"github.com/mauv0809/dsj-tournaments/internal/processor"
	"github.com/mauv0809/dsj-tournaments/internal/pubsub"
	"github.com/mauv0809/dsj-tournaments/internal/submission"
	"github.com/mauv0809/dsj-tournaments/internal/tournament"
)

// JumpService is the part of the submission pipeline the handlers use.
type JumpService interface {
	Submit(ctx context.Context, sub acceptance.Submission) (*jump.Jump, error)
	Preview(ctx context.Context, replayCode string) (*jump.Jump, error)
	Get(ctx context.Context, replayCode string) (*jump.Jump, error)
	Delete(ctx context.Context, replayCode string) error
	ActiveTournaments(ctx context.Context) ([]tournament.Tournament, error)
	Tournament(ctx context.Context, code string) (*submission.TournamentResults, error)
}

type Server struct {
	Jumps          JumpService
	Processor      *processor.Processor
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}

// ApiError is the body of every failed API request.
type ApiError struct {
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
	Input   any    `json:"input,omitempty"`
}
