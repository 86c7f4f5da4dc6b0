package http

import (
	"net/http"

	"github.com/mauv0809/dsj-tournaments/internal/config"
	"github.com/mauv0809/dsj-tournaments/internal/notifier"
	"github.com/mauv0809/dsj-tournaments/internal/processor"
	"github.com/mauv0809/dsj-tournaments/internal/pubsub"
)

func NewServer(jumps JumpService, processor *processor.Processor, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Jumps:          jumps,
		Processor:      processor,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	verifySlack := slackVerifyMiddleware(s.Cfg.Slack.SigningSecret)

	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("POST /jump", Chain(s.SubmitJumpHandler(), paramsMiddleware))
	s.Router.Handle("GET /jump/{replayCode}", Chain(s.GetJumpHandler(), paramsMiddleware))
	s.Router.Handle("DELETE /jump/{replayCode}", Chain(s.DeleteJumpHandler(), paramsMiddleware))
	s.Router.Handle("GET /replay/{replayCode}", Chain(s.PreviewReplayHandler(), paramsMiddleware))
	s.Router.Handle("GET /tournament/{code}", Chain(s.TournamentHandler(), paramsMiddleware))
	s.Router.Handle("GET /tournaments/active", Chain(s.ActiveTournamentsHandler(), paramsMiddleware))
	s.Router.Handle("POST /slack/command/jump", Chain(s.JumpCommandHandler(), paramsMiddleware, verifySlack))
	s.Router.Handle("POST /pubsub/jump-accepted", Chain(s.JumpAcceptedHandler(), paramsMiddleware))
	s.Router.Handle("POST /pubsub/jump-unassigned", Chain(s.JumpUnassignedHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
