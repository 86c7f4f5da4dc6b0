package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Submissions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dsj_jump_submissions_total",
			Help: "The total number of jump submissions received.",
		}),
		Accepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dsj_jumps_accepted_total",
			Help: "The total number of jumps accepted and stored.",
		}),
		Rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dsj_jumps_rejected_total",
			Help: "The total number of rejected jump submissions by reason.",
		}, []string{"reason"}),
		Unassigned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dsj_jumps_unassigned_total",
			Help: "Accepted jumps that could not be matched to exactly one tournament.",
		}),
		ReplayLookupFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dsj_replay_lookup_failures_total",
			Help: "Replay lookups that failed because the replay service was unavailable.",
		}),
		SubmissionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dsj_submission_duration_seconds",
			Help:    "The duration of individual jump submissions.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		ActiveTournaments: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dsj_active_tournaments",
			Help: "The number of active tournaments at the last snapshot refresh.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dsj_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dsj_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dsj_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.Submissions,
		s.Accepted,
		s.Rejected,
		s.Unassigned,
		s.ReplayLookupFailures,
		s.SubmissionDuration,
		s.ActiveTournaments,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncSubmissions() {
	s.Submissions.Inc()
}

func (s *Service) IncAccepted() {
	s.Accepted.Inc()
}

func (s *Service) IncRejected(reason string) {
	s.Rejected.WithLabelValues(reason).Inc()
}

func (s *Service) IncUnassigned() {
	s.Unassigned.Inc()
}

func (s *Service) IncReplayLookupFailures() {
	s.ReplayLookupFailures.Inc()
}

func (s *Service) ObserveSubmissionDuration(duration float64) {
	s.SubmissionDuration.Observe(duration)
}

func (s *Service) SetActiveTournaments(count int) {
	s.ActiveTournaments.Set(float64(count))
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
