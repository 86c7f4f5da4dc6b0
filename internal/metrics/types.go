package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	Submissions          prometheus.Counter
	Accepted             prometheus.Counter
	Rejected             *prometheus.CounterVec
	Unassigned           prometheus.Counter
	ReplayLookupFailures prometheus.Counter
	SubmissionDuration   prometheus.Histogram
	ActiveTournaments    prometheus.Gauge
	SlackNotifSent       prometheus.Counter
	SlackNotifFailed     prometheus.Counter
	StartupTimeSeconds   prometheus.Gauge
}
