package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncSubmissions()
	IncAccepted()
	IncRejected(reason string)
	IncUnassigned()
	IncReplayLookupFailures()
	ObserveSubmissionDuration(duration float64)
	SetActiveTournaments(count int)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
