package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                   sync.Mutex
	submissions          int
	accepted             int
	rejected             map[string]int
	unassigned           int
	replayLookupFailures int
	submissionDurations  []float64
	activeTournaments    int
	slackNotifSent       int
	slackNotifFailed     int
	startupTime          float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		rejected:            make(map[string]int),
		submissionDurations: make([]float64, 0),
	}
}

func (m *Mock) IncSubmissions() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submissions++
}

func (m *Mock) IncAccepted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accepted++
}

func (m *Mock) IncRejected(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejected[reason]++
}

func (m *Mock) IncUnassigned() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unassigned++
}

func (m *Mock) IncReplayLookupFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replayLookupFailures++
}

func (m *Mock) ObserveSubmissionDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submissionDurations = append(m.submissionDurations, duration)
}

func (m *Mock) SetActiveTournaments(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activeTournaments = count
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// Submissions returns the number of times IncSubmissions was called.
func (m *Mock) Submissions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.submissions
}

// Accepted returns the number of times IncAccepted was called.
func (m *Mock) Accepted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.accepted
}

// Rejected returns how often IncRejected was called with reason.
func (m *Mock) Rejected(reason string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rejected[reason]
}

// Unassigned returns the number of times IncUnassigned was called.
func (m *Mock) Unassigned() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.unassigned
}

// ReplayLookupFailures returns the number of times IncReplayLookupFailures was called.
func (m *Mock) ReplayLookupFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.replayLookupFailures
}

// SubmissionDurations returns the observed submission durations.
func (m *Mock) SubmissionDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.submissionDurations...)
}

// ActiveTournaments returns the last value passed to SetActiveTournaments.
func (m *Mock) ActiveTournaments() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activeTournaments
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
