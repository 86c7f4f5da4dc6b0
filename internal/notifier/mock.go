package notifier

import (
	"sync"

	"github.com/mauv0809/dsj-tournaments/internal/acceptance"
	"github.com/mauv0809/dsj-tournaments/internal/jump"
	"github.com/mauv0809/dsj-tournaments/internal/tournament"
	"github.com/slack-go/slack"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies
	SendJumpAcceptedFunc   func(j *jump.Jump, t *tournament.Tournament, dryRun bool) error
	SendUnassignedJumpFunc func(j *jump.Jump, candidates []string, dryRun bool) error

	// Call records
	SendJumpAcceptedCalls []struct {
		Jump       *jump.Jump
		Tournament *tournament.Tournament
		DryRun     bool
	}
	SendUnassignedJumpCalls []struct {
		Jump       *jump.Jump
		Candidates []string
	}

	// Call records for format functions
	LastJumpResponse         *jump.Jump
	LastRejectionResponse    *acceptance.Rejection
	LastJumpNotFoundResponse string
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendJumpAcceptedCalls = nil
	m.SendUnassignedJumpCalls = nil
	m.LastJumpResponse = nil
	m.LastRejectionResponse = nil
	m.LastJumpNotFoundResponse = ""
}

func (m *Mock) SendJumpAccepted(j *jump.Jump, t *tournament.Tournament, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendJumpAcceptedCalls = append(m.SendJumpAcceptedCalls, struct {
		Jump       *jump.Jump
		Tournament *tournament.Tournament
		DryRun     bool
	}{j, t, dryRun})
	if m.SendJumpAcceptedFunc != nil {
		return m.SendJumpAcceptedFunc(j, t, dryRun)
	}
	return nil
}

func (m *Mock) SendUnassignedJump(j *jump.Jump, candidates []string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendUnassignedJumpCalls = append(m.SendUnassignedJumpCalls, struct {
		Jump       *jump.Jump
		Candidates []string
	}{j, candidates})
	if m.SendUnassignedJumpFunc != nil {
		return m.SendUnassignedJumpFunc(j, candidates, dryRun)
	}
	return nil
}

func (m *Mock) FormatJumpResponse(j *jump.Jump) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastJumpResponse = j
	return textMessage("jump " + j.ReplayCode), nil
}

func (m *Mock) FormatRejectionResponse(rejection *acceptance.Rejection) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRejectionResponse = rejection
	return textMessage(string(rejection.Reason)), nil
}

func (m *Mock) FormatJumpNotFoundResponse(replayCode string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastJumpNotFoundResponse = replayCode
	return textMessage("not found " + replayCode), nil
}

func textMessage(text string) slack.Message {
	return slack.NewBlockMessage(
		slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", text, false, false), nil, nil),
	)
}
