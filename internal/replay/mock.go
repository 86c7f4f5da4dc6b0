package replay

import (
	"context"
	"sync"

	"github.com/mauv0809/dsj-tournaments/internal/jump"
)

// MockClient is a mock implementation of the Source interface for testing.
// It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	// Spies for method calls
	ResolveFunc func(ctx context.Context, replayCode string, user *jump.User) (*jump.Jump, error)

	// Call records
	ResolveCalls []string
}

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// NewStaticMock returns a mock that resolves the given jumps by replay code and
// reports every other code as not found.
func NewStaticMock(jumps ...jump.Jump) *MockClient {
	byCode := make(map[string]jump.Jump, len(jumps))
	for _, j := range jumps {
		byCode[j.ReplayCode] = j
	}
	m := NewMockClient()
	m.ResolveFunc = func(ctx context.Context, replayCode string, user *jump.User) (*jump.Jump, error) {
		j, ok := byCode[replayCode]
		if !ok {
			return nil, ErrNotFound
		}
		if user != nil {
			j.User = *user
		}
		return &j, nil
	}
	return m
}

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResolveCalls = nil
}

func (m *MockClient) Resolve(ctx context.Context, replayCode string, user *jump.User) (*jump.Jump, error) {
	m.mu.Lock()
	m.ResolveCalls = append(m.ResolveCalls, replayCode)
	resolve := m.ResolveFunc
	m.mu.Unlock()
	if resolve != nil {
		return resolve(ctx, replayCode, user)
	}
	return nil, ErrNotFound
}
