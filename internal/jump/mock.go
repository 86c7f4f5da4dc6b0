package jump

import (
	"context"
	"sync"
)

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	AlreadyExistsFunc    func(ctx context.Context, replayCode string) (bool, error)
	AnyBetterThanFunc    func(ctx context.Context, j *Jump) (bool, error)
	InsertFunc           func(ctx context.Context, j *Jump) error
	DeleteFunc           func(ctx context.Context, replayCode string) error
	GetFunc              func(ctx context.Context, replayCode string) (*Jump, error)
	ListByTournamentFunc func(ctx context.Context, tournamentCode string) ([]Jump, error)

	// Call records
	AlreadyExistsCalls []string
	AnyBetterThanCalls []*Jump
	InsertCalls        []*Jump
	DeleteCalls        []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AlreadyExistsCalls = nil
	m.AnyBetterThanCalls = nil
	m.InsertCalls = nil
	m.DeleteCalls = nil
}

func (m *MockStore) AlreadyExists(ctx context.Context, replayCode string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AlreadyExistsCalls = append(m.AlreadyExistsCalls, replayCode)
	if m.AlreadyExistsFunc != nil {
		return m.AlreadyExistsFunc(ctx, replayCode)
	}
	return false, nil
}

func (m *MockStore) AnyBetterThan(ctx context.Context, j *Jump) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnyBetterThanCalls = append(m.AnyBetterThanCalls, j)
	if m.AnyBetterThanFunc != nil {
		return m.AnyBetterThanFunc(ctx, j)
	}
	return false, nil
}

func (m *MockStore) Insert(ctx context.Context, j *Jump) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InsertCalls = append(m.InsertCalls, j)
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, j)
	}
	return nil
}

func (m *MockStore) Delete(ctx context.Context, replayCode string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls = append(m.DeleteCalls, replayCode)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, replayCode)
	}
	return nil
}

func (m *MockStore) Get(ctx context.Context, replayCode string) (*Jump, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetFunc != nil {
		return m.GetFunc(ctx, replayCode)
	}
	return nil, ErrNotFound
}

func (m *MockStore) ListByTournament(ctx context.Context, tournamentCode string) ([]Jump, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListByTournamentFunc != nil {
		return m.ListByTournamentFunc(ctx, tournamentCode)
	}
	return []Jump{}, nil
}
