package tournament

import (
	"context"
	"sync"
	"time"
)

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	ListActiveFunc     func(ctx context.Context, now time.Time) ([]Tournament, error)
	ListUnfinishedFunc func(ctx context.Context, now time.Time) ([]Tournament, error)
	GetByCodeFunc      func(ctx context.Context, code string) (*Tournament, error)
	CreateFunc         func(ctx context.Context, t *Tournament) error

	// Call records
	ListActiveCalls     []time.Time
	ListUnfinishedCalls []time.Time
	GetByCodeCalls      []string
	CreateCalls         []*Tournament
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// NewStaticMock returns a mock whose tournaments never change.
func NewStaticMock(tournaments ...Tournament) *MockStore {
	m := NewMock()
	m.ListActiveFunc = func(ctx context.Context, now time.Time) ([]Tournament, error) {
		var active []Tournament
		for _, t := range tournaments {
			if t.IsActive(now) {
				active = append(active, t)
			}
		}
		return active, nil
	}
	m.ListUnfinishedFunc = func(ctx context.Context, now time.Time) ([]Tournament, error) {
		var unfinished []Tournament
		for _, t := range tournaments {
			if !t.IsFinished(now) {
				unfinished = append(unfinished, t)
			}
		}
		return unfinished, nil
	}
	m.GetByCodeFunc = func(ctx context.Context, code string) (*Tournament, error) {
		for _, t := range tournaments {
			if t.Code == code {
				return &t, nil
			}
		}
		return nil, ErrNotFound
	}
	return m
}

func (m *MockStore) ListActive(ctx context.Context, now time.Time) ([]Tournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListActiveCalls = append(m.ListActiveCalls, now)
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx, now)
	}
	return nil, nil
}

func (m *MockStore) ListUnfinished(ctx context.Context, now time.Time) ([]Tournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListUnfinishedCalls = append(m.ListUnfinishedCalls, now)
	if m.ListUnfinishedFunc != nil {
		return m.ListUnfinishedFunc(ctx, now)
	}
	return nil, nil
}

func (m *MockStore) GetByCode(ctx context.Context, code string) (*Tournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetByCodeCalls = append(m.GetByCodeCalls, code)
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	return nil, ErrNotFound
}

func (m *MockStore) Create(ctx context.Context, t *Tournament) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls = append(m.CreateCalls, t)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}
