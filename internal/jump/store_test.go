package jump_test

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/mauv0809/dsj-tournaments/internal/database"
	"github.com/mauv0809/dsj-tournaments/internal/jump"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database with two tournaments.
func setupTestDB(t *testing.T) (jump.Store, *sql.DB) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)
	t.Cleanup(teardown)

	_, err = db.Exec(`INSERT INTO tournaments (code, hill, created_at, start_time, end_time) VALUES
		('AB12CD', 'H1', 0, 0, 4102444800),
		('EF34GH', 'H1', 0, 0, 4102444800)`)
	require.NoError(t, err)

	return jump.New(db), db
}

func code(s string) *string { return &s }

func newJump(replayCode, player, tournamentCode string, distance, points float64) *jump.Jump {
	j := &jump.Jump{
		ReplayCode: replayCode,
		Player:     player,
		User:       jump.User{ID: "u1", Username: "alice#1"},
		Hill:       "H1",
		Date:       time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Distance:   distance,
		Points:     points,
	}
	if tournamentCode != "" {
		j.TournamentCode = code(tournamentCode)
	}
	return j
}

func TestInsertAndGet(t *testing.T) {
	store, _ := setupTestDB(t)
	ctx := context.Background()

	j := newJump("replay000001", "Alice", "AB12CD", 131.5, 140.2)
	require.NoError(t, store.Insert(ctx, j))

	exists, err := store.AlreadyExists(ctx, "replay000001")
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := store.Get(ctx, "replay000001")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Player)
	assert.Equal(t, "alice#1", got.User.Username)
	assert.Equal(t, j.Date, got.Date)
	assert.Equal(t, 131.5, got.Distance)
	require.NotNil(t, got.TournamentCode)
	assert.Equal(t, "AB12CD", *got.TournamentCode)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestInsert_WithoutTournament(t *testing.T) {
	store, _ := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, newJump("replay000001", "Alice", "", 120, 100)))

	got, err := store.Get(ctx, "replay000001")
	require.NoError(t, err)
	assert.Nil(t, got.TournamentCode)
}

func TestInsert_DuplicateReplayCode(t *testing.T) {
	store, _ := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, newJump("replay000001", "Alice", "AB12CD", 120, 100)))
	err := store.Insert(ctx, newJump("replay000001", "Bob", "AB12CD", 130, 110))
	assert.ErrorIs(t, err, jump.ErrAlreadyExists)

	got, err := store.Get(ctx, "replay000001")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Player, "The first accepted jump should be kept")
}

func TestInsert_ConcurrentDuplicates(t *testing.T) {
	store, _ := setupTestDB(t)
	ctx := context.Background()

	const attempts = 10
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.Insert(ctx, newJump("replay000001", "Alice", "AB12CD", 120, 100))
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
			} else if assert.ErrorIs(t, err, jump.ErrAlreadyExists) {
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicts)
}

func TestInsert_SupersedesPreviousBest(t *testing.T) {
	store, _ := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, newJump("replay000001", "Alice", "AB12CD", 120, 100)))
	require.NoError(t, store.Insert(ctx, newJump("replay000002", "Bob", "AB12CD", 110, 90)))
	require.NoError(t, store.Insert(ctx, newJump("replay000003", "Alice", "EF34GH", 100, 80)))
	require.NoError(t, store.Insert(ctx, newJump("replay000004", "Alice", "AB12CD", 125, 105)))

	_, err := store.Get(ctx, "replay000001")
	assert.ErrorIs(t, err, jump.ErrNotFound, "The superseded jump should be gone")

	jumps, err := store.ListByTournament(ctx, "AB12CD")
	require.NoError(t, err)
	require.Len(t, jumps, 2)
	assert.Equal(t, "replay000004", jumps[0].ReplayCode, "Best jump should be listed first")
	assert.Equal(t, "replay000002", jumps[1].ReplayCode)

	other, err := store.ListByTournament(ctx, "EF34GH")
	require.NoError(t, err)
	require.Len(t, other, 1, "Jumps in other tournaments should be untouched")
}

func TestAnyBetterThan(t *testing.T) {
	store, _ := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, newJump("replay000001", "Alice", "AB12CD", 120, 100)))

	tests := []struct {
		name      string
		candidate *jump.Jump
		want      bool
	}{
		{"shorter jump", newJump("replay000002", "Alice", "AB12CD", 119.5, 130), true},
		{"same distance fewer points", newJump("replay000002", "Alice", "AB12CD", 120, 99), true},
		{"equal jump", newJump("replay000002", "Alice", "AB12CD", 120, 100), false},
		{"longer jump", newJump("replay000002", "Alice", "AB12CD", 121, 90), false},
		{"other player", newJump("replay000002", "Bob", "AB12CD", 100, 80), false},
		{"other tournament", newJump("replay000002", "Alice", "EF34GH", 100, 80), false},
		{"no tournament", newJump("replay000002", "Alice", "", 100, 80), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			better, err := store.AnyBetterThan(ctx, tt.candidate)
			require.NoError(t, err)
			assert.Equal(t, tt.want, better)
		})
	}
}

func TestDelete(t *testing.T) {
	store, _ := setupTestDB(t)
	ctx := context.Background()

	t.Run("deleting an unknown jump is a no-op", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "replay999999"))
	})

	t.Run("deleting an existing jump removes it", func(t *testing.T) {
		require.NoError(t, store.Insert(ctx, newJump("replay000001", "Alice", "AB12CD", 120, 100)))
		require.NoError(t, store.Delete(ctx, "replay000001"))

		_, err := store.Get(ctx, "replay000001")
		assert.ErrorIs(t, err, jump.ErrNotFound)
		exists, err := store.AlreadyExists(ctx, "replay000001")
		require.NoError(t, err)
		assert.False(t, exists)

		assert.NoError(t, store.Delete(ctx, "replay000001"), "Deleting twice should succeed")
	})
}
