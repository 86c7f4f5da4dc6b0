package tournament_test

import (
	"context"
	"testing"
	"time"

	"github.com/mauv0809/dsj-tournaments/internal/database"
	"github.com/mauv0809/dsj-tournaments/internal/jump"
	"github.com/mauv0809/dsj-tournaments/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC)

// setupTestDB seeds an in-memory database with a finished, an active, an
// upcoming and an open-ended tournament.
func setupTestDB(t *testing.T) tournament.Store {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)
	t.Cleanup(teardown)

	hour := int64(3600)
	start := t0.Unix()
	_, err = db.Exec(`INSERT INTO tournaments (code, hill, created_by_id, created_by_name, created_at, start_time, end_time, live_board) VALUES
		('OLD001', 'H1', 'u1', 'admin', ?, ?, ?, 0),
		('AB12CD', 'H1', 'u1', 'admin', ?, ?, ?, 1),
		('NEXT01', 'H1', 'u1', 'admin', ?, ?, ?, 0),
		('OPEN01', 'H2', 'u1', 'admin', ?, NULL, ?, 0)`,
		start-3*hour, start-3*hour, start-2*hour,
		start-hour, start, start+hour,
		start, start+2*hour, start+3*hour,
		start, start+hour)
	require.NoError(t, err)

	return tournament.New(db)
}

func codes(tournaments []tournament.Tournament) []string {
	var out []string
	for _, t := range tournaments {
		out = append(out, t.Code)
	}
	return out
}

func TestListActive(t *testing.T) {
	store := setupTestDB(t)

	active, err := store.ListActive(context.Background(), t0.Add(10*time.Minute))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"AB12CD", "OPEN01"}, codes(active))
}

func TestListUnfinished(t *testing.T) {
	store := setupTestDB(t)

	unfinished, err := store.ListUnfinished(context.Background(), t0.Add(10*time.Minute))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"AB12CD", "NEXT01", "OPEN01"}, codes(unfinished))
}

func TestGetByCode(t *testing.T) {
	store := setupTestDB(t)

	t.Run("existing tournament", func(t *testing.T) {
		got, err := store.GetByCode(context.Background(), "AB12CD")
		require.NoError(t, err)
		assert.Equal(t, "H1", got.Hill)
		assert.Equal(t, "admin", got.CreatedBy.Username)
		assert.True(t, got.Settings.LiveBoard)
		require.NotNil(t, got.StartDate)
		assert.True(t, t0.Equal(*got.StartDate))
		assert.True(t, t0.Add(time.Hour).Equal(got.EndDate))
	})

	t.Run("open-ended tournament", func(t *testing.T) {
		got, err := store.GetByCode(context.Background(), "OPEN01")
		require.NoError(t, err)
		assert.Nil(t, got.StartDate)
	})

	t.Run("unknown tournament", func(t *testing.T) {
		_, err := store.GetByCode(context.Background(), "NOPE00")
		assert.ErrorIs(t, err, tournament.ErrNotFound)
	})
}

func TestCreate(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	start := t0.Add(time.Minute)
	created := &tournament.Tournament{
		Code:      "NEW001",
		Hill:      "H3",
		CreatedBy: jump.User{ID: "u2", Username: "bob"},
		CreatedAt: t0,
		StartDate: &start,
		EndDate:   t0.Add(time.Hour),
	}
	require.NoError(t, store.Create(ctx, created))

	got, err := store.GetByCode(ctx, "NEW001")
	require.NoError(t, err)
	assert.Equal(t, "H3", got.Hill)
	assert.Equal(t, "bob", got.CreatedBy.Username)
	assert.False(t, got.Settings.LiveBoard)
	require.NotNil(t, got.StartDate)
	assert.True(t, start.Equal(*got.StartDate))

	assert.Error(t, store.Create(ctx, created), "codes are unique")
}
