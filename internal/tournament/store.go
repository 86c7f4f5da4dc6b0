package tournament

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// New creates a new tournament Store.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

const selectColumns = `code, hill, created_by_id, created_by_name, created_at, start_time, end_time, live_board`

// ListActive returns tournaments that have started and not yet finished at now.
func (s *store) ListActive(ctx context.Context, now time.Time) ([]Tournament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.query(ctx, `
		SELECT `+selectColumns+` FROM tournaments
		WHERE end_time >= ? AND (start_time IS NULL OR start_time <= ?)
	`, now.Unix(), now.Unix())
}

// ListUnfinished returns tournaments that have not finished at now, including
// the ones that have not started yet.
func (s *store) ListUnfinished(ctx context.Context, now time.Time) ([]Tournament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.query(ctx, "SELECT "+selectColumns+" FROM tournaments WHERE end_time >= ?", now.Unix())
}

func (s *store) GetByCode(ctx context.Context, code string) (*Tournament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, "SELECT "+selectColumns+" FROM tournaments WHERE code = ?", code)
	t, err := scanTournament(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tournament %s: %w", code, err)
	}
	return t, nil
}

// Create stores a new tournament.
func (s *store) Create(ctx context.Context, t *Tournament) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var start sql.NullInt64
	if t.StartDate != nil {
		start = sql.NullInt64{Int64: t.StartDate.Unix(), Valid: true}
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tournaments (code, hill, created_by_id, created_by_name, created_at, start_time, end_time, live_board)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, t.Code, t.Hill, t.CreatedBy.ID, t.CreatedBy.Username, t.CreatedAt.Unix(), start, t.EndDate.Unix(), t.Settings.LiveBoard)
	if err != nil {
		return fmt.Errorf("failed to create tournament %s: %w", t.Code, err)
	}
	log.Info("Created tournament", "code", t.Code, "hill", t.Hill)
	return nil
}

func (s *store) query(ctx context.Context, query string, args ...any) ([]Tournament, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tournaments: %w", err)
	}
	defer rows.Close()

	tournaments := []Tournament{}
	for rows.Next() {
		t, err := scanTournament(rows)
		if err != nil {
			log.Error("Failed to scan tournament row", "error", err)
			continue
		}
		tournaments = append(tournaments, *t)
	}
	return tournaments, rows.Err()
}

// scanTournament is a helper function to scan a single tournament row.
func scanTournament(scanner interface{ Scan(...any) error }) (*Tournament, error) {
	var (
		t         Tournament
		createdAt int64
		startTime sql.NullInt64
		endTime   int64
	)
	err := scanner.Scan(&t.Code, &t.Hill, &t.CreatedBy.ID, &t.CreatedBy.Username, &createdAt,
		&startTime, &endTime, &t.Settings.LiveBoard)
	if err != nil {
		return nil, err
	}

	t.CreatedAt = time.Unix(createdAt, 0).UTC()
	if startTime.Valid {
		start := time.Unix(startTime.Int64, 0).UTC()
		t.StartDate = &start
	}
	t.EndDate = time.Unix(endTime, 0).UTC()
	return &t, nil
}
