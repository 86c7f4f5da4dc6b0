package jump

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// New creates a new jump Store.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

const selectColumns = `replay_code, player, user_id, username, hill, jump_date, distance, points, tournament_code, created_at`

func (s *store) AlreadyExists(ctx context.Context, replayCode string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var exists bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM jumps WHERE replay_code = ?)", replayCode).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check jump %s: %w", replayCode, err)
	}
	return exists, nil
}

func (s *store) AnyBetterThan(ctx context.Context, j *Jump) (bool, error) {
	if j.TournamentCode == nil {
		return false, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT distance, points FROM jumps
		WHERE tournament_code = ? AND player = ? AND replay_code != ?
	`, *j.TournamentCode, j.Player, j.ReplayCode)
	if err != nil {
		return false, fmt.Errorf("failed to query jumps of %s: %w", j.Player, err)
	}
	defer rows.Close()

	for rows.Next() {
		var existing Jump
		if err := rows.Scan(&existing.Distance, &existing.Points); err != nil {
			return false, err
		}
		if Better(&existing, j) {
			return true, nil
		}
	}
	return false, rows.Err()
}

// Insert writes the jump inside a single transaction. The replay code insert is
// conflict-checked by the primary key, so of two concurrent inserts of one code
// exactly one succeeds.
func (s *store) Insert(ctx context.Context, j *Jump) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if j.CreatedAt.IsZero() {
		j.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO jumps (replay_code, player, user_id, username, hill, jump_date, distance, points, tournament_code, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(replay_code) DO NOTHING
	`, j.ReplayCode, j.Player, j.User.ID, j.User.Username, j.Hill, j.Date.Format(DateLayout),
		j.Distance, j.Points, j.TournamentCode, j.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to insert jump %s: %w", j.ReplayCode, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAlreadyExists
	}

	if j.TournamentCode != nil {
		res, err = tx.ExecContext(ctx, `
			DELETE FROM jumps WHERE tournament_code = ? AND player = ? AND replay_code != ?
		`, *j.TournamentCode, j.Player, j.ReplayCode)
		if err != nil {
			return fmt.Errorf("failed to remove superseded jumps of %s: %w", j.Player, err)
		}
		if superseded, _ := res.RowsAffected(); superseded > 0 {
			log.Info("Superseded previous jump", "player", j.Player, "tournamentCode", *j.TournamentCode, "count", superseded)
		}
	}

	return tx.Commit()
}

func (s *store) Delete(ctx context.Context, replayCode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM jumps WHERE replay_code = ?", replayCode)
	if err != nil {
		return fmt.Errorf("failed to delete jump %s: %w", replayCode, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		log.Debug("No jump to delete", "replayCode", replayCode)
	}
	return nil
}

func (s *store) Get(ctx context.Context, replayCode string) (*Jump, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, "SELECT "+selectColumns+" FROM jumps WHERE replay_code = ?", replayCode)
	j, err := scanJump(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get jump %s: %w", replayCode, err)
	}
	return j, nil
}

// ListByTournament returns the tournament's jumps, best first.
func (s *store) ListByTournament(ctx context.Context, tournamentCode string) ([]Jump, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+selectColumns+` FROM jumps
		WHERE tournament_code = ?
		ORDER BY distance DESC, points DESC, created_at ASC
	`, tournamentCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list jumps of %s: %w", tournamentCode, err)
	}
	defer rows.Close()

	jumps := []Jump{}
	for rows.Next() {
		j, err := scanJump(rows)
		if err != nil {
			log.Error("Failed to scan jump row", "error", err)
			continue
		}
		jumps = append(jumps, *j)
	}
	return jumps, rows.Err()
}

// scanJump is a helper function to scan a single jump row.
func scanJump(scanner interface{ Scan(...any) error }) (*Jump, error) {
	var (
		j              Jump
		date           string
		tournamentCode sql.NullString
		createdAt      int64
	)
	err := scanner.Scan(&j.ReplayCode, &j.Player, &j.User.ID, &j.User.Username, &j.Hill, &date,
		&j.Distance, &j.Points, &tournamentCode, &createdAt)
	if err != nil {
		return nil, err
	}

	j.Date, err = time.Parse(DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid jump date %q: %w", date, err)
	}
	if tournamentCode.Valid {
		code := tournamentCode.String
		j.TournamentCode = &code
	}
	j.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &j, nil
}
