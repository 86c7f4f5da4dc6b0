package jump

import (
	"database/sql"
	"errors"
	"strings"
	"sync"
	"time"
)

// SimulatedPrefix marks participants that are computer controlled.
const SimulatedPrefix = "CPU"

// ReplayCodeLength is the exact length of a replay code.
const ReplayCodeLength = 12

// DateLayout is the calendar date format used for jump dates.
const DateLayout = "2006-01-02"

var (
	// ErrNotFound is returned when no jump is stored for a replay code.
	ErrNotFound = errors.New("jump not found")
	// ErrAlreadyExists is returned when a replay code has already been accepted.
	ErrAlreadyExists = errors.New("jump already exists")
)

// User identifies who submitted a jump.
type User struct {
	ID       string `json:"id" msgpack:"id"`
	Username string `json:"username" msgpack:"username"`
}

// Jump is a single reported result tied to a replay.
type Jump struct {
	ReplayCode     string    `json:"replayCode" msgpack:"replay_code"`
	Player         string    `json:"player" msgpack:"player"`
	User           User      `json:"user" msgpack:"user"`
	Hill           string    `json:"hill" msgpack:"hill"`
	Date           time.Time `json:"date" msgpack:"date"`
	Distance       float64   `json:"distance" msgpack:"distance"`
	Points         float64   `json:"points" msgpack:"points"`
	TournamentCode *string   `json:"tournamentCode" msgpack:"tournament_code"`
	CreatedAt      time.Time `json:"createdAt" msgpack:"created_at"`
}

// IsSimulated reports whether the jump was performed by a computer player.
func (j *Jump) IsSimulated() bool {
	return strings.HasPrefix(j.Player, SimulatedPrefix)
}

// ValidReplayCode reports whether code has the shape of a replay code.
func ValidReplayCode(code string) bool {
	return len(code) == ReplayCodeLength
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// store handles all database operations for jumps.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}
