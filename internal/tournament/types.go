package tournament

import (
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/mauv0809/dsj-tournaments/internal/jump"
)

// ErrNotFound is returned when no tournament has the requested code.
var ErrNotFound = errors.New("tournament not found")

// Settings holds tournament specific options.
type Settings struct {
	LiveBoard bool `json:"liveBoard" msgpack:"live_board"`
}

// Tournament is a time-boxed competition bound to a single hill.
type Tournament struct {
	Code      string     `json:"code" msgpack:"code"`
	Hill      string     `json:"hill" msgpack:"hill"`
	CreatedBy jump.User  `json:"createdBy" msgpack:"created_by"`
	CreatedAt time.Time  `json:"createdDate" msgpack:"created_at"`
	StartDate *time.Time `json:"startDate" msgpack:"start_date"`
	EndDate   time.Time  `json:"endDate" msgpack:"end_date"`
	Settings  Settings   `json:"settings" msgpack:"settings"`
}

// IsFinished reports whether the tournament window has closed at now.
func (t *Tournament) IsFinished(now time.Time) bool {
	return now.After(t.EndDate)
}

// IsActive reports whether the tournament accepts jumps at now.
func (t *Tournament) IsActive(now time.Time) bool {
	if t.IsFinished(now) {
		return false
	}
	return t.StartDate == nil || !now.Before(*t.StartDate)
}

// StartsAfter reports whether the tournament starts on a later calendar day
// than date. Tournaments without a start date never do.
func (t *Tournament) StartsAfter(date time.Time) bool {
	if t.StartDate == nil {
		return false
	}
	return jump.DateOf(date).Before(jump.DateOf(*t.StartDate))
}

// Covers reports whether the calendar date lies inside the tournament window.
func (t *Tournament) Covers(date time.Time) bool {
	if t.StartsAfter(date) {
		return false
	}
	return !jump.DateOf(date).After(jump.DateOf(t.EndDate))
}

// store handles database operations for tournaments.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Snapshot serves tournaments from memory and refreshes them periodically.
type Snapshot struct {
	source    Store
	metrics   snapshotMetrics
	scheduler gocron.Scheduler
	now       func() time.Time

	mu        sync.RWMutex
	upcoming  []Tournament
	refreshed time.Time
}

type snapshotMetrics interface {
	SetActiveTournaments(count int)
}
