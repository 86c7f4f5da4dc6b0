package tournament

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC)

func at(t time.Time) *time.Time { return &t }

func TestIsActive(t *testing.T) {
	tour := Tournament{StartDate: at(t0), EndDate: t0.Add(time.Hour)}

	assert.False(t, tour.IsActive(t0.Add(-time.Minute)), "not started yet")
	assert.True(t, tour.IsActive(t0), "start is inclusive")
	assert.True(t, tour.IsActive(t0.Add(time.Hour)), "end is inclusive")
	assert.False(t, tour.IsActive(t0.Add(time.Hour+time.Second)), "finished")
	assert.True(t, tour.IsFinished(t0.Add(time.Hour+time.Second)))

	open := Tournament{EndDate: t0.Add(time.Hour)}
	assert.True(t, open.IsActive(t0.AddDate(-1, 0, 0)), "no start date means no lower bound")
}

func TestCovers(t *testing.T) {
	tour := Tournament{StartDate: at(t0), EndDate: t0.AddDate(0, 0, 2)}

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"day before start", t0.AddDate(0, 0, -1), false},
		{"start day, earlier hour", time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), true},
		{"middle of window", t0.AddDate(0, 0, 1), true},
		{"end day, later hour", time.Date(2025, 3, 16, 23, 59, 0, 0, time.UTC), true},
		{"day after end", t0.AddDate(0, 0, 3), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tour.Covers(tt.date))
		})
	}

	open := Tournament{EndDate: t0}
	assert.True(t, open.Covers(t0.AddDate(-5, 0, 0)))
	assert.False(t, open.StartsAfter(t0.AddDate(-5, 0, 0)))
}
