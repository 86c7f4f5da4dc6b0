package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTournament(t *testing.T) {
	now := time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC)
	got := newTournament("Kulm", true, now)

	assert.Len(t, got.Code, 6)
	assert.Equal(t, "Kulm", got.Hill)
	require.NotNil(t, got.StartDate)
	assert.Equal(t, now.Add(time.Minute), *got.StartDate)
	assert.Equal(t, now.Add(time.Hour), got.EndDate)
	assert.True(t, got.Settings.LiveBoard)
	assert.False(t, got.IsActive(now), "the window opens a minute after creation")
	assert.True(t, got.IsActive(now.Add(2*time.Minute)))
}
