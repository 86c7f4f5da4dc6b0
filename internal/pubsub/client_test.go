package pubsub

import (
	"testing"
	"time"

	"github.com/mauv0809/dsj-tournaments/internal/jump"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestProcessMessage_DecodesJumpEvent(t *testing.T) {
	code := "AB12CD"
	event := JumpEvent{
		Jump: jump.Jump{
			ReplayCode:     "replay000001",
			Player:         "Alice",
			User:           jump.User{ID: "u1", Username: "alice#1"},
			Hill:           "H1",
			Date:           time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
			Distance:       125.5,
			Points:         130,
			TournamentCode: &code,
		},
	}
	data, err := msgpack.Marshal(event)
	require.NoError(t, err)

	var got JumpEvent
	require.NoError(t, NewNoop().ProcessMessage(data, &got))

	assert.Equal(t, "replay000001", got.Jump.ReplayCode)
	assert.Equal(t, 125.5, got.Jump.Distance)
	require.NotNil(t, got.Jump.TournamentCode)
	assert.Equal(t, "AB12CD", *got.Jump.TournamentCode)
	assert.True(t, event.Jump.Date.Equal(got.Jump.Date))
}

func TestProcessMessage_RejectsGarbage(t *testing.T) {
	var got JumpEvent
	assert.Error(t, NewNoop().ProcessMessage([]byte{0xc1}, &got))
}

func TestMock_RecordsTopics(t *testing.T) {
	m := NewMock()
	require.NoError(t, m.SendMessage(EventJumpAccepted, JumpEvent{}))
	require.NoError(t, m.SendMessage(EventJumpUnassigned, JumpEvent{Candidates: []string{"A", "B"}}))

	assert.Len(t, m.SentTo(EventJumpAccepted), 1)
	unassigned := m.SentTo(EventJumpUnassigned)
	require.Len(t, unassigned, 1)
	assert.Equal(t, []string{"A", "B"}, unassigned[0].(JumpEvent).Candidates)
}
