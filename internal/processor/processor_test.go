package processor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mauv0809/dsj-tournaments/internal/jump"
	"github.com/mauv0809/dsj-tournaments/internal/notifier"
	"github.com/mauv0809/dsj-tournaments/internal/pubsub"
	"github.com/mauv0809/dsj-tournaments/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(tournamentCode string) *pubsub.JumpEvent {
	e := &pubsub.JumpEvent{Jump: jump.Jump{ReplayCode: "replay000001", Player: "Alice", Hill: "H1", Distance: 120, Points: 125}}
	if tournamentCode != "" {
		e.Jump.TournamentCode = &tournamentCode
	}
	return e
}

func TestProcessor_ProcessJumpAccepted(t *testing.T) {
	end := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	store := tournament.NewStaticMock(
		tournament.Tournament{Code: "LIVE01", Hill: "H1", EndDate: end, Settings: tournament.Settings{LiveBoard: true}},
		tournament.Tournament{Code: "QUIET1", Hill: "H1", EndDate: end},
	)

	t.Run("live board tournament is announced", func(t *testing.T) {
		notif := notifier.NewMock()
		p := New(store, notif)

		outcome, err := p.ProcessJumpAccepted(context.Background(), event("LIVE01"), true)

		require.NoError(t, err)
		assert.Equal(t, OutcomeAnnounced, outcome)
		require.Len(t, notif.SendJumpAcceptedCalls, 1)
		assert.Equal(t, "LIVE01", notif.SendJumpAcceptedCalls[0].Tournament.Code)
		assert.True(t, notif.SendJumpAcceptedCalls[0].DryRun)
	})

	t.Run("tournament without live board is skipped", func(t *testing.T) {
		notif := notifier.NewMock()
		outcome, err := New(store, notif).ProcessJumpAccepted(context.Background(), event("QUIET1"), false)

		require.NoError(t, err)
		assert.Equal(t, OutcomeSkipped, outcome)
		assert.Empty(t, notif.SendJumpAcceptedCalls)
	})

	t.Run("jump without tournament is skipped", func(t *testing.T) {
		store := tournament.NewMock()
		notif := notifier.NewMock()
		outcome, err := New(store, notif).ProcessJumpAccepted(context.Background(), event(""), false)

		require.NoError(t, err)
		assert.Equal(t, OutcomeSkipped, outcome)
		assert.Empty(t, store.GetByCodeCalls, "no lookup is needed")
		assert.Empty(t, notif.SendJumpAcceptedCalls)
	})

	t.Run("unknown tournament is an error", func(t *testing.T) {
		_, err := New(store, notifier.NewMock()).ProcessJumpAccepted(context.Background(), event("NOPE00"), false)
		assert.ErrorIs(t, err, tournament.ErrNotFound)
	})

	t.Run("notifier failure is an error", func(t *testing.T) {
		notif := notifier.NewMock()
		notif.SendJumpAcceptedFunc = func(j *jump.Jump, t *tournament.Tournament, dryRun bool) error {
			return errors.New("slack down")
		}
		_, err := New(store, notif).ProcessJumpAccepted(context.Background(), event("LIVE01"), false)
		assert.Error(t, err)
	})
}

func TestProcessor_ProcessJumpUnassigned(t *testing.T) {
	notif := notifier.NewMock()
	p := New(tournament.NewMock(), notif)
	e := event("")
	e.Candidates = []string{"LIVE01", "QUIET1"}

	outcome, err := p.ProcessJumpUnassigned(context.Background(), e, false)

	require.NoError(t, err)
	assert.Equal(t, OutcomeAlerted, outcome)
	require.Len(t, notif.SendUnassignedJumpCalls, 1)
	assert.Equal(t, []string{"LIVE01", "QUIET1"}, notif.SendUnassignedJumpCalls[0].Candidates)
}
