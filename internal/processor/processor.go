package processor

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/dsj-tournaments/internal/pubsub"
)

// New creates a new Processor.
func New(store Store, notifier Notifier) *Processor {
	return &Processor{
		store:    store,
		notifier: notifier,
	}
}

// ProcessJumpAccepted announces the jump when its tournament has a live board.
func (p *Processor) ProcessJumpAccepted(ctx context.Context, event *pubsub.JumpEvent, dryRun bool) (Outcome, error) {
	j := &event.Jump
	if j.TournamentCode == nil {
		log.Warn("Accepted jump event without tournament", "replayCode", j.ReplayCode)
		return OutcomeSkipped, nil
	}

	t, err := p.store.GetByCode(ctx, *j.TournamentCode)
	if err != nil {
		return "", fmt.Errorf("failed to get tournament %s: %w", *j.TournamentCode, err)
	}
	if !t.Settings.LiveBoard {
		log.Debug("Tournament has no live board, skipping announcement", "tournamentCode", t.Code, "replayCode", j.ReplayCode)
		return OutcomeSkipped, nil
	}

	if err := p.notifier.SendJumpAccepted(j, t, dryRun); err != nil {
		return "", fmt.Errorf("failed to announce jump %s: %w", j.ReplayCode, err)
	}
	log.Info("Announced jump", "replayCode", j.ReplayCode, "tournamentCode", t.Code)
	return OutcomeAnnounced, nil
}

// ProcessJumpUnassigned alerts about a jump that matched no single tournament.
func (p *Processor) ProcessJumpUnassigned(ctx context.Context, event *pubsub.JumpEvent, dryRun bool) (Outcome, error) {
	if err := p.notifier.SendUnassignedJump(&event.Jump, event.Candidates, dryRun); err != nil {
		return "", fmt.Errorf("failed to alert about jump %s: %w", event.Jump.ReplayCode, err)
	}
	return OutcomeAlerted, nil
}
