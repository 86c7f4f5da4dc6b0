package submission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/dsj-tournaments/internal/acceptance"
	"github.com/mauv0809/dsj-tournaments/internal/jump"
	"github.com/mauv0809/dsj-tournaments/internal/keylock"
	"github.com/mauv0809/dsj-tournaments/internal/metrics"
	"github.com/mauv0809/dsj-tournaments/internal/pubsub"
	"github.com/mauv0809/dsj-tournaments/internal/replay"
	"github.com/mauv0809/dsj-tournaments/internal/tournament"
)

// New creates a new Pipeline using the wall clock.
func New(registry tournament.Registry, store jump.Store, replays replay.Source, metrics metrics.Metrics, events pubsub.PubSubClient) *Pipeline {
	return &Pipeline{
		registry:  registry,
		validator: acceptance.NewValidator(store, replays),
		replays:   replays,
		store:     store,
		metrics:   metrics,
		events:    events,
		locks:     keylock.New(),
		now:       time.Now,
	}
}

// WithClock replaces the clock used to decide which tournaments are active.
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.now = now
	return p
}

// Submit validates the submission and stores the resulting jump. Rule
// violations are returned as *acceptance.Rejection; any other error means the
// submission could not be processed.
func (p *Pipeline) Submit(ctx context.Context, sub acceptance.Submission) (*jump.Jump, error) {
	started := time.Now()
	p.metrics.IncSubmissions()
	defer func() {
		p.metrics.ObserveSubmissionDuration(time.Since(started).Seconds())
	}()

	active, err := p.registry.ListActive(ctx, p.now())
	if err != nil {
		return nil, fmt.Errorf("failed to list active tournaments: %w", err)
	}

	verdict, err := p.validator.Validate(ctx, sub, active)
	if err != nil {
		return nil, err
	}
	if !verdict.Accepted() {
		return nil, p.reject(sub, verdict.Rejection)
	}

	j := acceptance.Stamped(verdict.Jump, active)
	rejection, err := p.persist(ctx, sub, j)
	if err != nil {
		return nil, err
	}
	if rejection != nil {
		return nil, p.reject(sub, rejection)
	}

	p.metrics.IncAccepted()
	log.Info("Jump accepted", "replayCode", j.ReplayCode, "player", j.Player, "hill", j.Hill,
		"distance", j.Distance, "points", j.Points, "tournamentCode", j.TournamentCode)
	p.publish(j, acceptance.Candidates(j, active))
	return j, nil
}

// persist stores the jump. Jumps of the same player in the same tournament are
// serialized so the superiority check and the insert cannot interleave.
func (p *Pipeline) persist(ctx context.Context, sub acceptance.Submission, j *jump.Jump) (*acceptance.Rejection, error) {
	if j.TournamentCode != nil {
		unlock := p.locks.Lock(*j.TournamentCode + "/" + j.Player)
		defer unlock()

		better, err := p.store.AnyBetterThan(ctx, j)
		if err != nil {
			return nil, fmt.Errorf("superiority check: %w", err)
		}
		if better {
			return &acceptance.Rejection{Reason: acceptance.InferiorDuplicate, Input: j}, nil
		}
	}

	err := p.store.Insert(ctx, j)
	if errors.Is(err, jump.ErrAlreadyExists) {
		return &acceptance.Rejection{Reason: acceptance.DuplicateSubmission, Input: sub}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to store jump: %w", err)
	}
	return nil, nil
}

func (p *Pipeline) reject(sub acceptance.Submission, rejection *acceptance.Rejection) *acceptance.Rejection {
	p.metrics.IncRejected(string(rejection.Reason))
	if rejection.Cause != nil {
		p.metrics.IncReplayLookupFailures()
		log.Warn("Replay lookup failed", "replayCode", sub.ReplayCode, "error", rejection.Cause)
	}
	log.Info("Jump rejected", "replayCode", sub.ReplayCode, "reason", rejection.Reason)
	return rejection
}

// publish announces the stored jump. Failures are logged and do not undo the
// acceptance.
func (p *Pipeline) publish(j *jump.Jump, candidates []string) {
	event := pubsub.JumpEvent{Jump: *j, Candidates: candidates}
	topic := pubsub.EventJumpAccepted
	if j.TournamentCode == nil {
		p.metrics.IncUnassigned()
		topic = pubsub.EventJumpUnassigned
		log.Warn("Accepted jump matches no single tournament", "replayCode", j.ReplayCode,
			"hill", j.Hill, "date", j.Date.Format(jump.DateLayout), "candidates", candidates)
	}
	if err := p.events.SendMessage(topic, event); err != nil {
		log.Error("Failed to publish jump event", "error", err, "topic", topic, "replayCode", j.ReplayCode)
	}
}

// Get returns the stored jump. Malformed replay codes are reported as not found.
func (p *Pipeline) Get(ctx context.Context, replayCode string) (*jump.Jump, error) {
	if !jump.ValidReplayCode(replayCode) {
		return nil, jump.ErrNotFound
	}
	return p.store.Get(ctx, replayCode)
}

// Preview resolves a replay without submitting it.
func (p *Pipeline) Preview(ctx context.Context, replayCode string) (*jump.Jump, error) {
	if !jump.ValidReplayCode(replayCode) {
		return nil, replay.ErrNotFound
	}
	return p.replays.Resolve(ctx, replayCode, nil)
}

// Delete removes the jump if it exists.
func (p *Pipeline) Delete(ctx context.Context, replayCode string) error {
	if !jump.ValidReplayCode(replayCode) {
		log.Debug("Ignoring delete of malformed replay code", "replayCode", replayCode)
		return nil
	}
	if err := p.store.Delete(ctx, replayCode); err != nil {
		return err
	}
	log.Info("Jump deleted", "replayCode", replayCode)
	return nil
}

// ActiveTournaments returns the tournaments currently accepting jumps.
func (p *Pipeline) ActiveTournaments(ctx context.Context) ([]tournament.Tournament, error) {
	return p.registry.ListActive(ctx, p.now())
}

// Tournament returns the tournament and its accepted jumps.
func (p *Pipeline) Tournament(ctx context.Context, code string) (*TournamentResults, error) {
	t, err := p.registry.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	jumps, err := p.store.ListByTournament(ctx, code)
	if err != nil {
		return nil, err
	}
	return &TournamentResults{Tournament: *t, Jumps: jumps}, nil
}
