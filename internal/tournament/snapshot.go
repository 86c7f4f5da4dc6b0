package tournament

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-co-op/gocron/v2"
)

var _ Registry = (*Snapshot)(nil)

// NewSnapshot creates a Snapshot over source. It holds no data until the first
// Refresh, which ListActive triggers on demand.
func NewSnapshot(source Store, metrics snapshotMetrics) *Snapshot {
	return &Snapshot{
		source:  source,
		metrics: metrics,
		now:     time.Now,
	}
}

// Refresh reloads every unfinished tournament from the source.
func (s *Snapshot) Refresh(ctx context.Context) error {
	now := s.now()
	tournaments, err := s.source.ListUnfinished(ctx, now)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.upcoming = tournaments
	s.refreshed = now
	s.mu.Unlock()

	active := 0
	for i := range tournaments {
		if tournaments[i].IsActive(now) {
			active++
		}
	}
	s.metrics.SetActiveTournaments(active)
	log.Debug("Refreshed tournament snapshot", "unfinished", len(tournaments), "active", active)
	return nil
}

// Start refreshes the snapshot every interval until Stop is called.
func (s *Snapshot) Start(interval time.Duration) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			defer cancel()
			if err := s.Refresh(ctx); err != nil {
				log.Error("Failed to refresh tournament snapshot", "error", err)
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		scheduler.Shutdown()
		return err
	}

	s.scheduler = scheduler
	scheduler.Start()
	log.Info("Tournament snapshot refresher started", "interval", interval)
	return nil
}

// Stop halts the periodic refresh.
func (s *Snapshot) Stop() error {
	if s.scheduler == nil {
		return nil
	}
	return s.scheduler.Shutdown()
}

// ListActive filters the cached tournaments by now.
func (s *Snapshot) ListActive(ctx context.Context, now time.Time) ([]Tournament, error) {
	s.mu.RLock()
	loaded := !s.refreshed.IsZero()
	s.mu.RUnlock()
	if !loaded {
		if err := s.Refresh(ctx); err != nil {
			return nil, err
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	active := make([]Tournament, 0, len(s.upcoming))
	for _, t := range s.upcoming {
		if t.IsActive(now) {
			active = append(active, t)
		}
	}
	return active, nil
}

// GetByCode always reads through to the source.
func (s *Snapshot) GetByCode(ctx context.Context, code string) (*Tournament, error) {
	return s.source.GetByCode(ctx, code)
}
