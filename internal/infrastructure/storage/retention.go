package storage

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Sweeper deletes objects under prefix that are older than cutoff.
type Sweeper interface {
	DeleteOlderThan(ctx context.Context, prefix string, cutoff time.Time) (int, error)
}

// RetentionSweeper periodically removes rendered quotes older than the
// retention window.
type RetentionSweeper struct {
	store     Sweeper
	retention time.Duration
	timeout   time.Duration
	cron      *cron.Cron
	now       func() time.Time
}

func NewRetentionSweeper(store Sweeper, retention time.Duration) *RetentionSweeper {
	return &RetentionSweeper{
		store:     store,
		retention: retention,
		timeout:   5 * time.Minute,
		cron:      cron.New(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Sweep runs one pass. It is a no-op when retention is not positive.
func (s *RetentionSweeper) Sweep(ctx context.Context) (int, error) {
	if s.retention <= 0 {
		return 0, nil
	}
	cutoff := s.now().Add(-s.retention)
	n, err := s.store.DeleteOlderThan(ctx, QuotesPrefix, cutoff)
	if err != nil {
		log.Printf("[storage][retention] sweep failed deleted=%d err=%v", n, err)
		return n, err
	}
	log.Printf("[storage][retention] sweep done deleted=%d cutoff=%s", n, cutoff.Format(time.RFC3339))
	return n, nil
}

// Start schedules Sweep with a standard cron spec (or a descriptor such as
// "@daily").
func (s *RetentionSweeper) Start(spec string) error {
	if s.retention <= 0 {
		return errors.New("retention disabled")
	}
	if _, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		_, _ = s.Sweep(ctx)
	}); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("[storage][retention] scheduled spec=%q retention=%s", spec, s.retention)
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *RetentionSweeper) Stop() {
	<-s.cron.Stop().Done()
}
