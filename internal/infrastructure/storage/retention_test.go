package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type sweeperStub struct {
	prefix string
	cutoff time.Time
	n      int
	err    error
	calls  int
}

func (s *sweeperStub) DeleteOlderThan(_ context.Context, prefix string, cutoff time.Time) (int, error) {
	s.calls++
	s.prefix = prefix
	s.cutoff = cutoff
	return s.n, s.err
}

func TestRetentionSweeper_Sweep(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("deletes quotes older than the retention window", func(t *testing.T) {
		stub := &sweeperStub{n: 3}
		s := NewRetentionSweeper(stub, 72*time.Hour)
		s.now = func() time.Time { return now }

		n, err := s.Sweep(context.Background())
		require.NoError(t, err)
		require.Equal(t, 3, n)
		require.Equal(t, QuotesPrefix, stub.prefix)
		require.Equal(t, now.Add(-72*time.Hour), stub.cutoff)
	})

	t.Run("zero retention disables the sweep", func(t *testing.T) {
		stub := &sweeperStub{}
		s := NewRetentionSweeper(stub, 0)

		n, err := s.Sweep(context.Background())
		require.NoError(t, err)
		require.Zero(t, n)
		require.Zero(t, stub.calls)
		require.Error(t, s.Start("@daily"))
	})

	t.Run("store errors are returned", func(t *testing.T) {
		stub := &sweeperStub{n: 1, err: errors.New("boom")}
		s := NewRetentionSweeper(stub, time.Hour)

		n, err := s.Sweep(context.Background())
		require.Error(t, err)
		require.Equal(t, 1, n)
	})
}

func TestRetentionSweeper_Start(t *testing.T) {
	t.Run("invalid spec", func(t *testing.T) {
		s := NewRetentionSweeper(&sweeperStub{}, time.Hour)
		require.Error(t, s.Start("not a cron spec"))
	})

	t.Run("valid spec starts and stops", func(t *testing.T) {
		s := NewRetentionSweeper(&sweeperStub{}, time.Hour)
		require.NoError(t, s.Start("@every 1h"))
		s.Stop()
	})
}
