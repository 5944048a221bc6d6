package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLocalStore_Save(t *testing.T) {
	t.Run("writes the object and returns its public url", func(t *testing.T) {
		dir := t.TempDir()
		s, err := NewLocalStore(dir, "")
		require.NoError(t, err)

		a, err := s.Save(context.Background(), "quotes/q1/living-room-1-abcd1234.pdf", []byte("%PDF"), "application/pdf")
		require.NoError(t, err)
		require.Equal(t, "/files/quotes/q1/living-room-1-abcd1234.pdf", a.URL)
		require.Equal(t, "quotes/q1/living-room-1-abcd1234.pdf", a.ObjectName)
		require.Equal(t, "application/pdf", a.MimeType)
		require.EqualValues(t, 4, a.SizeBytes)

		got, err := os.ReadFile(filepath.Join(dir, "quotes", "q1", "living-room-1-abcd1234.pdf"))
		require.NoError(t, err)
		require.Equal(t, "%PDF", string(got))
	})

	t.Run("never overwrites an existing object", func(t *testing.T) {
		s, err := NewLocalStore(t.TempDir(), "https://cdn.example.com/")
		require.NoError(t, err)

		_, err = s.Save(context.Background(), "quotes/q1/a.pdf", []byte("one"), "application/pdf")
		require.NoError(t, err)
		_, err = s.Save(context.Background(), "quotes/q1/a.pdf", []byte("two"), "application/pdf")
		require.Error(t, err)
	})

	t.Run("rejects names escaping the root", func(t *testing.T) {
		s, err := NewLocalStore(t.TempDir(), "")
		require.NoError(t, err)

		_, err = s.Save(context.Background(), "../outside.pdf", []byte("x"), "application/pdf")
		require.ErrorIs(t, err, ErrInvalidObjectName)
	})

	t.Run("requires a directory", func(t *testing.T) {
		_, err := NewLocalStore("", "")
		require.Error(t, err)
	})
}

func TestLocalStore_DeleteOlderThan(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStore(dir, "")
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.Save(ctx, "quotes/q1/old.pdf", []byte("old"), "application/pdf")
	require.NoError(t, err)
	_, err = s.Save(ctx, "quotes/q2/new.pdf", []byte("new"), "application/pdf")
	require.NoError(t, err)
	_, err = s.Save(ctx, "other/keep.pdf", []byte("keep"), "application/pdf")
	require.NoError(t, err)

	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "quotes", "q1", "old.pdf"), past, past))
	require.NoError(t, os.Chtimes(filepath.Join(dir, "other", "keep.pdf"), past, past))

	n, err := s.DeleteOlderThan(ctx, QuotesPrefix, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	require.Equal(t, 1, n)

	_, err = os.Stat(filepath.Join(dir, "quotes", "q1", "old.pdf"))
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "quotes", "q2", "new.pdf"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "other", "keep.pdf"))
	require.NoError(t, err)

	t.Run("missing prefix is not an error", func(t *testing.T) {
		n, err := s.DeleteOlderThan(ctx, "nothing-here/", time.Now())
		require.NoError(t, err)
		require.Zero(t, n)
	})
}
