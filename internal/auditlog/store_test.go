package auditlog

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreRecordAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		err := s.Record(ctx, Entry{
			ImageID: "img-" + string(rune('a'+i)),
			UserID:  "operator",
			Action:  "diagnosis_completed",
			At:      base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	entries, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	require.Equal(t, "img-c", entries[0].ImageID)
	require.Equal(t, "img-b", entries[1].ImageID)
	require.Equal(t, "diagnosis_completed", entries[0].Action)
}

func TestStoreRecordFillsTimestamp(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, Entry{ImageID: "x", UserID: "u", Action: "a"}))

	entries, err := s.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.False(t, entries[0].At.IsZero())
}

func TestStoreRecentEmpty(t *testing.T) {
	s := openTestStore(t)
	entries, err := s.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestOpenIdempotentMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Record(context.Background(), Entry{ImageID: "1", UserID: "u", Action: "a"}))
	require.NoError(t, s1.Close())

	// Reopening an already-migrated database must succeed and keep data.
	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	entries, err := s2.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

// syncRecorder captures notifications for the notifier tests.
type syncRecorder struct {
	mu      sync.Mutex
	entries []Entry
	err     error
	done    chan struct{}
}

func (r *syncRecorder) Record(ctx context.Context, e Entry) error {
	r.mu.Lock()
	r.entries = append(r.entries, e)
	r.mu.Unlock()
	if r.done != nil {
		close(r.done)
	}
	return r.err
}

func TestNotifierDelivers(t *testing.T) {
	rec := &syncRecorder{done: make(chan struct{})}
	n := NewNotifier(rec)

	n.Notify(Entry{ImageID: "img", UserID: "u", Action: "diagnosis_completed"})

	select {
	case <-rec.done:
	case <-time.After(2 * time.Second):
		t.Fatal("notification never delivered")
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Len(t, rec.entries, 1)
	require.Equal(t, "img", rec.entries[0].ImageID)
}

func TestNotifierSwallowsFailure(t *testing.T) {
	rec := &syncRecorder{err: errors.New("disk full"), done: make(chan struct{})}
	n := NewNotifier(rec)

	// Must not panic or propagate.
	n.Notify(Entry{ImageID: "img", UserID: "u", Action: "a"})
	<-rec.done
}

func TestNotifierNilRecorder(t *testing.T) {
	var n *Notifier
	n.Notify(Entry{}) // nil notifier is a no-op

	NewNotifier(nil).Notify(Entry{}) // nil recorder likewise
}
