package auditlog

import (
	"context"
	"time"

	"github.com/irmsia-data/anomaly.report/internal/monitoring"
)

// recordTimeout bounds a single fire-and-forget write.
const recordTimeout = 5 * time.Second

// Recorder is the subset of Store the notifier needs.
type Recorder interface {
	Record(ctx context.Context, e Entry) error
}

// Notifier posts audit entries without ever failing the caller. Failures
// are logged and dropped.
type Notifier struct {
	rec Recorder
}

// NewNotifier wraps a recorder. A nil recorder yields a notifier that
// drops everything silently, so callers need no nil checks.
func NewNotifier(rec Recorder) *Notifier {
	return &Notifier{rec: rec}
}

// Notify records the entry asynchronously. The write carries its own
// timeout so a stuck store cannot hold the caller's goroutine forever.
func (n *Notifier) Notify(e Entry) {
	if n == nil || n.rec == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		if err := n.rec.Record(ctx, e); err != nil {
			monitoring.Logf("[Audit] record failed: %v", err)
		}
	}()
}
