// README: In-memory alert log; newest-first, batch-atomic publishes.
package alert

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"careride/internal/types"
)

// DefaultCap bounds the log when no explicit cap is configured. The original
// prototype grew without bound; a retention cap keeps long sessions sane.
const DefaultCap = 500

type Log struct {
	mu      sync.Mutex
	limit   int
	now     func() time.Time
	entries []Alert
}

func NewLog(limit int) *Log {
	if limit <= 0 {
		limit = DefaultCap
	}
	return &Log{limit: limit, now: time.Now}
}

// Publish stamps the drafts with ids and a timestamp and prepends them as one
// batch. The whole batch becomes visible in a single critical section, so a
// reader never observes a primary alert without its companions. Drafts keep
// their given order at the top of the log. Returns the created alerts.
func (l *Log) Publish(drafts ...Draft) []Alert {
	if len(drafts) == 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	created := make([]Alert, len(drafts))
	for i, d := range drafts {
		created[i] = Alert{
			ID:        types.ID("a_" + uuid.NewString()),
			Kind:      d.Kind,
			Title:     d.Title,
			Message:   d.Message,
			CreatedAt: now,
			Location:  d.Location,
			Hospital:  d.Hospital,
		}
	}
	l.entries = append(created[:len(created):len(created)], l.entries...)
	if len(l.entries) > l.limit {
		l.entries = l.entries[:l.limit]
	}
	return created
}

// Resolve marks the alert as handled. Unknown or already-resolved ids are a
// no-op: resolving is fire-and-forget from the UI.
func (l *Log) Resolve(id types.ID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.entries {
		if l.entries[i].ID == id {
			l.entries[i].Resolved = true
			return
		}
	}
}

// List returns a newest-first snapshot of the log.
func (l *Log) List() []Alert {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Alert, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// ActiveSOS returns the newest unresolved sos-kind alert, if any. The
// guardian view uses it for its emergency banner.
func (l *Log) ActiveSOS() (Alert, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, a := range l.entries {
		if a.Kind == KindSOS && !a.Resolved {
			return a, true
		}
	}
	return Alert{}, false
}
