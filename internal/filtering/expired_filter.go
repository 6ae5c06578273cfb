package filtering

import (
	"context"
	"time"

	"github.com/spigell/talentx/internal/board"
)

type expiredFilter struct {
	switchable

	now func() time.Time
}

// NewExpired creates a filter that removes jobs whose deadline is already over.
// Jobs without a readable deadline stay.
func NewExpired(now func() time.Time) Filter {
	if now == nil {
		now = time.Now
	}
	return &expiredFilter{now: now}
}

func (f *expiredFilter) Name() string { return "expired" }

func (f *expiredFilter) Validate() error { return nil }

func (f *expiredFilter) Apply(_ context.Context, m *board.JobMatches) (*board.JobMatches, Step, error) {
	initial := m.Len()
	today := f.now().Format(board.DateLayout)

	excluded := m.Drop(func(match board.JobMatch) bool {
		deadline := board.ShortDate(match.Job.Deadline)
		if _, err := time.Parse(board.DateLayout, deadline); err != nil {
			return false
		}
		return deadline < today
	})

	return m, Step{Initial: initial, Dropped: len(excluded), Left: m.Len()}, nil
}
