package filtering

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spigell/talentx/internal/board"
)

type minScoreFilter struct {
	enabled bool
	reason  string
	min     int
}

// NewMinScore creates a filter that removes matches scored below minScore. A zero minimum
// disables it.
func NewMinScore(minScore int) Filter {
	return &minScoreFilter{
		enabled: minScore > 0,
		min:     minScore,
	}
}

func (f *minScoreFilter) Name() string { return "min_score" }

func (f *minScoreFilter) Disable(reason string) {
	f.enabled = false
	f.reason = reason
}

func (f *minScoreFilter) IsEnabled() bool { return f.enabled }

func (f *minScoreFilter) Validate() error {
	if f.min > 100 {
		return fmt.Errorf("minimum score %d is above 100", f.min)
	}
	return nil
}

func (f *minScoreFilter) Apply(_ context.Context, m *board.JobMatches) (*board.JobMatches, Step, error) {
	initial := m.Len()
	excluded := m.Drop(func(match board.JobMatch) bool {
		return match.Score < f.min
	})

	return m, Step{Initial: initial, Dropped: len(excluded), Left: m.Len()}, nil
}

func (f *minScoreFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: f.enabled,
		Reason:  f.reason,
		Details: map[string]string{"min": strconv.Itoa(f.min)},
	}
}
