package filtering

import (
	"context"
	"fmt"

	"github.com/spigell/talentx/internal/board"
)

type excludeFileFilter struct {
	switchable

	path string
}

// NewExcludeFile creates a filter that removes jobs contained in exclude files.
func NewExcludeFile(path string) Filter {
	return &excludeFileFilter{
		path: path,
	}
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Validate() error { return nil }

func (f *excludeFileFilter) Apply(_ context.Context, m *board.JobMatches) (*board.JobMatches, Step, error) {
	initial := m.Len()
	if f.path == "" {
		return m, Step{Initial: initial, Dropped: 0, Left: m.Len()}, nil
	}

	excluded, err := LoadExcludedJobs(f.path)
	if err != nil {
		return m, Step{}, fmt.Errorf("getting excluded jobs from file: %w", err)
	}

	removed := m.Exclude(board.JobIDField, excluded.JobIDs())

	return m, Step{Initial: initial, Dropped: len(removed), Left: m.Len()}, nil
}

func (f *excludeFileFilter) Status() Status {
	s := Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason}
	if f.path != "" {
		s.Details = map[string]string{"path": f.path}
	}
	return s
}
