package filtering

import (
	"context"
	"strings"

	"github.com/spigell/talentx/internal/board"
)

type employersFilter struct {
	switchable

	employers []string
}

// NewExcludedEmployers creates a filter that removes jobs by employers configured in the config.
func NewExcludedEmployers(employers []string) Filter {
	return &employersFilter{
		employers: employers,
	}
}

func (f *employersFilter) Name() string { return "employers" }

func (f *employersFilter) Validate() error { return nil }

func (f *employersFilter) Apply(_ context.Context, m *board.JobMatches) (*board.JobMatches, Step, error) {
	initial := m.Len()
	if len(f.employers) == 0 {
		return m, Step{Initial: initial, Dropped: 0, Left: m.Len()}, nil
	}

	excluded := m.Exclude(board.JobEmployerIDField, f.employers)

	return m, Step{Initial: initial, Dropped: len(excluded), Left: m.Len()}, nil
}

func (f *employersFilter) Status() Status {
	s := Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason}
	if len(f.employers) > 0 {
		s.Details = map[string]string{"employers": strings.Join(f.employers, ",")}
	}
	return s
}
