package filtering

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spigell/talentx/internal/board"
)

const forceFlagSetMsg = "force flag is set"

// ApplicationLister is the part of the board needed to find earlier applications.
type ApplicationLister interface {
	GetApplicationsForTalent(ctx context.Context, talentID string) ([]board.Application, error)
}

type appliedHistoryFilter struct {
	switchable

	deps   *AppliedHistoryDeps
	ignore bool
}

type AppliedHistoryDeps struct {
	Board    ApplicationLister
	TalentID string
	Logger   *zap.Logger
}

type AppliedHistoryConfig struct {
	Ignore bool
}

// NewAppliedHistory creates a filter that removes jobs the talent already applied to.
func NewAppliedHistory(cfg *AppliedHistoryConfig, deps *AppliedHistoryDeps) Filter {
	ignore := false
	if cfg != nil {
		ignore = cfg.Ignore
	}

	return &appliedHistoryFilter{
		deps:   deps,
		ignore: ignore,
	}
}

func (f *appliedHistoryFilter) Name() string { return "applied_history" }

func (f *appliedHistoryFilter) Validate() error {
	if f.deps == nil || f.deps.Board == nil {
		return fmt.Errorf("board is required")
	}

	if f.deps.Logger == nil {
		return fmt.Errorf("logger is required")
	}

	return nil
}

func (f *appliedHistoryFilter) Apply(ctx context.Context, m *board.JobMatches) (*board.JobMatches, Step, error) {
	initial := m.Len()
	if f.ignore {
		f.deps.Logger.Info("ignoring already applied jobs", zap.String("reason", forceFlagSetMsg))
		return m, Step{Initial: initial, Dropped: 0, Left: m.Len()}, nil
	}

	apps, err := f.deps.Board.GetApplicationsForTalent(ctx, f.deps.TalentID)
	if err != nil {
		return m, Step{}, fmt.Errorf("get my applications: %w", err)
	}

	applied := make([]string, 0, len(apps))
	for _, app := range apps {
		applied = append(applied, app.JobID)
	}

	excluded := m.Exclude(board.JobIDField, applied)
	if len(excluded) > 0 {
		f.deps.Logger.Info("excluding jobs based on my applications",
			zap.Strings("excluded_jobs", excluded),
			zap.Int("jobs_left", m.Len()),
		)
	}

	return m, Step{Initial: initial, Dropped: len(excluded), Left: m.Len()}, nil
}

func (f *appliedHistoryFilter) Status() Status {
	s := Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason}
	if f.ignore && s.Enabled {
		s.Reason = forceFlagSetMsg
	}
	return s
}
