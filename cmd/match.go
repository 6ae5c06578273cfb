package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/talentx/internal/board"
	"github.com/spigell/talentx/internal/filtering"
)

const (
	PromptBack                = "back"
	PromptAppendToExcludeFile = "Append all jobs to exclude file"

	excludeReasonManual = "manual"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank talents for a job or jobs for the current talent",
}

var matchTalentsCmd = &cobra.Command{
	Use:   "talents JOB_ID",
	Short: "Rank every talent for a job, best first",
	Args:  cobra.ExactArgs(1),
	RunE: withSession(func(ctx context.Context, cmd *cobra.Command, s *session, args []string) error {
		matches, err := s.board.GetTopMatchedTalentsForJob(ctx, args[0])
		if err != nil {
			return fmt.Errorf("matching talents: %w", err)
		}
		return printJSON(cmd, matches)
	}),
}

var matchJobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Show the job feed of the current talent after filters",
	Args:  cobra.NoArgs,
	RunE: withSession(func(ctx context.Context, cmd *cobra.Command, s *session, _ []string) error {
		feed, err := jobFeed(ctx, cmd, s)
		if err != nil {
			return err
		}

		if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
			return manualApply(ctx, s, feed)
		}
		return printJSON(cmd, feed.Items)
	}),
}

var jobsReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Group the filtered job feed by company",
	Args:  cobra.NoArgs,
	RunE: withSession(func(ctx context.Context, cmd *cobra.Command, s *session, _ []string) error {
		feed, err := jobFeed(ctx, cmd, s)
		if err != nil {
			return err
		}

		s.logger.Info("job feed report", zap.Int("jobs count", feed.Len()))
		return printJSON(cmd, feed.ReportByCompany())
	}),
}

// jobFeed ranks the jobs for the current talent and runs the feed filters over them.
func jobFeed(ctx context.Context, cmd *cobra.Command, s *session) (*board.JobMatches, error) {
	matches, err := s.board.GetMatchedJobsForTalent(ctx, s.talent())
	if err != nil {
		return nil, fmt.Errorf("matching jobs: %w", err)
	}

	feed := &board.JobMatches{Items: matches}
	s.logger.Info("getting matched jobs", zap.Int("count", feed.Len()))

	if all, _ := cmd.Flags().GetBool("all"); all {
		return feed, nil
	}

	steps := prepareFilters(cmd, s)
	skip, _ := cmd.Flags().GetStringSlice("skip-filter")
	if err := skipFilters(steps, skip); err != nil {
		return nil, err
	}
	for _, status := range filtering.Describe(steps) {
		s.logger.Debug("filter status",
			zap.String("name", status.Name),
			zap.Bool("enabled", status.Enabled),
			zap.String("reason", status.Reason),
			zap.Any("details", status.Details),
		)
	}

	filtered, err := filtering.Run(ctx, s.logger.Named("filtering"), steps, feed)
	if err != nil {
		return nil, fmt.Errorf("filtering failed: %w", err)
	}

	return filtered, nil
}

func prepareFilters(cmd *cobra.Command, s *session) []filtering.Filter {
	ignoreApplied, _ := cmd.Flags().GetBool("do-not-exclude-applied")

	minScore := s.config.Feed.MinScore
	if cmd.Flags().Changed("min-score") {
		minScore, _ = cmd.Flags().GetInt("min-score")
	}

	return []filtering.Filter{
		filtering.NewAppliedHistory(
			&filtering.AppliedHistoryConfig{Ignore: ignoreApplied},
			&filtering.AppliedHistoryDeps{Board: s.board, TalentID: s.talent(), Logger: s.logger},
		),
		filtering.NewExcludedEmployers(s.config.Feed.Exclude.Employers),
		filtering.NewMinScore(minScore),
		filtering.NewExpired(time.Now),
		filtering.NewExcludeFile(s.config.ExcludeFile),
	}
}

// skipFilters disables the named steps. Unknown names are an error.
func skipFilters(steps []filtering.Filter, names []string) error {
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		known := false
		for _, step := range steps {
			if step.Name() == name {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("unknown filter %q", name)
		}

		filtering.DisableByName(steps, name, "skipped with --skip-filter")
	}
	return nil
}

// manualApply lets the talent pick jobs from the feed one by one.
func manualApply(ctx context.Context, s *session, feed *board.JobMatches) error {
	for feed.Len() > 0 {
		items := make([]string, 0, feed.Len()+2)
		for _, match := range feed.Items {
			items = append(items, fmt.Sprintf("%s %s / %s / score %d",
				match.JobID, match.Job.Title, match.Job.Company, match.Score,
			))
		}

		excludeFile := s.config.ExcludeFile
		if excludeFile != "" {
			items = append(items, PromptAppendToExcludeFile)
		}

		jobPrompt := promptui.Select{
			Label: "Choose a job to apply and press ENTER",
			Items: append(items, PromptBack),
		}

		_, selected, err := jobPrompt.Run()
		if err != nil {
			return err
		}

		switch selected {
		case PromptBack:
			return nil
		case PromptAppendToExcludeFile:
			if err := filtering.AppendToFile(excludeFile, filtering.ToExcluded(feed, excludeReasonManual, time.Now())); err != nil {
				return fmt.Errorf("appending to exclude file: %w", err)
			}

			s.logger.Info("appended to exclude file", zap.String("filename", excludeFile), zap.Int("count", feed.Len()))
			feed.Items = nil
		default:
			jobID := strings.Split(selected, " ")[0]

			if _, err := applyToJob(ctx, s, jobID); err != nil {
				return err
			}

			feed.Exclude(board.JobIDField, []string{jobID})
		}
	}

	s.logger.Info("exiting", zap.String("reason", "no jobs left in the feed"))
	return nil
}

func init() {
	rootCmd.AddCommand(matchCmd)
	matchCmd.AddCommand(matchTalentsCmd, matchJobsCmd)
	jobsCmd.AddCommand(jobsReportCmd)

	for _, c := range []*cobra.Command{matchJobsCmd, jobsReportCmd} {
		c.Flags().BoolP("do-not-exclude-applied", "f", false, "do not exclude jobs if already applied")
		c.Flags().Int("min-score", 0, "drop matches scored below this value (overrides feed.min-score)")
		c.Flags().Bool("all", false, "skip every filter")
		c.Flags().StringSlice("skip-filter", nil, "disable filters by name (applied_history, employers, min_score, expired, exclude_file)")
	}
	matchJobsCmd.Flags().BoolP("interactive", "i", false, "pick jobs to apply to from the feed")
}
