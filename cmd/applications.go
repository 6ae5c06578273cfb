package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/talentx/internal/board"
	"github.com/spigell/talentx/internal/logger"
)

var applyCmd = &cobra.Command{
	Use:   "apply JOB_ID",
	Short: "Apply to a job as the current talent",
	Args:  cobra.ExactArgs(1),
	RunE: withSession(func(ctx context.Context, cmd *cobra.Command, s *session, args []string) error {
		res, err := applyToJob(ctx, s, args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd, res)
	}),
}

var applicationsCmd = &cobra.Command{
	Use:   "applications",
	Short: "List applications of the current talent, of a job, or to all jobs of the current employer",
	Args:  cobra.NoArgs,
	RunE: withSession(func(ctx context.Context, cmd *cobra.Command, s *session, _ []string) error {
		jobID, _ := cmd.Flags().GetString("job")
		received, _ := cmd.Flags().GetBool("received")

		var (
			apps []board.Application
			err  error
		)
		switch {
		case jobID != "":
			apps, err = s.board.GetApplicationsByJob(ctx, jobID)
		case received:
			apps, err = s.board.GetApplicationsByEmployer(ctx, s.config.Identity.ID)
		default:
			apps, err = s.board.GetApplicationsForTalent(ctx, s.talent())
		}
		if err != nil {
			return fmt.Errorf("listing applications: %w", err)
		}

		return printJSON(cmd, apps)
	}),
}

func applyToJob(ctx context.Context, s *session, jobID string) (board.Result, error) {
	res, err := s.board.ApplyToJob(ctx, board.ApplyRequest{
		JobID:      jobID,
		TalentID:   s.talent(),
		TalentName: s.config.Identity.Name,
		Source:     board.SourceManual,
	})
	if err != nil {
		return res, fmt.Errorf("applying to job %s: %w", jobID, err)
	}

	log := s.logger.With(logger.BoardFields(jobID, s.talent())...)
	if res.Success {
		log.Info("successfully applied to job")
	} else {
		log.Info("application was not created", zap.String("reason", string(res.Reason)))
	}

	return res, nil
}

func init() {
	rootCmd.AddCommand(applyCmd, applicationsCmd)

	applicationsCmd.Flags().String("job", "", "list the applicants of this job")
	applicationsCmd.Flags().BoolP("received", "r", false, "list applications to every job of the current employer")
}
