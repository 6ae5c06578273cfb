package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/talentx/internal/board"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Browse and create jobs",
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs, optionally filtered by title or company",
	Args:  cobra.NoArgs,
	RunE: withSession(func(ctx context.Context, cmd *cobra.Command, s *session, _ []string) error {
		search, _ := cmd.Flags().GetString("search")

		jobs, err := s.board.GetJobs(ctx, search)
		if err != nil {
			return fmt.Errorf("listing jobs: %w", err)
		}

		s.logger.Info("listing jobs", zap.String("search", search), zap.Int("count", len(jobs)))
		return printJSON(cmd, jobs)
	}),
}

var jobsShowCmd = &cobra.Command{
	Use:   "show JOB_ID",
	Short: "Show one job",
	Args:  cobra.ExactArgs(1),
	RunE: withSession(func(ctx context.Context, cmd *cobra.Command, s *session, args []string) error {
		job, err := s.board.GetJobByID(ctx, args[0])
		if err != nil {
			return fmt.Errorf("getting job: %w", err)
		}
		if job == nil {
			return fmt.Errorf("there is no such job id %s", args[0])
		}
		return printJSON(cmd, job)
	}),
}

var jobsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Post a new job as the current employer",
	Args:  cobra.NoArgs,
	RunE: withSession(func(ctx context.Context, cmd *cobra.Command, s *session, _ []string) error {
		title, _ := cmd.Flags().GetString("title")
		company, _ := cmd.Flags().GetString("company")
		stack, _ := cmd.Flags().GetString("tech-stack")
		deadline, _ := cmd.Flags().GetString("deadline")
		description, _ := cmd.Flags().GetString("description")
		generate, _ := cmd.Flags().GetBool("generate-description")

		techStack := board.ParseTechStack(stack)

		if description == "" && generate {
			text, err := s.board.GenerateJobDescription(ctx, board.DescriptionRequest{
				Title:     title,
				TechStack: techStack,
				Deadline:  deadline,
			})
			if err != nil {
				return fmt.Errorf("generating description: %w", err)
			}
			description = text
		}

		job, err := s.board.CreateJob(ctx, board.JobDraft{
			EmployerID:  s.config.Identity.ID,
			Title:       title,
			Company:     company,
			Description: description,
			TechStack:   techStack,
			Deadline:    deadline,
		})
		if err != nil {
			return fmt.Errorf("creating job: %w", err)
		}

		s.logger.Info("job posted", zap.String("job_id", job.ID))
		return printJSON(cmd, job)
	}),
}

var jobsMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List jobs posted by the current employer",
	Args:  cobra.NoArgs,
	RunE: withSession(func(ctx context.Context, cmd *cobra.Command, s *session, _ []string) error {
		jobs, err := s.board.GetJobsByEmployer(ctx, s.config.Identity.ID)
		if err != nil {
			return fmt.Errorf("listing my jobs: %w", err)
		}
		return printJSON(cmd, jobs)
	}),
}

func init() {
	rootCmd.AddCommand(jobsCmd)
	jobsCmd.AddCommand(jobsListCmd, jobsShowCmd, jobsCreateCmd, jobsMineCmd)

	jobsListCmd.Flags().StringP("search", "s", "", "case-insensitive text to look for in title or company")

	jobsCreateCmd.Flags().StringP("title", "t", "", "job title")
	jobsCreateCmd.Flags().StringP("company", "c", "", "company name")
	jobsCreateCmd.Flags().String("tech-stack", "", "comma separated list of technologies")
	jobsCreateCmd.Flags().String("deadline", "", "application deadline, YYYY-MM-DD")
	jobsCreateCmd.Flags().String("description", "", "job description")
	jobsCreateCmd.Flags().BoolP("generate-description", "g", false, "generate the description when it is not given")
}
