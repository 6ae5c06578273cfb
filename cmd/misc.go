package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/talentx/internal/board"
)

var talentsCmd = &cobra.Command{
	Use:   "talents",
	Short: "List every talent",
	Args:  cobra.NoArgs,
	RunE: withSession(func(ctx context.Context, cmd *cobra.Command, s *session, _ []string) error {
		talents, err := s.board.GetAllTalents(ctx)
		if err != nil {
			return fmt.Errorf("listing talents: %w", err)
		}
		return printJSON(cmd, talents)
	}),
}

var describeCmd = &cobra.Command{
	Use:   "describe TITLE",
	Short: "Generate a job description",
	Args:  cobra.ExactArgs(1),
	RunE: withSession(func(ctx context.Context, cmd *cobra.Command, s *session, args []string) error {
		stack, _ := cmd.Flags().GetString("tech-stack")
		deadline, _ := cmd.Flags().GetString("deadline")

		text, err := s.board.GenerateJobDescription(ctx, board.DescriptionRequest{
			Title:     args[0],
			TechStack: board.ParseTechStack(stack),
			Deadline:  deadline,
		})
		if err != nil {
			return fmt.Errorf("generating description: %w", err)
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
		return err
	}),
}

var onboardCmd = &cobra.Command{
	Use:   "onboard EMAIL",
	Short: "Register a user as talent or employer",
	Args:  cobra.ExactArgs(1),
	RunE: withSession(func(ctx context.Context, cmd *cobra.Command, s *session, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		role, _ := cmd.Flags().GetString("role")

		user, err := s.board.Onboard(ctx, board.OnboardRequest{Name: name, Email: args[0], Role: role})
		if err != nil {
			return fmt.Errorf("onboarding: %w", err)
		}

		s.logger.Info("user onboarded", zap.String("user_id", user.ID), zap.String("role", user.Role))
		return printJSON(cmd, user)
	}),
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Recompute application counters from the stored applications",
	Args:  cobra.NoArgs,
	RunE: withSession(func(ctx context.Context, cmd *cobra.Command, s *session, _ []string) error {
		fixes, err := s.board.Reconcile(ctx)
		if err != nil {
			return err
		}

		s.logger.Info("reconcile finished", zap.Int("repaired", len(fixes)))
		return printJSON(cmd, fixes)
	}),
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the selected backend",
	Args:  cobra.NoArgs,
	RunE: withSession(func(ctx context.Context, cmd *cobra.Command, s *session, _ []string) error {
		health, err := s.board.Health(ctx)
		if err != nil {
			return fmt.Errorf("checking health: %w", err)
		}
		return printJSON(cmd, health)
	}),
}

func init() {
	rootCmd.AddCommand(talentsCmd, describeCmd, onboardCmd, reconcileCmd, healthCmd)

	describeCmd.Flags().String("tech-stack", "", "comma separated list of technologies")
	describeCmd.Flags().String("deadline", "", "application deadline, YYYY-MM-DD")

	onboardCmd.Flags().String("name", "", "display name (defaults to the email)")
	onboardCmd.Flags().String("role", board.RoleTalent, "talent or employer")
}
