package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/talentx/internal/board"
)

var inviteCmd = &cobra.Command{
	Use:   "invite JOB_ID TALENT_ID",
	Short: "Invite a talent to apply to a job",
	Args:  cobra.ExactArgs(2),
	RunE: withSession(func(ctx context.Context, cmd *cobra.Command, s *session, args []string) error {
		name, _ := cmd.Flags().GetString("talent-name")

		res, err := s.board.CreateInvitation(ctx, board.InviteRequest{
			JobID:      args[0],
			TalentID:   args[1],
			TalentName: name,
		})
		if err != nil {
			return fmt.Errorf("inviting talent: %w", err)
		}

		s.logger.Info("invitation sent",
			zap.String("job_id", args[0]),
			zap.String("talent_id", args[1]),
			zap.Bool("success", res.Success),
			zap.String("reason", string(res.Reason)),
		)
		return printJSON(cmd, res)
	}),
}

var invitationsCmd = &cobra.Command{
	Use:   "invitations",
	Short: "Work with invitations of the current talent",
}

var invitationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List invitations of the current talent",
	Args:  cobra.NoArgs,
	RunE: withSession(func(ctx context.Context, cmd *cobra.Command, s *session, _ []string) error {
		job, _ := cmd.Flags().GetString("job")

		if job != "" {
			status, ok, err := s.board.GetInvitationStatus(ctx, job, s.talent())
			if err != nil {
				return fmt.Errorf("getting invitation status: %w", err)
			}
			if !ok {
				return printJSON(cmd, map[string]any{"jobId": job, "invited": false})
			}
			return printJSON(cmd, map[string]any{"jobId": job, "invited": true, "status": status})
		}

		invs, err := s.board.GetInvitationsForTalent(ctx, s.talent())
		if err != nil {
			return fmt.Errorf("listing invitations: %w", err)
		}
		return printJSON(cmd, invs)
	}),
}

var invitationsRespondCmd = &cobra.Command{
	Use:   "respond [INVITATION_ID] [accepted|declined]",
	Short: "Accept or decline an invitation; missing arguments are asked for",
	Args:  cobra.MaximumNArgs(2),
	RunE: withSession(func(ctx context.Context, cmd *cobra.Command, s *session, args []string) error {
		var id, status string
		if len(args) > 0 {
			id = args[0]
		}
		if len(args) > 1 {
			status = args[1]
		}

		if id == "" {
			picked, err := pickPendingInvitation(ctx, s)
			if err != nil {
				return err
			}
			id = picked
		}

		if status == "" {
			statusPrompt := promptui.Select{
				Label: "Respond to invitation " + id,
				Items: []string{string(board.StatusAccepted), string(board.StatusDeclined)},
			}
			_, selected, err := statusPrompt.Run()
			if err != nil {
				return err
			}
			status = selected
		}

		res, err := s.board.RespondToInvitation(ctx, id, board.InvitationStatus(status))
		if err != nil {
			return fmt.Errorf("responding to invitation: %w", err)
		}

		s.logger.Info("invitation response",
			zap.String("invitation_id", id),
			zap.String("status", status),
			zap.Bool("success", res.Success),
			zap.String("reason", string(res.Reason)),
		)
		return printJSON(cmd, res)
	}),
}

func pickPendingInvitation(ctx context.Context, s *session) (string, error) {
	invs, err := s.board.GetInvitationsForTalent(ctx, s.talent())
	if err != nil {
		return "", fmt.Errorf("listing invitations: %w", err)
	}

	ids := make([]string, 0, len(invs))
	labels := make([]string, 0, len(invs))
	for _, inv := range invs {
		if inv.Status != board.StatusPending {
			continue
		}
		ids = append(ids, inv.ID)
		labels = append(labels, fmt.Sprintf("%s %s / %s / until %s", inv.ID, inv.JobTitle, inv.Company, inv.Deadline))
	}

	if len(ids) == 0 {
		return "", errors.New("there are no pending invitations")
	}

	invitationPrompt := promptui.Select{
		Label: "Choose an invitation and press ENTER",
		Items: labels,
	}
	idx, _, err := invitationPrompt.Run()
	if err != nil {
		return "", err
	}

	return ids[idx], nil
}

func init() {
	rootCmd.AddCommand(inviteCmd, invitationsCmd)
	invitationsCmd.AddCommand(invitationsListCmd, invitationsRespondCmd)

	inviteCmd.Flags().String("talent-name", "", "name shown on the invitation")
	invitationsListCmd.Flags().String("job", "", "only show the invitation status for this job")
}
