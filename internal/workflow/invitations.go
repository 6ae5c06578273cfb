package workflow

import (
	"go.uber.org/zap"

	"github.com/spigell/talentx/internal/board"
	"github.com/spigell/talentx/internal/logger"
)

// InviteTalent creates a pending invitation. Company, title and deadline are copied
// from the request; empty ones are taken from the job as it is right now. They are
// never refreshed afterwards.
func (e *Engine) InviteTalent(req board.InviteRequest) board.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	res := e.inviteLocked(req)
	e.record(OperationInvite, res.Outcome())

	return res
}

func (e *Engine) inviteLocked(req board.InviteRequest) board.Result {
	log := e.logger.With(logger.BoardFields(req.JobID, req.TalentID)...)

	invitations := e.store.ListInvitations()
	for i := range invitations {
		if invitations[i].IsPair(req.JobID, req.TalentID) {
			log.Debug("invitation already exists", zap.String("invitation_id", invitations[i].ID))
			return board.Failed(board.ReasonAlreadyInvited)
		}
	}

	jobs := &board.Jobs{Items: e.store.ListJobs()}
	job := jobs.FindByID(req.JobID)
	if job == nil {
		log.Debug("job not found")
		return board.Failed(board.ReasonJobNotFound)
	}

	inv := board.Invitation{
		ID:         e.newID("inv"),
		JobID:      req.JobID,
		TalentID:   req.TalentID,
		TalentName: firstNonEmpty(req.TalentName, board.DefaultTalentName),
		Company:    firstNonEmpty(req.Company, job.Company),
		JobTitle:   firstNonEmpty(req.JobTitle, job.Title),
		Deadline:   firstNonEmpty(req.Deadline, job.Deadline),
		Status:     board.StatusPending,
	}

	e.store.ReplaceInvitations(append(invitations, inv))

	log.Info("invitation created", zap.String("invitation_id", inv.ID))

	return board.Succeeded()
}

// RespondToInvitation moves a pending invitation to accepted or declined. Accepting
// also applies the talent to the job with the invitation source; an existing
// application does not make the response fail.
func (e *Engine) RespondToInvitation(invitationID string, status board.InvitationStatus) board.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	res := e.respondLocked(invitationID, status)
	e.record(OperationRespond, res.Outcome())

	return res
}

func (e *Engine) respondLocked(invitationID string, status board.InvitationStatus) board.Result {
	log := e.logger.With(zap.String("invitation_id", invitationID), zap.String("status", string(status)))

	if !status.IsResponse() {
		log.Debug("invalid invitation response")
		return board.Failed(board.ReasonInvalidStatus)
	}

	invitations := e.store.ListInvitations()
	idx := -1
	for i := range invitations {
		if invitations[i].ID == invitationID {
			idx = i
			break
		}
	}
	if idx < 0 {
		log.Debug("invitation not found")
		return board.Failed(board.ReasonInvitationNotFound)
	}

	inv := invitations[idx]
	if inv.Status != board.StatusPending {
		log.Debug("invitation already answered", zap.String("current_status", string(inv.Status)))
		return board.Failed(board.ReasonInvitationNotPending)
	}

	invitations[idx].Status = status
	e.store.ReplaceInvitations(invitations)

	log.Info("invitation answered", logger.BoardFields(inv.JobID, inv.TalentID)...)

	if status == board.StatusAccepted {
		applied := e.applyLocked(board.ApplyRequest{
			JobID:      inv.JobID,
			TalentID:   inv.TalentID,
			TalentName: inv.TalentName,
			Source:     board.SourceInvitation,
		})
		e.record(OperationApply, applied.Outcome())

		if !applied.Success && !applied.AlreadyApplied {
			log.Warn("accepted invitation produced no application", zap.String("reason", string(applied.Reason)))
		}
	}

	return board.Succeeded()
}

func (e *Engine) GetInvitationsForTalent(talentID string) []board.Invitation {
	found := make([]board.Invitation, 0)
	for _, inv := range e.store.ListInvitations() {
		if inv.TalentID == talentID {
			found = append(found, inv)
		}
	}
	return found
}

// GetInvitationStatus returns the status of the invitation for the pair, and false
// when there is none.
func (e *Engine) GetInvitationStatus(jobID, talentID string) (board.InvitationStatus, bool) {
	for _, inv := range e.store.ListInvitations() {
		if inv.IsPair(jobID, talentID) {
			return inv.Status, true
		}
	}
	return "", false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
