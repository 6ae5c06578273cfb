package facade

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/spigell/talentx/internal/board"
	"github.com/spigell/talentx/internal/talentx"
)

// Remote serves everything from the TalentX service. The service knows the caller
// from the bearer token, so talent ids given by the caller are not sent.
type Remote struct {
	client *talentx.Client
	logger *zap.Logger
}

func NewRemote(client *talentx.Client, logger *zap.Logger) *Remote {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Remote{client: client, logger: logger}
}

func (r *Remote) Name() string { return BackendRemote }

func (r *Remote) Health(ctx context.Context) (map[string]any, error) {
	return r.client.Health(ctx)
}

// GetJobs filters on this side: the service has no search parameter.
func (r *Remote) GetJobs(ctx context.Context, search string) ([]board.Job, error) {
	raw, err := r.client.ListJobs(ctx)
	if err != nil {
		return nil, err
	}

	jobs := &board.Jobs{Items: normalizeJobs(raw)}
	return jobs.Search(search), nil
}

func (r *Remote) GetJobByID(ctx context.Context, id string) (*board.Job, error) {
	raw, err := r.client.GetJob(ctx, id)
	if talentx.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	job := normalizeJob(raw)
	return &job, nil
}

// GetJobsByEmployer lists every job and keeps the employer's. Nothing checks that
// the caller is that employer.
func (r *Remote) GetJobsByEmployer(ctx context.Context, employerID string) ([]board.Job, error) {
	raw, err := r.client.ListJobs(ctx)
	if err != nil {
		return nil, err
	}

	jobs := &board.Jobs{Items: normalizeJobs(raw)}
	return jobs.ByEmployer(employerID), nil
}

func (r *Remote) CreateJob(ctx context.Context, draft board.JobDraft) (board.Job, error) {
	raw, err := r.client.CreateJob(ctx, talentx.JobPayload{
		Title:       draft.Title,
		CompanyName: draft.Company,
		TechStack:   draft.TechStack,
		Description: draft.Description,
		Deadline:    draft.Deadline,
	})
	if err != nil {
		return board.Job{}, err
	}
	return normalizeJob(raw), nil
}

func (r *Remote) GenerateJobDescription(ctx context.Context, req board.DescriptionRequest) (string, error) {
	return r.client.GenerateDescription(ctx, req.Title, req.TechStack)
}

func (r *Remote) ApplyToJob(ctx context.Context, req board.ApplyRequest) (board.Result, error) {
	err := r.client.Apply(ctx, req.JobID)
	return r.softResult(err, board.ReasonAlreadyApplied, board.ReasonJobNotFound)
}

func (r *Remote) GetApplicationsByJob(ctx context.Context, jobID string) ([]board.Application, error) {
	raw, err := r.client.ListApplicants(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return normalizeApplications(raw), nil
}

func (r *Remote) GetApplicationsForTalent(ctx context.Context, _ string) ([]board.Application, error) {
	raw, err := r.client.MyApplications(ctx)
	if err != nil {
		return nil, err
	}
	return normalizeApplications(raw), nil
}

// GetApplicationsByEmployer collects the applicants of every job of the employer.
func (r *Remote) GetApplicationsByEmployer(ctx context.Context, employerID string) ([]board.Application, error) {
	jobs, err := r.GetJobsByEmployer(ctx, employerID)
	if err != nil {
		return nil, err
	}

	apps := make([]board.Application, 0)
	for _, job := range jobs {
		found, err := r.GetApplicationsByJob(ctx, job.ID)
		if err != nil {
			return nil, fmt.Errorf("job %s: %w", job.ID, err)
		}
		apps = append(apps, found...)
	}
	return apps, nil
}

// HasApplied looks the job up in the applications of the current identity.
func (r *Remote) HasApplied(ctx context.Context, jobID, talentID string) (bool, error) {
	apps, err := r.GetApplicationsForTalent(ctx, talentID)
	if err != nil {
		return false, err
	}
	for _, app := range apps {
		if app.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (r *Remote) GetTopMatchedTalentsForJob(ctx context.Context, jobID string) ([]board.TalentMatch, error) {
	raw, err := r.client.MatchedTalents(ctx, jobID)
	if err != nil {
		return nil, err
	}

	matches := make([]board.TalentMatch, 0, len(raw))
	for _, t := range raw {
		matches = append(matches, normalizeTalentMatch(t))
	}
	return matches, nil
}

func (r *Remote) GetMatchedJobsForTalent(ctx context.Context, _ string) ([]board.JobMatch, error) {
	raw, err := r.client.MatchedJobs(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]board.JobMatch, 0, len(raw))
	for _, s := range raw {
		matches = append(matches, normalizeJobMatch(s))
	}
	return matches, nil
}

func (r *Remote) GetAllTalents(ctx context.Context) ([]board.Talent, error) {
	raw, err := r.client.AllTalents(ctx)
	if err != nil {
		return nil, err
	}

	talents := make([]board.Talent, 0, len(raw))
	for _, t := range raw {
		talents = append(talents, normalizeTalent(t))
	}
	return talents, nil
}

func (r *Remote) GetInvitationsForTalent(ctx context.Context, _ string) ([]board.Invitation, error) {
	raw, err := r.client.ListInvitations(ctx)
	if err != nil {
		return nil, err
	}
	return normalizeInvitations(raw), nil
}

func (r *Remote) CreateInvitation(ctx context.Context, req board.InviteRequest) (board.Result, error) {
	_, err := r.client.CreateInvitation(ctx, req.JobID, req.TalentID)
	return r.softResult(err, board.ReasonAlreadyInvited, board.ReasonJobNotFound)
}

func (r *Remote) RespondToInvitation(ctx context.Context, invitationID string, status board.InvitationStatus) (board.Result, error) {
	if !status.IsResponse() {
		return board.Failed(board.ReasonInvalidStatus), nil
	}

	_, err := r.client.RespondToInvitation(ctx, invitationID, string(status))
	return r.softResult(err, board.ReasonInvitationNotPending, board.ReasonInvitationNotFound)
}

func (r *Remote) GetInvitationStatus(ctx context.Context, jobID, talentID string) (board.InvitationStatus, bool, error) {
	invs, err := r.GetInvitationsForTalent(ctx, talentID)
	if err != nil {
		return "", false, err
	}
	for _, inv := range invs {
		if inv.JobID == jobID {
			return inv.Status, true, nil
		}
	}
	return "", false, nil
}

func (r *Remote) Onboard(ctx context.Context, req board.OnboardRequest) (board.User, error) {
	raw, err := r.client.Onboard(ctx, req.Name, req.Email, req.Role)
	if err != nil {
		return board.User{}, err
	}
	return normalizeUser(raw), nil
}

// softResult turns the expected refusals of the service into a failed result:
// 409 means a conflict with the current state, 404 a missing entity.
func (r *Remote) softResult(err error, conflict, missing board.Reason) (board.Result, error) {
	switch {
	case err == nil:
		return board.Succeeded(), nil
	case talentx.IsStatus(err, http.StatusConflict):
		r.logger.Debug("remote refused the operation", zap.String("reason", string(conflict)), zap.Error(err))
		return board.Failed(conflict), nil
	case talentx.IsNotFound(err):
		r.logger.Debug("remote refused the operation", zap.String("reason", string(missing)), zap.Error(err))
		return board.Failed(missing), nil
	default:
		return board.Result{}, err
	}
}
