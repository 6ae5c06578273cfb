package facade

import (
	"context"

	"github.com/spigell/talentx/internal/ai"
	"github.com/spigell/talentx/internal/board"
	"github.com/spigell/talentx/internal/workflow"
)

// Local serves everything from the in-process workflow engine.
type Local struct {
	engine    *workflow.Engine
	describer ai.Describer
}

// NewLocal wraps the engine. A nil describer uses the offline template.
func NewLocal(engine *workflow.Engine, describer ai.Describer) *Local {
	if describer == nil {
		describer = ai.Template{}
	}
	return &Local{engine: engine, describer: describer}
}

func (l *Local) Name() string { return BackendMock }

func (l *Local) Health(context.Context) (map[string]any, error) {
	return map[string]any{
		"status":  "ok",
		"backend": BackendMock,
		"jobs":    len(l.engine.GetJobs("")),
		"talents": len(l.engine.GetAllTalents()),
	}, nil
}

func (l *Local) GetJobs(_ context.Context, search string) ([]board.Job, error) {
	return l.engine.GetJobs(search), nil
}

func (l *Local) GetJobByID(_ context.Context, id string) (*board.Job, error) {
	return l.engine.GetJobByID(id), nil
}

func (l *Local) GetJobsByEmployer(_ context.Context, employerID string) ([]board.Job, error) {
	return l.engine.GetJobsByEmployer(employerID), nil
}

func (l *Local) CreateJob(_ context.Context, draft board.JobDraft) (board.Job, error) {
	return l.engine.CreateJob(draft)
}

func (l *Local) GenerateJobDescription(ctx context.Context, req board.DescriptionRequest) (string, error) {
	return l.describer.Describe(ctx, req)
}

func (l *Local) ApplyToJob(_ context.Context, req board.ApplyRequest) (board.Result, error) {
	return l.engine.ApplyToJob(req), nil
}

func (l *Local) GetApplicationsByJob(_ context.Context, jobID string) ([]board.Application, error) {
	return l.engine.GetApplicationsByJob(jobID), nil
}

func (l *Local) GetApplicationsForTalent(_ context.Context, talentID string) ([]board.Application, error) {
	return l.engine.GetApplicationsForTalent(talentID), nil
}

func (l *Local) GetApplicationsByEmployer(_ context.Context, employerID string) ([]board.Application, error) {
	return l.engine.GetApplicationsByEmployer(employerID), nil
}

func (l *Local) HasApplied(_ context.Context, jobID, talentID string) (bool, error) {
	return l.engine.HasApplied(jobID, talentID), nil
}

func (l *Local) GetTopMatchedTalentsForJob(_ context.Context, jobID string) ([]board.TalentMatch, error) {
	return l.engine.GetTopMatchedTalentsForJob(jobID), nil
}

func (l *Local) GetMatchedJobsForTalent(_ context.Context, talentID string) ([]board.JobMatch, error) {
	return l.engine.GetMatchedJobsForTalent(talentID), nil
}

func (l *Local) GetAllTalents(context.Context) ([]board.Talent, error) {
	return l.engine.GetAllTalents(), nil
}

func (l *Local) GetInvitationsForTalent(_ context.Context, talentID string) ([]board.Invitation, error) {
	return l.engine.GetInvitationsForTalent(talentID), nil
}

func (l *Local) CreateInvitation(_ context.Context, req board.InviteRequest) (board.Result, error) {
	return l.engine.InviteTalent(req), nil
}

func (l *Local) RespondToInvitation(_ context.Context, invitationID string, status board.InvitationStatus) (board.Result, error) {
	return l.engine.RespondToInvitation(invitationID, status), nil
}

func (l *Local) GetInvitationStatus(_ context.Context, jobID, talentID string) (board.InvitationStatus, bool, error) {
	status, ok := l.engine.GetInvitationStatus(jobID, talentID)
	return status, ok, nil
}

func (l *Local) Onboard(_ context.Context, req board.OnboardRequest) (board.User, error) {
	return l.engine.Onboard(req)
}

func (l *Local) Reconcile(context.Context) ([]workflow.CounterFix, error) {
	return l.engine.Reconcile(), nil
}
