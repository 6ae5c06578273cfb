// Package facade is the single entry point of the job board. It routes every call to
// the backend chosen at construction: the local workflow engine or the remote service.
package facade

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/talentx/internal/board"
	"github.com/spigell/talentx/internal/logger"
	"github.com/spigell/talentx/internal/workflow"
)

const (
	BackendMock   = "mock"
	BackendRemote = "remote"
)

var (
	ErrUnknownBackend = errors.New("unknown backend")
	ErrUnsupported    = errors.New("operation is not supported by the backend")
)

// Backend is the operation set shared by both backends. Callers never need to know
// which one is active.
type Backend interface {
	Name() string
	Health(ctx context.Context) (map[string]any, error)

	GetJobs(ctx context.Context, search string) ([]board.Job, error)
	// GetJobByID returns nil without an error when the job does not exist.
	GetJobByID(ctx context.Context, id string) (*board.Job, error)
	GetJobsByEmployer(ctx context.Context, employerID string) ([]board.Job, error)
	CreateJob(ctx context.Context, draft board.JobDraft) (board.Job, error)
	GenerateJobDescription(ctx context.Context, req board.DescriptionRequest) (string, error)

	ApplyToJob(ctx context.Context, req board.ApplyRequest) (board.Result, error)
	GetApplicationsByJob(ctx context.Context, jobID string) ([]board.Application, error)
	GetApplicationsForTalent(ctx context.Context, talentID string) ([]board.Application, error)
	GetApplicationsByEmployer(ctx context.Context, employerID string) ([]board.Application, error)
	HasApplied(ctx context.Context, jobID, talentID string) (bool, error)

	GetTopMatchedTalentsForJob(ctx context.Context, jobID string) ([]board.TalentMatch, error)
	GetMatchedJobsForTalent(ctx context.Context, talentID string) ([]board.JobMatch, error)
	GetAllTalents(ctx context.Context) ([]board.Talent, error)

	GetInvitationsForTalent(ctx context.Context, talentID string) ([]board.Invitation, error)
	CreateInvitation(ctx context.Context, req board.InviteRequest) (board.Result, error)
	RespondToInvitation(ctx context.Context, invitationID string, status board.InvitationStatus) (board.Result, error)
	// GetInvitationStatus reports false when the pair has no invitation.
	GetInvitationStatus(ctx context.Context, jobID, talentID string) (board.InvitationStatus, bool, error)

	Onboard(ctx context.Context, req board.OnboardRequest) (board.User, error)
}

// Reconciler is implemented by backends that own their data.
type Reconciler interface {
	Reconcile(ctx context.Context) ([]workflow.CounterFix, error)
}

// Builders construct a backend on demand. Only the selected one is called.
type Builders struct {
	Mock   func() (Backend, error)
	Remote func() (Backend, error)
}

type Facade struct {
	Backend

	logger *zap.Logger
}

// Resolve picks the backend name. An empty name means remote when a base url is
// configured and mock otherwise.
func Resolve(name, baseURL string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		if strings.TrimSpace(baseURL) != "" {
			return BackendRemote, nil
		}
		return BackendMock, nil
	case BackendMock:
		return BackendMock, nil
	case BackendRemote:
		return BackendRemote, nil
	default:
		return "", fmt.Errorf("%w: %q (use %s or %s)", ErrUnknownBackend, name, BackendMock, BackendRemote)
	}
}

func New(name, baseURL string, builders Builders, log *zap.Logger) (*Facade, error) {
	resolved, err := Resolve(name, baseURL)
	if err != nil {
		return nil, err
	}

	build := builders.Mock
	if resolved == BackendRemote {
		build = builders.Remote
	}
	if build == nil {
		return nil, fmt.Errorf("no builder for the %s backend", resolved)
	}

	backend, err := build()
	if err != nil {
		return nil, fmt.Errorf("building %s backend: %w", resolved, err)
	}

	log = logger.WithBackend(log, backend.Name())
	log.Debug("backend selected")

	return &Facade{Backend: backend, logger: log}, nil
}

// Reconcile repairs application counters when the backend supports it.
func (f *Facade) Reconcile(ctx context.Context) ([]workflow.CounterFix, error) {
	r, ok := f.Backend.(Reconciler)
	if !ok {
		return nil, fmt.Errorf("reconcile on %s: %w", f.Name(), ErrUnsupported)
	}
	return r.Reconcile(ctx)
}

func (f *Facade) Logger() *zap.Logger {
	return f.logger
}
