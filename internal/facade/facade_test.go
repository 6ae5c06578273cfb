package facade

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/talentx/internal/board"
	"github.com/spigell/talentx/internal/store"
	"github.com/spigell/talentx/internal/workflow"
)

func newLocalFacade(t *testing.T) *Facade {
	t.Helper()

	s := store.Open(store.NewMemoryKV(), zap.NewNop(), store.DefaultSeed())
	engine := workflow.New(s)

	f, err := New(BackendMock, "", Builders{
		Mock: func() (Backend, error) { return NewLocal(engine, nil), nil },
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return f
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		baseURL string
		want    string
		wantErr bool
	}{
		{name: "explicit mock", backend: "mock", baseURL: "https://api.example.com", want: BackendMock},
		{name: "explicit remote", backend: "remote", want: BackendRemote},
		{name: "case and spaces", backend: " Remote ", want: BackendRemote},
		{name: "empty with base url", baseURL: "https://api.example.com", want: BackendRemote},
		{name: "empty without base url", want: BackendMock},
		{name: "blank base url", baseURL: "   ", want: BackendMock},
		{name: "unknown", backend: "firebase", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.backend, tt.baseURL)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownBackend) {
					t.Fatalf("expected ErrUnknownBackend, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestNewBuildsOnlySelectedBackend(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	remoteBuilt := false
	s := store.Open(store.NewMemoryKV(), zap.NewNop(), store.DefaultSeed())

	f, err := New("", "", Builders{
		Mock: func() (Backend, error) { return NewLocal(workflow.New(s), nil), nil },
		Remote: func() (Backend, error) {
			remoteBuilt = true
			return nil, errors.New("must not be called")
		},
	}, zap.New(core))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if remoteBuilt {
		t.Fatal("remote backend was built")
	}
	if f.Name() != BackendMock {
		t.Fatalf("expected mock backend, got %s", f.Name())
	}

	entries := logs.FilterMessage("backend selected").All()
	if len(entries) != 1 {
		t.Fatalf("expected one selection log, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["backend"]; got != BackendMock {
		t.Fatalf("expected backend field mock, got %v", got)
	}
}

func TestNewFailures(t *testing.T) {
	if _, err := New("remote", "", Builders{}, zap.NewNop()); err == nil {
		t.Fatal("expected error for a missing builder")
	}

	buildErr := errors.New("no token")
	_, err := New("remote", "", Builders{
		Remote: func() (Backend, error) { return nil, buildErr },
	}, zap.NewNop())
	if !errors.Is(err, buildErr) {
		t.Fatalf("expected build error, got %v", err)
	}

	if _, err := New("pocketbase", "", Builders{}, zap.NewNop()); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got %v", err)
	}
}

func TestLocalInvitationScenario(t *testing.T) {
	ctx := context.Background()
	f := newLocalFacade(t)

	res, err := f.CreateInvitation(ctx, board.InviteRequest{JobID: "job-5", TalentID: "talent-4", TalentName: "Morgan Taylor"})
	if err != nil || !res.Success {
		t.Fatalf("invite failed: %+v, %v", res, err)
	}

	status, ok, err := f.GetInvitationStatus(ctx, "job-5", "talent-4")
	if err != nil || !ok || status != board.StatusPending {
		t.Fatalf("expected pending invitation, got %q %v %v", status, ok, err)
	}

	invs, err := f.GetInvitationsForTalent(ctx, "talent-4")
	if err != nil || len(invs) != 1 {
		t.Fatalf("expected one invitation, got %d (%v)", len(invs), err)
	}
	if invs[0].Company == "" || invs[0].JobTitle == "" {
		t.Fatalf("expected snapshot from the job, got %+v", invs[0])
	}

	res, err = f.RespondToInvitation(ctx, invs[0].ID, board.StatusAccepted)
	if err != nil || !res.Success {
		t.Fatalf("respond failed: %+v, %v", res, err)
	}

	applied, err := f.HasApplied(ctx, "job-5", "talent-4")
	if err != nil || !applied {
		t.Fatalf("expected application after accept, got %v %v", applied, err)
	}

	job, err := f.GetJobByID(ctx, "job-5")
	if err != nil || job == nil {
		t.Fatalf("expected job-5, got %v %v", job, err)
	}
	if job.ApplicationCount != 1 {
		t.Fatalf("expected counter 1, got %d", job.ApplicationCount)
	}

	apps, err := f.GetApplicationsByJob(ctx, "job-5")
	if err != nil || len(apps) != 1 || apps[0].Source != board.SourceInvitation {
		t.Fatalf("expected one invitation application, got %+v %v", apps, err)
	}
}

func TestLocalMissingJob(t *testing.T) {
	f := newLocalFacade(t)

	job, err := f.GetJobByID(context.Background(), "job-404")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job != nil {
		t.Fatalf("expected nil job, got %+v", job)
	}
}

func TestLocalHealthAndDescription(t *testing.T) {
	ctx := context.Background()
	f := newLocalFacade(t)

	health, err := f.Health(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if health["status"] != "ok" || health["jobs"] != 5 || health["talents"] != 5 {
		t.Fatalf("unexpected health: %v", health)
	}

	text, err := f.GenerateJobDescription(ctx, board.DescriptionRequest{Title: "Data Engineer", TechStack: []string{"Go"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text == "" {
		t.Fatal("expected a description")
	}
}

func TestReconcile(t *testing.T) {
	f := newLocalFacade(t)

	fixes, err := f.Reconcile(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fixes) != 0 {
		t.Fatalf("expected consistent seed, got %+v", fixes)
	}

	remote := &Facade{Backend: NewRemote(nil, nil), logger: zap.NewNop()}
	if _, err := remote.Reconcile(context.Background()); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}
