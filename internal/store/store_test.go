package store

import (
	"errors"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/talentx/internal/board"
)

type failingKV struct {
	getErr error
	setErr error
	sets   int
}

func (f *failingKV) Get(string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return nil, ErrNotFound
}

func (f *failingKV) Set(string, []byte) error {
	f.sets++
	return f.setErr
}

func (f *failingKV) Close() error { return nil }

func TestOpenWithoutKVUsesSeed(t *testing.T) {
	t.Parallel()

	s := Open(nil, nil, DefaultSeed())

	if got := len(s.ListJobs()); got != 5 {
		t.Fatalf("expected 5 jobs, got %d", got)
	}
	if got := len(s.ListApplications()); got != 5 {
		t.Fatalf("expected 5 applications, got %d", got)
	}
	if got := len(s.ListInvitations()); got != 3 {
		t.Fatalf("expected 3 invitations, got %d", got)
	}
	if got := len(s.ListTalents()); got != 5 {
		t.Fatalf("expected 5 talents, got %d", got)
	}
}

func TestSeedCountersMatchApplications(t *testing.T) {
	t.Parallel()

	seed := DefaultSeed()
	counts := make(map[string]int)
	for _, app := range seed.Applications {
		counts[app.JobID]++
	}

	for _, job := range seed.Jobs {
		if job.ApplicationCount != counts[job.ID] {
			t.Fatalf("job %s: counter %d, applications %d", job.ID, job.ApplicationCount, counts[job.ID])
		}
	}
}

func TestReplaceIsPersistedAndReloaded(t *testing.T) {
	t.Parallel()

	kv := NewMemoryKV()
	s := Open(kv, zap.NewNop(), DefaultSeed())

	jobs := append(s.ListJobs(), board.Job{ID: "job-new", Title: "Go Engineer"})
	s.ReplaceJobs(jobs)

	reopened := Open(kv, zap.NewNop(), Seed{})
	if got := len(reopened.ListJobs()); got != 6 {
		t.Fatalf("expected 6 persisted jobs, got %d", got)
	}
	// Applications were never written, so they come from the (empty) seed.
	if got := len(reopened.ListApplications()); got != 0 {
		t.Fatalf("expected no applications, got %d", got)
	}
}

func TestReplaceIsCopyOnWrite(t *testing.T) {
	t.Parallel()

	s := Open(nil, nil, DefaultSeed())

	before := s.ListApplications()
	next := append(s.ListApplications(), board.Application{ID: "app-x", JobID: "job-1", TalentID: "talent-9"})
	s.ReplaceApplications(next)

	if len(before) != 5 {
		t.Fatalf("old snapshot changed: %d items", len(before))
	}

	next[0].TalentName = "mutated"
	if got := s.ListApplications()[0].TalentName; got == "mutated" {
		t.Fatalf("store shares memory with the caller's slice")
	}

	listed := s.ListApplications()
	listed[1].TalentName = "mutated"
	if got := s.ListApplications()[1].TalentName; got == "mutated" {
		t.Fatalf("store shares memory with a listed snapshot")
	}
}

func TestCorruptDataFallsBackToSeed(t *testing.T) {
	t.Parallel()

	kv := NewMemoryKV()
	if err := kv.Set(KeyJobs, []byte("{not json")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	core, observed := observer.New(zapcore.WarnLevel)
	s := Open(kv, zap.New(core), DefaultSeed())

	if got := len(s.ListJobs()); got != 5 {
		t.Fatalf("expected seed jobs after corrupt data, got %d", got)
	}

	entries := observed.FilterMessage("persisted collection is corrupt, using defaults").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 corrupt data warning, got %d", len(entries))
	}
	if entries[0].ContextMap()["key"] != KeyJobs {
		t.Fatalf("unexpected key field: %v", entries[0].ContextMap()["key"])
	}
}

func TestReadFailureFallsBackToSeed(t *testing.T) {
	t.Parallel()

	kv := &failingKV{getErr: errors.New("disk on fire")}
	s := Open(kv, zap.NewNop(), DefaultSeed())

	if got := len(s.ListInvitations()); got != 3 {
		t.Fatalf("expected seed invitations, got %d", got)
	}
}

func TestPersistFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	kv := &failingKV{setErr: errors.New("quota exceeded")}
	core, observed := observer.New(zapcore.WarnLevel)
	s := Open(kv, zap.New(core), DefaultSeed())

	s.ReplaceInvitations(nil)

	if kv.sets != 1 {
		t.Fatalf("expected 1 write attempt, got %d", kv.sets)
	}
	if got := len(s.ListInvitations()); got != 0 {
		t.Fatalf("expected in-memory state to be updated, got %d invitations", got)
	}

	entries := observed.FilterMessage("persisting collection failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(entries))
	}
	if entries[0].ContextMap()["key"] != KeyInvitations {
		t.Fatalf("unexpected key field: %v", entries[0].ContextMap()["key"])
	}
}

func TestFileKV(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "state")
	kv, err := NewFileKV(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := kv.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	s := Open(kv, zap.NewNop(), DefaultSeed())
	s.ReplaceJobs(s.ListJobs()[:2])

	kv2, err := NewFileKV(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reopened := Open(kv2, zap.NewNop(), DefaultSeed())
	if got := len(reopened.ListJobs()); got != 2 {
		t.Fatalf("expected 2 jobs from file storage, got %d", got)
	}
}

func TestSQLiteKV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "talentx.sqlite")
	kv, err := OpenSQLiteKV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := kv.Get(KeyJobs); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := kv.Set(KeyJobs, []byte(`[{"id":"job-1"}]`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := kv.Set(KeyJobs, []byte(`[{"id":"job-1"},{"id":"job-2"}]`)); err != nil {
		t.Fatalf("unexpected error on overwrite: %v", err)
	}

	s := Open(kv, zap.NewNop(), DefaultSeed())
	if got := len(s.ListJobs()); got != 2 {
		t.Fatalf("expected 2 jobs from sqlite, got %d", got)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}
}
