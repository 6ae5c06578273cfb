package workflow

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/talentx/internal/board"
)

const (
	defaultEmployerID = "emp-1"
	defaultJobTitle   = "Untitled"
	defaultCompany    = "My Company"
)

// GetJobs returns the jobs whose title or company contains the query, ignoring case.
func (e *Engine) GetJobs(search string) []board.Job {
	jobs := &board.Jobs{Items: e.store.ListJobs()}
	return jobs.Search(search)
}

// GetJobByID returns nil when the job does not exist.
func (e *Engine) GetJobByID(id string) *board.Job {
	jobs := &board.Jobs{Items: e.store.ListJobs()}
	return jobs.FindByID(id)
}

// GetJobsByEmployer trusts the employer id given by the caller.
func (e *Engine) GetJobsByEmployer(employerID string) []board.Job {
	jobs := &board.Jobs{Items: e.store.ListJobs()}
	return jobs.ByEmployer(employerID)
}

// CreateJob adds a job with a zero application counter.
func (e *Engine) CreateJob(draft board.JobDraft) (board.Job, error) {
	deadline := strings.TrimSpace(draft.Deadline)
	if deadline != "" {
		if _, err := time.Parse(board.DateLayout, deadline); err != nil {
			e.record(OperationCreateJob, "invalid_deadline")
			return board.Job{}, fmt.Errorf("%w: %q", ErrInvalidDeadline, draft.Deadline)
		}
	}

	techStack := draft.TechStack
	if techStack == nil {
		techStack = []string{}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	job := board.Job{
		ID:               e.newID("job"),
		EmployerID:       firstNonEmpty(draft.EmployerID, defaultEmployerID),
		Title:            firstNonEmpty(strings.TrimSpace(draft.Title), defaultJobTitle),
		Company:          firstNonEmpty(strings.TrimSpace(draft.Company), defaultCompany),
		Description:      draft.Description,
		TechStack:        techStack,
		Deadline:         deadline,
		ApplicationCount: 0,
		CreatedAt:        e.now().Format(board.DateLayout),
	}

	e.store.ReplaceJobs(append(e.store.ListJobs(), job))
	e.record(OperationCreateJob, "success")

	e.logger.Info("job created",
		zap.String("job_id", job.ID),
		zap.String("employer_id", job.EmployerID),
		zap.String("title", job.Title),
	)

	return job, nil
}

// CounterFix describes a job whose application counter was repaired.
type CounterFix struct {
	JobID string `json:"jobId"`
	Was   int    `json:"was"`
	Now   int    `json:"now"`
}

// Reconcile recomputes every application counter from the applications and returns
// the jobs that changed. Nothing is written when all counters are right.
func (e *Engine) Reconcile() []CounterFix {
	e.mu.Lock()
	defer e.mu.Unlock()

	counts := make(map[string]int)
	for _, app := range e.store.ListApplications() {
		counts[app.JobID]++
	}

	jobs := e.store.ListJobs()
	fixes := make([]CounterFix, 0)
	for i := range jobs {
		want := counts[jobs[i].ID]
		if jobs[i].ApplicationCount == want {
			continue
		}
		fixes = append(fixes, CounterFix{JobID: jobs[i].ID, Was: jobs[i].ApplicationCount, Now: want})
		jobs[i].ApplicationCount = want
	}

	if len(fixes) == 0 {
		e.record(OperationReconcile, "clean")
		return fixes
	}

	e.store.ReplaceJobs(jobs)
	e.record(OperationReconcile, "repaired")

	for _, fix := range fixes {
		e.logger.Warn("application counter repaired",
			zap.String("job_id", fix.JobID),
			zap.Int("was", fix.Was),
			zap.Int("now", fix.Now),
		)
	}

	return fixes
}
