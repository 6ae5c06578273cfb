package workflow

import (
	"slices"

	"go.uber.org/zap"

	"github.com/spigell/talentx/internal/board"
	"github.com/spigell/talentx/internal/logger"
)

// ApplyToJob records an application. A repeated pair is rejected before the job is
// even looked up, so it reports already_applied for unknown jobs too.
func (e *Engine) ApplyToJob(req board.ApplyRequest) board.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	res := e.applyLocked(req)
	e.record(OperationApply, res.Outcome())

	return res
}

func (e *Engine) applyLocked(req board.ApplyRequest) board.Result {
	log := e.logger.With(logger.BoardFields(req.JobID, req.TalentID)...)

	apps := e.store.ListApplications()
	for i := range apps {
		if apps[i].IsPair(req.JobID, req.TalentID) {
			log.Debug("application already exists", zap.String("application_id", apps[i].ID))
			return board.Failed(board.ReasonAlreadyApplied)
		}
	}

	source := req.Source
	if source == "" {
		source = board.SourceManual
	}
	if !source.IsValid() {
		log.Debug("unknown application source", zap.String("source", string(source)))
		return board.Failed(board.ReasonInvalidSource)
	}

	jobs := &board.Jobs{Items: e.store.ListJobs()}
	job := jobs.FindByID(req.JobID)
	if job == nil {
		log.Debug("job not found")
		return board.Failed(board.ReasonJobNotFound)
	}

	name := req.TalentName
	if name == "" {
		name = board.DefaultTalentName
	}

	app := board.Application{
		ID:         e.newID("app"),
		JobID:      req.JobID,
		TalentID:   req.TalentID,
		TalentName: name,
		Source:     source,
	}

	// The application goes first: an interrupted sequence under-counts, and
	// Reconcile repairs under-counts.
	e.store.ReplaceApplications(append(apps, app))

	job.ApplicationCount++
	e.store.ReplaceJobs(jobs.Items)

	log.Info("application created",
		zap.String("application_id", app.ID),
		zap.String("source", string(app.Source)),
		zap.Int("application_count", job.ApplicationCount),
	)

	return board.Succeeded()
}

// HasApplied reports whether the talent has an application for the job.
func (e *Engine) HasApplied(jobID, talentID string) bool {
	for _, app := range e.store.ListApplications() {
		if app.IsPair(jobID, talentID) {
			return true
		}
	}
	return false
}

func (e *Engine) GetApplicationsByJob(jobID string) []board.Application {
	return e.filterApplications(func(a board.Application) bool {
		return a.JobID == jobID
	})
}

func (e *Engine) GetApplicationsForTalent(talentID string) []board.Application {
	return e.filterApplications(func(a board.Application) bool {
		return a.TalentID == talentID
	})
}

// GetApplicationsByEmployer returns the applications to every job of the employer.
func (e *Engine) GetApplicationsByEmployer(employerID string) []board.Application {
	jobs := &board.Jobs{Items: e.store.ListJobs()}
	own := jobs.ByEmployer(employerID)

	ids := make([]string, 0, len(own))
	for _, job := range own {
		ids = append(ids, job.ID)
	}

	return e.filterApplications(func(a board.Application) bool {
		return slices.Contains(ids, a.JobID)
	})
}

func (e *Engine) filterApplications(keep func(board.Application) bool) []board.Application {
	found := make([]board.Application, 0)
	for _, app := range e.store.ListApplications() {
		if keep(app) {
			found = append(found, app)
		}
	}
	return found
}
