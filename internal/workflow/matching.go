package workflow

import (
	"strings"

	"github.com/spigell/talentx/internal/board"
)

// GetTopMatchedTalentsForJob ranks every known talent for the job.
func (e *Engine) GetTopMatchedTalentsForJob(jobID string) []board.TalentMatch {
	return e.ranker.RankTalentsForJob(jobID, e.store.ListTalents())
}

// GetMatchedJobsForTalent ranks every job for the talent.
func (e *Engine) GetMatchedJobsForTalent(talentID string) []board.JobMatch {
	return e.ranker.RankJobsForTalent(talentID, e.store.ListJobs())
}

func (e *Engine) GetAllTalents() []board.Talent {
	return e.store.ListTalents()
}

// Onboard returns a new user. Users are not stored locally.
func (e *Engine) Onboard(req board.OnboardRequest) (board.User, error) {
	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role == "" {
		role = board.RoleTalent
	}
	if role != board.RoleTalent && role != board.RoleEmployer {
		return board.User{}, ErrInvalidRole
	}

	email := strings.TrimSpace(req.Email)

	return board.User{
		ID:    e.newID("user"),
		Name:  firstNonEmpty(strings.TrimSpace(req.Name), email, board.DefaultTalentName),
		Email: email,
		Role:  role,
	}, nil
}
