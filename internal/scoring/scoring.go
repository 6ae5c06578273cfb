// Package scoring computes the deterministic match score between jobs and talents.
package scoring

import (
	"sort"
	"unicode/utf16"

	"github.com/spigell/talentx/internal/board"
)

const (
	MinScore = 45
	MaxScore = 100

	hashMultiplier = 31
	separator      = "-"
)

// ScoreFunc maps a (job, talent) pair to a match score.
type ScoreFunc func(jobID, talentID string) int

// Score returns a reproducible score in [MinScore, MaxScore] for the pair.
// The arguments are not interchangeable: Score(a, b) and Score(b, a) usually differ.
func Score(jobID, talentID string) int {
	var h uint32
	for _, unit := range utf16.Encode([]rune(jobID + separator + talentID)) {
		h = h*hashMultiplier + uint32(unit)
	}

	return MinScore + int(h%(MaxScore-MinScore+1))
}

// Ranker orders jobs and talents by a score function.
type Ranker struct {
	Score ScoreFunc
}

var defaultRanker = Ranker{Score: Score}

func (r Ranker) score() ScoreFunc {
	if r.Score == nil {
		return Score
	}
	return r.Score
}

// RankTalentsForJob scores every talent against the job, best first.
// Talents with equal scores keep their input order.
func (r Ranker) RankTalentsForJob(jobID string, talents []board.Talent) []board.TalentMatch {
	score := r.score()
	matches := make([]board.TalentMatch, 0, len(talents))
	for _, t := range talents {
		matches = append(matches, board.TalentMatch{
			TalentID:   t.ID,
			TalentName: t.Name,
			Score:      score(jobID, t.ID),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}

// RankJobsForTalent scores every job for the talent, best first.
// Jobs with equal scores keep their input order.
func (r Ranker) RankJobsForTalent(talentID string, jobs []board.Job) []board.JobMatch {
	score := r.score()
	matches := make([]board.JobMatch, 0, len(jobs))
	for _, job := range jobs {
		matches = append(matches, board.JobMatch{
			JobID: job.ID,
			Job:   job,
			Score: score(job.ID, talentID),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}

func RankTalentsForJob(jobID string, talents []board.Talent) []board.TalentMatch {
	return defaultRanker.RankTalentsForJob(jobID, talents)
}

func RankJobsForTalent(talentID string, jobs []board.Job) []board.JobMatch {
	return defaultRanker.RankJobsForTalent(talentID, jobs)
}
