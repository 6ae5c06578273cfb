package facade

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spigell/talentx/internal/board"
	"github.com/spigell/talentx/internal/talentx"
)

// Remote payloads are mapped here and nowhere else. Every field has a fallback:
//
//	id               _id, then id
//	company          companyName, then company
//	employerId       createdBy, then employerId
//	applicationCount applicationsCount, then applicationCount, then 0
//	deadline         first 10 characters (calendar date)
//	jobId            string, or the _id/id of an embedded job object
//	talentId/name    nested talent{uid,name}, then flat fields, name defaults to "Talent"
//	source           manual unless the service says invitation
//	status           pending when absent
//	score            rounded to an integer, 0 when absent

func normalizeJob(j *talentx.Job) board.Job {
	if j == nil {
		return board.Job{}
	}

	techStack := j.TechStack
	if techStack == nil {
		techStack = []string{}
	}

	return board.Job{
		ID:               firstNonEmpty(j.MongoID, j.ID),
		EmployerID:       firstNonEmpty(j.CreatedBy, j.EmployerID),
		Title:            j.Title,
		Company:          firstNonEmpty(j.CompanyName, j.Company),
		Description:      j.Description,
		TechStack:        techStack,
		Deadline:         board.ShortDate(j.Deadline),
		ApplicationCount: firstCount(j.ApplicationsCount, j.ApplicationCount),
		CreatedAt:        board.ShortDate(j.CreatedAt),
	}
}

func normalizeJobs(jobs []talentx.Job) []board.Job {
	out := make([]board.Job, 0, len(jobs))
	for i := range jobs {
		out = append(out, normalizeJob(&jobs[i]))
	}
	return out
}

func normalizeApplication(a talentx.Application) board.Application {
	app := board.Application{
		ID:         firstNonEmpty(a.MongoID, a.ID),
		JobID:      jobIDOf(a.JobID),
		TalentID:   a.TalentID,
		TalentName: a.TalentName,
		Source:     board.ParseSource(a.Source),
	}

	if a.Talent != nil {
		app.TalentID = firstNonEmpty(app.TalentID, a.Talent.UID)
		app.TalentName = firstNonEmpty(a.Talent.Name, app.TalentName)
	}
	app.TalentName = firstNonEmpty(app.TalentName, board.DefaultTalentName)

	if a.Job != nil {
		job := normalizeJob(a.Job)
		app.JobID = firstNonEmpty(app.JobID, job.ID)
		app.Job = &board.JobSummary{ID: job.ID, Title: job.Title, Company: job.Company}
	} else if embedded, ok := a.JobID.(map[string]any); ok {
		app.Job = &board.JobSummary{
			ID:      app.JobID,
			Title:   stringField(embedded, "title"),
			Company: stringField(embedded, "companyName", "company"),
		}
	}

	return app
}

func normalizeApplications(apps []talentx.Application) []board.Application {
	out := make([]board.Application, 0, len(apps))
	for _, a := range apps {
		out = append(out, normalizeApplication(a))
	}
	return out
}

func normalizeInvitation(inv talentx.Invitation) board.Invitation {
	out := board.Invitation{
		ID:         firstNonEmpty(inv.MongoID, inv.ID),
		JobID:      jobIDOf(inv.JobID),
		TalentID:   inv.TalentID,
		TalentName: inv.TalentName,
		Company:    inv.Company,
		JobTitle:   inv.JobTitle,
		Deadline:   board.ShortDate(inv.Deadline),
		Status:     board.InvitationStatus(firstNonEmpty(inv.Status, string(board.StatusPending))),
	}

	if inv.Talent != nil {
		out.TalentID = firstNonEmpty(out.TalentID, inv.Talent.UID)
		out.TalentName = firstNonEmpty(inv.Talent.Name, out.TalentName)
	}

	if job, ok := inv.JobID.(map[string]any); ok {
		out.Company = firstNonEmpty(stringField(job, "companyName", "company"), out.Company)
		out.JobTitle = firstNonEmpty(stringField(job, "title"), out.JobTitle)
		out.Deadline = firstNonEmpty(board.ShortDate(stringField(job, "deadline")), out.Deadline)
	}

	return out
}

func normalizeInvitations(invs []talentx.Invitation) []board.Invitation {
	out := make([]board.Invitation, 0, len(invs))
	for _, inv := range invs {
		out = append(out, normalizeInvitation(inv))
	}
	return out
}

func normalizeTalentMatch(t talentx.TalentScore) board.TalentMatch {
	m := board.TalentMatch{
		TalentID:   t.TalentID,
		TalentName: t.TalentName,
		Score:      roundScore(t.Score),
		Reason:     t.Reason,
	}

	if t.Talent != nil {
		m.TalentID = firstNonEmpty(t.Talent.UID, m.TalentID)
		m.TalentName = firstNonEmpty(t.Talent.Name, m.TalentName)
	}
	m.TalentName = firstNonEmpty(m.TalentName, board.DefaultTalentName)

	return m
}

func normalizeTalent(t talentx.TalentScore) board.Talent {
	m := normalizeTalentMatch(t)
	return board.Talent{ID: m.TalentID, Name: m.TalentName}
}

func normalizeJobMatch(s talentx.JobScore) board.JobMatch {
	job := normalizeJob(s.Job)
	job.ID = firstNonEmpty(job.ID, s.JobID)
	return board.JobMatch{
		JobID:  job.ID,
		Job:    job,
		Score:  roundScore(s.Score),
		Reason: s.Reason,
	}
}

func normalizeUser(u *talentx.User) board.User {
	if u == nil {
		return board.User{}
	}
	return board.User{
		ID:    firstNonEmpty(u.UID, u.MongoID, u.ID),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// jobIDOf reads a job reference that is either an id or a populated job object.
func jobIDOf(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case map[string]any:
		return stringField(val, "_id", "id")
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

func stringField(m map[string]any, keys ...string) string {
	for _, key := range keys {
		switch val := m[key].(type) {
		case string:
			if val != "" {
				return val
			}
		case float64:
			return strconv.FormatFloat(val, 'f', -1, 64)
		}
	}
	return ""
}

func firstCount(counts ...*int) int {
	for _, c := range counts {
		if c != nil {
			return *c
		}
	}
	return 0
}

func roundScore(score *float64) int {
	if score == nil || math.IsNaN(*score) {
		return 0
	}
	return int(math.Round(*score))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
