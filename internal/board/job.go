package board

import (
	"strings"

	"github.com/spigell/talentx/internal/utils"
)

const (
	// DateLayout is the calendar date format used for deadlines and creation dates.
	DateLayout = "2006-01-02"

	JobIDField         = "ID"
	JobEmployerIDField = "EmployerID"
)

type Jobs struct {
	Items []Job
}

type Job struct {
	ID               string   `json:"id"`
	EmployerID       string   `json:"employerId"`
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Description      string   `json:"description"`
	TechStack        []string `json:"techStack"`
	Deadline         string   `json:"deadline"`
	ApplicationCount int      `json:"applicationCount"`
	CreatedAt        string   `json:"createdAt"`
}

// JobDraft carries the employer supplied fields of a new job.
type JobDraft struct {
	EmployerID  string
	Title       string
	Company     string
	Description string
	TechStack   []string
	Deadline    string
}

func (j *Job) GetStringField(name string) string {
	switch name {
	case JobIDField:
		return j.ID
	case JobEmployerIDField:
		return j.EmployerID
	default:
		return ""
	}
}

// Matches reports whether the lowercased query is part of the title or the company name.
func (j *Job) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	return strings.Contains(strings.ToLower(j.Title), q) ||
		strings.Contains(strings.ToLower(j.Company), q)
}

func (j *Jobs) Len() int {
	return len(j.Items)
}

func (j *Jobs) FindByID(id string) *Job {
	for i := range j.Items {
		if j.Items[i].ID == id {
			return &j.Items[i]
		}
	}
	return nil
}

// Search returns the jobs matching the query. An empty query returns every job.
func (j *Jobs) Search(query string) []Job {
	found := make([]Job, 0, len(j.Items))
	for _, job := range j.Items {
		if job.Matches(query) {
			found = append(found, job)
		}
	}
	return found
}

func (j *Jobs) ByEmployer(employerID string) []Job {
	found := make([]Job, 0)
	for _, job := range j.Items {
		if job.EmployerID == employerID {
			found = append(found, job)
		}
	}
	return found
}

// ParseTechStack splits a comma separated list of technologies.
func ParseTechStack(raw string) []string {
	return utils.SplitList(raw)
}

// ShortDate keeps the calendar date part of an ISO timestamp.
func ShortDate(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > len(DateLayout) {
		return s[:len(DateLayout)]
	}
	return s
}
