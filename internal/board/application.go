package board

type Source string

const (
	SourceManual     Source = "manual"
	SourceInvitation Source = "invitation"

	DefaultTalentName = "Talent"
)

type Application struct {
	ID         string `json:"id"`
	JobID      string `json:"jobId"`
	TalentID   string `json:"talentId"`
	TalentName string `json:"talentName"`
	Source     Source `json:"source"`

	// Job is a summary of the applied job. Only the remote service fills it.
	Job *JobSummary `json:"job,omitempty"`
}

type JobSummary struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Company string `json:"company"`
}

// ApplyRequest describes a talent applying to a job.
type ApplyRequest struct {
	JobID      string
	TalentID   string
	TalentName string
	Source     Source
}

// IsValid reports whether s is one of the known sources.
func (s Source) IsValid() bool {
	return s == SourceManual || s == SourceInvitation
}

// ParseSource maps an arbitrary value to a known source, falling back to manual.
func ParseSource(s string) Source {
	if Source(s) == SourceInvitation {
		return SourceInvitation
	}
	return SourceManual
}

// IsPair reports whether the application belongs to the given job and talent.
func (a *Application) IsPair(jobID, talentID string) bool {
	return a.JobID == jobID && a.TalentID == talentID
}
