package board

type InvitationStatus string

const (
	StatusPending  InvitationStatus = "pending"
	StatusAccepted InvitationStatus = "accepted"
	StatusDeclined InvitationStatus = "declined"
)

type Invitation struct {
	ID         string `json:"id"`
	JobID      string `json:"jobId"`
	TalentID   string `json:"talentId"`
	TalentName string `json:"talentName"`

	// Snapshot of the job at invite time.
	Company  string `json:"company"`
	JobTitle string `json:"jobTitle"`
	Deadline string `json:"deadline"`

	Status InvitationStatus `json:"status"`
}

// InviteRequest describes an employer inviting a talent to a job.
type InviteRequest struct {
	JobID      string
	TalentID   string
	TalentName string
	Company    string
	JobTitle   string
	Deadline   string
}

// IsResponse reports whether the status is an allowed response to a pending invitation.
func (s InvitationStatus) IsResponse() bool {
	return s == StatusAccepted || s == StatusDeclined
}

func (i *Invitation) IsPair(jobID, talentID string) bool {
	return i.JobID == jobID && i.TalentID == talentID
}
