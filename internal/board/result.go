package board

// Reason explains why a workflow operation did not succeed.
type Reason string

const (
	ReasonAlreadyApplied       Reason = "already_applied"
	ReasonAlreadyInvited       Reason = "already_invited"
	ReasonJobNotFound          Reason = "job_not_found"
	ReasonInvitationNotFound   Reason = "invitation_not_found"
	ReasonInvalidStatus        Reason = "invalid_status"
	ReasonInvalidSource        Reason = "invalid_source"
	ReasonInvitationNotPending Reason = "invitation_not_pending"
)

// Result is the outcome of a workflow operation. Expected failures such as duplicates
// are reported here and never as errors.
type Result struct {
	Success        bool   `json:"success"`
	AlreadyApplied bool   `json:"alreadyApplied,omitempty"`
	AlreadyInvited bool   `json:"alreadyInvited,omitempty"`
	Reason         Reason `json:"reason,omitempty"`
}

func Succeeded() Result {
	return Result{Success: true}
}

func Failed(reason Reason) Result {
	return Result{
		Success:        false,
		AlreadyApplied: reason == ReasonAlreadyApplied,
		AlreadyInvited: reason == ReasonAlreadyInvited,
		Reason:         reason,
	}
}

// Outcome is a short label for logs and metrics.
func (r Result) Outcome() string {
	if r.Success {
		return "success"
	}
	if r.Reason == "" {
		return "failed"
	}
	return string(r.Reason)
}
