package board

type Talent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// User is an onboarded account of the job board.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type OnboardRequest struct {
	Name  string
	Email string
	Role  string
}

const (
	RoleEmployer = "employer"
	RoleTalent   = "talent"
)
