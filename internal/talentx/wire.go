package talentx

// The service has been serving several shapes over time, so the wire types keep
// every known name of a field. The facade decides which one wins.

type Job struct {
	ID                string   `mapstructure:"id"`
	MongoID           string   `mapstructure:"_id"`
	Title             string   `mapstructure:"title"`
	Company           string   `mapstructure:"company"`
	CompanyName       string   `mapstructure:"companyName"`
	Description       string   `mapstructure:"description"`
	TechStack         []string `mapstructure:"techStack"`
	Deadline          string   `mapstructure:"deadline"`
	CreatedBy         string   `mapstructure:"createdBy"`
	EmployerID        string   `mapstructure:"employerId"`
	ApplicationCount  *int     `mapstructure:"applicationCount"`
	ApplicationsCount *int     `mapstructure:"applicationsCount"`
	CreatedAt         string   `mapstructure:"createdAt"`
	UpdatedAt         string   `mapstructure:"updatedAt"`
}

type TalentRef struct {
	UID  string `mapstructure:"uid"`
	Name string `mapstructure:"name"`
}

// Application is an applicant of a job or an application of the current talent.
// JobID is either a string or an embedded job object.
type Application struct {
	ID         string     `mapstructure:"id"`
	MongoID    string     `mapstructure:"_id"`
	JobID      any        `mapstructure:"jobId"`
	TalentID   string     `mapstructure:"talentId"`
	TalentName string     `mapstructure:"talentName"`
	Talent     *TalentRef `mapstructure:"talent"`
	Source     string     `mapstructure:"source"`
	Job        *Job       `mapstructure:"job"`
}

// Invitation mirrors Application: JobID may carry the populated job.
type Invitation struct {
	ID         string     `mapstructure:"id"`
	MongoID    string     `mapstructure:"_id"`
	JobID      any        `mapstructure:"jobId"`
	TalentID   string     `mapstructure:"talentId"`
	TalentName string     `mapstructure:"talentName"`
	Talent     *TalentRef `mapstructure:"talent"`
	Company    string     `mapstructure:"company"`
	JobTitle   string     `mapstructure:"jobTitle"`
	Deadline   string     `mapstructure:"deadline"`
	Status     string     `mapstructure:"status"`
}

type TalentScore struct {
	TalentID   string     `mapstructure:"talentId"`
	TalentName string     `mapstructure:"talentName"`
	Talent     *TalentRef `mapstructure:"talent"`
	Score      *float64   `mapstructure:"score"`
	Reason     string     `mapstructure:"reason"`
}

type JobScore struct {
	JobID  string   `mapstructure:"jobId"`
	Job    *Job     `mapstructure:"job"`
	Score  *float64 `mapstructure:"score"`
	Reason string   `mapstructure:"reason"`
}

type User struct {
	ID      string `mapstructure:"id"`
	MongoID string `mapstructure:"_id"`
	UID     string `mapstructure:"uid"`
	Name    string `mapstructure:"name"`
	Email   string `mapstructure:"email"`
	Role    string `mapstructure:"role"`
}

// JobPayload is the body of a job creation request.
type JobPayload struct {
	Title       string   `json:"title"`
	CompanyName string   `json:"companyName"`
	TechStack   []string `json:"techStack"`
	Description string   `json:"description"`
	Deadline    string   `json:"deadline,omitempty"`
}

type describePayload struct {
	Title     string   `json:"title"`
	TechStack []string `json:"techStack"`
}

type describeResponse struct {
	Description string `mapstructure:"description"`
}

type invitePayload struct {
	JobID    string `json:"jobId"`
	TalentID string `json:"talentId"`
}

type respondPayload struct {
	Status string `json:"status"`
}

type onboardPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
