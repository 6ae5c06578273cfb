package talentx

import (
	"context"
	"net/http"
	"net/url"
)

const (
	jobsPath      = "jobs"
	describePath  = "jobs/generate-jd"
	matchedPath   = "talents/matched"
	allTalentPath = "talents/all"
	feedPath      = "talent/jobs/matched"
	myAppsPath    = "talent/applications"
	onboardPath   = "users/onboard"
	healthPath    = "health"
)

func (c *Client) ListJobs(ctx context.Context) ([]Job, error) {
	raw, err := c.call(ctx, http.MethodGet, jobsPath, nil, nil, true)
	if err != nil {
		return nil, err
	}

	var jobs []Job
	if err := decode(raw, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetJob fetches one job. A missing job is an APIError with status 404.
func (c *Client) GetJob(ctx context.Context, id string) (*Job, error) {
	raw, err := c.call(ctx, http.MethodGet, jobsPath+"/"+url.PathEscape(id), nil, nil, true)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var job Job
	if err := decode(raw, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) CreateJob(ctx context.Context, payload JobPayload) (*Job, error) {
	if payload.TechStack == nil {
		payload.TechStack = []string{}
	}

	raw, err := c.call(ctx, http.MethodPost, jobsPath, nil, payload, true)
	if err != nil {
		return nil, err
	}

	var job Job
	if err := decode(raw, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// GenerateDescription asks the service to write a job description. The service
// ignores deadlines.
func (c *Client) GenerateDescription(ctx context.Context, title string, techStack []string) (string, error) {
	if techStack == nil {
		techStack = []string{}
	}

	raw, err := c.call(ctx, http.MethodPost, describePath, nil, describePayload{Title: title, TechStack: techStack}, true)
	if err != nil {
		return "", err
	}

	var resp describeResponse
	if err := decode(raw, &resp); err != nil {
		return "", err
	}
	return resp.Description, nil
}

// Apply applies the current identity to the job.
func (c *Client) Apply(ctx context.Context, jobID string) error {
	_, err := c.call(ctx, http.MethodPost, jobsPath+"/"+url.PathEscape(jobID)+"/apply", nil, nil, true)
	return err
}

func (c *Client) ListApplicants(ctx context.Context, jobID string) ([]Application, error) {
	raw, err := c.call(ctx, http.MethodGet, jobsPath+"/"+url.PathEscape(jobID)+"/applicants", nil, nil, true)
	if err != nil {
		return nil, err
	}

	var apps []Application
	if err := decode(raw, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// MyApplications lists the applications of the current identity.
func (c *Client) MyApplications(ctx context.Context) ([]Application, error) {
	raw, err := c.call(ctx, http.MethodGet, myAppsPath, nil, nil, true)
	if err != nil {
		return nil, err
	}

	var apps []Application
	if err := decode(raw, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (c *Client) MatchedTalents(ctx context.Context, jobID string) ([]TalentScore, error) {
	q := url.Values{}
	q.Set("jobId", jobID)

	raw, err := c.call(ctx, http.MethodGet, matchedPath, q, nil, true)
	if err != nil {
		return nil, err
	}

	var talents []TalentScore
	if err := decode(raw, &talents); err != nil {
		return nil, err
	}
	return talents, nil
}

func (c *Client) AllTalents(ctx context.Context) ([]TalentScore, error) {
	raw, err := c.call(ctx, http.MethodGet, allTalentPath, nil, nil, true)
	if err != nil {
		return nil, err
	}

	var talents []TalentScore
	if err := decode(raw, &talents); err != nil {
		return nil, err
	}
	return talents, nil
}

// MatchedJobs is the job feed of the current identity.
func (c *Client) MatchedJobs(ctx context.Context) ([]JobScore, error) {
	raw, err := c.call(ctx, http.MethodGet, feedPath, nil, nil, true)
	if err != nil {
		return nil, err
	}

	var jobs []JobScore
	if err := decode(raw, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *Client) Onboard(ctx context.Context, name, email, role string) (*User, error) {
	raw, err := c.call(ctx, http.MethodPost, onboardPath, nil, onboardPayload{Name: name, Email: email, Role: role}, true)
	if err != nil {
		return nil, err
	}

	var user User
	if err := decode(raw, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Health is the only anonymous endpoint.
func (c *Client) Health(ctx context.Context) (map[string]any, error) {
	raw, err := c.call(ctx, http.MethodGet, healthPath, nil, nil, false)
	if err != nil {
		return nil, err
	}

	if status, ok := raw.(map[string]any); ok {
		return status, nil
	}
	return map[string]any{"status": raw}, nil
}
