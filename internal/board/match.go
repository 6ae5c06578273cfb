package board

import (
	"fmt"
	"strings"
)

type TalentMatch struct {
	TalentID   string `json:"talentId"`
	TalentName string `json:"talentName"`
	Score      int    `json:"score"`
	Reason     string `json:"reason,omitempty"`
}

type JobMatch struct {
	JobID  string `json:"jobId"`
	Job    Job    `json:"job"`
	Score  int    `json:"score"`
	Reason string `json:"reason,omitempty"`
}

// JobMatches is the match feed of a talent, ordered by score.
type JobMatches struct {
	Items []JobMatch
}

func (m *JobMatches) Len() int {
	return len(m.Items)
}

// Exclude removes the matches whose job field equals one of targets and returns the
// removed job ids. Order of the remaining matches is preserved.
func (m *JobMatches) Exclude(field string, targets []string) []string {
	if len(targets) == 0 {
		return nil
	}

	drop := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		drop[t] = struct{}{}
	}

	return m.Drop(func(match JobMatch) bool {
		_, ok := drop[match.Job.GetStringField(field)]
		return ok
	})
}

// Drop removes every match the predicate selects, keeping the order of the rest.
func (m *JobMatches) Drop(pred func(JobMatch) bool) []string {
	var excluded []string
	kept := m.Items[:0]
	for _, match := range m.Items {
		if pred(match) {
			excluded = append(excluded, match.JobID)
			continue
		}
		kept = append(kept, match)
	}
	m.Items = kept
	return excluded
}

func (m *JobMatches) JobIDs() []string {
	ids := make([]string, 0, len(m.Items))
	for _, match := range m.Items {
		ids = append(ids, match.JobID)
	}
	return ids
}

// ReportByCompany groups the feed by company for a quick overview.
func (m *JobMatches) ReportByCompany() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, match := range m.Items {
		key := fmt.Sprintf("%s (%s)", match.Job.Company, match.Job.EmployerID)
		entry := map[string]string{
			"title":      match.Job.Title,
			"score":      fmt.Sprintf("%d", match.Score),
			"deadline":   match.Job.Deadline,
			"tech_stack": strings.Join(match.Job.TechStack, ", "),
		}
		if match.Reason != "" {
			entry["reason"] = match.Reason
		}
		report[key] = append(report[key], entry)
	}
	return report
}
