package filtering

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/spigell/talentx/internal/board"
)

type ExcludedJobs struct {
	Items []*ExcludedJob
}

type ExcludedJob struct {
	ID         string
	Title      string
	Company    string
	Reason     string `json:",omitempty"`
	ExcludedAt time.Time
}

// ToExcluded converts matches into exclude file entries stamped with at.
func ToExcluded(m *board.JobMatches, reason string, at time.Time) *ExcludedJobs {
	excluded := &ExcludedJobs{}
	for _, match := range m.Items {
		excluded.Items = append(excluded.Items, &ExcludedJob{
			ID:         match.JobID,
			Title:      match.Job.Title,
			Company:    match.Job.Company,
			Reason:     reason,
			ExcludedAt: at.UTC(),
		})
	}
	return excluded
}

// LoadExcludedJobs reads an exclude file. A missing or empty file is an empty list.
func LoadExcludedJobs(path string) (*ExcludedJobs, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &ExcludedJobs{}, nil
	}
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return &ExcludedJobs{}, nil
	}

	var excluded ExcludedJobs
	if err := json.Unmarshal(data, &excluded); err != nil {
		return nil, err
	}
	return &excluded, nil
}

// Append adds the entries whose ids are not in the list yet.
func (e *ExcludedJobs) Append(s *ExcludedJobs) {
	seen := make(map[string]struct{}, len(e.Items))
	for _, job := range e.Items {
		seen[job.ID] = struct{}{}
	}

	for _, job := range s.Items {
		if _, ok := seen[job.ID]; ok {
			continue
		}
		seen[job.ID] = struct{}{}
		e.Items = append(e.Items, job)
	}
}

func (e *ExcludedJobs) JobIDs() []string {
	ids := make([]string, 0, len(e.Items))
	for _, job := range e.Items {
		ids = append(ids, job.ID)
	}
	return ids
}

func (e *ExcludedJobs) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// AppendToFile merges the entries into the exclude file at path.
func AppendToFile(path string, s *ExcludedJobs) error {
	excluded, err := LoadExcludedJobs(path)
	if err != nil {
		return err
	}

	excluded.Append(s)
	return excluded.ToFile(path)
}
