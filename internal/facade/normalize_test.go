package facade

import (
	"testing"

	"github.com/spigell/talentx/internal/board"
	"github.com/spigell/talentx/internal/talentx"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestNormalizeJobPrecedence(t *testing.T) {
	tests := []struct {
		name string
		in   talentx.Job
		want board.Job
	}{
		{
			name: "new field names win",
			in: talentx.Job{
				ID: "old", MongoID: "new",
				Company: "Old Co", CompanyName: "New Co",
				EmployerID: "emp-old", CreatedBy: "emp-new",
				ApplicationCount: intPtr(1), ApplicationsCount: intPtr(4),
				Deadline: "2026-12-31T23:59:59Z",
			},
			want: board.Job{ID: "new", Company: "New Co", EmployerID: "emp-new", ApplicationCount: 4, Deadline: "2026-12-31", TechStack: []string{}},
		},
		{
			name: "legacy field names",
			in:   talentx.Job{ID: "old", Company: "Old Co", EmployerID: "emp-old", ApplicationCount: intPtr(2)},
			want: board.Job{ID: "old", Company: "Old Co", EmployerID: "emp-old", ApplicationCount: 2, TechStack: []string{}},
		},
		{
			name: "zero counter from the new name wins",
			in:   talentx.Job{ID: "x", ApplicationCount: intPtr(7), ApplicationsCount: intPtr(0)},
			want: board.Job{ID: "x", TechStack: []string{}},
		},
		{
			name: "no counter",
			in:   talentx.Job{ID: "x", TechStack: []string{"Go"}},
			want: board.Job{ID: "x", TechStack: []string{"Go"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeJob(&tt.in)
			if got.ID != tt.want.ID || got.Company != tt.want.Company || got.EmployerID != tt.want.EmployerID ||
				got.ApplicationCount != tt.want.ApplicationCount || got.Deadline != tt.want.Deadline {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
			if got.TechStack == nil || len(got.TechStack) != len(tt.want.TechStack) {
				t.Fatalf("expected tech stack %v, got %v", tt.want.TechStack, got.TechStack)
			}
		})
	}
}

func TestJobIDOf(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil", in: nil, want: ""},
		{name: "string", in: "job-1", want: "job-1"},
		{name: "embedded mongo id", in: map[string]any{"_id": "65f0", "id": "x"}, want: "65f0"},
		{name: "embedded id", in: map[string]any{"id": "x"}, want: "x"},
		{name: "number", in: float64(42), want: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := jobIDOf(tt.in); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNormalizeMatches(t *testing.T) {
	talent := normalizeTalentMatch(talentx.TalentScore{
		TalentID: "flat",
		Talent:   &talentx.TalentRef{UID: "nested", Name: "Jordan"},
		Score:    floatPtr(86.5),
		Reason:   "Go",
	})
	if talent.TalentID != "nested" || talent.TalentName != "Jordan" || talent.Score != 87 {
		t.Fatalf("unexpected talent match: %+v", talent)
	}

	anonymous := normalizeTalentMatch(talentx.TalentScore{TalentID: "t1"})
	if anonymous.TalentName != board.DefaultTalentName || anonymous.Score != 0 {
		t.Fatalf("unexpected defaults: %+v", anonymous)
	}

	job := normalizeJobMatch(talentx.JobScore{JobID: "fallback", Score: floatPtr(71.2)})
	if job.JobID != "fallback" || job.Score != 71 {
		t.Fatalf("unexpected job match: %+v", job)
	}
}

func TestNormalizeUser(t *testing.T) {
	tests := []struct {
		name string
		in   *talentx.User
		want string
	}{
		{name: "uid", in: &talentx.User{UID: "u", MongoID: "m", ID: "i"}, want: "u"},
		{name: "mongo id", in: &talentx.User{MongoID: "m", ID: "i"}, want: "m"},
		{name: "id", in: &talentx.User{ID: "i"}, want: "i"},
		{name: "nil", in: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeUser(tt.in).ID; got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
