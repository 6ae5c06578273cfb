package store

import "github.com/spigell/talentx/internal/board"

// DefaultSeed returns the demo dataset of the mock backend. Application counters match
// the seeded applications, and the accepted invitation has its application.
func DefaultSeed() Seed {
	return Seed{
		Jobs: []board.Job{
			{
				ID:               "job-1",
				EmployerID:       "emp-1",
				Title:            "Senior Data Engineer",
				Company:          "DataFlow Inc",
				Description:      "Design and implement scalable data pipelines using modern cloud platforms. Work with cross-functional teams to define data models and ensure data quality across the organization.",
				TechStack:        []string{"Python", "Spark", "AWS", "SQL", "Terraform"},
				Deadline:         "2025-03-15",
				ApplicationCount: 2,
				CreatedAt:        "2025-01-10",
			},
			{
				ID:               "job-2",
				EmployerID:       "emp-1",
				Title:            "ML Engineer – Recommendation Systems",
				Company:          "DataFlow Inc",
				Description:      "Build and optimize recommendation and personalization models. Experience with large-scale ML systems and A/B testing is required.",
				TechStack:        []string{"Python", "TensorFlow", "PyTorch", "Kubernetes", "GCP"},
				Deadline:         "2025-03-01",
				ApplicationCount: 2,
				CreatedAt:        "2025-01-12",
			},
			{
				ID:               "job-3",
				EmployerID:       "emp-2",
				Title:            "Data Analyst",
				Company:          "Analytics Pro",
				Description:      "Turn business questions into clear analyses and dashboards. Partner with product and engineering to define metrics and track performance.",
				TechStack:        []string{"SQL", "Python", "Tableau", "dbt", "BigQuery"},
				Deadline:         "2025-02-28",
				ApplicationCount: 1,
				CreatedAt:        "2025-01-05",
			},
			{
				ID:               "job-4",
				EmployerID:       "emp-2",
				Title:            "AI Research Scientist",
				Company:          "Analytics Pro",
				Description:      "Conduct research in NLP and computer vision. Publish and present work; collaborate with engineering to ship models to production.",
				TechStack:        []string{"Python", "PyTorch", "Transformers", "MLOps"},
				Deadline:         "2025-04-10",
				ApplicationCount: 0,
				CreatedAt:        "2025-01-20",
			},
			{
				ID:               "job-5",
				EmployerID:       "emp-1",
				Title:            "Data Platform Engineer",
				Company:          "DataFlow Inc",
				Description:      "Own the internal data platform: ingestion, warehousing, and access. Ensure reliability, security, and self-serve analytics.",
				TechStack:        []string{"Java", "Kafka", "Snowflake", "dbt", "Airflow"},
				Deadline:         "2025-03-20",
				ApplicationCount: 0,
				CreatedAt:        "2025-01-15",
			},
		},
		Applications: []board.Application{
			{ID: "app-1", JobID: "job-1", TalentID: "talent-1", TalentName: "Alex Chen", Source: board.SourceManual},
			{ID: "app-2", JobID: "job-1", TalentID: "talent-2", TalentName: "Sam Rivera", Source: board.SourceInvitation},
			{ID: "app-3", JobID: "job-2", TalentID: "talent-1", TalentName: "Alex Chen", Source: board.SourceManual},
			{ID: "app-4", JobID: "job-3", TalentID: "talent-2", TalentName: "Sam Rivera", Source: board.SourceManual},
			{ID: "app-5", JobID: "job-2", TalentID: "talent-2", TalentName: "Sam Rivera", Source: board.SourceInvitation},
		},
		Invitations: []board.Invitation{
			{
				ID: "inv-1", JobID: "job-1", TalentID: "talent-3", TalentName: "Jordan Lee",
				Company: "DataFlow Inc", JobTitle: "Senior Data Engineer", Deadline: "2025-03-15",
				Status: board.StatusPending,
			},
			{
				ID: "inv-2", JobID: "job-2", TalentID: "talent-2", TalentName: "Sam Rivera",
				Company: "DataFlow Inc", JobTitle: "ML Engineer – Recommendation Systems", Deadline: "2025-03-01",
				Status: board.StatusAccepted,
			},
			{
				ID: "inv-3", JobID: "job-4", TalentID: "talent-1", TalentName: "Alex Chen",
				Company: "Analytics Pro", JobTitle: "AI Research Scientist", Deadline: "2025-04-10",
				Status: board.StatusDeclined,
			},
		},
		Talents: []board.Talent{
			{ID: "talent-1", Name: "Alex Chen"},
			{ID: "talent-2", Name: "Sam Rivera"},
			{ID: "talent-3", Name: "Jordan Lee"},
			{ID: "talent-4", Name: "Morgan Taylor"},
			{ID: "talent-5", Name: "Casey Kim"},
		},
	}
}
