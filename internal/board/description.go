package board

// DescriptionRequest holds the inputs for generating a job description.
type DescriptionRequest struct {
	Title     string
	TechStack []string
	Deadline  string
}
