// Package ai generates job descriptions.
package ai

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/talentx/internal/board"
)

const genericStack = "modern data and engineering tools"

// Describer writes a job description from a title, a tech stack and a deadline.
type Describer interface {
	Describe(ctx context.Context, req board.DescriptionRequest) (string, error)
}

// Template is the offline describer. It never fails.
type Template struct{}

func (Template) Describe(_ context.Context, req board.DescriptionRequest) (string, error) {
	stack := genericStack
	if items := cleanStack(req.TechStack); len(items) > 0 {
		stack = strings.Join(items, ", ")
	}

	deadline := ""
	if d := strings.TrimSpace(req.Deadline); d != "" {
		deadline = fmt.Sprintf("Application deadline: %s.", d)
	}

	return fmt.Sprintf(`We are looking for a %s to join our team.

Responsibilities:
- Design, build, and maintain robust data and ML systems that power product and business decisions.
- Collaborate with engineering, product, and business teams to define requirements and deliver impact.
- Own quality, reliability, and documentation of your work.

Requirements:
- Strong experience with %s.
- Ability to communicate clearly and work in a fast-paced environment.
- Prior experience in data engineering, analytics, or ML is a plus.

%s

We offer a competitive package and a collaborative, inclusive culture.`, req.Title, stack, deadline), nil
}

// Fallback uses Primary and switches to Secondary when Primary fails.
type Fallback struct {
	Primary   Describer
	Secondary Describer
	Logger    *zap.Logger
}

func (f *Fallback) Describe(ctx context.Context, req board.DescriptionRequest) (string, error) {
	text, err := f.Primary.Describe(ctx, req)
	if err == nil {
		return text, nil
	}

	logger := f.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Warn("generating job description failed, using fallback",
		zap.String("title", req.Title),
		zap.Error(err),
	)

	return f.Secondary.Describe(ctx, req)
}

func cleanStack(stack []string) []string {
	items := make([]string, 0, len(stack))
	for _, s := range stack {
		if s = strings.TrimSpace(s); s != "" {
			items = append(items, s)
		}
	}
	return items
}
