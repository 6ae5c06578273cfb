package gemini

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/spigell/talentx/internal/board"
	"github.com/spigell/talentx/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

// Describer asks Gemini for a job description.
type Describer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewDescriber(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Describer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Describer{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

func (d *Describer) Describe(ctx context.Context, req board.DescriptionRequest) (string, error) {
	if strings.TrimSpace(req.Title) == "" {
		return "", fmt.Errorf("job title is required")
	}

	prompt := buildPrompt(req)

	d.logger.Debug("gemini generate content request",
		zap.String("title", req.Title),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, d.maxLogLen)),
	)

	raw, err := d.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", err
	}

	d.logger.Debug("gemini generate content response",
		zap.String("title", req.Title),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, d.maxLogLen)),
	)

	text := stripFences(raw)
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty description")
	}

	return text, nil
}

func buildPrompt(req board.DescriptionRequest) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Title: {{TITLE}}\nTech stack: {{TECH_STACK}}\nDeadline: {{DEADLINE}}\n\nJob description:"
	}

	stack := strings.Join(req.TechStack, ", ")
	if strings.TrimSpace(stack) == "" {
		stack = "not specified"
	}
	deadline := strings.TrimSpace(req.Deadline)
	if deadline == "" {
		deadline = "none"
	}

	prompt := strings.ReplaceAll(template, "{{TITLE}}", strings.TrimSpace(req.Title))
	prompt = strings.ReplaceAll(prompt, "{{TECH_STACK}}", stack)
	prompt = strings.ReplaceAll(prompt, "{{DEADLINE}}", deadline)
	return prompt
}

func stripFences(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```text")
		raw = strings.TrimPrefix(raw, "```")
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(raw)
}
