package gemini

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/spigell/talentx/internal/board"
)

type fakeResponse struct {
	resp *genai.GenerateContentResponse
	err  error
}

type fakeModels struct {
	mu      sync.Mutex
	queue   []fakeResponse
	models  []string
	prompts []string
}

func (f *fakeModels) enqueue(resp *genai.GenerateContentResponse, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queue = append(f.queue, fakeResponse{resp: resp, err: err})
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.models = append(f.models, model)
	for _, c := range contents {
		for _, p := range c.Parts {
			f.prompts = append(f.prompts, p.Text)
		}
	}

	if len(f.queue) == 0 {
		return nil, errors.New("unexpected call")
	}
	res := f.queue[0]
	f.queue = f.queue[1:]
	return res.resp, res.err
}

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{}
	for _, p := range parts {
		content.Parts = append(content.Parts, &genai.Part{Text: p})
	}
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: content}}}
}

func newTestGenerator(models *fakeModels, maxRetries int) *Generator {
	g := newGenerator(models, "gemini-pro", maxRetries, zap.NewNop())
	g.wait = func(context.Context, time.Duration) error { return nil }
	return g
}

func TestGeneratorRetriesOnTemporaryError(t *testing.T) {
	models := &fakeModels{}
	models.enqueue(nil, genai.APIError{Code: http.StatusInternalServerError, Status: "INTERNAL"})
	models.enqueue(textResponse("retry", " ok "), nil)

	g := newTestGenerator(models, 2)

	output, err := g.GenerateContent(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if output != "retry\nok" {
		t.Fatalf("unexpected output: %q", output)
	}
	if len(models.models) != 2 || models.models[0] != "gemini-pro" {
		t.Fatalf("unexpected calls: %v", models.models)
	}
}

func TestGeneratorStopsAfterRetriesExhausted(t *testing.T) {
	models := &fakeModels{}
	tempErr := genai.APIError{Code: http.StatusServiceUnavailable, Status: "UNAVAILABLE"}
	models.enqueue(nil, tempErr)
	models.enqueue(nil, tempErr)

	g := newTestGenerator(models, 2)

	_, err := g.GenerateContent(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected error after retries exhausted")
	}
	if len(models.models) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(models.models))
	}
}

func TestGeneratorDoesNotRetryPermanentErrors(t *testing.T) {
	models := &fakeModels{}
	models.enqueue(nil, genai.APIError{Code: http.StatusBadRequest, Status: "INVALID_ARGUMENT"})

	g := newTestGenerator(models, 3)

	if _, err := g.GenerateContent(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error")
	}
	if len(models.models) != 1 {
		t.Fatalf("expected single call, got %d", len(models.models))
	}
}

func TestGeneratorRejectsEmptyInputAndOutput(t *testing.T) {
	models := &fakeModels{}
	models.enqueue(textResponse("  "), nil)

	g := newTestGenerator(models, 1)

	if _, err := g.GenerateContent(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty prompt")
	}
	if _, err := g.GenerateContent(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for empty response")
	}

	var nilGen *Generator
	if _, err := nilGen.GenerateContent(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for nil generator")
	}
}

func TestDescriber(t *testing.T) {
	models := &fakeModels{}
	models.enqueue(textResponse("```text\nWe are hiring a Go Engineer.\n```"), nil)

	d := NewDescriber(newTestGenerator(models, 1), nil, 0)

	text, err := d.Describe(context.Background(), board.DescriptionRequest{
		Title:     "Go Engineer",
		TechStack: []string{"Go", "PostgreSQL"},
		Deadline:  "2025-06-30",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "We are hiring a Go Engineer." {
		t.Fatalf("unexpected description: %q", text)
	}

	if len(models.prompts) != 1 {
		t.Fatalf("expected 1 prompt, got %d", len(models.prompts))
	}
	for _, want := range []string{"Title: Go Engineer", "Tech stack: Go, PostgreSQL", "Deadline: 2025-06-30"} {
		if !strings.Contains(models.prompts[0], want) {
			t.Errorf("expected %q in prompt:\n%s", want, models.prompts[0])
		}
	}

	if _, err := d.Describe(context.Background(), board.DescriptionRequest{Title: " "}); err == nil {
		t.Fatal("expected error for an empty title")
	}
}

func TestBuildPromptDefaults(t *testing.T) {
	prompt := buildPrompt(board.DescriptionRequest{Title: "Analyst"})

	if !strings.Contains(prompt, "Tech stack: not specified") || !strings.Contains(prompt, "Deadline: none") {
		t.Fatalf("unexpected prompt:\n%s", prompt)
	}
}
