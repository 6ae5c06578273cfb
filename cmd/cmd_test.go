package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/talentx/internal/ai"
	"github.com/spigell/talentx/internal/board"
	"github.com/spigell/talentx/internal/filtering"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()

	viper.Set("storage.driver", storageMemory)
	viper.Set("backend", "mock")
	viper.Set("identity.id", "talent-1")
	viper.Set("exclude-file", "")
	t.Cleanup(func() {
		viper.Set("identity.id", "talent-1")
	})

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("%s: unexpected error: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestJobsListCommand(t *testing.T) {
	var jobs []board.Job
	if err := json.Unmarshal([]byte(runCLI(t, "jobs", "list")), &jobs); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if len(jobs) != 5 {
		t.Fatalf("expected 5 seeded jobs, got %d", len(jobs))
	}
}

func TestApplyCommandReportsDuplicate(t *testing.T) {
	var res board.Result
	if err := json.Unmarshal([]byte(runCLI(t, "apply", "job-1")), &res); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if res.Success || !res.AlreadyApplied {
		t.Fatalf("expected already applied for the seeded application, got %+v", res)
	}
}

func TestMatchJobsCommandFiltersApplied(t *testing.T) {
	var all, feed []board.JobMatch
	// cobra keeps parsed flag values between runs, so the unfiltered run goes last.
	if err := json.Unmarshal([]byte(runCLI(t, "match", "jobs")), &feed); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if err := json.Unmarshal([]byte(runCLI(t, "match", "jobs", "--all")), &all); err != nil {
		t.Fatalf("decoding output: %v", err)
	}

	if len(all) != 5 {
		t.Fatalf("expected every job unfiltered, got %d", len(all))
	}
	for _, m := range feed {
		if m.JobID == "job-1" || m.JobID == "job-2" {
			t.Fatalf("feed still contains applied job %s", m.JobID)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	if out := runCLI(t, "version"); !strings.Contains(out, "talentx version") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestOpenStoreDrivers(t *testing.T) {
	dir := t.TempDir()

	for _, driver := range []string{storageMemory, storageFile, storageSQLite} {
		t.Run(driver, func(t *testing.T) {
			st, err := openStore(StorageConfig{Driver: driver, Path: filepath.Join(dir, driver)}, zap.NewNop())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			defer st.Close()

			if n := len(st.ListJobs()); n != 5 {
				t.Fatalf("expected seeded jobs, got %d", n)
			}
		})
	}

	if _, err := openStore(StorageConfig{Driver: "redis", Path: dir}, zap.NewNop()); err == nil {
		t.Fatal("expected error for an unknown driver")
	}
}

func TestNewDescriberFallsBackToTemplate(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	tests := []struct {
		name string
		cfg  AIConfig
	}{
		{name: "disabled", cfg: AIConfig{}},
		{name: "unknown provider", cfg: AIConfig{Enabled: true, Provider: "openai", Gemini: &GeminiConfig{}}},
		{name: "no gemini config", cfg: AIConfig{Enabled: true, Provider: "gemini"}},
		{name: "no api key", cfg: AIConfig{Enabled: true, Gemini: &GeminiConfig{APIKeyFile: filepath.Join(t.TempDir(), "missing")}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDescriber(t.Context(), tt.cfg, zap.NewNop())
			if _, ok := d.(ai.Template); !ok {
				t.Fatalf("expected template describer, got %T", d)
			}
		})
	}
}

func TestSkipFilters(t *testing.T) {
	steps := []filtering.Filter{
		filtering.NewExcludedEmployers([]string{"emp-1"}),
		filtering.NewExpired(nil),
	}

	if err := skipFilters(steps, []string{" employers ", ""}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	statuses := filtering.Describe(steps)
	if statuses[0].Enabled || statuses[0].Reason != "skipped with --skip-filter" {
		t.Fatalf("expected employers to be skipped, got %+v", statuses[0])
	}
	if !statuses[1].Enabled {
		t.Fatalf("expected expired to stay enabled")
	}

	if err := skipFilters(steps, []string{"ai_fit"}); err == nil || !strings.Contains(err.Error(), `"ai_fit"`) {
		t.Fatalf("expected unknown filter error, got %v", err)
	}
}
