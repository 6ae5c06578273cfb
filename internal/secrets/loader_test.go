package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	tokenFile := filepath.Join(dir, "token")
	if err := os.WriteFile(tokenFile, []byte("  file-token \n"), 0o600); err != nil {
		t.Fatalf("writing token file: %v", err)
	}

	emptyFile := filepath.Join(dir, "empty")
	if err := os.WriteFile(emptyFile, []byte("\n"), 0o600); err != nil {
		t.Fatalf("writing empty file: %v", err)
	}

	t.Setenv("TALENTX_TEST_TOKEN", " env-token ")

	tests := []struct {
		name    string
		src     Source
		want    string
		wantErr string
	}{
		{
			name: "file wins over env and value",
			src:  Source{Name: "api token", File: tokenFile, Env: "TALENTX_TEST_TOKEN", Value: "inline"},
			want: "file-token",
		},
		{
			name: "env wins over value",
			src:  Source{Name: "api token", Env: "TALENTX_TEST_TOKEN", Value: "inline"},
			want: "env-token",
		},
		{
			name: "unset env falls back to value",
			src:  Source{Name: "api token", Env: "TALENTX_TEST_MISSING", Value: " inline "},
			want: "inline",
		},
		{
			name:    "empty file",
			src:     Source{Name: "api token", File: emptyFile},
			wantErr: "is empty",
		},
		{
			name:    "missing file",
			src:     Source{Name: "api token", File: filepath.Join(dir, "nope")},
			wantErr: "reading api token",
		},
		{
			name:    "nothing configured",
			src:     Source{},
			wantErr: "secret is not configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.src)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
