package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/tweetnotes/internal/output"
)

func TestConvertCommand(t *testing.T) {
	isolateConfig(t)
	archivePath := writeArchive(t)
	outDir := filepath.Join(t.TempDir(), "notes")

	stdout, stderr, err := execute("convert", "-f", archivePath, "-o", outDir, "--timezone", "UTC")
	if err != nil {
		t.Fatalf("convert failed: %v\nstderr: %s", err, stderr)
	}

	if !strings.Contains(stdout, "Wrote 3 notes (5 tweets) to "+outDir) {
		t.Errorf("unexpected summary: %q", stdout)
	}
	if !strings.Contains(stderr, "Saved the tweets to") {
		t.Errorf("expected progress logs on stderr, got: %q", stderr)
	}

	for _, name := range []string{"tweets_202302.md", "tweets_202303.md", "tweets_202304.md"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(outDir, "tweets_202303.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "- **2023-03-11 04:12:48** hello [[@alice]]") {
		t.Errorf("March note missing tweet line:\n%s", data)
	}
}

func TestConvertCommand_RangeAndJSON(t *testing.T) {
	isolateConfig(t)
	archivePath := writeArchive(t)
	outDir := t.TempDir()

	stdout, _, err := execute("convert", "--json", "-f", archivePath, "-o", outDir,
		"-s", "2023-03", "-e", "2023-03", "--timezone", "UTC")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}

	var result struct {
		Posts   int      `json:"posts"`
		Months  int      `json:"months"`
		Written []string `json:"written"`
	}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("Output should be valid JSON: %v\nOutput: %s", err, stdout)
	}
	if result.Posts != 3 || result.Months != 1 {
		t.Errorf("result = %+v, want 3 posts in 1 month", result)
	}
	if len(result.Written) != 1 || filepath.Base(result.Written[0]) != "tweets_202303.md" {
		t.Errorf("Written = %v", result.Written)
	}
}

func TestConvertCommand_DryRun(t *testing.T) {
	isolateConfig(t)
	archivePath := writeArchive(t)
	outDir := filepath.Join(t.TempDir(), "notes")

	stdout, _, err := execute("convert", "-f", archivePath, "-o", outDir, "--timezone", "UTC", "--dry-run")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if !strings.Contains(stdout, "Would write 3 notes from 5 tweets") {
		t.Errorf("unexpected dry-run output: %q", stdout)
	}
	if !strings.Contains(stdout, filepath.Join(outDir, "tweets_202304.md")) {
		t.Errorf("dry-run output should list note paths: %q", stdout)
	}
	if _, err := os.Stat(outDir); !os.IsNotExist(err) {
		t.Errorf("dry run must not create %s", outDir)
	}
}

func TestConvertCommand_OutputDirFromConfig(t *testing.T) {
	configDir := isolateConfig(t)
	archivePath := writeArchive(t)
	outDir := filepath.Join(t.TempDir(), "vault")

	cfg := "output_dir: " + outDir + "\ntimezone: UTC\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, stderr, err := execute("convert", "-f", archivePath); err != nil {
		t.Fatalf("convert failed: %v\nstderr: %s", err, stderr)
	}
	if _, err := os.Stat(filepath.Join(outDir, "tweets_202302.md")); err != nil {
		t.Errorf("expected note in configured output dir: %v", err)
	}
}

func TestConvertCommand_Errors(t *testing.T) {
	isolateConfig(t)
	archivePath := writeArchive(t)
	outDir := t.TempDir()

	tests := []struct {
		name        string
		args        []string
		wantCode    int
		wantContain string
	}{
		{
			name:        "missing --file",
			args:        []string{"convert", "-o", outDir},
			wantCode:    output.ExitUserError,
			wantContain: "--file is required",
		},
		{
			name:        "missing --out",
			args:        []string{"convert", "-f", archivePath},
			wantCode:    output.ExitUserError,
			wantContain: "--out is required",
		},
		{
			name:        "bad start month",
			args:        []string{"convert", "-f", archivePath, "-o", outDir, "-s", "2023/03"},
			wantCode:    output.ExitUserError,
			wantContain: "start month",
		},
		{
			name:        "unknown time zone",
			args:        []string{"convert", "-f", archivePath, "-o", outDir, "--timezone", "Nowhere/Special"},
			wantCode:    output.ExitUserError,
			wantContain: "unknown time zone",
		},
		{
			name:        "archive not found",
			args:        []string{"convert", "-f", filepath.Join(outDir, "missing.js"), "-o", outDir},
			wantCode:    output.ExitSystemError,
			wantContain: "failed to open the file",
		},
		{
			name:        "explicit config not found",
			args:        []string{"convert", "--config", filepath.Join(outDir, "nope.yaml"), "-f", archivePath, "-o", outDir},
			wantCode:    output.ExitUserError,
			wantContain: "config file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(append(tt.args, "--json")...)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if got := output.GetExitCode(err); got != tt.wantCode {
				t.Errorf("exit code = %d, want %d", got, tt.wantCode)
			}

			var result map[string]any
			if err := json.Unmarshal([]byte(stdout), &result); err != nil {
				t.Fatalf("Output should be valid JSON: %v\nOutput: %s", err, stdout)
			}
			msg, _ := result["error"].(string)
			if !strings.Contains(msg, tt.wantContain) {
				t.Errorf("error = %q, want it to contain %q", msg, tt.wantContain)
			}
		})
	}
}
