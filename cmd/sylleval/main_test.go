package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jamesainslie/go-sylleval/labels"
)

const testDoc = `{
  "model": "mixtral",
  "index": 2,
  "labels": [
    {"word": "cat", "response": ["ca", "t"], "label": ["TP", "FP"]},
    {"word": "dog", "response": ["d", "og"], "label": ["FN", "TP"]}
  ]
}`

func writeLabels(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "labeled_experiment.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args, "--env-file", ""))
	err := cmd.Execute()
	return out.String(), err
}

func TestScoreCommand(t *testing.T) {
	path := writeLabels(t, testDoc)

	out, err := run(t, "score", "--labels", path)
	if err != nil {
		t.Fatalf("score error = %v", err)
	}

	want := "Accuracy word: 0.0\n" +
		"Accuracy syllable: 0.5\n" +
		"Precision: 0.6666666666666666\n" +
		"Recall: 0.6666666666666666\n" +
		"F1: 0.6666666666666666\n"
	if out != want {
		t.Errorf("score output =\n%s\nwant\n%s", out, want)
	}
}

func TestScoreCommand_YAML(t *testing.T) {
	path := writeLabels(t, testDoc)

	out, err := run(t, "score", "--labels", path, "--format", "yaml")
	if err != nil {
		t.Fatalf("score error = %v", err)
	}
	if !strings.Contains(out, "true_positives: 2") {
		t.Errorf("yaml output missing counts:\n%s", out)
	}
}

func TestScoreCommand_Counts(t *testing.T) {
	path := writeLabels(t, testDoc)

	out, err := run(t, "score", "--labels", path, "--counts")
	if err != nil {
		t.Fatalf("score error = %v", err)
	}
	if !strings.HasSuffix(out, "(TP: 2, FP: 1, FN: 1, Pass: 0, Words: 2)\n") {
		t.Errorf("output missing counts line:\n%s", out)
	}
}

func TestScoreCommand_DegenerateIsNotFatal(t *testing.T) {
	path := writeLabels(t, `{"index": 1, "labels": [{"word": "hmm", "response": [], "label": ["Pass"]}]}`)

	out, err := run(t, "score", "--labels", path)
	if err != nil {
		t.Fatalf("score error = %v, want nil", err)
	}
	if !strings.Contains(out, "F1: undefined") {
		t.Errorf("output missing undefined F1:\n%s", out)
	}
}

func TestScoreCommand_LoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr error
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") },
			wantErr: labels.ErrInputLoad,
		},
		{
			name:    "invalid json",
			path:    func(t *testing.T) string { return writeLabels(t, "{") },
			wantErr: labels.ErrInputLoad,
		},
		{
			name: "missing label key",
			path: func(t *testing.T) string {
				return writeLabels(t, `{"index": 1, "labels": [{"word": "cat", "response": ["cat"]}]}`)
			},
			wantErr: labels.ErrMalformedInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "score", "--labels", tt.path(t))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("score error = %v, want %v", err, tt.wantErr)
			}
			if out != "" {
				t.Errorf("score printed output on load failure:\n%s", out)
			}
			if msg := errorMessage(err); !strings.HasPrefix(msg, "Error loading inputs: labels: ") {
				t.Errorf("errorMessage() = %q, want prefix %q", msg, "Error loading inputs: labels: ")
			}
		})
	}
}

func TestTableCommand(t *testing.T) {
	path := writeLabels(t, testDoc)

	out, err := run(t, "table", "--labels", path)
	if err != nil {
		t.Fatalf("table error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	want := []string{
		"mixtral",
		"---------------------------------------",
		"Word,Response,Labels",
		"cat,ca-t,TP-FP",
		"dog,d-og,FN-TP",
		"---------------------------------------",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), out)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestErrorMessage_Other(t *testing.T) {
	got := errorMessage(errors.New(`unknown format "xml"`))
	want := `Error: unknown format "xml"`
	if got != want {
		t.Errorf("errorMessage() = %q, want %q", got, want)
	}
}
