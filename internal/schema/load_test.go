package schema

// load_test.go — Tests for the two-phase YAML loader: structural failures
// produce one combined error, semantic failures arrive as a batch.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validDoc = `
metadata:
  name: Project Setup
  version: "1.2"
  description: Configure project preferences.
sections:
  - name: build
    title: Build Configuration
    questions:
      - id: use_docker
        type: boolean
        prompt: Do you want docker support?
        default_value: false
      - id: engine
        type: choice
        prompt: Container engine
        condition: use_docker == true
        choices:
          - value: docker
            label: Docker
          - value: podman
            label: Podman
            default: true
      - id: repo_url
        type: text
        prompt: Repository URL
        optional: true
        retry_attempts: 2
        validation:
          regex: 'https://.*'
          error_message: must start with https://
          min_length: 10
  - name: notes
    title: Notes
    questions:
      - id: extra_notes
        type: multiline
        prompt: Anything else?
        optional: true
templates:
  dev_notes: dev.tmpl
`

func TestLoad_Valid(t *testing.T) {
	s, err := Load([]byte(validDoc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if s.Metadata.Name != "Project Setup" || s.Metadata.Version != "1.2" {
		t.Errorf("metadata = %+v", s.Metadata)
	}
	if len(s.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(s.Sections))
	}
	if s.Templates["dev_notes"] != "dev.tmpl" {
		t.Errorf("templates = %v", s.Templates)
	}

	engine := s.QuestionByID("engine")
	if engine == nil || len(engine.Choices) != 2 {
		t.Fatalf("engine question = %+v", engine)
	}
	if !engine.Choices[1].Default {
		t.Error("podman should carry the default flag")
	}
	if engine.RetryAttempts != DefaultRetryAttempts {
		t.Errorf("engine retry budget = %d, want default %d", engine.RetryAttempts, DefaultRetryAttempts)
	}

	repo := s.QuestionByID("repo_url")
	if repo.RetryAttempts != 2 || !repo.Optional {
		t.Errorf("repo_url = %+v", repo)
	}
	if repo.Validation == nil || repo.Validation.MinLength != 10 || !repo.Validation.Required {
		t.Errorf("repo_url validation = %+v", repo.Validation)
	}
	if repo.Validation.Message != "must start with https://" {
		t.Errorf("validation message = %q", repo.Validation.Message)
	}

	docker := s.QuestionByID("use_docker")
	if docker.Default != false {
		t.Errorf("use_docker default = %v (%T), want boolean false", docker.Default, docker.Default)
	}
}

func TestLoad_StructuralErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"missing metadata", "sections: []", `missing required top-level key "metadata"`},
		{"missing metadata description", "metadata: {name: a, version: b}", `missing required field "description"`},
		{"missing sections", "metadata: {name: a, version: b, description: c}", `missing required top-level key "sections"`},
		{
			"missing section questions",
			`
metadata: {name: a, version: b, description: c}
sections:
  - name: s
    title: S
`,
			`missing required key "questions"`,
		},
		{
			"missing question id",
			`
metadata: {name: a, version: b, description: c}
sections:
  - name: s
    title: S
    questions:
      - type: text
        prompt: hi
`,
			`missing required field "id"`,
		},
		{
			"unknown question type",
			`
metadata: {name: a, version: b, description: c}
sections:
  - name: s
    title: S
    questions:
      - id: q1
        type: slider
        prompt: hi
`,
			`invalid type "slider"`,
		},
		{
			"choice missing label",
			`
metadata: {name: a, version: b, description: c}
sections:
  - name: s
    title: S
    questions:
      - id: q1
        type: choice
        prompt: pick
        choices:
          - value: x
`,
			`missing required field "label"`,
		},
	}
	for _, tc := range tests {
		_, err := Load([]byte(tc.doc))
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		var le *LoadError
		if !errors.As(err, &le) {
			t.Errorf("%s: error type %T, want *LoadError", tc.name, err)
			continue
		}
		if le.Stage != "structure" || len(le.Messages) != 1 {
			t.Errorf("%s: stage=%q messages=%v", tc.name, le.Stage, le.Messages)
		}
		if !strings.Contains(le.Messages[0], tc.want) {
			t.Errorf("%s: message %q should contain %q", tc.name, le.Messages[0], tc.want)
		}
	}
}

func TestLoad_ConsistencyBatch(t *testing.T) {
	doc := `
metadata: {name: a, version: b, description: c}
sections:
  - name: s
    title: S
    questions:
      - {id: q1, type: text, prompt: one}
      - {id: q1, type: text, prompt: dup}
      - {id: q2, type: choice, prompt: pick}
      - {id: q3, type: text, prompt: cond, condition: ghost == true}
`
	_, err := Load([]byte(doc))
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
	if le.Stage != "consistency" {
		t.Fatalf("stage = %q", le.Stage)
	}
	// All three semantic violations, not just the first.
	if len(le.Messages) != 3 {
		t.Fatalf("expected 3 messages, got %d: %v", len(le.Messages), le.Messages)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load([]byte("metadata: [unclosed"))
	var le *LoadError
	if !errors.As(err, &le) || le.Stage != "parse" {
		t.Fatalf("expected parse-stage LoadError, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// File loading and validate-only mode
// ---------------------------------------------------------------------------

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	var le *LoadError
	if !errors.As(err, &le) || le.Stage != "read" {
		t.Fatalf("expected read-stage LoadError, got %v", err)
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte(validDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	ok, name, msgs := Check(good)
	if !ok || name != "Project Setup" || len(msgs) != 0 {
		t.Fatalf("Check(good) = (%v, %q, %v)", ok, name, msgs)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("sections: []"), 0o644); err != nil {
		t.Fatal(err)
	}
	ok, _, msgs = Check(bad)
	if ok || len(msgs) == 0 {
		t.Fatalf("Check(bad) = (%v, %v), want failure with messages", ok, msgs)
	}
}
