package wizard

// wizard_test.go — collection scenarios driven through a scripted Reader
// prompter, so whole questionnaire walks run without a terminal.

import (
	"io"
	"strings"
	"testing"

	"steerwiz/internal/prompt"
	"steerwiz/internal/schema"
	"steerwiz/internal/ui"
)

// ---------------------------------------------------------------------------
// fixtures
// ---------------------------------------------------------------------------

func testEngine(input string) *Engine {
	return New(prompt.NewReader(strings.NewReader(input), io.Discard), ui.New(io.Discard))
}

func dockerSchema() *schema.Schema {
	return &schema.Schema{
		Metadata: schema.Metadata{Name: "Container Setup", Version: "1.0"},
		Sections: []schema.Section{{
			Name:  "containers",
			Title: "Containers",
			Questions: []schema.Question{
				{ID: "use_docker", Type: schema.TypeBoolean, Prompt: "Use Docker?"},
				{
					ID:        "engine",
					Type:      schema.TypeChoice,
					Prompt:    "Container engine",
					Condition: "use_docker == true",
					Choices: []schema.Choice{
						{Value: "docker", Label: "Docker"},
						{Value: "podman", Label: "Podman", Default: true},
					},
				},
			},
		}},
	}
}

func textSchema(optional bool) *schema.Schema {
	return &schema.Schema{
		Metadata: schema.Metadata{Name: "Naming", Version: "1.0"},
		Sections: []schema.Section{{
			Name:  "naming",
			Title: "Naming",
			Questions: []schema.Question{{
				ID:            "project_name",
				Type:          schema.TypeText,
				Prompt:        "Project name",
				Optional:      optional,
				RetryAttempts: schema.DefaultRetryAttempts,
				Validation:    &schema.ValidationRule{MinLength: 3, Required: true},
			}},
		}},
	}
}

// ---------------------------------------------------------------------------
// Collect
// ---------------------------------------------------------------------------

func TestCollect_ConditionHidesFollowup(t *testing.T) {
	e := testEngine("n\n")
	answers, err := e.Collect(dockerSchema(), "/tmp/proj")
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if got := answers["use_docker"]; got != false {
		t.Errorf("use_docker = %v", got)
	}
	if _, ok := answers["engine"]; ok {
		t.Error("engine should be absent when use_docker is false")
	}
}

func TestCollect_ConditionRevealsFollowup(t *testing.T) {
	// "y" enables docker; empty selection takes the podman default.
	e := testEngine("y\n\n")
	answers, err := e.Collect(dockerSchema(), "/tmp/proj")
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if answers["use_docker"] != true {
		t.Errorf("use_docker = %v", answers["use_docker"])
	}
	if answers["engine"] != "podman" {
		t.Errorf("engine = %v, want podman", answers["engine"])
	}
}

func TestCollect_ChoiceExplicitSelection(t *testing.T) {
	e := testEngine("y\n1\n")
	answers, err := e.Collect(dockerSchema(), "/tmp/proj")
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if answers["engine"] != "docker" {
		t.Errorf("engine = %v, want docker", answers["engine"])
	}
}

func TestCollect_TextRetryThenSucceed(t *testing.T) {
	// "ab" fails the min-length rule, "abcd" passes on the second attempt.
	e := testEngine("ab\nabcd\n")
	answers, err := e.Collect(textSchema(false), "/tmp/proj")
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if answers["project_name"] != "abcd" {
		t.Errorf("project_name = %v", answers["project_name"])
	}
}

func TestCollect_TextBudgetExhausted(t *testing.T) {
	// Three invalid attempts exhaust the budget; the answer is omitted.
	e := testEngine("a\nb\nc\n")
	answers, err := e.Collect(textSchema(false), "/tmp/proj")
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if _, ok := answers["project_name"]; ok {
		t.Errorf("exhausted question should be omitted, got %v", answers["project_name"])
	}
}

func TestCollect_OptionalTextEmptySkips(t *testing.T) {
	e := testEngine("\n")
	answers, err := e.Collect(textSchema(true), "/tmp/proj")
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if _, ok := answers["project_name"]; ok {
		t.Error("empty optional answer should be omitted")
	}
}

func TestCollect_CancelThenSkip(t *testing.T) {
	// End of input cancels the text prompt, then cancels the skip confirm:
	// that second cancellation propagates.
	e := testEngine("")
	_, err := e.Collect(textSchema(false), "/tmp/proj")
	if err == nil {
		t.Fatal("expected a propagated cancellation")
	}
}

func TestCollect_Multiline(t *testing.T) {
	s := &schema.Schema{
		Metadata: schema.Metadata{Name: "Notes", Version: "1.0"},
		Sections: []schema.Section{{
			Name:  "notes",
			Title: "Notes",
			Questions: []schema.Question{
				{ID: "rules", Type: schema.TypeMultiline, Prompt: "Rules"},
			},
		}},
	}
	e := testEngine("first rule\nsecond rule\n\n\n")
	answers, err := e.Collect(s, "/tmp/proj")
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if answers["rules"] != "first rule\nsecond rule" {
		t.Errorf("rules = %q", answers["rules"])
	}
}

// ---------------------------------------------------------------------------
// JoinLines
// ---------------------------------------------------------------------------

func TestJoinLines(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"trailing blanks trimmed", []string{"a", "b", "", ""}, "a\nb"},
		{"interior blank kept", []string{"a", "", "b"}, "a\n\nb"},
		{"all blank", []string{"", " "}, ""},
		{"nil", nil, ""},
	}
	for _, tc := range tests {
		if got := JoinLines(tc.lines); got != tc.want {
			t.Errorf("%s: JoinLines = %q, want %q", tc.name, got, tc.want)
		}
	}
}

// ---------------------------------------------------------------------------
// summary
// ---------------------------------------------------------------------------

func TestSummaryValue_MultilineCountsCharacters(t *testing.T) {
	q := &schema.Question{ID: "notes", Type: schema.TypeMultiline}
	// "ééé" is 3 characters in 6 bytes; the count must match the unit the
	// validation rules use.
	got := summaryValue(q, schema.Answers{"notes": "ééé"})
	if got != "Yes (3 characters)" {
		t.Errorf("summaryValue = %q, want %q", got, "Yes (3 characters)")
	}
}

// ---------------------------------------------------------------------------
// ValidateAll
// ---------------------------------------------------------------------------

func TestValidateAll(t *testing.T) {
	s := dockerSchema()
	e := testEngine("")

	// Hidden required question does not count as a violation.
	ok, violations := e.ValidateAll(schema.Answers{"use_docker": false}, s)
	if !ok || len(violations) != 0 {
		t.Errorf("hidden engine question flagged: %v", violations)
	}

	// Visible but unanswered required question does.
	ok, violations = e.ValidateAll(schema.Answers{"use_docker": true}, s)
	if ok || len(violations) != 1 {
		t.Errorf("missing engine answer not flagged: %v", violations)
	}
}

func TestValidateAll_RuleRecheck(t *testing.T) {
	s := textSchema(false)
	e := testEngine("")
	ok, violations := e.ValidateAll(schema.Answers{"project_name": "ab"}, s)
	if ok || len(violations) != 1 {
		t.Fatalf("stored rule-violating answer not flagged: %v", violations)
	}
}

func TestValidateAll_Idempotent(t *testing.T) {
	s := dockerSchema()
	e := testEngine("")
	answers := schema.Answers{"use_docker": true, "engine": "podman"}

	ok1, v1 := e.ValidateAll(answers, s)
	ok2, v2 := e.ValidateAll(answers, s)
	if ok1 != ok2 || len(v1) != len(v2) {
		t.Errorf("validation pass not idempotent: (%v,%v) vs (%v,%v)", ok1, v1, ok2, v2)
	}
	if answers["use_docker"] != true || answers["engine"] != "podman" {
		t.Error("validation must not mutate the answer map")
	}
}
