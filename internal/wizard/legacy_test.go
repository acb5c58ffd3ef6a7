package wizard

// legacy_test.go — scripted walks through the hardcoded questionnaire.

import (
	"testing"

	"steerwiz/internal/config"
)

func TestCollectLegacy_FullWalk(t *testing.T) {
	// 1 → docker testing; y + URL + default-yes CI; default formatter and
	// style guide; no custom rules; default environment (containers) with
	// default local-docs answer.
	e := testEngine("1\ny\nhttps://github.com/user/repo\n\n\n\nn\n\n\n")

	cfg, err := e.CollectLegacy("/tmp/proj")
	if err != nil {
		t.Fatalf("CollectLegacy: %v", err)
	}

	if cfg.Testing.LocalTesting != config.TestingDocker || !cfg.Testing.UseDocker || cfg.Testing.UseUnitTests {
		t.Errorf("testing = %+v", cfg.Testing)
	}
	if cfg.Hosting.RepositoryURL != "https://github.com/user/repo" || !cfg.Hosting.UseCI {
		t.Errorf("hosting = %+v", cfg.Hosting)
	}
	if !cfg.Formatting.UseFormatter || !cfg.Formatting.UseStyleGuide || cfg.Formatting.CustomRules != "" {
		t.Errorf("formatting = %+v", cfg.Formatting)
	}
	if cfg.Environment.Preference != config.EnvContainers || cfg.Environment.IncludeLocalDocs {
		t.Errorf("environment = %+v", cfg.Environment)
	}
	if cfg.ProjectPath != "/tmp/proj" || cfg.CreationDate == "" {
		t.Errorf("path/date = %q / %q", cfg.ProjectPath, cfg.CreationDate)
	}
	if !cfg.Validate() {
		t.Error("full walk should produce a valid configuration")
	}
}

func TestCollectLegacy_NonePreferenceFollowups(t *testing.T) {
	// 4 → no testing preference, then explicit docker/unit confirms.
	e := testEngine("4\ny\nn\nn\n\n\nn\n\n\n")

	cfg, err := e.CollectLegacy("/tmp/proj")
	if err != nil {
		t.Fatalf("CollectLegacy: %v", err)
	}
	if cfg.Testing.LocalTesting != config.TestingNone || !cfg.Testing.UseDocker || cfg.Testing.UseUnitTests {
		t.Errorf("testing = %+v", cfg.Testing)
	}
	if cfg.Hosting.RepositoryURL != "" || cfg.Hosting.UseCI {
		t.Errorf("hosting = %+v", cfg.Hosting)
	}
}

func TestPromptRepoURL_RetryThenValid(t *testing.T) {
	e := testEngine("not-a-url\nhttps://github.com/a/b\n")
	url, err := e.promptRepoURL()
	if err != nil {
		t.Fatalf("promptRepoURL: %v", err)
	}
	if url != "https://github.com/a/b" {
		t.Errorf("url = %q", url)
	}
}

func TestPromptRepoURL_BudgetExhausted(t *testing.T) {
	e := testEngine("bad\nworse\nstill bad\n")
	url, err := e.promptRepoURL()
	if err != nil {
		t.Fatalf("promptRepoURL: %v", err)
	}
	if url != "" {
		t.Errorf("exhausted budget should skip, got %q", url)
	}
}

func TestPromptRepoURL_EmptySkips(t *testing.T) {
	// Empty entry offers a skip; accepting the default skips.
	e := testEngine("\n\n")
	url, err := e.promptRepoURL()
	if err != nil {
		t.Fatalf("promptRepoURL: %v", err)
	}
	if url != "" {
		t.Errorf("url = %q", url)
	}
}
