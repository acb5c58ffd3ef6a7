// Package config holds the fixed-schema project configuration produced by
// the hardcoded questionnaire path. It predates the YAML-driven flow and is
// kept for the default (no questionnaire file) invocation.
package config

import (
	"regexp"
	"time"
)

// Valid values for TestingConfig.LocalTesting.
const (
	TestingDocker = "docker"
	TestingUnit   = "unit"
	TestingBoth   = "both"
	TestingNone   = "none"
)

// Valid values for EnvironmentConfig.Preference.
const (
	EnvContainers = "containers"
	EnvLocal      = "local"
	EnvBoth       = "containers_with_local_docs"
)

// repoURLPattern matches https://github.com/<owner>/<repo> with an optional
// trailing slash.
var repoURLPattern = regexp.MustCompile(`^https://github\.com/[a-zA-Z0-9_.-]+/[a-zA-Z0-9_.-]+/?$`)

// RepoURLValid reports whether url is a well-formed repository URL.
func RepoURLValid(url string) bool {
	return repoURLPattern.MatchString(url)
}

// TestingConfig captures local testing preferences.
type TestingConfig struct {
	LocalTesting string
	UseDocker    bool
	UseUnitTests bool
}

// Validate reports whether the testing preference is a recognised value.
func (c TestingConfig) Validate() bool {
	switch c.LocalTesting {
	case TestingDocker, TestingUnit, TestingBoth, TestingNone:
		return true
	}
	return false
}

// HostingConfig captures source-hosting preferences. An empty RepositoryURL
// means no remote repository is configured.
type HostingConfig struct {
	RepositoryURL string
	UseCI         bool
}

// Validate reports whether the repository URL, when present, is well formed.
func (c HostingConfig) Validate() bool {
	if c.RepositoryURL == "" {
		return true
	}
	return RepoURLValid(c.RepositoryURL)
}

// FormattingConfig captures code formatting preferences.
type FormattingConfig struct {
	UseFormatter  bool
	UseStyleGuide bool
	CustomRules   string
}

// Validate always passes: every formatting combination is acceptable.
func (c FormattingConfig) Validate() bool { return true }

// EnvironmentConfig captures development environment preferences.
type EnvironmentConfig struct {
	Preference       string
	IncludeLocalDocs bool
}

// Validate reports whether the environment preference is a recognised value.
func (c EnvironmentConfig) Validate() bool {
	switch c.Preference {
	case EnvContainers, EnvLocal, EnvBoth:
		return true
	}
	return false
}

// ProjectConfiguration is the complete fixed-schema configuration.
type ProjectConfiguration struct {
	Testing      TestingConfig
	Hosting      HostingConfig
	Formatting   FormattingConfig
	Environment  EnvironmentConfig
	ProjectPath  string
	CreationDate string // YYYY-MM-DD
}

// New assembles a ProjectConfiguration stamped with the current date.
func New(testing TestingConfig, hosting HostingConfig, formatting FormattingConfig, env EnvironmentConfig, projectPath string) ProjectConfiguration {
	return ProjectConfiguration{
		Testing:      testing,
		Hosting:      hosting,
		Formatting:   formatting,
		Environment:  env,
		ProjectPath:  projectPath,
		CreationDate: time.Now().Format("2006-01-02"),
	}
}

// Validate reports whether every sub-config and the date stamp are valid.
func (c ProjectConfiguration) Validate() bool {
	if _, err := time.Parse("2006-01-02", c.CreationDate); err != nil {
		return false
	}
	return c.Testing.Validate() && c.Hosting.Validate() &&
		c.Formatting.Validate() && c.Environment.Validate()
}

// Problems returns a message for every invalid sub-config, in a fixed order.
func (c ProjectConfiguration) Problems() []string {
	var out []string
	if !c.Testing.Validate() {
		out = append(out, "testing configuration is invalid")
	}
	if !c.Hosting.Validate() {
		out = append(out, "hosting configuration is invalid")
	}
	if !c.Formatting.Validate() {
		out = append(out, "formatting configuration is invalid")
	}
	if !c.Environment.Validate() {
		out = append(out, "environment configuration is invalid")
	}
	if _, err := time.Parse("2006-01-02", c.CreationDate); err != nil {
		out = append(out, "creation date is not in YYYY-MM-DD form")
	}
	return out
}
