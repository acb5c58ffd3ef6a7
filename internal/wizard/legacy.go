package wizard

// legacy.go — the hardcoded questionnaire path used when no questionnaire
// file is supplied. Collects the four fixed configuration sections and
// returns a config.ProjectConfiguration.

import (
	"errors"
	"unicode/utf8"

	"steerwiz/internal/config"
	"steerwiz/internal/prompt"
)

const repoURLAttempts = 3

// CollectLegacy runs the fixed questionnaire and assembles the project
// configuration, stamped with the current date.
func (e *Engine) CollectLegacy(projectPath string) (config.ProjectConfiguration, error) {
	e.Console.Panel("Steering Docs Wizard", "Let's configure your project's development guidelines!")
	e.Console.Blank()
	e.Console.Field("Project Path", projectPath)
	e.Console.Blank()

	testing, err := e.promptTesting()
	if err != nil {
		return config.ProjectConfiguration{}, err
	}
	hosting, err := e.promptHosting()
	if err != nil {
		return config.ProjectConfiguration{}, err
	}
	formatting, err := e.promptFormatting()
	if err != nil {
		return config.ProjectConfiguration{}, err
	}
	env, err := e.promptEnvironment()
	if err != nil {
		return config.ProjectConfiguration{}, err
	}

	return config.New(testing, hosting, formatting, env, projectPath), nil
}

func (e *Engine) promptTesting() (config.TestingConfig, error) {
	e.Console.Section("Testing Configuration")

	options := []struct{ value, label string }{
		{config.TestingDocker, "Docker containers"},
		{config.TestingUnit, "Unit tests only"},
		{config.TestingBoth, "Both Docker and unit tests"},
		{config.TestingNone, "No specific testing preference"},
	}
	e.Console.Blank()
	e.Console.Print("Local testing preferences:")
	for i, o := range options {
		e.Console.Print("  %d. %s", i+1, o.label)
	}
	sel, err := e.Prompter.Choice("Select your local testing preference", len(options), 2)
	if err != nil {
		return config.TestingConfig{}, err
	}
	local := options[sel-1].value

	useDocker := local == config.TestingDocker || local == config.TestingBoth
	useUnit := local == config.TestingUnit || local == config.TestingBoth
	if local == config.TestingNone {
		if useDocker, err = e.Prompter.Confirm("Do you want to include Docker support?", false); err != nil {
			return config.TestingConfig{}, err
		}
		if useUnit, err = e.Prompter.Confirm("Do you want to include unit test support?", true); err != nil {
			return config.TestingConfig{}, err
		}
	}

	return config.TestingConfig{LocalTesting: local, UseDocker: useDocker, UseUnitTests: useUnit}, nil
}

func (e *Engine) promptHosting() (config.HostingConfig, error) {
	e.Console.Blank()
	e.Console.Section("Source Hosting Configuration")

	hasRepo, err := e.Prompter.Confirm("Do you have a remote repository for this project?", false)
	if err != nil {
		return config.HostingConfig{}, err
	}

	var url string
	if hasRepo {
		if url, err = e.promptRepoURL(); err != nil {
			return config.HostingConfig{}, err
		}
	}

	useCI := false
	if url != "" {
		if useCI, err = e.Prompter.Confirm("Do you want to include CI testing configuration?", true); err != nil {
			return config.HostingConfig{}, err
		}
	}

	return config.HostingConfig{RepositoryURL: url, UseCI: useCI}, nil
}

// promptRepoURL asks for a repository URL with bounded retries. Returns ""
// when the user skips or exhausts the budget.
func (e *Engine) promptRepoURL() (string, error) {
	for attempt := 0; attempt < repoURLAttempts; attempt++ {
		url, err := e.Prompter.Line("Enter your repository URL (e.g., https://github.com/user/repo)", "")
		if errors.Is(err, prompt.ErrCanceled) {
			e.Console.Warn("Input canceled.")
			skip, cerr := e.Prompter.Confirm("Skip repository configuration?", true)
			if cerr != nil {
				return "", cerr
			}
			if skip {
				return "", nil
			}
			continue
		}
		if err != nil {
			return "", err
		}

		if url == "" {
			skip, cerr := e.Prompter.Confirm("Skip repository configuration?", true)
			if cerr != nil {
				return "", cerr
			}
			if skip {
				return "", nil
			}
			continue
		}

		if config.RepoURLValid(url) {
			return url, nil
		}
		e.Console.Error("Invalid repository URL format. Please use: https://github.com/username/repository")
		if attempt < repoURLAttempts-1 {
			e.Console.Print("Attempts remaining: %d", repoURLAttempts-attempt-1)
		} else {
			e.Console.Warn("Maximum attempts reached. Skipping repository configuration.")
		}
	}
	return "", nil
}

func (e *Engine) promptFormatting() (config.FormattingConfig, error) {
	e.Console.Blank()
	e.Console.Section("Code Formatting Configuration")

	useFormatter, err := e.Prompter.Confirm("Do you want to enforce an automatic code formatter?", true)
	if err != nil {
		return config.FormattingConfig{}, err
	}
	useStyle, err := e.Prompter.Confirm("Do you want to follow a published style guide?", true)
	if err != nil {
		return config.FormattingConfig{}, err
	}

	custom := ""
	hasCustom, err := e.Prompter.Confirm("Do you have custom formatting rules to add?", false)
	if err != nil {
		return config.FormattingConfig{}, err
	}
	if hasCustom {
		lines, err := e.Prompter.Multiline("Enter your custom formatting rules")
		if err != nil {
			e.Console.Error("Error during input: %v", err)
			e.Console.Warn("Skipping custom formatting rules.")
		} else {
			custom = JoinLines(lines)
		}
	}

	return config.FormattingConfig{UseFormatter: useFormatter, UseStyleGuide: useStyle, CustomRules: custom}, nil
}

func (e *Engine) promptEnvironment() (config.EnvironmentConfig, error) {
	e.Console.Blank()
	e.Console.Section("Environment Configuration")

	options := []struct{ value, label string }{
		{config.EnvLocal, "Local toolchain"},
		{config.EnvContainers, "Containers (reproducible development environments)"},
		{config.EnvBoth, "Containers with local setup documentation"},
	}
	e.Console.Blank()
	e.Console.Print("Environment preferences:")
	for i, o := range options {
		e.Console.Print("  %d. %s", i+1, o.label)
	}
	sel, err := e.Prompter.Choice("Select your environment preference", len(options), 2)
	if err != nil {
		return config.EnvironmentConfig{}, err
	}
	pref := options[sel-1].value

	includeLocal := pref == config.EnvBoth
	if pref == config.EnvLocal || pref == config.EnvContainers {
		includeLocal, err = e.Prompter.Confirm(
			"Do you want to include local setup documentation in the guidelines?",
			pref == config.EnvLocal)
		if err != nil {
			return config.EnvironmentConfig{}, err
		}
	}

	return config.EnvironmentConfig{Preference: pref, IncludeLocalDocs: includeLocal}, nil
}

// ValidateLegacy batch-reports every invalid sub-config. Succeeds iff the
// configuration is fully valid.
func (e *Engine) ValidateLegacy(cfg config.ProjectConfiguration) bool {
	problems := cfg.Problems()
	if len(problems) > 0 {
		e.Console.Blank()
		e.Console.Error("Validation Errors:")
		for _, p := range problems {
			e.Console.Error("  • %s", p)
		}
		return false
	}
	e.Console.Blank()
	e.Console.Success("All responses validated successfully!")
	return true
}

// SummaryLegacy prints the fixed configuration summary.
func (e *Engine) SummaryLegacy(cfg config.ProjectConfiguration) {
	yesno := func(b bool) string {
		if b {
			return "Yes"
		}
		return "No"
	}

	e.Console.Blank()
	e.Console.Section("Configuration Summary")

	e.Console.Blank()
	e.Console.Field("Testing", "")
	e.Console.Print("  Local testing: %s", cfg.Testing.LocalTesting)
	e.Console.Print("  Docker support: %s", yesno(cfg.Testing.UseDocker))
	e.Console.Print("  Unit test support: %s", yesno(cfg.Testing.UseUnitTests))

	e.Console.Blank()
	e.Console.Field("Hosting", "")
	if cfg.Hosting.RepositoryURL != "" {
		e.Console.Print("  Repository: %s", cfg.Hosting.RepositoryURL)
		e.Console.Print("  CI: %s", yesno(cfg.Hosting.UseCI))
	} else {
		e.Console.Print("  No remote repository configured")
	}

	e.Console.Blank()
	e.Console.Field("Formatting", "")
	e.Console.Print("  Formatter: %s", yesno(cfg.Formatting.UseFormatter))
	e.Console.Print("  Style guide: %s", yesno(cfg.Formatting.UseStyleGuide))
	if cfg.Formatting.CustomRules != "" {
		e.Console.Print("  Custom rules: Yes (%d characters)", utf8.RuneCountInString(cfg.Formatting.CustomRules))
	} else {
		e.Console.Print("  Custom rules: No")
	}

	e.Console.Blank()
	e.Console.Field("Environment", "")
	e.Console.Print("  Preference: %s", cfg.Environment.Preference)
	e.Console.Print("  Include local setup docs: %s", yesno(cfg.Environment.IncludeLocalDocs))

	e.Console.Blank()
	e.Console.Field("Project Path", cfg.ProjectPath)
	e.Console.Field("Creation Date", cfg.CreationDate)
}
