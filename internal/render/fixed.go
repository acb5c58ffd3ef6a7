package render

// fixed.go — builders for the fixed legacy document set. These produce the
// two standard steering documents directly from a ProjectConfiguration, with
// sections included or left out based on the configuration.

import (
	"fmt"
	"strings"

	"steerwiz/internal/config"
)

// Standard filenames of the legacy document set.
const (
	GuidelinesFile = "development-guidelines.md"
	GuidanceFile   = "assistant-guidance.md"
)

// FixedDocuments builds the legacy document set from cfg, ready for the
// generator to write.
func FixedDocuments(cfg config.ProjectConfiguration) []Document {
	return []Document{
		{Filename: GuidelinesFile, Content: DevelopmentGuidelines(cfg)},
		{Filename: GuidanceFile, Content: AssistantGuidance(cfg)},
	}
}

func yn(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// DevelopmentGuidelines renders the development-guidelines document.
func DevelopmentGuidelines(cfg config.ProjectConfiguration) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Development Guidelines\n\nGenerated on: %s\n\n", cfg.CreationDate)
	b.WriteString("## Project Configuration\n\n### Testing Preferences\n")
	fmt.Fprintf(&b, "- **Local Testing**: %s\n", cfg.Testing.LocalTesting)
	fmt.Fprintf(&b, "- **Docker Support**: %s\n", yn(cfg.Testing.UseDocker))
	fmt.Fprintf(&b, "- **Unit Test Support**: %s\n", yn(cfg.Testing.UseUnitTests))

	b.WriteString("\n### Source Hosting\n")
	if cfg.Hosting.RepositoryURL != "" {
		fmt.Fprintf(&b, "- **Repository URL**: %s\n", cfg.Hosting.RepositoryURL)
		fmt.Fprintf(&b, "- **CI Workflows**: %s\n", yn(cfg.Hosting.UseCI))
	} else {
		b.WriteString("- **Repository**: Not configured\n")
	}

	b.WriteString("\n### Code Formatting\n")
	fmt.Fprintf(&b, "- **Automatic Formatter**: %s\n", yn(cfg.Formatting.UseFormatter))
	fmt.Fprintf(&b, "- **Style Guide**: %s\n", yn(cfg.Formatting.UseStyleGuide))
	if cfg.Formatting.CustomRules != "" {
		fmt.Fprintf(&b, "\n#### Custom Formatting Rules\n```\n%s\n```\n", cfg.Formatting.CustomRules)
	}

	b.WriteString("\n### Environment\n")
	fmt.Fprintf(&b, "- **Preference**: %s\n", cfg.Environment.Preference)
	fmt.Fprintf(&b, "- **Include Local Setup Docs**: %s\n", yn(cfg.Environment.IncludeLocalDocs))

	b.WriteString("\n## Development Workflow\n\n")
	b.WriteString("This document captures the development preferences for this project. ")
	b.WriteString("These settings should be used to configure development tools and CI pipelines.\n")

	b.WriteString("\n### Testing Setup\n")
	if cfg.Testing.UseDocker {
		b.WriteString("\n#### Docker Testing\n")
		b.WriteString("- Use Docker containers for consistent testing environments\n")
		b.WriteString("- Keep the project Dockerfile current with the build\n")
	}
	if cfg.Testing.UseUnitTests {
		b.WriteString("\n#### Unit Testing\n")
		b.WriteString("- Use the standard test runner for unit and integration tests\n")
		b.WriteString("- Include test coverage reporting where practical\n")
	}

	if cfg.Hosting.UseCI {
		b.WriteString("\n### Continuous Integration\n")
		b.WriteString("- Configure automated testing workflows\n")
		fmt.Fprintf(&b, "- Repository: %s\n", cfg.Hosting.RepositoryURL)
	}

	b.WriteString("\n### Code Quality\n")
	if cfg.Formatting.UseFormatter {
		b.WriteString("\n#### Automatic Formatting\n")
		b.WriteString("- Run the formatter before every commit\n")
		b.WriteString("- Do not hand-adjust formatter output\n")
	}
	if cfg.Formatting.UseStyleGuide {
		b.WriteString("\n#### Style Guide\n")
		b.WriteString("- Follow the adopted style guide for naming and structure\n")
		b.WriteString("- Keep documentation comments in the prescribed format\n")
	}

	switch cfg.Environment.Preference {
	case config.EnvContainers:
		b.WriteString("\n### Development Environment\n")
		b.WriteString("- Use containers for reproducible development environments\n")
		b.WriteString("- Keep the container definition in version control\n")
	case config.EnvLocal:
		b.WriteString("\n### Development Environment\n")
		b.WriteString("- Develop against the local toolchain\n")
		b.WriteString("- Document toolchain versions in the README\n")
	case config.EnvBoth:
		b.WriteString("\n### Development Environment\n")
		b.WriteString("- Use containers as the primary development environment\n")
		b.WriteString("- Keep local setup documentation available as an alternative\n")
	}

	if cfg.Environment.IncludeLocalDocs {
		b.WriteString("\n#### Local Setup (Alternative)\n")
		b.WriteString("Document the steps to install the toolchain, fetch dependencies,\n")
		b.WriteString("and run the test suite without containers.\n")
	}

	b.WriteString("\n---\n\n*This document was generated by the steering docs wizard. Update these guidelines as your project evolves.*\n")
	return b.String()
}

// AssistantGuidance renders the assistant-guidance document.
func AssistantGuidance(cfg config.ProjectConfiguration) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Assistant Development Guidance\n\n**Generated on**: %s\n\n", cfg.CreationDate)
	b.WriteString("## Project Context\n\n")
	b.WriteString("This document provides guidance for development assistants working on this project.\n\n")

	b.WriteString("### Development Environment\n")
	fmt.Fprintf(&b, "- **Testing Approach**: %s\n", cfg.Testing.LocalTesting)
	fmt.Fprintf(&b, "- **Environment**: %s\n", cfg.Environment.Preference)

	b.WriteString("\n### Repository Information\n")
	if cfg.Hosting.RepositoryURL != "" {
		fmt.Fprintf(&b, "- **Repository**: %s\n", cfg.Hosting.RepositoryURL)
		if cfg.Hosting.UseCI {
			b.WriteString("- **CI**: Automated workflows configured\n")
		} else {
			b.WriteString("- **CI**: Manual testing\n")
		}
	} else {
		b.WriteString("- **Repository**: Local development (no remote repository configured)\n")
	}

	b.WriteString("\n## Development Guidelines\n\n### Code Quality Standards\n")
	if cfg.Formatting.UseFormatter {
		b.WriteString("- Run the project formatter on all generated code\n")
	}
	if cfg.Formatting.UseStyleGuide {
		b.WriteString("- Follow the adopted style guide\n")
	}
	if cfg.Formatting.CustomRules != "" {
		fmt.Fprintf(&b, "\n#### Custom Formatting Rules\nThe project has specific formatting requirements:\n\n```\n%s\n```\n", cfg.Formatting.CustomRules)
	}

	b.WriteString("\n### Testing Approach\n")
	if cfg.Testing.UseUnitTests {
		b.WriteString("- Write unit tests for new functionality and keep existing tests passing\n")
	}
	if cfg.Testing.UseDocker {
		b.WriteString("- Ensure tests pass inside the containerized environment\n")
	}

	b.WriteString("\n### Working Practices\n")
	b.WriteString("1. Make small, focused changes that can be easily reviewed\n")
	b.WriteString("2. Explain the reasoning behind structural decisions\n")
	b.WriteString("3. Keep error handling robust and messages actionable\n")
	b.WriteString("4. Keep documentation current with the code\n")

	fmt.Fprintf(&b, "\n### Current Project State\n- **Configuration Date**: %s\n- **Project Path**: %s\n", cfg.CreationDate, cfg.ProjectPath)
	b.WriteString("\n---\n\n*This guidance was generated from the project configuration. Update as the project evolves.*\n")
	return b.String()
}
