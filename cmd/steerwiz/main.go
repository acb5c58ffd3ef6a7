package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"steerwiz/internal/project"
	"steerwiz/internal/prompt"
	"steerwiz/internal/render"
	"steerwiz/internal/schema"
	"steerwiz/internal/ui"
	"steerwiz/internal/wizard"
)

const version = "1.0.0"

// cycleAttempts bounds how many times a failed collect+render cycle is
// retried before giving up.
const cycleAttempts = 3

// command describes a CLI subcommand.
type command struct {
	name  string
	short string
	usage string
	long  string
	run   func(args []string) error
}

var commands = []command{
	{
		name:  "run",
		short: "Run the wizard and generate steering documents",
		usage: "steerwiz run [-t dir] [-q file] [-n]",
		long: `Run the interactive wizard against a project directory.

Discovers the project by walking up from the target directory looking for
a .steering marker, collects answers, and writes markdown steering
documents into .steering/docs/.

Flags:
  -t dir   target directory to start discovery from (default: current)
  -q file  YAML questionnaire to drive the questions (default: built-in)
  -n       dry run: show what would be generated, write nothing
`,
		run: runRun,
	},
	{
		name:  "validate",
		short: "Validate a questionnaire file without running the wizard",
		usage: "steerwiz validate <file>",
		long: `Load and validate a YAML questionnaire file.

Reports structural problems (missing keys, unknown question types) and
consistency problems (duplicate ids, dangling conditions) without asking
any questions.
`,
		run: runValidate,
	},
	{
		name:  "templates",
		short: "List templates on the search path",
		usage: "steerwiz templates [-q file]",
		long: `List the template files visible on the template search path.

The search path is the questionnaire's directory (when -q is given),
then ./templates.
`,
		run: runTemplates,
	},
	{
		name:  "version",
		short: "Print the steerwiz version",
		usage: "steerwiz version",
		long:  "Print the version and exit.\n",
		run: func(args []string) error {
			fmt.Printf("steerwiz %s\n", version)
			return nil
		},
	},
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "steerwiz — interactive steering document wizard\n\n")
	fmt.Fprintf(w, "Usage:\n  steerwiz <command> [arguments]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.name, cmd.short)
	}
	fmt.Fprintf(w, "\nRun 'steerwiz help <command>' for details on a specific command.\n")
}

func printCommandHelp(w io.Writer, name string) {
	for _, cmd := range commands {
		if cmd.name == name {
			fmt.Fprintf(w, "Usage: %s\n\n%s", cmd.usage, cmd.long)
			return
		}
	}
	fmt.Fprintf(w, "steerwiz: unknown command %q\n\nRun 'steerwiz help' for usage.\n", name)
}

func dispatch(args []string) error {
	if len(args) == 0 {
		// Bare invocation runs the wizard, the common case.
		return runRun(nil)
	}
	if args[0] == "--help" || args[0] == "-h" {
		printUsage(os.Stdout)
		return nil
	}
	if args[0] == "help" {
		if len(args) >= 2 {
			printCommandHelp(os.Stdout, args[1])
		} else {
			printUsage(os.Stdout)
		}
		return nil
	}
	for _, cmd := range commands {
		if cmd.name == args[0] {
			return cmd.run(args[1:])
		}
	}
	return fmt.Errorf("unknown command %q\n\nRun 'steerwiz help' for usage.", args[0])
}

// newPrompter picks the interactive terminal prompter when stdin is a
// terminal and falls back to line-oriented reads for piped input.
func newPrompter() prompt.Prompter {
	if info, err := os.Stdin.Stat(); err == nil && info.Mode()&os.ModeCharDevice != 0 {
		return prompt.NewTerm()
	}
	return prompt.NewReader(os.Stdin, os.Stdout)
}

// ---------------------------------------------------------------------------
// run
// ---------------------------------------------------------------------------

func runRun(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	target := fs.String("t", "", "target directory to start discovery from")
	questionnaire := fs.String("q", "", "YAML questionnaire file")
	dryRun := fs.Bool("n", false, "dry run: write nothing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	console := ui.New(os.Stdout)
	prompter := newPrompter()

	projectPath, err := locateProject(*target, prompter, console)
	if err != nil {
		return err
	}

	docsDir, err := project.EnsureDocsDir(projectPath)
	if err != nil {
		return err
	}

	warnExistingDocs(console, docsDir)

	eng := wizard.New(prompter, console)
	gen := render.NewGenerator(templateEngine(*questionnaire), prompter, console, docsDir)

	err = runCycles(eng, gen, console, *questionnaire, projectPath, *dryRun)
	if errors.Is(err, prompt.ErrCanceled) {
		gen.Cleanup()
		console.Blank()
		console.Warn("Wizard canceled. No documents were kept.")
		os.Exit(1)
	}
	return err
}

// locateProject resolves the project directory: the explicit target when
// given, otherwise a walk up from the current directory, offering to create
// a fresh structure when nothing is found.
func locateProject(target string, prompter prompt.Prompter, console *ui.Console) (string, error) {
	start := target
	if start == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("determine current directory: %w", err)
		}
		start = cwd
	}

	if found, ok := project.Find(start); ok {
		console.Success("Found project: %s", project.DisplayPath(found))
		return found, nil
	}

	console.Warn("No project found at or above %s", project.DisplayPath(start))
	create, err := prompter.Confirm("Create a new steering structure here?", true)
	if err != nil {
		return "", err
	}
	if !create {
		return "", fmt.Errorf("no project to work on")
	}
	if _, err := project.Init(start); err != nil {
		return "", err
	}
	console.Success("Created project structure at %s", project.DisplayPath(start))
	return start, nil
}

func warnExistingDocs(console *ui.Console, docsDir string) {
	existing := project.ExistingDocs(docsDir, []string{render.GuidelinesFile, render.GuidanceFile})
	if len(existing) == 0 {
		return
	}
	console.Blank()
	console.Warn("Existing steering documents found:")
	for _, path := range existing {
		console.Warn("  • %s", filepath.Base(path))
	}
	console.Detail("You will be asked before any file is overwritten.")
}

// templateEngine builds the search path: the questionnaire's directory
// first, then ./templates.
func templateEngine(questionnaire string) *render.Engine {
	var qdir string
	if questionnaire != "" {
		qdir = filepath.Dir(questionnaire)
	}
	return render.NewEngine(qdir, "templates")
}

// runCycles retries the collect+render cycle on non-cancellation failures.
func runCycles(eng *wizard.Engine, gen *render.Generator, console *ui.Console, questionnaire, projectPath string, dryRun bool) error {
	var err error
	for attempt := 1; attempt <= cycleAttempts; attempt++ {
		if questionnaire != "" {
			err = runDynamic(eng, gen, console, questionnaire, projectPath, dryRun)
		} else {
			err = runLegacy(eng, gen, console, projectPath, dryRun)
		}
		if err == nil || errors.Is(err, prompt.ErrCanceled) {
			return err
		}
		console.Blank()
		console.Error("Attempt %d failed: %v", attempt, err)
		if attempt < cycleAttempts {
			console.Print("Retrying...")
		}
	}
	return fmt.Errorf("wizard failed after %d attempts: %w", cycleAttempts, err)
}

// runDynamic is one full cycle of the YAML-driven path.
func runDynamic(eng *wizard.Engine, gen *render.Generator, console *ui.Console, questionnaire, projectPath string, dryRun bool) error {
	s, err := schema.LoadFile(questionnaire)
	if err != nil {
		return err
	}

	answers, err := eng.Collect(s, projectPath)
	if err != nil {
		return err
	}
	if ok, _ := eng.ValidateAll(answers, s); !ok {
		return fmt.Errorf("collected answers failed validation")
	}
	eng.Summary(answers, s)

	ctx := render.Context{
		Answers:      answers,
		Metadata:     s.Metadata,
		ProjectPath:  projectPath,
		CreationDate: creationDate(),
	}
	docs, err := gen.Plan(s, ctx)
	if err != nil {
		return err
	}
	return finish(gen, console, docs, dryRun, s.Metadata)
}

// runLegacy is one full cycle of the built-in questionnaire path.
func runLegacy(eng *wizard.Engine, gen *render.Generator, console *ui.Console, projectPath string, dryRun bool) error {
	cfg, err := eng.CollectLegacy(projectPath)
	if err != nil {
		return err
	}
	if !eng.ValidateLegacy(cfg) {
		return fmt.Errorf("configuration failed validation")
	}
	eng.SummaryLegacy(cfg)

	return finish(gen, console, render.FixedDocuments(cfg), dryRun, schema.Metadata{Name: "Built-in questionnaire", Version: version})
}

// finish either prints the dry-run table or writes the documents and prints
// the success summary.
func finish(gen *render.Generator, console *ui.Console, docs []render.Document, dryRun bool, meta schema.Metadata) error {
	if dryRun {
		console.Blank()
		console.Section("Dry Run")
		console.Print("Would generate %d document(s) in %s:", len(docs), project.DisplayPath(gen.OutDir))
		for _, doc := range docs {
			console.Print("  %-32s %6d bytes", doc.Filename, len(doc.Content))
		}
		console.Blank()
		console.Detail("No files were written.")
		return nil
	}

	console.Blank()
	confirmed, err := gen.Prompter.Confirm("Generate the steering documents now?", true)
	if err != nil {
		return err
	}
	if !confirmed {
		return prompt.ErrCanceled
	}

	wrote, err := gen.Write(docs)
	if err != nil {
		return err
	}

	console.Blank()
	console.Section("Generation Complete")
	total := 0
	for _, path := range wrote {
		size := 0
		if info, serr := os.Stat(path); serr == nil {
			size = int(info.Size())
		}
		total += size
		console.Success("Created %s (%d bytes)", filepath.Base(path), size)
	}
	console.Blank()
	console.Field("Documents", fmt.Sprintf("%d", len(wrote)))
	console.Field("Total size", fmt.Sprintf("%d bytes", total))
	console.Field("Destination", project.DisplayPath(gen.OutDir))
	console.Field("Questionnaire", fmt.Sprintf("%s v%s", meta.Name, meta.Version))
	return nil
}

func creationDate() string { return time.Now().Format("2006-01-02") }

// ---------------------------------------------------------------------------
// validate
// ---------------------------------------------------------------------------

func runValidate(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: steerwiz validate <file>")
	}
	console := ui.New(os.Stdout)

	ok, name, messages := schema.Check(args[0])
	if ok {
		console.Success("%s is a valid questionnaire (%s)", args[0], name)
		return nil
	}
	console.Error("%s has problems:", args[0])
	for _, msg := range messages {
		console.Error("  • %s", msg)
	}
	return fmt.Errorf("%d problem(s) found", len(messages))
}

// ---------------------------------------------------------------------------
// templates
// ---------------------------------------------------------------------------

func runTemplates(args []string) error {
	fs := flag.NewFlagSet("templates", flag.ContinueOnError)
	questionnaire := fs.String("q", "", "YAML questionnaire file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	console := ui.New(os.Stdout)

	names := templateEngine(*questionnaire).ListTemplates()
	if len(names) == 0 {
		console.Warn("No templates found on the search path.")
		return nil
	}
	console.Section("Templates")
	for _, name := range names {
		console.Print("  %s", name)
	}
	return nil
}

func main() {
	if err := dispatch(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
