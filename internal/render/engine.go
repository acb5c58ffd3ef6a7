// Package render turns collected answers into markdown steering documents.
// The Engine resolves and executes templates against a search path; the
// Generator owns filesystem concerns (overwrite confirmation, written-file
// tracking, cleanup). Fixed builders cover the legacy document set.
package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"steerwiz/internal/schema"
)

// TemplateExt is the extension template files carry on disk.
const TemplateExt = ".tmpl"

// Error kinds, in the order a render proceeds.
const (
	ErrNotFound = iota + 1
	ErrParse
	ErrExec
)

// Error is a typed template failure. Kind tells the caller whether the
// template was missing, malformed, or failed during execution.
type Error struct {
	Kind int
	Name string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrNotFound:
		return fmt.Sprintf("template %q not found on the search path", e.Name)
	case ErrParse:
		return fmt.Sprintf("parse template %q: %v", e.Name, e.Err)
	default:
		return fmt.Sprintf("execute template %q: %v", e.Name, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Context is the data every template executes against.
type Context struct {
	Answers      schema.Answers
	Metadata     schema.Metadata
	ProjectPath  string
	CreationDate string // YYYY-MM-DD
}

// Engine resolves template references against an ordered list of directories.
type Engine struct {
	searchDirs []string
}

// NewEngine returns an engine searching dirs in order. Empty entries are
// dropped so callers can pass optional directories unconditionally.
func NewEngine(dirs ...string) *Engine {
	e := &Engine{}
	for _, d := range dirs {
		if d != "" {
			e.searchDirs = append(e.searchDirs, d)
		}
	}
	return e
}

// resolve maps a template reference to an existing file path. References
// without an extension get TemplateExt appended.
func (e *Engine) resolve(ref string) (string, bool) {
	name := ref
	if filepath.Ext(name) == "" {
		name += TemplateExt
	}
	if filepath.IsAbs(name) {
		if fileExists(name) {
			return name, true
		}
		return "", false
	}
	for _, dir := range e.searchDirs {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return path, true
		}
	}
	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Render executes the referenced template against ctx and returns the
// document body. Failures come back as *Error.
func (e *Engine) Render(ref string, ctx Context) (string, error) {
	path, ok := e.resolve(ref)
	if !ok {
		return "", &Error{Kind: ErrNotFound, Name: ref}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &Error{Kind: ErrNotFound, Name: ref, Err: err}
	}

	tmpl, err := template.New(filepath.Base(path)).Funcs(helpers(ctx)).Parse(string(data))
	if err != nil {
		return "", &Error{Kind: ErrParse, Name: ref, Err: err}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return "", &Error{Kind: ErrExec, Name: ref, Err: err}
	}
	return buf.String(), nil
}

// CheckTemplate parse-checks a single template file without executing it.
func (e *Engine) CheckTemplate(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Error{Kind: ErrNotFound, Name: path, Err: err}
	}
	if _, err := template.New(filepath.Base(path)).Funcs(helpers(Context{})).Parse(string(data)); err != nil {
		return &Error{Kind: ErrParse, Name: path, Err: err}
	}
	return nil
}

// ListTemplates enumerates template files across the search path, sorted by
// name. A name shadowed by an earlier directory appears once.
func (e *Engine) ListTemplates() []string {
	seen := map[string]bool{}
	var out []string
	for _, dir := range e.searchDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, ent := range entries {
			if ent.IsDir() || filepath.Ext(ent.Name()) != TemplateExt {
				continue
			}
			if !seen[ent.Name()] {
				seen[ent.Name()] = true
				out = append(out, ent.Name())
			}
		}
	}
	sort.Strings(out)
	return out
}

// helpers builds the function map templates see. The answer accessors close
// over the context's answer map.
func helpers(ctx Context) template.FuncMap {
	return template.FuncMap{
		// answer returns the stringified answer, or the fallback when absent.
		"answer": func(key, fallback string) string {
			if ctx.Answers.Has(key) {
				return ctx.Answers.String(key)
			}
			return fallback
		},
		"has": func(key string) bool {
			return ctx.Answers.Has(key)
		},
		"isTrue": func(key string) bool {
			return ctx.Answers.Bool(key)
		},
		"yesno": func(v any) string {
			if b, ok := v.(bool); ok && b {
				return "Yes"
			}
			return "No"
		},
	}
}

// Filename derives the on-disk document name: underscores become hyphens and
// the markdown extension is appended.
func Filename(docName string) string {
	return strings.ReplaceAll(docName, "_", "-") + ".md"
}
