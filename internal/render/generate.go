package render

// generate.go — the document generator: plans documents from the schema's
// template table, writes them with per-file overwrite confirmation, and
// tracks every written path so an aborted run can be cleaned up.

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"steerwiz/internal/prompt"
	"steerwiz/internal/schema"
	"steerwiz/internal/ui"
)

// Document is a rendered file awaiting write.
type Document struct {
	Filename string
	Content  string
}

// Generator writes documents into OutDir.
type Generator struct {
	Engine   *Engine
	Prompter prompt.Prompter
	Console  *ui.Console
	OutDir   string

	written []string
}

// NewGenerator returns a generator writing into outDir.
func NewGenerator(e *Engine, p prompt.Prompter, c *ui.Console, outDir string) *Generator {
	return &Generator{Engine: e, Prompter: p, Console: c, OutDir: outDir}
}

// Plan renders every (document, template) pair in the schema's template
// table, in document-name order. A template failure aborts the whole plan.
func (g *Generator) Plan(s *schema.Schema, ctx Context) ([]Document, error) {
	names := make([]string, 0, len(s.Templates))
	for name := range s.Templates {
		names = append(names, name)
	}
	sort.Strings(names)

	docs := make([]Document, 0, len(names))
	for _, name := range names {
		body, err := g.Engine.Render(s.Templates[name], ctx)
		if err != nil {
			return nil, fmt.Errorf("render document %q: %w", name, err)
		}
		docs = append(docs, Document{Filename: Filename(name), Content: body})
	}
	return docs, nil
}

// Write persists the documents. An existing file needs an overwrite
// confirmation; declining skips that document only. Returns the paths
// actually written.
func (g *Generator) Write(docs []Document) ([]string, error) {
	var wrote []string
	for _, doc := range docs {
		path := filepath.Join(g.OutDir, doc.Filename)

		if fileExists(path) {
			overwrite, err := g.Prompter.Confirm(
				fmt.Sprintf("%s already exists. Overwrite?", doc.Filename), false)
			if err != nil {
				return wrote, err
			}
			if !overwrite {
				g.Console.Warn("Skipped %s", doc.Filename)
				continue
			}
		}

		g.written = append(g.written, path) // recorded before the write starts
		if err := os.WriteFile(path, []byte(doc.Content), 0o644); err != nil {
			return wrote, fmt.Errorf("write %s: %w", path, err)
		}
		wrote = append(wrote, path)
	}
	return wrote, nil
}

// Written returns every path the generator started writing, in order.
func (g *Generator) Written() []string {
	return append([]string(nil), g.written...)
}

// Cleanup removes every tracked file. Removal errors are swallowed: cleanup
// runs on the abort path where the original failure matters more.
func (g *Generator) Cleanup() {
	for _, path := range g.written {
		_ = os.Remove(path)
	}
	g.written = nil
}
