// Package project discovers the target project directory and prepares its
// steering docs directory. A project is any directory carrying the marker
// directory; discovery walks from the start directory up to the filesystem
// root.
package project

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// MarkerDir is the directory whose presence identifies a project root.
	MarkerDir = ".steering"
	// DocsSubdir is where generated documents live, under the marker.
	DocsSubdir = "docs"
)

// Find walks from start toward the filesystem root and returns the first
// directory containing the marker. The second return is false when no
// project was found.
func Find(start string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	for {
		if info, err := os.Stat(filepath.Join(dir, MarkerDir)); err == nil && info.IsDir() {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Valid reports whether projectPath is a directory carrying a readable
// marker directory.
func Valid(projectPath string) bool {
	if info, err := os.Stat(projectPath); err != nil || !info.IsDir() {
		return false
	}
	marker := filepath.Join(projectPath, MarkerDir)
	info, err := os.Stat(marker)
	if err != nil || !info.IsDir() {
		return false
	}
	_, err = os.ReadDir(marker)
	return err == nil
}

// Init creates a fresh marker structure under dir, including the docs
// directory. Used when the wizard offers to set up a project from scratch.
func Init(dir string) (string, error) {
	docs := filepath.Join(dir, MarkerDir, DocsSubdir)
	if err := os.MkdirAll(docs, 0o755); err != nil {
		return "", fmt.Errorf("create project structure: %w", err)
	}
	return docs, nil
}

// EnsureDocsDir creates the docs directory under the project's marker if
// needed and verifies it is writable.
func EnsureDocsDir(projectPath string) (string, error) {
	if !Valid(projectPath) {
		return "", fmt.Errorf("no valid project structure at %s", projectPath)
	}
	docs := filepath.Join(projectPath, MarkerDir, DocsSubdir)
	if err := os.MkdirAll(docs, 0o755); err != nil {
		return "", fmt.Errorf("create docs directory %s: %w", docs, err)
	}
	// Probe writability: permission bits alone lie under ACLs and read-only
	// mounts.
	probe := filepath.Join(docs, ".write-check")
	f, err := os.Create(probe)
	if err != nil {
		return "", fmt.Errorf("docs directory %s is not writable: %w", docs, err)
	}
	f.Close()
	os.Remove(probe)
	return docs, nil
}

// DisplayPath returns a user-friendly form of path: relative to the current
// directory when it is inside it, absolute otherwise.
func DisplayPath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(cwd, path)
	if err != nil || rel == ".." || filepath.IsAbs(rel) || len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator) {
		abs, aerr := filepath.Abs(path)
		if aerr != nil {
			return path
		}
		return abs
	}
	if rel == "." {
		return "."
	}
	return "./" + rel
}

// ExistingDocs returns the files in docsDir matching any of the given names,
// in the order the names are listed.
func ExistingDocs(docsDir string, names []string) []string {
	var out []string
	for _, name := range names {
		path := filepath.Join(docsDir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			out = append(out, path)
		}
	}
	return out
}
