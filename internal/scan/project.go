// Package scan implements an optional project-scan mode: when the CLI
// is pointed at a directory rather than a single file, a project root
// is located by walking up for a recognizable marker file (go.mod,
// pom.xml, package.json, ...). FindRoot reports the root, its marker
// and that marker's DefaultLang; the scanned files are still detected
// one by one, and DefaultLang is not consulted during detection.
package scan

import (
	"context"
	"os"
	"path/filepath"

	"github.com/viant/afs"
	"golang.org/x/mod/modfile"

	"github.com/wattrace/analyzer-core/internal/model"
)

// marker maps a project root file to the language most of that
// project's source is written in, and the order markers are checked in
// (earlier entries win when a directory carries more than one).
var markers = []struct {
	file string
	lang model.Language
}{
	{"go.mod", model.Unknown}, // resolved via ProjectRoot.ModulePath instead
	{"pom.xml", model.Java},
	{"build.gradle", model.Java},
	{"package.json", model.JavaScript},
	{"pyproject.toml", model.Python},
	{"requirements.txt", model.Python},
}

// ProjectRoot is what FindRoot reports about the nearest recognizable
// project root above a given path.
type ProjectRoot struct {
	Path        string
	DefaultLang model.Language
	Marker      string
	ModulePath  string // populated only when Marker is "go.mod"
}

// FindRoot walks up from startPath looking for the first directory that
// carries one of the recognized marker files. It returns ok=false when
// no marker is found before reaching the filesystem root.
func FindRoot(startPath string) (ProjectRoot, bool) {
	abs, err := filepath.Abs(startPath)
	if err != nil {
		return ProjectRoot{}, false
	}
	dir := abs
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		dir = filepath.Dir(abs)
	}

	for {
		for _, m := range markers {
			candidate := filepath.Join(dir, m.file)
			if _, err := os.Stat(candidate); err != nil {
				continue
			}
			root := ProjectRoot{Path: dir, DefaultLang: m.lang, Marker: m.file}
			if m.file == "go.mod" {
				root.DefaultLang = model.Unknown // Go source isn't one of the five estimated dialects
				root.ModulePath = readModulePath(candidate)
			}
			return root, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ProjectRoot{}, false
		}
		dir = parent
	}
}

// readModulePath extracts the module path from a go.mod file using
// afs.Service for the read (uniform local/remote access) and
// golang.org/x/mod/modfile for the parse (correct even when the module
// directive carries a version suffix or the file has non-canonical
// formatting that a regexp would mishandle).
func readModulePath(goModPath string) string {
	fs := afs.New()
	content, err := fs.DownloadWithURL(context.Background(), goModPath)
	if err != nil || len(content) == 0 {
		content, err = os.ReadFile(goModPath)
		if err != nil {
			return ""
		}
	}
	mod, err := modfile.Parse(goModPath, content, nil)
	if err != nil || mod.Module == nil {
		return ""
	}
	return mod.Module.Mod.Path
}
