// Package collector discovers source and definition files under a
// project root, grounded on the original analyzer's SourceFilesCollector
// (a directory walk filtered by extension) but using
// bmatcuk/doublestar/v4 for the recursive glob instead of a bespoke
// walker. Each match is then classified by its suffix, which is how the
// compound definition extension is told apart from the plain one.
package collector

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/foresterr"
)

const (
	// SourceExtension is the extension scripts are matched by.
	SourceExtension = ".ara"
	// DefinitionExtension is the compound extension declaration-only
	// files are matched by; it must be matched by suffix, since its
	// terminal segment (".ara") is identical to SourceExtension.
	DefinitionExtension = ".d.ara"
	// CachedExtension is the extension cache blobs are written with.
	CachedExtension = ".forest.cache"
)

// Discovered is one file found on disk, already classified.
type Discovered struct {
	AbsolutePath string
	Origin       string // relative to project root
	Kind         ast.SourceKind
}

// Collector walks a project's configured source and definition
// directories and returns the deduplicated, stably-ordered file list.
type Collector struct {
	Root           string
	SourceDir      string
	DefinitionDirs []string
}

func New(root, sourceDir string, definitionDirs []string) *Collector {
	return &Collector{Root: root, SourceDir: sourceDir, DefinitionDirs: definitionDirs}
}

// Collect walks every configured directory and returns every matching
// file exactly once, sorted by origin for deterministic downstream
// chunking. Fails with foresterr.InvalidPath if a configured directory
// does not exist under the root, or foresterr.IO on a glob failure.
func (c *Collector) Collect() ([]Discovered, error) {
	dirs := append([]string{c.SourceDir}, c.DefinitionDirs...)

	seen := make(map[string]bool)
	var out []Discovered

	for _, dir := range dirs {
		abs := filepath.Join(c.Root, dir)
		pattern := filepath.ToSlash(filepath.Join(abs, "**", "*"))
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, foresterr.Wrap(foresterr.IO, "walking "+abs, err)
		}
		if len(matches) == 0 && !dirExists(abs) {
			return nil, foresterr.New(foresterr.InvalidPath, abs+" must be a directory relative to the project root")
		}

		for _, m := range matches {
			kind, ok := classify(m)
			if !ok {
				continue
			}
			if seen[m] {
				continue
			}
			seen[m] = true

			origin, err := filepath.Rel(c.Root, m)
			if err != nil {
				return nil, foresterr.Wrap(foresterr.InvalidPath, "computing origin for "+m, err)
			}
			out = append(out, Discovered{
				AbsolutePath: m,
				Origin:       filepath.ToSlash(origin),
				Kind:         kind,
			})
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Origin < out[j].Origin })
	return out, nil
}

// classify reports a file's SourceKind by suffix, preferring the
// longer, more specific definition suffix so a "foo.d.ara" file is
// never misclassified as a plain script.
func classify(path string) (ast.SourceKind, bool) {
	switch {
	case strings.HasSuffix(path, DefinitionExtension):
		return ast.SourceDefinition, true
	case strings.HasSuffix(path, SourceExtension):
		return ast.SourceScript, true
	default:
		return 0, false
	}
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
