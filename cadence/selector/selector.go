// Package selector picks the file a synthetic commit will
// touch. Every pick independently draws one of a fixed set
// of topical directories; repeats within a run are possible
// and expected.
package selector

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/byte4ever/commit_cadence/cadence/draw"
)

// DefaultDirectories is the fixed topical directory set a
// fabricated repository is built from.
var DefaultDirectories = []string{
	"docs",
	"src",
	"tests",
	"config",
	"examples",
	"utils",
	"scripts",
	"data",
	"assets",
	"templates",
}

// DefaultExtensions is the extension set used when a new
// file has to be synthesized in an empty directory. Each
// entry has a matching mutator snippet.
var DefaultExtensions = []string{
	".md",
	".txt",
	".py",
	".sh",
	".html",
	".css",
	".json",
	".yml",
}

// Selector picks files under a repository root.
type Selector struct {
	root string
	dirs []string
	exts []string
}

// New returns a Selector rooted at root. Empty dirs or
// exts fall back to the default sets.
func New(
	root string,
	dirs []string,
	exts []string,
) *Selector {
	if len(dirs) == 0 {
		dirs = DefaultDirectories
	}

	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	return &Selector{
		root: root,
		dirs: dirs,
		exts: exts,
	}
}

// Pick returns the path of the file to mutate. The chosen
// directory is created if absent. An empty directory yields
// a fresh timestamp-derived filename (the file itself is
// created later by the mutator); otherwise an existing
// regular file is chosen uniformly. The second return value
// reports whether the path is a new file.
func (s *Selector) Pick(
	src draw.Source,
	now time.Time,
) (string, bool, error) {
	const errCtx = "picking file"

	dir := s.dirs[src.IntN(len(s.dirs))]
	dirPath := filepath.Join(s.root, dir)

	//nolint:gosec // repository content directories
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return "", false, fmt.Errorf(
			"%s: create %s: %w", errCtx, dir, err,
		)
	}

	files, err := listRegularFiles(dirPath)
	if err != nil {
		return "", false, fmt.Errorf(
			"%s: list %s: %w", errCtx, dir, err,
		)
	}

	if len(files) == 0 {
		ext := s.exts[src.IntN(len(s.exts))]
		name := fmt.Sprintf(
			"entry_%s%s",
			now.Format("20060102_150405"),
			ext,
		)

		return filepath.Join(dirPath, name), true, nil
	}

	pick := files[src.IntN(len(files))]

	return filepath.Join(dirPath, pick), false, nil
}

// listRegularFiles returns the names of plain files in
// dirPath, skipping subdirectories and dotfiles.
func listRegularFiles(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}

	var files []string

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		if e.Name()[0] == '.' {
			continue
		}

		files = append(files, e.Name())
	}

	return files, nil
}
