// Package fs provides the file system adapters: package discovery and
// deterministic content assembly.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Walker yields the files under a directory, skipping VCS metadata and
// ignored names.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all file paths under root. Directories named .git or .jj
// are always skipped; ignores are matched with filepath.Match against the
// entry name.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if skip := w.skip(d, ignores); skip != nil {
				return skip
			}
			if d.IsDir() {
				return nil
			}
			if isIgnored(d.Name(), ignores) {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Walker) skip(d fs.DirEntry, ignores []string) error {
	if !d.IsDir() {
		return nil
	}
	name := d.Name()
	if name == ".git" || name == ".jj" {
		return filepath.SkipDir
	}
	if isIgnored(name, ignores) {
		return filepath.SkipDir
	}
	return nil
}

func isIgnored(name string, ignores []string) bool {
	for _, pattern := range ignores {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
