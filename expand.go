package logwatch

import (
	"path/filepath"

	"github.com/spf13/afero"
)

var defaultFS = afero.NewOsFs()

// expandPaths resolves each root into the plain files reachable under it and
// calls visit once per file. A root that is itself a plain file is visited
// directly. Roots that do not exist and directories that cannot be listed are
// skipped without error.
func expandPaths(fsys afero.Fs, roots []string, visit func(path string)) {
	for _, root := range roots {
		info, err := fsys.Stat(root)
		if err != nil {
			continue
		}
		if info.IsDir() {
			expandDir(fsys, root, visit)
		} else {
			visit(root)
		}
	}
}

// expandDir visits the plain files of dir before descending into any of its
// subdirectories. Relative order is otherwise whatever ReadDir returns.
func expandDir(fsys afero.Fs, dir string, visit func(path string)) {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return
	}
	var subdirs []string
	for _, entry := range entries {
		name := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			subdirs = append(subdirs, name)
			continue
		}
		visit(name)
	}
	for _, sub := range subdirs {
		expandDir(fsys, sub, visit)
	}
}
