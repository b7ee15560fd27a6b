package daylog

import (
	"io/fs"
	"path/filepath"
)

// FileEntry describes one regular file found under a walked root.
type FileEntry struct {
	Name      string // base name including extension
	Directory string // directory containing the file
	Path      string // full path, root-relative if root was relative
}

// Walk produces a flat list of every regular file under root, recursing
// through subdirectories. Order is not specified. Useful for enumerating
// the partition tree a Log has written.
func Walk(root string) ([]FileEntry, error) {
	var entries []FileEntry
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		entries = append(entries, FileEntry{
			Name:      d.Name(),
			Directory: filepath.Dir(path),
			Path:      path,
		})
		return nil
	})
	if err != nil {
		return nil, fmtErrorf("failed to walk '%s': %w", root, err)
	}
	return entries, nil
}
