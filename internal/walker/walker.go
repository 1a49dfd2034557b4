package walker

import (
	"fmt"
	"os"
	"path/filepath"
)

// ListFiles walks the tree rooted at root and returns the paths of all
// regular files whose extension satisfies pred, in lexical walk order.
// The returned list is built once, before any worker starts, and is
// read-only thereafter.
func ListFiles(root string, pred func(ext string) bool) ([]string, error) {
	var files []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if pred(filepath.Ext(path)) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", root, err)
	}

	return files, nil
}
