package sink

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// dirContext writes artifacts under a root directory, creating parent
// directories on demand.
type dirContext struct {
	root string
}

// Dir returns a Context rooted at the given directory.
func Dir(root string) Context {
	return &dirContext{root: filepath.Clean(root)}
}

func (d *dirContext) Open(path string) (io.WriteCloser, error) {
	if path == "" {
		return nil, errors.New("sink: path is required")
	}

	full := filepath.Join(d.root, filepath.FromSlash(path))
	rel, err := filepath.Rel(d.root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("sink: path %q escapes the output root", path)
	}

	if dir := filepath.Dir(full); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sink: create directory for %s: %w", path, err)
		}
	}

	out, err := os.Create(full)
	if err != nil {
		return nil, fmt.Errorf("sink: create %s: %w", path, err)
	}
	return out, nil
}
