package schema

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a descriptor document from the given source and parses it.
func Load(ctx context.Context, src Source) (*File, error) {
	if ctx == nil {
		return nil, errors.New("schema: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.New("schema: source is required")
	}

	data, err := readSource(src)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a descriptor document. Documents are YAML; JSON is accepted
// as a YAML subset.
func Parse(data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("schema: parse descriptor: %w", err)
	}
	if err := file.Validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

func readSource(src Source) ([]byte, error) {
	switch s := src.(type) {
	case fileSource:
		data, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("schema: read %s: %w", s.path, err)
		}
		return data, nil
	case fsSource:
		if s.fsys == nil {
			return nil, errors.New("schema: fs source requires a filesystem")
		}
		data, err := fs.ReadFile(s.fsys, s.name)
		if err != nil {
			return nil, fmt.Errorf("schema: read %s: %w", s.name, err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("schema: unsupported source kind %q", src.Kind())
	}
}
