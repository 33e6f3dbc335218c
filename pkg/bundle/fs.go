package bundle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// fsLoader reads bundles from an fs.FS, typically an embed.FS.
// File convention: {code}.json, {code}.yaml or {code}.yml at the root.
type fsLoader struct {
	fsys fs.FS
}

// NewFSLoader creates a Loader that reads bundle files from fsys.
//
// Example with embedded locales:
//
//	//go:embed locales
//	var locales embed.FS
//
//	sub, _ := fs.Sub(locales, "locales")
//	loader := bundle.NewFSLoader(sub)
func NewFSLoader(fsys fs.FS) Loader {
	return &fsLoader{fsys: fsys}
}

func (l *fsLoader) Load(_ context.Context, code string) (Bundle, error) {
	type candidate struct {
		name      string
		unmarshal func([]byte, any) error
	}

	candidates := []candidate{
		{code + ".json", func(data []byte, v any) error { return json.Unmarshal(data, v) }},
		{code + ".yaml", func(data []byte, v any) error { return yaml.Unmarshal(data, v) }},
		{code + ".yml", func(data []byte, v any) error { return yaml.Unmarshal(data, v) }},
	}

	for _, c := range candidates {
		data, err := fs.ReadFile(l.fsys, c.name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("reading %q: %w", c.name, err)
		}

		var raw map[string]any
		if err := c.unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: parsing %q: %s", ErrInvalidBundle, c.name, err)
		}
		return Bundle(raw), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, code)
}
