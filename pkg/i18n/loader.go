package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// WithJSONDir returns an Option that loads translations from JSON files
// in an fs.FS. The root must contain locale directories directly.
// File convention: {locale}/{namespace}.json; the namespace becomes a
// top-level subtree, so en/common.json key "hello" resolves as
// "common.hello".
//
// Example structure:
//
//	en/common.json
//	en/errors.json
//	de/common.json
func WithJSONDir(fsys fs.FS) Option {
	return func(r *Resolver) error {
		return loadDir(r, fsys, ".json", func(data []byte, v any) error {
			return json.Unmarshal(data, v)
		})
	}
}

// WithYAMLDir returns an Option that loads translations from YAML files
// in an fs.FS. File convention: {locale}/{namespace}.yaml or .yml.
func WithYAMLDir(fsys fs.FS) Option {
	return func(r *Resolver) error {
		return loadDir(r, fsys, ".yaml", func(data []byte, v any) error {
			return yaml.Unmarshal(data, v)
		})
	}
}

// WithTOMLDir returns an Option that loads translations from TOML files
// in an fs.FS. File convention: {locale}/{namespace}.toml.
func WithTOMLDir(fsys fs.FS) Option {
	return func(r *Resolver) error {
		return loadDir(r, fsys, ".toml", func(data []byte, v any) error {
			return toml.Unmarshal(data, v)
		})
	}
}

func loadDir(r *Resolver, fsys fs.FS, ext string, unmarshal func([]byte, any) error) error {
	return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		fileExt := strings.ToLower(path.Ext(filePath))

		var matches bool
		if ext == ".yaml" {
			matches = fileExt == ".yaml" || fileExt == ".yml"
		} else {
			matches = fileExt == ext
		}
		if !matches {
			return nil
		}

		dir := path.Dir(filePath)
		if dir == "." || dir == "" {
			return fmt.Errorf("%w: file %q must be inside a locale directory", ErrInvalidFile, filePath)
		}

		locale := path.Base(dir)
		namespace := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		var tree map[string]any
		if err := unmarshal(data, &tree); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
		}

		r.merge(locale, Tree{namespace: tree})

		return nil
	})
}
