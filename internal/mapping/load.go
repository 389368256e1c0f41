package mapping

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotFound reports that a mapping file path did not resolve to an
// existing file.
var ErrNotFound = errors.New("mapping file not found")

// Loader resolves mapping sources and owns the in-process cache. The zero
// value is not usable; call [NewLoader].
type Loader struct {
	cache map[string]Result
}

// NewLoader returns a Loader with an empty cache.
func NewLoader() *Loader {
	return &Loader{cache: make(map[string]Result)}
}

// Invalidate drops every cached entry. Call before Load to guarantee the
// next load observes edits to the underlying file.
func (l *Loader) Invalidate() {
	l.cache = make(map[string]Result)
}

// Load resolves a source into a table. In-memory sources pass through
// unchanged. File sources are resolved against the working directory and
// cached by absolute path until [Loader.Invalidate]; a missing file fails
// with an error matching [ErrNotFound].
func (l *Loader) Load(src Source) (Result, error) {
	if !src.file {
		return Result{Table: src.table}, nil
	}

	abs, err := filepath.Abs(src.path)
	if err != nil {
		return Result{}, fmt.Errorf("resolving mapping path %q: %w", src.path, err)
	}
	if cached, ok := l.cache[abs]; ok {
		return cached, nil
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{}, fmt.Errorf("%w: %s", ErrNotFound, abs)
		}
		return Result{}, fmt.Errorf("reading mapping file: %w", err)
	}

	raw, err := decode(abs, data)
	if err != nil {
		return Result{}, fmt.Errorf("parsing mapping file %s: %w", abs, err)
	}
	table, wrapped, err := FromRaw(raw)
	if err != nil {
		return Result{}, fmt.Errorf("mapping file %s: %w", abs, err)
	}

	res := Result{Table: table, Path: abs, Wrapped: wrapped}
	l.cache[abs] = res
	return res, nil
}

// decode picks the format by extension: .yaml/.yml parse as YAML, anything
// else as JSON.
func decode(path string, data []byte) (map[string]any, error) {
	var raw map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	}
	return raw, nil
}
