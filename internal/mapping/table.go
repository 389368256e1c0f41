package mapping

import "fmt"

// Table maps a tag identifier to its ordered path prefixes.
type Table map[string][]string

// Source selects where a mapping table comes from: an in-memory table or a
// resolvable file path.
type Source struct {
	table Table
	path  string
	file  bool
}

// TableSource wraps an in-memory table. The table is returned unchanged by
// the loader; typed tables carry no "default" wrapping, so none is resolved.
func TableSource(t Table) Source {
	return Source{table: t}
}

// FileSource refers to a mapping file, resolved relative to the current
// working directory.
func FileSource(path string) Source {
	return Source{path: path, file: true}
}

// Result is a loaded table plus where it came from.
type Result struct {
	Table Table
	// Path is the source file, empty for in-memory sources.
	Path string
	// Wrapped reports that the table was nested under a "default" key.
	Wrapped bool
}

// FromRaw converts an untyped table, as produced by a JSON or YAML decoder,
// into a Table. One level of "default"-key wrapping is unwrapped first; the
// second return value reports whether that happened. A rule whose value is
// not a list of strings is an error.
func FromRaw(raw map[string]any) (Table, bool, error) {
	wrapped := false
	if len(raw) == 1 {
		if inner, ok := raw["default"].(map[string]any); ok {
			raw = inner
			wrapped = true
		}
	}

	table := make(Table, len(raw))
	for tag, val := range raw {
		prefixes, err := stringList(val)
		if err != nil {
			return nil, false, fmt.Errorf("rule %q: %w", tag, err)
		}
		table[tag] = prefixes
	}
	return table, wrapped, nil
}

func stringList(val any) ([]string, error) {
	items, ok := val.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a list of path prefixes, got %T", val)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("expected a string prefix, got %T", item)
		}
		out = append(out, s)
	}
	return out, nil
}
