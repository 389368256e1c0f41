package selector

import (
	"strings"

	"github.com/dkeech/tagmap/internal/mapping"
)

// TagSet is a set of tag identifiers. Uniqueness is enforced by the map;
// iteration order carries no meaning.
type TagSet map[string]struct{}

// Has reports whether the set contains tag.
func (s TagSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// MatchFunc receives each (file, tag) match for diagnostic output. It must
// not influence the resolved set.
type MatchFunc func(file, tag string)

// ResolveTags matches every changed file against every rule's path prefixes
// and returns the union of matching tags. A file matches a tag when its path
// starts with any one of the tag's prefixes.
//
// Matching is a raw string-prefix test, not segment-aware: the prefix
// "src/ret" matches "src/returns/x.ts". Changing this would change which
// tests run for existing mapping files, so the simplification is kept.
func ResolveTags(changed []string, table mapping.Table, onMatch MatchFunc) TagSet {
	tags := make(TagSet)
	for _, file := range changed {
		for tag, prefixes := range table {
			for _, prefix := range prefixes {
				if !strings.HasPrefix(file, prefix) {
					continue
				}
				if onMatch != nil {
					onMatch(file, tag)
				}
				tags[tag] = struct{}{}
				break
			}
		}
	}
	return tags
}
