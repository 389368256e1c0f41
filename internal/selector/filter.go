package selector

import (
	"sort"
	"strings"
)

const (
	// BaselineTag marks tests that are always relevant. It is included in
	// the filter by default so a minimum smoke set runs even when no
	// changes were detected.
	BaselineTag = "@smoke"

	// MatchAll selects every test regardless of tags.
	MatchAll = ".*"
)

// ComposeFilter converts a tag set into a --grep expression. When
// includeBaseline is true the baseline tag is added unless already present.
// The result is never empty: an empty set degrades to the baseline tag
// alone. Multiple tags become a parenthesized alternation in sorted order;
// a single tag is returned bare.
//
// Pure function: no I/O, deterministic for a given input.
func ComposeFilter(tags TagSet, includeBaseline bool) string {
	all := make([]string, 0, len(tags)+1)
	for tag := range tags {
		all = append(all, tag)
	}
	if includeBaseline && !tags.Has(BaselineTag) {
		all = append(all, BaselineTag)
	}
	if len(all) == 0 {
		// Only reachable with the baseline disabled and no matches. The
		// runner rejects an empty pattern, so fall back to the baseline.
		return BaselineTag
	}
	sort.Strings(all)
	if len(all) == 1 {
		return all[0]
	}
	return "(" + strings.Join(all, "|") + ")"
}
