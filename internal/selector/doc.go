// Package selector turns a changed-file set into a Playwright --grep filter.
//
// [ResolveTags] matches changed paths against the mapping table's path
// prefixes and returns the set of matching tags. [ComposeFilter] converts a
// tag set into a regex alternation, guaranteeing the filter is never empty:
// with no tags it degrades to the baseline tag so a minimum smoke set always
// runs.
package selector
