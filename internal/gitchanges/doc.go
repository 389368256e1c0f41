// Package gitchanges detects which files changed relative to a base ref.
//
// It shells out to git: the changed set is the three-dot diff against the
// merge base (base...HEAD), i.e. everything touched since the branches
// diverged. The detector fails open: any git failure — missing base ref, not
// a repository, no commits — yields an empty set instead of an error, so
// local misconfiguration never blocks test execution. Faults are only
// visible through verbose diagnostics.
package gitchanges
