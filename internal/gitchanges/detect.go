package gitchanges

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Options controls detection diagnostics and changed-set filtering.
type Options struct {
	// Include keeps only matching paths when non-empty (doublestar globs).
	Include []string
	// Exclude drops matching paths (doublestar globs).
	Exclude []string
	// Verbose enables diagnostics on Log.
	Verbose bool
	// Log receives diagnostics; defaults to os.Stderr.
	Log io.Writer
}

func (o Options) log() io.Writer {
	if o.Log != nil {
		return o.Log
	}
	return os.Stderr
}

// Branch returns the current branch name, or "" when it cannot be
// determined. Informational only.
func Branch() string {
	out, err := gitOutput("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// Detect returns the files touched by commits unique to the current branch
// relative to the merge base with baseRef. Any git failure yields an empty
// set.
func Detect(baseRef string, opts Options) []string {
	if opts.Verbose {
		if branch := Branch(); branch != "" {
			fmt.Fprintf(opts.log(), "tagmap: on branch %s, diffing against %s\n", branch, baseRef)
		}
	}

	out, err := gitOutput("diff", "--name-only", diffRange(baseRef))
	if err != nil {
		if opts.Verbose {
			fmt.Fprintf(opts.log(), "tagmap: git diff failed, assuming no changes: %v\n", err)
		}
		return nil
	}

	files := splitFiles(out)
	files = filterChanged(files, opts.Include, opts.Exclude)
	if opts.Verbose {
		fmt.Fprintf(opts.log(), "tagmap: %d changed file(s)\n", len(files))
	}
	return files
}

// diffRange builds the three-dot range for baseRef. A bare ref becomes
// "ref...HEAD"; a two-dot range supplied by the user is upgraded to
// three-dot so the comparison is always against the merge base.
func diffRange(baseRef string) string {
	if strings.Contains(baseRef, "...") {
		return baseRef
	}
	if strings.Contains(baseRef, "..") {
		return strings.Replace(baseRef, "..", "...", 1)
	}
	return baseRef + "...HEAD"
}

// splitFiles normalizes newline-separated git output into a deduplicated
// slice. Empty output yields nil, not a single empty entry.
func splitFiles(out string) []string {
	var files []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || seen[line] {
			continue
		}
		seen[line] = true
		files = append(files, line)
	}
	return files
}

// filterChanged applies include/exclude globs to the changed set. Filtering
// only narrows which files feed tag resolution; it never affects match
// semantics, which stay prefix-based.
func filterChanged(files, include, exclude []string) []string {
	if len(include) == 0 && len(exclude) == 0 {
		return files
	}
	var kept []string
	for _, f := range files {
		if len(include) > 0 && !matchesAny(f, include) {
			continue
		}
		if matchesAny(f, exclude) {
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

func matchesAny(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}

func gitOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), fmt.Errorf("%s: %s", err, string(exitErr.Stderr))
		}
		return "", err
	}
	return string(out), nil
}
