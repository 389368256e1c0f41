// Tagmap is a CLI that runs the Playwright tests relevant to your changes.
//
// It diffs the current branch against a base ref, maps the changed files to
// test tags through a prefix-rule mapping file, and invokes Playwright with
// a --grep filter built from those tags. A baseline smoke tag is always
// included by default, and any mapping fault degrades to running everything.
//
// Usage:
//
//	tagmap                        # detect changes and run the selected tests
//	tagmap list                   # dry run: print resolved tags and filter
//	tagmap init                   # scaffold sample mapping/config files
//	tagmap -b origin/develop      # diff against a different base ref
//	tagmap -- --headed --retries=2  # pass extra arguments to Playwright
//
// Set TAGMAP_DISABLE=1 to bypass selection and run all tests.
package main
