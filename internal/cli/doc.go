// Package cli implements the tagmap command-line interface.
//
// Commands: run (the default when no subcommand is given), list, init, and
// version. The run path mirrors the external runner's exit code; list and
// init exit 0 on success and non-zero on internal error. Faults in the
// mapping layer never abort a run: they degrade to a match-everything
// filter with a diagnostic, because a broken mapping configuration must
// never prevent tests from running.
package cli
