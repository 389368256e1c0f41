package cli

import (
	"fmt"
	"os"

	"github.com/dkeech/tagmap/internal/config"
	"github.com/dkeech/tagmap/internal/gitchanges"
	"github.com/dkeech/tagmap/internal/mapping"
	"github.com/dkeech/tagmap/internal/runner"
	"github.com/dkeech/tagmap/internal/selector"
	"github.com/spf13/cobra"
)

// EnvDisable bypasses change detection and mapping entirely when set to 1,
// forcing a match-everything filter.
const EnvDisable = "TAGMAP_DISABLE"

// Shared flags
var (
	flagBaseBranch   string
	flagMappingsFile string
	flagVerbose      bool
	flagNoBaseline   bool
)

// loader is shared by the run and list paths and invalidated before every
// load, so repeated loads within one process observe edits to the mapping
// file.
var loader = mapping.NewLoader()

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagBaseBranch != "" {
		m["baseBranch"] = flagBaseBranch
	}
	if flagMappingsFile != "" {
		m["mappingsFile"] = flagMappingsFile
	}
	if flagVerbose {
		m["verbose"] = "true"
	}
	if flagNoBaseline {
		m["addBaseline"] = "false"
	}
	return m
}

var runCmd = &cobra.Command{
	Use:   "run [-- playwright args...]",
	Short: "Run the tests selected by the changed-file mapping",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doRun(args)
		return nil
	},
}

func doRun(passthrough []string) {
	cfg := config.Load(buildOverrides())
	pass := append(append([]string{}, cfg.PlaywrightOptions...), passthrough...)

	var filter string
	if bypassed() {
		// Disable bypass: hand-built match-everything filter. Detection and
		// mapping are skipped entirely. Deliberately a separate path from
		// the composer.
		if cfg.Verbose {
			fmt.Fprintf(os.Stderr, "tagmap: %s=1, running all tests\n", EnvDisable)
		}
		filter = selector.MatchAll
	} else {
		changed := gitchanges.Detect(cfg.BaseBranch, detectOptions(cfg))
		filter = chooseFilter(cfg, changed)
	}

	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "tagmap: running with filter %s\n", filter)
	}
	exitCode = runner.New().Invoke(filter, pass).Code
}

// bypassed reports whether EnvDisable forces a match-everything run.
func bypassed() bool {
	return os.Getenv(EnvDisable) == "1"
}

// chooseFilter picks the filter for a detected change set: baseline-only
// when nothing changed (the mapping source is never consulted), otherwise
// composed from the resolved tags, degrading to match-all on any mapping
// fault — a broken mapping must never prevent tests from running.
func chooseFilter(cfg config.Config, changed []string) string {
	if len(changed) == 0 {
		return selector.BaselineTag
	}
	filter, err := resolveFilter(changed, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tagmap: %v; running all tests\n", err)
		return selector.MatchAll
	}
	return filter
}

// resolveFilter loads the mapping and composes the filter for a non-empty
// changed set. Loader and resolver faults surface here; the caller decides
// the fallback.
func resolveFilter(changed []string, cfg config.Config) (string, error) {
	loader.Invalidate()
	res, err := loader.Load(mapping.FileSource(cfg.MappingsFile))
	if err != nil {
		return "", err
	}
	tags := selector.ResolveTags(changed, res.Table, matchDiag(cfg))
	return selector.ComposeFilter(tags, cfg.AddBaseline), nil
}

func detectOptions(cfg config.Config) gitchanges.Options {
	return gitchanges.Options{
		Include: cfg.Include,
		Exclude: cfg.Exclude,
		Verbose: cfg.Verbose,
	}
}

// matchDiag returns a per-match diagnostic callback, or nil when not
// verbose.
func matchDiag(cfg config.Config) selector.MatchFunc {
	if !cfg.Verbose {
		return nil
	}
	return func(file, tag string) {
		fmt.Fprintf(os.Stderr, "tagmap: %s -> %s\n", file, tag)
	}
}
