package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/dkeech/tagmap/internal/config"
	"github.com/dkeech/tagmap/internal/gitchanges"
	"github.com/dkeech/tagmap/internal/mapping"
	"github.com/dkeech/tagmap/internal/selector"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print resolved tags and the filter without running tests",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load(buildOverrides())
		changed := gitchanges.Detect(cfg.BaseBranch, detectOptions(cfg))

		// Unlike run, list always loads the mapping: its job is to show the
		// effective selection, including configuration faults.
		loader.Invalidate()
		res, err := loader.Load(mapping.FileSource(cfg.MappingsFile))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = 1
			return nil
		}

		tags := selector.ResolveTags(changed, res.Table, matchDiag(cfg))
		filter := selector.ComposeFilter(tags, cfg.AddBaseline)

		if cfg.Verbose {
			fmt.Fprintf(os.Stdout, "base: %s\n", cfg.BaseBranch)
			fmt.Fprintf(os.Stdout, "mapping: %s\n", res.Path)
			for _, f := range changed {
				fmt.Fprintf(os.Stdout, "changed: %s\n", f)
			}
		}
		fmt.Fprintf(os.Stdout, "tags: %s\n", formatTags(tags))
		fmt.Fprintf(os.Stdout, "filter: %s\n", filter)
		return nil
	},
}

func formatTags(tags selector.TagSet) string {
	if len(tags) == 0 {
		return "(none)"
	}
	all := make([]string, 0, len(tags))
	for tag := range tags {
		all = append(all, tag)
	}
	sort.Strings(all)
	return strings.Join(all, " ")
}
