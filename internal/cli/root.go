package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "tagmap [-- playwright args...]",
	Short: "Run the Playwright tests relevant to your branch changes",
	Long: "Tagmap diffs the current branch against a base ref, maps the changed\n" +
		"files to test tags through a prefix-rule mapping file, and invokes\n" +
		"Playwright with a --grep filter built from those tags.",
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare "tagmap" is "tagmap run"; extra tokens pass through to the
		// runner.
		doRun(args)
		return nil
	},
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVarP(&flagBaseBranch, "base-branch", "b", "", "Base ref to diff against")
	rootCmd.PersistentFlags().StringVarP(&flagMappingsFile, "mappings-file", "m", "", "Path to the tag mapping file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print per-file match diagnostics")
	rootCmd.PersistentFlags().BoolVar(&flagNoBaseline, "no-baseline", false, "Do not add the baseline tag to the filter")

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return 1
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code. The
// run path mirrors the external runner's exit status through it.
var exitCode = 0

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print tagmap version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "tagmap version %s\n", version)
	},
}
