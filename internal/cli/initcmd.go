package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dkeech/tagmap/internal/config"
	"github.com/spf13/cobra"
)

const sampleMappings = `{
  "@auth": ["src/auth/"],
  "@api": ["src/api/"],
  "@ui": ["src/components/"]
}
`

const sampleConfig = `{
  "mappingsFile": "test-mappings.json",
  "baseBranch": "main",
  "addBaseline": true,
  "verbose": false,
  "playwrightOptions": []
}
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold sample mapping and config files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := scaffold("."); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = 1
		}
		return nil
	},
}

// scaffold writes the sample files into dir, refusing to overwrite existing
// ones.
func scaffold(dir string) error {
	files := []struct {
		name    string
		content string
	}{
		{"test-mappings.json", sampleMappings},
		{config.FileName, sampleConfig},
	}
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(os.Stderr, "%s already exists, skipping\n", f.name)
			continue
		}
		if err := os.WriteFile(path, []byte(f.content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", f.name, err)
		}
		fmt.Fprintf(os.Stdout, "Created %s\n", f.name)
	}
	return nil
}
