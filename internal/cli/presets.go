// internal/cli/presets.go
package pluginperf

import "github.com/spf13/cobra"

// presetsCmd represents the 'presets' command group for working with saved
// parameter snapshots.
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Group commands for working with preset files",
	Long:  `The 'presets' command groups subcommands that show, validate, apply, and save plugin parameter presets.`,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
