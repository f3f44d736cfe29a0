// internal/cli/presets_show.go
package pluginperf

import "github.com/spf13/cobra"

// presetsShowCmd implements 'presets show', which prints a preset file's
// metadata and parameter values without touching any plugin.
var presetsShowCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Show the metadata and parameters of a preset file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPresetsShow(args[0])
	},
}

func init() {
	presetsCmd.AddCommand(presetsShowCmd)
}
