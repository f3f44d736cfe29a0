// internal/cli/presets_save.go
package pluginperf

import "github.com/spf13/cobra"

// presetsSaveCmd implements 'presets save', which snapshots a plugin's
// current parameters into a preset file. Optional KEY=VALUE arguments adjust
// parameters before the snapshot is taken.
var presetsSaveCmd = &cobra.Command{
	Use:   "save FILE [KEY=VALUE ...]",
	Short: "Save a plugin's parameter snapshot as a preset file",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPresetsSave(cmd, args[0], args[1:])
	},
}

func init() {
	presetsCmd.AddCommand(presetsSaveCmd)

	presetsSaveCmd.Flags().StringP("plugin", "p", "", "plugin name to snapshot")
	presetsSaveCmd.Flags().String("name", "", "preset name (defaults to the plugin name)")
	presetsSaveCmd.Flags().String("author", "", "author recorded in the preset metadata")
	_ = presetsSaveCmd.MarkFlagRequired("plugin")
}
