// internal/cli/presets_apply.go
package pluginperf

import "github.com/spf13/cobra"

// presetsApplyCmd implements 'presets apply', which loads a preset into a
// plugin instance and prints the resulting parameter values.
var presetsApplyCmd = &cobra.Command{
	Use:   "apply FILE",
	Short: "Apply a preset file to a plugin and show the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPresetsApply(cmd, args[0])
	},
}

func init() {
	presetsCmd.AddCommand(presetsApplyCmd)

	presetsApplyCmd.Flags().StringP("plugin", "p", "", "plugin name to apply the preset to")
	_ = presetsApplyCmd.MarkFlagRequired("plugin")
}
