// internal/cli/presets_validate.go
package pluginperf

import "github.com/spf13/cobra"

// presetsValidateCmd implements 'presets validate', which checks preset
// files against the preset schema and reports per-file results.
var presetsValidateCmd = &cobra.Command{
	Use:   "validate FILE ...",
	Short: "Validate preset files against the preset schema",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPresetsValidate(args)
	},
}

func init() {
	presetsCmd.AddCommand(presetsValidateCmd)
}
