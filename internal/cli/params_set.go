// internal/cli/params_set.go
package pluginperf

import "github.com/spf13/cobra"

// paramsSetCmd implements 'params set', which writes normalized values to
// parameters addressed by index, ID, or display name.
var paramsSetCmd = &cobra.Command{
	Use:   "set KEY=VALUE ...",
	Short: "Set one or more parameters to a normalized value (0.0-1.0)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParamsSet(cmd, args)
	},
}

func init() {
	paramsCmd.AddCommand(paramsSetCmd)
}
