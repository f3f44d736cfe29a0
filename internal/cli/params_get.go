// internal/cli/params_get.go
package pluginperf

import "github.com/spf13/cobra"

// paramsGetCmd implements 'params get', which reads parameters by index,
// ID, or display name.
var paramsGetCmd = &cobra.Command{
	Use:   "get INDEX|ID|NAME ...",
	Short: "Get the value of one or more parameters",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParamsGet(cmd, args)
	},
}

func init() {
	paramsCmd.AddCommand(paramsGetCmd)
}
