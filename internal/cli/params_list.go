// internal/cli/params_list.go
package pluginperf

import "github.com/spf13/cobra"

// paramsListCmd implements 'params list', which prints every parameter of a
// plugin, as a compact table or verbose blocks.
var paramsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all parameters of a plugin",
	Long:  `The 'list' subcommand prints a plugin's parameters as a compact table, or as detailed per-parameter blocks with --verbose, or as JSON with --json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParamsList(cmd)
	},
}

func init() {
	paramsCmd.AddCommand(paramsListCmd)

	paramsListCmd.Flags().BoolP("verbose", "v", false, "show detailed parameter information")
	paramsListCmd.Flags().Bool("json", false, "output in JSON format")
}
