// internal/cli/show_config.go
package pluginperf

import "github.com/spf13/cobra"

// showConfigCmd implements 'show config', which prints the merged
// configuration after flags and the config file are reconciled.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overridden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		runShowConfig()
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
