// internal/cli/list_plugins.go
package pluginperf

import "github.com/spf13/cobra"

// listPluginsCmd implements 'list plugins', which enumerates every plugin
// in the registry together with its headline capabilities.
var listPluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "List all registered plugins",
	Long:  `The 'plugins' subcommand lists every plugin the registry can instantiate, with its format, parameter count, and precision support.`,
	Run: func(cmd *cobra.Command, args []string) {
		runListPlugins()
	},
}

func init() {
	listCmd.AddCommand(listPluginsCmd)
}
