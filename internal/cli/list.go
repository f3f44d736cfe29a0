// internal/cli/list.go
package pluginperf

import "github.com/spf13/cobra"

// listCmd represents the 'list' command group for enumerating resources.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Group commands for enumerating resources",
	Long:  `The 'list' command groups subcommands that enumerate plugins and commands known to pluginperf.`,
}

func init() {
	rootCmd.AddCommand(listCmd)
}
