// internal/cli/benchmark.go
package pluginperf

import (
	"github.com/spf13/cobra"
)

// benchmarkCmd represents the 'benchmark' command group for measuring
// plugin processing cost.
var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Group commands for measuring plugin processing cost",
	Long:  `The 'benchmark' command groups subcommands that sweep plugins across buffer sizes and report per-block latency and load.`,
}

func init() {
	rootCmd.AddCommand(benchmarkCmd)
}
