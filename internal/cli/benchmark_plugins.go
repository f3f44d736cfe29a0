// internal/cli/benchmark_plugins.go
package pluginperf

import "github.com/spf13/cobra"

// benchmarkPluginsCmd implements 'benchmark plugins', which sweeps every
// registered plugin in turn. One plugin failing does not stop the rest.
var benchmarkPluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "Benchmark every registered plugin in turn",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBenchmarkPlugins()
	},
}

func init() {
	benchmarkCmd.AddCommand(benchmarkPluginsCmd)
}
