// internal/cli/benchmark_plugin.go
package pluginperf

import "github.com/spf13/cobra"

// benchmarkPluginCmd implements 'benchmark plugin', which sweeps a single
// plugin across the configured buffer sizes.
var benchmarkPluginCmd = &cobra.Command{
	Use:   "plugin",
	Short: "Benchmark a single plugin across the configured buffer sizes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBenchmarkPlugin(cmd)
	},
}

func init() {
	benchmarkCmd.AddCommand(benchmarkPluginCmd)

	benchmarkPluginCmd.Flags().StringP("plugin", "p", "", "plugin name to benchmark")
	_ = benchmarkPluginCmd.MarkFlagRequired("plugin")
}
