package pluginperf

import (
	"errors"

	"github.com/ledraw1/pluginperf/internal/plugins"
	"github.com/spf13/cobra"
)

func runBenchmarkPlugin(cmd *cobra.Command) error {
	name, _ := cmd.Flags().GetString("plugin")
	cfg := GetConfig()
	if cfg == nil {
		return errors.New("configuration is not loaded")
	}
	proc, desc, err := plugins.New(name)
	if err != nil {
		return err
	}
	return benchmarkOne(cfg, proc, desc, cfg.CSV)
}
