package pluginperf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ledraw1/pluginperf/internal/plugins"
)

func runBenchmarkPlugins() error {
	cfg := GetConfig()
	if cfg == nil {
		return errors.New("configuration is not loaded")
	}

	var failures []string
	for _, name := range plugins.Names() {
		proc, desc, err := plugins.New(name)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		if err := benchmarkOneFn(cfg, proc, desc, csvPathFor(cfg.CSV, name)); err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", name, err))
		}
		fmt.Println()
	}

	if len(failures) > 0 {
		return fmt.Errorf("benchmarks failed: %s", strings.Join(failures, "; "))
	}
	return nil
}
