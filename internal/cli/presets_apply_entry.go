package pluginperf

import (
	"fmt"
	"os"

	"github.com/ledraw1/pluginperf/internal/plugins"
	"github.com/spf13/cobra"
)

func runPresetsApply(cmd *cobra.Command, path string) error {
	proc, desc, err := resolveProcessor(cmd)
	if err != nil {
		return err
	}
	preset, err := plugins.LoadPreset(path)
	if err != nil {
		return err
	}

	applied, unknown, err := plugins.ApplyPreset(preset, proc)
	if err != nil {
		return err
	}
	for _, id := range unknown {
		fmt.Fprintf(os.Stderr, "%s preset parameter %q does not exist on %s\n", yellow("WARNING:"), id, desc.Name)
	}
	fmt.Printf("Applied %d parameters from %q to %s\n", applied, preset.Name, desc.Name)

	infos := plugins.Describe(proc)
	printParamsTable(proc, infos)
	return nil
}
