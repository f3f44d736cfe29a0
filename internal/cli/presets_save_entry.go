package pluginperf

import (
	"fmt"

	"github.com/ledraw1/pluginperf/internal/plugins"
	"github.com/spf13/cobra"
)

func runPresetsSave(cmd *cobra.Command, path string, assignments []string) error {
	proc, desc, err := resolveProcessor(cmd)
	if err != nil {
		return err
	}

	for _, arg := range assignments {
		key, value, err := parseAssignment(arg)
		if err != nil {
			return err
		}
		p, err := lookupParameter(proc, key)
		if err != nil {
			return err
		}
		p.SetValue(value)
	}

	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		name = desc.Name
	}
	author, _ := cmd.Flags().GetString("author")

	preset := plugins.CapturePreset(name, proc)
	preset.Author = author
	if err := plugins.SavePreset(path, preset); err != nil {
		return err
	}

	fmt.Printf("Saved preset %q (%d parameters) to %s\n", name, len(preset.Parameters), path)
	return nil
}
