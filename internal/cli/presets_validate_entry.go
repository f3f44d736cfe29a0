package pluginperf

import (
	"fmt"
	"os"

	"github.com/ledraw1/pluginperf/internal/plugins"
)

func runPresetsValidate(paths []string) error {
	invalid := 0
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err == nil {
			err = plugins.ValidatePresetBytes(data)
		}
		if err != nil {
			invalid++
			fmt.Printf("%s %s: %v\n", red("FAIL"), path, err)
			continue
		}
		fmt.Printf("%s %s\n", green("OK"), path)
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d preset files are invalid", invalid, len(paths))
	}
	fmt.Printf("%d preset files validated\n", len(paths))
	return nil
}
