package pluginperf

import (
	"os"

	"github.com/ledraw1/pluginperf/internal/sysinfo"
	"github.com/spf13/cobra"
)

func runShowSysinfo(cmd *cobra.Command) error {
	format, _ := cmd.Flags().GetString("format")
	return sysinfo.Render(os.Stdout, sysinfo.Collect(), format)
}
