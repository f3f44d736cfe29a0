// internal/cli/show_sysinfo.go
package pluginperf

import "github.com/spf13/cobra"

// showSysinfoCmd implements 'show sysinfo', which prints the host hardware
// snapshot that benchmark exports attach.
var showSysinfoCmd = &cobra.Command{
	Use:   "sysinfo",
	Short: "Show host CPU, memory, and OS details",
	Long:  `The 'sysinfo' subcommand collects and prints the host hardware snapshot in one of several formats: print, json, csv, or summary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShowSysinfo(cmd)
	},
}

func init() {
	showCmd.AddCommand(showSysinfoCmd)

	showSysinfoCmd.Flags().String("format", "print", "output format: print|json|csv|summary")
}
