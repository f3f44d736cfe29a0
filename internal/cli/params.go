// internal/cli/params.go
package pluginperf

import (
	"strconv"
	"strings"

	"github.com/ledraw1/pluginperf/internal/plugins"
	"github.com/spf13/cobra"
)

// paramsCmd represents the 'params' command group for inspecting and
// manipulating plugin parameters.
var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "Group commands for inspecting and setting plugin parameters",
	Long:  `The 'params' command groups subcommands that list, read, and write the parameters of a registered plugin.`,
}

func init() {
	rootCmd.AddCommand(paramsCmd)

	paramsCmd.PersistentFlags().StringP("plugin", "p", "", "plugin name to inspect")
	_ = paramsCmd.MarkPersistentFlagRequired("plugin")
}

// resolveProcessor instantiates the plugin named by the --plugin flag.
func resolveProcessor(cmd *cobra.Command) (plugins.Processor, plugins.Descriptor, error) {
	name, _ := cmd.Flags().GetString("plugin")
	return plugins.New(name)
}

// lookupParameter resolves a parameter by index, ID, or display name, in
// that order. Names match case-insensitively.
func lookupParameter(proc plugins.Processor, key string) (*plugins.Parameter, error) {
	params := proc.Parameters()
	if idx, err := strconv.Atoi(key); err == nil {
		if idx >= 0 && idx < len(params) {
			return params[idx], nil
		}
	}
	if p, err := plugins.FindParameter(proc, key); err == nil {
		return p, nil
	}
	for _, p := range params {
		if strings.EqualFold(p.Name, key) {
			return p, nil
		}
	}
	return nil, &unknownParameterError{key: key}
}

type unknownParameterError struct {
	key string
}

func (e *unknownParameterError) Error() string {
	return "parameter '" + e.key + "' not found"
}
