package pluginperf

import (
	"fmt"

	"github.com/spf13/cobra"
)

func runParamsGet(cmd *cobra.Command, keys []string) error {
	proc, _, err := resolveProcessor(cmd)
	if err != nil {
		return err
	}

	var firstErr error
	for _, key := range keys {
		p, err := lookupParameter(proc, key)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", red("ERROR:"), err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		fmt.Printf("%s = %.3f (%s)\n", p.ID, p.Value(), p.Text())
	}
	return firstErr
}
