package pluginperf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func runParamsSet(cmd *cobra.Command, args []string) error {
	proc, _, err := resolveProcessor(cmd)
	if err != nil {
		return err
	}

	for _, arg := range args {
		key, value, err := parseAssignment(arg)
		if err != nil {
			return err
		}
		p, err := lookupParameter(proc, key)
		if err != nil {
			return err
		}
		p.SetValue(value)
		fmt.Printf("Set %s = %.3f (%s)\n", p.ID, p.Value(), p.Text())
	}
	return nil
}

// parseAssignment splits one KEY=VALUE argument. VALUE is a normalized
// value; clamping to [0,1] happens at the parameter.
func parseAssignment(arg string) (string, float64, error) {
	key, raw, ok := strings.Cut(arg, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return "", 0, fmt.Errorf("invalid assignment %q: use KEY=VALUE", arg)
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid value in %q: %w", arg, err)
	}
	return strings.TrimSpace(key), value, nil
}
