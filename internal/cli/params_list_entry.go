package pluginperf

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ledraw1/pluginperf/internal/plugins"
	"github.com/spf13/cobra"
)

func runParamsList(cmd *cobra.Command) error {
	proc, desc, err := resolveProcessor(cmd)
	if err != nil {
		return err
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	asJSON, _ := cmd.Flags().GetBool("json")

	infos := plugins.Describe(proc)

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Plugin     string         `json:"plugin"`
			Parameters []plugins.Info `json:"parameters"`
		}{Plugin: desc.Name, Parameters: infos})
	}

	nodeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	fmt.Println(nodeStyle.Render(fmt.Sprintf("%s: %d parameters", desc.Name, len(infos))))

	if verbose {
		printParamsVerbose(proc, infos)
		return nil
	}
	printParamsTable(proc, infos)
	return nil
}

// printParamsTable renders the compact listing: one aligned row per
// parameter.
func printParamsTable(proc plugins.Processor, infos []plugins.Info) {
	fmt.Printf("  %-4s %-16s %-12s %-10s %-18s %s\n", "#", "ID", "Type", "Value", "Range/Values", "Text")
	for _, info := range infos {
		fmt.Printf("  %-4d %-16s %-12s %-10.3f %-18s %s\n",
			info.Index, info.ID, info.Type, info.Value, paramRange(proc, info), info.Text)
	}
}

// printParamsVerbose renders one block per parameter.
func printParamsVerbose(proc plugins.Processor, infos []plugins.Info) {
	for _, info := range infos {
		fmt.Printf("\nParameter #%d\n", info.Index)
		fmt.Printf("  Name:        %s\n", info.Name)
		fmt.Printf("  ID:          %s\n", info.ID)
		fmt.Printf("  Type:        %s\n", info.Type)
		fmt.Printf("  Current:     %.3f (%s)\n", info.Value, info.Text)
		fmt.Printf("  Default:     %.3f\n", info.Default)
		fmt.Printf("  Range:       %s\n", paramRange(proc, info))
		if info.Unit != "" {
			fmt.Printf("  Unit:        %s\n", info.Unit)
		}
		automatable := "No"
		if info.Automatable {
			automatable = "Yes"
		}
		fmt.Printf("  Automatable: %s\n", automatable)
	}
}

// paramRange summarizes the value domain of one parameter for display.
func paramRange(proc plugins.Processor, info plugins.Info) string {
	p, err := plugins.FindParameter(proc, info.ID)
	if err != nil {
		return ""
	}
	switch p.Kind {
	case plugins.KindBoolean:
		return "Off / On"
	case plugins.KindDiscrete:
		if len(p.Choices) > 0 {
			return strings.Join(p.Choices, ", ")
		}
		return fmt.Sprintf("%d steps", p.Steps)
	default:
		return fmt.Sprintf("%.2f - %.2f", p.Min, p.Max)
	}
}
