package pluginperf

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/ledraw1/pluginperf/internal/plugins"
)

// runListPlugins prints every registered plugin with its capabilities.
func runListPlugins() {
	nodeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255"))

	for _, name := range plugins.Names() {
		proc, desc, err := plugins.New(name)
		if err != nil {
			fmt.Println(nodeStyle.Render(fmt.Sprintf("%s:", name)))
			fmt.Printf("  >>> Error: %v\n", err)
			continue
		}

		precision := "32-bit"
		if proc.SupportsDoublePrecision() {
			precision = "32-bit, 64-bit"
		}

		fmt.Println(nodeStyle.Render(fmt.Sprintf("%s:", desc.Name)))
		fmt.Println("  >>> path: " + desc.Path)
		fmt.Println("  >>> format: " + desc.Format)
		fmt.Printf("  >>> parameters: %d\n", len(proc.Parameters()))
		fmt.Println("  >>> precision: " + precision)
		fmt.Printf("  >>> latency: %d samples\n", proc.Latency())
	}
}
