package pluginperf

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/k0kubun/pp"

	"github.com/ledraw1/pluginperf/internal/plugins"
)

func runPresetsShow(path string) error {
	preset, err := plugins.LoadPreset(path)
	if err != nil {
		return err
	}

	nodeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	fmt.Println(nodeStyle.Render(fmt.Sprintf("%s:", preset.Name)))
	if preset.Category != "" {
		fmt.Println("  >>> category: " + preset.Category)
	}
	if preset.Author != "" {
		fmt.Println("  >>> author: " + preset.Author)
	}
	if preset.Description != "" {
		fmt.Println("  >>> description: " + preset.Description)
	}
	if len(preset.Tags) > 0 {
		fmt.Println("  >>> tags: " + strings.Join(preset.Tags, ", "))
	}
	if len(preset.State) > 0 {
		fmt.Printf("  >>> state: %d bytes\n", len(preset.State))
	}

	ids := make([]string, 0, len(preset.Parameters))
	for id := range preset.Parameters {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  >>> parameters: %d\n", len(ids))
	for _, id := range ids {
		fmt.Printf("      %s = %.3f\n", id, preset.Parameters[id])
	}

	if DebugEnabled() {
		pp.Println(preset)
	}
	return nil
}
