// internal/plugins/registry.go
package plugins

import (
	"fmt"
	"sort"
	"strings"
)

// Descriptor identifies a processor for display and result rows.
type Descriptor struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Format string `json:"format"`
}

// builders maps registry names to built-in processor constructors. Every
// call builds a fresh instance; instances are never shared.
var builders = map[string]func() Processor{
	"passthrough": newPassthrough,
	"gain":        newGain,
	"synthload":   newSynthLoad,
	"spinwait":    newSpinWait,
}

// New instantiates a registered processor by name.
func New(name string) (Processor, Descriptor, error) {
	build, ok := builders[name]
	if !ok {
		return nil, Descriptor{}, fmt.Errorf("unknown plugin %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return build(), Descriptor{
		Name:   name,
		Path:   "builtin:" + name,
		Format: "builtin",
	}, nil
}

// Names lists the registered processors in sorted order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
