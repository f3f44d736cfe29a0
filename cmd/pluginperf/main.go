// cmd/pluginperf/main.go
package main

import (
	cmd "github.com/ledraw1/pluginperf/internal/cli"
)

// Build metadata, overridable at link time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// main starts the pluginperf CLI application by delegating to the cobra
// root command defined in the pluginperf package. It does not take any
// arguments and does not return a value.
func main() {
	cmd.SetVersionInfo(version, commit, date)
	cmd.Execute()
}
