// internal/sysinfo/sysinfo_other.go
//go:build !linux

package sysinfo

// collectPlatform has no kernel sources to read outside Linux; Collect
// falls back to the portable runtime values.
func collectPlatform(info *Info) {}
