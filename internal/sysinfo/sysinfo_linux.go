// internal/sysinfo/sysinfo_linux.go
//go:build linux

package sysinfo

import (
	"os"

	"golang.org/x/sys/unix"
)

// collectPlatform fills the fields that come from /proc and the kernel.
func collectPlatform(info *Info) {
	if data, err := os.ReadFile("/proc/cpuinfo"); err == nil {
		cpu := parseCPUInfo(string(data))
		info.CPU.Model = cpu.Model
		info.CPU.Vendor = cpu.Vendor
		info.CPU.SpeedMHz = cpu.SpeedMHz
		info.CPU.PhysicalCores = cpu.PhysicalCores
		info.CPU.Features = cpu.Features
	}

	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err == nil {
		info.Memory.TotalBytes = int64(si.Totalram) * int64(si.Unit)
	}

	var uts unix.Utsname
	if err := unix.Uname(&uts); err == nil {
		info.OS.Name = unixString(uts.Sysname[:])
		info.OS.Version = unixString(uts.Release[:])
	}
}

// unixString converts a NUL-terminated kernel string buffer.
func unixString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
