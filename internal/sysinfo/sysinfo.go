// internal/sysinfo/sysinfo.go
// Package sysinfo collects host hardware and OS details for benchmark
// reports: CPU model and topology, SIMD feature flags, memory size, and
// OS identity.
package sysinfo

import (
	"math"
	"os"
	"os/user"
	"runtime"
	"strconv"
	"strings"
)

// Features records the SIMD instruction sets the CPU advertises.
type Features struct {
	SSE2    bool `json:"sse2"`
	SSE3    bool `json:"sse3"`
	SSE41   bool `json:"sse41"`
	AVX     bool `json:"avx"`
	AVX2    bool `json:"avx2"`
	AVX512F bool `json:"avx512f"`
	Neon    bool `json:"neon"`
}

// OS identifies the operating system and the machine it runs on.
type OS struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Computer string `json:"computer"`
	User     string `json:"user"`
}

// CPU describes the processor.
type CPU struct {
	Model         string   `json:"model"`
	Vendor        string   `json:"vendor"`
	SpeedMHz      int      `json:"speedMHz"`
	PhysicalCores int      `json:"physicalCores"`
	LogicalCores  int      `json:"logicalCores"`
	Features      Features `json:"features"`
}

// Memory describes installed RAM.
type Memory struct {
	TotalBytes int64   `json:"totalBytes"`
	TotalMB    int64   `json:"totalMB"`
	TotalGB    float64 `json:"totalGB"`
}

// Info is the full host snapshot attached to benchmark result documents.
type Info struct {
	OS     OS     `json:"os"`
	CPU    CPU    `json:"cpu"`
	Memory Memory `json:"memory"`
}

// Collect gathers the host snapshot. Fields that cannot be determined on
// the current platform fall back to portable runtime values rather than
// failing; Collect never returns an error.
func Collect() Info {
	var info Info
	info.CPU.LogicalCores = runtime.NumCPU()

	if host, err := os.Hostname(); err == nil {
		info.OS.Computer = host
	}
	if u, err := user.Current(); err == nil {
		info.OS.User = u.Username
	}

	collectPlatform(&info)

	if info.CPU.PhysicalCores <= 0 {
		info.CPU.PhysicalCores = info.CPU.LogicalCores
	}
	if info.CPU.Model == "" {
		info.CPU.Model = "unknown"
	}
	if info.CPU.Vendor == "" {
		info.CPU.Vendor = "unknown"
	}
	if info.OS.Name == "" {
		info.OS.Name = runtime.GOOS
	}
	if info.OS.Version == "" {
		info.OS.Version = "unknown"
	}

	info.Memory.TotalMB = info.Memory.TotalBytes / (1 << 20)
	info.Memory.TotalGB = float64(info.Memory.TotalBytes) / (1 << 30)
	return info
}

// cpuDetails is the result of parsing one /proc/cpuinfo snapshot.
type cpuDetails struct {
	Model         string
	Vendor        string
	SpeedMHz      int
	PhysicalCores int
	Features      Features
}

// parseCPUInfo extracts CPU details from /proc/cpuinfo text. Physical
// cores are counted as distinct (physical id, core id) pairs; kernels
// that do not expose topology yield zero and the caller falls back to
// the logical count.
func parseCPUInfo(text string) cpuDetails {
	var (
		details  cpuDetails
		hardware string
		maxMHz   float64
		cores    = map[string]struct{}{}
		curPhys  = -1
		curCore  = -1
	)

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			curPhys, curCore = -1, -1
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "model name":
			if details.Model == "" {
				details.Model = value
			}
		case "Hardware":
			hardware = value
		case "vendor_id", "CPU implementer":
			if details.Vendor == "" {
				details.Vendor = value
			}
		case "cpu MHz":
			if mhz, err := strconv.ParseFloat(value, 64); err == nil && mhz > maxMHz {
				maxMHz = mhz
			}
		case "physical id":
			if id, err := strconv.Atoi(value); err == nil {
				curPhys = id
			}
		case "core id":
			if id, err := strconv.Atoi(value); err == nil {
				curCore = id
			}
		case "flags", "Features":
			for _, flag := range strings.Fields(value) {
				switch flag {
				case "sse2":
					details.Features.SSE2 = true
				case "pni":
					details.Features.SSE3 = true
				case "sse4_1":
					details.Features.SSE41 = true
				case "avx":
					details.Features.AVX = true
				case "avx2":
					details.Features.AVX2 = true
				case "avx512f":
					details.Features.AVX512F = true
				case "neon", "asimd":
					details.Features.Neon = true
				}
			}
		}

		if curPhys >= 0 && curCore >= 0 {
			cores[strconv.Itoa(curPhys)+":"+strconv.Itoa(curCore)] = struct{}{}
		}
	}

	if details.Model == "" {
		details.Model = hardware
	}
	details.SpeedMHz = int(math.Round(maxMHz))
	details.PhysicalCores = len(cores)
	return details
}
