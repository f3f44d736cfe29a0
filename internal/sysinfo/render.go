// internal/sysinfo/render.go
package sysinfo

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// document wraps Info for the JSON output format.
type document struct {
	System Info `json:"system"`
}

// Render writes the host snapshot to w in the requested format: "print"
// (sectioned text, the default), "json", "csv" (header plus one row), or
// "summary" (a single line).
func Render(w io.Writer, info Info, format string) error {
	switch format {
	case "", "print":
		return renderPrint(w, info)
	case "json":
		data, err := json.MarshalIndent(document{System: info}, "", "  ")
		if err != nil {
			return fmt.Errorf("could not encode system info: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "csv":
		return renderCSV(w, info)
	case "summary":
		_, err := fmt.Fprintln(w, info.Summary())
		return err
	}
	return fmt.Errorf("unknown format %q (want print, json, csv, or summary)", format)
}

// Summary renders the one-line host description used in report footers.
func (info Info) Summary() string {
	return fmt.Sprintf("%s (%dC/%dT) @ %dMHz, %s RAM, %s",
		info.CPU.Model, info.CPU.PhysicalCores, info.CPU.LogicalCores,
		info.CPU.SpeedMHz, formatBytes(info.Memory.TotalBytes), info.OS.Name)
}

func renderPrint(w io.Writer, info Info) error {
	rule := strings.Repeat("=", 80)
	_, err := fmt.Fprintf(w, `
%s
SYSTEM INFORMATION
%s

Operating System:
  Name:           %s
  Version:        %s
  Computer:       %s
  User:           %s

CPU:
  Model:          %s
  Vendor:         %s
  Speed:          %d MHz
  Physical Cores: %d
  Logical Cores:  %d

CPU Features:
  SSE2:           %s
  SSE3:           %s
  SSE4.1:         %s
  AVX:            %s
  AVX2:           %s
  AVX-512F:       %s
  NEON:           %s

Memory:
  Total RAM:      %s
%s

`,
		rule, rule,
		info.OS.Name, info.OS.Version, info.OS.Computer, info.OS.User,
		info.CPU.Model, info.CPU.Vendor, info.CPU.SpeedMHz,
		info.CPU.PhysicalCores, info.CPU.LogicalCores,
		yesNo(info.CPU.Features.SSE2), yesNo(info.CPU.Features.SSE3),
		yesNo(info.CPU.Features.SSE41), yesNo(info.CPU.Features.AVX),
		yesNo(info.CPU.Features.AVX2), yesNo(info.CPU.Features.AVX512F),
		yesNo(info.CPU.Features.Neon),
		formatBytes(info.Memory.TotalBytes),
		rule)
	return err
}

func renderCSV(w io.Writer, info Info) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"os_name", "os_version", "computer_name", "cpu_model", "cpu_vendor",
		"cpu_speed_mhz", "physical_cores", "logical_cores",
		"total_ram_bytes", "total_ram_gb",
		"has_sse2", "has_sse3", "has_sse41", "has_avx", "has_avx2",
		"has_avx512f", "has_neon",
	}); err != nil {
		return err
	}
	if err := cw.Write([]string{
		info.OS.Name, info.OS.Version, info.OS.Computer,
		info.CPU.Model, info.CPU.Vendor,
		strconv.Itoa(info.CPU.SpeedMHz),
		strconv.Itoa(info.CPU.PhysicalCores),
		strconv.Itoa(info.CPU.LogicalCores),
		strconv.FormatInt(info.Memory.TotalBytes, 10),
		strconv.FormatFloat(info.Memory.TotalGB, 'f', 2, 64),
		oneZero(info.CPU.Features.SSE2), oneZero(info.CPU.Features.SSE3),
		oneZero(info.CPU.Features.SSE41), oneZero(info.CPU.Features.AVX),
		oneZero(info.CPU.Features.AVX2), oneZero(info.CPU.Features.AVX512F),
		oneZero(info.CPU.Features.Neon),
	}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func formatBytes(bytes int64) string {
	switch {
	case bytes >= 1<<40:
		return strconv.FormatFloat(float64(bytes)/(1<<40), 'f', 2, 64) + " TB"
	case bytes >= 1<<30:
		return strconv.FormatFloat(float64(bytes)/(1<<30), 'f', 2, 64) + " GB"
	case bytes >= 1<<20:
		return strconv.FormatFloat(float64(bytes)/(1<<20), 'f', 2, 64) + " MB"
	case bytes >= 1<<10:
		return strconv.FormatFloat(float64(bytes)/(1<<10), 'f', 2, 64) + " KB"
	}
	return strconv.FormatInt(bytes, 10) + " bytes"
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func oneZero(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
