// internal/export/results.go
package export

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ledraw1/pluginperf/internal/benchmark"
	"github.com/ledraw1/pluginperf/internal/plugins"
	"github.com/ledraw1/pluginperf/internal/sysinfo"
	"github.com/ledraw1/pluginperf/internal/util"
)

const resultsDir = "pluginperfData/benchmarks"

// RunDocument is the archival record of one benchmark run: identity,
// settings, per-size results, and optionally the host snapshot.
type RunDocument struct {
	RunID     string             `json:"run_id"`
	CreatedAt time.Time          `json:"created_at"`
	Tool      string             `json:"tool"`
	Plugin    plugins.Descriptor `json:"plugin"`
	Settings  RunSettings        `json:"settings"`
	Results   []benchmark.Result `json:"results"`
	System    *sysinfo.Info      `json:"system,omitempty"`
}

// NewRunDocument stamps a run with a fresh ID and creation time.
func NewRunDocument(plugin plugins.Descriptor, settings RunSettings, results []benchmark.Result, sys *sysinfo.Info) RunDocument {
	return RunDocument{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Tool:      "pluginperf",
		Plugin:    plugin,
		Settings:  settings,
		Results:   results,
		System:    sys,
	}
}

// WriteRunDocument writes the document under pluginperfData/benchmarks as
// <plugin-slug>-<n>.json, picking the first unused n. It returns the path
// it wrote.
func WriteRunDocument(doc RunDocument) (string, error) {
	if err := os.MkdirAll(resultsDir, 0o755); err != nil {
		return "", fmt.Errorf("error creating results directory: %w", err)
	}

	slug := util.Slugify(doc.Plugin.Name)
	if slug == "" {
		slug = "run"
	}

	var fileName string
	for n := 1; ; n++ {
		fileName = filepath.Join(resultsDir, fmt.Sprintf("%s-%d.json", slug, n))
		if _, err := os.Stat(fileName); os.IsNotExist(err) {
			break
		}
	}

	file, err := os.Create(fileName)
	if err != nil {
		return "", fmt.Errorf("error creating result file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return "", fmt.Errorf("error writing results to file: %w", err)
	}

	log.Printf("Benchmark results written to %s", fileName)

	return fileName, nil
}
