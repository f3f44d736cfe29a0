// internal/plugins/presets.go
package plugins

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/ledraw1/pluginperf/internal/util"
)

// Preset is one saved parameter snapshot for a processor. Parameters map
// parameter IDs to normalized values; State optionally carries an opaque
// processor state blob.
type Preset struct {
	Name        string
	Category    string
	Author      string
	Description string
	Tags        []string
	Parameters  map[string]float64
	State       []byte
}

// presetDocument mirrors the on-disk JSON layout.
type presetDocument struct {
	Preset presetBody `json:"preset"`
}

type presetBody struct {
	Metadata   presetMetadata     `json:"metadata"`
	Parameters map[string]float64 `json:"parameters"`
	State      string             `json:"state,omitempty"`
}

type presetMetadata struct {
	Name        string   `json:"name"`
	Category    string   `json:"category,omitempty"`
	Author      string   `json:"author,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// presetSchema is the contract preset documents are validated against
// before any field is interpreted.
const presetSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["preset"],
  "properties": {
    "preset": {
      "type": "object",
      "required": ["metadata", "parameters"],
      "properties": {
        "metadata": {
          "type": "object",
          "required": ["name"],
          "properties": {
            "name": {"type": "string", "minLength": 1},
            "category": {"type": "string"},
            "author": {"type": "string"},
            "description": {"type": "string"},
            "tags": {"type": "array", "items": {"type": "string"}}
          }
        },
        "parameters": {
          "type": "object",
          "additionalProperties": {"type": "number", "minimum": 0, "maximum": 1}
        },
        "state": {"type": "string"}
      }
    }
  }
}`

// ValidatePresetBytes checks a raw preset document against the schema.
func ValidatePresetBytes(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(presetSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("invalid preset document: %s", strings.Join(problems, "; "))
}

// LoadPreset reads, validates, and decodes a preset file.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read preset file %q: %w", path, err)
	}
	if err := ValidatePresetBytes(data); err != nil {
		return nil, fmt.Errorf("preset %q: %w", path, err)
	}

	var doc presetDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("could not parse preset %q: %w", path, err)
	}

	preset := &Preset{
		Name:        doc.Preset.Metadata.Name,
		Category:    doc.Preset.Metadata.Category,
		Author:      doc.Preset.Metadata.Author,
		Description: doc.Preset.Metadata.Description,
		Tags:        doc.Preset.Metadata.Tags,
		Parameters:  doc.Preset.Parameters,
	}
	if doc.Preset.State != "" {
		state, err := base64.StdEncoding.DecodeString(doc.Preset.State)
		if err != nil {
			return nil, fmt.Errorf("preset %q: could not decode state: %w", path, err)
		}
		preset.State = state
	}
	return preset, nil
}

// SavePreset writes a preset as an indented JSON document.
func SavePreset(path string, p *Preset) error {
	doc := presetDocument{
		Preset: presetBody{
			Metadata: presetMetadata{
				Name:        p.Name,
				Category:    p.Category,
				Author:      p.Author,
				Description: p.Description,
				Tags:        p.Tags,
			},
			Parameters: p.Parameters,
		},
	}
	if len(p.State) > 0 {
		doc.Preset.State = base64.StdEncoding.EncodeToString(p.State)
	}
	if doc.Preset.Parameters == nil {
		doc.Preset.Parameters = map[string]float64{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode preset: %w", err)
	}
	if err := util.WriteFile(path, append(data, '\n')); err != nil {
		return fmt.Errorf("could not write preset file %q: %w", path, err)
	}
	return nil
}

// CapturePreset snapshots the current parameter values (and state, when the
// processor exposes one) into a new preset.
func CapturePreset(name string, proc Processor) *Preset {
	params := map[string]float64{}
	for _, p := range proc.Parameters() {
		params[p.ID] = p.Value()
	}
	preset := &Preset{Name: name, Parameters: params}
	if sp, ok := proc.(StateProvider); ok {
		preset.State = sp.State()
	}
	return preset
}

// ApplyPreset sets every preset parameter the processor knows, restoring
// state first when both sides support it. IDs the processor does not have
// are returned in unknown; they do not abort the rest of the preset.
func ApplyPreset(p *Preset, proc Processor) (applied int, unknown []string, err error) {
	if len(p.State) > 0 {
		if sp, ok := proc.(StateProvider); ok {
			if err := sp.SetState(p.State); err != nil {
				return 0, nil, fmt.Errorf("could not restore preset state: %w", err)
			}
		}
	}

	byID := make(map[string]*Parameter)
	for _, param := range proc.Parameters() {
		byID[param.ID] = param
	}
	for id, value := range p.Parameters {
		param, ok := byID[id]
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		param.SetValue(value)
		applied++
	}
	sort.Strings(unknown)
	return applied, unknown, nil
}
