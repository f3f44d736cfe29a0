// internal/plugins/params.go
package plugins

import (
	"fmt"
	"math"
	"strconv"
)

// ParamKind classifies how a parameter's normalized value maps to a setting.
type ParamKind int

const (
	// KindContinuous is a float parameter over [Min, Max].
	KindContinuous ParamKind = iota
	// KindBoolean is an on/off switch.
	KindBoolean
	// KindDiscrete selects one of a fixed set of choices.
	KindDiscrete
)

// String returns the type label used in parameter listings.
func (k ParamKind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindDiscrete:
		return "discrete"
	default:
		return "continuous"
	}
}

// Parameter is one setting on a processor. Values are stored normalized to
// [0,1]; Plain maps into the parameter's own range. Discrete parameters
// snap to their step grid on every write.
type Parameter struct {
	ID          string
	Name        string
	Unit        string
	Kind        ParamKind
	Min         float64
	Max         float64
	Steps       int
	Automatable bool
	Choices     []string

	def   float64
	value float64
	text  func(plain float64) string
}

// NewFloatParam builds a continuous parameter. def is a plain value inside
// [min, max].
func NewFloatParam(id, name, unit string, min, max, def float64) *Parameter {
	p := &Parameter{
		ID:          id,
		Name:        name,
		Unit:        unit,
		Kind:        KindContinuous,
		Min:         min,
		Max:         max,
		Automatable: true,
	}
	p.def = p.normalize(def)
	p.value = p.def
	return p
}

// NewIntParam builds a stepped integer parameter over [min, max].
func NewIntParam(id, name, unit string, min, max, def int) *Parameter {
	p := &Parameter{
		ID:          id,
		Name:        name,
		Unit:        unit,
		Kind:        KindDiscrete,
		Min:         float64(min),
		Max:         float64(max),
		Steps:       max - min,
		Automatable: true,
	}
	p.def = p.normalize(float64(def))
	p.value = p.def
	return p
}

// NewBoolParam builds an on/off parameter.
func NewBoolParam(id, name string, def bool) *Parameter {
	p := &Parameter{
		ID:          id,
		Name:        name,
		Kind:        KindBoolean,
		Min:         0,
		Max:         1,
		Steps:       1,
		Automatable: true,
	}
	if def {
		p.def = 1
	}
	p.value = p.def
	return p
}

// NewChoiceParam builds a parameter selecting one of choices by index.
func NewChoiceParam(id, name string, choices []string, def int) *Parameter {
	p := &Parameter{
		ID:          id,
		Name:        name,
		Kind:        KindDiscrete,
		Min:         0,
		Max:         float64(len(choices) - 1),
		Steps:       len(choices) - 1,
		Automatable: true,
		Choices:     choices,
	}
	p.def = p.normalize(float64(def))
	p.value = p.def
	return p
}

// WithText overrides the display rendering of plain values.
func (p *Parameter) WithText(text func(plain float64) string) *Parameter {
	p.text = text
	return p
}

// Value returns the current normalized value.
func (p *Parameter) Value() float64 {
	return p.value
}

// Default returns the default normalized value.
func (p *Parameter) Default() float64 {
	return p.def
}

// SetValue stores a normalized value, clamping to [0,1] and snapping to the
// step grid for stepped parameters.
func (p *Parameter) SetValue(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	if p.Steps > 0 {
		v = math.Round(v*float64(p.Steps)) / float64(p.Steps)
	}
	p.value = v
}

// Plain returns the current value mapped into [Min, Max].
func (p *Parameter) Plain() float64 {
	return p.Min + p.value*(p.Max-p.Min)
}

// SetPlain stores a plain value from the parameter's own range.
func (p *Parameter) SetPlain(v float64) {
	p.SetValue(p.normalize(v))
}

// Bool reads a boolean parameter's state.
func (p *Parameter) Bool() bool {
	return p.value >= 0.5
}

// Text renders the current value for display.
func (p *Parameter) Text() string {
	plain := p.Plain()
	if p.text != nil {
		return p.text(plain)
	}
	switch p.Kind {
	case KindBoolean:
		if p.Bool() {
			return "on"
		}
		return "off"
	case KindDiscrete:
		if len(p.Choices) > 0 {
			idx := int(math.Round(plain))
			if idx >= 0 && idx < len(p.Choices) {
				return p.Choices[idx]
			}
		}
		return strconv.Itoa(int(math.Round(plain)))
	default:
		s := strconv.FormatFloat(plain, 'f', 2, 64)
		if p.Unit != "" {
			return s + " " + p.Unit
		}
		return s
	}
}

func (p *Parameter) normalize(plain float64) float64 {
	if p.Max == p.Min {
		return 0
	}
	v := (plain - p.Min) / (p.Max - p.Min)
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	if p.Steps > 0 {
		v = math.Round(v*float64(p.Steps)) / float64(p.Steps)
	}
	return v
}

// Info is the serializable snapshot of one parameter, used by the params
// and presets commands.
type Info struct {
	Index       int     `json:"index"`
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Unit        string  `json:"unit,omitempty"`
	Type        string  `json:"type"`
	Value       float64 `json:"value"`
	PlainValue  float64 `json:"plain_value"`
	Text        string  `json:"text"`
	Default     float64 `json:"default"`
	Steps       int     `json:"steps,omitempty"`
	Automatable bool    `json:"automatable"`
}

// Describe snapshots a processor's parameters in index order.
func Describe(proc Processor) []Info {
	params := proc.Parameters()
	infos := make([]Info, 0, len(params))
	for i, p := range params {
		infos = append(infos, Info{
			Index:       i,
			ID:          p.ID,
			Name:        p.Name,
			Unit:        p.Unit,
			Type:        p.Kind.String(),
			Value:       p.Value(),
			PlainValue:  p.Plain(),
			Text:        p.Text(),
			Default:     p.Default(),
			Steps:       p.Steps,
			Automatable: p.Automatable,
		})
	}
	return infos
}

// FindParameter locates a parameter by ID.
func FindParameter(proc Processor, id string) (*Parameter, error) {
	for _, p := range proc.Parameters() {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no parameter %q", id)
}
