// internal/tui/tui.go
// Package tui renders the live terminal view for benchmark sweeps.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ledraw1/pluginperf/internal/benchmark"
	"github.com/ledraw1/pluginperf/internal/plugins"
	"github.com/ledraw1/pluginperf/internal/util"
)

// sizeResultMsg delivers one finished block size from the sweep goroutine.
type sizeResultMsg struct {
	result benchmark.Result
}

// sweepDoneMsg signals that every block size has been measured.
type sweepDoneMsg struct {
	results []benchmark.Result
}

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

// model is the Bubble Tea model for one live sweep.
type model struct {
	desc    plugins.Descriptor
	sweep   benchmark.Sweep
	spinner spinner.Model
	results []benchmark.Result
	planned int
	done    bool
	width   int
}

func newModel(desc plugins.Descriptor, sweep benchmark.Sweep) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &model{
		desc:    desc,
		sweep:   sweep,
		spinner: s,
		planned: sweep.Planned(),
	}
}

// Init starts the spinner animation.
func (m *model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update is the central update function for the live sweep view.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case sizeResultMsg:
		m.results = append(m.results, msg.result)
		return m, nil

	case sweepDoneMsg:
		m.results = msg.results
		m.done = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	if !m.done {
		m.spinner, cmd = m.spinner.Update(msg)
	}
	return m, cmd
}

// View renders the title, one line per completed size, and either the
// in-flight status or the final tally.
func (m *model) View() string {
	var b strings.Builder

	title := fmt.Sprintf("%s [%s] %s", m.desc.Name, m.desc.Format, m.desc.Path)
	if m.width > 0 {
		title = util.TruncateRunes(title, m.width)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	for _, r := range m.results {
		b.WriteString(resultLine(r))
		b.WriteString("\n")
	}

	if m.done {
		ok, failed := 0, 0
		for _, r := range m.results {
			if r.OK() {
				ok++
			} else {
				failed++
			}
		}
		tally := fmt.Sprintf("\nSweep complete: %d ok, %d failed.", ok, failed)
		if failed > 0 {
			b.WriteString(failStyle.Render(tally))
		} else {
			b.WriteString(okStyle.Render(tally))
		}
		b.WriteString("\n")
		return b.String()
	}

	if next := m.nextBlockSize(); next > 0 {
		current := util.Min(len(m.results)+1, m.planned)
		b.WriteString(fmt.Sprintf("\n%s Measuring block %d (%d/%d)...\n", m.spinner.View(), next, current, m.planned))
	}
	b.WriteString(helpStyle.Render("q to abort"))
	b.WriteString("\n")
	return b.String()
}

// nextBlockSize returns the size currently being measured, skipping the
// non-positive entries the runner skips too.
func (m *model) nextBlockSize() int {
	seen := 0
	for _, size := range m.sweep.BlockSizes {
		if size <= 0 {
			continue
		}
		if seen == len(m.results) {
			return size
		}
		seen++
	}
	return 0
}

// resultLine renders one completed block size.
func resultLine(r benchmark.Result) string {
	if !r.OK() {
		return failStyle.Render(fmt.Sprintf("  >>> block %5d: FAILED %s", r.BlockSize, r.Failure))
	}
	s := r.Stats
	line := fmt.Sprintf("  >>> block %5d: mean %9.2fµs  median %9.2fµs  p95 %9.2fµs  rt %6.2f%%  dsp %6.2f%%",
		r.BlockSize, s.MeanUS, s.MedianUS, s.P95US, s.RTPct, s.DSPLoadPct)
	if !r.Sched.Realtime {
		line += fmt.Sprintf("  [sched: %s]", r.Sched.Policy)
	}
	return okStyle.Render(line)
}

// RunSweep measures the sweep on a worker goroutine while the view renders
// progress. A running measurement is never cancelled mid-call: quitting the
// view abandons the sweep between sizes and reports how far it got.
func RunSweep(sweep benchmark.Sweep, proc plugins.Processor, desc plugins.Descriptor) ([]benchmark.Result, error) {
	m := newModel(desc, sweep)
	p := tea.NewProgram(m)

	go func() {
		results := benchmark.RunSweep(sweep, proc, func(r benchmark.Result) {
			p.Send(sizeResultMsg{result: r})
		})
		p.Send(sweepDoneMsg{results: results})
	}()

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("live view error: %w", err)
	}

	fm := final.(*model)
	if !fm.done {
		return fm.results, fmt.Errorf("sweep interrupted after %d of %d sizes", len(fm.results), fm.planned)
	}
	return fm.results, nil
}
