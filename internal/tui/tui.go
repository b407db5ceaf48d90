// Package tui runs the simulation in a terminal. Each character cell shows
// two vertically stacked pixels, so a terminal of C columns and R rows gives
// a C×2R pixel viewport.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"life-canvas/internal/game"
	"life-canvas/internal/render"
)

const (
	frameInterval = time.Second / 60
	statusLines   = 1
	historyLen    = 120
	chartHeight   = 4
)

var (
	liveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("236"))
	runStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Background(lipgloss.Color("236")).Bold(true)
	stopStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Background(lipgloss.Color("236")).Bold(true)
	chartStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(lipgloss.Color("240"))
)

type frameMsg struct{}

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

// DefaultOptions returns game options suited to a terminal: an 80×24 window
// with 2px cells.
func DefaultOptions() game.Options {
	opts := game.DefaultOptions()
	opts.Width = 80
	opts.Height = 2 * (24 - statusLines)
	opts.CellSize = 2
	return opts
}

// Model is the bubbletea model wrapping a game.
type Model struct {
	sim     *game.Game
	surface *render.TextSurface

	cols, rows int
	mouseDown  bool

	history []float64
	lastGen uint64
}

// New builds a model; the first WindowSizeMsg resizes the viewport.
func New(opts game.Options) *Model {
	surface := render.NewTextSurface(opts.Width, opts.Height)
	m := &Model{
		surface: surface,
		sim:     game.New(surface, opts),
		cols:    opts.Width,
		rows:    opts.Height/2 + statusLines,
	}
	m.record()
	return m
}

// Run starts a full-screen program and blocks until the user quits.
func Run(opts game.Options) error {
	p := tea.NewProgram(New(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	_, err := p.Run()
	return err
}

// Sim exposes the underlying simulation.
func (m *Model) Sim() *game.Game { return m.sim }

// History returns the recorded population per generation.
func (m *Model) History() []float64 { return m.history }

func (m *Model) Init() tea.Cmd {
	return tea.Batch(frame(), tea.SetWindowTitle("life-canvas"))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		if cmd, ok := game.LookupKey(msg.String()); ok {
			m.sim.Dispatch(cmd)
			m.record()
		}
	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
		m.sim.ResizeViewport(m.cols, 2*max(m.rows-statusLines, 0))
		m.mouseDown = false
		m.record()
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.BlurMsg:
		if m.mouseDown {
			m.mouseDown = false
			m.sim.PointerLeave()
		}
	case frameMsg:
		m.sim.Tick()
		m.record()
		return m, frame()
	}
	return m, nil
}

// onGrid reports whether the character at (x, y) shows grid pixels rather
// than the status bar or the chart.
func (m *Model) onGrid(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.cols && y < m.gridRows()-m.chartRows()
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return
	}
	px, py := float64(msg.X), float64(2*msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if !m.onGrid(msg.X, msg.Y) {
			return
		}
		m.mouseDown = true
		m.sim.PointerDown(px, py)
	case tea.MouseActionMotion:
		if !m.mouseDown {
			return
		}
		if !m.onGrid(msg.X, msg.Y) {
			m.mouseDown = false
			m.sim.PointerLeave()
			return
		}
		m.sim.PointerMove(px, py)
	case tea.MouseActionRelease:
		if m.mouseDown {
			m.mouseDown = false
			m.sim.PointerUp()
		}
	}
}

// record appends the population whenever the generation changes and starts
// over when the generation counter resets.
func (m *Model) record() {
	gen := m.sim.Generation()
	switch {
	case len(m.history) == 0 || gen < m.lastGen:
		m.history = append(m.history[:0], float64(m.sim.Population()))
	case gen == m.lastGen:
		m.history[len(m.history)-1] = float64(m.sim.Population())
	default:
		m.history = append(m.history, float64(m.sim.Population()))
		if len(m.history) > historyLen {
			m.history = m.history[len(m.history)-historyLen:]
		}
	}
	m.lastGen = gen
}

func (m *Model) gridRows() int { return max(m.rows-statusLines, 0) }

func (m *Model) chart() string {
	if !m.sim.PanelVisible() || len(m.history) < 2 || m.cols < 20 {
		return ""
	}
	plot := asciigraph.Plot(m.history,
		asciigraph.Height(chartHeight),
		asciigraph.Width(min(m.cols-12, historyLen)),
		asciigraph.Caption("population"),
	)
	return chartStyle.Width(m.cols).Render(plot)
}

func (m *Model) chartRows() int {
	c := m.chart()
	if c == "" {
		return 0
	}
	return min(lipgloss.Height(c), m.gridRows())
}

func (m *Model) status() string {
	label := stopStyle.Render(" ■ stopped ")
	if m.sim.Running() {
		label = runStyle.Render(" ▶ running ")
	}
	info := fmt.Sprintf(" gen %d  pop %d  %d FPS  %dpx  [space] %s [n] step [c]lear [r]andom [p] noise [+/-] speed [[ ]] cell [h] chart [q]uit",
		m.sim.Generation(), m.sim.Population(), m.sim.Speed(), m.sim.CellSize(), strings.ToLower(m.sim.RunLabel()))
	width := max(m.cols-lipgloss.Width(label), 0)
	return label + statusStyle.Width(width).MaxWidth(width).MaxHeight(1).Render(info)
}

func (m *Model) View() string {
	rows := m.gridRows()
	lines := m.surface.Lines()
	if len(lines) > rows {
		lines = lines[:rows]
	}
	for len(lines) < rows {
		lines = append(lines, strings.Repeat(" ", m.cols))
	}
	for i, l := range lines {
		lines[i] = liveStyle.Render(l)
	}
	if c := m.chart(); c != "" {
		chart := strings.Split(c, "\n")
		if len(chart) > rows {
			chart = chart[len(chart)-rows:]
		}
		copy(lines[rows-len(chart):], chart)
	}
	return strings.Join(append(lines, m.status()), "\n")
}
