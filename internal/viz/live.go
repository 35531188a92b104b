package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/avasek/gridterm/internal/automata"
	"github.com/avasek/gridterm/internal/config"
	"github.com/avasek/gridterm/internal/grid"
	"github.com/avasek/gridterm/internal/render"
)

const (
	historyCapacity = 600
	statsWidth      = 36
	chromeRows      = 2 // border rows around the canvas
)

type TickMsg time.Time

// Model is the interactive bubbletea program wrapping one automaton and the
// glyph renderer. Bubble Tea owns the screen here; the raw ANSI driver is
// the non-interactive path.
type Model struct {
	sim    automata.Sim
	mode   render.GlyphMode
	cutoff float64
	theme  Theme
	fps    int
	seed   int64

	tick       int
	running    bool
	width      int // terminal cells, from WindowSizeMsg
	height     int
	frames     []grid.Frame // rank-1 trail history
	population []float64
	showHelp   bool
}

// NewModel builds the interactive model from a run configuration.
func NewModel(sim automata.Sim, cfg *config.Config, mode render.GlyphMode) Model {
	sim.Reset(cfg.Seed)
	cutoff := cfg.Cutoff
	if cutoff == 0 {
		cutoff = render.DefaultCutoff
	}
	fps := cfg.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	return Model{
		sim:        sim,
		mode:       mode,
		cutoff:     cutoff,
		theme:      GetTheme(cfg.Theme),
		fps:        fps,
		seed:       cfg.Seed,
		running:    true,
		width:      80,
		height:     24,
		population: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "m":
			if m.mode == render.ModeBlock {
				m.mode = render.ModeBraille
			} else {
				m.mode = render.ModeBlock
			}
		case "t":
			names := ThemeNames()
			for i, name := range names {
				if name == m.theme.Name {
					m.theme = GetTheme(names[(i+1)%len(names)])
					break
				}
			}
		case "+", "=":
			if m.fps < 60 {
				m.fps++
			}
		case "-", "_":
			if m.fps > 1 {
				m.fps--
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tickCmd()
	}
	return m, nil
}

func (m *Model) step() {
	m.sim.Step()
	m.tick++
	f := m.sim.Frame()

	if f.Rank() == 1 {
		m.frames = append(m.frames, f)
		if len(m.frames) > historyCapacity {
			m.frames = m.frames[1:]
		}
	}

	m.population = append(m.population, float64(m.countLive(f)))
	if len(m.population) > historyCapacity {
		m.population = m.population[1:]
	}
}

func (m *Model) reset() {
	m.sim.Reset(m.seed)
	m.tick = 0
	m.frames = m.frames[:0]
	m.population = m.population[:0]
}

func (m Model) countLive(f grid.Frame) int {
	n := 0
	h, w := f.Shape()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if render.IsOn(f.At(y, x), m.cutoff) {
				n++
			}
		}
	}
	return n
}

// View renders the grid panel beside the stats panel.
func (m Model) View() string {
	canvasRows := m.height - chromeRows
	canvasCols := m.width - statsWidth - 6
	if canvasRows < 1 {
		canvasRows = 1
	}
	if canvasCols < 1 {
		canvasCols = 1
	}

	f := m.sim.Frame()
	var cells [][]bool
	if f.Rank() == 1 {
		history := m.frames
		if len(history) == 0 {
			history = []grid.Frame{f}
		}
		cells = render.Trail(history, m.tick, canvasRows, canvasCols, m.mode, m.cutoff)
	} else {
		cells = render.Clip(f, m.mode, render.Offset{}, canvasRows, canvasCols, m.cutoff)
	}
	gridText := render.Rasterize(cells, m.mode)

	canvasStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(m.theme.Muted).
		Foreground(m.theme.Grid)
	canvasView := canvasStyle.Render(gridText)

	labelStyle := lipgloss.NewStyle().Foreground(m.theme.Muted).Width(8)
	valueStyle := lipgloss.NewStyle().Foreground(m.theme.Text)
	headerStyle := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.sim.Name())) + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")
	s.WriteString(labelStyle.Render("Tick") + valueStyle.Render(fmt.Sprintf("%d", m.tick)) + "\n")
	s.WriteString(labelStyle.Render("Mode") + valueStyle.Render(m.mode.String()) + "\n")
	s.WriteString(labelStyle.Render("FPS") + valueStyle.Render(fmt.Sprintf("%d", m.fps)) + "\n")
	if len(m.population) > 0 {
		pop := int(m.population[len(m.population)-1])
		s.WriteString(labelStyle.Render("Alive") + valueStyle.Render(fmt.Sprintf("%d", pop)) + "\n")
	}
	if len(m.population) > 1 {
		chart := asciigraph.Plot(m.population,
			asciigraph.Height(4), asciigraph.Width(statsWidth-8), asciigraph.Caption("population"))
		s.WriteString("\n" + chart + "\n")
	}
	helpStyle := lipgloss.NewStyle().Foreground(m.theme.Muted).MarginTop(1)
	s.WriteString(helpStyle.Render("SP:Pause R:Reset M:Mode\nT:Theme +/-:Speed Q:Quit"))

	statsStyle := lipgloss.NewStyle().Padding(0, 2).Width(statsWidth)
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))

	if m.showHelp {
		return helpOverlay + "\n" + mainView
	}
	return mainView
}

const helpOverlay = `
╔═══════════════════════════════════╗
║         KEYBOARD SHORTCUTS        ║
╠═══════════════════════════════════╣
║  Space  - Pause/Resume            ║
║  R      - Reset simulation        ║
║  M      - Toggle block/braille    ║
║  T      - Cycle themes            ║
║  +/-    - Adjust speed            ║
║  ?      - Toggle this help        ║
║  Q      - Quit                    ║
╚═══════════════════════════════════╝`

// Run starts the interactive program.
func Run(sim automata.Sim, cfg *config.Config, mode render.GlyphMode) error {
	p := tea.NewProgram(NewModel(sim, cfg, mode), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
