// Package viz renders the simulation live in the terminal. It is a pure
// consumer of particle state: all physics stays in the engine, and the
// only mutation it performs is the between-tick drag override.
package viz

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/partsim/internal/config"
	"github.com/san-kum/partsim/internal/engine"
	"github.com/san-kum/partsim/internal/forces"
	"github.com/san-kum/partsim/internal/metrics"
	"github.com/san-kum/partsim/internal/particle"
)

const (
	canvasWidth     = 80
	canvasHeight    = 24
	historyCapacity = 300
	dragStep        = 20.0
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model drives the simulation at the frame rate and renders particle
// state onto a braille canvas next to a stats panel.
type Model struct {
	cfg       *config.Config
	particles []*particle.Particle
	stepper   *engine.Stepper
	canvas    *Canvas
	rng       *rand.Rand

	solverName    string
	t, dt         float64
	fps           int
	running       bool
	selected      int
	energyHistory []float64
}

func NewModel(cfg *config.Config, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	m := Model{
		cfg:           cfg,
		canvas:        NewCanvas(canvasWidth, canvasHeight),
		rng:           rng,
		solverName:    cfg.Solver,
		fps:           fps,
		running:       true,
		energyHistory: make([]float64, 0, historyCapacity),
	}
	m.particles = particle.NewCloud(cfg.Particles, cfg.Radius(), cfg.Mass, cfg.Width, cfg.Height, rng)
	resolver := engine.NewResolver(cfg.Width, cfg.Height)
	resolver.Damping = cfg.Damping
	resolver.WallDamping = cfg.WallDamping
	m.stepper = engine.NewStepper(m.solver(m.solverName), resolver, cfg.DtMax)
	return m
}

func (m *Model) solver(name string) forces.Solver {
	if name == "tree" {
		return forces.NewBarnesHut(m.cfg.Width, m.cfg.Height, m.cfg.Theta)
	}
	return forces.NewDirect()
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "s":
			if m.solverName == "direct" {
				m.solverName = "tree"
			} else {
				m.solverName = "direct"
			}
			m.stepper.SetSolver(m.solver(m.solverName))
		case "tab":
			if len(m.particles) > 0 {
				m.selected = (m.selected + 1) % len(m.particles)
			}
		case "left":
			m.drag(-dragStep, 0)
		case "right":
			m.drag(dragStep, 0)
		case "up":
			m.drag(0, -dragStep)
		case "down":
			m.drag(0, dragStep)
		}
	case TickMsg:
		if m.running {
			m.dt = m.stepper.Tick(m.particles)
			m.t += m.dt
			m.energyHistory = append(m.energyHistory, metrics.TotalEnergy(m.particles))
			if len(m.energyHistory) > historyCapacity {
				m.energyHistory = m.energyHistory[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// drag moves the selected particle directly, bypassing forces and
// integration for it until the next tick. Runs only between ticks.
func (m *Model) drag(dx, dy float64) {
	if m.selected >= len(m.particles) {
		return
	}
	p := m.particles[m.selected]
	p.X += dx
	p.Y += dy
	if p.X < p.Radius {
		p.X = p.Radius
	}
	if p.X > m.cfg.Width-p.Radius {
		p.X = m.cfg.Width - p.Radius
	}
	if p.Y < p.Radius {
		p.Y = p.Radius
	}
	if p.Y > m.cfg.Height-p.Radius {
		p.Y = m.cfg.Height - p.Radius
	}
}

func (m *Model) reset() {
	m.t = 0
	m.dt = 0
	m.selected = 0
	m.energyHistory = m.energyHistory[:0]
	m.particles = particle.NewCloud(m.cfg.Particles, m.cfg.Radius(), m.cfg.Mass, m.cfg.Width, m.cfg.Height, m.rng)
}

func (m *Model) draw() {
	m.canvas.Clear()
	sx := float64(canvasWidth*2) / m.cfg.Width
	sy := float64(canvasHeight*4) / m.cfg.Height
	for _, p := range m.particles {
		r := int(p.Radius * sx)
		m.canvas.FillDisc(int(p.X*sx), int(p.Y*sy), r)
	}
}

func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("PARTSIM") + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2f", m.t)) + "\n")
	s.WriteString(labelStyle.Render("Dt") + valueStyle.Render(fmt.Sprintf("%.4f", m.dt)) + "\n")
	s.WriteString(labelStyle.Render("Solver") + valueStyle.Render(m.solverName) + "\n")
	s.WriteString(labelStyle.Render("Particles") + valueStyle.Render(fmt.Sprintf("%d", len(m.particles))) + "\n")
	s.WriteString(labelStyle.Render("Selected") + valueStyle.Render(fmt.Sprintf("#%d", m.selected)) + "\n")
	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset S:Solver Q:Quit\nTab:Select ←↑↓→:Drag"))

	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// Run starts the live view and blocks until the user quits.
func Run(cfg *config.Config, fps int) error {
	p := tea.NewProgram(NewModel(cfg, fps))
	_, err := p.Run()
	return err
}
