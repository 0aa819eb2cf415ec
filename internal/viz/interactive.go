package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/orbitals/internal/analysis"
	"github.com/san-kum/orbitals/internal/atom"
	"github.com/san-kum/orbitals/internal/cloud"
	"github.com/san-kum/orbitals/internal/element"
	"github.com/san-kum/orbitals/internal/orbital"
)

const (
	canvasWidth  = 56
	canvasHeight = 24
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	subStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	cloudStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type tickMsg time.Time

type param int

const (
	paramElement param = iota
	paramN
	paramL
	paramM
	paramSamples
)

var paramNames = [...]string{"element", "n", "l", "m", "samples"}

// Model is the interactive orbital browser: pick an element and quantum
// numbers, resample on demand, watch the projected cloud.
type Model struct {
	elements []element.Element
	elIdx    int
	n, l, m  int
	count    int

	atm     *atom.Atom
	sampler *cloud.Sampler
	samples []cloud.CloudSample
	stats   cloud.Stats
	canvas  *Canvas

	cursor   param
	yaw      float64
	spinning bool
	width    int
	height   int
}

func NewModel(seed uint64, count int) Model {
	elements := element.All()
	m := Model{
		elements: elements,
		n:        1,
		count:    count,
		atm:      atom.New(elements[0]),
		sampler:  cloud.NewSamplerWithSeed(seed),
		canvas:   NewCanvas(canvasWidth, canvasHeight),
		spinning: true,
	}
	m.resample()
	return m
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tickMsg:
		if m.spinning {
			m.yaw += 0.08
			m.redraw()
		}
		return m, tick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < paramSamples {
			m.cursor++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case "a":
		m.spinning = !m.spinning
	case "[":
		m.yaw -= 0.2
		m.redraw()
	case "]":
		m.yaw += 0.2
		m.redraw()
	case "enter", " ":
		m.resample()
	}
	return m, nil
}

// adjust moves the selected parameter by delta, clamping the quantum numbers
// so that (n, l, m) stays valid before the orbital is ever constructed.
func (m *Model) adjust(delta int) {
	switch m.cursor {
	case paramElement:
		m.elIdx = (m.elIdx + delta + len(m.elements)) % len(m.elements)
		m.atm = atom.New(m.elements[m.elIdx])
	case paramN:
		m.n += delta
		if m.n < 1 {
			m.n = 1
		}
	case paramL:
		m.l += delta
	case paramM:
		m.m += delta
	case paramSamples:
		m.count += delta * 5000
		if m.count < 0 {
			m.count = 0
		}
	}
	if m.l < 0 {
		m.l = 0
	}
	if m.l > m.n-1 {
		m.l = m.n - 1
	}
	if m.m < -m.l {
		m.m = -m.l
	}
	if m.m > m.l {
		m.m = m.l
	}
	m.resample()
}

func (m *Model) resample() {
	orb, err := orbital.New(m.n, m.l, m.m)
	if err != nil {
		// adjust keeps the triple valid; keep the previous cloud if not.
		return
	}
	m.atm.SetActiveOrbital(orb)
	m.samples = m.sampler.SampleOrbital(m.atm.Element(), orb, cloud.NewSampleConfig(m.count))
	m.stats = m.sampler.LastStats()
	m.redraw()
}

func (m *Model) redraw() {
	m.canvas.Reset()
	radius := m.atm.ActiveOrbital().BoundingRadius(m.atm.Element())
	ProjectCloud(m.canvas, m.samples, radius, m.yaw, 0.05)
}

func (m Model) View() string {
	var left strings.Builder
	left.WriteString(headerStyle.Render("ORBITALS") + "  " + subStyle.Render("electron cloud browser") + "\n")
	left.WriteString(cloudStyle.Render(m.canvas.String()))

	right := m.viewPanel()

	body := lipgloss.JoinHorizontal(lipgloss.Top, left.String(), statsStyle.Render(right))
	help := helpStyle.Render("j/k select  h/l adjust  enter resample  [ ] rotate  a spin  q quit")
	return body + "\n" + help + "\n"
}

func (m Model) viewPanel() string {
	el := m.atm.Element()
	orb := m.atm.ActiveOrbital()
	nuc := m.atm.Nucleus()

	var b strings.Builder
	values := [...]string{
		fmt.Sprintf("%s (%s, Z=%d)", el.Name, el.Symbol, el.AtomicNumber),
		fmt.Sprintf("%d", m.n),
		fmt.Sprintf("%d", m.l),
		fmt.Sprintf("%d", m.m),
		fmt.Sprintf("%d", m.count),
	}
	for i, name := range paramNames {
		label := labelStyle.Render(name)
		value := valueStyle.Render(values[i])
		marker := "  "
		if param(i) == m.cursor {
			marker = activeStyle.Render("▸ ")
			value = activeStyle.Render(values[i])
		}
		b.WriteString(marker + label + value + "\n")
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("orbital") + valueStyle.Render(orb.String()) + "\n")
	b.WriteString(labelStyle.Render("electrons") + valueStyle.Render(fmt.Sprintf("%d", len(m.atm.Electrons()))) + "\n")
	b.WriteString(labelStyle.Render("nucleus") + valueStyle.Render(fmt.Sprintf("%dp %dn  %.2f amu", nuc.ProtonCount(), nuc.NeutronCount(), nuc.TotalMass())) + "\n")
	b.WriteString(labelStyle.Render("mean r") + valueStyle.Render(fmt.Sprintf("%.4f Å", analysis.MeanRadius(m.samples))) + "\n")
	b.WriteString(labelStyle.Render("acceptance") + valueStyle.Render(fmt.Sprintf("%.1f%%", m.stats.AcceptanceRate()*100)) + "\n")
	if m.stats.Filled > 0 {
		b.WriteString(warnStyle.Render(fmt.Sprintf("  %d zero-weight filler points", m.stats.Filled)) + "\n")
	}

	if profile, _ := analysis.RadialProfile(m.samples, 40); len(profile) > 0 {
		b.WriteString("\n" + subStyle.Render("radial profile") + "\n")
		b.WriteString(asciigraph.Plot(profile, asciigraph.Height(7), asciigraph.Width(36)))
	}
	return b.String()
}

// RunInteractive launches the orbital browser in the alternate screen.
func RunInteractive(seed uint64, count int) error {
	_, err := tea.NewProgram(NewModel(seed, count), tea.WithAltScreen()).Run()
	return err
}
