package viz

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/climsim/internal/climate"
	"github.com/san-kum/climsim/internal/ebm"
)

const (
	chartWidth      = 72
	chartHeight     = 12
	historyCapacity = 600
)

var (
	chartStyle       = lipgloss.NewStyle().Padding(1, 2)
	statsStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(45)
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model drives the live climate view: it steps the system a few years
// per frame and charts both layer anomalies against the start state.
type Model struct {
	system       *climate.TwoLayer
	stepper      ebm.Stepper
	state        ebm.State
	initialState ebm.State
	t, dt        float64
	stepsPerTick int
	running      bool
	scenario     string

	atmHistory     []float64
	ocnHistory     []float64
	forcingHistory []float64

	params        map[string]float64
	initialParams map[string]float64
	paramKeys     []string
	selected      int
	showHelp      bool
}

// NewModel initializes the live view around a constructed system.
func NewModel(system *climate.TwoLayer, stepper ebm.Stepper, initial ebm.State, dt float64, scenario string) Model {
	params := make(map[string]float64)
	for k, v := range system.GetParams() {
		params[k] = v
	}
	keys := make([]string, 0, len(params))
	initialParams := make(map[string]float64)
	for k, v := range params {
		keys = append(keys, k)
		if v == 0 {
			v = 1e-6
		}
		initialParams[k] = v
	}
	sort.Strings(keys)

	return Model{
		system:         system,
		stepper:        stepper,
		state:          initial,
		initialState:   initial,
		t:              0,
		dt:             dt,
		stepsPerTick:   10,
		running:        true,
		scenario:       scenario,
		atmHistory:     make([]float64, 0, historyCapacity),
		ocnHistory:     make([]float64, 0, historyCapacity),
		forcingHistory: make([]float64, 0, historyCapacity),
		params:         params,
		initialParams:  initialParams,
		paramKeys:      keys,
		selected:       0,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the simulation.
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
		case "tab":
			m.cycleParam()
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) cycleParam() {
	if len(m.paramKeys) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.paramKeys)
}

func (m *Model) adjustParam(factor float64) {
	if len(m.paramKeys) == 0 {
		return
	}
	key := m.paramKeys[m.selected]
	newVal := m.params[key] * factor
	m.params[key] = newVal
	m.system.SetParam(key, newVal)
}

// step advances the model a handful of years and records the frame.
func (m *Model) step() {
	for i := 0; i < m.stepsPerTick; i++ {
		m.state = m.stepper.Step(m.system, m.state, m.t, m.dt)
		m.t += m.dt
	}

	flux := m.system.Fluxes(m.state, m.t)

	m.atmHistory = appendCapped(m.atmHistory, m.state.Atmosphere-m.initialState.Atmosphere)
	m.ocnHistory = appendCapped(m.ocnHistory, m.state.Ocean-m.initialState.Ocean)
	m.forcingHistory = appendCapped(m.forcingHistory, flux.Ramp+flux.Volcanic+flux.Solar)
}

func appendCapped(hist []float64, v float64) []float64 {
	hist = append(hist, v)
	if len(hist) > historyCapacity {
		hist = hist[1:]
	}
	return hist
}

// reset restores the initial state and parameters.
func (m *Model) reset() {
	m.t = 0
	m.state = m.initialState
	m.atmHistory = m.atmHistory[:0]
	m.ocnHistory = m.ocnHistory[:0]
	m.forcingHistory = m.forcingHistory[:0]
	for k, v := range m.initialParams {
		m.params[k] = v
		m.system.SetParam(k, v)
	}
}

// View renders the TUI interface.
func (m Model) View() string {
	var chart string
	if len(m.atmHistory) > 1 {
		chart = asciigraph.PlotMany(
			[][]float64{m.atmHistory, m.ocnHistory},
			asciigraph.Height(chartHeight),
			asciigraph.Width(chartWidth),
			asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
			asciigraph.SeriesLegends("atmosphere", "ocean"),
			asciigraph.Caption("temperature anomaly (K)"),
		)
	} else {
		chart = "collecting samples..."
	}
	chartView := chartStyle.Render(graphStyle.Render(chart))

	flux := m.system.Fluxes(m.state, m.t)

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.scenario)) + "\n")
	if m.running {
		s.WriteString(StatusRunning.Render("RUNNING") + "\n\n")
	} else {
		s.WriteString(StatusPaused.Render("PAUSED") + "\n\n")
	}

	s.WriteString(labelStyle.Render("Year") + valueStyle.Render(fmt.Sprintf("%.1f", m.t)) + "\n")
	s.WriteString(labelStyle.Render("T atm") + valueStyle.Render(fmt.Sprintf("%+.3e K", m.state.Atmosphere-m.initialState.Atmosphere)) + "\n")
	s.WriteString(labelStyle.Render("T ocn") + valueStyle.Render(fmt.Sprintf("%+.3e K", m.state.Ocean-m.initialState.Ocean)) + "\n")
	s.WriteString(labelStyle.Render("ECS") + valueStyle.Render(fmt.Sprintf("%.2f K", m.system.Params().ECS())) + "\n")

	s.WriteString("\nFORCING (W/m²)\n")
	s.WriteString(labelStyle.Render("Ramp") + valueStyle.Render(fmt.Sprintf("%.3f", flux.Ramp)) + "\n")
	rampProgress := m.t / climate.RampYears
	s.WriteString("  " + ProgressBar(rampProgress, 20) + "\n")
	volcanic := fmt.Sprintf("%.3f", flux.Volcanic)
	if flux.Volcanic != 0 {
		volcanic = SparkLow.Render(volcanic + " ● eruption")
	} else {
		volcanic = valueStyle.Render(volcanic)
	}
	s.WriteString(labelStyle.Render("Volcanic") + volcanic + "\n")
	s.WriteString(labelStyle.Render("Solar") + valueStyle.Render(fmt.Sprintf("%+.3f", flux.Solar)) + "\n")
	if len(m.forcingHistory) > 1 {
		s.WriteString(labelStyle.Render("History") + SparklineChart(m.forcingHistory, 28) + "\n")
	}

	s.WriteString("\nPARAMETERS\n")
	for i, k := range m.paramKeys {
		val, initial := m.params[k], m.initialParams[k]
		barWidth, ratio := 10, val/(2.0*initial)
		if ratio > 1 {
			ratio = 1
		} else if ratio < 0 {
			ratio = 0
		}
		filled := int(ratio * float64(barWidth))
		bar := "[" + strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled) + "]"
		line := fmt.Sprintf("%-10s %s %.3g", k, bar, val)
		if i == m.selected {
			s.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\nTab:Select ↑↓:Tune ?:Help"))
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, chartView, statsView)

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume simulation  ║
║  R        - Reset simulation         ║
║  Q        - Quit                     ║
║  Tab      - Cycle parameters         ║
║  Up/K     - Increase parameter (+5%) ║
║  Down/J   - Decrease parameter (-5%) ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}
