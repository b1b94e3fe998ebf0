package app

import (
	"time"

	"silo-monitor.klederson.com/internal/config"
	"silo-monitor.klederson.com/internal/indicator"
	"silo-monitor.klederson.com/internal/level"
	"silo-monitor.klederson.com/internal/sensor"
	"silo-monitor.klederson.com/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
)

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	source  sensor.Source
	history *levelHistory
}

// AppModel is the root Bubble Tea model. The smoothed level lives in the
// model value and is threaded through Update, one step per tick.
type AppModel struct {
	width  int
	height int

	params   level.Params
	interval time.Duration

	state level.State
	last  level.Sample
	ticks uint64

	shared *shared
}

// New creates a new AppModel reading from src.
func New(cfg config.Config, src sensor.Source) AppModel {
	return AppModel{
		params:   level.NewParams(cfg),
		interval: cfg.PollInterval,
		shared: &shared{
			source:  src,
			history: newLevelHistory(cfg.HistoryLength),
		},
	}
}

func (m AppModel) Init() tea.Cmd {
	return tickCmd(m.interval)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		m = m.poll()
		return m, tickCmd(m.interval)
	}

	return m, nil
}

func (m AppModel) poll() AppModel {
	prev := m.last
	m.last, m.state = pollOnce(m.params, m.shared.source, m.state)
	m.ticks++
	m.shared.history.add(m.state.Smoothed)

	if m.last.High != prev.High {
		log.WithField("level", m.last.Shown).WithField("high", m.last.High).Info("fill alarm changed")
	}
	return m
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		if err := m.shared.source.Close(); err != nil {
			log.WithError(err).Warn("closing sensor")
		}
		return m, tea.Quit

	case "r", "R":
		m.state = level.State{}
		m.last = level.Sample{}
		m.shared.history.reset()
		log.Info("smoothing filter reset")
	}

	return m, nil
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing silo monitor..."
	}

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 12 {
		bodyH = 12
	}

	src := m.shared.source
	menuBar := ui.RenderMenuBar(m.width, src.Describe(), src.Connected())

	distance := "- cm"
	if m.ticks > 0 {
		distance = m.last.Distance.String()
	}

	discW, discH := ui.GaugeIndicatorSize(m.width, bodyH)
	gauge := ui.RenderGaugePanel(m.width, bodyH, ui.Gauge{
		Distance:  distance,
		Shown:     m.last.Shown,
		Indicator: indicator.Render(discW, discH, m.last.Shown, m.last.High),
		History:   m.shared.history.snapshot(),
	})

	statusBar := ui.RenderStatusBar(m.width, ui.StatusInfo{
		Connected: src.Connected(),
		Near:      m.params.Near,
		Far:       m.params.Far,
		Alpha:     m.params.Alpha,
		Threshold: m.params.HighThreshold,
		Dropped:   src.Dropped(),
		Ticks:     m.ticks,
	})

	return ui.ComposeLayout(menuBar, gauge, statusBar)
}

// State returns the current smoothed level.
func (m AppModel) State() level.State { return m.state }

// Last returns the most recent sample.
func (m AppModel) Last() level.Sample { return m.last }

// pollOnce takes at most one line from src and advances the pipeline.
// Nothing buffered counts as an empty, Absent line.
func pollOnce(p level.Params, src sensor.Source, prev level.State) (level.Sample, level.State) {
	raw, _ := src.Poll()
	return p.Step(prev, raw)
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
