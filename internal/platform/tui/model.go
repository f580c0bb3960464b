package tui

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/canvas-snake/internal/core"
	"github.com/vovakirdan/canvas-snake/internal/raster"
	"github.com/vovakirdan/canvas-snake/internal/snake"
)

// RoundRecorder persists finished rounds.
type RoundRecorder interface {
	SaveRound(roundID string, score, ticks int) (int64, error)
}

// Options configures the interactive model.
type Options struct {
	// Session options. Scheduler, Canvas and Display are supplied by the model.
	Session snake.Options

	Rounds        RoundRecorder // May be nil
	ScreenshotDir string        // Empty disables screenshots
	Logger        *log.Logger
}

// chrome is the number of lines around the grid: HUD, banner and help.
const chrome = 3

var (
	hudStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(string(core.ColorText)))
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(string(core.ColorApple)))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(string(core.ColorMuted)))
)

// Model is the Bubble Tea model for an interactive snake session.
type Model struct {
	session       *snake.Session
	sched         *tickScheduler
	canvas        *CellCanvas
	hud           *HUD
	keys          KeyMap
	help          help.Model
	rounds        RoundRecorder
	screenshotDir string
	logger        *log.Logger

	width      int
	height     int
	status     string // Last screenshot result
	savedRound string // Round id already written to history
	quitting   bool
}

// NewModel creates a model and its session. The round starts in Init.
func NewModel(opts Options) (Model, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	sched := newTickScheduler()
	w, h := opts.Session.Grid.Width(), opts.Session.Grid.Height()
	canvas := NewCellCanvas(w, h, opts.Session.Grid.CellSize)
	hud := &HUD{}

	so := opts.Session
	so.Scheduler = sched
	so.Canvas = canvas
	so.Display = hud
	if so.Logger == nil {
		so.Logger = opts.Logger
	}

	session, err := snake.New(so)
	if err != nil {
		return Model{}, err
	}

	return Model{
		session:       session,
		sched:         sched,
		canvas:        canvas,
		hud:           hud,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		rounds:        opts.Rounds,
		screenshotDir: opts.ScreenshotDir,
		logger:        opts.Logger,
	}, nil
}

// Init starts the first round and its tick loop.
func (m Model) Init() tea.Cmd {
	m.session.Start()
	// Paint the opening frame; the first tick is a full interval away.
	m.session.DrawTo(m.canvas)
	return m.sched.Drain()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		cmd := m.sched.Fire(msg)
		m.recordRound()
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if k := m.keys.GameKey(msg); k != core.KeyNone {
		before := m.session.RoundID()
		m.session.HandleKey(k)
		if m.session.RoundID() != before {
			m.status = ""
			m.session.DrawTo(m.canvas)
		}
	}

	// Start and Resume register new tick tasks
	return m, m.sched.Drain()
}

// recordRound writes a finished round to history once.
func (m *Model) recordRound() {
	if m.session.State() != snake.StateGameOver || m.savedRound == m.session.RoundID() {
		return
	}
	m.savedRound = m.session.RoundID()

	if m.rounds == nil || m.session.Score() == 0 {
		return
	}
	if _, err := m.rounds.SaveRound(m.session.RoundID(), m.session.Score(), int(m.session.Ticks())); err != nil {
		m.logger.Warn("cannot save round", "round", m.session.RoundID(), "err", err)
	}
}

// saveScreenshot renders the current state to a PNG file.
func (m *Model) saveScreenshot() {
	if m.screenshotDir == "" {
		m.status = "screenshots disabled"
		return
	}

	g := m.session.Grid()
	img := raster.New(g.Width(), g.Height(), core.ColorBackground)
	m.session.DrawTo(img)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("snake_%s.png", timestamp))
	if err := img.SavePNG(path); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		m.status = "screenshot failed"
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.status = "saved " + path
}

// requiredSize returns the terminal size needed to show the grid.
func (m Model) requiredSize() (int, int) {
	scr := m.canvas.Screen()
	return max(scr.Width(), len(m.hud.ScoreLabel())+len(m.hud.HighScoreLabel())+1), scr.Height() + chrome
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	needW, needH := m.requiredSize()
	if m.width > 0 && m.height > 0 && (m.width < needW || m.height < needH) {
		return m.tooSmallView(needW, needH)
	}

	scr := m.canvas.Screen()
	var b strings.Builder

	score, high := m.hud.ScoreLabel(), m.hud.HighScoreLabel()
	gap := max(scr.Width()-len(score)-len(high), 1)
	b.WriteString(hudStyle.Render(score + strings.Repeat(" ", gap) + high))
	b.WriteString("\n")

	b.WriteString(RenderScreen(scr))
	b.WriteString("\n")

	switch {
	case m.hud.Banner() != "":
		b.WriteString(bannerStyle.Render(m.hud.Banner()))
	case m.status != "":
		b.WriteString(mutedStyle.Render(m.status))
	}
	b.WriteString("\n")

	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tooSmallView asks for a bigger terminal.
func (m Model) tooSmallView(needW, needH int) string {
	scr := core.NewScreen(m.width, m.height)
	if m.width >= 4 && m.height >= 4 {
		scr.DrawBox(core.NewRect(0, 0, m.width, m.height), core.ColorMuted)
	}
	mid := m.height / 2
	scr.DrawTextCentered(mid-1, "Window too small", core.ColorText)
	scr.DrawTextCentered(mid, fmt.Sprintf("need %dx%d, have %dx%d", needW, needH, m.width, m.height), core.ColorMuted)
	scr.DrawTextCentered(mid+1, "q to quit", core.ColorMuted)
	return RenderScreen(scr)
}

// Session exposes the running session.
func (m Model) Session() *snake.Session {
	return m.session
}

// Run starts the Bubble Tea program and returns the final session state.
func Run(opts Options) (snake.Snapshot, error) {
	model, err := NewModel(opts)
	if err != nil {
		return snake.Snapshot{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return snake.Snapshot{}, err
	}
	return model.session.Snapshot(), nil
}
