package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/platform/audio"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// Options wires the model's collaborators. Every field is optional.
type Options struct {
	Store      *storage.Store
	Sound      audio.Sink
	Logger     *log.Logger
	HoldWindow time.Duration
	// ScreenshotDir defaults to ~/.shooter/screenshots.
	ScreenshotDir string
}

// runClock is implemented by games that expose the elapsed time of the run.
type runClock interface {
	Now() time.Duration
}

// Model is the Bubble Tea model that drives a single game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	opts     Options
	keys     KeyMap
	held     *HeldKeys
	lastTick time.Time
	ticks    int
	state    core.GameState
	quitting bool
	saved    bool // score of the current game over has been recorded
}

// NewModel creates a model for game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Sound == nil {
		opts.Sound = audio.Silent{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	game.SetLogger(opts.Logger)

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		opts:   opts,
		keys:   DefaultKeyMap(),
		held:   NewHeldKeys(opts.HoldWindow),
	}
}

// Init starts the game and the frame clock.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Logger.Info("run started", "game", m.game.ID(),
		"width", m.config.ScreenW, "height", m.config.ScreenH, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}
	m.held.Press(m.keys.Action(msg), time.Now())
	return m, nil
}

// handleResize resizes the screen. The play area follows the terminal only
// until the first frame has run; later resizes keep the current run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.ticks == 0 {
		m.game.Reset(m.config)
	}
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now
	m.ticks++

	wasOver := m.state.GameOver
	result := m.game.Step(m.held.Frame(now), dt)
	m.state = result.State

	for _, s := range result.Sounds {
		m.opts.Sound.Play(s)
	}

	if m.state.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case m.state.GameOver && !m.saved:
		m.recordRun()
		m.saved = true
		m.held.Release()
	case wasOver && !m.state.GameOver:
		m.saved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the finished run. Storage is best effort.
func (m *Model) recordRun() {
	var elapsed time.Duration
	if c, ok := m.game.(runClock); ok {
		elapsed = c.Now()
	}
	if m.opts.Store == nil || m.state.Score <= 0 {
		return
	}
	_, err := m.opts.Store.SaveRun(storage.Run{
		GameID:   m.game.ID(),
		Score:    m.state.Score,
		Level:    m.state.Level,
		Duration: elapsed,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.opts.Logger.Warn("screenshot: no home directory", "error", err)
			return
		}
		dir = filepath.Join(home, ".shooter", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot: cannot create directory", "dir", dir, "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot: write failed", "path", path, "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// State returns the game state seen on the last frame.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for game on the local terminal.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
