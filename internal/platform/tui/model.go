package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// SessionSaver records finished games. *storage.Store implements it.
type SessionSaver interface {
	SaveSession(rec storage.SessionRecord) (int64, error)
}

// Options configures a Model.
type Options struct {
	Runtime   core.RuntimeConfig
	Keys      config.KeysConfig
	Store     SessionSaver // optional
	Logger    *log.Logger  // optional; discards when nil
	Player    string
	SessionID string // generated when empty
}

// Model is the Bubble Tea model hosting one engine.
// The timer sets the tick flag, key messages press the button latch, and
// every tick polls the loop once.
type Model struct {
	engine    *engine.Engine
	loop      *engine.Loop
	matrix    *core.Matrix
	ticks     *core.TickFlag
	input     *core.ButtonLatch
	keys      KeyMap
	help      help.Model
	store     SessionSaver
	logger    *log.Logger
	config    core.RuntimeConfig
	player    string
	sessionID string
	games     int
	width     int
	height    int
	quitting  bool
}

// NewModel creates a model with a fresh engine on the main menu.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := opts.Keys
	if len(keys.Left) == 0 {
		keys = config.DefaultConfig().Keys
	}

	e := engine.New(uint64(cfg.Seed))
	matrix := core.NewMatrix(engine.Bordered)
	ticks := &core.TickFlag{}
	input := &core.ButtonLatch{}

	e.Render(matrix)

	return Model{
		engine:    e,
		loop:      &engine.Loop{Engine: e, Ticks: ticks, Input: input, Out: matrix},
		matrix:    matrix,
		ticks:     ticks,
		input:     input,
		keys:      NewKeyMap(keys),
		help:      help.New(),
		store:     opts.Store,
		logger:    logger.With("session", sessionID),
		config:    cfg,
		player:    opts.Player,
		sessionID: sessionID,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("session started", "player", m.player, "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate)
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
		return m.handleTick()
	}

	return m, nil
}

// handleKey latches the button for the next step.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Debug("session ended", "games", m.games)
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if b, ok := m.keys.Button(msg); ok {
		m.input.Press(b)
	}
	return m, nil
}

// handleTick raises the tick flag and polls the loop once.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.ticks.Set()
	if res, stepped := m.loop.Poll(); stepped && res.Over != nil {
		m.recordGame(res.Over)
	}
	return m, tickCmd(m.config.TickRate)
}

// recordGame logs a finished game and appends it to the history store.
func (m *Model) recordGame(over *engine.GameOver) {
	m.games++
	m.logger.Info("game over",
		"score", over.Score,
		"level", over.Level,
		"rows", over.Rows,
		"rank", over.Rank,
	)

	if m.store == nil {
		return
	}
	_, err := m.store.SaveSession(storage.SessionRecord{
		SessionID: m.sessionID,
		Player:    m.player,
		Score:     over.Score,
		Level:     over.Level,
		Rows:      over.Rows,
	})
	if err != nil {
		// Best-effort save, the session continues regardless
		m.logger.Error("cannot save session", "error", err)
	}
}

// saveScreenshot writes the committed frame as plain text.
func (m *Model) saveScreenshot() (string, error) {
	dir, err := config.ExpandPath("~/.blockfall/screenshots")
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("blockfall_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.matrix.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// Engine returns the hosted engine.
func (m Model) Engine() *engine.Engine {
	return m.engine
}

// Games returns the number of games finished in this session.
func (m Model) Games() int {
	return m.games
}

// View renders the last committed frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	frame := RenderFrame(m.matrix, engine.Playfield)
	content := lipgloss.JoinVertical(lipgloss.Left, frame, m.help.View(m.keys))

	if m.width <= 0 || m.height <= 0 {
		return content
	}
	if lipgloss.Width(frame) > m.width || lipgloss.Height(frame) > m.height {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d.\nResize or press %s to quit.",
			lipgloss.Width(frame), lipgloss.Height(frame), m.width, m.height, m.keys.Quit.Help().Key)
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
