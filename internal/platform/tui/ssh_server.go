package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/pop-bubble/internal/core"
	"github.com/vovakirdan/pop-bubble/internal/registry"
	"github.com/vovakirdan/pop-bubble/internal/session"
)

type sessionIDKey struct{}

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.popbubble/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate for every session.
	TickRate int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
	}
}

// SSHServer wraps a Wish SSH server that serves one Pop-Bubble session per
// connection.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	logger   *log.Logger
	sessions *session.Registry
}

// NewSSHServer creates a new SSH server with the given configuration.
// A nil logger logs to stderr with timestamps.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "popbubble-ssh",
		})
	}

	srv := &SSHServer{
		config:   cfg,
		logger:   logger,
		sessions: session.NewRegistry(),
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".popbubble", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", mkdirErr)
	}

	// Middlewares run last to first: logging wraps the terminal check, which
	// wraps the Bubble Tea program.
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sshSession.Pty()

	// Create runtime config from PTY size
	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	// Each session renders with its own color profile
	painter := NewPainter(bubbletea.MakeRenderer(sshSession))
	logger := s.logger.With("user", sshSession.User())

	model := NewSessionModel(cfg, painter, logger)
	if id, ok := sshSession.Context().Value(sessionIDKey{}).(session.ID); ok {
		model = model.WithTracking(s.sessions, id)
	}

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		remote := sshSession.RemoteAddr().String()
		id := s.sessions.Open(sshSession.User(), remote)
		sshSession.Context().SetValue(sessionIDKey{}, id)

		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", remote,
			"active", s.sessions.Count(),
		)
		next(sshSession)
		duration := s.sessions.Close(id)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", remote,
			"duration", duration.Round(time.Second),
			"active", s.sessions.Count(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
	case err := <-errCh:
		s.logger.Error("server error", "error", err)
		return fmt.Errorf("tui: ssh server: %w", err)
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Sessions returns the registry of connected players.
func (s *SSHServer) Sessions() *session.Registry {
	return s.sessions
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel manages the full session flow: menu -> game -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	config    core.RuntimeConfig
	painter   *Painter
	logger    *log.Logger
	menu      MenuModel
	gameModel *GameModel
	inGame    bool
	quitting  bool

	sessions  *session.Registry
	sessionID session.ID
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg core.RuntimeConfig, painter *Painter, logger *log.Logger) SessionModel {
	if painter == nil {
		painter = NewPainter(nil)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		config:  cfg,
		painter: painter,
		logger:  logger,
		menu:    NewMenuModel(cfg, painter),
	}
}

// WithTracking makes the model report the board it is playing to the
// registry under the given session ID.
func (m SessionModel) WithTracking(r *session.Registry, id session.ID) SessionModel {
	m.sessions = r
	m.sessionID = id
	return m
}

func (m SessionModel) track(board string) {
	if m.sessions != nil {
		m.sessions.SetBoard(m.sessionID, board)
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.inGame && m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	// The menu returns tea.Quit on selection; inside a session we switch
	// models instead of ending the program.
	game, err := registry.Create(selected.GameID)
	if err != nil {
		m.logger.Error("cannot create game", "game", selected.GameID, "error", err)
		m.menu = NewMenuModel(m.config, m.painter)
		return m, nil
	}

	m.config.Seed = time.Now().UnixNano()
	gameModel := NewGameModel(game, m.config, m.painter, m.logger)
	m.gameModel = &gameModel
	m.inGame = true
	m.track(selected.GameID)

	return m, m.gameModel.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	// Check if user quit game (back to menu)
	if m.gameModel.BackToMenu() {
		m.inGame = false
		m.gameModel = nil
		m.track("")
		m.menu = NewMenuModel(m.config, m.painter)
		return m, m.menu.Init()
	}

	// Check if user quit entirely
	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inGame && m.gameModel != nil {
		return m.gameModel.View()
	}

	return m.menu.View()
}

// InGame reports whether the session is currently playing a board.
func (m SessionModel) InGame() bool {
	return m.inGame
}
