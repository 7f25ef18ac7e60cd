package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/skyshooter/internal/core"
	"github.com/vovakirdan/skyshooter/internal/registry"
	"github.com/vovakirdan/skyshooter/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the host key file. Empty means ~/.skyshooter/host_key,
	// generated on first start.
	HostKeyPath string

	// DBPath is the scores database path or postgres:// DSN.
	DBPath string

	// IdleTimeout closes connections with no traffic.
	IdleTimeout time.Duration

	// TickRate is the simulation rate for every session.
	TickRate int

	// Hold is the key-hold window for movement keys.
	Hold time.Duration

	// LogLevel filters server logs.
	LogLevel log.Level
}

// DefaultSSHServerConfig returns the settings used by `skyshooter serve`.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.skyshooter/scores.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
		Hold:        DefaultHoldWindow,
		LogLevel:    log.InfoLevel,
	}
}

// SSHServer serves the profile picker over SSH. Interactive connections
// get their own SessionModel; non-interactive ones may run a few text
// commands (see runCommand).
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
	active atomic.Int32
}

// NewSSHServer opens the score store and prepares the listener. A store
// that fails to open disables score saving but not play.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	s := &SSHServer{
		config: cfg,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "skyshooter-ssh",
			Level:           cfg.LogLevel,
		}),
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		s.logger.Warn("scores disabled", "db", cfg.DBPath, "error", err)
	} else {
		s.store = store
		s.logger.Debug("scores database open", "backend", store.Backend())
	}

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		s.closeStore()
		return nil, err
	}

	s.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			s.commandMiddleware,
			s.loggingMiddleware,
		),
		// Input latency matters more than packet count
		ssh.WrapConn(func(_ ssh.Context, conn net.Conn) net.Conn {
			if tcp, ok := conn.(*net.TCPConn); ok {
				_ = tcp.SetNoDelay(true)
			}
			return conn
		}),
	)
	if err != nil {
		s.closeStore()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	return s, nil
}

// hostKeyPath resolves the key location and makes sure its directory exists.
func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".skyshooter", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// teaHandler starts a menu session sized to the client's PTY. The SSH
// user name is stored with every score.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		return nil, nil
	}

	model := NewSessionModel(SessionConfig{
		Store:  s.store,
		Logger: s.logger,
		Runtime: core.RuntimeConfig{
			ScreenW:  pty.Window.Width,
			ScreenH:  pty.Window.Height,
			TickRate: s.config.TickRate,
		},
		Player: sess.User(),
		// No screenshots: the filesystem belongs to the server
		Game: GameOptions{Hold: s.config.Hold},
	})
	s.logger.Debug("menu session started", "user", sess.User(), "session", model.ID(), "term", pty.Term)

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// commandMiddleware answers `ssh host <command>` without starting the UI.
// Connections with neither a command nor a PTY are turned away.
func (s *SSHServer) commandMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		if args := sess.Command(); len(args) > 0 {
			code := s.runCommand(sess, args)
			_ = sess.Exit(code)
			return
		}
		if _, _, ok := sess.Pty(); !ok {
			fmt.Fprintln(sess.Stderr(), "Sky Shooter needs a terminal. Connect with: ssh -t")
			_ = sess.Exit(1)
			return
		}
		next(sess)
	}
}

// runCommand handles the non-interactive commands:
//
//	profiles          list profiles
//	scores <profile>  top ten runs of a profile
func (s *SSHServer) runCommand(sess ssh.Session, args []string) int {
	switch args[0] {
	case "profiles":
		for _, p := range registry.List() {
			fmt.Fprintf(sess, "%-8s  %-14s  %s\n", p.ID, p.Title, p.Summary)
		}
		return 0

	case "scores":
		if len(args) != 2 || !registry.Exists(args[1]) {
			fmt.Fprintln(sess.Stderr(), "usage: scores <profile>")
			return 1
		}
		if err := s.writeScores(sess, args[1]); err != nil {
			fmt.Fprintln(sess.Stderr(), err)
			return 1
		}
		return 0
	}

	fmt.Fprintf(sess.Stderr(), "unknown command %q (try: profiles, scores <profile>)\n", strings.Join(args, " "))
	return 1
}

func (s *SSHServer) writeScores(w io.Writer, profile string) error {
	if s.store == nil {
		return errors.New("scores are disabled on this server")
	}
	runs, err := s.store.TopScores(profile, 10)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		return nil
	}
	for i, r := range runs {
		fmt.Fprintf(w, "%3d  %-16s  %6d  %5s\n", i+1, r.Player, r.Score, formatDuration(r.DurationSecs))
	}
	return nil
}

// loggingMiddleware logs connection lifetimes and the live session count.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		n := s.active.Add(1)
		s.logger.Info("connection opened", "user", sess.User(), "remote", sess.RemoteAddr().String(), "active", n)

		next(sess)

		n = s.active.Add(-1)
		s.logger.Info("connection closed", "user", sess.User(), "duration", time.Since(start).Round(time.Second), "active", n)
	}
}

// ListenAndServe serves until SIGINT/SIGTERM or a listener error.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-sig:
		s.logger.Info("shutting down", "active", s.active.Load())
		return s.Shutdown()
	case err := <-errCh:
		s.logger.Error("server error", "error", err)
		_ = s.Shutdown()
		return err
	}
}

// Shutdown stops accepting connections, waits up to ten seconds for open
// ones and closes the store.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
