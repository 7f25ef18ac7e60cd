// Package web is the browser host: an embedded canvas page and one
// websocket per tab. The server runs the simulation; the page only
// sends key events and draws the frames it receives.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"

	"github.com/vovakirdan/skyshooter/internal/core"
	"github.com/vovakirdan/skyshooter/internal/platform"
	"github.com/vovakirdan/skyshooter/internal/registry"
	"github.com/vovakirdan/skyshooter/internal/storage"
)

//go:embed static
var staticFiles embed.FS

// Config holds configuration for the web server.
type Config struct {
	// Address is the host:port to listen on.
	Address string

	// Profile is played when the page does not ask for one.
	Profile string

	// TickRate is the simulation rate for every session.
	TickRate int

	// Seed fixes the RNG seed for every session (0 = clock).
	Seed int64

	// LogLevel filters server logs.
	LogLevel log.Level
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:  ":8080",
		Profile:  "classic",
		TickRate: 60,
		LogLevel: log.InfoLevel,
	}
}

// Server serves the page and runs one session per websocket.
type Server struct {
	config Config
	store  *storage.Store
	logger *log.Logger
	hub    *Hub
	http   *http.Server
}

// NewServer creates a server. store may be nil to disable score saving.
func NewServer(cfg Config, store *storage.Store) *Server {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyshooter-web",
		Level:           cfg.LogLevel,
	})

	s := &Server{
		config: cfg,
		store:  store,
		logger: logger,
		hub:    NewHub(),
	}
	s.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Routes returns the HTTP handler.
func (s *Server) Routes() http.Handler {
	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err) // embedded at build time
	}

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServerFS(static))
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/api/scores", s.handleScores)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// handleWS upgrades the connection and runs a session until the tab
// exits or disconnects.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	profile := r.URL.Query().Get("profile")
	if profile == "" {
		profile = s.config.Profile
	}
	player := r.URL.Query().Get("player")
	if player == "" {
		player = "web"
	}

	game, err := registry.Create(profile)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	id := uuid.NewString()
	logger := s.logger.With("session", id)
	runner := platform.NewRunner(game, s.store, logger, core.RuntimeConfig{
		TickRate: s.config.TickRate,
		Seed:     s.config.Seed,
	}, player)
	sess, err := newSession(id, runner)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket accept failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.CloseNow() //nolint:errcheck // Closed normally below when possible

	client := &Client{ID: id, Player: player, Conn: conn, Send: make(chan []byte, 8)}
	s.hub.Register(client)
	defer s.hub.Unregister(id)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	logger.Info("connection opened", "player", player, "profile", profile, "remote", r.RemoteAddr, "clients", s.hub.Count())
	start := time.Now()

	runner.Start()
	if err := wsjson.Write(ctx, conn, sess.hello()); err != nil {
		return
	}

	go client.WritePump(ctx)

	inputs := make(chan ClientMessage, 16)
	go readLoop(ctx, conn, inputs)

	exited := sess.run(ctx, client, inputs, s.config.TickRate)
	logger.Info("connection closed", "player", player, "exit", exited, "duration", time.Since(start).Round(time.Second))

	if exited {
		writeCtx, done := context.WithTimeout(context.Background(), time.Second)
		defer done()
		//nolint:errcheck // Page closes itself on exit or on close
		wsjson.Write(writeCtx, conn, ServerMessage{Type: MsgExit})
		//nolint:errcheck // Best-effort close
		conn.Close(websocket.StatusNormalClosure, "exit")
	}
}

// readLoop decodes browser messages until the connection fails.
func readLoop(ctx context.Context, conn *websocket.Conn, out chan<- ClientMessage) {
	defer close(out)
	for {
		var msg ClientMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			return
		}
		select {
		case out <- msg:
		case <-ctx.Done():
			return
		}
	}
}

// handleScores returns the top scores of a profile as JSON.
func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	profile := r.URL.Query().Get("profile")
	if profile == "" {
		profile = s.config.Profile
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	scores := []storage.ScoreEntry{}
	if s.store != nil {
		top, err := s.store.TopScores(profile, limit)
		if err != nil {
			s.logger.Warn("could not load scores", "profile", profile, "error", err)
			http.Error(w, "could not load scores", http.StatusInternalServerError)
			return
		}
		scores = append(scores, top...)
	}

	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck // Client may have gone away
	json.NewEncoder(w).Encode(scores)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck // Client may have gone away
	json.NewEncoder(w).Encode(map[string]int{"clients": s.hub.Count()})
}

// ListenAndServe starts the server and blocks until SIGINT/SIGTERM.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting web server", "address", s.config.Address, "profile", s.config.Profile)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
	case err := <-errCh:
		s.logger.Error("server error", "error", err)
		return err
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown closes every websocket and stops the HTTP server.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.hub.CloseAll("server shutting down")
	return s.http.Shutdown(ctx)
}
