package playground

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/minidom/internal/demo"
	"github.com/vango-dev/minidom/internal/errors"
	"github.com/vango-dev/minidom/pkg/reconcile"
	"github.com/vango-dev/minidom/pkg/render"
	"github.com/vango-dev/minidom/pkg/telemetry"
	"github.com/vango-dev/minidom/pkg/vdom"
)

// DefaultTitle is the page title used when Options.Title is empty.
const DefaultTitle = "minidom playground"

const shutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	// Title is the page title and the heading of the default application.
	Title string

	// Root builds the tree mounted into every new session.
	// Default: demo.App.
	Root func() *vdom.VNode

	// Logger receives session and request logs. Default: slog.Default().
	Logger *slog.Logger

	// Collector, if set, observes every render pass and tracks sessions.
	Collector *telemetry.Collector

	// Gatherer, if set, is served at MetricsPath.
	Gatherer prometheus.Gatherer

	// MetricsPath defaults to "/metrics".
	MetricsPath string

	// Tracer is passed to every session's engine.
	Tracer trace.Tracer
}

// Server hosts playground sessions.
type Server struct {
	opts     Options
	logger   *slog.Logger
	upgrader websocket.Upgrader
	router   chi.Router

	mu       sync.RWMutex
	sessions map[*websocket.Conn]*Session
	nextID   atomic.Uint64
}

// New creates a Server.
func New(opts Options) *Server {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.Root == nil {
		title := opts.Title
		opts.Root = func() *vdom.VNode {
			return vdom.Component(demo.App, vdom.Props{"title": title})
		}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.MetricsPath == "" {
		opts.MetricsPath = "/metrics"
	}

	s := &Server{
		opts:     opts,
		logger:   opts.Logger.With("component", "playground"),
		sessions: make(map[*websocket.Conn]*Session),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Local playground, any origin
			},
		},
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/tree", s.handleTree)
	r.Get("/ws", s.HandleWebSocket)
	r.Get("/healthz", s.handleHealth)
	if s.opts.Gatherer != nil {
		r.Method(http.MethodGet, s.opts.MetricsPath, promhttp.HandlerFor(s.opts.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// Handler returns the HTTP handler serving the playground.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) engineOptions(id string) []reconcile.Option {
	opts := []reconcile.Option{
		reconcile.WithLogger(s.opts.Logger.With("component", "reconcile", "session", id)),
		reconcile.WithTracer(s.opts.Tracer),
	}
	if s.opts.Collector != nil {
		opts = append(opts, reconcile.WithObserver(s.opts.Collector))
	}
	return opts
}

// newSession mounts the root tree into a new session.
func (s *Server) newSession() (*Session, error) {
	id := fmt.Sprintf("s%d", s.nextID.Add(1))
	return NewSession(id, s.opts.Root(), s.engineOptions(id)...)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess, err := s.newSession()
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var b strings.Builder
	err = render.NewRenderer(render.RendererConfig{IncludeIDs: true}).RenderPage(&b, render.PageData{
		Title:   s.opts.Title,
		Body:    sess.Document().Root(),
		Scripts: []render.ScriptTag{{Inline: ClientScript}},
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(b.String()))
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	sess, err := s.newSession()
	if err != nil {
		s.fail(w, r, err)
		return
	}
	frame, err := sess.Snapshot()
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(frame.HTML))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":   "ok",
		"sessions": s.SessionCount(),
	})
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("request failed",
		"path", r.URL.Path,
		"request_id", middleware.GetReqID(r.Context()),
		"error", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// HandleWebSocket upgrades the connection and runs a session on it until the
// client disconnects.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.wsError("upgrade")
		return
	}
	defer conn.Close()

	sess, err := s.newSession()
	if err != nil {
		s.logger.Error("session mount failed", "error", err)
		_ = conn.WriteJSON(errorFrame(err))
		return
	}

	s.register(conn, sess)
	defer s.unregister(conn)
	s.logger.Info("session opened", "session", sess.ID(), "remote", r.RemoteAddr)

	frame, err := sess.Snapshot()
	if err != nil {
		frame = errorFrame(err)
	}
	if err := conn.WriteJSON(frame); err != nil {
		s.wsError("write")
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("session read failed", "session", sess.ID(), "error", err)
				s.wsError("read")
			}
			return
		}

		frame := s.handleFrame(sess, data)
		if err := conn.WriteJSON(frame); err != nil {
			s.wsError("write")
			return
		}
	}
}

// handleFrame decodes and dispatches one client frame.
func (s *Server) handleFrame(sess *Session, data []byte) Frame {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		s.wsError("decode")
		return errorFrame(errors.New("S001").Wrap(err))
	}
	if ev.Type == "" {
		s.wsError("decode")
		return errorFrame(errors.New("S001").WithDetail("The frame has no \"event\" field."))
	}

	frame, err := sess.Handle(ev)
	if err != nil {
		s.logger.Debug("event rejected", "session", sess.ID(), "node", ev.Node, "event", ev.Type, "error", err)
		s.wsError("event")
		return errorFrame(err)
	}
	s.logger.Debug("event handled", "session", sess.ID(), "node", ev.Node, "event", ev.Type, "mutations", len(frame.Ops))
	return frame
}

func (s *Server) register(conn *websocket.Conn, sess *Session) {
	s.mu.Lock()
	s.sessions[conn] = sess
	s.mu.Unlock()
	if s.opts.Collector != nil {
		s.opts.Collector.SessionOpened()
	}
}

func (s *Server) unregister(conn *websocket.Conn) {
	s.mu.Lock()
	sess, ok := s.sessions[conn]
	delete(s.sessions, conn)
	s.mu.Unlock()
	if !ok {
		return
	}
	if s.opts.Collector != nil {
		s.opts.Collector.SessionClosed()
	}
	s.logger.Info("session closed", "session", sess.ID())
}

func (s *Server) wsError(kind string) {
	if s.opts.Collector != nil {
		s.opts.Collector.WebSocketError(kind)
	}
}

// SessionCount returns the number of connected sessions.
func (s *Server) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close closes all client connections.
func (s *Server) Close() {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for conn := range s.sessions {
		conn.Close()
	}
}

// ListenAndServe serves the playground on addr until ctx is cancelled, then
// closes all sessions and shuts the HTTP server down.
func (s *Server) ListenAndServe(ctx context.Context, addr string, readTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("playground listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
