// Package live serves the navigation WebSocket. Each connection owns a
// History; the client sends navigate, back, and forward frames and the
// server answers with the navigation bar and outlet for the new path. The
// rest of the shell stays in the page as first served.
package live

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vango-dev/navshell/internal/errors"
	"github.com/vango-dev/navshell/internal/history"
	"github.com/vango-dev/navshell/internal/nav"
	"github.com/vango-dev/navshell/pkg/middleware"
	"github.com/vango-dev/navshell/pkg/render"
	"github.com/vango-dev/navshell/pkg/router"
)

// maxFrameSize bounds a single client frame.
const maxFrameSize = 4096

// Server handles live navigation connections.
type Server struct {
	router   *router.Router
	renderer *render.Renderer
	metrics  *middleware.Metrics
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu       sync.RWMutex
	sessions map[string]*session
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics records sessions and frames.
func WithMetrics(m *middleware.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithCheckOrigin overrides the same-origin check on upgrade.
func WithCheckOrigin(check func(r *http.Request) bool) Option {
	return func(s *Server) {
		s.upgrader.CheckOrigin = check
	}
}

// New creates a live navigation server rendering through r.
func New(r *router.Router, opts ...Option) *Server {
	s := &Server{
		router:   r,
		renderer: render.NewRenderer(render.RendererConfig{}),
		logger:   slog.Default().With("component", "live"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		sessions: make(map[string]*session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// session is one live connection.
type session struct {
	id      string
	conn    *websocket.Conn
	history *history.History
	logger  *slog.Logger
}

// ServeHTTP upgrades the request and runs the session until the client
// disconnects. The initial path comes from the "path" query parameter.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("upgrade failed", "error", err)
		return
	}
	conn.SetReadLimit(maxFrameSize)

	initial := r.URL.Query().Get("path")
	if initial == "" {
		initial = "/"
	}

	id := uuid.NewString()
	sess := &session{
		id:      id,
		conn:    conn,
		history: history.New(initial),
		logger:  s.logger.With("session_id", id),
	}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()
	s.metrics.SessionOpened()
	sess.logger.Info("session opened", "path", sess.history.Current())

	defer func() {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		s.metrics.SessionClosed()
		conn.Close()
		sess.logger.Info("session closed")
	}()

	ctx := r.Context()
	if _, err := history.Canonical(initial); err != nil {
		if s.send(sess, errorFrame(err)) != nil {
			return
		}
	}
	if s.send(sess, s.renderFrame(ctx, sess.history.Current())) != nil {
		return
	}

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				sess.logger.Warn("read failed", "error", err)
			}
			return
		}

		var reply ServerFrame
		if msgType != websocket.TextMessage {
			reply = errorFrame(errors.New("E302").WithDetail("binary frames are not supported"))
		} else {
			reply = s.handle(ctx, sess, data)
		}
		if err := s.send(sess, reply); err != nil {
			sess.logger.Warn("write failed", "error", err)
			return
		}
	}
}

// handle applies one client frame to the session history and returns the
// reply.
func (s *Server) handle(ctx context.Context, sess *session, data []byte) ServerFrame {
	var frame ClientFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		s.metrics.FrameReceived("malformed")
		return errorFrame(errors.New("E302").Wrap(err))
	}

	switch frame.Type {
	case FrameNavigate:
		s.metrics.FrameReceived(string(frame.Type))
		var err error
		if frame.Replace {
			_, err = sess.history.Replace(frame.Path)
		} else {
			_, err = sess.history.Navigate(frame.Path)
		}
		if err != nil {
			sess.logger.Debug("navigate rejected", "path", frame.Path, "error", err)
			return errorFrame(err)
		}

	case FrameBack:
		s.metrics.FrameReceived(string(frame.Type))
		sess.history.Back()

	case FrameForward:
		s.metrics.FrameReceived(string(frame.Type))
		sess.history.Forward()

	default:
		s.metrics.FrameReceived("unknown")
		return errorFrame(errors.New("E303").WithDetailf("%q", frame.Type))
	}

	return s.renderFrame(ctx, sess.history.Current())
}

// renderFrame renders the navigation bar and outlet for path, or an error
// frame if rendering fails.
func (s *Server) renderFrame(ctx context.Context, path string) ServerFrame {
	req, err := s.router.Serve(ctx, path, "live")
	if err != nil {
		s.logger.Error("render failed", "path", path, "error", err)
		return errorFrame(err)
	}
	canonical := req.Resolution.Path

	bar, err := s.renderer.RenderToString(nav.Bar(canonical))
	if err != nil {
		s.logger.Error("render failed", "path", path, "error", err)
		return errorFrame(err)
	}
	var outlet string
	if req.Outlet != nil {
		if outlet, err = s.renderer.RenderToString(req.Outlet); err != nil {
			s.logger.Error("render failed", "path", path, "error", err)
			return errorFrame(err)
		}
	}
	return ServerFrame{Type: FrameRender, Path: canonical, Nav: bar, Outlet: outlet}
}

func errorFrame(err error) ServerFrame {
	return ServerFrame{Type: FrameError, Error: err.Error(), Code: errors.CodeOf(err)}
}

// send writes a frame as a JSON text message. Only the session's own
// goroutine writes data frames.
func (s *Server) send(sess *session, frame ServerFrame) error {
	if err := sess.conn.WriteJSON(frame); err != nil {
		return err
	}
	s.metrics.FrameSent(string(frame.Type))
	return nil
}

// SessionCount returns the number of open connections.
func (s *Server) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close sends a going-away close frame to every open connection and
// closes it. Session goroutines exit on their next read.
func (s *Server) Close() {
	s.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(s.sessions))
	for _, sess := range s.sessions {
		conns = append(conns, sess.conn)
	}
	s.mu.RUnlock()

	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	deadline := time.Now().Add(time.Second)
	for _, conn := range conns {
		_ = conn.WriteControl(websocket.CloseMessage, msg, deadline)
		conn.Close()
	}
}
