package ws

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"
	"zenchat/auth"
	"zenchat/domain"
	"zenchat/observability"
	"zenchat/sink"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type Config struct {
	AllowedOrigins          []string
	MaxFrameSize            int64
	RateLimitBurst          int
	RateLimitRefillInterval time.Duration
	SessionBufferSize       int
	// RequireAuth rejects upgrades without a valid token. Otherwise the
	// session stays anonymous until it announces an identity.
	RequireAuth bool
}

// Server upgrades GET /socket requests into sessions of the realtime layer.
type Server struct {
	log      *slog.Logger
	gateway  Gateway
	tokens   *auth.TokenIssuer
	metrics  *observability.Metrics
	cfg      Config
	upgrader websocket.Upgrader

	mu       sync.Mutex
	clients  map[domain.SessionID]*Client
	shutdown bool
	// one count per tracked client, released once its read pump exited
	open sync.WaitGroup
}

func NewServer(log *slog.Logger, gateway Gateway, tokens *auth.TokenIssuer, metrics *observability.Metrics, cfg Config) *Server {
	origins := NewOriginPolicy(log, cfg.AllowedOrigins)
	return &Server{
		log:     log,
		gateway: gateway,
		tokens:  tokens,
		metrics: metrics,
		cfg:     cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     origins.Check,
		},
		clients: make(map[domain.SessionID]*Client),
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var authUserID domain.UserID
	if s.tokens != nil {
		claims, err := auth.FromRequest(r, s.tokens)
		switch {
		case err == nil:
			authUserID = claims.UserID
		case s.cfg.RequireAuth:
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug("Socket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	if s.cfg.MaxFrameSize > 0 {
		conn.SetReadLimit(s.cfg.MaxFrameSize)
	}

	sessionID := domain.SessionID(uuid.NewString())
	client := &Client{
		conn:      conn,
		sessionID: sessionID,
		sink:      sink.NewSessionSink(s.log, sessionID, s.cfg.SessionBufferSize),
		gateway:   s.gateway,
		limiter:   newRateLimiter(s.cfg.RateLimitBurst, s.cfg.RateLimitRefillInterval),
		log:       s.log,
		metrics:   s.metrics,
	}
	if !s.track(client) || !s.gateway.Connect(sessionID, authUserID, client.sink) {
		s.untrack(sessionID)
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
		_ = conn.Close()
		return
	}
	s.log.Debug("Session connected", "session_id", sessionID, "user_id", authUserID, "remote", r.RemoteAddr)

	go client.writePump()
	go client.readPump(func() { s.untrack(sessionID) })
}

func (s *Server) track(client *Client) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.shutdown {
		return false
	}
	s.clients[client.sessionID] = client
	s.open.Add(1)
	return true
}

func (s *Server) untrack(sessionID domain.SessionID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[sessionID]; !ok {
		return
	}
	delete(s.clients, sessionID)
	s.open.Done()
}

// Clients is the number of open sockets.
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Shutdown refuses new sessions and closes the open ones. Hijacked
// connections are not closed by http.Server.Shutdown.
func (s *Server) Shutdown() {
	s.mu.Lock()
	s.shutdown = true
	clients := make([]*Client, 0, len(s.clients))
	for _, c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()

	deadline := time.Now().Add(writeWait)
	for _, c := range clients {
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown"), deadline)
		_ = c.conn.Close()
	}
	s.log.Info("Socket server stopped", "sessions", len(clients))
}

// WaitClosed returns once every session closed by Shutdown went through
// its disconnect. Call it after Shutdown.
func (s *Server) WaitClosed(ctx context.Context) error {
	closed := make(chan struct{})
	go func() {
		s.open.Wait()
		close(closed)
	}()
	select {
	case <-closed:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
