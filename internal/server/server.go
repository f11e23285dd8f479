package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/muurk/wsecho/internal/logging"
	"go.uber.org/zap"
)

// readHeaderTimeout bounds the HTTP upgrade request only. Upgraded
// connections carry no deadline.
const readHeaderTimeout = 10 * time.Second

// Config holds the server configuration
type Config struct {
	Host     string
	Port     int
	CertFile string // Bundle filename, resolved against BaseDir (empty = plaintext)
	BaseDir  string // Directory holding CertFile (empty = executable's directory)
}

// Addr returns the host:port the server binds
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Server accepts WebSocket connections and echoes every message back.
// Connections share nothing but the read-only TLS configuration.
type Server struct {
	config    Config
	tlsConfig *tls.Config
	upgrader  websocket.Upgrader
	listener  net.Listener
}

// New validates the configuration and builds the TLS configuration.
// It does not touch the network.
func New(config Config) (*Server, error) {
	if config.Port < 0 || config.Port > 65535 {
		return nil, &ConfigurationError{
			Field: "port",
			Err:   fmt.Errorf("%d is outside 0-65535", config.Port),
		}
	}

	if config.CertFile != "" && config.BaseDir == "" {
		baseDir, err := ResolveBaseDir()
		if err != nil {
			return nil, &ConfigurationError{Field: "base_dir", Err: err}
		}
		config.BaseDir = baseDir
	}

	tlsConfig, err := NewTLSConfig(config.BaseDir, config.CertFile)
	if err != nil {
		return nil, err
	}

	return &Server{
		config:    config,
		tlsConfig: tlsConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}, nil
}

// Secure reports whether the server terminates TLS
func (s *Server) Secure() bool {
	return s.tlsConfig != nil
}

// Scheme returns "wss" in TLS mode and "ws" otherwise
func (s *Server) Scheme() string {
	if s.Secure() {
		return "wss"
	}
	return "ws"
}

// Addr returns the bound address, or nil before Listen
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// URL returns the WebSocket URL clients should dial
func (s *Server) URL() string {
	addr := s.config.Addr()
	if a := s.Addr(); a != nil {
		addr = a.String()
	}
	return fmt.Sprintf("%s://%s/", s.Scheme(), addr)
}

// Listen binds the listening socket. In TLS mode the socket only accepts
// TLS handshakes.
func (s *Server) Listen() error {
	addr := s.config.Addr()

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return &BindError{Addr: addr, Err: err}
	}

	if s.tlsConfig != nil {
		listener = tls.NewListener(listener, s.tlsConfig)
	}
	s.listener = listener

	logging.Info("Server listening for connections",
		zap.String("addr", listener.Addr().String()),
		zap.String("scheme", s.Scheme()),
		zap.Any("tls_info", GetTLSInfo(s.tlsConfig)),
	)

	return nil
}

// Serve accepts connections until ctx is cancelled. Cancellation closes the
// listener; connections that were already upgraded end on their own.
func (s *Server) Serve(ctx context.Context) error {
	if s.listener == nil {
		return errors.New("server: Serve called before Listen")
	}

	httpServer := &http.Server{
		Handler:           s.Handler(),
		ErrorLog:          logging.StdLogger(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- httpServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		logging.Info("Shutdown requested, closing listener")
		_ = httpServer.Close()
		<-errChan
		return nil
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve failed: %w", err)
	}
}

// Start binds and serves, blocking until ctx is cancelled or serving fails
func (s *Server) Start(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve(ctx)
}

// Handler returns the HTTP handler that upgrades every request, whatever
// its path or query, and runs the echo loop on the upgraded connection.
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(s.handleUpgrade)
}

func (s *Server) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	remoteAddr := r.RemoteAddr

	logging.LogConnection(remoteAddr, "connection_accepted")

	if r.TLS != nil {
		logging.LogTLSHandshake(remoteAddr, r.TLS.Version, r.TLS.CipherSuite, r.TLS.ServerName)
	}

	logging.Debug("WebSocket upgrade request details",
		zap.String("remote_addr", remoteAddr),
		zap.String("path", r.URL.Path),
		zap.String("origin", r.Header.Get("Origin")),
		zap.Strings("subprotocols", websocket.Subprotocols(r)),
		zap.String("user_agent", r.UserAgent()),
	)

	// Pick the client's first subprotocol, whatever it is.
	upgrader := s.upgrader
	upgrader.Subprotocols = websocket.Subprotocols(r)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error response.
		logging.Warn("WebSocket upgrade failed",
			zap.Error(&ConnectionError{RemoteAddr: remoteAddr, Op: "upgrade", Err: err}),
		)
		return
	}

	if err := HandleEchoConnection(conn, remoteAddr); err != nil {
		logging.Warn("WebSocket connection error",
			zap.String("remote_addr", remoteAddr),
			zap.Error(err),
		)
	}
}
