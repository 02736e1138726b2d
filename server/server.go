package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-kyugo/usersvc/config"
	"github.com/go-kyugo/usersvc/logger"
)

// Options configures the created server.
type Options struct {
	// Config carries the application configuration. Address and timeouts
	// are taken from Config.Server; nil means config.Default().
	Config  *config.Config
	Handler http.Handler
	// DefaultMiddlewares wrap Handler in order, the first being outermost.
	DefaultMiddlewares []func(http.Handler) http.Handler
	Logger             *logger.Logger
}

type Server struct {
	srv    *http.Server
	logger *logger.Logger
	cfg    config.Config
	ln     net.Listener
}

func New(opts Options) (*Server, error) {
	if opts.Handler == nil {
		return nil, errors.New("server: nil handler")
	}
	c := config.Default()
	if opts.Config != nil {
		c = *opts.Config
	}
	l := opts.Logger
	if l == nil {
		l = logger.Std()
	}

	h := opts.Handler
	for i := len(opts.DefaultMiddlewares) - 1; i >= 0; i-- {
		h = opts.DefaultMiddlewares[i](h)
	}

	srv := &http.Server{
		Addr:         c.Server.Addr(),
		Handler:      h,
		ReadTimeout:  time.Duration(c.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(c.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(c.Server.IdleTimeoutSeconds) * time.Second,
	}
	return &Server{srv: srv, logger: l, cfg: c}, nil
}

// Listen binds the configured address. It is split from Serve so a bind
// failure surfaces before anything is announced as running.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listen failed: %w", err)
	}
	s.ln = ln
	return nil
}

// Addr returns the bound address once Listen succeeded, else the configured one.
func (s *Server) Addr() string {
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.srv.Addr
}

// Serve blocks serving requests on the bound listener.
func (s *Server) Serve() error {
	if s.ln == nil {
		return errors.New("server: Serve called before Listen")
	}
	port := s.cfg.Server.Port
	if tcp, ok := s.ln.Addr().(*net.TCPAddr); ok {
		port = tcp.Port
	}
	s.logger.Info(fmt.Sprintf("Server running on http://localhost:%d", port), logger.Fields{
		"addr": s.Addr(),
	})
	if err := s.srv.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve failed: %w", err)
	}
	return nil
}

// Start binds and serves; it returns only on failure or after Shutdown.
func (s *Server) Start() error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve()
}

// Handler returns the fully wrapped handler the server serves.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
