package greeter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// State of a Server
type State int

const (
	Stopped State = iota
	Listening
)

func (s State) String() string {
	if s == Listening {
		return "listening"
	}
	return "stopped"
}

// shutdownGrace bounds how long in-flight requests get once shutdown begins
const shutdownGrace = 2 * time.Second

// Server owns the listener and the greeting handler for the process lifetime
type Server struct {
	opt Options
	srv *http.Server

	mu       sync.Mutex
	state    State
	listener net.Listener
}

// New returns a stopped Server for opt
func New(opt Options) *Server {
	return &Server{
		opt: opt,
		srv: &http.Server{Handler: NewHandler()},
	}
}

// Listen binds the TCP listener. Failures are returned as *BindError.
func (s *Server) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Listening {
		return nil
	}

	addr := s.opt.Addr()
	if s.opt.Port < 0 || s.opt.Port > 65535 {
		return newBindError(addr, s.opt.Port, fmt.Errorf("%d: %w", s.opt.Port, ErrInvalidPort))
	}

	l, err := net.Listen("tcp", addr)
	if err != nil {
		return newBindError(addr, s.opt.Port, err)
	}
	s.listener = l
	s.state = Listening
	log.Info().Msgf("Listening for HTTP requests on %s", l.Addr())
	return nil
}

// Serve answers requests on the bound listener until ctx is done, then shuts
// the server down and returns nil.
func (s *Server) Serve(ctx context.Context) error {
	s.mu.Lock()
	l := s.listener
	s.mu.Unlock()
	if l == nil {
		return errors.New("server is not listening")
	}

	errc := make(chan error, 1)
	go func() {
		errc <- s.srv.Serve(l)
	}()

	select {
	case err := <-errc:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info().Msg("Shutting down HTTP server")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := s.srv.Shutdown(sctx); err != nil {
			log.Warn().Err(err).Msg("HTTP server shutdown")
		}
		<-errc
		return nil
	}
}

// Start binds and serves, blocking until ctx is done
func (s *Server) Start(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve(ctx)
}

// Addr returns the bound address, or the configured one before Listen
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.opt.Addr()
}

// State returns the current state
func (s *Server) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
