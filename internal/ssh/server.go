package ssh

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bts "github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
	"github.com/rs/zerolog"

	"github.com/pfassina/colorcraft/internal/config"
	"github.com/pfassina/colorcraft/internal/palette"
	"github.com/pfassina/colorcraft/internal/store"
)

// Server wraps a Wish SSH server.
type Server struct {
	server   *ssh.Server
	cfg      config.Config
	builtins []palette.Palette
	store    *store.Adapter
	logger   zerolog.Logger
}

// HostKeyPath is where the server's host key is generated on first run.
func HostKeyPath() string {
	return filepath.Join(config.DataDir(), "ssh_host_key")
}

// New creates a new SSH server. All sessions share adapter.
func New(cfg config.Config, builtins []palette.Palette, adapter *store.Adapter, logger zerolog.Logger) (*Server, error) {
	srv := &Server{
		cfg:      cfg,
		builtins: builtins,
		store:    adapter,
		logger:   logger,
	}

	s, err := wish.NewServer(
		wish.WithAddress(cfg.Listen),
		wish.WithHostKeyPath(HostKeyPath()),
		wish.WithMiddleware(
			bts.Middleware(srv.NewHandler()),
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(&srv.logger),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create ssh server: %w", err)
	}
	srv.server = s

	return srv, nil
}

// ListenAndServe starts the SSH server and blocks until ctx is done, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.cfg.Listen).Msg("ssh server listening")
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info().Msg("ssh server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	}
}

// Close stops the SSH server.
func (s *Server) Close() error {
	return s.server.Close()
}
