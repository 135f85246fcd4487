package ssh

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	bts "github.com/charmbracelet/wish/bubbletea"

	"github.com/pfassina/colorcraft/internal/app"
	"github.com/pfassina/colorcraft/internal/clipboard"
	"github.com/pfassina/colorcraft/internal/logging"
	"github.com/pfassina/colorcraft/internal/studio"
)

// NewHandler returns a Bubble Tea handler for SSH sessions. Every session
// gets its own studio over the shared store, and copies go to the client
// terminal via OSC 52.
func (s *Server) NewHandler() bts.Handler {
	return func(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
		logger, _ := logging.Session(s.logger)
		logger = logger.With().
			Str("user", sess.User()).
			Str("remote", sess.RemoteAddr().String()).
			Logger()

		st, err := studio.New(s.builtins, s.store, logger, studio.WithDarkMode(s.cfg.DarkMode))
		if err != nil {
			// Only an empty builtin set fails here.
			logger.Error().Err(err).Msg("create studio")
			_ = sess.Exit(1)
			return nil, nil
		}

		a := app.New(s.cfg, st, clipboard.OSC52{Out: sess}, s.store.Enabled(), logger)

		opts := []tea.ProgramOption{
			tea.WithAltScreen(),
		}
		opts = append(opts, bts.MakeOptions(sess)...)

		return &a, opts
	}
}
