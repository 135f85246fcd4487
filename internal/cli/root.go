// Package cli wires the colorcraft command tree.
package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pfassina/colorcraft/internal/app"
	"github.com/pfassina/colorcraft/internal/clipboard"
	"github.com/pfassina/colorcraft/internal/config"
	"github.com/pfassina/colorcraft/internal/logging"
	"github.com/pfassina/colorcraft/internal/palette"
	"github.com/pfassina/colorcraft/internal/store"
	"github.com/pfassina/colorcraft/internal/studio"
)

// runtime is the state shared by every command after flags are resolved.
type runtime struct {
	cfg      config.Config
	logger   zerolog.Logger
	closeLog func() error
	kv       store.KV
}

type rootFlags struct {
	store     string
	storePath string
	dark      bool
	watch     bool
	perPage   int
	logLevel  string
	logFile   string
}

// NewRootCmd returns the root command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	rt := &runtime{}
	var flags rootFlags
	defaults := config.Default()

	root := &cobra.Command{
		Use:           "colorcraft",
		Short:         "Author, preview and manage color palettes",
		Long:          "colorcraft is a terminal palette studio: browse builtin palettes, preview them on a mock interface, and create your own with optional dark variants.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.setup(cmd, flags)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return rt.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.runLocal()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.store, "store", defaults.Store, "palette store backend: sqlite|file|memory")
	pf.StringVar(&flags.storePath, "store-path", defaults.StorePath, "sqlite database file or file store directory")
	pf.BoolVar(&flags.dark, "dark", defaults.DarkMode, "start in dark mode")
	pf.BoolVar(&flags.watch, "watch", defaults.Watch, "reload custom palettes when another process changes the store")
	pf.IntVar(&flags.perPage, "per-page", defaults.PerPage, "palettes per selector page")
	pf.StringVar(&flags.logLevel, "log-level", defaults.LogLevel, "log level: debug|info|warn|error")
	pf.StringVar(&flags.logFile, "log-file", defaults.LogFile, `log file path, "-" for stderr`)

	root.AddCommand(newServeCmd(rt))
	root.AddCommand(newListCmd(rt))
	root.AddCommand(newExportCmd(rt))
	root.AddCommand(newDeleteCmd(rt))
	root.AddCommand(newClearCmd(rt))
	root.AddCommand(newConfigCmd(rt))

	return root
}

// setup merges config file and flags, then opens the log and the store.
// Flags override the file only when given explicitly.
func (rt *runtime) setup(cmd *cobra.Command, flags rootFlags) error {
	cfg := config.Default()
	if _, err := config.LoadFile(&cfg); err != nil {
		return fmt.Errorf("load config %s: %w", config.ConfigPath(), err)
	}

	fs := cmd.Flags()
	if fs.Changed("store") {
		cfg.Store = flags.store
	}
	if fs.Changed("store-path") {
		cfg.StorePath = config.ExpandHome(flags.storePath)
	}
	if fs.Changed("dark") {
		cfg.DarkMode = flags.dark
	}
	if fs.Changed("watch") {
		cfg.Watch = flags.watch
	}
	if fs.Changed("per-page") && flags.perPage > 0 {
		cfg.PerPage = flags.perPage
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if fs.Changed("log-file") {
		cfg.LogFile = config.ExpandHome(flags.logFile)
	}
	rt.cfg = cfg

	logger, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	rt.logger = logger
	rt.closeLog = closeLog

	// config init must work even when the store cannot be opened.
	if cmd.Annotations["store"] == "none" {
		return nil
	}

	kv, err := store.Open(store.Backend(cfg.Store), cfg.StorePath)
	if err != nil {
		// An unusable store degrades to memory instead of failing the command.
		logger.Warn().Err(err).Str("backend", cfg.Store).Str("path", cfg.StorePath).
			Msg("open store failed, custom palettes will not persist")
		kv = nil
	}
	rt.kv = kv
	return nil
}

func (rt *runtime) teardown() error {
	var firstErr error
	if rt.kv != nil {
		if err := store.Close(rt.kv); err != nil {
			firstErr = fmt.Errorf("close store: %w", err)
		}
	}
	if rt.closeLog != nil {
		if err := rt.closeLog(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (rt *runtime) adapter() *store.Adapter {
	return store.NewAdapter(rt.kv, rt.logger)
}

// openStudio loads a studio for one session or command.
func (rt *runtime) openStudio(logger zerolog.Logger) (*studio.Studio, *store.Adapter, error) {
	builtins, err := palette.LoadBuiltin()
	if err != nil {
		return nil, nil, err
	}
	adapter := rt.adapter()
	st, err := studio.New(builtins, adapter, logger, studio.WithDarkMode(rt.cfg.DarkMode))
	if err != nil {
		return nil, nil, err
	}
	return st, adapter, nil
}

func (rt *runtime) runLocal() error {
	// Ensure lipgloss/termenv uses truecolor so palette colors render
	// accurately instead of being approximated to the 256-color palette.
	if err := os.Setenv("COLORTERM", "truecolor"); err != nil {
		return fmt.Errorf("set COLORTERM: %w", err)
	}

	logger, _ := logging.Session(rt.logger)
	st, adapter, err := rt.openStudio(logger)
	if err != nil {
		return err
	}

	a := app.New(rt.cfg, st, clipboard.System{}, adapter.Enabled(), logger)
	p := tea.NewProgram(&a, tea.WithAltScreen())

	if rt.cfg.Watch && adapter.Enabled() {
		w, err := store.Watch(store.Backend(rt.cfg.Store), rt.cfg.StorePath, func() {
			p.Send(app.StoreChangedMsg{})
		})
		if err != nil {
			logger.Warn().Err(err).Msg("store watch disabled")
		} else {
			go w.Start()
			defer w.Stop()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
