package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pfassina/colorcraft/internal/palette"
	"github.com/pfassina/colorcraft/internal/ssh"
)

func newServeCmd(rt *runtime) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the palette studio over SSH",
		Long: "Start an SSH server; every connection gets its own studio session backed by the shared palette store.\n\n" +
			"Sessions do not see each other's changes, and each save rewrites the whole custom palette set: " +
			"the last session to save wins, which can drop palettes created by other live sessions.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("listen") {
				rt.cfg.Listen = listen
			}

			builtins, err := palette.LoadBuiltin()
			if err != nil {
				return err
			}

			srv, err := ssh.New(rt.cfg, builtins, rt.adapter(), rt.logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			rt.logger.Info().Str("listen", rt.cfg.Listen).Msg("serving colorcraft over ssh")
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", ":2222", "ssh listen address")
	return cmd
}
