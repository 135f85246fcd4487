package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pfassina/colorcraft/internal/config"
)

func newConfigCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the colorcraft config file",
	}
	cmd.AddCommand(newConfigInitCmd(rt))
	cmd.AddCommand(newConfigPathCmd())
	return cmd
}

func newConfigInitCmd(rt *runtime) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write the effective settings to the config file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"store": "none"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(config.ConfigPath()); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", config.ConfigPath())
			}
			path, err := config.SaveFile(rt.cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "path",
		Short:       "Print the config file location",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"store": "none"},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), config.ConfigPath())
			return err
		},
	}
}
