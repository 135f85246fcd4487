package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClearCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every stored custom palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, adapter, err := rt.openStudio(rt.logger)
			if err != nil {
				return err
			}
			if !adapter.Enabled() {
				return fmt.Errorf("palette store %s is unavailable", rt.cfg.StorePath)
			}

			n := len(st.Catalog().Custom())
			adapter.Clear()
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "removed %d custom palettes\n", n)
			return err
		},
	}
}
