package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pfassina/colorcraft/internal/catalog"
	"github.com/pfassina/colorcraft/internal/studio"
)

func newDeleteCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a custom palette",
		Long:  "Delete a custom palette together with its dark variant. Builtin palettes cannot be deleted.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := rt.openStudio(rt.logger)
			if err != nil {
				return err
			}

			owner, ok := st.Catalog().Owner(args[0])
			if !ok {
				return fmt.Errorf("palette %q not found", args[0])
			}
			st.SelectPalette(owner.ID)
			if err := st.DeletePalette(); err != nil {
				switch {
				case errors.Is(err, studio.ErrBuiltin):
					return fmt.Errorf("%s is a builtin palette", owner.ID)
				case errors.Is(err, catalog.ErrLastRecord):
					return fmt.Errorf("%s is the last palette", owner.ID)
				}
				return fmt.Errorf("delete %s: %w", owner.ID, err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", owner.ID)
			return err
		},
	}
}
