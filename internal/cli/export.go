package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pfassina/colorcraft/internal/palette"
	"github.com/pfassina/colorcraft/internal/selection"
)

func newExportCmd(rt *runtime) *cobra.Command {
	var (
		dark   bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Print a palette as CSS or JSON",
		Long:  "Print a palette's colors. The id may name a palette or its dark variant; --dark picks the variant when one exists.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := rt.openStudio(rt.logger)
			if err != nil {
				return err
			}

			id := args[0]
			if _, ok := st.Catalog().Owner(id); !ok {
				return fmt.Errorf("palette %q not found", id)
			}
			st.ToggleDarkMode(dark)
			st.SelectPalette(id)
			p := st.Active()
			if !dark {
				p = selection.ResolveActive(st.Catalog(), id)
			}

			out := cmd.OutOrStdout()
			switch format {
			case "css":
				_, err = fmt.Fprintf(out, "/* %s (%s) */\n%s", p.Name, p.ID, p.CSS())
			case "json":
				err = writeJSON(out, p)
			default:
				return fmt.Errorf("unknown format %q (want css or json)", format)
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&dark, "dark", false, "export the dark variant when one exists")
	cmd.Flags().StringVar(&format, "format", "css", "output format: css|json")
	return cmd
}

func writeJSON(out io.Writer, p palette.Palette) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode palette: %w", err)
	}
	return nil
}
