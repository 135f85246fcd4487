package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newListCmd(rt *runtime) *cobra.Command {
	var customOnly bool

	cmd := &cobra.Command{
		Use:   "list [query]",
		Short: "List palettes",
		Long:  "List builtin and custom palettes. An optional query filters by name or description.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := rt.openStudio(rt.logger)
			if err != nil {
				return err
			}

			query := ""
			if len(args) == 1 {
				query = args[0]
			}

			rows := [][]string{}
			for _, p := range st.Catalog().Search(query) {
				if customOnly && !p.IsCustom() {
					continue
				}
				rows = append(rows, []string{
					p.ID,
					p.Name,
					formatYesNo(p.HasDark()),
					string(p.Origin),
				})
			}

			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				_, err := fmt.Fprintln(out, "no palettes match")
				return err
			}
			if err := writeTable(out, []string{"ID", "NAME", "DARK", "ORIGIN"}, rows); err != nil {
				return fmt.Errorf("write table: %w", err)
			}
			if query != "" {
				_, err = fmt.Fprintf(out, "%d palettes match %q\n", len(rows), strings.TrimSpace(query))
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&customOnly, "custom", false, "only list custom palettes")
	return cmd
}
