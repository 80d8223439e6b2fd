package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubegen/internal/tables"
)

func newCheckCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the enumerations and lookup tables",
		Long: `Rebuild the enumerations and verify their sizes, ordering, uniqueness and
lookup round-trips, then verify every cell of the four lookup tables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			enums := tables.Build()

			if err := enums.Validate(); err != nil {
				fmt.Fprintln(out, errorStyle.Render("FAIL enumerations"))
				return err
			}
			for _, k := range tables.Kinds {
				fmt.Fprintf(out, "%s %-9s %2d groupings\n", okStyle.Render("ok"), k, len(enums.Entries(k)))
			}

			for _, t := range enums.Tables() {
				if err := enums.ValidateTable(t); err != nil {
					fmt.Fprintln(out, errorStyle.Render("FAIL "+t.Name))
					return err
				}
				fmt.Fprintf(out, "%s %-11s %2d ids in %3d/%d cells\n",
					okStyle.Render("ok"), t.Name, t.Distinct(), t.Valid(), len(t.Values))
			}

			root.log.Debug("all checks passed")
			return nil
		},
	}
}
