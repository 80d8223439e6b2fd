package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubegen/internal/tables"
)

func newListCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list [cublets2|cublets3|faces2|faces3]",
		Short: "List enumerated groupings with their identifiers",
		Long: `List the groupings of one enumeration, or of all four, in identifier
order.

Examples:
  cubegen list
  cubegen list faces3`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := tables.Kinds
			if len(args) == 1 {
				k, err := tables.ParseKind(args[0])
				if err != nil {
					return err
				}
				kinds = []tables.Kind{k}
			}

			enums := tables.Build()
			out := cmd.OutOrStdout()
			for i, k := range kinds {
				if i > 0 {
					fmt.Fprintln(out)
				}
				entries := enums.Entries(k)
				fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s (%d)", k, len(entries))))
				for id, labels := range entries {
					fmt.Fprintf(out, "  %s  %s %s\n",
						idStyle.Render(fmt.Sprintf("%2d", id)),
						labelNames(k, labels),
						statusStyle.Render(fmt.Sprint(labels)))
				}
			}
			root.log.WithField("enumerations", len(kinds)).Debug("listed groupings")
			return nil
		},
	}
}
