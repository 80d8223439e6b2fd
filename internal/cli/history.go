package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubegen/internal/storage"
)

func newHistoryCmd(root *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived generations",
		Long:  `List generations stored by 'cubegen export', newest first.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := root.loadConfig(cmd)
			if err != nil {
				return err
			}

			db, err := openDB(v)
			if err != nil {
				return err
			}
			defer db.Close()

			gs, err := storage.NewGenerationRepository(db).List(limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(gs) == 0 {
				fmt.Fprintln(out, "No generations archived. Create one with: cubegen export")
				return nil
			}

			fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Generations in %s", db.Path())))
			for _, g := range gs {
				appVersion := "-"
				if g.AppVersion != nil {
					appVersion = *g.AppVersion
				}
				fmt.Fprintf(out, "  %s  %s  %s  %s\n",
					idStyle.Render(g.GenerationID),
					g.CreatedAt.Local().Format(time.RFC3339),
					appVersion,
					statusStyle.Render(shortSum(g.Checksum)))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of generations to show")
	addDBFlag(cmd)
	return cmd
}

func shortSum(s string) string {
	if len(s) > 12 {
		return s[:12]
	}
	return s
}
