package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubegen/internal/cube"
	"github.com/SeamusWaldron/cubegen/internal/tables"
)

func newLookupCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup faces|colors <label> <label> [label]",
		Short: "Look up the identifier of a face or color grouping",
		Long: `Print the identifier a lookup table holds for two or three labels, or -1
when the labels never meet at a cube piece.

Labels are names (front, top, red), short names (f, u, r) or codes (0-5).
For faces the first label is the primary face; colors may come in any order.

Examples:
  cubegen lookup colors red green white
  cubegen lookup faces top front`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, labels, err := parseLookup(args[0], args[1:])
			if err != nil {
				return err
			}

			id := tables.Build().ID(k, labels...)
			root.log.WithField("enumeration", k).Debugf("lookup %v = %d", labels, id)
			fmt.Fprintf(cmd.OutOrStdout(), "%s[%s] = %d\n", tables.TableName(k), labelNames(k, labels), id)
			return nil
		},
	}
}

// parseLookup maps "faces"/"colors" and the label count to an enumeration.
func parseLookup(axis string, raw []string) (tables.Kind, []cube.Label, error) {
	var parse func(string) (cube.Label, error)
	var k tables.Kind

	switch axis {
	case "faces", "face":
		parse = func(s string) (cube.Label, error) {
			f, err := cube.ParseFace(s)
			return f.Label(), err
		}
		k = tables.KindFaces2
		if len(raw) == 3 {
			k = tables.KindFaces3
		}
	case "colors", "color":
		parse = func(s string) (cube.Label, error) {
			c, err := cube.ParseColor(s)
			return c.Label(), err
		}
		k = tables.KindCublets2
		if len(raw) == 3 {
			k = tables.KindCublets3
		}
	default:
		return "", nil, fmt.Errorf("unknown label kind %q (use faces or colors)", axis)
	}

	labels := make([]cube.Label, len(raw))
	for i, s := range raw {
		l, err := parse(s)
		if err != nil {
			return "", nil, err
		}
		labels[i] = l
	}
	return k, labels, nil
}
