package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/SeamusWaldron/cubegen/internal/cube"
	"github.com/SeamusWaldron/cubegen/internal/tables"
)

// TableJSON is the JSON form of one lookup table.
type TableJSON struct {
	Name        string `json:"name"`
	Enumeration string `json:"enumeration"`
	Dims        []int  `json:"dims"`
	Values      any    `json:"values"`
}

// WriteJSON prints the tables as an indented JSON array with nested value
// arrays.
func WriteJSON(w io.Writer, ts []*tables.Table) error {
	out := make([]TableJSON, len(ts))
	for i, t := range ts {
		out[i] = TableJSON{
			Name:        t.Name,
			Enumeration: string(t.Kind),
			Dims:        t.Dims(),
			Values:      nest(t.Values, t.Rank),
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	return nil
}

func nest(values []int, rank int) any {
	if rank == 1 {
		return values
	}
	stride := len(values) / cube.NumLabels
	groups := make([]any, 0, cube.NumLabels)
	for off := 0; off < len(values); off += stride {
		groups = append(groups, nest(values[off:off+stride], rank-1))
	}
	return groups
}
