package render

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strconv"
	"strings"

	"github.com/SeamusWaldron/cubegen/internal/cube"
	"github.com/SeamusWaldron/cubegen/internal/tables"
)

var goDocs = map[tables.Kind]string{
	tables.KindCublets3: "maps three colors, in any order, to a corner identifier.",
	tables.KindCublets2: "maps two colors, in any order, to an edge identifier.",
	tables.KindFaces3:   "maps a primary face and its two neighbours, in any order, to a corner identifier.",
	tables.KindFaces2:   "maps an ordered pair of faces to an identifier.",
}

// WriteGo prints the tables as a gofmt'd Go source file declaring one array
// variable per table.
func WriteGo(w io.Writer, ts []*tables.Table, opts Options) error {
	pkg := opts.Package
	if pkg == "" {
		pkg = DefaultPackage
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by cubegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	buf.WriteString("// NotFound marks label combinations that never meet at a cube piece.\n")
	fmt.Fprintf(&buf, "const NotFound = %d\n", tables.NotFound)

	for _, t := range ts {
		buf.WriteString("\n")
		if doc, ok := goDocs[t.Kind]; ok {
			fmt.Fprintf(&buf, "// %s %s\n", t.Name, doc)
		}
		fmt.Fprintf(&buf, "var %s = %s", t.Name, goArrayType(t.Rank))
		buf.WriteString(goLiteral(t.Values, t.Rank, true))
		buf.WriteString("\n")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting generated Go: %w", err)
	}
	if _, err := w.Write(src); err != nil {
		return fmt.Errorf("writing generated Go: %w", err)
	}
	return nil
}

func goArrayType(rank int) string {
	return strings.Repeat(fmt.Sprintf("[%d]", cube.NumLabels), rank) + "int"
}

func goLiteral(values []int, rank int, outermost bool) string {
	if rank == 1 {
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = strconv.Itoa(v)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}

	stride := len(values) / cube.NumLabels
	parts := make([]string, 0, cube.NumLabels)
	for off := 0; off < len(values); off += stride {
		parts = append(parts, goLiteral(values[off:off+stride], rank-1, false))
	}
	if outermost {
		return "{\n" + strings.Join(parts, ",\n") + ",\n}"
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
