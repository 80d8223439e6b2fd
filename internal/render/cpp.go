package render

import (
	"io"
	"strconv"

	"github.com/SeamusWaldron/cubegen/internal/cube"
	"github.com/SeamusWaldron/cubegen/internal/tables"
)

// WriteCpp prints every table as a C++ constexpr initializer, each preceded
// by a blank line:
//
//	constexpr int Cublets2Ids = {{-1,-1,0,1,2,3},...,{3,7,9,11,-1,-1}};
//
// Tables of rank 3 break the line after each outermost group, so the
// separating comma opens the next line. The downstream build defines the
// face and color constants.
func WriteCpp(w io.Writer, ts []*tables.Table) error {
	ew := &errWriter{w: w}
	for _, t := range ts {
		ew.print("\n")
		ew.printf("constexpr int %s = {", t.Name)
		writeCppGroups(ew, t.Values, t.Rank, true)
		ew.print("};\n")
	}
	return ew.err
}

// writeCppGroups writes the comma-separated groups of one dimension without
// the enclosing braces.
func writeCppGroups(ew *errWriter, values []int, rank int, outermost bool) {
	if rank == 1 {
		for i, v := range values {
			if i > 0 {
				ew.print(",")
			}
			ew.print(strconv.Itoa(v))
		}
		return
	}

	stride := 1
	for i := 1; i < rank; i++ {
		stride *= cube.NumLabels
	}
	for off := 0; off < len(values); off += stride {
		if off > 0 {
			ew.print(",")
		}
		ew.print("{")
		writeCppGroups(ew, values[off:off+stride], rank-1, false)
		ew.print("}")
		if outermost && rank >= 3 {
			ew.print("\n")
		}
	}
}
