package tables

import (
	"fmt"

	"github.com/SeamusWaldron/cubegen/internal/cube"
)

// Table is a dense lookup table indexed by raw labels. Values are stored
// row-major with the first label as the outermost dimension.
type Table struct {
	Name   string
	Kind   Kind
	Rank   int
	Values []int
}

// Dims returns the extent of each dimension.
func (t *Table) Dims() []int {
	dims := make([]int, t.Rank)
	for i := range dims {
		dims[i] = cube.NumLabels
	}
	return dims
}

// At returns the cell addressed by labels.
func (t *Table) At(labels ...cube.Label) int {
	return t.Values[t.offset(labels)]
}

func (t *Table) offset(labels []cube.Label) int {
	if len(labels) != t.Rank {
		panic(fmt.Sprintf("tables: %s has rank %d, got %d labels", t.Name, t.Rank, len(labels)))
	}
	off := 0
	for _, l := range labels {
		off = off*cube.NumLabels + int(l)
	}
	return off
}

// Valid returns the number of cells holding an identifier.
func (t *Table) Valid() int {
	n := 0
	for _, v := range t.Values {
		if v != NotFound {
			n++
		}
	}
	return n
}

// Distinct returns the number of different identifiers in the table.
func (t *Table) Distinct() int {
	ids := make(map[int]struct{})
	for _, v := range t.Values {
		if v != NotFound {
			ids[v] = struct{}{}
		}
	}
	return len(ids)
}

// Rows calls fn for every cell in ascending label order. The labels slice is
// reused between calls.
func (t *Table) Rows(fn func(labels []cube.Label, value int)) {
	labels := make([]cube.Label, t.Rank)
	for i, v := range t.Values {
		rem := i
		for d := t.Rank - 1; d >= 0; d-- {
			labels[d] = cube.Label(rem % cube.NumLabels)
			rem /= cube.NumLabels
		}
		fn(labels, v)
	}
}

// Table names, as they appear in generated code.
const (
	Cublets3Ids = "Cublets3Ids"
	Cublets2Ids = "Cublets2Ids"
	Faces3Ids   = "Faces3Ids"
	Faces2Ids   = "Faces2Ids"
)

// TableName returns the generated table name for an enumeration.
func TableName(k Kind) string {
	switch k {
	case KindCublets3:
		return Cublets3Ids
	case KindCublets2:
		return Cublets2Ids
	case KindFaces3:
		return Faces3Ids
	case KindFaces2:
		return Faces2Ids
	default:
		return ""
	}
}

// Tables materialises every lookup table, in output order:
// Cublets3Ids, Cublets2Ids, Faces3Ids, Faces2Ids.
func (e *Enumerations) Tables() []*Table {
	out := make([]*Table, 0, len(Kinds))
	for _, k := range Kinds {
		out = append(out, e.Table(k))
	}
	return out
}

// Table materialises the lookup table for one enumeration.
func (e *Enumerations) Table(k Kind) *Table {
	rank := 2
	if k == KindCublets3 || k == KindFaces3 {
		rank = 3
	}

	size := 1
	for i := 0; i < rank; i++ {
		size *= cube.NumLabels
	}

	t := &Table{
		Name:   TableName(k),
		Kind:   k,
		Rank:   rank,
		Values: make([]int, size),
	}
	t.Rows(func(labels []cube.Label, _ int) {
		t.Values[t.offset(labels)] = e.ID(k, labels...)
	})
	return t
}

// Lookup finds a table by its generated name or enumeration name.
func Lookup(tables []*Table, name string) (*Table, error) {
	for _, t := range tables {
		if t.Name == name || string(t.Kind) == name {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTable, name)
}
