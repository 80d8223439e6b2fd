package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubegen/internal/cube"
)

func TestTablesOrderAndShape(t *testing.T) {
	ts := Build().Tables()
	require.Len(t, ts, 4)

	want := []struct {
		name  string
		rank  int
		cells int
	}{
		{Cublets3Ids, 3, 216},
		{Cublets2Ids, 2, 36},
		{Faces3Ids, 3, 216},
		{Faces2Ids, 2, 36},
	}
	for i, w := range want {
		assert.Equal(t, w.name, ts[i].Name)
		assert.Equal(t, w.rank, ts[i].Rank)
		assert.Len(t, ts[i].Values, w.cells)
	}
}

func TestTableIdentifierCounts(t *testing.T) {
	ts := Build().Tables()

	tests := []struct {
		name     string
		distinct int
		valid    int
	}{
		// Every permutation of a corner maps to the same identifier.
		{Cublets3Ids, 8, 48},
		{Cublets2Ids, 12, 24},
		{Faces3Ids, 24, 48},
		{Faces2Ids, 24, 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := Lookup(ts, tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.distinct, tbl.Distinct())
			assert.Equal(t, tt.valid, tbl.Valid())
			assert.Equal(t, len(tbl.Values)-tt.valid, countNotFound(tbl))
		})
	}
}

func TestTableAt(t *testing.T) {
	e := Build()
	c3 := e.Table(KindCublets3)
	f2 := e.Table(KindFaces2)

	assert.Equal(t, 0, c3.At(0, 2, 4))
	assert.Equal(t, 0, c3.At(4, 0, 2))
	assert.Equal(t, 7, c3.At(5, 3, 1))
	assert.Equal(t, NotFound, c3.At(0, 0, 2))

	assert.Equal(t, 8, f2.At(2, 0))
	assert.Equal(t, 0, f2.At(0, 2))
	assert.Equal(t, NotFound, f2.At(4, 5))

	assert.Panics(t, func() { f2.At(0, 2, 4) })
}

func TestTableMatchesLookups(t *testing.T) {
	e := Build()
	for _, tbl := range e.Tables() {
		require.NoError(t, e.ValidateTable(tbl), tbl.Name)
	}
}

func TestValidateTableDetectsCorruption(t *testing.T) {
	e := Build()
	tbl := e.Table(KindCublets2)
	tbl.Values[0] = 3

	assert.ErrorIs(t, e.ValidateTable(tbl), ErrInconsistent)
}

func TestRowsVisitsInLabelOrder(t *testing.T) {
	tbl := Build().Table(KindFaces2)

	var seen [][]cube.Label
	tbl.Rows(func(labels []cube.Label, _ int) {
		seen = append(seen, append([]cube.Label(nil), labels...))
	})

	require.Len(t, seen, 36)
	assert.Equal(t, []cube.Label{0, 0}, seen[0])
	assert.Equal(t, []cube.Label{0, 5}, seen[5])
	assert.Equal(t, []cube.Label{1, 0}, seen[6])
	assert.Equal(t, []cube.Label{5, 5}, seen[35])
}

func TestLookupUnknown(t *testing.T) {
	ts := Build().Tables()

	tbl, err := Lookup(ts, "faces2")
	require.NoError(t, err)
	assert.Equal(t, Faces2Ids, tbl.Name)

	_, err = Lookup(ts, "Edges")
	assert.ErrorIs(t, err, ErrUnknownTable)
}

func countNotFound(t *Table) int {
	n := 0
	for _, v := range t.Values {
		if v == NotFound {
			n++
		}
	}
	return n
}
