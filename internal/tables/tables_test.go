package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubegen/internal/cube"
)

func TestBuildCounts(t *testing.T) {
	e := Build()

	assert.Len(t, e.Cublets2, 12)
	assert.Len(t, e.Cublets3, 8)
	assert.Len(t, e.Faces2, 24)
	assert.Len(t, e.Faces3, 24)
}

func TestBuildOrder(t *testing.T) {
	e := Build()

	assert.Equal(t, []Pair{
		{0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 3}, {1, 4}, {1, 5},
		{2, 4}, {2, 5}, {3, 4}, {3, 5},
	}, e.Cublets2)

	assert.Equal(t, []Triple{
		{0, 2, 4}, {0, 2, 5}, {0, 3, 4}, {0, 3, 5},
		{1, 2, 4}, {1, 2, 5}, {1, 3, 4}, {1, 3, 5},
	}, e.Cublets3)

	assert.Equal(t, Pair{0, 2}, e.Faces2[0])
	assert.Equal(t, Pair{2, 0}, e.Faces2[8])
	assert.Equal(t, Pair{5, 3}, e.Faces2[23])

	assert.Equal(t, Triple{0, 2, 4}, e.Faces3[0])
	assert.Equal(t, Triple{2, 0, 4}, e.Faces3[8])
	assert.Equal(t, Triple{5, 1, 3}, e.Faces3[23])
}

func TestBuildIsDeterministic(t *testing.T) {
	assert.Equal(t, Build(), Build())
}

func TestCubletEntriesSorted(t *testing.T) {
	e := Build()
	for _, p := range e.Cublets2 {
		assert.Less(t, p[0], p[1], "pair %v", p)
	}
	for _, tr := range e.Cublets3 {
		assert.Less(t, tr[0], tr[1], "triple %v", tr)
		assert.Less(t, tr[1], tr[2], "triple %v", tr)
	}
	for _, tr := range e.Faces3 {
		assert.Less(t, tr[1], tr[2], "face triple %v", tr)
	}
}

func TestCublet2IDOrderIndependent(t *testing.T) {
	e := Build()
	for a := cube.Label(0); a < cube.NumLabels; a++ {
		for b := cube.Label(0); b < cube.NumLabels; b++ {
			assert.Equal(t, e.Cublet2ID(a, b), e.Cublet2ID(b, a), "(%d,%d)", a, b)
		}
	}
}

func TestFace2IDOrdered(t *testing.T) {
	e := Build()
	for a := cube.Label(0); a < cube.NumLabels; a++ {
		for b := a + 1; b < cube.NumLabels; b++ {
			ab, ba := e.Face2ID(a, b), e.Face2ID(b, a)
			if !cube.SharesEdge(a, b) {
				assert.Equal(t, NotFound, ab)
				assert.Equal(t, NotFound, ba)
				continue
			}
			assert.GreaterOrEqual(t, ab, 0)
			assert.GreaterOrEqual(t, ba, 0)
			assert.NotEqual(t, ab, ba, "(%d,%d)", a, b)
		}
	}
}

func TestFace3IDPrimaryFaceMatters(t *testing.T) {
	e := Build()
	front, left, top := cube.Front.Label(), cube.Left.Label(), cube.Top.Label()

	id := e.Face3ID(front, left, top)
	require.NotEqual(t, NotFound, id)
	assert.Equal(t, id, e.Face3ID(front, top, left))
	assert.NotEqual(t, id, e.Face3ID(left, front, top))
	assert.NotEqual(t, id, e.Face3ID(top, front, left))
}

func TestTripleLookupsRejectInvalid(t *testing.T) {
	e := Build()
	for a := cube.Label(0); a < cube.NumLabels; a++ {
		for b := cube.Label(0); b < cube.NumLabels; b++ {
			for c := cube.Label(0); c < cube.NumLabels; c++ {
				valid := cube.SharesEdge(a, b) && cube.SharesEdge(a, c) && cube.SharesEdge(b, c)
				if valid {
					assert.NotEqual(t, NotFound, e.Cublet3ID(a, b, c))
					assert.NotEqual(t, NotFound, e.Face3ID(a, b, c))
					continue
				}
				assert.Equal(t, NotFound, e.Cublet3ID(a, b, c), "(%d,%d,%d)", a, b, c)
				assert.Equal(t, NotFound, e.Face3ID(a, b, c), "(%d,%d,%d)", a, b, c)
			}
		}
	}
}

func TestPairLookupsRejectSelfAndOpposite(t *testing.T) {
	e := Build()
	for l := cube.Label(0); l < cube.NumLabels; l++ {
		assert.Equal(t, NotFound, e.Cublet2ID(l, l))
		assert.Equal(t, NotFound, e.Face2ID(l, l))
		assert.Equal(t, NotFound, e.Cublet2ID(l, cube.Opposite(l)))
		assert.Equal(t, NotFound, e.Face2ID(l, cube.Opposite(l)))
	}
}

func TestRoundTrip(t *testing.T) {
	e := Build()
	for i, p := range e.Cublets2 {
		assert.Equal(t, i, e.Cublet2ID(p[0], p[1]))
		assert.Equal(t, i, e.Cublet2ID(p[1], p[0]))
	}
	for i, tr := range e.Cublets3 {
		assert.Equal(t, i, e.Cublet3ID(tr[0], tr[1], tr[2]))
		assert.Equal(t, i, e.Cublet3ID(tr[2], tr[0], tr[1]))
		assert.Equal(t, i, e.Cublet3ID(tr[1], tr[2], tr[0]))
	}
	for i, p := range e.Faces2 {
		assert.Equal(t, i, e.Face2ID(p[0], p[1]))
	}
	for i, tr := range e.Faces3 {
		assert.Equal(t, i, e.Face3ID(tr[0], tr[1], tr[2]))
		assert.Equal(t, i, e.Face3ID(tr[0], tr[2], tr[1]))
	}
}

func TestIDArityMismatch(t *testing.T) {
	e := Build()
	assert.Equal(t, NotFound, e.ID(KindCublets2, 0, 2, 4))
	assert.Equal(t, NotFound, e.ID(KindFaces3, 0, 2))
	assert.Equal(t, 0, e.ID(KindCublets3, 4, 2, 0))
}

func TestValidate(t *testing.T) {
	require.NoError(t, Build().Validate())
}

func TestValidateDetectsCorruption(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(e *Enumerations)
	}{
		{"missing edge", func(e *Enumerations) { e.Cublets2 = e.Cublets2[1:] }},
		{"unsorted corner", func(e *Enumerations) { e.Cublets3[0] = Triple{2, 0, 4} }},
		{"duplicate face pair", func(e *Enumerations) { e.Faces2[1] = e.Faces2[0] }},
		{"opposite faces", func(e *Enumerations) { e.Faces3[0] = Triple{0, 1, 2} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Build()
			tt.corrupt(e)
			assert.ErrorIs(t, e.Validate(), ErrInconsistent)
		})
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("faces3")
	require.NoError(t, err)
	assert.Equal(t, KindFaces3, k)
	assert.True(t, k.IsFace())

	_, err = ParseKind("edges")
	assert.ErrorIs(t, err, ErrUnknownEnumeration)
}
