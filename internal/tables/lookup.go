package tables

import "github.com/SeamusWaldron/cubegen/internal/cube"

// NotFound is returned by the lookups when no grouping matches, i.e. the
// labels never meet at a real cube piece.
const NotFound = -1

// Cublet3ID returns the identifier of the corner with colors a, b and c in
// any order.
func (e *Enumerations) Cublet3ID(a, b, c cube.Label) int {
	a, b, c = sort3(a, b, c)
	for i, t := range e.Cublets3 {
		if t[0] == a && t[1] == b && t[2] == c {
			return i
		}
	}
	return NotFound
}

// Cublet2ID returns the identifier of the edge with colors a and b in any
// order.
func (e *Enumerations) Cublet2ID(a, b cube.Label) int {
	a, b = sort2(a, b)
	for i, p := range e.Cublets2 {
		if p[0] == a && p[1] == b {
			return i
		}
	}
	return NotFound
}

// Face3ID returns the identifier of the corner whose primary face is a.
// The primary face is significant; b and c may come in either order.
func (e *Enumerations) Face3ID(a, b, c cube.Label) int {
	b, c = sort2(b, c)
	for i, t := range e.Faces3 {
		if t[0] == a && t[1] == b && t[2] == c {
			return i
		}
	}
	return NotFound
}

// Face2ID returns the identifier of the ordered face pair (a, b).
// Face2ID(a, b) and Face2ID(b, a) are distinct identifiers.
func (e *Enumerations) Face2ID(a, b cube.Label) int {
	for i, p := range e.Faces2 {
		if p[0] == a && p[1] == b {
			return i
		}
	}
	return NotFound
}

// ID dispatches to the lookup for enumeration k. It returns NotFound when
// the number of labels does not match the enumeration.
func (e *Enumerations) ID(k Kind, labels ...cube.Label) int {
	switch {
	case k == KindCublets2 && len(labels) == 2:
		return e.Cublet2ID(labels[0], labels[1])
	case k == KindCublets3 && len(labels) == 3:
		return e.Cublet3ID(labels[0], labels[1], labels[2])
	case k == KindFaces2 && len(labels) == 2:
		return e.Face2ID(labels[0], labels[1])
	case k == KindFaces3 && len(labels) == 3:
		return e.Face3ID(labels[0], labels[1], labels[2])
	}
	return NotFound
}

func sort2(a, b cube.Label) (cube.Label, cube.Label) {
	if a > b {
		return b, a
	}
	return a, b
}

func sort3(a, b, c cube.Label) (cube.Label, cube.Label, cube.Label) {
	a, b = sort2(a, b)
	b, c = sort2(b, c)
	a, b = sort2(a, b)
	return a, b, c
}
