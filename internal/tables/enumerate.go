// Package tables enumerates the face and color groupings that meet at a cube
// piece and assigns each grouping a stable identifier.
//
// A cublet is identified by the 2 (edge) or 3 (corner) labels meeting at it.
// Identifiers are positions in a deterministic enumeration, so the generated
// lookup tables are reproducible build artifacts.
package tables

import (
	"fmt"

	"github.com/SeamusWaldron/cubegen/internal/cube"
)

// Pair is a 2-label grouping.
type Pair [2]cube.Label

// Triple is a 3-label grouping.
type Triple [3]cube.Label

func (p Pair) String() string {
	return fmt.Sprintf("(%d,%d)", p[0], p[1])
}

func (t Triple) String() string {
	return fmt.Sprintf("(%d,%d,%d)", t[0], t[1], t[2])
}

// Enumerations holds the four grouping sequences. They are read-only once
// Build returns.
type Enumerations struct {
	// Cublets2 holds sorted adjacent color pairs (edge pieces).
	Cublets2 []Pair
	// Cublets3 holds sorted mutually adjacent color triples (corner pieces).
	Cublets3 []Triple
	// Faces2 holds ordered adjacent face pairs. Both (a,b) and (b,a) appear.
	Faces2 []Pair
	// Faces3 holds (primary, f2, f3) with f2 < f3 and all three adjacent.
	Faces3 []Triple
}

// Build enumerates all groupings.
func Build() *Enumerations {
	e := &Enumerations{}
	e.buildCublets()
	e.buildFaces()
	return e
}

// buildCublets scans c1 < c2 < c3 lexicographically. Each corner is appended
// while extending the edge it was grown from.
func (e *Enumerations) buildCublets() {
	for c1 := cube.Label(0); c1 < cube.NumLabels; c1++ {
		for c2 := c1 + 1; c2 < cube.NumLabels; c2++ {
			if !cube.SharesEdge(c1, c2) {
				continue
			}
			e.Cublets2 = append(e.Cublets2, Pair{c1, c2})

			for c3 := c2 + 1; c3 < cube.NumLabels; c3++ {
				if cube.SharesEdge(c2, c3) && cube.SharesEdge(c1, c3) {
					e.Cublets3 = append(e.Cublets3, Triple{c1, c2, c3})
				}
			}
		}
	}
}

// buildFaces scans f1 and f2 over every label, so each adjacent pair is
// recorded in both orders. The trailing two faces of a triple stay sorted.
func (e *Enumerations) buildFaces() {
	for f1 := cube.Label(0); f1 < cube.NumLabels; f1++ {
		for f2 := cube.Label(0); f2 < cube.NumLabels; f2++ {
			if !cube.SharesEdge(f1, f2) {
				continue
			}
			e.Faces2 = append(e.Faces2, Pair{f1, f2})

			for f3 := f2 + 1; f3 < cube.NumLabels; f3++ {
				if cube.SharesEdge(f2, f3) && cube.SharesEdge(f1, f3) {
					e.Faces3 = append(e.Faces3, Triple{f1, f2, f3})
				}
			}
		}
	}
}

// Kind names one of the four enumerations.
type Kind string

const (
	KindCublets2 Kind = "cublets2"
	KindCublets3 Kind = "cublets3"
	KindFaces2   Kind = "faces2"
	KindFaces3   Kind = "faces3"
)

// Kinds lists the enumerations in generation order.
var Kinds = []Kind{KindCublets3, KindCublets2, KindFaces3, KindFaces2}

// IsFace reports whether the enumeration groups faces rather than colors.
func (k Kind) IsFace() bool {
	return k == KindFaces2 || k == KindFaces3
}

// ParseKind validates an enumeration name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q (use cublets2, cublets3, faces2 or faces3)", ErrUnknownEnumeration, s)
}

// Entries returns the groupings of one enumeration as label slices, in
// identifier order.
func (e *Enumerations) Entries(k Kind) [][]cube.Label {
	var out [][]cube.Label
	switch k {
	case KindCublets2:
		for _, p := range e.Cublets2 {
			out = append(out, []cube.Label{p[0], p[1]})
		}
	case KindCublets3:
		for _, t := range e.Cublets3 {
			out = append(out, []cube.Label{t[0], t[1], t[2]})
		}
	case KindFaces2:
		for _, p := range e.Faces2 {
			out = append(out, []cube.Label{p[0], p[1]})
		}
	case KindFaces3:
		for _, t := range e.Faces3 {
			out = append(out, []cube.Label{t[0], t[1], t[2]})
		}
	}
	return out
}
