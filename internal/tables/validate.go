package tables

import (
	"fmt"

	"github.com/SeamusWaldron/cubegen/internal/cube"
)

// Expected enumeration sizes: 12 edges, 8 corners, each edge in both orders,
// each corner with each of its 3 faces as primary.
var expectedCounts = map[Kind]int{
	KindCublets2: 12,
	KindCublets3: 8,
	KindFaces2:   24,
	KindFaces3:   24,
}

// ExpectedCount returns the number of groupings enumeration k must hold.
func ExpectedCount(k Kind) int {
	return expectedCounts[k]
}

// Validate checks every enumeration against its invariants: size, label
// ordering, pairwise adjacency, uniqueness, and that looking up an entry
// returns its own index.
func (e *Enumerations) Validate() error {
	for _, k := range Kinds {
		entries := e.Entries(k)
		if len(entries) != expectedCounts[k] {
			return fmt.Errorf("%w: %s has %d entries, want %d", ErrInconsistent, k, len(entries), expectedCounts[k])
		}

		seen := make(map[string]bool, len(entries))
		for i, labels := range entries {
			key := fmt.Sprint(labels)
			if seen[key] {
				return fmt.Errorf("%w: %s entry %d %v is duplicated", ErrInconsistent, k, i, labels)
			}
			seen[key] = true

			if !adjacentAll(labels) {
				return fmt.Errorf("%w: %s entry %d %v contains non-adjacent labels", ErrInconsistent, k, i, labels)
			}
			if !ordered(k, labels) {
				return fmt.Errorf("%w: %s entry %d %v is not in canonical order", ErrInconsistent, k, i, labels)
			}
			for _, perm := range equivalent(k, labels) {
				if got := e.ID(k, perm...); got != i {
					return fmt.Errorf("%w: %s lookup %v = %d, want %d", ErrInconsistent, k, perm, got, i)
				}
			}
		}
	}
	return nil
}

// ValidateTable checks that a materialised table uses every identifier of
// its enumeration, in exactly the cells its lookup accepts.
func (e *Enumerations) ValidateTable(t *Table) error {
	want := expectedCounts[t.Kind]
	if got := t.Distinct(); got != want {
		return fmt.Errorf("%w: %s has %d distinct identifiers, want %d", ErrInconsistent, t.Name, got, want)
	}
	// Sorted tables accept every permutation of an entry.
	switch t.Kind {
	case KindCublets2:
		want *= 2
	case KindCublets3:
		want *= 6
	case KindFaces3:
		want *= 2
	}
	if got := t.Valid(); got != want {
		return fmt.Errorf("%w: %s has %d identified cells, want %d", ErrInconsistent, t.Name, got, want)
	}

	var err error
	t.Rows(func(labels []cube.Label, value int) {
		if err != nil {
			return
		}
		if id := e.ID(t.Kind, labels...); id != value {
			err = fmt.Errorf("%w: %s%v = %d, lookup gives %d", ErrInconsistent, t.Name, labels, value, id)
		}
	})
	return err
}

func adjacentAll(labels []cube.Label) bool {
	for i := range labels {
		for j := i + 1; j < len(labels); j++ {
			if !cube.SharesEdge(labels[i], labels[j]) {
				return false
			}
		}
	}
	return true
}

func ordered(k Kind, labels []cube.Label) bool {
	start := 1
	if k == KindFaces2 {
		return true
	}
	if k == KindFaces3 {
		start = 2
	}
	for i := start; i < len(labels); i++ {
		if labels[i-1] >= labels[i] {
			return false
		}
	}
	return true
}

// equivalent returns every label order the lookup for k must map to the
// same identifier.
func equivalent(k Kind, labels []cube.Label) [][]cube.Label {
	switch k {
	case KindCublets2:
		a, b := labels[0], labels[1]
		return [][]cube.Label{{a, b}, {b, a}}
	case KindCublets3:
		a, b, c := labels[0], labels[1], labels[2]
		return [][]cube.Label{
			{a, b, c}, {a, c, b},
			{b, a, c}, {b, c, a},
			{c, a, b}, {c, b, a},
		}
	case KindFaces3:
		a, b, c := labels[0], labels[1], labels[2]
		return [][]cube.Label{{a, b, c}, {a, c, b}}
	default:
		return [][]cube.Label{labels}
	}
}
