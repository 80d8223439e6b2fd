// Package cube provides the face and color labels of a 3x3 cube and the
// adjacency relation between them.
package cube

import (
	"fmt"
	"strconv"
	"strings"
)

// NumLabels is the number of faces (and colors) of a cube.
const NumLabels = 6

// Label is a face or color code in [0, NumLabels).
type Label int

// Valid reports whether l is in range.
func (l Label) Valid() bool {
	return l >= 0 && l < NumLabels
}

// Face represents a cube face.
type Face Label

const (
	Front  Face = 0
	Back   Face = 1
	Left   Face = 2
	Right  Face = 3
	Top    Face = 4
	Bottom Face = 5
)

// Label returns the raw code of the face.
func (f Face) Label() Label { return Label(f) }

func (f Face) String() string {
	switch f {
	case Front:
		return "FRONT"
	case Back:
		return "BACK"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	case Top:
		return "TOP"
	case Bottom:
		return "BOTTOM"
	default:
		return "?"
	}
}

// Short returns the one-letter move-notation name of the face
// (Top is U and Bottom is D, as in F B L R U D).
func (f Face) Short() string {
	switch f {
	case Top:
		return "U"
	case Bottom:
		return "D"
	default:
		return f.String()[:1]
	}
}

// Color represents a sticker color.
type Color Label

const (
	Red    Color = 0
	Orange Color = 1
	Yellow Color = 2
	Green  Color = 3
	Blue   Color = 4
	White  Color = 5
)

// Label returns the raw code of the color.
func (c Color) Label() Label { return Label(c) }

func (c Color) String() string {
	switch c {
	case Red:
		return "RED"
	case Orange:
		return "ORANGE"
	case Yellow:
		return "YELLOW"
	case Green:
		return "GREEN"
	case Blue:
		return "BLUE"
	case White:
		return "WHITE"
	default:
		return "?"
	}
}

// Short returns the initial of the color.
func (c Color) Short() string {
	return c.String()[:1]
}

// Faces lists every face in label order.
var Faces = [NumLabels]Face{Front, Back, Left, Right, Top, Bottom}

// Colors lists every color in label order.
var Colors = [NumLabels]Color{Red, Orange, Yellow, Green, Blue, White}

// Opposite returns the label of the face opposite l.
// Opposite pairs are (0,1), (2,3) and (4,5).
func Opposite(l Label) Label {
	return l ^ 1
}

// SharesEdge reports whether two faces meet along an edge. A face never
// shares an edge with itself or with its opposite.
func SharesEdge(a, b Label) bool {
	if a == b {
		return false
	}
	return Opposite(a) != b
}

// ParseFace parses a face by name ("top"), short name ("u") or code ("4").
func ParseFace(s string) (Face, error) {
	l, err := parseLabel(s, func(l Label) (string, string) { return Face(l).String(), Face(l).Short() })
	if err != nil {
		return 0, fmt.Errorf("face %q: %w", s, err)
	}
	return Face(l), nil
}

// ParseColor parses a color by name ("red"), initial ("r") or code ("0").
func ParseColor(s string) (Color, error) {
	l, err := parseLabel(s, func(l Label) (string, string) { return Color(l).String(), Color(l).Short() })
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	return Color(l), nil
}

func parseLabel(s string, names func(Label) (string, string)) (Label, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, ErrInvalidLabel
	}

	if n, err := strconv.Atoi(s); err == nil {
		l := Label(n)
		if !l.Valid() {
			return 0, ErrInvalidLabel
		}
		return l, nil
	}

	for l := Label(0); l < NumLabels; l++ {
		full, short := names(l)
		if s == full || s == short {
			return l, nil
		}
	}
	return 0, ErrInvalidLabel
}
