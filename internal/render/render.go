// Package render prints lookup tables as source-code literals.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/SeamusWaldron/cubegen/internal/tables"
)

// Format selects the output language.
type Format string

const (
	FormatCpp  Format = "cpp"
	FormatGo   Format = "go"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("cubegen: unknown output format")

// ParseFormat validates a format name. The empty string selects cpp.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCpp:
		return FormatCpp, nil
	case FormatGo:
		return FormatGo, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s (use cpp, go or json)", ErrUnknownFormat, s)
	}
}

// Options tunes the generated output.
type Options struct {
	// Package is the package clause of generated Go code.
	Package string
}

// DefaultPackage is used for Go output when Options.Package is empty.
const DefaultPackage = "cubeids"

// Write renders ts to w in the given format.
func Write(w io.Writer, format Format, ts []*tables.Table, opts Options) error {
	switch format {
	case FormatCpp:
		return WriteCpp(w, ts)
	case FormatGo:
		return WriteGo(w, ts, opts)
	case FormatJSON:
		return WriteJSON(w, ts)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// errWriter keeps the first write error so literal builders don't have to
// check every call.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) print(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

func (ew *errWriter) printf(format string, args ...any) {
	ew.print(fmt.Sprintf(format, args...))
}
