// Package render prints normalized tag records with section headers and
// indentation-aware line wrapping.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/sv4u/tagdump/frame"
)

const (
	sectionSeparator = "-----------------"
	noValueMarker    = "(No Value)"
	// DefaultIndent is the value indentation when none is configured.
	DefaultIndent = 4
)

// Renderer writes tag sections and records to an output stream.
type Renderer struct {
	w      io.Writer
	width  WidthFunc
	indent int
}

// New creates a renderer. A nil width function means sample the terminal
// per call; a non-positive indent falls back to DefaultIndent.
func New(w io.Writer, width WidthFunc, indent int) *Renderer {
	if width == nil {
		width = TerminalWidth
	}
	if indent <= 0 {
		indent = DefaultIndent
	}
	return &Renderer{w: w, width: width, indent: indent}
}

// Section prints the header announcing a detected tag kind.
func (r *Renderer) Section(name string) {
	fmt.Fprintln(r.w, sectionSeparator)
	fmt.Fprintf(r.w, "Found %s\n", name)
}

// CorruptionWarning prints the possibly-corrupt advisory and its reasons.
// Callers emit it before any tag section.
func (r *Renderer) CorruptionWarning(reasons []string) {
	fmt.Fprintln(r.w, "Warning: file is possibly corrupt")
	for _, reason := range reasons {
		r.writeLineWithIndent(r.indent, reason)
	}
}

// Record prints one normalized record. Multi-value records get a count in
// the header; an empty record is a single no-value line with no body.
func (r *Renderer) Record(rec frame.Record) {
	switch {
	case len(rec.Values) == 0:
		fmt.Fprintf(r.w, "%s %s\n", rec.ID, noValueMarker)
	case len(rec.Values) == 1:
		fmt.Fprintf(r.w, "%s:\n", rec.ID)
		r.writeLineWithIndent(r.indent, rec.Values[0])
	default:
		fmt.Fprintf(r.w, "%s (%d):\n", rec.ID, len(rec.Values))
		for _, v := range rec.Values {
			r.writeLineWithIndent(r.indent, v)
		}
	}
}

// writeLineWithIndent hard-wraps s into chunks of at most width()-indent
// runes, each prefixed with the indent and terminated with a newline. No
// rune is lost or reordered across chunk boundaries; there is no
// word-boundary awareness. An empty string still emits one indented blank
// line.
func (r *Renderer) writeLineWithIndent(indent int, s string) {
	width := r.width()
	if width <= 0 {
		width = DefaultWidth
	}
	wrap := width - indent
	if wrap < 1 {
		wrap = 1
	}

	pad := strings.Repeat(" ", indent)
	runes := []rune(s)
	if len(runes) == 0 {
		fmt.Fprintln(r.w, pad)
		return
	}
	for start := 0; start < len(runes); start += wrap {
		end := start + wrap
		if end > len(runes) {
			end = len(runes)
		}
		fmt.Fprintf(r.w, "%s%s\n", pad, string(runes[start:end]))
	}
}
