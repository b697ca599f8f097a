package newick

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/daryltucker/reroot/internal/model"
)

// Characters that force a label to be quoted, besides whitespace.
const quoteTriggers = "()[]':;,"

// Writer writes trees in Newick format, one per line.
type Writer struct {
	w *bufio.Writer
}

// NewWriter returns a writer that buffers output to `w`.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bufio.NewWriter(w)}
}

// WriteTree writes t followed by a newline and flushes. Only errors from the
// underlying writer are returned.
func (w *Writer) WriteTree(t *model.Tree) error {
	if _, err := w.w.WriteString(Format(t)); err != nil {
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return err
	}
	return w.w.Flush()
}

// Format serializes t, terminated by ';'.
func Format(t *model.Tree) string {
	var b strings.Builder
	if t.Root == model.NoNode {
		b.WriteByte(terminal)
		return b.String()
	}

	// Each frame remembers how many children of its clade were written.
	type frame struct {
		id   model.NodeID
		next int
	}
	stack := []frame{{t.Root, 0}}
	for len(stack) > 0 {
		top := len(stack) - 1
		f := stack[top]
		c := t.Clade(f.id)

		if f.next < len(c.Children) {
			if f.next == 0 {
				b.WriteByte(descStart)
			} else {
				b.WriteByte(descDelimiter)
			}
			stack[top].next++
			stack = append(stack, frame{c.Children[f.next], 0})
			continue
		}

		if len(c.Children) > 0 {
			b.WriteByte(descEnd)
		}
		writeAnnotation(&b, c)
		stack = stack[:top]
	}
	b.WriteByte(terminal)
	return b.String()
}

// writeAnnotation writes what follows a clade's descendent list: its label
// (or support value) and branch length.
func writeAnnotation(b *strings.Builder, c *model.Clade) {
	switch {
	case c.Label != "":
		b.WriteString(formatLabel(c.Label, len(c.Children) > 0))
	case c.Confidence != nil:
		b.WriteString(formatFloat(*c.Confidence))
	case len(c.Children) == 0:
		// An anonymous leaf still needs a token, or the comma before it
		// would read back as an empty clade.
		b.WriteString("''")
	}
	if c.Length != nil {
		b.WriteByte(lengthStart)
		b.WriteString(formatFloat(*c.Length))
	}
}

// formatLabel quotes label when it would not read back as the same label.
// Numeric labels on internal clades are quoted so they are not taken for
// support values.
func formatLabel(label string, internal bool) string {
	if needsQuote(label) || (internal && isNumber(label)) {
		return string(quote) + strings.ReplaceAll(label, "'", "''") + string(quote)
	}
	return label
}

func needsQuote(label string) bool {
	return strings.ContainsAny(label, quoteTriggers) ||
		strings.IndexFunc(label, unicode.IsSpace) >= 0
}

func isNumber(s string) bool {
	_, ok := parseDecimal(s)
	return ok
}

// formatFloat prints the shortest text that parses back to v.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
