package newick

import (
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	rerr "github.com/daryltucker/reroot/internal/errors"
	"github.com/daryltucker/reroot/internal/model"
)

// Reader corresponds to the state necessary to read trees from Newick
// formatted input. The whole input is buffered on the first read.
type Reader struct {
	src io.Reader
	*lexer
}

// NewReader returns a reader ready for reading trees from `r`.
func NewReader(r io.Reader) *Reader {
	return &Reader{src: r}
}

// Parse reads exactly one tree from text. Anything other than whitespace
// and comments after the terminating ';' is an error.
func Parse(text string) (*model.Tree, error) {
	r := &Reader{lexer: lex(text)}
	tree, err := r.ReadTree()
	if err == io.EOF {
		return nil, r.errorAt(len(text), "Empty input, expected a tree.")
	} else if err != nil {
		return nil, err
	}
	if it := r.nextItem(); it.typ != itemEOF {
		if it.typ == itemError {
			return nil, r.errorAt(it.pos, "%s", it.val)
		}
		return nil, r.errorAt(it.pos, "Unexpected %s after the terminating ';', "+
			"expected a single tree.", it.typ)
	}
	return tree, nil
}

// ReadAll returns all of the Newick trees in the source input. The first
// error that occurs is returned with no trees. The error is never `io.EOF`.
func (r *Reader) ReadAll() ([]*model.Tree, error) {
	trees := make([]*model.Tree, 0)
	for {
		tree, err := r.ReadTree()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		trees = append(trees, tree)
	}
	return trees, nil
}

// ReadTree reads a single tree from the source input. If the end of the
// input is reached, then a nil `Tree` is returned with `io.EOF` as the error.
func (r *Reader) ReadTree() (*model.Tree, error) {
	if r.lexer == nil {
		data, err := io.ReadAll(r.src)
		if err != nil {
			return nil, fmt.Errorf("reading newick input: %w", err)
		}
		r.lexer = lex(string(data))
	}

	first := r.nextItem()
	if first.typ == itemEOF {
		return nil, io.EOF
	}
	return r.parse(first)
}

// What the parser accepts next.
const (
	expectClade  = iota // after '(' or ',' or at the start of a tree
	expectLabel         // after ')'
	expectLength        // after a label
	expectEnd           // after a branch length
)

// parse builds one tree, keeping the clades whose descendent lists are
// still open on an explicit stack.
func (r *Reader) parse(first item) (*model.Tree, error) {
	tree := model.New()
	var open []openClade
	cur := model.NoNode
	state := expectClade

	top := func() model.NodeID {
		if len(open) == 0 {
			return model.NoNode
		}
		return open[len(open)-1].id
	}

	for it := first; ; it = r.nextItem() {
		switch it.typ {
		case itemError:
			return nil, r.errorAt(it.pos, "%s", it.val)

		case itemDescendentsStart:
			if state != expectClade {
				return nil, r.unexpected(it, state)
			}
			id := tree.AddClade(top(), model.Clade{})
			open = append(open, openClade{id, it.pos})

		case itemLabel, itemQuoted:
			switch state {
			case expectClade:
				cur = tree.AddClade(top(), model.Clade{Label: it.val})
				state = expectLength
			case expectLabel:
				setInternalLabel(tree.Clade(cur), it)
				state = expectLength
			default:
				return nil, r.unexpected(it, state)
			}

		case itemLengthStart:
			if state != expectLabel && state != expectLength {
				return nil, r.unexpected(it, state)
			}
			num := r.nextItem()
			if num.typ == itemError {
				return nil, r.errorAt(num.pos, "%s", num.val)
			}
			if num.typ != itemLabel {
				return nil, r.errorAt(num.pos, "Expected a branch length after ':', "+
					"but got %s instead.", num.typ)
			}
			length, ok := parseDecimal(num.val)
			if !ok {
				return nil, r.errorAt(num.pos, "Invalid branch length %q.", num.val)
			}
			tree.Clade(cur).Length = &length
			state = expectEnd

		case itemDelimiter:
			if state == expectClade {
				return nil, r.unexpected(it, state)
			}
			if len(open) == 0 {
				return nil, r.errorAt(it.pos, "Found ',' outside of any parentheses.")
			}
			state = expectClade

		case itemDescendentsEnd:
			if state == expectClade {
				return nil, r.unexpected(it, state)
			}
			if len(open) == 0 {
				return nil, r.errorAt(it.pos, "Unmatched ')'.")
			}
			cur = open[len(open)-1].id
			open = open[:len(open)-1]
			state = expectLabel

		case itemTerminal:
			if state == expectClade {
				return nil, r.unexpected(it, state)
			}
			if len(open) > 0 {
				return nil, r.errorAt(it.pos, "Unmatched '(' at offset %d.",
					open[len(open)-1].pos)
			}
			return tree, nil

		case itemEOF:
			if len(open) > 0 {
				return nil, r.errorAt(it.pos, "Unexpected end of input, "+
					"unmatched '(' at offset %d.", open[len(open)-1].pos)
			}
			return nil, r.errorAt(it.pos, "Unexpected end of input, "+
				"expected a terminal '%c'.", terminal)
		}
	}
}

// openClade pairs a clade whose descendent list is still open with the
// offset of its '('.
type openClade struct {
	id  model.NodeID
	pos int
}

// decimal matches the numbers Newick allows: optional sign, digits with an
// optional fraction, optional exponent. strconv alone would also take hex
// floats, underscores, "Inf" and "NaN".
var decimal = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?$`)

// parseDecimal reads s as a finite decimal number.
func parseDecimal(s string) (float64, bool) {
	if !decimal.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// setInternalLabel stores the text after a ')' either as a label or, for an
// unquoted number, as a support value.
func setInternalLabel(c *model.Clade, it item) {
	if it.typ == itemLabel {
		if v, ok := parseDecimal(it.val); ok {
			c.Confidence = &v
			return
		}
	}
	c.Label = it.val
}

func (r *Reader) unexpected(it item, state int) error {
	var want string
	switch state {
	case expectClade:
		want = "a clade ('(' or a label)"
	case expectLabel:
		want = "a label, ':', ',', ')' or ';'"
	case expectLength:
		want = "':', ',', ')' or ';'"
	default:
		want = "',', ')' or ';'"
	}
	if it.typ == itemLabel || it.typ == itemQuoted {
		return r.errorAt(it.pos, "Unexpected label %q, expected %s.", it.val, want)
	}
	return r.errorAt(it.pos, "Unexpected %s, expected %s.", it.typ, want)
}

// errorAt builds a ParseError for a byte offset into the buffered input.
func (r *Reader) errorAt(pos int, format string, v ...interface{}) error {
	line, col := 1, 1
	if r.lexer != nil {
		before := r.input[:min(pos, len(r.input))]
		line += strings.Count(before, "\n")
		col += len(before) - (strings.LastIndexByte(before, '\n') + 1)
	}
	return rerr.NewParseError(pos, line, col, fmt.Sprintf(format, v...))
}
