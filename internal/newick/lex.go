package newick

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type itemType int

const (
	itemError itemType = iota
	itemEOF
	itemTerminal
	itemDescendentsStart
	itemDescendentsEnd
	itemDelimiter
	itemLengthStart
	itemLabel
	itemQuoted
)

const (
	eof           = -1
	terminal      = ';'
	descDelimiter = ','
	descStart     = '('
	descEnd       = ')'
	quote         = '\''
	lengthStart   = ':'
	commentStart  = '['
	commentEnd    = ']'
)

// Characters that end an unquoted label, besides whitespace.
const unquoteBanned = "()[]':;,"

type stateFn func(lx *lexer) stateFn

// lexer scans a fully buffered input. Items are queued by the state
// functions and pulled one at a time by nextItem.
type lexer struct {
	input string
	start int
	pos   int
	width int
	state stateFn
	items []item
}

type item struct {
	typ itemType
	val string
	pos int
}

func lex(input string) *lexer {
	return &lexer{
		input: input,
		state: lexAny,
	}
}

func (lx *lexer) nextItem() item {
	for len(lx.items) == 0 {
		if lx.state == nil {
			return item{itemEOF, "", len(lx.input)}
		}
		lx.state = lx.state(lx)
	}
	it := lx.items[0]
	lx.items = lx.items[1:]
	return it
}

func (lx *lexer) current() string {
	return lx.input[lx.start:lx.pos]
}

func (lx *lexer) emit(typ itemType) {
	lx.emitVal(typ, lx.current())
}

func (lx *lexer) emitVal(typ itemType, val string) {
	lx.items = append(lx.items, item{typ, val, lx.start})
	lx.start = lx.pos
}

func (lx *lexer) next() rune {
	if lx.pos >= len(lx.input) {
		lx.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(lx.input[lx.pos:])
	lx.width = w
	lx.pos += w
	return r
}

// ignore skips over the pending input before this point.
func (lx *lexer) ignore() {
	lx.start = lx.pos
}

// backup steps back one rune. Can be called only once per call of next.
func (lx *lexer) backup() {
	lx.pos -= lx.width
}

// peek returns but does not consume the next rune in the input.
func (lx *lexer) peek() rune {
	r := lx.next()
	lx.backup()
	return r
}

// errorf stops all lexing by emitting an error positioned at the start of
// the pending input and returning `nil`.
func (lx *lexer) errorf(format string, values ...interface{}) stateFn {
	for i, value := range values {
		if v, ok := value.(rune); ok {
			values[i] = escapeSpecial(v)
		}
	}
	lx.items = append(lx.items, item{itemError, fmt.Sprintf(format, values...), lx.start})
	return nil
}

func lexAny(lx *lexer) stateFn {
	r := lx.next()
	for unicode.IsSpace(r) {
		r = lx.next()
	}
	if r == eof {
		lx.ignore()
		lx.emit(itemEOF)
		return nil
	}
	lx.backup()
	lx.ignore()
	lx.next()

	switch r {
	case descStart:
		lx.emit(itemDescendentsStart)
	case descEnd:
		lx.emit(itemDescendentsEnd)
	case descDelimiter:
		lx.emit(itemDelimiter)
	case lengthStart:
		lx.emit(itemLengthStart)
	case terminal:
		lx.emit(itemTerminal)
	case commentStart:
		return lexComment
	case quote:
		return lexQuoted
	case commentEnd:
		return lx.errorf("Unexpected '%s' outside of a comment.", r)
	default:
		return lexLabel
	}
	return lexAny
}

// lexComment skips a bracketed comment. Comments do not nest.
func lexComment(lx *lexer) stateFn {
	for {
		switch lx.next() {
		case commentEnd:
			lx.ignore()
			return lexAny
		case eof:
			return lx.errorf("Unterminated comment.")
		}
	}
}

func lexQuoted(lx *lexer) stateFn {
	var label strings.Builder
	for {
		r := lx.next()
		switch {
		case r == eof:
			return lx.errorf("Unterminated quoted label.")
		case r == quote && lx.peek() == quote:
			lx.next()
			label.WriteRune(quote)
		case r == quote:
			lx.emitVal(itemQuoted, label.String())
			return lexAny
		default:
			label.WriteRune(r)
		}
	}
}

func lexLabel(lx *lexer) stateFn {
	for {
		r := lx.next()
		if r == eof || unicode.IsSpace(r) || strings.ContainsRune(unquoteBanned, r) {
			lx.backup()
			break
		}
	}
	if r := lx.peek(); r == quote || r == commentEnd {
		lx.ignore()
		return lx.errorf("Found '%s' in an unquoted label, which may not "+
			"contain the following characters: '%s'.", r, unquoteBanned)
	}
	lx.emit(itemLabel)
	return lexAny
}

func (itype itemType) String() string {
	switch itype {
	case itemError:
		return "Error"
	case itemEOF:
		return "EOF"
	case itemTerminal:
		return "';'"
	case itemDescendentsStart:
		return "'('"
	case itemDescendentsEnd:
		return "')'"
	case itemDelimiter:
		return "','"
	case itemLengthStart:
		return "':'"
	case itemLabel, itemQuoted:
		return "label"
	}
	panic(fmt.Sprintf("BUG: Unknown type '%d'.", int(itype)))
}

func (item item) String() string {
	return fmt.Sprintf("(%s, %q)", item.typ.String(), item.val)
}

func escapeSpecial(c rune) string {
	switch c {
	case '\n':
		return "\\n"
	case eof:
		return "EOF"
	}
	return string(c)
}
