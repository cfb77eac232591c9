package parse

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

type tokKind int

const (
	tEOF tokKind = iota
	tLCurl
	tRCurl
	tLSquare
	tRSquare
	tColon
	tComma
	tString
	tNumber
	tTrue
	tFalse
	tNull
)

func (k tokKind) String() string {
	return map[tokKind]string{
		tEOF:     "end of input",
		tLCurl:   "'{'",
		tRCurl:   "'}'",
		tLSquare: "'['",
		tRSquare: "']'",
		tColon:   "':'",
		tComma:   "','",
		tString:  "string",
		tNumber:  "number",
		tTrue:    "'true'",
		tFalse:   "'false'",
		tNull:    "'null'",
	}[k]
}

type token struct {
	kind tokKind
	text string // decoded value for tString, raw text for tNumber
	line int
	col  int
}

type lexer struct {
	d    []byte
	pos  int
	line int
	col  int

	peeked *token
}

func newLexer(d []byte) *lexer {
	return &lexer{d: d, line: 1, col: 1}
}

func (lx *lexer) errf(msg string, args ...any) error {
	loc := fmt.Sprintf("%d:%d", lx.line, lx.col)
	return fmt.Errorf("%w: %s: %s", ErrParse, loc, fmt.Sprintf(msg, args...))
}

func (lx *lexer) advance(n int) {
	for i := 0; i < n; i++ {
		if lx.d[lx.pos+i] == '\n' {
			lx.line++
			lx.col = 1
		} else {
			lx.col++
		}
	}
	lx.pos += n
}

func (lx *lexer) skipSpace() {
	for lx.pos < len(lx.d) {
		switch lx.d[lx.pos] {
		case ' ', '\t', '\n', '\r':
			lx.advance(1)
		default:
			return
		}
	}
}

// unread pushes tok back; the next call to next returns it again.
func (lx *lexer) unread(tok token) {
	lx.peeked = &tok
}

func (lx *lexer) next() (token, error) {
	if lx.peeked != nil {
		tok := *lx.peeked
		lx.peeked = nil
		return tok, nil
	}
	lx.skipSpace()
	tok := token{line: lx.line, col: lx.col}
	if lx.pos >= len(lx.d) {
		tok.kind = tEOF
		return tok, nil
	}
	c := lx.d[lx.pos]
	switch c {
	case '{':
		tok.kind = tLCurl
		lx.advance(1)
		return tok, nil
	case '}':
		tok.kind = tRCurl
		lx.advance(1)
		return tok, nil
	case '[':
		tok.kind = tLSquare
		lx.advance(1)
		return tok, nil
	case ']':
		tok.kind = tRSquare
		lx.advance(1)
		return tok, nil
	case ':':
		tok.kind = tColon
		lx.advance(1)
		return tok, nil
	case ',':
		tok.kind = tComma
		lx.advance(1)
		return tok, nil
	case '"':
		return lx.str()
	case 't':
		return lx.word("true", tTrue)
	case 'f':
		return lx.word("false", tFalse)
	case 'n':
		return lx.word("null", tNull)
	}
	if c == '-' || (c >= '0' && c <= '9') {
		return lx.number()
	}
	return tok, lx.errf("unexpected character %q", c)
}

func (lx *lexer) word(kw string, kind tokKind) (token, error) {
	tok := token{kind: kind, line: lx.line, col: lx.col}
	if lx.pos+len(kw) > len(lx.d) || string(lx.d[lx.pos:lx.pos+len(kw)]) != kw {
		return tok, lx.errf("invalid token")
	}
	lx.advance(len(kw))
	return tok, nil
}

func (lx *lexer) number() (token, error) {
	tok := token{kind: tNumber, line: lx.line, col: lx.col}
	start := lx.pos
	i := lx.pos
	if lx.d[i] == '-' {
		i++
	}
	for i < len(lx.d) {
		c := lx.d[i]
		if (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-' {
			i++
			continue
		}
		break
	}
	tok.text = string(lx.d[start:i])
	lx.advance(i - start)
	return tok, nil
}

func (lx *lexer) str() (token, error) {
	tok := token{kind: tString, line: lx.line, col: lx.col}
	s, n, err := unquoteJSON(lx.d[lx.pos:])
	if err != nil {
		return tok, fmt.Errorf("%w: %d:%d: %w", ErrParse, lx.line, lx.col, err)
	}
	tok.text = s
	lx.advance(n)
	return tok, nil
}

// unquoteJSON decodes one leading JSON string from d, returning the decoded
// value and the number of input bytes consumed (including both quotes).
func unquoteJSON(d []byte) (string, int, error) {
	res := make([]byte, 0, len(d))
	i := 1 // past opening quote
	for i < len(d) {
		c := d[i]
		switch {
		case c == '"':
			return string(res), i + 1, nil
		case c == '\\':
			if i+1 >= len(d) {
				return "", 0, ErrUnterminated
			}
			esc := d[i+1]
			i += 2
			switch esc {
			case '"', '\\', '/':
				res = append(res, esc)
			case 'b':
				res = append(res, '\b')
			case 'f':
				res = append(res, '\f')
			case 'n':
				res = append(res, '\n')
			case 'r':
				res = append(res, '\r')
			case 't':
				res = append(res, '\t')
			case 'u':
				r, n, err := unquoteUnicode(d[i:])
				if err != nil {
					return "", 0, err
				}
				res = utf8.AppendRune(res, r)
				i += n
			default:
				return "", 0, fmt.Errorf("%w: \\%c", ErrBadEscape, esc)
			}
		case c < 0x20:
			return "", 0, fmt.Errorf("%w: control character in string", ErrBadEscape)
		default:
			r, sz := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && sz == 1 {
				return "", 0, ErrBadUTF8
			}
			res = append(res, d[i:i+sz]...)
			i += sz
		}
	}
	return "", 0, ErrUnterminated
}

// unquoteUnicode decodes the four hex digits after a \u escape, consuming a
// following surrogate pair when present.  d starts just after "\u".
func unquoteUnicode(d []byte) (rune, int, error) {
	r1, err := hex4(d)
	if err != nil {
		return 0, 0, err
	}
	if !utf16.IsSurrogate(r1) {
		return r1, 4, nil
	}
	if len(d) >= 10 && d[4] == '\\' && d[5] == 'u' {
		r2, err := hex4(d[6:])
		if err != nil {
			return 0, 0, err
		}
		if r := utf16.DecodeRune(r1, r2); r != utf8.RuneError {
			return r, 10, nil
		}
	}
	return utf8.RuneError, 4, nil
}

func hex4(d []byte) (rune, error) {
	if len(d) < 4 {
		return 0, fmt.Errorf("%w: truncated \\u escape", ErrBadEscape)
	}
	var r rune
	for _, c := range d[:4] {
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			r |= rune(c-'A') + 10
		default:
			return 0, fmt.Errorf("%w: bad \\u escape", ErrBadEscape)
		}
	}
	return r, nil
}
