package lexer

import (
	"fmt"

	"github.com/jsonkit/jsonkit/alloc"
	"github.com/jsonkit/jsonkit/value"
)

// Dialect selects the JSON grammar variant being tokenized.
type Dialect uint8

const (
	// DialectStrict is RFC 8259 JSON. No comments.
	DialectStrict Dialect = iota
	// DialectWithComments is JSON plus // and /* */ comments.
	DialectWithComments
	// DialectJSON5 is the JSON5 variant. Tokenization matches
	// DialectWithComments at this layer; the extended number and
	// identifier syntax is handled by the grammar-level parser.
	DialectJSON5
)

// String returns the dialect name.
func (d Dialect) String() string {
	switch d {
	case DialectStrict:
		return "strict"
	case DialectWithComments:
		return "with-comments"
	case DialectJSON5:
		return "json5"
	}
	return "unknown"
}

// eof is the cursor sentinel for end of input. ch is an int so the
// sentinel is distinct from every byte value.
const eof = -1

// Lexer is a character cursor over an owned copy of the source text.
// Not safe for concurrent use.
type Lexer struct {
	dialect Dialect
	name    value.Str
	src     value.Str
	a       alloc.Allocator

	pos     int // byte offset of ch
	readPos int // byte offset of the next character
	ch      int // current character, eof past the end
	row     int // 1-based line of ch
	col     int // 1-based column of ch
}

// New initializes a lexer over copies of source and name, both routed
// through a. It fails iff one of the copies fails; the lexer owns the
// copies until Close.
func New(a alloc.Allocator, source []byte, name string, d Dialect) (*Lexer, error) {
	src, err := value.NewStr(a, source)
	if err != nil {
		return nil, fmt.Errorf("lexer: copy source: %w", err)
	}
	srcName, err := value.StrFromString(a, name)
	if err != nil {
		src.Free(a)
		return nil, fmt.Errorf("lexer: copy source name: %w", err)
	}

	lx := &Lexer{
		dialect: d,
		name:    srcName,
		src:     src,
		a:       a,
		readPos: 1,
		row:     1,
		col:     1,
	}
	if src.Len() == 0 {
		lx.ch = eof
	} else {
		lx.ch = int(src.Bytes()[0])
	}
	return lx, nil
}

// Close releases the source and name copies and zeroes the lexer.
func (lx *Lexer) Close() {
	lx.src.Free(lx.a)
	lx.name.Free(lx.a)
	*lx = Lexer{}
}

// Dialect returns the dialect the lexer was initialized with.
func (lx *Lexer) Dialect() Dialect { return lx.dialect }

// SourceName returns the name the source was registered under.
// The returned Str is a borrow owned by the lexer.
func (lx *Lexer) SourceName() value.Str { return lx.name }

// advance moves the cursor one character. Row and column update from the
// outgoing character: a newline starts the next row at column 1.
func (lx *Lexer) advance() {
	if lx.ch == '\n' {
		lx.row++
		lx.col = 1
	} else {
		lx.col++
	}
	if lx.readPos >= lx.src.Len() {
		lx.ch = eof
	} else {
		lx.ch = int(lx.src.Bytes()[lx.readPos])
	}
	lx.pos = lx.readPos
	lx.readPos++
}

// peek returns the character after ch without moving the cursor.
func (lx *Lexer) peek() int {
	if lx.readPos >= lx.src.Len() {
		return eof
	}
	return int(lx.src.Bytes()[lx.readPos])
}

func (lx *Lexer) loc() Location {
	return Location{Row: lx.row, Col: lx.col, Pos: lx.pos}
}

func isWhitespace(ch int) bool {
	return ch == ' ' || ch == '\n' || ch == '\r' || ch == '\t'
}

func isDigit(ch int) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch int) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentChar(ch int) bool {
	return isIdentStart(ch) || isDigit(ch)
}

// skipTrivia consumes whitespace before a token, plus comments outside
// strict mode. Under DialectStrict a '/' is left for the dispatcher,
// which rejects it as an invalid token.
func (lx *Lexer) skipTrivia() {
	for {
		switch {
		case isWhitespace(lx.ch):
			lx.advance()
		case lx.ch == '/' && lx.dialect != DialectStrict:
			switch lx.peek() {
			case '/':
				for lx.ch != '\n' && lx.ch != eof {
					lx.advance()
				}
			case '*':
				lx.advance() // '/'
				lx.advance() // '*'
				for lx.ch != eof {
					if lx.ch == '*' && lx.peek() == '/' {
						lx.advance()
						lx.advance()
						break
					}
					lx.advance()
				}
			default:
				return
			}
		default:
			return
		}
	}
}

// NextToken returns the next token in the source. The returned error is
// non-nil only when an identifier or string payload allocation fails;
// the token still carries the correct location, length and kind, with an
// empty payload.
func (lx *Lexer) NextToken() (Token, error) {
	lx.skipTrivia()

	start := lx.loc()
	switch {
	case lx.ch == eof:
		return Token{Loc: start, Len: 1, Kind: KindEOF}, nil
	case lx.ch == '{':
		return lx.single(start, KindLBrace), nil
	case lx.ch == '}':
		return lx.single(start, KindRBrace), nil
	case lx.ch == '[':
		return lx.single(start, KindLBracket), nil
	case lx.ch == ']':
		return lx.single(start, KindRBracket), nil
	case lx.ch == ',':
		return lx.single(start, KindComma), nil
	case lx.ch == ':':
		return lx.single(start, KindColon), nil
	case lx.ch == '"':
		return lx.readString(start)
	case isIdentStart(lx.ch):
		return lx.readIdentifier(start)
	case isDigit(lx.ch) || lx.ch == '-':
		return lx.readNumber(start), nil
	default:
		return lx.single(start, KindInvalid), nil
	}
}

func (lx *Lexer) single(start Location, kind Kind) Token {
	lx.advance()
	return Token{Loc: start, Len: 1, Kind: kind}
}

// readIdentifier consumes [A-Za-z_][A-Za-z_0-9]* and classifies it as a
// keyword or identifier. Identifier payloads are freshly allocated copies
// of the lexeme.
func (lx *Lexer) readIdentifier(start Location) (Token, error) {
	begin := lx.pos
	for isIdentChar(lx.ch) {
		lx.advance()
	}
	lexeme := lx.src.Bytes()[begin:lx.pos]

	tok := Token{Loc: start, Len: len(lexeme), Kind: classifyIdent(lexeme)}
	if tok.Kind != KindIdent {
		return tok, nil
	}

	payload, err := value.NewStr(lx.a, lexeme)
	if err != nil {
		return tok, fmt.Errorf("lexer: copy identifier: %w", err)
	}
	tok.Str = payload
	return tok, nil
}

// readNumber consumes a number lexeme: optional minus, digits, optional
// fraction and exponent. The numeric value is not materialized; Num is
// left for the grammar-level parser. A lone minus with no digits yields
// an invalid token covering the consumed bytes.
func (lx *Lexer) readNumber(start Location) Token {
	begin := lx.pos
	digits := 0

	if lx.ch == '-' {
		lx.advance()
	}
	for isDigit(lx.ch) {
		digits++
		lx.advance()
	}
	if lx.ch == '.' && isDigit(lx.peek()) {
		lx.advance()
		for isDigit(lx.ch) {
			digits++
			lx.advance()
		}
	}
	if digits > 0 && (lx.ch == 'e' || lx.ch == 'E') {
		expDigits := 0
		lx.advance()
		if lx.ch == '+' || lx.ch == '-' {
			lx.advance()
		}
		for isDigit(lx.ch) {
			expDigits++
			lx.advance()
		}
		if expDigits == 0 {
			return Token{Loc: start, Len: lx.pos - begin, Kind: KindInvalid}
		}
	}

	kind := KindNumber
	if digits == 0 {
		kind = KindInvalid
	}
	return Token{Loc: start, Len: lx.pos - begin, Kind: kind}
}

// readString consumes a double-quoted string lexeme. Escaped characters
// are skipped raw; decoding escapes is the parser's job. The payload is
// a copy of the bytes between the quotes, and Len covers the full lexeme
// including both quotes. An unterminated string yields an invalid token
// spanning to the end of input.
func (lx *Lexer) readString(start Location) (Token, error) {
	begin := lx.pos
	lx.advance() // opening quote
	payloadBegin := lx.pos

	for lx.ch != '"' && lx.ch != eof {
		if lx.ch == '\\' && lx.peek() != eof {
			lx.advance()
		}
		lx.advance()
	}

	if lx.ch == eof {
		return Token{Loc: start, Len: lx.src.Len() - begin, Kind: KindInvalid}, nil
	}

	inner := lx.src.Bytes()[payloadBegin:lx.pos]
	lx.advance() // closing quote

	tok := Token{Loc: start, Len: lx.pos - begin, Kind: KindString}
	payload, err := value.NewStr(lx.a, inner)
	if err != nil {
		return tok, fmt.Errorf("lexer: copy string: %w", err)
	}
	tok.Str = payload
	return tok, nil
}
