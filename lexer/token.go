package lexer

import (
	"github.com/jsonkit/jsonkit/alloc"
	"github.com/jsonkit/jsonkit/value"
)

// Kind identifies a token class.
type Kind uint8

const (
	// KindInvalid marks a byte sequence no token rule accepts.
	KindInvalid Kind = iota
	// KindEOF marks the end of input. It is emitted indefinitely once
	// the source is exhausted.
	KindEOF
	KindNumber
	KindString
	KindLBrace
	KindRBrace
	KindLBracket
	KindRBracket
	KindComma
	KindColon
	KindIdent
	KindNull
	KindTrue
	KindFalse
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindEOF:
		return "eof"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindLBrace:
		return "lbrace"
	case KindRBrace:
		return "rbrace"
	case KindLBracket:
		return "lbracket"
	case KindRBracket:
		return "rbracket"
	case KindComma:
		return "comma"
	case KindColon:
		return "colon"
	case KindIdent:
		return "identifier"
	case KindNull:
		return "null"
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	}
	return "unknown"
}

// Location identifies a point in source text.
type Location struct {
	Row int // 1-based line
	Col int // 1-based column
	Pos int // 0-based byte offset
}

// Token is one lexical unit. Len is the byte length of the lexeme
// (punctuation and EOF count as 1). Str holds the payload of identifier
// and string tokens and is owned by the token; Free releases it.
// Num is reserved for the grammar-level parser and is not populated by
// the lexer.
type Token struct {
	Loc  Location
	Len  int
	Kind Kind
	Str  value.Str
	Num  float64
}

// Free releases the token's payload, if any. Safe on payload-free tokens.
func (tok Token) Free(a alloc.Allocator) {
	tok.Str.Free(a)
}
