package lexer

import (
	"bytes"

	"github.com/jsonkit/jsonkit/internal/djb2"
)

// Keyword hashes are computed once at startup from the literal strings,
// so a change to the hash function can never leave them stale.
// Classification confirms a hash match with a byte comparison, ruling
// out accidental collisions with user identifiers.
var (
	kwTrue  = []byte("true")
	kwFalse = []byte("false")
	kwNull  = []byte("null")

	trueHash  = djb2.Sum(kwTrue)
	falseHash = djb2.Sum(kwFalse)
	nullHash  = djb2.Sum(kwNull)
)

// classifyIdent maps an identifier lexeme to a keyword kind, or KindIdent
// when it is not a keyword.
func classifyIdent(lexeme []byte) Kind {
	switch djb2.Sum(lexeme) {
	case trueHash:
		if bytes.Equal(lexeme, kwTrue) {
			return KindTrue
		}
	case falseHash:
		if bytes.Equal(lexeme, kwFalse) {
			return KindFalse
		}
	case nullHash:
		if bytes.Equal(lexeme, kwNull) {
			return KindNull
		}
	}
	return KindIdent
}
