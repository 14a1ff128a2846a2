// Package lexer tokenizes JSON source text in one of three dialects:
// strict JSON, JSON with comments, and JSON5.
//
// The lexer is a byte-level cursor that emits located tokens: every token
// carries its 1-based row and column and its 0-based byte offset, and its
// byte length covers the exact source lexeme. Tokenization is identical
// across dialects except for comment handling, which is skipped as
// inter-token trivia outside strict mode.
//
// Identifier and string tokens carry an allocator-backed payload the
// consumer must free. Number tokens carry location and length only; the
// numeric value is left to the grammar-level parser.
package lexer
