// Package syntax parses Rust token streams into a typed syntax tree and
// prints trees back to tokens.
//
// # Overview
//
// Parsing works on token trees produced by package tokens. Delimited groups
// are already matched, so rules never have to balance brackets themselves.
// The parser is a set of composable rules sharing a cheap, immutable cursor.
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Source    │────▶│   tokens    │────▶│   Buffer    │────▶│    Rules    │
//	│  (bytes)    │     │  (Stream)   │     │  (Cursor)   │     │   (AST)     │
//	└─────────────┘     └─────────────┘     └─────────────┘     └─────────────┘
//	                                                                   │
//	                                                                   ▼
//	                                        ┌─────────────┐     ┌─────────────┐
//	                                        │   Stream    │◀────│    Print    │
//	                                        └─────────────┘     └─────────────┘
//
// # Cursors and Input
//
// A Buffer flattens a token tree once. A Cursor is a position in that
// buffer; copying it is free and it never changes. An Input wraps the
// cursor a rule is advancing:
//
//	fork := in.Fork()       // speculative copy of the position
//	if _, err := parseX(fork); err == nil {
//	    in.Commit(fork)     // adopt the fork's position
//	}
//
// Peek, Peek2 and Peek3 look ahead without consuming anything.
//
// # Rules
//
// A rule is a function from *Input to a value:
//
//	type Rule[T any] func(in *Input) (T, error)
//
// Rules combine with Parse, Alt, Optional, Delimited, ParseTerminated and
// ParseSeparatedNonEmpty. Alt runs every alternative on its own fork and,
// when all fail, reports the failure that got furthest. The exported *Rule
// variables cover files, items, statements, expressions, types, patterns,
// paths, attributes, generics, bounds, literals and visibility.
//
// # Entry Points
//
//	// ParsePrefix parses the start of a stream and returns the rest.
//	func ParsePrefix[T any](stream tokens.Stream, rule Rule[T]) (T, tokens.Stream, error)
//
//	// ParseAll requires the whole stream to be consumed.
//	func ParseAll[T any](stream tokens.Stream, rule Rule[T]) (T, error)
//
//	// ParseSource lexes first; ParseFile, ParseExpr, ParseType and
//	// friends are shorthands for it.
//	func ParseSource[T any](src []byte, rule Rule[T], opts ...Option) (T, error)
//
// # Errors
//
// Every failure is an *Error carrying a Kind, a Span and a message. When
// two alternatives fail, Merge keeps the one at the later position; at the
// same position the expectations are combined ("expected `;` or `}`").
// There is no recovery: the first committed failure ends the parse.
//
// # Expressions
//
// Binary operators are parsed by precedence climbing. From loosest to
// tightest: assignment, range, ||, &&, comparison, |, ^, &, shifts, + -,
// * / %, as, then prefix operators and postfix calls, fields, indexing
// and ?. Assignment is right associative, ranges do not associate, the
// rest associate to the left.
//
// Struct literals are not allowed in the head of if, while, match and for,
// so `if x {}` is a condition followed by a block. A block-like expression
// at statement start ends the statement unless followed by `.` or `?`.
//
// # Printing
//
// Print turns any node back into tokens using the spans captured while
// parsing. Parentheses are added only where a hand-built tree would
// otherwise reparse differently. For parsed trees,
//
//	Print(ParseAll(Print(n))) == Print(n)
//
// token for token.
//
// # Traversal
//
// Walk and Inspect visit nodes in source order in the style of go/ast.
// Folder rebuilds a tree bottom-up with optional hooks per node category.
// SpanOf reports the source range a node covers.
//
// # Thread Safety
//
// Trees and Buffers are not modified after construction and may be shared
// between goroutines. An Input is owned by the rule advancing it.
package syntax
