package syntax

import (
	"errors"
	"fmt"
	"io"

	"github.com/dhamidi/rsyn/rust/tokens"
)

// Rules for the public entry points. Each can be run with ParseAll or
// ParsePrefix, or composed into larger rules.
var (
	FileRule      Rule[*File]        = parseFile
	ItemRule      Rule[Item]         = parseItem
	ExprRule      Rule[Expr]         = parseExprAny
	TypeRule      Rule[Type]         = parseTypePlus
	PatRule       Rule[Pat]          = parsePatTop
	StmtRule      Rule[Stmt]         = parseStmt
	BlockRule     Rule[*Block]       = parseBlock
	PathRule      Rule[*Path]        = parseTypePath
	AttributeRule Rule[[]*Attribute] = parseAttributes
	GenericsRule  Rule[*Generics]    = parseGenericsWithWhere
	LitRule       Rule[*Lit]         = parseLit
	VisRule       Rule[Visibility]   = parseVisibility
)

// BoundsRule parses A + B + 'c.
var BoundsRule Rule[Punctuated[TypeParamBound]] = func(in *Input) (Punctuated[TypeParamBound], error) {
	return parseBounds(in, true)
}

func parseTypePath(in *Input) (*Path, error) {
	return parsePath(in, pathType)
}

func parseAttributes(in *Input) ([]*Attribute, error) {
	inner, err := parseInnerAttrs(in)
	if err != nil {
		return nil, err
	}
	outer, err := parseOuterAttrs(in)
	if err != nil {
		return nil, err
	}
	return append(inner, outer...), nil
}

func parseGenericsWithWhere(in *Input) (*Generics, error) {
	g, err := parseGenerics(in)
	if err != nil {
		return nil, err
	}
	if err := parseWhereClause(in, g); err != nil {
		return nil, err
	}
	return g, nil
}

// ParsePrefix runs rule at the start of stream and returns what is left.
func ParsePrefix[T any](stream tokens.Stream, rule Rule[T]) (T, tokens.Stream, error) {
	in := newInput(NewBuffer(stream).Begin())
	v, err := Parse(in, rule)
	if err != nil {
		var zero T
		return zero, stream, err
	}
	return v, in.cur.Rest(), nil
}

// ParseAll runs rule on stream and fails with ErrTrailingTokens unless the
// whole stream was consumed.
func ParseAll[T any](stream tokens.Stream, rule Rule[T]) (T, error) {
	in := newInput(NewBuffer(stream).Begin())
	v, err := Parse(in, rule)
	if err != nil {
		var zero T
		return zero, err
	}
	if !in.IsEmpty() {
		var zero T
		e := unexpected(in.cur, "end of input")
		e.Kind = ErrTrailingTokens
		return zero, e
	}
	return v, nil
}

type Option func(*config)

type config struct {
	file string
}

// WithFile sets the file name recorded in token positions.
func WithFile(path string) Option {
	return func(c *config) {
		c.file = path
	}
}

// ParseSource lexes src and parses all of it with rule. Lexical errors are
// reported as *Error values of kind ErrCustom.
func ParseSource[T any](src []byte, rule Rule[T], opts ...Option) (T, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	var zero T
	stream, err := tokens.Lex(src, cfg.file)
	if err != nil {
		var lexErr *tokens.LexError
		if errors.As(err, &lexErr) {
			return zero, &Error{Kind: ErrCustom, Span: lexErr.Span, Message: lexErr.Message}
		}
		return zero, err
	}
	return ParseAll(stream, rule)
}

// ParseFile reads and parses a whole source file.
func ParseFile(r io.Reader, opts ...Option) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return ParseSource(data, FileRule, opts...)
}

func ParseExpr(src string, opts ...Option) (Expr, error) {
	return ParseSource([]byte(src), ExprRule, opts...)
}

func ParseType(src string, opts ...Option) (Type, error) {
	return ParseSource([]byte(src), TypeRule, opts...)
}

func ParsePat(src string, opts ...Option) (Pat, error) {
	return ParseSource([]byte(src), PatRule, opts...)
}

func ParseStmt(src string, opts ...Option) (Stmt, error) {
	return ParseSource([]byte(src), StmtRule, opts...)
}

func ParseItem(src string, opts ...Option) (Item, error) {
	return ParseSource([]byte(src), ItemRule, opts...)
}

func ParsePath(src string, opts ...Option) (*Path, error) {
	return ParseSource([]byte(src), PathRule, opts...)
}

func ParseFileString(src string, opts ...Option) (*File, error) {
	return ParseSource([]byte(src), FileRule, opts...)
}

// ParseAttribute parses a single outer attribute such as #[derive(Debug)].
func ParseAttribute(src string, opts ...Option) (*Attribute, error) {
	return ParseSource[*Attribute]([]byte(src), parseAttribute, opts...)
}

func ParseGenerics(src string, opts ...Option) (*Generics, error) {
	return ParseSource([]byte(src), GenericsRule, opts...)
}

func ParseLit(src string, opts ...Option) (*Lit, error) {
	return ParseSource([]byte(src), LitRule, opts...)
}
