package syntax

import "github.com/dhamidi/rsyn/rust/tokens"

// pathStyle selects how generic arguments attach to path segments.
type pathStyle int

const (
	// pathMod paths never carry arguments: attributes, visibility, use.
	pathMod pathStyle = iota
	// pathType paths take <..> directly and Fn(..) -> T sugar.
	pathType
	// pathExpr paths need ::<..>; a bare < is only generic when the
	// closing > is followed by ::.
	pathExpr
)

func parseIdent(in *Input) (Ident, error) {
	tok, next, ok := in.cur.Token()
	if !ok || tok.Kind != tokens.KindIdent {
		return Ident{}, in.Error("identifier")
	}
	in.cur = next
	return Ident{Name: tok.Text, Span: tok.Span}, nil
}

var pathKeywords = map[string]bool{"self": true, "Self": true, "super": true, "crate": true}

func isPathSegmentStart(c Cursor) bool {
	tok, _, ok := c.Token()
	if !ok {
		return false
	}
	return tok.Kind == tokens.KindIdent || (tok.Kind == tokens.KindKeyword && pathKeywords[tok.Text])
}

// isPathStart matches the beginning of a path without a qualified self.
func isPathStart(c Cursor) bool {
	return isPathSegmentStart(c) || isPunctExact("::")(c)
}

func parsePathSegmentIdent(in *Input) (Ident, error) {
	tok, next, ok := in.cur.Token()
	if !ok || !isPathSegmentStart(in.cur) {
		return Ident{}, in.Error("identifier")
	}
	in.cur = next
	return Ident{Name: tok.Text, Span: tok.Span}, nil
}

// isColon2Segment matches :: followed by a segment name.
func isColon2Segment(c Cursor) bool {
	_, next, ok := punctAt(c, "::")
	return ok && isPathSegmentStart(next)
}

// isTurbofish matches ::<.
func isTurbofish(c Cursor) bool {
	_, next, ok := punctAt(c, "::")
	return ok && isPunct("<")(next)
}

// isGenericOpen matches a < that starts an argument list rather than <= or
// <<=. << is accepted since the second < may open a qualified path.
func isGenericOpen(c Cursor) bool {
	op := longestOp(c)
	return op == "<" || op == "<<"
}

func parsePath(in *Input, style pathStyle) (*Path, error) {
	path := &Path{Leading: in.OptPunct("::")}
	if err := parsePathSegments(in, path, style); err != nil {
		return nil, err
	}
	return path, nil
}

// parsePathSegments appends segments to path until no :: segment follows.
func parsePathSegments(in *Input, path *Path, style pathStyle) error {
	for {
		ident, err := parsePathSegmentIdent(in)
		if err != nil {
			return err
		}
		seg := &PathSegment{Ident: ident}
		args, err := parsePathArguments(in, style)
		if err != nil {
			return err
		}
		seg.Args = args
		if !in.Peek(isColon2Segment) {
			path.Segments.pushPair(seg, nil)
			return nil
		}
		span, _ := in.Punct("::")
		path.Segments.pushPair(seg, &span)
	}
}

func parsePathArguments(in *Input, style pathStyle) (PathArguments, error) {
	switch style {
	case pathType:
		switch {
		case in.Peek(isTurbofish):
			colon2, _ := in.Punct("::")
			return parseAngleArgs(in, &colon2)
		case in.Peek(isGenericOpen):
			return parseAngleArgs(in, nil)
		case in.Peek(isGroup(tokens.Paren)):
			return parseParenthesizedArgs(in)
		}
	case pathExpr:
		if in.Peek(isTurbofish) {
			colon2, _ := in.Punct("::")
			return parseAngleArgs(in, &colon2)
		}
		if in.Peek(isGenericOpen) {
			fork := in.Fork()
			args, err := parseAngleArgs(fork, nil)
			if err == nil && fork.Peek(isPunctExact("::")) {
				in.Commit(fork)
				return args, nil
			}
		}
	}
	return nil, nil
}

func parseAngleArgs(in *Input, colon2 *Span) (*AngleBracketedArgs, error) {
	lt, err := in.Punct("<")
	if err != nil {
		return nil, err
	}
	args, err := ParseTerminated(in, parseGenericArgument, ",", ListOptions{Stop: isPunct(">")})
	if err != nil {
		return nil, err
	}
	gt, err := in.Punct(">")
	if err != nil {
		return nil, err
	}
	return &AngleBracketedArgs{Colon2: colon2, Lt: lt, Args: args, Gt: gt}, nil
}

func parseGenericArgument(in *Input) (GenericArgument, error) {
	switch {
	case in.Peek(isLifetime) && !in.Peek2(isPunct("+")):
		lt, err := in.Lifetime()
		if err != nil {
			return nil, err
		}
		return &LifetimeArg{Lifetime: lt}, nil
	case in.Peek(isLiteral):
		lit, err := parseLit(in)
		if err != nil {
			return nil, err
		}
		return &ConstArg{Expr: &ExprLit{Lit: lit}}, nil
	case in.Peek(isPunct("-")) && in.Peek2(isLiteral):
		minus, _ := in.Punct("-")
		lit, err := parseLit(in)
		if err != nil {
			return nil, err
		}
		return &ConstArg{Expr: &ExprUnary{Op: UnOp{Kind: OpNeg, Span: minus}, Expr: &ExprLit{Lit: lit}}}, nil
	case in.Peek(isGroup(tokens.Brace)):
		block, err := parseBlock(in)
		if err != nil {
			return nil, err
		}
		return &ConstArg{Expr: &ExprBlock{Block: block}}, nil
	case in.Peek(isIdent) && in.Peek2(isPunctExact("=")):
		ident, _ := parseIdent(in)
		eq, _ := in.Punct("=")
		ty, err := parseType(in, true)
		if err != nil {
			return nil, err
		}
		return &BindingArg{Ident: ident, Eq: eq, Type: ty}, nil
	case in.Peek(isIdent) && in.Peek2(isPunctExact(":")):
		ident, _ := parseIdent(in)
		colon, _ := in.Punct(":")
		bounds, err := parseBounds(in, true)
		if err != nil {
			return nil, err
		}
		return &ConstraintArg{Ident: ident, Colon: colon, Bounds: bounds}, nil
	case in.Peek(isIdent) && in.Peek2(isGenericOpen):
		// Item<'a> = T is a binding with generics; anything else is a type.
		return Alt(in, genericBindingArg, typeArgInList)
	}
	ty, err := parseType(in, true)
	if err != nil {
		return nil, err
	}
	return &TypeArg{Type: ty}, nil
}

func genericBindingArg(in *Input) (GenericArgument, error) {
	b, err := parseGenericBinding(in)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// typeArgInList parses a type argument that must end the argument.
func typeArgInList(in *Input) (GenericArgument, error) {
	ty, err := parseType(in, true)
	if err != nil {
		return nil, err
	}
	if !in.IsEmpty() && !in.Peek(isPunct(",")) && !in.Peek(isPunct(">")) {
		return nil, in.Error("`,` or `>`")
	}
	return &TypeArg{Type: ty}, nil
}

func parseGenericBinding(in *Input) (*BindingArg, error) {
	ident, err := parseIdent(in)
	if err != nil {
		return nil, err
	}
	generics, err := parseAngleArgs(in, nil)
	if err != nil {
		return nil, err
	}
	if !in.Peek(isPunctExact("=")) {
		return nil, in.Error("`=`")
	}
	eq, _ := in.Punct("=")
	ty, err := parseType(in, true)
	if err != nil {
		return nil, err
	}
	return &BindingArg{Ident: ident, Generics: generics, Eq: eq, Type: ty}, nil
}

func parseParenthesizedArgs(in *Input) (*ParenthesizedArgs, error) {
	inputs, paren, err := Delimited(in, tokens.Paren, func(in *Input) (Punctuated[Type], error) {
		return ParseTerminated(in, parseTypePlus, ",", ListOptions{})
	})
	if err != nil {
		return nil, err
	}
	out, err := parseReturnType(in, false)
	if err != nil {
		return nil, err
	}
	return &ParenthesizedArgs{Paren: paren, Inputs: inputs, Output: out}, nil
}

func parseReturnType(in *Input, allowPlus bool) (*ReturnType, error) {
	arrow := in.OptPunct("->")
	if arrow == nil {
		return nil, nil
	}
	ty, err := parseType(in, allowPlus)
	if err != nil {
		return nil, err
	}
	return &ReturnType{Arrow: *arrow, Type: ty}, nil
}

// parseQPath parses <T as Trait>::rest or <T>::rest. The returned path holds
// the trait segments followed by the rest.
func parseQPath(in *Input, style pathStyle) (*QSelf, *Path, error) {
	lt, err := in.Punct("<")
	if err != nil {
		return nil, nil, err
	}
	ty, err := parseType(in, false)
	if err != nil {
		return nil, nil, err
	}
	qself := &QSelf{Lt: lt, Type: ty}
	path := &Path{}
	if as := in.OptKeyword("as"); as != nil {
		qself.As = as
		path.Leading = in.OptPunct("::")
		if err := parsePathSegments(in, path, pathType); err != nil {
			return nil, nil, err
		}
		qself.Position = path.Segments.Len()
	}
	gt, err := in.Punct(">")
	if err != nil {
		return nil, nil, err
	}
	qself.Gt = gt
	colon2, err := in.Punct("::")
	if err != nil {
		return nil, nil, err
	}
	if n := path.Segments.Len(); n > 0 {
		path.Segments.pairs[n-1].Punct = &colon2
	} else {
		path.Leading = &colon2
	}
	if err := parsePathSegments(in, path, style); err != nil {
		return nil, nil, err
	}
	return qself, path, nil
}

// parseMacroTail parses the !(...) after a macro path.
func parseMacroTail(in *Input, path *Path) (*Macro, error) {
	bang, err := in.Punct("!")
	if err != nil {
		return nil, err
	}
	stream, delim, err := in.AnyGroup()
	if err != nil {
		return nil, err
	}
	return &Macro{Path: path, Bang: bang, Delim: delim, Tokens: stream}, nil
}

// isMacroBang matches a ! that is not != and is followed by a group.
func isMacroBang(c Cursor) bool {
	if !isPunctExact("!")(c) {
		return false
	}
	_, next, _ := punctAt(c, "!")
	return isGroup(tokens.Paren)(next) || isGroup(tokens.Bracket)(next) || isGroup(tokens.Brace)(next)
}
