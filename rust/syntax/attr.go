package syntax

import "github.com/dhamidi/rsyn/rust/tokens"

func isOuterAttr(c Cursor) bool {
	_, next, ok := punctAt(c, "#")
	return ok && isGroup(tokens.Bracket)(next)
}

func isInnerAttr(c Cursor) bool {
	_, next, ok := punctAt(c, "#")
	if !ok {
		return false
	}
	_, next, ok = punctAt(next, "!")
	return ok && isGroup(tokens.Bracket)(next)
}

func parseOuterAttrs(in *Input) ([]*Attribute, error) {
	var attrs []*Attribute
	for in.Peek(isOuterAttr) {
		attr, err := parseAttribute(in)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attr)
	}
	return attrs, nil
}

func parseInnerAttrs(in *Input) ([]*Attribute, error) {
	var attrs []*Attribute
	for in.Peek(isInnerAttr) {
		attr, err := parseAttribute(in)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attr)
	}
	return attrs, nil
}

// parseAttribute parses #[...] or #![...]. The content is a path followed by
// arbitrary tokens, kept unparsed.
func parseAttribute(in *Input) (*Attribute, error) {
	pound, err := in.Punct("#")
	if err != nil {
		return nil, err
	}
	attr := &Attribute{Pound: pound, Inner: in.OptPunct("!")}
	type content struct {
		path *Path
		rest tokens.Stream
	}
	c, bracket, err := Delimited(in, tokens.Bracket, func(in *Input) (content, error) {
		path, err := parsePath(in, pathMod)
		if err != nil {
			return content{}, err
		}
		return content{path: path, rest: in.RestStream()}, nil
	})
	if err != nil {
		return nil, err
	}
	attr.Bracket = bracket
	attr.Path = c.path
	attr.Tokens = c.rest
	return attr, nil
}

// parseVisibility never fails on a missing visibility; it returns VisInherited.
func parseVisibility(in *Input) (Visibility, error) {
	if in.Peek(isKeyword("crate")) && !in.Peek2(isPunct(":")) {
		span, _ := in.Keyword("crate")
		return Visibility{Kind: VisCrate, Crate: span}, nil
	}
	pubSpan := in.OptKeyword("pub")
	if pubSpan == nil {
		return Visibility{Kind: VisInherited}, nil
	}
	vis := Visibility{Kind: VisPublic, Pub: *pubSpan}
	if !in.Peek(isGroup(tokens.Paren)) {
		return vis, nil
	}

	// pub(crate), pub(self), pub(super) and pub(in path). Anything else in
	// parentheses belongs to the next construct, as in a tuple struct field.
	type restriction struct {
		in   *Span
		path *Path
	}
	fork := in.Fork()
	r, paren, err := Delimited(fork, tokens.Paren, func(in *Input) (restriction, error) {
		if span := in.OptKeyword("in"); span != nil {
			path, err := parsePath(in, pathMod)
			return restriction{in: span, path: path}, err
		}
		for _, kw := range []string{"crate", "self", "super"} {
			if span := in.OptKeyword(kw); span != nil {
				return restriction{path: NewPath(kw).withSpan(*span)}, nil
			}
		}
		return restriction{}, in.Error("`crate`, `self`, `super` or `in`")
	})
	if err != nil {
		return vis, nil
	}
	in.Commit(fork)
	vis.Kind = VisRestricted
	vis.Paren = paren
	vis.In = r.in
	vis.Path = r.path
	return vis, nil
}

func (p *Path) withSpan(span Span) *Path {
	if p.Segments.Len() == 1 {
		p.Segments.At(0).Ident.Span = span
	}
	return p
}
