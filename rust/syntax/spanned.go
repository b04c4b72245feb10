package syntax

import "github.com/dhamidi/rsyn/rust/tokens"

// SpanOf returns the source range covered by n: the join of every token the
// node prints to. Tokens with zero spans, such as separators the printer had
// to insert, do not contribute. A synthesized tree yields the zero Span.
func SpanOf(n Node) Span {
	if isNil(n) {
		return Span{}
	}
	return joinStream(Print(n))
}

func joinStream(s tokens.Stream) Span {
	var out Span
	for _, tt := range s {
		if g, ok := tt.(*tokens.Group); ok {
			out = out.Join(g.Open).Join(joinStream(g.Stream)).Join(g.Close)
			continue
		}
		out = out.Join(tt.TreeSpan())
	}
	return out
}
