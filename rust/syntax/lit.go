package syntax

import (
	"strings"

	"github.com/dhamidi/rsyn/rust/tokens"
)

func parseLit(in *Input) (*Lit, error) {
	tok, next, ok := in.cur.Token()
	if !ok {
		return nil, in.Error("literal")
	}
	var lit *Lit
	switch {
	case tok.Kind == tokens.KindLiteral:
		lit = &Lit{Kind: litKindOf(tok.Lit), Text: tok.Text, Span: tok.Span}
	case tok.Kind == tokens.KindKeyword && (tok.Text == "true" || tok.Text == "false"):
		lit = &Lit{Kind: LitBool, Text: tok.Text, Span: tok.Span}
	default:
		return nil, in.Error("literal")
	}
	if err := lit.validate(); err != nil {
		return nil, in.Errorf(lit.Span, "%s", err)
	}
	in.cur = next
	return lit, nil
}

// parseLitStr accepts only an unsuffixed string literal, as used for ABIs.
func parseLitStr(in *Input) (*Lit, error) {
	lit, err := parseLit(in)
	if err != nil {
		return nil, err
	}
	if lit.Kind != LitStr {
		return nil, in.Errorf(lit.Span, "expected string literal")
	}
	return lit, nil
}

// splitFloatIndex splits the float token of x.0.1 into its two tuple indices.
func splitFloatIndex(lit *Lit) (Member, Member, bool) {
	if lit.Kind != LitFloat || lit.Suffix() != "" {
		return Member{}, Member{}, false
	}
	first, second, found := strings.Cut(lit.Text, ".")
	if !found || !isDecimal(first) || !isDecimal(second) {
		return Member{}, Member{}, false
	}
	return Member{Name: first, Span: lit.Span, Unnamed: true},
		Member{Name: second, Span: lit.Span, Unnamed: true}, true
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
