package format

import (
	"io"
	"strings"

	"github.com/dhamidi/rsyn/rust/tokens"
)

// Render turns a token stream into source text. Lexing the result yields
// the same token kinds, texts and punctuation spacing as stream; line breaks
// and indentation are chosen from the token structure alone.
func Render(stream tokens.Stream) string {
	r := &renderer{}
	r.stream(stream, true)
	if !r.lineStart {
		r.sb.WriteByte('\n')
	}
	return r.sb.String()
}

// TextEncoder writes the rendered form of token streams to w.
type TextEncoder struct {
	w io.Writer
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(stream tokens.Stream) error {
	_, err := io.WriteString(e.w, Render(stream))
	return err
}

type pieceKind int

const (
	pieceNone pieceKind = iota
	pieceWord
	pieceKeyword
	pieceLiteral
	pieceOp
	pieceOpen
	pieceClose
)

// piece is one unit of output: a word, a run of joint punctuation, or a
// delimiter.
type piece struct {
	kind   pieceKind
	text   string
	group  *tokens.Group
	binary bool
}

// pieces splits one level of a stream, joining runs of Joint punctuation
// into single operators.
func pieces(s tokens.Stream) []piece {
	var out []piece
	var op strings.Builder
	for i, tt := range s {
		if g, ok := tt.(*tokens.Group); ok {
			out = append(out, piece{kind: pieceOpen, text: g.Delim.Open(), group: g})
			continue
		}
		tok := tt.(tokens.Token)
		switch tok.Kind {
		case tokens.KindIdent, tokens.KindLifetime:
			out = append(out, piece{kind: pieceWord, text: tok.Text})
		case tokens.KindKeyword:
			out = append(out, piece{kind: pieceKeyword, text: tok.Text})
		case tokens.KindLiteral:
			out = append(out, piece{kind: pieceLiteral, text: tok.Text})
		case tokens.KindPunct:
			if tok.Text == "_" {
				out = append(out, piece{kind: pieceWord, text: tok.Text})
				continue
			}
			op.WriteString(tok.Text)
			if tok.Spacing == tokens.Joint && i+1 < len(s) && isPunctTree(s[i+1]) {
				continue
			}
			out = append(out, piece{kind: pieceOp, text: op.String()})
			op.Reset()
		}
	}
	return out
}

func isPunctTree(tt tokens.TokenTree) bool {
	tok, ok := tt.(tokens.Token)
	return ok && tok.Kind == tokens.KindPunct && tok.Text != "_"
}

// Operators always written with a space on both sides.
var spacedOps = map[string]bool{
	"=": true, "==": true, "!=": true, "<=": true, ">=": true, "=>": true, "->": true,
	"+=": true, "-=": true, "*=": true, "/=": true, "%=": true, "^=": true,
	"&=": true, "|=": true, "<<=": true, ">>=": true,
}

// Operators spaced only when they follow an operand.
var binaryOps = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "%": true, "^": true,
	"&": true, "&&": true, "||": true,
}

// Keywords that act as operands rather than introducing syntax.
var operandKeywords = map[string]bool{
	"self": true, "Self": true, "crate": true, "super": true, "true": true, "false": true,
}

type renderer struct {
	sb        strings.Builder
	indent    int
	lineStart bool
	prev      piece
	angles    int
}

func (r *renderer) newline() {
	if r.lineStart && r.sb.Len() > 0 {
		return
	}
	r.sb.WriteByte('\n')
	r.lineStart = true
}

func (r *renderer) emit(p piece) {
	switch {
	case r.lineStart:
		if r.sb.Len() > 0 {
			r.sb.WriteString(strings.Repeat("    ", r.indent))
		}
	case r.needSpace(p):
		r.sb.WriteByte(' ')
	}
	r.sb.WriteString(p.text)
	r.lineStart = false
	r.prev = p
}

func endsOperand(p piece) bool {
	switch p.kind {
	case pieceWord, pieceLiteral, pieceClose:
		return true
	case pieceKeyword:
		return operandKeywords[p.text]
	case pieceOp:
		return p.text == "?"
	}
	return false
}

func (r *renderer) needSpace(cur piece) bool {
	prev := r.prev
	if prev.kind == pieceNone || prev.kind == pieceOpen && prev.text != "{" {
		return false
	}
	if prev.kind == pieceLiteral && strings.HasSuffix(prev.text, ".") {
		return true
	}
	if cur.kind == pieceClose {
		return cur.text == "}" && prev.kind != pieceOpen
	}
	if prev.kind == pieceOpen {
		return true
	}

	word := func(k pieceKind) bool {
		return k == pieceWord || k == pieceKeyword || k == pieceLiteral
	}
	switch {
	case word(prev.kind) && word(cur.kind):
		return true
	case prev.kind == pieceWord && cur.kind == pieceOp && strings.HasPrefix(cur.text, "#"):
		// r#, b# and friends would lex as raw identifiers or strings.
		return true
	case prev.kind == pieceOp && cur.kind == pieceOp:
		return true
	}

	if cur.kind == pieceOp && (spacedOps[cur.text] || cur.binary) {
		return true
	}
	if prev.kind == pieceOp {
		switch {
		case spacedOps[prev.text] || prev.binary:
			return true
		case prev.text == "," || prev.text == ";" || prev.text == ":":
			return true
		case prev.text == ">" && (word(cur.kind) || cur.text == "{"):
			return true
		}
		return cur.text == "{"
	}

	switch cur.kind {
	case pieceOpen:
		if cur.text == "{" {
			return true
		}
		return prev.kind == pieceKeyword && !operandKeywords[prev.text] && prev.text != "pub"
	case pieceOp:
		if prev.kind == pieceKeyword && !operandKeywords[prev.text] {
			return !strings.ContainsAny(cur.text[:1], ".,;?:<")
		}
		return false
	}
	return prev.kind == pieceClose && word(cur.kind)
}

// stream renders one nesting level. block is true at top level and inside
// braces, where statements and items go on their own lines.
func (r *renderer) stream(s tokens.Stream, block bool) {
	ps := pieces(s)
	savedAngles := r.angles
	r.angles = 0
	defer func() { r.angles = savedAngles }()

	for i, p := range ps {
		var next *piece
		if i+1 < len(ps) {
			next = &ps[i+1]
		}
		if p.kind == pieceOp && binaryOps[p.text] && endsOperand(r.prev) {
			p.binary = true
		}
		if p.kind == pieceOpen {
			r.group(p.group)
			if block && p.group.Delim == tokens.Brace && breaksAfterBrace(next) {
				r.newline()
			}
			if block && p.group.Delim == tokens.Bracket && isAttrStart(ps, i) {
				r.newline()
			}
			continue
		}

		r.emit(p)
		if p.kind != pieceOp {
			continue
		}
		switch p.text {
		case "<":
			r.angles++
		case ">":
			if r.angles > 0 {
				r.angles--
			}
		case ">>":
			r.angles = max(r.angles-2, 0)
		}
		if block && (p.text == ";" || p.text == "," && r.angles == 0) {
			r.newline()
		}
	}
}

func (r *renderer) group(g *tokens.Group) {
	r.emit(piece{kind: pieceOpen, text: g.Delim.Open()})
	if g.Delim != tokens.Brace {
		r.stream(g.Stream, false)
		r.emit(piece{kind: pieceClose, text: g.Delim.Close()})
		return
	}
	if len(g.Stream) == 0 {
		r.emit(piece{kind: pieceClose, text: "}"})
		return
	}
	r.indent++
	r.newline()
	r.stream(g.Stream, true)
	r.indent--
	r.newline()
	r.emit(piece{kind: pieceClose, text: "}"})
}

// breaksAfterBrace reports whether a closing brace in block position ends a
// line: it does before another item or statement, but not before else or
// a continuing operator.
func breaksAfterBrace(next *piece) bool {
	if next == nil {
		return true
	}
	switch next.kind {
	case pieceWord, pieceLiteral, pieceOpen:
		return true
	case pieceKeyword:
		return next.text != "else" && next.text != "as"
	case pieceOp:
		return next.text == "#"
	}
	return false
}

// isAttrStart reports whether the bracket group at i closes #[...] or #![...].
func isAttrStart(ps []piece, i int) bool {
	switch {
	case i >= 1 && ps[i-1].kind == pieceOp && (ps[i-1].text == "#" || ps[i-1].text == "#!"):
		return true
	case i >= 2 && ps[i-1].kind == pieceOp && ps[i-1].text == "!" &&
		ps[i-2].kind == pieceOp && ps[i-2].text == "#":
		return true
	}
	return false
}
