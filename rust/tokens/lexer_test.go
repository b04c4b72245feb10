package tokens

import (
	"strings"
	"testing"
)

// flatten lists token texts with groups shown as their delimiters.
func flatten(s Stream) []string {
	var out []string
	for _, tt := range s {
		switch tt := tt.(type) {
		case Token:
			out = append(out, tt.Text)
		case *Group:
			out = append(out, tt.Delim.Open())
			out = append(out, flatten(tt.Stream)...)
			out = append(out, tt.Delim.Close())
		}
	}
	return out
}

func TestLex(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"fn main() {}", "fn main ( ) { }"},
		{"a::b<c>", "a : : b < c >"},
		{"x += 1", "x + = 1"},
		{"'a: loop {}", "'a : loop { }"},
		{"'x' b'y' \"s\" b\"t\"", "'x' b'y' \"s\" b\"t\""},
		{`r#"raw "str""#`, `r#"raw "str""#`},
		{"r#type", "r#type"},
		{"1.0 2. 3e10 0x1F 1u8 2.5f32", "1.0 2. 3e10 0x1F 1u8 2.5f32"},
		{"1..2", "1 . . 2"},
		{"x.0.1", "x . 0.1"},
		{"// comment\nfoo /* block /* nested */ */ bar", "foo bar"},
		{"_", "_"},
		{"[1, (2)]", "[ 1 , ( 2 ) ]"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s, err := LexString(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := strings.Join(flatten(s), " ")
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLexKinds(t *testing.T) {
	s, err := LexString("let x = 'a' + y")
	if err != nil {
		t.Fatal(err)
	}
	want := []Kind{KindKeyword, KindIdent, KindPunct, KindLiteral, KindPunct, KindIdent}
	if len(s) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(s), len(want))
	}
	for i, tt := range s {
		tok := tt.(Token)
		if tok.Kind != want[i] {
			t.Errorf("token %d (%s): got %v, want %v", i, tok.Text, tok.Kind, want[i])
		}
	}
	if lit := s[3].(Token).Lit; lit != LitChar {
		t.Errorf("got literal kind %v, want Char", lit)
	}
}

func TestLexLifetime(t *testing.T) {
	s, err := LexString("&'static str")
	if err != nil {
		t.Fatal(err)
	}
	tok := s[1].(Token)
	if tok.Kind != KindLifetime || tok.Text != "'static" {
		t.Errorf("got %v %q, want lifetime 'static", tok.Kind, tok.Text)
	}
}

func TestLexSpacing(t *testing.T) {
	tests := []struct {
		input string
		want  []Spacing
	}{
		{"::", []Spacing{Joint, Alone}},
		{"a: b", []Spacing{Alone}},
		{"->", []Spacing{Joint, Alone}},
		{"< <", []Spacing{Alone, Alone}},
		{"<<=", []Spacing{Joint, Joint, Alone}},
		{"&()", []Spacing{Alone}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s, err := LexString(tt.input)
			if err != nil {
				t.Fatal(err)
			}
			var got []Spacing
			for _, tt := range s {
				if tok, ok := tt.(Token); ok && tok.Kind == KindPunct {
					got = append(got, tok.Spacing)
				}
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d punct tokens, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("punct %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLexDocComments(t *testing.T) {
	s, err := LexString("/// Hello\n//! Inner\nfn f() {}")
	if err != nil {
		t.Fatal(err)
	}
	got := strings.Join(flatten(s), " ")
	want := `# [ doc = " Hello" ] # ! [ doc = " Inner" ] fn f ( ) { }`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLexPositions(t *testing.T) {
	s, err := Lex([]byte("fn\n  main"), "main.rs")
	if err != nil {
		t.Fatal(err)
	}
	tok := s[1].(Token)
	if tok.Span.Start.Line != 2 || tok.Span.Start.Column != 3 {
		t.Errorf("got %s, want 2:3", tok.Span.Start)
	}
	if tok.Span.Start.File != "main.rs" {
		t.Errorf("got file %q", tok.Span.Start.File)
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"(", "unclosed delimiter `(`"},
		{")", "unexpected closing delimiter `)`"},
		{"(]", "mismatched closing delimiter"},
		{`"abc`, "unterminated string literal"},
		{"/* abc", "unterminated block comment"},
		{"r#self", "cannot be a raw identifier"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := LexString(tt.input)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("got %q, want it to contain %q", err.Error(), tt.want)
			}
		})
	}
}

func TestSpanJoin(t *testing.T) {
	a := Span{Start: Position{Offset: 4, Line: 1, Column: 5}, End: Position{Offset: 6, Line: 1, Column: 7}}
	b := Span{Start: Position{Offset: 10, Line: 2, Column: 1}, End: Position{Offset: 12, Line: 2, Column: 3}}
	j := a.Join(b)
	if j.Start != a.Start || j.End != b.End {
		t.Errorf("got %v", j)
	}
	if got := a.Join(Span{}); got != a {
		t.Errorf("joining a zero span changed %v to %v", a, got)
	}
	if got := (Span{}).Join(b); got != b {
		t.Errorf("joining onto a zero span gave %v", got)
	}
}

func TestPunct(t *testing.T) {
	toks := Punct("..=", Span{})
	if len(toks) != 3 {
		t.Fatalf("got %d tokens", len(toks))
	}
	if toks[0].Spacing != Joint || toks[1].Spacing != Joint || toks[2].Spacing != Alone {
		t.Errorf("unexpected spacing %v %v %v", toks[0].Spacing, toks[1].Spacing, toks[2].Spacing)
	}
}

func TestLexerComments(t *testing.T) {
	l := NewLexer([]byte("// one\n/// doc\nfn f() { /* two */ }\n//! inner"), "")
	if _, err := l.Stream(); err != nil {
		t.Fatal(err)
	}
	got := l.Comments()
	if len(got) != 2 {
		t.Fatalf("got %d comments, want 2", len(got))
	}
	if got[0].Start.Line != 1 || got[1].Start.Line != 3 || got[1].Start.Column != 10 {
		t.Errorf("unexpected comment spans %v", got)
	}
}
