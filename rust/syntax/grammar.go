package syntax

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"golang.org/x/exp/ebnf"
)

// GrammarStart is the production a whole source file matches.
const GrammarStart = "File"

//go:embed grammar.ebnf
var grammarSource []byte

// GrammarSource returns the EBNF description of the language the rules in
// this package accept. Lower-case productions are lexical.
func GrammarSource() []byte {
	return bytes.Clone(grammarSource)
}

// Grammar parses the embedded EBNF and verifies that every production is
// defined and reachable from GrammarStart.
func Grammar() (ebnf.Grammar, error) {
	return LoadGrammar("grammar.ebnf", bytes.NewReader(grammarSource), GrammarStart)
}

// LoadGrammar parses an EBNF grammar from r. If start is not empty the
// grammar is also verified from that production.
func LoadGrammar(name string, r io.Reader, start string) (ebnf.Grammar, error) {
	g, err := ebnf.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if start == "" {
		return g, nil
	}
	if err := ebnf.Verify(g, start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return g, nil
}
