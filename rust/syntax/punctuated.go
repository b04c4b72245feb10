package syntax

import (
	"fmt"

	"github.com/dhamidi/rsyn/rust/tokens"
)

// Pair is one element of a Punctuated list with the separator following it.
type Pair[T any] struct {
	Value T
	Punct *tokens.Span
}

// Punctuated is a sequence of values separated by punctuation. Every pair
// except the last carries a separator; a separator on the last pair is a
// trailing separator.
type Punctuated[T any] struct {
	pairs []Pair[T]
}

func NewPunctuated[T any](values ...T) Punctuated[T] {
	p := Punctuated[T]{pairs: make([]Pair[T], len(values))}
	for i, v := range values {
		p.pairs[i].Value = v
		if i < len(values)-1 {
			p.pairs[i].Punct = &tokens.Span{}
		}
	}
	return p
}

func (p *Punctuated[T]) Len() int {
	return len(p.pairs)
}

func (p *Punctuated[T]) IsEmpty() bool {
	return len(p.pairs) == 0
}

func (p *Punctuated[T]) Pairs() []Pair[T] {
	return p.pairs
}

func (p *Punctuated[T]) At(i int) T {
	return p.pairs[i].Value
}

func (p *Punctuated[T]) Values() []T {
	out := make([]T, len(p.pairs))
	for i, pair := range p.pairs {
		out[i] = pair.Value
	}
	return out
}

func (p *Punctuated[T]) Last() (T, bool) {
	if len(p.pairs) == 0 {
		var zero T
		return zero, false
	}
	return p.pairs[len(p.pairs)-1].Value, true
}

// Trailing reports whether the list ends with a separator.
func (p *Punctuated[T]) Trailing() bool {
	return len(p.pairs) > 0 && p.pairs[len(p.pairs)-1].Punct != nil
}

// Push appends a value, adding a separator after the previous one if needed.
// The pairs are copied first, so lists sharing storage with p are unchanged.
func (p *Punctuated[T]) Push(v T) {
	pairs := p.own(1)
	if n := len(pairs); n > 0 && pairs[n-1].Punct == nil {
		pairs[n-1].Punct = &tokens.Span{}
	}
	p.pairs = append(pairs, Pair[T]{Value: v})
}

// PushPunct records a separator after the last value.
func (p *Punctuated[T]) PushPunct(span tokens.Span) {
	n := len(p.pairs)
	if n == 0 || p.pairs[n-1].Punct != nil {
		panic("syntax: Punctuated.PushPunct without a preceding value")
	}
	pairs := p.own(0)
	pairs[n-1].Punct = &span
	p.pairs = pairs
}

// own returns a private copy of the pairs with room for extra more.
func (p *Punctuated[T]) own(extra int) []Pair[T] {
	pairs := make([]Pair[T], len(p.pairs), len(p.pairs)+extra)
	copy(pairs, p.pairs)
	return pairs
}

func (p *Punctuated[T]) pushPair(v T, punct *tokens.Span) {
	p.pairs = append(p.pairs, Pair[T]{Value: v, Punct: punct})
}

// MapPunctuated builds a list of the same shape with every value transformed.
func MapPunctuated[T, U any](p Punctuated[T], f func(T) U) Punctuated[U] {
	out := Punctuated[U]{pairs: make([]Pair[U], len(p.pairs))}
	for i, pair := range p.pairs {
		out.pairs[i] = Pair[U]{Value: f(pair.Value), Punct: pair.Punct}
	}
	return out
}

// Trailing is a per-call-site policy for a separator after the last element.
type Trailing int

const (
	TrailingOptional Trailing = iota
	TrailingForbidden
	TrailingRequired
)

type ListOptions struct {
	Trailing Trailing
	// NonEmpty requires at least one element.
	NonEmpty bool
	// Stop reports that the list has ended before the scope does.
	Stop func(Cursor) bool
}

// ParseTerminated parses elements separated by sep until the end of the
// enclosing scope, a Stop match, or an element without a following separator.
func ParseTerminated[T any](in *Input, elem Rule[T], sep string, opts ListOptions) (Punctuated[T], error) {
	if sep == "" {
		panic("syntax: ParseTerminated with an empty separator")
	}
	switch opts.Trailing {
	case TrailingOptional, TrailingForbidden, TrailingRequired:
	default:
		panic(fmt.Sprintf("syntax: invalid trailing policy %d", opts.Trailing))
	}

	var list Punctuated[T]
	stopped := func() bool {
		return in.IsEmpty() || (opts.Stop != nil && opts.Stop(in.cur))
	}
	for {
		if stopped() {
			break
		}
		v, err := Parse(in, elem)
		if err != nil {
			return list, err
		}
		if !in.Peek(isPunct(sep)) {
			list.pushPair(v, nil)
			break
		}
		span, _ := in.Punct(sep)
		list.pushPair(v, &span)
	}

	if opts.NonEmpty && list.IsEmpty() {
		return list, in.Error("at least one element")
	}
	switch opts.Trailing {
	case TrailingForbidden:
		if list.Trailing() {
			last := list.pairs[len(list.pairs)-1].Punct
			return list, in.Errorf(*last, "unexpected trailing `%s`", sep)
		}
	case TrailingRequired:
		if !list.IsEmpty() && !list.Trailing() {
			return list, in.Error("`" + sep + "`")
		}
	}
	return list, nil
}

// ParseSeparatedNonEmpty parses elem (sep elem)* without a trailing separator,
// stopping as soon as no separator follows.
func ParseSeparatedNonEmpty[T any](in *Input, elem Rule[T], sep string) (Punctuated[T], error) {
	var list Punctuated[T]
	for {
		v, err := Parse(in, elem)
		if err != nil {
			return list, err
		}
		if !in.Peek(isPunctExact(sep)) {
			list.pushPair(v, nil)
			return list, nil
		}
		span, _ := in.Punct(sep)
		list.pushPair(v, &span)
	}
}
