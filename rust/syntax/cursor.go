package syntax

import "github.com/dhamidi/rsyn/rust/tokens"

type entryKind int

const (
	entryToken entryKind = iota
	entryGroup
	entryEnd
)

type entry struct {
	kind  entryKind
	tok   tokens.Token
	group *tokens.Group
	// For a group entry, the index of its matching end entry.
	end int
}

// Buffer flattens a token tree so that cursors are plain indices. Each group
// is followed by its interior and an end marker; the end marker of the whole
// stream sits at the last index.
type Buffer struct {
	entries []entry
	eof     tokens.Span
}

func NewBuffer(stream tokens.Stream) *Buffer {
	b := &Buffer{}
	b.push(stream)
	b.entries = append(b.entries, entry{kind: entryEnd})
	if sp := stream.Span(); !sp.IsZero() {
		b.eof = tokens.Span{Start: sp.End, End: sp.End}
	}
	return b
}

func (b *Buffer) push(stream tokens.Stream) {
	for _, tt := range stream {
		switch tt := tt.(type) {
		case tokens.Token:
			b.entries = append(b.entries, entry{kind: entryToken, tok: tt})
		case *tokens.Group:
			at := len(b.entries)
			b.entries = append(b.entries, entry{kind: entryGroup, group: tt})
			b.push(tt.Stream)
			b.entries[at].end = len(b.entries)
			b.entries = append(b.entries, entry{kind: entryEnd, group: tt})
		}
	}
}

// Begin returns a cursor over the whole buffer.
func (b *Buffer) Begin() Cursor {
	return Cursor{buf: b, idx: 0, end: len(b.entries) - 1}
}

// Cursor is an immutable position in a Buffer. Copying a Cursor forks it;
// nothing a copy does can affect the original.
type Cursor struct {
	buf *Buffer
	idx int
	end int
}

// Eof reports whether the cursor reached the end of its group scope.
func (c Cursor) Eof() bool {
	return c.idx >= c.end
}

// Offset is the position of the cursor in the flattened buffer. A cursor that
// consumed more input has a larger offset, whatever group it is in.
func (c Cursor) Offset() int {
	return c.idx
}

func (c Cursor) entry() entry {
	return c.buf.entries[c.idx]
}

// Token returns the next leaf token. Groups and the end of scope yield false.
func (c Cursor) Token() (tokens.Token, Cursor, bool) {
	if c.Eof() || c.entry().kind != entryToken {
		return tokens.Token{}, c, false
	}
	return c.entry().tok, c.bump(), true
}

// Group enters the next tree if it is a group with the given delimiter. It
// returns a cursor over the interior and a cursor positioned after the group.
func (c Cursor) Group(delim tokens.Delimiter) (inner Cursor, g *tokens.Group, rest Cursor, ok bool) {
	if c.Eof() {
		return c, nil, c, false
	}
	e := c.entry()
	if e.kind != entryGroup || e.group.Delim != delim {
		return c, nil, c, false
	}
	inner = Cursor{buf: c.buf, idx: c.idx + 1, end: e.end}
	rest = Cursor{buf: c.buf, idx: e.end + 1, end: c.end}
	return inner, e.group, rest, true
}

// TokenTree returns the next tree, skipping over a whole group.
func (c Cursor) TokenTree() (tokens.TokenTree, Cursor, bool) {
	if c.Eof() {
		return nil, c, false
	}
	e := c.entry()
	switch e.kind {
	case entryToken:
		return e.tok, c.bump(), true
	case entryGroup:
		return e.group, Cursor{buf: c.buf, idx: e.end + 1, end: c.end}, true
	}
	return nil, c, false
}

// Rest returns the trees between the cursor and the end of its scope.
func (c Cursor) Rest() tokens.Stream {
	var out tokens.Stream
	for {
		tt, next, ok := c.TokenTree()
		if !ok {
			return out
		}
		out = append(out, tt)
		c = next
	}
}

// Span is the span of the next tree, or of the closing delimiter (or end of
// input) when the cursor is at the end of its scope.
func (c Cursor) Span() tokens.Span {
	e := c.entry()
	switch e.kind {
	case entryToken:
		return e.tok.Span
	case entryGroup:
		return e.group.Open
	}
	if e.group != nil {
		return e.group.Close
	}
	return c.buf.eof
}

func (c Cursor) bump() Cursor {
	return Cursor{buf: c.buf, idx: c.idx + 1, end: c.end}
}

// skip advances over n trees, returning false if the scope ends first.
func (c Cursor) skip(n int) (Cursor, bool) {
	for i := 0; i < n; i++ {
		_, next, ok := c.TokenTree()
		if !ok {
			return c, false
		}
		c = next
	}
	return c, true
}
