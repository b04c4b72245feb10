package lsp

import (
	"sort"
	"sync"

	"github.com/dhamidi/rsyn/rust/syntax"
)

// Document is the latest text of an open file and the result of parsing it.
type Document struct {
	URI     string
	Path    string
	Version int32
	Text    string
	File    *syntax.File
	Err     error
}

// Documents holds the open documents of one client session.
type Documents struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

func NewDocuments() *Documents {
	return &Documents{docs: make(map[string]*Document)}
}

// Update replaces the text of uri and reparses it. Updates older than the
// stored version are ignored and return the stored document.
func (d *Documents) Update(uri string, version int32, text string) *Document {
	path, err := uriToPath(uri)
	if err != nil {
		path = uri
	}
	file, perr := syntax.ParseFileString(text, syntax.WithFile(path))
	doc := &Document{URI: uri, Path: path, Version: version, Text: text, File: file, Err: perr}

	d.mu.Lock()
	defer d.mu.Unlock()
	if old, ok := d.docs[uri]; ok && old.Version > version {
		return old
	}
	d.docs[uri] = doc
	return doc
}

func (d *Documents) Get(uri string) *Document {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.docs[uri]
}

func (d *Documents) Close(uri string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.docs, uri)
}

func (d *Documents) URIs() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, 0, len(d.docs))
	for uri := range d.docs {
		out = append(out, uri)
	}
	sort.Strings(out)
	return out
}
