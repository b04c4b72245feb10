// Package lsp is a language server for Rust sources that reports parse
// errors as diagnostics and offers formatting and a document outline.
package lsp

import (
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/dhamidi/rsyn/format"
	"github.com/dhamidi/rsyn/rust/syntax"
	"github.com/dhamidi/rsyn/rust/tokens"
)

const lsName = "rsyn"

var log = commonlog.GetLogger("rsyn.lsp")

type Server struct {
	docs    *Documents
	handler protocol.Handler
	server  *server.Server
	version string
}

func NewServer(version string) *Server {
	ls := &Server{
		docs:    NewDocuments(),
		version: version,
	}

	ls.handler = protocol.Handler{
		Initialize:                 ls.initialize,
		Initialized:                ls.initialized,
		Shutdown:                   ls.shutdown,
		SetTrace:                   ls.setTrace,
		TextDocumentDidOpen:        ls.textDocumentDidOpen,
		TextDocumentDidChange:      ls.textDocumentDidChange,
		TextDocumentDidClose:       ls.textDocumentDidClose,
		TextDocumentDidSave:        ls.textDocumentDidSave,
		TextDocumentFormatting:     ls.textDocumentFormatting,
		TextDocumentDocumentSymbol: ls.textDocumentDocumentSymbol,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) Documents() *Documents {
	return ls.docs
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	if params.ClientInfo != nil {
		log.Infof("initialize from %s", params.ClientInfo.Name)
	}

	capabilities := ls.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.DocumentFormattingProvider = true
	capabilities.DocumentSymbolProvider = true

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := ls.docs.Update(params.TextDocument.URI, params.TextDocument.Version, params.TextDocument.Text)
	ls.publish(ctx, doc)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		log.Warningf("%s: ignoring incremental change", params.TextDocument.URI)
		return nil
	}
	doc := ls.docs.Update(params.TextDocument.URI, params.TextDocument.Version, textChange.Text)
	ls.publish(ctx, doc)
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text == nil {
		return nil
	}
	version := int32(0)
	if old := ls.docs.Get(params.TextDocument.URI); old != nil {
		version = old.Version
	}
	doc := ls.docs.Update(params.TextDocument.URI, version, *params.Text)
	ls.publish(ctx, doc)
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.docs.Close(params.TextDocument.URI)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *Server) textDocumentFormatting(ctx *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	return FormatEdits(ls.docs.Get(params.TextDocument.URI)), nil
}

func (ls *Server) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	return Symbols(ls.docs.Get(params.TextDocument.URI)), nil
}

func (ls *Server) publish(ctx *glsp.Context, doc *Document) {
	diags := Diagnostics(doc)
	if doc.Err != nil {
		log.Debugf("%s: %v", doc.Path, doc.Err)
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         doc.URI,
		Diagnostics: diags,
	})
}

// FormatEdits replaces the whole document with its rendered form. Documents
// that do not parse, or that have plain comments the renderer would drop,
// are left alone.
func FormatEdits(doc *Document) []protocol.TextEdit {
	if doc == nil || doc.File == nil {
		return nil
	}
	lexer := tokens.NewLexer([]byte(doc.Text), doc.Path)
	if _, err := lexer.Stream(); err != nil || len(lexer.Comments()) > 0 {
		log.Infof("%s: not formatting, document has comments", doc.Path)
		return nil
	}
	formatted := format.Render(syntax.Print(doc.File))
	if formatted == doc.Text {
		return []protocol.TextEdit{}
	}
	return []protocol.TextEdit{{
		Range:   protocol.Range{End: endOf(doc.Text)},
		NewText: formatted,
	}}
}

func endOf(text string) protocol.Position {
	var line, char protocol.UInteger
	for _, r := range text {
		if r == '\n' {
			line++
			char = 0
			continue
		}
		if r >= 0x10000 {
			char += 2
		} else {
			char++
		}
	}
	return protocol.Position{Line: line, Character: char}
}
