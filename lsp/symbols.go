package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/rsyn/format"
	"github.com/dhamidi/rsyn/rust/syntax"
)

// Symbols lists the items of a parsed document as an outline: modules,
// types and traits contain their members.
func Symbols(doc *Document) []protocol.DocumentSymbol {
	if doc == nil || doc.File == nil {
		return nil
	}
	return itemSymbols(doc.Text, doc.File.Items)
}

func itemSymbols(text string, items []syntax.Item) []protocol.DocumentSymbol {
	var out []protocol.DocumentSymbol
	for _, item := range items {
		if sym, ok := itemSymbol(text, item); ok {
			out = append(out, sym)
		}
	}
	return out
}

func itemSymbol(text string, item syntax.Item) (protocol.DocumentSymbol, bool) {
	sym := func(name syntax.Ident, kind protocol.SymbolKind) protocol.DocumentSymbol {
		return protocol.DocumentSymbol{
			Name:           name.Name,
			Kind:           kind,
			Range:          toRange(text, syntax.SpanOf(item)),
			SelectionRange: toRange(text, name.Span),
		}
	}
	switch it := item.(type) {
	case *syntax.ItemFn:
		return sym(it.Sig.Ident, protocol.SymbolKindFunction), true
	case *syntax.ItemStruct:
		s := sym(it.Ident, protocol.SymbolKindStruct)
		s.Children = fieldSymbols(text, it.Fields)
		return s, true
	case *syntax.ItemUnion:
		s := sym(it.Ident, protocol.SymbolKindStruct)
		s.Children = fieldSymbols(text, it.Fields)
		return s, true
	case *syntax.ItemEnum:
		s := sym(it.Ident, protocol.SymbolKindEnum)
		for _, v := range it.Variants.Values() {
			s.Children = append(s.Children, protocol.DocumentSymbol{
				Name:           v.Ident.Name,
				Kind:           protocol.SymbolKindEnumMember,
				Range:          toRange(text, syntax.SpanOf(v)),
				SelectionRange: toRange(text, v.Ident.Span),
			})
		}
		return s, true
	case *syntax.ItemTrait:
		s := sym(it.Ident, protocol.SymbolKindInterface)
		for _, ti := range it.Items {
			if child, ok := traitItemSymbol(text, ti); ok {
				s.Children = append(s.Children, child)
			}
		}
		return s, true
	case *syntax.ItemImpl:
		name := strings.TrimSpace(format.Render(syntax.Print(it.SelfTy)))
		if it.Trait != nil {
			name = it.Trait.Path.String() + " for " + name
		}
		s := protocol.DocumentSymbol{
			Name:           "impl " + name,
			Kind:           protocol.SymbolKindClass,
			Range:          toRange(text, syntax.SpanOf(it)),
			SelectionRange: toRange(text, syntax.SpanOf(it.SelfTy)),
			Children:       itemSymbols(text, it.Items),
		}
		for i := range s.Children {
			if s.Children[i].Kind == protocol.SymbolKindFunction {
				s.Children[i].Kind = protocol.SymbolKindMethod
			}
		}
		return s, true
	case *syntax.ItemMod:
		s := sym(it.Ident, protocol.SymbolKindModule)
		s.Children = itemSymbols(text, it.Items)
		return s, true
	case *syntax.ItemConst:
		return sym(it.Ident, protocol.SymbolKindConstant), true
	case *syntax.ItemStatic:
		return sym(it.Ident, protocol.SymbolKindVariable), true
	case *syntax.ItemType:
		return sym(it.Ident, protocol.SymbolKindTypeParameter), true
	case *syntax.ItemMacro:
		if it.Ident != nil {
			return sym(*it.Ident, protocol.SymbolKindFunction), true
		}
	}
	return protocol.DocumentSymbol{}, false
}

func traitItemSymbol(text string, ti syntax.TraitItem) (protocol.DocumentSymbol, bool) {
	var name syntax.Ident
	var kind protocol.SymbolKind
	switch t := ti.(type) {
	case *syntax.TraitItemFn:
		name, kind = t.Sig.Ident, protocol.SymbolKindMethod
	case *syntax.TraitItemConst:
		name, kind = t.Ident, protocol.SymbolKindConstant
	case *syntax.TraitItemType:
		name, kind = t.Ident, protocol.SymbolKindTypeParameter
	default:
		return protocol.DocumentSymbol{}, false
	}
	return protocol.DocumentSymbol{
		Name:           name.Name,
		Kind:           kind,
		Range:          toRange(text, syntax.SpanOf(ti)),
		SelectionRange: toRange(text, name.Span),
	}, true
}

func fieldSymbols(text string, fields syntax.Fields) []protocol.DocumentSymbol {
	named, ok := fields.(*syntax.FieldsNamed)
	if !ok || named == nil {
		return nil
	}
	var out []protocol.DocumentSymbol
	for _, f := range named.Named.Values() {
		if f.Ident == nil {
			continue
		}
		out = append(out, protocol.DocumentSymbol{
			Name:           f.Ident.Name,
			Kind:           protocol.SymbolKindField,
			Range:          toRange(text, syntax.SpanOf(f)),
			SelectionRange: toRange(text, f.Ident.Span),
		})
	}
	return out
}
