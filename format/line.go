package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/rsyn/rust/syntax"
)

// LineEncoder writes one tab-separated line per item, with a line for each
// field of a struct and each function of an impl or trait:
//
//	struct	shapes::Point	pub
//	field	x	f64	pub
//	fn	main	()	()	-
//
// Items inside inline modules are named by their module path.
type LineEncoder struct {
	w io.Writer
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(node syntax.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText(node syntax.Node) ([]byte, error) {
	var sb strings.Builder
	switch n := node.(type) {
	case *syntax.File:
		writeItems(&sb, "", n.Items)
	case syntax.Item:
		writeItems(&sb, "", []syntax.Item{n})
	default:
		return nil, fmt.Errorf("line format needs a file or an item, got %s", kindName(node))
	}
	return []byte(sb.String()), nil
}

func writeItems(sb *strings.Builder, prefix string, items []syntax.Item) {
	for _, item := range items {
		writeItem(sb, prefix, item)
	}
}

func writeItem(sb *strings.Builder, prefix string, item syntax.Item) {
	switch it := item.(type) {
	case *syntax.ItemFn:
		writeFn(sb, "fn", prefix+it.Sig.Ident.Name, it.Sig, it.Vis)
	case *syntax.ItemStruct:
		fmt.Fprintf(sb, "struct\t%s\t%s\n", prefix+it.Ident.Name, visStr(it.Vis))
		writeFields(sb, it.Fields)
	case *syntax.ItemUnion:
		fmt.Fprintf(sb, "union\t%s\t%s\n", prefix+it.Ident.Name, visStr(it.Vis))
		writeFields(sb, it.Fields)
	case *syntax.ItemEnum:
		fmt.Fprintf(sb, "enum\t%s\t%s\n", prefix+it.Ident.Name, visStr(it.Vis))
		for _, v := range it.Variants.Values() {
			fmt.Fprintf(sb, "variant\t%s\n", v.Ident.Name)
		}
	case *syntax.ItemTrait:
		fmt.Fprintf(sb, "trait\t%s\t%s\n", prefix+it.Ident.Name, visStr(it.Vis))
		for _, ti := range it.Items {
			if fn, ok := ti.(*syntax.TraitItemFn); ok {
				writeFn(sb, "method", fn.Sig.Ident.Name, fn.Sig, syntax.Visibility{})
			}
		}
	case *syntax.ItemImpl:
		name := nodeText(it.SelfTy)
		if it.Trait != nil {
			name = it.Trait.Path.String() + " for " + name
		}
		fmt.Fprintf(sb, "impl\t%s\n", name)
		for _, child := range it.Items {
			if fn, ok := child.(*syntax.ItemFn); ok {
				writeFn(sb, "method", fn.Sig.Ident.Name, fn.Sig, fn.Vis)
			}
		}
	case *syntax.ItemMod:
		fmt.Fprintf(sb, "mod\t%s\t%s\n", prefix+it.Ident.Name, visStr(it.Vis))
		writeItems(sb, prefix+it.Ident.Name+"::", it.Items)
	case *syntax.ItemConst:
		fmt.Fprintf(sb, "const\t%s\t%s\t%s\n", prefix+it.Ident.Name, nodeText(it.Type), visStr(it.Vis))
	case *syntax.ItemStatic:
		fmt.Fprintf(sb, "static\t%s\t%s\t%s\n", prefix+it.Ident.Name, nodeText(it.Type), visStr(it.Vis))
	case *syntax.ItemType:
		fmt.Fprintf(sb, "type\t%s\t%s\t%s\n", prefix+it.Ident.Name, nodeText(it.Ty), visStr(it.Vis))
	case *syntax.ItemUse:
		fmt.Fprintf(sb, "use\t%s\t%s\n", nodeText(it.Tree), visStr(it.Vis))
	}
}

func writeFn(sb *strings.Builder, kind, name string, sig *syntax.Signature, vis syntax.Visibility) {
	ret := "()"
	if sig.Output != nil {
		ret = nodeText(sig.Output.Type)
	}
	var params []string
	for _, arg := range sig.Inputs.Values() {
		params = append(params, nodeText(arg))
	}
	fmt.Fprintf(sb, "%s\t%s\t(%s)\t%s\t%s\n", kind, name, strings.Join(params, ", "), ret, visStr(vis))
}

func writeFields(sb *strings.Builder, fields syntax.Fields) {
	var list []*syntax.Field
	switch f := fields.(type) {
	case *syntax.FieldsNamed:
		list = f.Named.Values()
	case *syntax.FieldsUnnamed:
		list = f.Unnamed.Values()
	}
	for i, f := range list {
		name := fmt.Sprint(i)
		if f.Ident != nil {
			name = f.Ident.Name
		}
		fmt.Fprintf(sb, "field\t%s\t%s\t%s\n", name, nodeText(f.Type), visStr(f.Vis))
	}
}

func visStr(v syntax.Visibility) string {
	if v.Kind == syntax.VisInherited {
		return "-"
	}
	return nodeText(v)
}

func nodeText(n syntax.Node) string {
	return strings.TrimSpace(Render(syntax.Print(n)))
}
