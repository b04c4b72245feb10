package format

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/dhamidi/rsyn/rust/syntax"
)

// TreeEncoder writes one line per node, indented by depth:
//
//	ItemFn
//	  Signature
//	    Ident	main
//	  Block
//	    StmtExpr
//	      ExprMacro
//	        Macro	"hi"
//	          Path	println
//
// Leaves, operators and paths carry their text after a tab.
type TreeEncoder struct {
	w io.Writer
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(node syntax.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalText(node syntax.Node) ([]byte, error) {
	var sb strings.Builder
	depth := 0
	syntax.Inspect(node, func(n syntax.Node) bool {
		if n == nil {
			depth--
			return false
		}
		if v, ok := n.(syntax.Visibility); ok && v.Kind == syntax.VisInherited {
			return false
		}
		fmt.Fprintf(&sb, "%s%s", strings.Repeat("  ", depth), kindName(n))
		if label := nodeLabel(n); label != "" {
			fmt.Fprintf(&sb, "\t%s", label)
		}
		sb.WriteByte('\n')
		depth++
		return true
	})
	return []byte(sb.String()), nil
}

func kindName(n syntax.Node) string {
	t := reflect.TypeOf(n)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// nodeLabel is the short text shown next to a node's kind.
func nodeLabel(n syntax.Node) string {
	switch n := n.(type) {
	case syntax.Ident:
		return n.Name
	case syntax.Lifetime:
		return n.String()
	case syntax.Member:
		return n.Name
	case *syntax.Lit:
		return n.Text
	case *syntax.ExprBinary:
		return n.Op.Kind.String()
	case *syntax.ExprAssignOp:
		return n.Op.Kind.String()
	case *syntax.ExprUnary:
		return n.Op.Kind.String()
	case *syntax.ExprRange:
		return n.Limits.String()
	case *syntax.PatRange:
		return n.Limits.String()
	case *syntax.Path:
		return n.String()
	case syntax.Visibility:
		return strings.TrimSpace(Render(syntax.Print(n)))
	case *syntax.Macro:
		return strings.TrimSpace(Render(n.Tokens))
	}
	return ""
}
