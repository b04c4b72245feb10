package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/dhamidi/rsyn/rust/syntax"
	"github.com/dhamidi/rsyn/rust/tokens"
)

// ASTJSONEncoder writes syntax trees as JSON. Every node becomes an object
// whose "kind" is the snake-cased node type (ExprBinary becomes
// "expr_binary"), followed by its children in declaration order. Keyword and
// punctuation spans are reduced to booleans where their presence matters.
type ASTJSONEncoder struct {
	w     io.Writer
	spans bool
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

// WithSpans adds a "span" member to every node object.
func (e *ASTJSONEncoder) WithSpans() *ASTJSONEncoder {
	e.spans = true
	return e
}

func (e *ASTJSONEncoder) Encode(node syntax.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = e.w.Write([]byte("\n"))
	return err
}

func (e *ASTJSONEncoder) MarshalText(node syntax.Node) ([]byte, error) {
	return json.MarshalIndent(e.value(reflect.ValueOf(node)), "", "  ")
}

// object is a JSON object that keeps its members in insertion order.
type object []member

type member struct {
	key   string
	value any
}

func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", m.key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type astJSONSpan struct {
	Start astJSONPosition `json:"start"`
	End   astJSONPosition `json:"end"`
}

type astJSONPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func spanToJSON(s tokens.Span) *astJSONSpan {
	if s.IsZero() {
		return nil
	}
	return &astJSONSpan{
		Start: astJSONPosition{Line: s.Start.Line, Column: s.Start.Column},
		End:   astJSONPosition{Line: s.End.Line, Column: s.End.Column},
	}
}

var (
	spanType      = reflect.TypeOf(tokens.Span{})
	spanPtrType   = reflect.TypeOf(&tokens.Span{})
	delimSpanType = reflect.TypeOf(syntax.DelimSpan{})
	delimPtrType  = reflect.TypeOf(&syntax.DelimSpan{})
	nodeType      = reflect.TypeOf((*syntax.Node)(nil)).Elem()
)

// value converts a reflected syntax value to something encoding/json can
// marshal. It returns nil for absent children.
func (e *ASTJSONEncoder) value(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}
	if v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
	}
	if v.Kind() == reflect.Interface {
		v = v.Elem()
	}

	switch x := v.Interface().(type) {
	case syntax.Ident:
		return x.Name
	case syntax.Lifetime:
		return x.String()
	case syntax.Member:
		return x.Name
	case syntax.BinOp:
		return x.Kind.String()
	case syntax.UnOp:
		return x.Kind.String()
	case syntax.RangeLimits:
		return x.String()
	case syntax.Visibility:
		if x.Kind == syntax.VisInherited {
			return nil
		}
		return strings.TrimSpace(Render(syntax.Print(x)))
	case *syntax.Lit:
		obj := object{{"kind", "lit"}, {"lit_kind", strcase.ToSnake(x.Kind.String())}, {"text", x.Text}}
		if e.spans {
			obj = append(obj, member{"span", spanToJSON(x.Span)})
		}
		return obj
	case tokens.Stream:
		if len(x) == 0 {
			return nil
		}
		return strings.TrimSpace(Render(x))
	}

	switch v.Kind() {
	case reflect.Pointer:
		return e.value(v.Elem())
	case reflect.Slice:
		if v.Len() == 0 {
			return nil
		}
		out := make([]any, v.Len())
		for i := range out {
			out[i] = e.value(v.Index(i))
		}
		return out
	case reflect.Struct:
		if values, ok := punctuatedValues(v); ok {
			return e.value(values)
		}
		return e.structValue(v)
	}
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	return v.Interface()
}

// punctuatedValues returns the element slice of a syntax.Punctuated value.
func punctuatedValues(v reflect.Value) (reflect.Value, bool) {
	if !strings.HasPrefix(v.Type().Name(), "Punctuated[") {
		return reflect.Value{}, false
	}
	ptr := reflect.New(v.Type())
	ptr.Elem().Set(v)
	return ptr.MethodByName("Values").Call(nil)[0], true
}

func (e *ASTJSONEncoder) structValue(v reflect.Value) any {
	t := v.Type()
	obj := object{{"kind", strcase.ToSnake(t.Name())}}
	if e.spans && reflect.PointerTo(t).Implements(nodeType) {
		if n, ok := addr(v).Interface().(syntax.Node); ok {
			if span := spanToJSON(syntax.SpanOf(n)); span != nil {
				obj = append(obj, member{"span", span})
			}
		}
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		fv := v.Field(i)
		key := strcase.ToSnake(field.Name)
		switch field.Type {
		case spanType:
			continue
		case spanPtrType, delimPtrType:
			if !fv.IsNil() {
				obj = append(obj, member{key, true})
			}
			continue
		case delimSpanType:
			if field.Name == "Delim" {
				obj = append(obj, member{key, fv.Interface().(syntax.DelimSpan).Delim.String()})
			}
			continue
		}
		if val := e.value(fv); val != nil {
			obj = append(obj, member{key, val})
		}
	}
	return obj
}

// addr returns a pointer to a copy of v so pointer-receiver methods can be
// called on it.
func addr(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v.Addr()
	}
	ptr := reflect.New(v.Type())
	ptr.Elem().Set(v)
	return ptr
}
