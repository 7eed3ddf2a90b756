package clicklite

import (
	"context"
	"fmt"
	"reflect"
)

// Signature is the introspected description of a command function: its parameters in
// declaration order plus the parsed documentation string.
type Signature struct {
	params []*Parameter
	byName map[string]*Parameter
	doc    Doc

	argsType reflect.Type
	takesCtx bool
}

func newSignature() *Signature {
	return &Signature{byName: make(map[string]*Parameter)}
}

// addParameter appends a parameter. Names are unique within one signature.
func (s *Signature) addParameter(p *Parameter) error {
	if _, exists := s.byName[p.Name]; exists {
		return fmt.Errorf("duplicate parameter name %q", p.Name)
	}
	s.params = append(s.params, p)
	s.byName[p.Name] = p
	return nil
}

// Params returns the parameters in declaration order.
func (s *Signature) Params() []*Parameter {
	return s.params
}

// Param returns the parameter with the given name, or nil if there is none.
func (s *Signature) Param(name string) *Parameter {
	return s.byName[name]
}

// HasParam reports whether a parameter with the given name exists.
func (s *Signature) HasParam(name string) bool {
	return s.byName[name] != nil
}

// Doc returns the parsed documentation attached to this signature.
func (s *Signature) Doc() Doc {
	return s.doc
}

// attachDoc stores the parsed documentation and back-fills each parameter's description.
// A documented name with no matching parameter is an error: it couples documentation
// typos to a hard failure, which surfaces them immediately instead of silently dropping
// help text.
func (s *Signature) attachDoc(d Doc) error {
	for _, pd := range d.Params {
		p := s.byName[pd.Name]
		if p == nil {
			return fmt.Errorf("documented parameter %q does not exist in the signature", pd.Name)
		}
		p.Description = pd.Text
	}
	s.doc = d
	return nil
}

// signatureFromStruct builds a signature from the reflected type of an argument struct,
// one parameter per exported field in declaration order. Unexported fields are skipped.
func signatureFromStruct(t any) (*Signature, error) {
	rt, ok := t.(reflect.Type)
	if !ok {
		return nil, &InvalidSignatureError{
			Expected: "struct reflect.Type",
			Actual:   fmt.Sprintf("%T", t),
		}
	}
	if rt.Kind() != reflect.Struct {
		return nil, &InvalidSignatureError{
			Expected: "struct reflect.Type",
			Actual:   rt.String(),
		}
	}

	sig := newSignature()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		p, err := parameterFromField(field)
		if err != nil {
			return nil, err
		}
		p.fieldIndex = i
		if err := sig.addParameter(p); err != nil {
			return nil, err
		}
	}
	sig.argsType = rt
	return sig, nil
}

var (
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
)

const commandShape = "func(context.Context, T) error or func(T) error where T is a struct"

// Reader reads command signatures. Reading is pure: the target function is never
// invoked, so results can be unit-tested without a CLI runtime and cached by callers
// that read the same function repeatedly.
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

// Read introspects fn and returns its fully populated signature: one parameter per
// exported field of the argument struct, with descriptions back-filled from the struct's
// documentation string.
func (r *Reader) Read(fn any) (*Signature, error) {
	if fn == nil {
		return nil, &NotCallableError{Type: "<nil>"}
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return nil, &NotCallableError{Type: fmt.Sprintf("%T", fn)}
	}

	t := v.Type()
	if t.NumOut() != 1 || t.Out(0) != errorType || t.NumIn() < 1 || t.NumIn() > 2 {
		return nil, &InvalidSignatureError{Expected: commandShape, Actual: t.String()}
	}
	takesCtx := t.NumIn() == 2
	if takesCtx && t.In(0) != contextType {
		return nil, &InvalidSignatureError{Expected: commandShape, Actual: t.String()}
	}
	argsType := t.In(t.NumIn() - 1)
	if argsType.Kind() != reflect.Struct {
		return nil, &InvalidSignatureError{Expected: commandShape, Actual: t.String()}
	}

	sig, err := signatureFromStruct(argsType)
	if err != nil {
		return nil, err
	}
	sig.takesCtx = takesCtx

	doc := parseDocstring(docFor(reflect.New(argsType).Interface()))
	if err := sig.attachDoc(doc); err != nil {
		return nil, err
	}
	return sig, nil
}
