package glutil

import (
	"fmt"
	"reflect"
	"sync"
)

// Attrib describes how one struct field feeds a vertex attribute.
type Attrib struct {
	Name       string  // attribute name looked up in the program
	Size       int32   // components per vertex, 1 to 4
	Type       Enum    // component type
	Normalized bool    // fixed-point normalisation
	Offset     uintptr // byte offset of the field in the struct
}

// Layout is the vertex attribute description of a struct type: one Attrib
// per eligible field, in declaration order, plus the struct's size.
//
// The slice accessors mirror the parameters of glVertexAttribPointer.
type Layout struct {
	stride  int32
	attribs []Attrib
}

// NewLayout returns a layout for a struct of stride bytes. It is called by
// code emitted by glattribgen.
func NewLayout(stride uintptr, attribs []Attrib) *Layout {
	return &Layout{stride: int32(stride), attribs: append([]Attrib(nil), attribs...)}
}

// LayoutProvider is implemented by struct types with a generated layout.
// VertexLayout must not read its receiver.
type LayoutProvider interface {
	VertexLayout() *Layout
}

// Len returns the number of attributes.
func (l *Layout) Len() int { return len(l.attribs) }

// Attribs returns a copy of the attribute descriptors.
func (l *Layout) Attribs() []Attrib {
	return append([]Attrib(nil), l.attribs...)
}

// Names returns the attribute names.
func (l *Layout) Names() []string {
	out := make([]string, len(l.attribs))
	for i, a := range l.attribs {
		out[i] = a.Name
	}
	return out
}

// Sizes returns the component count of each attribute.
func (l *Layout) Sizes() []int32 {
	out := make([]int32, len(l.attribs))
	for i, a := range l.attribs {
		out[i] = a.Size
	}
	return out
}

// Types returns the component type of each attribute.
func (l *Layout) Types() []Enum {
	out := make([]Enum, len(l.attribs))
	for i, a := range l.attribs {
		out[i] = a.Type
	}
	return out
}

// Normalizeds returns the normalisation flag of each attribute.
func (l *Layout) Normalizeds() []bool {
	out := make([]bool, len(l.attribs))
	for i, a := range l.attribs {
		out[i] = a.Normalized
	}
	return out
}

// Stride returns the byte size of one struct value.
func (l *Layout) Stride() int32 { return l.stride }

// Pointers returns the byte offset of each attribute.
func (l *Layout) Pointers() []uintptr {
	out := make([]uintptr, len(l.attribs))
	for i, a := range l.attribs {
		out[i] = a.Offset
	}
	return out
}

// Indexes resolves each attribute name to its slot in p. Names the program
// does not use resolve to -1.
func (l *Layout) Indexes(p *Program) ([]int32, error) {
	out := make([]int32, len(l.attribs))
	for i, a := range l.attribs {
		loc, err := p.AttribLocation(a.Name)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", a.Name, err)
		}
		out[i] = loc
	}
	return out, nil
}

// Setup configures and enables every attribute that p uses, reading from the
// currently bound vertex buffer into the currently bound vertex array.
// Attributes absent from p are skipped.
func (l *Layout) Setup(p *Program) error {
	indexes, err := l.Indexes(p)
	if err != nil {
		return err
	}
	d := p.driver()
	for i, index := range indexes {
		if index == -1 {
			continue
		}
		a := l.attribs[i]
		d.VertexAttribPointer(uint32(index), a.Size, a.Type, a.Normalized, l.stride, a.Offset)
		if err := check(d); err != nil {
			return fmt.Errorf("attribute %q: %w", a.Name, err)
		}
		d.EnableVertexAttribArray(uint32(index))
		if err := check(d); err != nil {
			return fmt.Errorf("attribute %q: %w", a.Name, err)
		}
	}
	return nil
}

// SetupVertexAttrib is Setup with T's layout.
func SetupVertexAttrib[T any](p *Program) error {
	l, err := LayoutOf[T]()
	if err != nil {
		return err
	}
	return l.Setup(p)
}

// AttribType is the attribute shape of a registered field type.
type AttribType struct {
	Size int32
	Type Enum
}

var (
	attribTypes sync.Map // reflect.Type -> AttribType
	layouts     sync.Map // reflect.Type -> *Layout

	float32Type = reflect.TypeOf(float32(0))
)

func init() {
	RegisterAttribType(float32Type, AttribType{Size: 1, Type: FLOAT})
	for n := 1; n <= 4; n++ {
		RegisterAttribType(reflect.ArrayOf(n, float32Type), AttribType{Size: int32(n), Type: FLOAT})
	}
}

// RegisterAttribType declares the attribute shape of a field type. float32
// and [1]float32 through [4]float32 are registered by default. Named types
// resolve through their unnamed equivalent, so mgl32.Vec3 uses [3]float32.
//
// Registration must happen before the first LayoutOf call for a struct using
// the type; derived layouts are cached.
func RegisterAttribType(t reflect.Type, at AttribType) {
	attribTypes.Store(t, at)
}

func lookupAttribType(t reflect.Type) (AttribType, bool) {
	if at, ok := attribTypes.Load(t); ok {
		return at.(AttribType), true
	}
	u, ok := unnamed(t)
	if !ok || u == t {
		return AttribType{}, false
	}
	if at, ok := attribTypes.Load(u); ok {
		return at.(AttribType), true
	}
	return AttribType{}, false
}

// unnamed maps a named numeric or array type to its structural equivalent.
func unnamed(t reflect.Type) (reflect.Type, bool) {
	switch t.Kind() {
	case reflect.Float32:
		return float32Type, true
	case reflect.Array:
		elem, ok := unnamed(t.Elem())
		if !ok {
			return nil, false
		}
		return reflect.ArrayOf(t.Len(), elem), true
	}
	return nil, false
}

// LayoutOf returns the layout of struct type T, deriving it on first use.
// Types implementing LayoutProvider use their generated layout; others are
// derived from their field types by reflection, without a value of T.
//
// Field rules: blank fields are padding and skipped, the tag
// `glattrib:"name"` renames an attribute and `glattrib:"-"` skips a field.
func LayoutOf[T any]() (*Layout, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if l, ok := layouts.Load(t); ok {
		return l.(*Layout), nil
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("glutil: vertex layout of %v: only struct types are supported", t)
	}
	var l *Layout
	var zero T
	if p, ok := any(zero).(LayoutProvider); ok {
		l = p.VertexLayout()
	} else {
		var err error
		if l, err = deriveLayout(t); err != nil {
			return nil, err
		}
	}
	actual, _ := layouts.LoadOrStore(t, l)
	return actual.(*Layout), nil
}

// MustLayoutOf is like LayoutOf but panics on unsupported types.
func MustLayoutOf[T any]() *Layout {
	l, err := LayoutOf[T]()
	if err != nil {
		panic(err)
	}
	return l
}

func deriveLayout(t reflect.Type) (*Layout, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("glutil: vertex layout of %v: only struct types are supported", t)
	}
	var attribs []Attrib
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Name == "_" {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("glattrib"); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		at, ok := lookupAttribType(f.Type)
		if !ok {
			return nil, fmt.Errorf("glutil: vertex layout of %v: field %s has unsupported type %v", t, f.Name, f.Type)
		}
		attribs = append(attribs, Attrib{
			Name:   name,
			Size:   at.Size,
			Type:   at.Type,
			Offset: f.Offset,
		})
	}
	return NewLayout(t.Size(), attribs), nil
}
