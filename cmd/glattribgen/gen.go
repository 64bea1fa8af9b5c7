package main

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/types"
	"reflect"
	"text/template"
)

// attribField is one struct field emitted as a vertex attribute.
type attribField struct {
	Field string // Go field name
	Attr  string // attribute name in the shader
	Size  int64
}

type layoutType struct {
	Name   string
	Fields []attribField
}

// collectLayout resolves name in scope and checks that it is a struct whose
// fields are all vertex attributes. The rules match glutil.LayoutOf: blank
// fields are skipped, `glattrib:"-"` skips and `glattrib:"name"` renames.
func collectLayout(scope *types.Scope, name string) (*layoutType, error) {
	obj := scope.Lookup(name)
	if obj == nil {
		return nil, fmt.Errorf("no type %s in package", name)
	}
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%s is not a type", name)
	}
	named, ok := tn.Type().(*types.Named)
	if !ok {
		return nil, fmt.Errorf("%s is an alias", name)
	}
	if named.TypeParams().Len() > 0 {
		return nil, fmt.Errorf("%s: generic types are not supported", name)
	}
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("%s: only struct types are supported", name)
	}

	lt := &layoutType{Name: name}
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if f.Name() == "_" {
			continue
		}
		attr := f.Name()
		if tag, ok := reflect.StructTag(st.Tag(i)).Lookup("glattrib"); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				attr = tag
			}
		}
		size, ok := attribSize(f.Type())
		if !ok {
			return nil, fmt.Errorf("%s: field %s has unsupported type %s", name, f.Name(), f.Type())
		}
		lt.Fields = append(lt.Fields, attribField{Field: f.Name(), Attr: attr, Size: size})
	}
	return lt, nil
}

// attribSize reports the component count of a float32 or [1..4]float32
// shaped type.
func attribSize(t types.Type) (int64, bool) {
	switch u := t.Underlying().(type) {
	case *types.Basic:
		if u.Kind() == types.Float32 {
			return 1, true
		}
	case *types.Array:
		if u.Len() < 1 || u.Len() > 4 {
			return 0, false
		}
		if b, ok := u.Elem().Underlying().(*types.Basic); ok && b.Kind() == types.Float32 {
			return u.Len(), true
		}
	}
	return 0, false
}

var layoutTemplate = template.Must(template.New("layout").Parse(`// Code generated by glattribgen. DO NOT EDIT.

package {{.Package}}

import (
	"unsafe"

	"github.com/go-theft-auto/glutil"
)
{{range $t := .Types}}
var glattribLayout{{$t.Name}} = glutil.NewLayout(unsafe.Sizeof({{$t.Name}}{}), []glutil.Attrib{
{{- range $t.Fields}}
	{Name: {{printf "%q" .Attr}}, Size: {{.Size}}, Type: glutil.FLOAT, Offset: unsafe.Offsetof({{$t.Name}}{}.{{.Field}})},
{{- end}}
})

// VertexLayout returns the vertex attribute layout of {{$t.Name}}.
func ({{$t.Name}}) VertexLayout() *glutil.Layout { return glattribLayout{{$t.Name}} }
{{end}}`))

// generate renders the layout file for types in package pkg.
func generate(pkg string, lts []*layoutType) ([]byte, error) {
	if len(lts) == 0 {
		return nil, errors.New("no types to generate")
	}
	var buf bytes.Buffer
	err := layoutTemplate.Execute(&buf, struct {
		Package string
		Types   []*layoutType
	}{pkg, lts})
	if err != nil {
		return nil, err
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w\n%s", err, buf.Bytes())
	}
	return out, nil
}
