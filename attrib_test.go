package glutil_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/glutil"
)

type meshVertex struct {
	Position [3]float32 `glattrib:"position"`
	Normal   mgl32.Vec3
	UV       [2]float32 `glattrib:"uv"`
	_        float32
	Weight   float32
	Color    [4]float32
	ID       int32 `glattrib:"-"`
}

func TestLayoutOfDerivesFields(t *testing.T) {
	l, err := glutil.LayoutOf[meshVertex]()
	if err != nil {
		t.Fatalf("LayoutOf() error: %v", err)
	}

	var v meshVertex
	wantNames := []string{"position", "Normal", "uv", "Weight", "Color"}
	wantSizes := []int32{3, 3, 2, 1, 4}
	wantPointers := []uintptr{
		unsafe.Offsetof(v.Position),
		unsafe.Offsetof(v.Normal),
		unsafe.Offsetof(v.UV),
		unsafe.Offsetof(v.Weight),
		unsafe.Offsetof(v.Color),
	}

	if got := l.Names(); !reflect.DeepEqual(got, wantNames) {
		t.Errorf("Names() = %v, want %v", got, wantNames)
	}
	if got := l.Sizes(); !reflect.DeepEqual(got, wantSizes) {
		t.Errorf("Sizes() = %v, want %v", got, wantSizes)
	}
	if got := l.Pointers(); !reflect.DeepEqual(got, wantPointers) {
		t.Errorf("Pointers() = %v, want %v", got, wantPointers)
	}
	for i, typ := range l.Types() {
		if typ != glutil.FLOAT {
			t.Errorf("Types()[%d] = %#x, want FLOAT", i, typ)
		}
	}
	for i, n := range l.Normalizeds() {
		if n {
			t.Errorf("Normalizeds()[%d] = true, want false", i)
		}
	}
	if got, want := l.Stride(), int32(unsafe.Sizeof(v)); got != want {
		t.Errorf("Stride() = %d, want %d", got, want)
	}
	if l.Len() != len(wantNames) || len(l.Types()) != l.Len() || len(l.Normalizeds()) != l.Len() {
		t.Errorf("sequence lengths disagree with Len() = %d", l.Len())
	}
}

func TestLayoutOfIsCached(t *testing.T) {
	a := glutil.MustLayoutOf[meshVertex]()
	b := glutil.MustLayoutOf[meshVertex]()
	if a != b {
		t.Error("LayoutOf derived the same type twice")
	}
}

type badVertex struct {
	Position [3]float32
	Index    int
}

type wideVertex struct {
	Data [5]float32
}

func TestLayoutOfRejectsUnsupportedTypes(t *testing.T) {
	if _, err := glutil.LayoutOf[badVertex](); err == nil {
		t.Error("LayoutOf[badVertex] succeeded, want error for int field")
	}
	if _, err := glutil.LayoutOf[wideVertex](); err == nil {
		t.Error("LayoutOf[wideVertex] succeeded, want error for [5]float32 field")
	}
	if _, err := glutil.LayoutOf[[3]float32](); err == nil {
		t.Error("LayoutOf[[3]float32] succeeded, want error for non-struct")
	}
	// *generatedVertex has VertexLayout in its method set but is not a struct.
	if _, err := glutil.LayoutOf[*generatedVertex](); err == nil || !strings.Contains(err.Error(), "only struct types") {
		t.Errorf("LayoutOf[*generatedVertex] = %v, want non-struct error", err)
	}
	c, d := newTestContext(t)
	if err := glutil.VertexBufferData(c, []*generatedVertex{{}}, glutil.ARRAY_BUFFER, glutil.STATIC_DRAW); err == nil {
		t.Error("VertexBufferData over pointers succeeded")
	}
	if n := d.Count("BufferData"); n != 0 {
		t.Errorf("BufferData called %d times, want 0", n)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustLayoutOf did not panic")
		}
	}()
	glutil.MustLayoutOf[badVertex]()
}

type packedColor [4]uint8

type coloredVertex struct {
	Position [2]float32
	Color    packedColor
}

func TestRegisterAttribType(t *testing.T) {
	glutil.RegisterAttribType(reflect.TypeOf(packedColor{}), glutil.AttribType{Size: 4, Type: glutil.UNSIGNED_BYTE})

	l, err := glutil.LayoutOf[coloredVertex]()
	if err != nil {
		t.Fatalf("LayoutOf() error: %v", err)
	}
	if got := l.Types(); got[1] != glutil.UNSIGNED_BYTE {
		t.Errorf("Types()[1] = %#x, want UNSIGNED_BYTE", got[1])
	}
	if got := l.Sizes(); got[1] != 4 {
		t.Errorf("Sizes()[1] = %d, want 4", got[1])
	}
}

type generatedVertex struct {
	Pos [2]float32
}

var generatedLayout = glutil.NewLayout(unsafe.Sizeof(generatedVertex{}), []glutil.Attrib{
	{Name: "a_pos", Size: 2, Type: glutil.FLOAT, Offset: unsafe.Offsetof(generatedVertex{}.Pos)},
})

func (generatedVertex) VertexLayout() *glutil.Layout { return generatedLayout }

func TestLayoutOfPrefersProvider(t *testing.T) {
	l, err := glutil.LayoutOf[generatedVertex]()
	if err != nil {
		t.Fatalf("LayoutOf() error: %v", err)
	}
	if l != generatedLayout {
		t.Errorf("LayoutOf did not use the generated layout")
	}
	if got := l.Names(); !reflect.DeepEqual(got, []string{"a_pos"}) {
		t.Errorf("Names() = %v", got)
	}
}

func TestIndexesMissingAttributeIsMinusOne(t *testing.T) {
	c, d := newTestContext(t)
	d.Attribs["position"] = 0
	d.Attribs["uv"] = 3
	p := newTestProgram(t, c)

	idx, err := glutil.MustLayoutOf[meshVertex]().Indexes(p)
	if err != nil {
		t.Fatalf("Indexes() error: %v", err)
	}
	want := []int32{0, -1, 3, -1, -1}
	if !reflect.DeepEqual(idx, want) {
		t.Errorf("Indexes() = %v, want %v", idx, want)
	}
}

func TestIndexesRejectsNulName(t *testing.T) {
	c, _ := newTestContext(t)
	p := newTestProgram(t, c)

	l := glutil.NewLayout(4, []glutil.Attrib{{Name: "bad\x00name", Size: 1, Type: glutil.FLOAT}})
	if _, err := l.Indexes(p); !errors.Is(err, glutil.ErrInvalidOperation) {
		t.Errorf("Indexes() error = %v, want ErrInvalidOperation", err)
	}
}

func TestSetupVertexAttribSkipsUnusedAttributes(t *testing.T) {
	c, d := newTestContext(t)
	d.Attribs["position"] = 0
	d.Attribs["uv"] = 2
	p := newTestProgram(t, c)

	if err := glutil.SetupVertexAttrib[meshVertex](p); err != nil {
		t.Fatalf("SetupVertexAttrib() error: %v", err)
	}

	var v meshVertex
	stride := int32(unsafe.Sizeof(v))
	want := []struct {
		index  uint32
		size   int32
		offset uintptr
	}{
		{0, 3, unsafe.Offsetof(v.Position)},
		{2, 2, unsafe.Offsetof(v.UV)},
	}
	if len(d.Pointers) != len(want) {
		t.Fatalf("VertexAttribPointer called %d times, want %d", len(d.Pointers), len(want))
	}
	for i, w := range want {
		got := d.Pointers[i]
		if got.Index != w.index || got.Size != w.size || got.Offset != w.offset || got.Stride != stride {
			t.Errorf("pointer %d = %+v, want index=%d size=%d offset=%d stride=%d",
				i, got, w.index, w.size, w.offset, stride)
		}
		if got.Type != glutil.FLOAT || got.Normalized {
			t.Errorf("pointer %d type=%#x normalized=%v", i, got.Type, got.Normalized)
		}
	}
	if !d.Enabled[0] || !d.Enabled[2] || d.Enabled[1] {
		t.Errorf("enabled attributes = %v, want 0 and 2", d.Enabled)
	}
}

func TestSetupVertexAttribPropagatesDriverError(t *testing.T) {
	c, d := newTestContext(t)
	d.Attribs["position"] = 0
	p := newTestProgram(t, c)

	d.FailOn("VertexAttribPointer", glutil.INVALID_VALUE)
	if err := glutil.SetupVertexAttrib[meshVertex](p); !errors.Is(err, glutil.ErrInvalidValue) {
		t.Errorf("SetupVertexAttrib() error = %v, want ErrInvalidValue", err)
	}
}

func TestVertexBufferDataUsesStride(t *testing.T) {
	c, d := newTestContext(t)

	b, err := c.NewBuffer()
	if err != nil {
		t.Fatal(err)
	}
	defer b.Release()
	if err := b.Bind(glutil.ARRAY_BUFFER); err != nil {
		t.Fatal(err)
	}

	data := make([]meshVertex, 3)
	if err := glutil.VertexBufferData(c, data, glutil.ARRAY_BUFFER, glutil.STATIC_DRAW); err != nil {
		t.Fatalf("VertexBufferData() error: %v", err)
	}

	calls := d.CallsNamed("BufferData")
	if len(calls) != 1 {
		t.Fatalf("BufferData called %d times, want 1", len(calls))
	}
	wantSize := 3 * int(unsafe.Sizeof(meshVertex{}))
	if size := calls[0].Args[1].(int); size != wantSize {
		t.Errorf("BufferData size = %d, want %d", size, wantSize)
	}
}

func TestVertexBufferDataWithoutBoundBuffer(t *testing.T) {
	c, _ := newTestContext(t)

	err := glutil.VertexBufferData(c, []meshVertex{{}}, glutil.ARRAY_BUFFER, glutil.STATIC_DRAW)
	if !errors.Is(err, glutil.ErrInvalidOperation) {
		t.Errorf("VertexBufferData() error = %v, want ErrInvalidOperation", err)
	}
}

func TestBufferDataForIndices(t *testing.T) {
	c, d := newTestContext(t)

	b, err := c.NewBuffer()
	if err != nil {
		t.Fatal(err)
	}
	defer b.Release()
	if err := b.Bind(glutil.ELEMENT_ARRAY_BUFFER); err != nil {
		t.Fatal(err)
	}
	indices := []uint16{0, 1, 2, 2, 3, 0}
	if err := c.BufferData(glutil.ELEMENT_ARRAY_BUFFER, len(indices)*2, indices, glutil.STATIC_DRAW); err != nil {
		t.Fatalf("BufferData() error: %v", err)
	}
	if got := d.CallsNamed("BufferData")[0].Args[1].(int); got != 12 {
		t.Errorf("BufferData size = %d, want 12", got)
	}
}
