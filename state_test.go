package glutil_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/go-theft-auto/glutil"
)

func TestStateHelpersForward(t *testing.T) {
	c, d := newTestContext(t)

	tests := []struct {
		call func() error
		name string
		args []any
	}{
		{func() error { return c.Enable(glutil.DEPTH_TEST) }, "Enable", []any{glutil.DEPTH_TEST}},
		{func() error { return c.Disable(glutil.BLEND) }, "Disable", []any{glutil.BLEND}},
		{func() error { return c.BlendFunc(glutil.SRC_ALPHA, glutil.ONE_MINUS_SRC_ALPHA) }, "BlendFunc",
			[]any{glutil.SRC_ALPHA, glutil.ONE_MINUS_SRC_ALPHA}},
		{func() error { return c.DepthFunc(glutil.LEQUAL) }, "DepthFunc", []any{glutil.LEQUAL}},
		{func() error { return c.ClearColor(0.1, 0.2, 0.3, 1) }, "ClearColor", []any{float32(0.1), float32(0.2), float32(0.3), float32(1)}},
		{func() error { return c.Clear(glutil.COLOR_BUFFER_BIT | glutil.DEPTH_BUFFER_BIT) }, "Clear",
			[]any{glutil.COLOR_BUFFER_BIT | glutil.DEPTH_BUFFER_BIT}},
		{func() error { return c.Viewport(0, 0, 800, 600) }, "Viewport", []any{int32(0), int32(0), int32(800), int32(600)}},
		{func() error { return c.DrawArrays(glutil.TRIANGLES, 0, 36) }, "DrawArrays", []any{glutil.TRIANGLES, int32(0), int32(36)}},
		{func() error { return c.DrawElements(glutil.TRIANGLES, 6, glutil.UNSIGNED_SHORT, 0) }, "DrawElements",
			[]any{glutil.TRIANGLES, int32(6), glutil.UNSIGNED_SHORT, uintptr(0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); err != nil {
				t.Fatalf("%s() error: %v", tt.name, err)
			}
			last := d.Calls[len(d.Calls)-1]
			if last.Name != tt.name || !reflect.DeepEqual(last.Args, tt.args) {
				t.Errorf("driver call = %v, want %s%v", last, tt.name, tt.args)
			}
		})
	}
}

func TestStateHelpersReturnDriverError(t *testing.T) {
	c, d := newTestContext(t)

	if err := c.DrawArrays(glutil.TRIANGLES, 0, -1); !errors.Is(err, glutil.ErrInvalidValue) {
		t.Errorf("DrawArrays(count=-1) = %v, want ErrInvalidValue", err)
	}
	d.FailOn("Enable", glutil.INVALID_ENUM)
	if err := c.Enable(0xFFFF); !errors.Is(err, glutil.ErrInvalidEnum) {
		t.Errorf("Enable(bad) = %v, want ErrInvalidEnum", err)
	}
	// The flag is cleared once reported.
	if err := c.Enable(glutil.BLEND); err != nil {
		t.Errorf("Enable() after reported error = %v", err)
	}
}
