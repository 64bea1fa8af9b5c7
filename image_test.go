package glutil_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/go-theft-auto/glutil"
)

// twoRows is a 1x2 image: red on top, blue below.
func twoRows() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	return img
}

func TestDecodeImageFormats(t *testing.T) {
	var pngBuf, bmpBuf bytes.Buffer
	if err := png.Encode(&pngBuf, twoRows()); err != nil {
		t.Fatal(err)
	}
	if err := bmp.Encode(&bmpBuf, twoRows()); err != nil {
		t.Fatal(err)
	}

	for name, buf := range map[string]*bytes.Buffer{"png": &pngBuf, "bmp": &bmpBuf} {
		t.Run(name, func(t *testing.T) {
			img, err := glutil.DecodeImage(buf)
			if err != nil {
				t.Fatalf("DecodeImage() error: %v", err)
			}
			if b := img.Bounds(); b.Dx() != 1 || b.Dy() != 2 {
				t.Errorf("bounds = %v, want 1x2", b)
			}
		})
	}

	if _, err := glutil.DecodeImage(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("DecodeImage() accepted garbage")
	}
}

func TestNewTexture2DFlipsRows(t *testing.T) {
	tests := []struct {
		flip     bool
		wantBlue bool
	}{
		{flip: false, wantBlue: false},
		{flip: true, wantBlue: true},
	}
	for _, tt := range tests {
		c, d := newTestContext(t)

		tex, err := c.NewTexture2D(twoRows(), glutil.Texture2DOptions{FlipY: tt.flip})
		if err != nil {
			t.Fatalf("NewTexture2D(flip=%v) error: %v", tt.flip, err)
		}
		if tex.Target() != glutil.TEXTURE_2D {
			t.Errorf("Target() = %#x", tex.Target())
		}
		pix := d.Images[0].Pixels.([]uint8)
		if gotBlue := pix[2] == 255; gotBlue != tt.wantBlue {
			t.Errorf("flip=%v: first row = %v", tt.flip, pix[:4])
		}
		if got := d.Params[tex.ID()][glutil.TEXTURE_WRAP_S]; got != int32(glutil.CLAMP_TO_EDGE) {
			t.Errorf("default wrap = %#x, want CLAMP_TO_EDGE", got)
		}
		if d.Bound(glutil.TEXTURE_2D) != 0 {
			t.Error("texture left bound")
		}
		tex.Release()
	}
}

func TestNewTexture2DMipmaps(t *testing.T) {
	c, d := newTestContext(t)

	tex, err := c.NewTexture2D(twoRows(), glutil.Texture2DOptions{Mipmaps: true, Wrap: glutil.WrapRepeat})
	if err != nil {
		t.Fatalf("NewTexture2D() error: %v", err)
	}
	defer tex.Release()

	if n := d.Count("GenerateMipmap"); n != 1 {
		t.Errorf("GenerateMipmap called %d times, want 1", n)
	}
	params := d.Params[tex.ID()]
	if params[glutil.TEXTURE_MIN_FILTER] != int32(glutil.LINEAR_MIPMAP_LINEAR) {
		t.Errorf("min filter = %#x", params[glutil.TEXTURE_MIN_FILTER])
	}
	if params[glutil.TEXTURE_WRAP_T] != int32(glutil.REPEAT) {
		t.Errorf("wrap T = %#x", params[glutil.TEXTURE_WRAP_T])
	}
}

func TestNewTexture2DEmptyImage(t *testing.T) {
	c, d := newTestContext(t)

	if _, err := c.NewTexture2D(image.NewNRGBA(image.Rect(0, 0, 0, 0)), glutil.Texture2DOptions{}); err == nil {
		t.Fatal("NewTexture2D() accepted an empty image")
	}
	if n := d.Count("GenTexture"); n != 0 {
		t.Errorf("GenTexture called %d times, want 0", n)
	}
}

func TestLoadCubemap(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i, face := range solidFaces(6, 4, 4) {
		p := filepath.Join(dir, "face"+string(rune('0'+i))+".png")
		f, err := os.Create(p)
		if err != nil {
			t.Fatal(err)
		}
		if err := png.Encode(f, face); err != nil {
			t.Fatal(err)
		}
		f.Close()
		paths = append(paths, p)
	}

	c, d := newTestContext(t)
	tex, err := c.LoadCubemap(paths)
	if err != nil {
		t.Fatalf("LoadCubemap() error: %v", err)
	}
	defer tex.Release()
	if len(d.Images) != 6 {
		t.Errorf("uploaded %d faces, want 6", len(d.Images))
	}

	if _, err := c.LoadCubemap([]string{filepath.Join(dir, "missing.png")}); err == nil {
		t.Error("LoadCubemap() with a missing file succeeded")
	}
}
