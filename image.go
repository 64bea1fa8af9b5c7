package glutil

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeImage decodes a PNG, JPEG, BMP, TIFF or WebP image.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// LoadImage decodes the image file at path.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := DecodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// LoadCubemap loads face images from paths and builds a cube map from them,
// see BuildCubemap for the face order.
func (c *Context) LoadCubemap(paths []string) (*Texture, error) {
	faces := make([]image.Image, 0, len(paths))
	for _, p := range paths {
		img, err := LoadImage(p)
		if err != nil {
			return nil, err
		}
		faces = append(faces, img)
	}
	return c.BuildCubemap(faces)
}

// Texture2DOptions configures NewTexture2D.
type Texture2DOptions struct {
	// FlipY flips the image vertically so that its first row lands at
	// texture coordinate t=0 (OpenGL's bottom row).
	FlipY bool
	// Mipmaps generates the mipmap chain and enables trilinear
	// minification.
	Mipmaps bool
	// Wrap is applied to S and T. Zero means WrapClampToEdge.
	Wrap Wrap
}

// NewTexture2D uploads img as an RGBA8 TEXTURE_2D. The texture is left
// unbound.
func (c *Context) NewTexture2D(img image.Image, opts Texture2DOptions) (*Texture, error) {
	var px *image.NRGBA
	if opts.FlipY {
		px = imaging.FlipV(img)
	} else {
		px = imaging.Clone(img)
	}
	w, h := px.Bounds().Dx(), px.Bounds().Dy()
	if w == 0 || h == 0 {
		return nil, ErrInvalidValue
	}

	tex, err := c.NewTexture(TEXTURE_2D)
	if err != nil {
		return nil, err
	}
	if err := fillTexture2D(tex, px, opts); err != nil {
		tex.Release()
		return nil, err
	}
	return tex, nil
}

func fillTexture2D(tex *Texture, px *image.NRGBA, opts Texture2DOptions) error {
	if err := tex.Bind(); err != nil {
		return err
	}
	w, h := int32(px.Bounds().Dx()), int32(px.Bounds().Dy())
	if err := tex.Image2D(0, int32(RGBA8), w, h, 0, RGBA, UNSIGNED_BYTE, px.Pix); err != nil {
		return err
	}

	minFilter := FilterLinear
	if opts.Mipmaps {
		if err := tex.GenerateMipmap(); err != nil {
			return err
		}
		minFilter = FilterLinearMipmapLinear
	}
	wrap := opts.Wrap
	if wrap == 0 {
		wrap = WrapClampToEdge
	}
	params := []TexParameter{
		MinFilter(minFilter),
		MagFilter(FilterLinear),
		WrapS(wrap),
		WrapT(wrap),
	}
	for _, p := range params {
		if err := tex.Parameter(p); err != nil {
			return err
		}
	}
	return tex.Unbind()
}
