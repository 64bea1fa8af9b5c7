package glutil

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// BuildCubemap creates a cube map texture from face images given in
// POSITIVE_X, NEGATIVE_X, POSITIVE_Y, NEGATIVE_Y, POSITIVE_Z, NEGATIVE_Z
// order.
//
// All faces must be square and the same size; otherwise, or with no faces,
// BuildCubemap fails with ErrInvalidOperation before touching the driver.
// Faces are uploaded as RGBA8 with linear filtering and clamp-to-edge
// wrapping on all three axes. The texture is left unbound.
func (c *Context) BuildCubemap(faces []image.Image) (*Texture, error) {
	size, err := cubemapSize(faces)
	if err != nil {
		return nil, err
	}
	if err := c.UnbindTexture(TEXTURE_CUBE_MAP); err != nil {
		return nil, err
	}
	tex, err := c.NewTexture(TEXTURE_CUBE_MAP)
	if err != nil {
		return nil, err
	}
	if err := fillCubemap(tex, faces, size); err != nil {
		tex.Release()
		return nil, err
	}
	return tex, nil
}

// cubemapSize returns the common edge length of faces.
func cubemapSize(faces []image.Image) (int32, error) {
	size := 0
	for _, face := range faces {
		b := face.Bounds()
		if size != 0 && b.Dx() != size {
			return 0, ErrInvalidOperation
		}
		size = b.Dx()
		if size != b.Dy() {
			return 0, ErrInvalidOperation
		}
	}
	if size == 0 {
		return 0, ErrInvalidOperation
	}
	return int32(size), nil
}

func fillCubemap(tex *Texture, faces []image.Image, size int32) error {
	if err := tex.Bind(); err != nil {
		return err
	}
	for i, face := range faces {
		px := imaging.Clone(face)
		target := TEXTURE_CUBE_MAP_POSITIVE_X + Enum(i)
		if err := tex.image2D(target, 0, int32(RGBA), size, size, 0, RGBA, UNSIGNED_BYTE, px.Pix); err != nil {
			return fmt.Errorf("cubemap face %d: %w", i, err)
		}
	}
	params := []TexParameter{
		MagFilter(FilterLinear),
		MinFilter(FilterLinear),
		WrapS(WrapClampToEdge),
		WrapT(WrapClampToEdge),
		WrapR(WrapClampToEdge),
	}
	for _, p := range params {
		if err := tex.Parameter(p); err != nil {
			return err
		}
	}
	return tex.Unbind()
}
