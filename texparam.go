package glutil

// TexParameter is a texture sampling setting. The set of implementations is
// closed: MinFilter, MagFilter, WrapS, WrapT and WrapR.
type TexParameter interface {
	texParameter() (pname Enum, value int32)
}

// Filter is a texture minification or magnification filter.
type Filter Enum

const (
	FilterNearest              = Filter(NEAREST)
	FilterLinear               = Filter(LINEAR)
	FilterNearestMipmapNearest = Filter(NEAREST_MIPMAP_NEAREST)
	FilterLinearMipmapNearest  = Filter(LINEAR_MIPMAP_NEAREST)
	FilterNearestMipmapLinear  = Filter(NEAREST_MIPMAP_LINEAR)
	FilterLinearMipmapLinear   = Filter(LINEAR_MIPMAP_LINEAR)
)

// Wrap is a texture coordinate wrapping mode.
type Wrap Enum

const (
	WrapClampToEdge = Wrap(CLAMP_TO_EDGE)
	WrapMirrored    = Wrap(MIRRORED_REPEAT)
	WrapRepeat      = Wrap(REPEAT)
)

// MinFilter sets TEXTURE_MIN_FILTER. Any Filter is valid.
type MinFilter Filter

// MagFilter sets TEXTURE_MAG_FILTER. Only FilterNearest and FilterLinear are
// valid; the driver rejects mipmap filters with INVALID_ENUM.
type MagFilter Filter

// WrapS sets TEXTURE_WRAP_S.
type WrapS Wrap

// WrapT sets TEXTURE_WRAP_T.
type WrapT Wrap

// WrapR sets TEXTURE_WRAP_R.
type WrapR Wrap

func (f MinFilter) texParameter() (Enum, int32) { return TEXTURE_MIN_FILTER, int32(f) }
func (f MagFilter) texParameter() (Enum, int32) { return TEXTURE_MAG_FILTER, int32(f) }
func (w WrapS) texParameter() (Enum, int32)     { return TEXTURE_WRAP_S, int32(w) }
func (w WrapT) texParameter() (Enum, int32)     { return TEXTURE_WRAP_T, int32(w) }
func (w WrapR) texParameter() (Enum, int32)     { return TEXTURE_WRAP_R, int32(w) }
