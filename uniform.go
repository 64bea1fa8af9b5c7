package glutil

import "fmt"

// UniformValue is the value of a uniform binding. The set is closed: Vec1,
// Vec2, Vec3, Vec4, Mat2, Mat3, Mat4 and *Texture.
//
// Vector and matrix types share their layout with mgl32, so mgl32 values
// convert directly, e.g. glutil.Mat4(mgl32.Ident4()).
type UniformValue interface {
	isUniformValue()
}

type (
	Vec1 [1]float32
	Vec2 [2]float32
	Vec3 [3]float32
	Vec4 [4]float32

	// Matrices are column-major.
	Mat2 [4]float32
	Mat3 [9]float32
	Mat4 [16]float32
)

func (Vec1) isUniformValue()     {}
func (Vec2) isUniformValue()     {}
func (Vec3) isUniformValue()     {}
func (Vec4) isUniformValue()     {}
func (Mat2) isUniformValue()     {}
func (Mat3) isUniformValue()     {}
func (Mat4) isUniformValue()     {}
func (*Texture) isUniformValue() {}

// Uniform binds a value to a named uniform.
type Uniform struct {
	Name  string
	Value UniformValue
}

// SetUniforms uploads uniforms to p, which must be the current program.
//
// Bindings are applied in order. Each texture binding takes the next texture
// unit, starting at 0: the unit is activated, the texture bound to it and the
// unit index uploaded to the sampler uniform. Units are not shared between
// bindings of the same texture.
func (p *Program) SetUniforms(uniforms []Uniform) error {
	if err := p.live(); err != nil {
		return err
	}
	d := p.driver()
	unit := int32(0)
	for _, u := range uniforms {
		loc, err := p.UniformLocation(u.Name)
		if err != nil {
			return fmt.Errorf("uniform %q: %w", u.Name, err)
		}
		switch v := u.Value.(type) {
		case Vec1:
			d.Uniform1fv(loc, 1, v[:])
		case Vec2:
			d.Uniform2fv(loc, 1, v[:])
		case Vec3:
			d.Uniform3fv(loc, 1, v[:])
		case Vec4:
			d.Uniform4fv(loc, 1, v[:])
		case Mat2:
			d.UniformMatrix2fv(loc, 1, false, v[:])
		case Mat3:
			d.UniformMatrix3fv(loc, 1, false, v[:])
		case Mat4:
			d.UniformMatrix4fv(loc, 1, false, v[:])
		case *Texture:
			if v == nil {
				return fmt.Errorf("uniform %q: nil texture", u.Name)
			}
			d.ActiveTexture(TEXTURE0 + Enum(unit))
			if err := check(d); err != nil {
				return fmt.Errorf("uniform %q: texture unit %d: %w", u.Name, unit, err)
			}
			if err := v.Bind(); err != nil {
				return fmt.Errorf("uniform %q: %w", u.Name, err)
			}
			d.Uniform1i(loc, unit)
			unit++
		default:
			return fmt.Errorf("uniform %q: unsupported value %T", u.Name, u.Value)
		}
		if err := check(d); err != nil {
			return fmt.Errorf("uniform %q: %w", u.Name, err)
		}
	}
	return nil
}
