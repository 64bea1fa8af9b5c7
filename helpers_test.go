package glutil_test

import (
	"testing"

	"github.com/go-theft-auto/glutil"
	"github.com/go-theft-auto/glutil/internal/fakegl"
)

const testVertexShader = `#version 410 core
in vec3 position;
in vec2 uv;
out vec2 vUV;
uniform mat4 mvp;
void main() {
    vUV = uv;
    gl_Position = mvp * vec4(position, 1.0);
}
`

const testFragmentShader = `#version 410 core
in vec2 vUV;
out vec4 color;
uniform sampler2D diffuse;
void main() {
    color = texture(diffuse, vUV);
}
`

func newTestContext(t *testing.T, opts ...glutil.Option) (*glutil.Context, *fakegl.Driver) {
	t.Helper()
	d := fakegl.New()
	return glutil.New(d, opts...), d
}

func newTestProgram(t *testing.T, c *glutil.Context) *glutil.Program {
	t.Helper()
	p, err := c.NewProgram(glutil.ShaderSource{Vertex: testVertexShader, Fragment: testFragmentShader})
	if err != nil {
		t.Fatalf("NewProgram() error: %v", err)
	}
	t.Cleanup(p.Release)
	return p
}
