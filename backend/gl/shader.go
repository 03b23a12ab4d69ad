package gl

import (
	"fmt"

	"github.com/Lintangzupan/slint/internal/glapi"
)

// Shader sources for the three fixed pipelines. GLSL 330 core matches
// the go-gl 3.3 core bindings.
const (
	pathVertexSrc = `#version 330 core
uniform mat4 matrix;
in vec2 pos;
void main() {
    gl_Position = matrix * vec4(pos, 0.0, 1.0);
}`

	pathFragmentSrc = `#version 330 core
uniform vec4 color;
out vec4 fragColor;
void main() {
    fragColor = color;
}`

	imageVertexSrc = `#version 330 core
uniform mat4 matrix;
in vec2 pos;
in vec2 texPos;
out vec2 fragTexPos;
void main() {
    gl_Position = matrix * vec4(pos, 0.0, 1.0);
    fragTexPos = texPos;
}`

	imageFragmentSrc = `#version 330 core
uniform sampler2D tex;
in vec2 fragTexPos;
out vec4 fragColor;
void main() {
    fragColor = texture(tex, fragTexPos);
}`

	glyphVertexSrc = `#version 330 core
uniform mat4 matrix;
in vec2 pos;
in vec2 texPos;
out vec2 fragTexPos;
void main() {
    gl_Position = matrix * vec4(pos, 0.0, 1.0);
    fragTexPos = texPos;
}`

	glyphFragmentSrc = `#version 330 core
uniform sampler2D tex;
uniform vec4 color;
in vec2 fragTexPos;
out vec4 fragColor;
void main() {
    fragColor = color * texture(tex, fragTexPos).a;
}`
)

// pathShader fills tessellated path geometry with a solid color.
type pathShader struct {
	api    glapi.API
	id     glapi.ProgramID
	matrix glapi.UniformLocation
	color  glapi.UniformLocation
	pos    glapi.AttribLocation
}

func newPathShader(api glapi.API) (*pathShader, error) {
	id, err := api.CompileProgram(pathVertexSrc, pathFragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("gl: path shader: %w", err)
	}
	return &pathShader{
		api:    api,
		id:     id,
		matrix: api.UniformLocation(id, "matrix"),
		color:  api.UniformLocation(id, "color"),
		pos:    api.AttribLocation(id, "pos"),
	}, nil
}

// bind makes the program current and wires the draw state for one
// fill-path primitive.
func (s *pathShader) bind(matrix [16]float32, color [4]float32, vertices *arrayBuffer, indices *indexBuffer) {
	s.api.UseProgram(s.id)
	s.api.UniformMatrix4(s.matrix, matrix)
	s.api.Uniform4f(s.color, color[0], color[1], color[2], color[3])
	vertices.bindAttrib(s.pos, 2)
	indices.bind()
}

func (s *pathShader) release() {
	s.api.DeleteProgram(s.id)
}

// imageShader draws a textured quad from an atlas page.
type imageShader struct {
	api    glapi.API
	id     glapi.ProgramID
	matrix glapi.UniformLocation
	tex    glapi.UniformLocation
	pos    glapi.AttribLocation
	texPos glapi.AttribLocation
}

func newImageShader(api glapi.API) (*imageShader, error) {
	id, err := api.CompileProgram(imageVertexSrc, imageFragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("gl: image shader: %w", err)
	}
	return &imageShader{
		api:    api,
		id:     id,
		matrix: api.UniformLocation(id, "matrix"),
		tex:    api.UniformLocation(id, "tex"),
		pos:    api.AttribLocation(id, "pos"),
		texPos: api.AttribLocation(id, "texPos"),
	}, nil
}

func (s *imageShader) bind(matrix [16]float32, texture glapi.TextureID, vertices, texVertices *arrayBuffer) {
	s.api.UseProgram(s.id)
	s.api.UniformMatrix4(s.matrix, matrix)
	s.api.ActiveTexture(0)
	s.api.BindTexture(texture)
	s.api.Uniform1i(s.tex, 0)
	vertices.bindAttrib(s.pos, 2)
	texVertices.bindAttrib(s.texPos, 2)
}

func (s *imageShader) release() {
	s.api.DeleteProgram(s.id)
}

// glyphShader draws glyph coverage quads tinted with a solid color.
type glyphShader struct {
	api    glapi.API
	id     glapi.ProgramID
	matrix glapi.UniformLocation
	color  glapi.UniformLocation
	tex    glapi.UniformLocation
	pos    glapi.AttribLocation
	texPos glapi.AttribLocation
}

func newGlyphShader(api glapi.API) (*glyphShader, error) {
	id, err := api.CompileProgram(glyphVertexSrc, glyphFragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("gl: glyph shader: %w", err)
	}
	return &glyphShader{
		api:    api,
		id:     id,
		matrix: api.UniformLocation(id, "matrix"),
		color:  api.UniformLocation(id, "color"),
		tex:    api.UniformLocation(id, "tex"),
		pos:    api.AttribLocation(id, "pos"),
		texPos: api.AttribLocation(id, "texPos"),
	}, nil
}

func (s *glyphShader) bind(matrix [16]float32, color [4]float32, texture glapi.TextureID, vertices, texVertices *arrayBuffer) {
	s.api.UseProgram(s.id)
	s.api.UniformMatrix4(s.matrix, matrix)
	s.api.Uniform4f(s.color, color[0], color[1], color[2], color[3])
	s.api.ActiveTexture(0)
	s.api.BindTexture(texture)
	s.api.Uniform1i(s.tex, 0)
	vertices.bindAttrib(s.pos, 2)
	texVertices.bindAttrib(s.texPos, 2)
}

func (s *glyphShader) release() {
	s.api.DeleteProgram(s.id)
}
