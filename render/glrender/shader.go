// This file is part of Lantern.
//
// Lantern is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Lantern is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Lantern.  If not, see <https://www.gnu.org/licenses/>.

package glrender

import (
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/lanternengine/lantern/fault"
	"github.com/lanternengine/lantern/render"
)

// shaderProgram is one compiled and linked GLSL program along with the
// locations of the attributes and uniforms the backend feeds it.
type shaderProgram struct {
	name   string
	handle uint32

	// uniforms
	transform     int32
	colorModulate int32
	texture       int32

	// attributes. a location of -1 means the program does not use the
	// attribute
	position   int32
	uv         int32
	color      int32
	additivity int32
}

func (sh *shaderProgram) destroy() {
	if sh.handle != 0 {
		gl.DeleteProgram(sh.handle)
		sh.handle = 0
	}
}

// createProgram compiles and links the shader. Compile and link failures are
// returned as errors carrying the shader name; a broken built-in shader is
// fatal to the caller.
func (sh *shaderProgram) createProgram(name string, vertProgram string, fragProgram string) error {
	sh.destroy()
	sh.name = name

	sh.handle = gl.CreateProgram()

	vertHandle := gl.CreateShader(gl.VERTEX_SHADER)
	fragHandle := gl.CreateShader(gl.FRAGMENT_SHADER)

	glShaderSource := func(handle uint32, source string) {
		csource, free := gl.Strs(source + "\x00")
		defer free()

		gl.ShaderSource(handle, 1, csource, nil)
	}

	glShaderSource(vertHandle, vertProgram)
	glShaderSource(fragHandle, fragProgram)

	gl.CompileShader(vertHandle)
	if log := getShaderCompileError(vertHandle); log != "" {
		return fault.Errorf("glrender: %s: vertex: %s", name, log)
	}

	gl.CompileShader(fragHandle)
	if log := getShaderCompileError(fragHandle); log != "" {
		return fault.Errorf("glrender: %s: fragment: %s", name, log)
	}

	gl.AttachShader(sh.handle, vertHandle)
	gl.AttachShader(sh.handle, fragHandle)
	gl.LinkProgram(sh.handle)

	// the individual shader objects are no longer needed once the program
	// has linked
	gl.DeleteShader(fragHandle)
	gl.DeleteShader(vertHandle)

	var isLinked int32
	gl.GetProgramiv(sh.handle, gl.LINK_STATUS, &isLinked)
	if isLinked == 0 {
		var logLength int32
		gl.GetProgramiv(sh.handle, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		if logLength > 0 {
			gl.GetProgramInfoLog(sh.handle, logLength, &logLength, gl.Str(log))
		}
		return fault.Errorf("glrender: %s: link: %s", name, strings.TrimRight(log, "\x00"))
	}

	sh.transform = gl.GetUniformLocation(sh.handle, gl.Str("Transform"+"\x00"))
	sh.colorModulate = gl.GetUniformLocation(sh.handle, gl.Str("ColorModulate"+"\x00"))
	sh.texture = gl.GetUniformLocation(sh.handle, gl.Str("Texture"+"\x00"))
	sh.position = gl.GetAttribLocation(sh.handle, gl.Str("Position"+"\x00"))
	sh.uv = gl.GetAttribLocation(sh.handle, gl.Str("UV"+"\x00"))
	sh.color = gl.GetAttribLocation(sh.handle, gl.Str("Color"+"\x00"))
	sh.additivity = gl.GetAttribLocation(sh.handle, gl.Str("Additivity"+"\x00"))

	return nil
}

// getShaderCompileError returns the most recent error generated by the
// shader compiler.
func getShaderCompileError(shader uint32) string {
	var isCompiled int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &isCompiled)
	if isCompiled == 0 {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		if logLength > 0 {
			// the log length includes the NULL character
			log := strings.Repeat("\x00", int(logLength+1))
			gl.GetShaderInfoLog(shader, logLength, &logLength, gl.Str(log))
			return strings.TrimRight(log, "\x00")
		}
		return "unknown compile error"
	}
	return ""
}

// setAttributes binds the vertex layout and uniforms for one draw call.
func (sh *shaderProgram) setAttributes(uniforms render.Uniforms, textureID uint32) {
	gl.UseProgram(sh.handle)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, textureID)
	gl.Uniform1i(sh.texture, 0)

	gl.UniformMatrix4fv(sh.transform, 1, false, &uniforms.Transform[0])
	if sh.colorModulate >= 0 {
		gl.Uniform4fv(sh.colorModulate, 1, &uniforms.Color[0])
	}

	stride := int32(render.VertexStride * 4)

	gl.EnableVertexAttribArray(uint32(sh.position))
	gl.VertexAttribPointerWithOffset(uint32(sh.position), 3, gl.FLOAT, false, stride, uintptr(render.VertexOffsetPos*4))

	gl.EnableVertexAttribArray(uint32(sh.uv))
	gl.VertexAttribPointerWithOffset(uint32(sh.uv), 2, gl.FLOAT, false, stride, uintptr(render.VertexOffsetUV*4))

	if sh.color >= 0 {
		gl.EnableVertexAttribArray(uint32(sh.color))
		gl.VertexAttribPointerWithOffset(uint32(sh.color), 4, gl.FLOAT, false, stride, uintptr(render.VertexOffsetColor*4))
	}
	if sh.additivity >= 0 {
		gl.EnableVertexAttribArray(uint32(sh.additivity))
		gl.VertexAttribPointerWithOffset(uint32(sh.additivity), 1, gl.FLOAT, false, stride, uintptr(render.VertexOffsetAdditiv*4))
	}
}
