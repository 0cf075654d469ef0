package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Attribute locations shared by the shader and the VAO setup.
const (
	attrQuad         = 0
	attrColor        = 1
	attrPositionSize = 2
)

// Particle vertex shader: one quad corner per vertex, one particle per
// instance. The quad is expanded along the camera axes so it always faces
// the viewer.
const particleVertSrc = `#version 410 core

layout(location = 0) in vec3 aQuad;          // -0.5..0.5 corner
layout(location = 1) in vec4 aColor;         // per instance
layout(location = 2) in vec4 aPositionSize;  // per instance: xyz + size

uniform mat4 uViewProj;
uniform vec3 uCameraRight;
uniform vec3 uCameraUp;

out vec2 vUV;
out vec4 vColor;

void main() {
    float size = aPositionSize.w;
    vec3 world = aPositionSize.xyz
        + uCameraRight * aQuad.x * size
        + uCameraUp * aQuad.y * size;
    gl_Position = uViewProj * vec4(world, 1.0);
    vUV = aQuad.xy + vec2(0.5);
    vColor = aColor;
}
` + "\x00"

// Particle fragment shader: soft round sprite, alpha scaled by the
// instance alpha.
const particleFragSrc = `#version 410 core

in vec2 vUV;
in vec4 vColor;
out vec4 FragColor;

void main() {
    float d = length(vUV - vec2(0.5)) * 2.0; // 0=center, 1=edge
    float falloff = clamp(1.0 - d * d, 0.0, 1.0);
    if (falloff <= 0.0) discard;
    FragColor = vec4(vColor.rgb, vColor.a * falloff);
}
` + "\x00"

// ShaderError carries the driver's info log for a shader stage that failed
// to compile, or for the program when Stage is "link".
type ShaderError struct {
	Stage string
	Log   string
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("%s shader: %s", e.Stage, e.Log)
}

// infoLog reads a GL info log of the given length, dropping the trailing NULs.
func infoLog(n int32, read func(int32, *uint8)) string {
	buf := make([]uint8, n+1)
	read(n, &buf[0])
	return strings.TrimRight(string(buf), "\x00")
}

func compileStage(stage string, kind uint32, source string) (uint32, error) {
	sh := gl.CreateShader(kind)
	src, free := gl.Strs(source)
	gl.ShaderSource(sh, 1, src, nil)
	free()
	gl.CompileShader(sh)

	var ok int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &ok)
	if ok != gl.FALSE {
		return sh, nil
	}
	var n int32
	gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &n)
	msg := infoLog(n, func(n int32, p *uint8) { gl.GetShaderInfoLog(sh, n, nil, p) })
	gl.DeleteShader(sh)
	return 0, &ShaderError{Stage: stage, Log: msg}
}

// buildProgram compiles the particle shader pair and links it. The stage
// objects are released whether or not linking succeeds.
func buildProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileStage("vertex", gl.VERTEX_SHADER, vertSrc)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vs)
	fs, err := compileStage("fragment", gl.FRAGMENT_SHADER, fragSrc)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fs)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)
	gl.DetachShader(prog, vs)
	gl.DetachShader(prog, fs)

	var ok int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &ok)
	if ok != gl.FALSE {
		return prog, nil
	}
	var n int32
	gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &n)
	msg := infoLog(n, func(n int32, p *uint8) { gl.GetProgramInfoLog(prog, n, nil, p) })
	gl.DeleteProgram(prog)
	return 0, &ShaderError{Stage: "link", Log: msg}
}
