// Package render draws the packed particle instances with one instanced
// draw call per frame.
package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"particles/internal/particles"
)

const floatSize = 4

// View carries the per-frame camera state the shader needs.
type View struct {
	ViewProj  mgl32.Mat4
	Right, Up mgl32.Vec3
}

// Renderer owns the particle program and its buffers.
type Renderer struct {
	prog uint32
	vao  uint32

	quadVBO     uint32
	colorVBO    uint32
	positionVBO uint32

	uViewProj     int32
	uCameraRight  int32
	uCameraUp     int32
	capacity      int
	streamedBytes int // size of each instance stream
}

// Init loads GL function pointers. It needs a current context.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gl.ClearColor(0, 0, 0, 0)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	return nil
}

// NewRenderer compiles the particle program and allocates instance streams
// for up to capacity particles.
func NewRenderer(capacity int) (*Renderer, error) {
	prog, err := buildProgram(particleVertSrc, particleFragSrc)
	if err != nil {
		return nil, fmt.Errorf("particle program: %w", err)
	}

	r := &Renderer{
		prog:          prog,
		capacity:      capacity,
		streamedBytes: capacity * 4 * floatSize,
		uViewProj:     gl.GetUniformLocation(prog, gl.Str("uViewProj\x00")),
		uCameraRight:  gl.GetUniformLocation(prog, gl.Str("uCameraRight\x00")),
		uCameraUp:     gl.GetUniformLocation(prog, gl.Str("uCameraUp\x00")),
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	// Unit quad as a triangle strip, shared by every instance.
	quadVerts := [12]float32{
		-0.5, -0.5, 0,
		0.5, -0.5, 0,
		-0.5, 0.5, 0,
		0.5, 0.5, 0,
	}
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*floatSize, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(attrQuad)
	gl.VertexAttribPointer(attrQuad, 3, gl.FLOAT, false, 0, nil)
	gl.VertexAttribDivisor(attrQuad, 0)

	// Instance streams start empty; every frame orphans and refills them.
	gl.GenBuffers(1, &r.colorVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.colorVBO)
	gl.BufferData(gl.ARRAY_BUFFER, r.streamedBytes, nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(attrColor)
	gl.VertexAttribPointer(attrColor, 4, gl.FLOAT, false, 0, nil)
	gl.VertexAttribDivisor(attrColor, 1)

	gl.GenBuffers(1, &r.positionVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.positionVBO)
	gl.BufferData(gl.ARRAY_BUFFER, r.streamedBytes, nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(attrPositionSize)
	gl.VertexAttribPointer(attrPositionSize, 4, gl.FLOAT, false, 0, nil)
	gl.VertexAttribDivisor(attrPositionSize, 1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		r.Destroy()
		return nil, fmt.Errorf("particle buffers: gl error 0x%x", code)
	}
	return r, nil
}

// BeginFrame clears the framebuffer.
func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw uploads the instance arrays and issues a single instanced draw.
// Instances must already be sorted far to near.
func (r *Renderer) Draw(inst particles.Instances, v View) {
	count := min(inst.Count, r.capacity)
	if count == 0 {
		return
	}
	n := count * 4 * floatSize

	// Orphan then fill, so the driver hands back fresh storage instead of
	// waiting for last frame's draw to finish reading.
	gl.BindBuffer(gl.ARRAY_BUFFER, r.positionVBO)
	gl.BufferData(gl.ARRAY_BUFFER, r.streamedBytes, nil, gl.STREAM_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, n, gl.Ptr(inst.PositionSize))

	gl.BindBuffer(gl.ARRAY_BUFFER, r.colorVBO)
	gl.BufferData(gl.ARRAY_BUFFER, r.streamedBytes, nil, gl.STREAM_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, n, gl.Ptr(inst.Color))

	gl.UseProgram(r.prog)
	gl.UniformMatrix4fv(r.uViewProj, 1, false, &v.ViewProj[0])
	gl.Uniform3fv(r.uCameraRight, 1, &v.Right[0])
	gl.Uniform3fv(r.uCameraUp, 1, &v.Up[0])

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BindVertexArray(r.vao)
	gl.DrawArraysInstanced(gl.TRIANGLE_STRIP, 0, 4, int32(count))
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
}

// Destroy releases the GL objects. Safe on a partially built renderer.
func (r *Renderer) Destroy() {
	buffers := []uint32{r.quadVBO, r.colorVBO, r.positionVBO}
	gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}
