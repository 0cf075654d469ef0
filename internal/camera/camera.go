// Package camera holds the static look-at camera that frames the fountain.
package camera

import "github.com/go-gl/mathgl/mgl32"

// Camera is a perspective look-at camera. It is set up once and never moves.
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3

	FovY      float32 // degrees
	Aspect    float32
	Near, Far float32
}

func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

func (c Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect, c.Near, c.Far)
}

// ViewProjection is the transform uploaded to the particle shader. The
// model matrix is identity: particles are already in world space.
func (c Camera) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

// Position recovers the eye from the inverse view matrix. This is the
// point the depth sort measures against.
func (c Camera) Position() mgl32.Vec3 {
	return c.View().Inv().Col(3).Vec3()
}

// Billboard returns the world-space right and up axes of the view, used to
// turn each instance quad toward the camera.
func (c Camera) Billboard() (right, up mgl32.Vec3) {
	v := c.View()
	right = mgl32.Vec3{v.At(0, 0), v.At(0, 1), v.At(0, 2)}
	up = mgl32.Vec3{v.At(1, 0), v.At(1, 1), v.At(1, 2)}
	return right, up
}
