// Package camera provides the orbit camera of the 3D lessons.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera orbits a target point in a +Z up scene.
type OrbitCamera struct {
	Target mgl32.Vec3

	// Spherical coordinates
	Distance float32
	Pitch    float32 // elevation above the XY plane, radians
	Yaw      float32 // angle around +Z, radians; 0 looks along +Y

	MinPitch float32
	MaxPitch float32

	// FOV is the vertical field of view in radians.
	FOV       float32
	Near, Far float32
}

// NewOrbitCamera creates a camera looking down at target from the -Y side.
func NewOrbitCamera(target mgl32.Vec3, distance float32) *OrbitCamera {
	return &OrbitCamera{
		Target:   target,
		Distance: distance,
		Pitch:    0.6, // ~35 degrees
		MinPitch: -1.4,
		MaxPitch: 1.4,
		FOV:      mgl32.DegToRad(45),
		Near:     0.1,
		Far:      100,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	cp := float32(math.Cos(float64(c.Pitch)))
	sp := float32(math.Sin(float64(c.Pitch)))
	sy := float32(math.Sin(float64(c.Yaw)))
	cy := float32(math.Cos(float64(c.Yaw)))

	return c.Target.Add(mgl32.Vec3{
		-c.Distance * cp * sy,
		-c.Distance * cp * cy,
		c.Distance * sp,
	})
}

// Facing returns the unit vector from the target towards the camera.
func (c *OrbitCamera) Facing() mgl32.Vec3 {
	return c.Position().Sub(c.Target).Normalize()
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 0, 1})
}

// Projection returns a perspective projection for the given aspect ratio.
func (c *OrbitCamera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(c.FOV, aspect, c.Near, c.Far)
}

// Orbit turns the camera around the target. Pitch is clamped.
func (c *OrbitCamera) Orbit(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch = mgl32.Clamp(c.Pitch+dPitch, c.MinPitch, c.MaxPitch)
}
