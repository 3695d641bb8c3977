// Package scene holds the rigid-body state of the lessons: transform nodes
// stored in an index-addressed forest and the clock that advances them.
package scene

import "github.com/go-gl/mathgl/mgl32"

// Node is the rigid-body state of one body. Angles are radians and are
// never wrapped; rates are radians per second and fixed once the node is
// added to a Forest. Parent links are kept by the Forest.
type Node struct {
	Name string

	SpinAngle   float32
	OrbitAngle  float32
	OrbitRadius float32
	Offset      mgl32.Vec3
	Scale       mgl32.Vec3

	SpinRate  float32
	OrbitRate float32
}

// Advance accumulates rate * dt into both angles.
func (n *Node) Advance(dt float64) {
	n.SpinAngle += n.SpinRate * float32(dt)
	n.OrbitAngle += n.OrbitRate * float32(dt)
}

// Local returns the node's transform relative to its parent:
// Rz(orbit) · T(radius + offset) · Rz(spin) · S(scale).
func (n *Node) Local() mgl32.Mat4 {
	t := n.Offset.Add(mgl32.Vec3{n.OrbitRadius, 0, 0})
	m := mgl32.HomogRotate3DZ(n.OrbitAngle)
	m = m.Mul4(mgl32.Translate3D(t[0], t[1], t[2]))
	m = m.Mul4(mgl32.HomogRotate3DZ(n.SpinAngle))
	return m.Mul4(mgl32.Scale3D(n.Scale[0], n.Scale[1], n.Scale[2]))
}

// Compose places n under a parent matrix: parent · Local.
func Compose(parent mgl32.Mat4, n *Node) mgl32.Mat4 {
	return parent.Mul4(n.Local())
}
