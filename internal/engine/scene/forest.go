package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

const root = -1

// Forest stores nodes in an arena. A node's parent must already be in the
// arena, so insertion order is a parent-first traversal order and cycles
// cannot be expressed.
type Forest struct {
	nodes   []Node
	initial []Node
	parents []int
}

// Add appends a root node and returns its index.
func (f *Forest) Add(n Node) (int, error) {
	return f.add(root, n), nil
}

// AddChild appends n under the node at index parent and returns its index.
func (f *Forest) AddChild(parent int, n Node) (int, error) {
	if parent < 0 || parent >= len(f.nodes) {
		return -1, fmt.Errorf("node %q: parent %d does not exist (have %d nodes)", n.Name, parent, len(f.nodes))
	}
	return f.add(parent, n), nil
}

func (f *Forest) add(parent int, n Node) int {
	if n.Scale == (mgl32.Vec3{}) {
		n.Scale = mgl32.Vec3{1, 1, 1}
	}
	f.nodes = append(f.nodes, n)
	f.initial = append(f.initial, n)
	f.parents = append(f.parents, parent)
	return len(f.nodes) - 1
}

// Len returns the number of nodes.
func (f *Forest) Len() int { return len(f.nodes) }

// Node returns a pointer to the node at index i.
func (f *Forest) Node(i int) *Node { return &f.nodes[i] }

// Parent returns the parent index of node i. ok is false for roots.
func (f *Forest) Parent(i int) (parent int, ok bool) {
	p := f.parents[i]
	return p, p != root
}

// Index returns the index of the first node with the given name.
func (f *Forest) Index(name string) (int, bool) {
	for i := range f.nodes {
		if f.nodes[i].Name == name {
			return i, true
		}
	}
	return -1, false
}

// Advance moves every node's angles forward by dt seconds.
func (f *Forest) Advance(dt float64) {
	for i := range f.nodes {
		f.nodes[i].Advance(dt)
	}
}

// Reset restores every node to the state it was added with.
func (f *Forest) Reset() {
	copy(f.nodes, f.initial)
}

// WorldMatrices computes every node's world matrix into dst, reusing its
// storage, and returns it. A child's world matrix is its parent's world
// matrix times its own Local, so the parent's scale applies to the
// child's radius, offset and size.
func (f *Forest) WorldMatrices(dst []mgl32.Mat4) []mgl32.Mat4 {
	dst = dst[:0]
	for i := range f.nodes {
		parent := mgl32.Ident4()
		if p := f.parents[i]; p != root {
			parent = dst[p]
		}
		dst = append(dst, Compose(parent, &f.nodes[i]))
	}
	return dst
}
