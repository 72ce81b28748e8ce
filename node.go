package reassemble

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Handle is the capability a scene object exposes to the puzzle: a stable
// identity (the handle value itself), a name, and gettable/settable local and
// world positions. Renderers and engines adapt their transforms to Handle.
type Handle interface {
	Name() string
	LocalPosition() Vec3
	SetLocalPosition(Vec3)
	WorldPosition() Vec3
	SetWorldPosition(Vec3)
}

// SceneObjectProvider resolves named part handles at composition time.
type SceneObjectProvider interface {
	Lookup(name string) (Handle, bool)
}

// nodeIDCounter is a plain counter; nodes are created on the game goroutine.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is an in-memory transform: a local position and a yaw (degrees, about
// the world up axis) relative to its parent. Node implements Handle.
type Node struct {
	ID   uint32
	name string

	Parent   *Node
	children []*Node

	// Position is relative to the parent.
	Position Vec3
	// Yaw rotates this node and its subtree about +Y, in degrees.
	Yaw float64

	// HitRadius is the bounding sphere radius used by SphereCaster.
	// Zero makes the node unpickable.
	HitRadius float64

	// UserData is free for the embedding application (mesh, sprite, color).
	UserData any
}

// NewNode creates a node at the given local position.
func NewNode(name string, pos Vec3) *Node {
	return &Node{ID: nextNodeID(), name: name, Position: pos}
}

// Name returns the node's name.
func (n *Node) Name() string { return n.name }

// AddChild appends child to n, detaching it from any previous parent.
func (n *Node) AddChild(child *Node) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from n. It is a no-op if child is not a child of n.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			child.Parent = nil
			return
		}
	}
}

// Children returns the child list. The returned slice MUST NOT be mutated.
func (n *Node) Children() []*Node {
	return n.children
}

// LocalPosition returns the position relative to the parent.
func (n *Node) LocalPosition() Vec3 { return n.Position }

// SetLocalPosition sets the position relative to the parent.
func (n *Node) SetLocalPosition(p Vec3) { n.Position = p }

// worldRotation returns the accumulated yaw rotation of n and its ancestors.
func (n *Node) worldRotation() mgl64.Quat {
	q := mgl64.QuatRotate(mgl64.DegToRad(n.Yaw), mgl64.Vec3{0, 1, 0})
	if n.Parent != nil {
		q = n.Parent.worldRotation().Mul(q)
	}
	return q
}

// WorldPosition returns the position in world space.
func (n *Node) WorldPosition() Vec3 {
	if n.Parent == nil {
		return n.Position
	}
	return n.Parent.LocalToWorld(n.Position)
}

// LocalToWorld converts a point in n's local space to world space.
func (n *Node) LocalToWorld(p Vec3) Vec3 {
	return n.WorldPosition().Add(n.worldRotation().Rotate(p))
}

// SetWorldPosition moves the node so that its world position equals p.
func (n *Node) SetWorldPosition(p Vec3) {
	if n.Parent == nil {
		n.Position = p
		return
	}
	inv := n.Parent.worldRotation().Inverse()
	n.Position = inv.Rotate(p.Sub(n.Parent.WorldPosition()))
}

// Forward returns the node's world-space forward direction (+Z rotated by yaw).
func (n *Node) Forward() Vec3 {
	return n.worldRotation().Rotate(mgl64.Vec3{0, 0, 1})
}

// Rig is a root node with named part children. It is the in-memory
// SceneObjectProvider used by the examples and tests.
type Rig struct {
	Root  *Node
	parts map[string]*Node
	order []*Node
}

// NewRig creates a rig with an empty root at the origin.
func NewRig(name string) *Rig {
	return &Rig{
		Root:  NewNode(name, Vec3{}),
		parts: make(map[string]*Node),
	}
}

// AddPart creates a named child of the root at the given local position.
// Part names must be unique within a rig.
func (r *Rig) AddPart(name string, pos Vec3, hitRadius float64) (*Node, error) {
	if _, dup := r.parts[name]; dup {
		return nil, fmt.Errorf("rig %q: duplicate part %q", r.Root.Name(), name)
	}
	n := NewNode(name, pos)
	n.HitRadius = hitRadius
	r.Root.AddChild(n)
	r.parts[name] = n
	r.order = append(r.order, n)
	return n, nil
}

// Lookup implements SceneObjectProvider.
func (r *Rig) Lookup(name string) (Handle, bool) {
	n, ok := r.parts[name]
	if !ok {
		return nil, false
	}
	return n, true
}

// Part returns the named part node, or nil.
func (r *Rig) Part(name string) *Node {
	return r.parts[name]
}

// Parts returns the part nodes in insertion order. The returned slice MUST
// NOT be mutated.
func (r *Rig) Parts() []*Node {
	return r.order
}

// RotateYaw turns the whole rig about the world up axis by delta degrees.
func (r *Rig) RotateYaw(delta float64) {
	r.Root.Yaw += delta
}
