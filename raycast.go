package reassemble

import "math"

// RayCaster is the black-box picking capability: it returns the handle of the
// nearest object hit by a world-space ray. The hit may be any scene object,
// not only a puzzle part.
type RayCaster interface {
	CastRay(r Ray) (Handle, bool)
}

// SphereCaster picks nodes by their bounding spheres (Node.HitRadius around
// the node's world position). Nodes with a zero radius are skipped.
type SphereCaster struct {
	Nodes []*Node
}

// NewSphereCaster creates a caster over the given nodes.
func NewSphereCaster(nodes ...*Node) *SphereCaster {
	return &SphereCaster{Nodes: nodes}
}

// CastRay implements RayCaster.
func (c *SphereCaster) CastRay(r Ray) (Handle, bool) {
	var best *Node
	bestT := math.Inf(1)
	for _, n := range c.Nodes {
		if n == nil || n.HitRadius <= 0 {
			continue
		}
		t, ok := raySphere(r, n.WorldPosition(), n.HitRadius)
		if ok && t < bestT {
			best, bestT = n, t
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

// raySphere returns the nearest non-negative hit distance of r against a
// sphere. A ray starting inside the sphere hits at distance 0.
func raySphere(r Ray, center Vec3, radius float64) (float64, bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius
	if c <= 0 {
		return 0, true
	}
	disc := b*b - c
	if disc < 0 || b > 0 {
		return 0, false
	}
	return -b - math.Sqrt(disc), true
}
