package reassemble

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is the 3D vector used for part poses, rays and planes.
type Vec3 = mgl64.Vec3

// Vec2 is a 2D vector used for screen positions and touch deltas.
// Y increases downward, matching screen coordinates.
type Vec2 struct {
	X, Y float64
}

// NotFound is returned by index lookups for handles outside the part set.
const NotFound = -1

// Defaults for the tunables exposed through Config.
const (
	defaultMoveSpeed      = 2.0
	defaultSnapDistance   = 0.3
	defaultExplodeDelay   = 0.5
	defaultDragSmoothing  = 0.2
	defaultRotateFactor   = 0.2
	defaultPickRadius     = 0.25
	defaultConfettiLength = 2.0
)

// Ray is a half-line starting at Origin. Direction is normalized.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay returns a ray with a normalized direction.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// Point returns the point at distance t along the ray.
func (r Ray) Point(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Plane is an infinite plane described by a unit normal and its signed
// distance from the origin along that normal.
type Plane struct {
	Normal   Vec3
	Distance float64
}

// NewPlane returns the plane with the given normal passing through point.
func NewPlane(normal, point Vec3) Plane {
	n := normal.Normalize()
	return Plane{Normal: n, Distance: -n.Dot(point)}
}

// Raycast intersects r with the plane. It returns the distance along the ray
// and true when the ray hits the plane in front of its origin. Rays parallel
// to the plane, or pointing away from it, report false.
func (p Plane) Raycast(r Ray) (float64, bool) {
	denom := r.Direction.Dot(p.Normal)
	if math.Abs(denom) < 1e-9 {
		return 0, false
	}
	enter := -(r.Origin.Dot(p.Normal) + p.Distance) / denom
	return enter, enter >= 0
}

// lerpVec3 linearly interpolates between a and b. t is not clamped.
func lerpVec3(a, b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
