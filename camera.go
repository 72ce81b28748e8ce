package reassemble

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Rect is a screen-space rectangle. The origin is the top-left corner and Y
// increases downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Camera is a perspective view camera. It converts screen positions to world
// rays for picking and dragging, and projects world points back to the screen.
type Camera struct {
	// Position is the eye position in world space.
	Position Vec3
	// Target is the world point the camera looks at.
	Target Vec3
	// Up is the world up hint used to orient the view.
	Up Vec3
	// FovY is the vertical field of view in degrees.
	FovY float64
	// Near and Far are the clip plane distances.
	Near, Far float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect
}

// NewCamera creates a camera at position looking at target with a 60 degree
// vertical field of view.
func NewCamera(position, target Vec3, viewport Rect) *Camera {
	return &Camera{
		Position: position,
		Target:   target,
		Up:       Vec3{0, 1, 0},
		FovY:     60,
		Near:     0.1,
		Far:      100,
		Viewport: viewport,
	}
}

// Forward returns the unit view direction.
func (c *Camera) Forward() Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}

func (c *Camera) viewProjection() mgl64.Mat4 {
	aspect := 1.0
	if c.Viewport.Height > 0 {
		aspect = c.Viewport.Width / c.Viewport.Height
	}
	proj := mgl64.Perspective(mgl64.DegToRad(c.FovY), aspect, c.Near, c.Far)
	view := mgl64.LookAtV(c.Position, c.Target, c.Up)
	return proj.Mul4(view)
}

// ScreenPointToRay returns the world-space ray from the near plane through the
// given screen position.
func (c *Camera) ScreenPointToRay(screen Vec2) Ray {
	x, y := c.screenToNDC(screen)
	inv := c.viewProjection().Inv()
	near := inv.Mul4x1(mgl64.Vec4{x, y, -1, 1})
	far := inv.Mul4x1(mgl64.Vec4{x, y, 1, 1})
	n := near.Vec3().Mul(1 / near.W())
	f := far.Vec3().Mul(1 / far.W())
	return NewRay(n, f.Sub(n))
}

// WorldToScreen projects a world point to screen coordinates. ok is false when
// the point is behind the camera.
func (c *Camera) WorldToScreen(p Vec3) (screen Vec2, ok bool) {
	clip := c.viewProjection().Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return Vec2{}, false
	}
	x := clip.X() / clip.W()
	y := clip.Y() / clip.W()
	vp := c.Viewport
	return Vec2{
		X: vp.X + (x+1)/2*vp.Width,
		Y: vp.Y + (1-y)/2*vp.Height,
	}, true
}

// screenToNDC maps a screen position inside the viewport to normalized device
// coordinates in [-1, 1], with +Y up.
func (c *Camera) screenToNDC(s Vec2) (float64, float64) {
	vp := c.Viewport
	if vp.Width == 0 || vp.Height == 0 {
		return 0, 0
	}
	x := 2*(s.X-vp.X)/vp.Width - 1
	y := 1 - 2*(s.Y-vp.Y)/vp.Height
	return x, y
}
