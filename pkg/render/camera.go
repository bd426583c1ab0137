package render

import (
	"errors"
	"math"

	"github.com/taigrr/tris/pkg/math3d"
)

// ErrDegenerateCamera is returned by Camera.Validate when the orientation
// vectors cannot span a screen plane (Up parallel to Normal, or a zero vector).
var ErrDegenerateCamera = errors.New("render: degenerate camera orientation")

// ProjectedVertex is a vertex after camera projection.
type ProjectedVertex struct {
	Position math3d.Vec2 // Screen position, roughly in [-1, 1] per axis
	Distance float64     // Cosine between the view direction and the ray to the point
}

// Projector maps world points to projected vertices.
type Projector interface {
	Project(point math3d.Vec3) ProjectedVertex
}

// Camera is a direction-only pinhole camera.
//
// Normal is the view direction and need not be unit length. Up need not be
// perpendicular to Normal. The side axis is derived on every call, so any
// mutation of Normal or Up is picked up immediately.
type Camera struct {
	Position math3d.Vec3
	Normal   math3d.Vec3
	Up       math3d.Vec3
}

// NewCamera creates a camera from explicit position, view direction and up.
func NewCamera(position, normal, up math3d.Vec3) *Camera {
	return &Camera{
		Position: position,
		Normal:   normal,
		Up:       up,
	}
}

// Upright creates a camera whose up vector is world +Y.
func Upright(position, normal math3d.Vec3) *Camera {
	return NewCamera(position, normal, math3d.Up())
}

// DirectionFromAngles returns the unit view direction for a spherical-angle
// controller. Azimuth turns around world +Y with 0 looking down -Z;
// elevation tilts toward +Y. Both are in radians.
func DirectionFromAngles(azimuth, elevation float64) math3d.Vec3 {
	return math3d.V3(
		-math.Sin(azimuth)*math.Cos(elevation),
		math.Sin(elevation),
		-math.Cos(azimuth)*math.Cos(elevation),
	)
}

// Side returns normalize(Normal × Up). It is NaN when Up is parallel to
// Normal.
func (c *Camera) Side() math3d.Vec3 {
	return c.Normal.Cross(c.Up).NormalizeStrict()
}

// Project maps a world point to screen space.
//
// Only the direction from the camera to the point matters: every point on
// one ray lands on the same screen position, and Distance is the cosine of
// the angle between the ray and Normal rather than a Euclidean depth. A
// point at the camera position projects to NaN.
func (c *Camera) Project(point math3d.Vec3) ProjectedVertex {
	delta := point.Sub(c.Position).NormalizeStrict()
	return ProjectedVertex{
		Position: math3d.V2(delta.Dot(c.Side()), delta.Dot(c.Up)),
		Distance: delta.Dot(c.Normal),
	}
}

// ProjectTriangle projects each vertex of a world triangle independently.
func (c *Camera) ProjectTriangle(tri Triangle) ScreenTriangle {
	return ProjectTriangle(c, tri)
}

// Translate moves the camera by delta in world space.
func (c *Camera) Translate(delta math3d.Vec3) {
	c.Position = c.Position.Add(delta)
}

// PlaneTranslate dollies the camera by delta.X along Normal and strafes by
// delta.Y along Side.
func (c *Camera) PlaneTranslate(delta math3d.Vec2) {
	c.Position = c.Position.Add(c.Normal.Scale(delta.X)).Add(c.Side().Scale(delta.Y))
}

// Rotation returns the transform that yaws by angle radians around the
// current Up axis.
func (c *Camera) Rotation(angle float64) math3d.Mat4 {
	return math3d.Rotate(c.Up, angle)
}

// Transform applies a direction transform to Normal and Up.
// Position is unchanged.
func (c *Camera) Transform(m math3d.Mat4) {
	c.Normal = m.MulVec3Dir(c.Normal)
	c.Up = m.MulVec3Dir(c.Up)
}

// Rotate yaws the camera by angle radians around its Up axis.
func (c *Camera) Rotate(angle float64) {
	c.Transform(c.Rotation(angle))
}

// LookAt points the camera at target and re-orthogonalizes Up against the
// new view direction.
func (c *Camera) LookAt(target math3d.Vec3) {
	c.Normal = target.Sub(c.Position).NormalizeStrict()
	c.Up = c.Side().Cross(c.Normal).NormalizeStrict()
}

// Degenerate reports whether the orientation cannot produce a screen plane.
func (c *Camera) Degenerate() bool {
	side := c.Side()
	return !side.IsFinite() || !c.Up.IsFinite() || !c.Normal.IsFinite()
}

// Validate returns ErrDegenerateCamera when the orientation is degenerate.
// Rendering with such a camera still runs; the affected pixels keep the
// background color.
func (c *Camera) Validate() error {
	if c.Degenerate() {
		return ErrDegenerateCamera
	}
	return nil
}
