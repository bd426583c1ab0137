package main

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/tris/pkg/math3d"
	"github.com/taigrr/tris/pkg/render"
)

// Per-key step sizes.
const (
	moveStep = 0.1
	turnStep = 0.1
)

// settleEpsilon is how close an axis must be to its target, with how little
// velocity, before it stops moving the camera.
const settleEpsilon = 1e-4

// control is one input's requested camera motion.
type control struct {
	Dolly  float64 // Along the view direction
	Strafe float64 // Along the camera side
	Lift   float64 // Along world Y
	Yaw    float64 // Radians around camera up
}

// axis eases an accumulated target with a spring and reports how far it
// moved each frame.
type axis struct {
	target, pos, vel float64
	spring           harmonica.Spring
}

func newAxis(fps int) axis {
	// Critically damped: no overshoot past the key press.
	return axis{spring: harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0)}
}

func (a *axis) step() float64 {
	if a.settled() {
		return 0
	}
	prev := a.pos
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
	if a.settled() {
		a.pos, a.vel = a.target, 0
	}
	return a.pos - prev
}

func (a *axis) settled() bool {
	return math.Abs(a.target-a.pos) < settleEpsilon && math.Abs(a.vel) < settleEpsilon
}

// rig turns discrete key presses into smooth camera motion.
type rig struct {
	dolly, strafe, lift, yaw axis
}

func newRig(fps int) *rig {
	return &rig{
		dolly:  newAxis(fps),
		strafe: newAxis(fps),
		lift:   newAxis(fps),
		yaw:    newAxis(fps),
	}
}

// Push adds a control to the rig's targets.
func (r *rig) Push(c control) {
	r.dolly.target += c.Dolly
	r.strafe.target += c.Strafe
	r.lift.target += c.Lift
	r.yaw.target += c.Yaw
}

// Step advances every spring one frame and moves cam by the difference.
// It reports whether the camera changed.
func (r *rig) Step(cam *render.Camera) bool {
	dd, ds, dl, dy := r.dolly.step(), r.strafe.step(), r.lift.step(), r.yaw.step()
	if dd == 0 && ds == 0 && dl == 0 && dy == 0 {
		return false
	}
	cam.PlaneTranslate(math3d.V2(dd, ds))
	cam.Translate(math3d.V3(0, dl, 0))
	cam.Rotate(dy)
	return true
}

// Settled reports whether every axis has reached its target.
func (r *rig) Settled() bool {
	return r.dolly.settled() && r.strafe.settled() && r.lift.settled() && r.yaw.settled()
}
