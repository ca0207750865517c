package main

import (
	"math"

	"github.com/tilecast/raster/vmath"
)

// orbitCamera is grounded on the teacher's CameraController
// (win_input.go): an auto-orbit mode that circles a target until the
// user provides manual input, at which point it switches to free-fly
// WASD+look movement. Unlike the teacher's Euler-angle Transform, this
// camera just derives eye/target/up directly and hands them to
// vmath.LookAt every frame.
type orbitCamera struct {
	target vmath.Vec3
	radius float64
	speed  float64
	angle  float64
	height float64

	autoOrbit bool
	eye       vmath.Vec3
	yaw       float64
	pitch     float64
}

func newOrbitCamera(target vmath.Vec3, radius, speed float64) *orbitCamera {
	return &orbitCamera{
		target:    target,
		radius:    radius,
		speed:     speed,
		height:    radius * 0.35,
		autoOrbit: true,
		eye:       vmath.Vec3{X: target.X + radius, Y: target.Y + radius*0.35, Z: target.Z},
	}
}

// update advances the orbit, or applies manual input if any was given.
// Mirrors CameraController.Update: any movement/rotation key disables
// auto-orbit permanently for the session.
func (c *orbitCamera) update(in inputState) {
	if in.forward || in.backward || in.left || in.right || in.rotLeft || in.rotRight {
		c.autoOrbit = false
	}

	if c.autoOrbit {
		c.angle += c.speed
		c.eye = vmath.Vec3{
			X: c.target.X + c.radius*math.Cos(c.angle),
			Y: c.target.Y + c.height*math.Sin(c.angle*0.5),
			Z: c.target.Z + c.radius*math.Sin(c.angle),
		}
		return
	}

	forward := c.target.Sub(c.eye).Normalize()
	right := vmath.Vec3{Y: 1}.Cross(forward).Normalize()
	const moveSpeed = 0.2
	if in.forward {
		c.eye = c.eye.Add(forward.Scale(moveSpeed))
	}
	if in.backward {
		c.eye = c.eye.Sub(forward.Scale(moveSpeed))
	}
	if in.right {
		c.eye = c.eye.Add(right.Scale(moveSpeed))
	}
	if in.left {
		c.eye = c.eye.Sub(right.Scale(moveSpeed))
	}
	if in.rotLeft {
		c.yaw -= 0.05
	}
	if in.rotRight {
		c.yaw += 0.05
	}
	c.target = c.eye.Add(vmath.Vec3{X: math.Cos(c.yaw), Z: math.Sin(c.yaw)})
}

func (c *orbitCamera) viewProj(aspect float64) vmath.Mat4 {
	view := vmath.LookAt(c.eye, c.target, vmath.Vec3{Y: 1})
	proj := vmath.Perspective(math.Pi/3, aspect, 0.1, 100)
	return proj.Mul(view)
}
