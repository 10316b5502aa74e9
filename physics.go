package pmove

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/strafesim/pmove/game"
)

// accelerate adds speed toward the wish direction. Only the component of the
// current velocity along wishDir counts as "already there", so the shortfall
// is wishSpeed minus that projection, added at accel*frameTime*wishSpeed per
// tick and capped to never overshoot in a single step.
func (ctx *moveContext) accelerate(wishDir mgl32.Vec3, wishSpeed, accel float32) {
	st := ctx.state

	currentSpeed := st.Velocity.Dot(wishDir)
	addSpeed := wishSpeed - currentSpeed
	if addSpeed <= 0 {
		return
	}

	accelSpeed := accel * ctx.frameTime * wishSpeed
	if accelSpeed > addSpeed {
		accelSpeed = addSpeed
	}

	st.Velocity[0] += accelSpeed * wishDir.X()
	st.Velocity[1] += accelSpeed * wishDir.Y()
	st.Velocity[2] += accelSpeed * wishDir.Z()
}

// airAccelerate is the air variant of accelerate. The wish speed used for the
// shortfall is first capped to vars.AirSpeedCap, while the projection is still
// taken against the full current velocity. Strafing perpendicular to the
// current velocity therefore projects to ~0 and receives the full (small)
// acceleration every tick no matter how fast the entity already moves; that
// compounding is the air-strafe mechanic and the exact operation order here
// must not change. Note that the per-tick gain still scales with the uncapped
// wishSpeed.
func (ctx *moveContext) airAccelerate(wishDir mgl32.Vec3, wishSpeed, accel float32) {
	st := ctx.state

	wishSpd := wishSpeed
	if wishSpd > ctx.sim.Vars.AirSpeedCap {
		wishSpd = ctx.sim.Vars.AirSpeedCap
	}

	currentSpeed := st.Velocity.Dot(wishDir)
	addSpeed := wishSpd - currentSpeed
	if addSpeed <= 0 {
		return
	}

	accelSpeed := accel * wishSpeed * ctx.frameTime
	if accelSpeed > addSpeed {
		accelSpeed = addSpeed
	}

	st.Velocity[0] += accelSpeed * wishDir.X()
	st.Velocity[1] += accelSpeed * wishDir.Y()
	st.Velocity[2] += accelSpeed * wishDir.Z()
}

// friction bleeds speed off while on the ground. The control speed used for
// the drop is floored at vars.StopSpeed so low speeds stop crisply while high
// speeds decay proportionally.
func (ctx *moveContext) friction() {
	st := ctx.state
	vars := ctx.sim.Vars

	speed := st.Velocity.Len()
	if speed < game.StopEpsilon {
		return
	}

	var drop float32
	if st.OnGround() {
		control := speed
		if control < vars.StopSpeed {
			control = vars.StopSpeed
		}
		drop = control * vars.Friction * ctx.frameTime
	}

	newSpeed := speed - drop
	if newSpeed < 0 {
		newSpeed = 0
	}

	if newSpeed != speed {
		newSpeed /= speed
		st.Velocity = st.Velocity.Mul(newSpeed)
	}
}

// addGravity integrates gravity for one tick and consumes any pending upward
// base velocity impulse.
func (ctx *moveContext) addGravity() {
	st := ctx.state
	vars := ctx.sim.Vars

	gravity := vars.Gravity
	if vars.EntGravity != 0.0 {
		gravity *= vars.EntGravity
	}

	st.Velocity[2] -= gravity * ctx.frameTime
	st.Velocity[2] += st.BaseVelocity.Z() * ctx.frameTime
	st.BaseVelocity[2] = 0
}

// clipVelocity removes the component of in that drives into the plane given by
// normal. overbounce of 1 slides; values above 1 reflect. Axes left with a
// residue below the stop epsilon are snapped to exactly zero to prevent
// numerical creep.
func clipVelocity(in, normal mgl32.Vec3, overbounce float32) mgl32.Vec3 {
	backoff := in.Dot(normal) * overbounce

	var out mgl32.Vec3
	out[0] = in.X() - backoff*normal.X()
	out[1] = in.Y() - backoff*normal.Y()
	out[2] = in.Z() - backoff*normal.Z()

	for i := 0; i < 3; i++ {
		if math32.Abs(out[i]) < game.StopEpsilon {
			out[i] = 0
		}
	}
	return out
}

// checkVelocity clamps every velocity component to the configured bound.
func (ctx *moveContext) checkVelocity() {
	st := ctx.state
	maxVel := ctx.sim.Vars.MaxVelocity

	for i := 0; i < 3; i++ {
		if st.Velocity[i] > maxVel {
			st.Velocity[i] = maxVel
		}
		if st.Velocity[i] < -maxVel {
			st.Velocity[i] = -maxVel
		}
	}
}
