package pmove

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/strafesim/pmove/game"
)

// walkMove handles one tick of ground movement: friction, acceleration toward
// the wish direction, then a single forward trace with stair stepping when
// blocked.
func (ctx *moveContext) walkMove() {
	st := ctx.state

	wishVel := ctx.wishVelocity()
	wishDir := wishVel
	wishSpeed := wishDir.Len()
	if wishSpeed > game.StopEpsilon {
		wishDir = wishDir.Mul(1.0 / wishSpeed)
	}

	wishSpeed *= st.MaxSpeed
	if wishSpeed > st.MaxSpeed {
		wishVel = wishVel.Mul(st.MaxSpeed / wishSpeed)
		wishSpeed = st.MaxSpeed
	}

	if st.Buttons.Held(ButtonSpeed) {
		wishSpeed *= game.WalkSpeedFactor
	}

	ctx.friction()
	ctx.accelerate(wishDir, wishSpeed, ctx.sim.Vars.Accelerate)
	ctx.checkVelocity()

	if st.Velocity.Len() < 1.0 {
		st.Velocity = mgl32.Vec3{}
		return
	}

	dest := st.Origin.Add(st.Velocity.Mul(ctx.frameTime))
	trace := ctx.playerTrace(st.Origin, dest)

	if trace.Fraction == 1.0 {
		st.Origin = dest
		return
	}

	ctx.stepMove(dest, trace)
}

// airMove handles one tick of airborne movement: capped air acceleration,
// gravity, then a full slide.
func (ctx *moveContext) airMove() {
	st := ctx.state

	wishVel := ctx.wishVelocity()
	wishDir := wishVel
	wishSpeed := wishDir.Len()
	if wishSpeed > game.StopEpsilon {
		wishDir = wishDir.Mul(1.0 / wishSpeed)
	}

	wishSpeed *= st.MaxSpeed

	ctx.airAccelerate(wishDir, wishSpeed, ctx.sim.Vars.AirAccelerate)
	ctx.addGravity()
	ctx.flyMove()
}
