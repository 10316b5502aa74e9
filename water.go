package pmove

import "github.com/strafesim/pmove/game"

// waterMove handles swimming: the wish direction gains a vertical component
// from the up axis, speed is capped below the ground maximum, a gentler
// dedicated friction applies, and the same accelerate primitive feeds the
// slide.
func (ctx *moveContext) waterMove() {
	st := ctx.state
	vars := ctx.sim.Vars

	wishVel := ctx.wishVelocity()
	wishVel[2] = ctx.forward.Z()*ctx.cmd.ForwardMove + ctx.cmd.UpMove

	wishDir := wishVel
	wishSpeed := wishDir.Len()
	if wishSpeed > game.StopEpsilon {
		wishDir = wishDir.Mul(1.0 / wishSpeed)
	}

	wishSpeed *= st.MaxSpeed

	maxSpeed := st.MaxSpeed * game.WaterSpeedFactor
	if wishSpeed > maxSpeed {
		wishVel = wishVel.Mul(maxSpeed / wishSpeed)
		wishSpeed = maxSpeed
	}

	speed := st.Velocity.Len()
	if speed > 0 {
		newSpeed := speed - ctx.frameTime*speed*vars.WaterFriction
		if newSpeed < 0 {
			newSpeed = 0
		}
		st.Velocity = st.Velocity.Mul(newSpeed / speed)
	}

	ctx.accelerate(wishDir, wishSpeed, vars.WaterAccelerate)
	ctx.flyMove()
}
