package pmove

// jump fires on the rising edge of the jump button while on the ground: the
// ground flag is cleared, vertical velocity is set to the precomputed jump
// speed, and any pending upward base velocity is merged in once.
func (ctx *moveContext) jump() {
	st := ctx.state

	if st.OldButtons.Held(ButtonJump) {
		// Still held from last tick; jumping is edge triggered.
		return
	}
	if !st.OnGround() {
		return
	}

	st.setOnGround(false)
	st.GroundEntity = NoEntity

	st.Velocity[2] = ctx.sim.Vars.JumpSpeed
	if st.BaseVelocity.Z() > 0 {
		st.Velocity[2] += st.BaseVelocity.Z()
		st.BaseVelocity[2] = 0
	}

	st.FallVelocity = 0
	ctx.sim.debugf("jump: velocity=%v", st.Velocity)
}
