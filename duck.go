package pmove

import "github.com/strafesim/pmove/game"

// duck advances the crouch state machine: starting a transition on duck press,
// attempting to stand on release, and completing an in-flight transition when
// its timer expires or the entity leaves the ground.
func (ctx *moveContext) duck() {
	st := ctx.state

	if st.Buttons.Held(ButtonDuck) {
		if !st.Ducking() && !st.InDuck {
			st.InDuck = true
			st.DuckTime = game.DuckTime
		}
	} else if st.Ducking() || st.InDuck {
		ctx.unduck()
	}

	if st.InDuck {
		st.DuckTime -= ctx.frameTime

		if st.DuckTime <= 0 || !st.OnGround() {
			st.setDucking(true)
			st.Hull = HullDucked
			st.InDuck = false

			// On the ground the hull shrinks toward the floor, so the
			// center drops by the half-height delta. In the air the
			// feet are pulled up instead and the center stays put.
			if st.OnGround() {
				st.Origin[2] -= game.StandingHalfHeight - game.DuckedHalfHeight
			}
			ctx.sim.debugf("duck complete at %v", st.Origin)
		}
	}
}

// unduck attempts to stand. Standing from a committed duck raises the origin
// by the hull height delta, so the headroom probe runs with the standing hull
// first; a transition that never completed is simply cancelled in place.
func (ctx *moveContext) unduck() {
	st := ctx.state

	if !st.Ducking() {
		// Mid-transition, hull never switched: cancel with no origin
		// change.
		st.InDuck = false
		st.DuckTime = 0
		return
	}

	newOrigin := st.Origin
	newOrigin[2] += game.StandingHalfHeight - game.DuckedHalfHeight

	savedHull := st.Hull
	st.Hull = HullStanding
	trace := ctx.playerTrace(newOrigin, newOrigin)

	if trace.StartSolid {
		// No headroom; stay ducked.
		st.Hull = savedHull
		return
	}

	st.setDucking(false)
	st.InDuck = false
	st.DuckTime = 0
	st.Origin = newOrigin
}
