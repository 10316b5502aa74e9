package pmove

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/strafesim/pmove/game"
)

// flyMove advances the entity along its velocity for the remainder of the
// tick, sliding along every surface hit. It terminates after game.MaxBumps
// iterations at the latest; filling the clip plane set or an embedded trace
// zeroes the velocity instead of looping.
func (ctx *moveContext) flyMove() BlockedFlags {
	st := ctx.state

	var blocked BlockedFlags
	var planes [game.MaxClipPlanes]mgl32.Vec3
	numPlanes := 0

	originalVelocity := st.Velocity
	timeLeft := ctx.frameTime

	for bumpCount := 0; bumpCount < game.MaxBumps; bumpCount++ {
		if st.Velocity.Len() == 0 {
			break
		}

		end := st.Origin.Add(st.Velocity.Mul(timeLeft))
		trace := ctx.playerTrace(st.Origin, end)

		if trace.AllSolid {
			// Embedded in solid. The trace carries no usable plane, so
			// there is nothing to slide against: give up for this tick.
			st.Velocity = mgl32.Vec3{}
			blocked |= BlockedStuck
			ctx.sim.debugf("flyMove: embedded in solid at %v", st.Origin)
			break
		}

		if trace.Fraction > 0 {
			st.Origin = trace.EndPos
			// A surface only constrains sliding while it is the most
			// recent contact.
			numPlanes = 0
		}

		if trace.Fraction == 1.0 {
			break
		}

		timeLeft -= timeLeft * trace.Fraction

		if trace.Plane.Normal.Z() > game.MaxFloorNormal {
			blocked |= BlockedFloor
		}
		if trace.Plane.Normal.Z() == 0 {
			blocked |= BlockedWall
		}

		planes[numPlanes] = trace.Plane.Normal
		numPlanes++
		if numPlanes >= game.MaxClipPlanes {
			st.Velocity = mgl32.Vec3{}
			break
		}

		// Clip the tick-entry velocity against the newest contact. If the
		// result no longer penetrates any recorded plane the slide is
		// settled; otherwise keep bumping.
		st.Velocity = clipVelocity(originalVelocity, planes[numPlanes-1], 1.0)

		i := 0
		for ; i < numPlanes; i++ {
			if st.Velocity.Dot(planes[i]) < 0 {
				break
			}
		}
		if i == numPlanes {
			break
		}
	}

	ctx.blocked |= blocked
	return blocked
}

// stepMove retries a blocked ground move by stepping up, moving forward at the
// raised height and settling back down. The stepped position is only committed
// when the final downward trace lands on a floor; anything else falls back to
// the original blocked slide.
func (ctx *moveContext) stepMove(dest mgl32.Vec3, trace TraceResult) {
	st := ctx.state

	stepUp := st.Origin
	stepUp[2] += ctx.sim.Vars.StepSize

	upTrace := ctx.playerTrace(st.Origin, stepUp)
	if upTrace.AllSolid {
		// No headroom; slide along the original obstruction.
		st.Velocity = clipVelocity(st.Velocity, trace.Plane.Normal, 1.0)
		st.Origin = trace.EndPos
		return
	}

	stepDest := upTrace.EndPos
	stepDest[0] = dest.X()
	stepDest[1] = dest.Y()
	forwardTrace := ctx.playerTrace(upTrace.EndPos, stepDest)

	stepDown := forwardTrace.EndPos
	stepDown[2] = st.Origin.Z()
	downTrace := ctx.playerTrace(forwardTrace.EndPos, stepDown)

	if !downTrace.StartSolid && !downTrace.AllSolid {
		if downTrace.Plane.Normal.Z() > game.MaxFloorNormal {
			st.Origin = downTrace.EndPos
			ctx.sim.debugf("stepMove: stepped to %v", st.Origin)
			return
		}
	}

	st.Origin = trace.EndPos
	st.Velocity = clipVelocity(st.Velocity, trace.Plane.Normal, 1.0)
}
