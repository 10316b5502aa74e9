package pmove

import (
	"github.com/strafesim/pmove/event"
	"github.com/strafesim/pmove/game"
)

// checkFalling tracks the peak downward speed while airborne and, on landing,
// applies the view punch and emits signals for crossings of the punch and
// damage thresholds. Damage application itself is a consumer concern.
func (ctx *moveContext) checkFalling() {
	st := ctx.state

	if st.OnGround() {
		if st.FallVelocity >= game.FallPunchThreshold {
			punch := st.FallVelocity * game.FallPunchMultiplier
			if punch > game.MaxFallPunch {
				punch = game.MaxFallPunch
			}
			st.PunchAngle[0] = punch

			if ctx.sim.Sink != nil {
				ctx.sim.Sink.Push(event.HardLanding{
					EvTick: ctx.cmd.Tick,
					Speed:  st.FallVelocity,
					Punch:  punch,
				})
			}
		}

		if st.FallVelocity >= game.FallDamageThreshold {
			ctx.sim.debugf("fall damage: speed=%v", st.FallVelocity)
			if ctx.sim.Sink != nil {
				ctx.sim.Sink.Push(event.FallDamage{
					EvTick: ctx.cmd.Tick,
					Speed:  st.FallVelocity,
				})
			}
		}

		st.FallVelocity = 0
		return
	}

	if st.Velocity.Z() < 0 && -st.Velocity.Z() > st.FallVelocity {
		st.FallVelocity = -st.Velocity.Z()
	}
}
