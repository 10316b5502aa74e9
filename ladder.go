package pmove

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/strafesim/pmove/game"
)

// checkLadder consults the pluggable ladder detector. Without one, no entity
// is ever on a ladder.
func (ctx *moveContext) checkLadder() bool {
	st := ctx.state
	st.OnLadder = false

	if ctx.sim.Ladder == nil {
		return false
	}
	if normal, ok := ctx.sim.Ladder.CheckLadder(st.Origin, ctx.forward, st.Hull); ok {
		st.OnLadder = true
		st.LadderNormal = normal
	}
	return st.OnLadder
}

// ladderMove replaces the velocity each tick: vertical speed comes from
// whether the player is looking up or down combined with forward input,
// lateral speed from strafing, then the result slides through the world.
func (ctx *moveContext) ladderMove() {
	st := ctx.state

	speed := game.LadderSpeed
	if st.Buttons.Held(ButtonSpeed) {
		speed *= 0.5
	}

	st.Velocity = mgl32.Vec3{}

	if ctx.cmd.ForwardMove != 0 {
		climb := speed
		if ctx.cmd.ForwardMove < 0 {
			climb = -climb
		}
		// Looking up climbs, looking down descends.
		if st.ViewAngles.X() < 0 {
			st.Velocity[2] = climb
		} else {
			st.Velocity[2] = -climb
		}
	}

	if ctx.cmd.SideMove != 0 {
		st.Velocity = st.Velocity.Add(ctx.right.Mul(ctx.cmd.SideMove * speed))
	}

	ctx.flyMove()
}
