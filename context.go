package pmove

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/strafesim/pmove/game"
)

// moveContext carries the per-tick scratch state for one Simulate call: the
// entity state being advanced, the input command, and the view basis vectors
// derived from it. Contexts are pooled; see pool.go.
type moveContext struct {
	sim   *Simulator
	state *PlayerState
	cmd   Command

	frameTime float32

	// View basis derived from the command's view angles each tick; forward
	// and right are flattened to the horizontal plane for ground movement.
	forward, right, up mgl32.Vec3

	blocked BlockedFlags
	outcome MoveOutcome
}

// playerMove runs the full per-tick movement sequence. The step order is load
// bearing: every step depends on the state left by the previous one.
func (ctx *moveContext) playerMove() {
	st := ctx.state

	st.ViewAngles = ctx.cmd.ViewAngles
	st.Buttons = ctx.cmd.Buttons

	ctx.angleVectors()
	ctx.categorizePosition()

	if st.Frozen() {
		ctx.sim.debugf("tick %d: frozen, no movement", ctx.cmd.Tick)
		ctx.outcome = OutcomeFrozen
		return
	}
	if st.Dead {
		st.MaxSpeed = game.DeadMaxSpeed
		ctx.outcome = OutcomeDead
		return
	}

	ctx.duck()

	// Ladder and water ticks end at their mover; re-categorization, fall
	// tracking and the button snapshot only run for ground and air moves.
	if ctx.checkLadder() {
		ctx.ladderMove()
		return
	}
	if st.WaterLevel >= WaterLevelWaist {
		ctx.waterMove()
		return
	}

	switch {
	case st.OnGround():
		if st.Buttons.Held(ButtonJump) {
			ctx.jump()
		} else {
			st.Flags &^= FlagWaterJump
		}
		// The jump may have taken the entity off the ground, in which
		// case the walk mover is skipped and air handling picks up next
		// tick.
		if st.OnGround() {
			ctx.walkMove()
		}
	default:
		ctx.airMove()
	}

	ctx.categorizePosition()
	ctx.checkFalling()
	ctx.checkVelocity()

	st.OldButtons = st.Buttons
	st.OldFlags = st.Flags
}

// angleVectors derives the view basis from the current view angles, then
// flattens forward and right onto the horizontal plane.
func (ctx *moveContext) angleVectors() {
	ctx.forward, ctx.right, ctx.up = game.AngleVectors(ctx.state.ViewAngles)
	ctx.forward = game.FlattenNormalize(ctx.forward)
	ctx.right = game.FlattenNormalize(ctx.right)
}

// playerTrace sweeps the entity's current hull between the given points,
// falling back to an unobstructed result when no provider is wired.
func (ctx *moveContext) playerTrace(start, end mgl32.Vec3) TraceResult {
	if ctx.sim.Trace == nil {
		return unobstructed(end)
	}
	return ctx.sim.Trace.Trace(start, end, ctx.state.Hull)
}

func (ctx *moveContext) pointContents(pos mgl32.Vec3) Contents {
	if ctx.sim.Trace == nil {
		return ContentsEmpty
	}
	return ctx.sim.Trace.PointContents(pos)
}

// wishVelocity builds the horizontal wish velocity from the command's movement
// axes and the flattened view basis.
func (ctx *moveContext) wishVelocity() mgl32.Vec3 {
	return mgl32.Vec3{
		ctx.forward.X()*ctx.cmd.ForwardMove + ctx.right.X()*ctx.cmd.SideMove,
		ctx.forward.Y()*ctx.cmd.ForwardMove + ctx.right.Y()*ctx.cmd.SideMove,
		0,
	}
}
