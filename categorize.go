package pmove

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/strafesim/pmove/game"
)

// categorizePosition refreshes the water level and ground state from short
// probes around the current origin.
func (ctx *moveContext) categorizePosition() {
	ctx.checkWater()
	ctx.checkGround()
}

// checkGround probes a short distance straight down. No hit, a surface too
// steep to stand on, or strong upward velocity (actively jumping) all mean the
// entity is airborne. A shallow hit snaps the origin onto the surface and
// records the contacted entity.
func (ctx *moveContext) checkGround() {
	st := ctx.state
	st.GroundEntity = NoEntity

	point := st.Origin
	point[2] -= game.GroundCheckDist

	trace := ctx.playerTrace(st.Origin, point)

	if trace.Fraction == 1.0 {
		st.setOnGround(false)
		return
	}
	if trace.Plane.Normal.Z() < game.MaxFloorNormal {
		st.setOnGround(false)
		return
	}
	if st.Velocity.Z() > game.JumpLeaveGroundSpeed {
		st.setOnGround(false)
		return
	}

	st.setOnGround(true)
	st.GroundEntity = trace.Entity

	if trace.Fraction < 1.0 && trace.Fraction != 0.0 {
		st.Origin = trace.EndPos
	}
}

// checkWater samples the feet, waist and eye points against the world contents
// to grade how deep the entity is submerged.
func (ctx *moveContext) checkWater() {
	st := ctx.state
	mins, maxs := st.Hull.Mins(), st.Hull.Maxs()

	st.WaterLevel = WaterLevelNone
	st.WaterType = ContentsEmpty

	feet := st.Origin.Add(mgl32.Vec3{
		(mins.X() + maxs.X()) * 0.5,
		(mins.Y() + maxs.Y()) * 0.5,
		mins.Z() + 1,
	})
	contents := ctx.pointContents(feet)
	if contents.Liquid() {
		st.WaterType = contents
		st.WaterLevel = WaterLevelFeet

		waist := st.Origin
		waist[2] += (mins.Z() + maxs.Z()) * 0.5
		if ctx.pointContents(waist).Liquid() {
			st.WaterLevel = WaterLevelWaist

			eyes := st.Origin
			eyes[2] += st.Hull.ViewHeight()
			if ctx.pointContents(eyes).Liquid() {
				st.WaterLevel = WaterLevelHead
			}
		}
	}

	st.setInWater(st.WaterLevel > WaterLevelNone)
}
