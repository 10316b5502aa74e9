package pmove

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/strafesim/pmove/assert"
	"github.com/strafesim/pmove/game"
)

// Hull selects the bounding volume used for collision queries.
type Hull uint8

const (
	HullStanding Hull = iota
	HullDucked
	HullPoint
	HullLarge
	hullCount
)

var hullBoxes = [hullCount]cube.BBox{
	HullStanding: cube.Box(
		-game.StandingHalfWidth, -game.StandingHalfWidth, -game.StandingHalfHeight,
		game.StandingHalfWidth, game.StandingHalfWidth, game.StandingHalfHeight,
	),
	HullDucked: cube.Box(
		-game.StandingHalfWidth, -game.StandingHalfWidth, -game.DuckedHalfHeight,
		game.StandingHalfWidth, game.StandingHalfWidth, game.DuckedHalfHeight,
	),
	HullPoint: cube.Box(0, 0, 0, 0, 0, 0),
	HullLarge: cube.Box(
		-game.StandingHalfWidth, -game.StandingHalfWidth, -game.StandingHalfHeight,
		game.StandingHalfWidth, game.StandingHalfWidth, game.StandingHalfHeight,
	),
}

// BBox returns the hull's bounding box relative to the entity origin.
func (h Hull) BBox() cube.BBox {
	assert.IsTrue(h < hullCount, "invalid hull selector %d", h)
	return hullBoxes[h]
}

// Mins returns the hull's minimum half extents.
func (h Hull) Mins() mgl32.Vec3 {
	return h.BBox().Min()
}

// Maxs returns the hull's maximum half extents.
func (h Hull) Maxs() mgl32.Vec3 {
	return h.BBox().Max()
}

// ViewHeight returns the eye height above the origin for the hull.
func (h Hull) ViewHeight() float32 {
	if h == HullDucked {
		return game.DuckedViewHeight
	}
	return game.StandingViewHeight
}
