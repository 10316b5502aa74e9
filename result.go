package pmove

import "github.com/go-gl/mathgl/mgl32"

// MoveOutcome describes which path the simulator took for the current tick.
type MoveOutcome uint8

const (
	OutcomeNormal MoveOutcome = iota
	OutcomeFrozen
	OutcomeDead
)

// BlockedFlags is a bitmask of contact classifications accumulated by the
// slide solver during one tick.
type BlockedFlags int32

const (
	// BlockedFloor is set when a near-vertical surface normal (a floor) was
	// contacted.
	BlockedFloor BlockedFlags = 1 << iota
	// BlockedWall is set when a near-horizontal surface normal (a wall or
	// step) was contacted.
	BlockedWall
	// BlockedStuck is set when a trace reported fully embedded geometry and
	// movement was aborted for the tick.
	BlockedStuck = BlockedFlags(4)
)

// MoveResult captures the outcome of a single simulation tick.
type MoveResult struct {
	Origin   mgl32.Vec3
	Velocity mgl32.Vec3

	OnGround   bool
	Ducking    bool
	WaterLevel WaterLevel

	Blocked BlockedFlags
	Outcome MoveOutcome
}
