package pmove

import "github.com/go-gl/mathgl/mgl32"

// Contents classifies what occupies a point in the world.
type Contents int32

const (
	ContentsEmpty  Contents = -1
	ContentsSolid  Contents = -2
	ContentsWater  Contents = -3
	ContentsSlime  Contents = -4
	ContentsLava   Contents = -5
	ContentsSky    Contents = -6
	ContentsLadder Contents = -16
)

// Liquid reports whether the contents behave as a swimmable liquid.
func (c Contents) Liquid() bool {
	return c == ContentsWater || c == ContentsSlime || c == ContentsLava
}

// WorldEntity is the entity identifier reported for hits against static world
// geometry.
const WorldEntity int32 = 0

// NoEntity is reported when a trace hit nothing.
const NoEntity int32 = -1

// Plane describes a surface hit by a trace.
type Plane struct {
	Normal mgl32.Vec3
	Dist   float32
}

// TraceResult is the outcome of sweeping a hull from a start to an end point.
type TraceResult struct {
	// AllSolid is set when the sweep started and ended inside solid geometry.
	// Such a result carries no usable plane and must not be slid against.
	AllSolid   bool
	StartSolid bool
	InOpen     bool
	InWater    bool

	// Fraction is how far the sweep got before hitting anything, 0-1.
	// A fraction of 1 means the full move completed unobstructed.
	Fraction float32
	EndPos   mgl32.Vec3

	Plane Plane

	Entity   int32
	HitGroup int32
}

// TraceProvider answers collision queries against world geometry. It must be
// free of side effects: the simulation may issue several queries per tick and
// assumes each sees identical geometry.
type TraceProvider interface {
	// Trace sweeps the given hull from start to end and reports the first hit.
	Trace(start, end mgl32.Vec3, hull Hull) TraceResult
	// PointContents reports what occupies the given point.
	PointContents(pos mgl32.Vec3) Contents
}

// LadderDetector decides whether an entity is on a ladder and, if so, reports
// the ladder's surface normal. What geometry counts as a ladder is the
// detector's concern; a nil detector means no ladders exist.
type LadderDetector interface {
	CheckLadder(origin, forward mgl32.Vec3, hull Hull) (mgl32.Vec3, bool)
}

// unobstructed is the fallback result used when no trace provider is set: the
// move is treated as fully completed.
func unobstructed(end mgl32.Vec3) TraceResult {
	return TraceResult{
		Fraction: 1.0,
		EndPos:   end,
		InOpen:   true,
		Entity:   NoEntity,
	}
}
