package world

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/strafesim/pmove"
	"github.com/strafesim/pmove/game"
)

// Brush is one axis-aligned convex volume of world geometry.
type Brush struct {
	Box      cube.BBox
	Contents pmove.Contents
}

// World is a brush soup implementing pmove.TraceProvider and
// pmove.LadderDetector for tests and tools. Brushes are kept in an ordered
// map: when two surfaces tie on a trace, insertion order decides which plane
// is reported, and that order has to be reproducible across every process
// simulating the same entity.
type World struct {
	brushes *orderedmap.OrderedMap[string, Brush]
}

func New() *World {
	return &World{brushes: orderedmap.NewOrderedMap[string, Brush]()}
}

// AddBrush registers a brush under a unique name. Re-adding a name replaces
// the brush but keeps its original position in the iteration order.
func (w *World) AddBrush(name string, box cube.BBox, contents pmove.Contents) {
	w.brushes.Set(name, Brush{Box: box, Contents: contents})
}

// AddFloor is a convenience for a solid slab spanning x/y extents below the
// given top height.
func (w *World) AddFloor(name string, minX, minY, maxX, maxY, top float32) {
	w.AddBrush(name, cube.Box(minX, minY, top-64, maxX, maxY, top), pmove.ContentsSolid)
}

// PointContents reports the contents of the first brush containing the point,
// in insertion order.
func (w *World) PointContents(pos mgl32.Vec3) pmove.Contents {
	for el := w.brushes.Front(); el != nil; el = el.Next() {
		if containsPoint(el.Value.Box, pos) {
			return el.Value.Contents
		}
	}
	return pmove.ContentsEmpty
}

// CheckLadder reports ladder contact when the hull, grown slightly, overlaps a
// ladder brush. The reported normal is the dominant horizontal direction from
// the brush center to the entity.
func (w *World) CheckLadder(origin, forward mgl32.Vec3, hull pmove.Hull) (mgl32.Vec3, bool) {
	bb := hull.BBox().Translate(origin).Grow(1)
	for el := w.brushes.Front(); el != nil; el = el.Next() {
		if el.Value.Contents != pmove.ContentsLadder {
			continue
		}
		if !bb.IntersectsWith(el.Value.Box) {
			continue
		}

		center := el.Value.Box.Min().Add(el.Value.Box.Max()).Mul(0.5)
		d := origin.Sub(center)
		ad := game.AbsVec32(d)
		normal := mgl32.Vec3{1, 0, 0}
		if ad.Y() > ad.X() {
			normal = mgl32.Vec3{0, 1, 0}
			if d.Y() < 0 {
				normal = mgl32.Vec3{0, -1, 0}
			}
		} else if d.X() < 0 {
			normal = mgl32.Vec3{-1, 0, 0}
		}
		return normal, true
	}
	return mgl32.Vec3{}, false
}

func containsPoint(box cube.BBox, pos mgl32.Vec3) bool {
	min, max := box.Min(), box.Max()
	return pos.X() > min.X() && pos.X() < max.X() &&
		pos.Y() > min.Y() && pos.Y() < max.Y() &&
		pos.Z() > min.Z() && pos.Z() < max.Z()
}
