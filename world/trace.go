package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/strafesim/pmove"
	"github.com/strafesim/pmove/game"
)

// Trace sweeps the given hull from start to end against every solid brush and
// reports the nearest hit. Hull sweeps are reduced to point sweeps against
// Minkowski-expanded brushes.
func (w *World) Trace(start, end mgl32.Vec3, hull pmove.Hull) pmove.TraceResult {
	res := pmove.TraceResult{
		Fraction: 1.0,
		EndPos:   end,
		Entity:   pmove.NoEntity,
	}

	delta := end.Sub(start)
	startInside := false
	endInside := false

	for el := w.brushes.Front(); el != nil; el = el.Next() {
		if el.Value.Contents != pmove.ContentsSolid {
			continue
		}

		expanded := expandBrush(el.Value.Box, hull)
		enter, exit, axis, sign, hit := clipSegment(start, delta, expanded)
		if !hit {
			continue
		}

		if enter < 0 {
			startInside = true
			if exit >= 1 {
				endInside = true
			}
			continue
		}

		if enter < res.Fraction {
			res.Fraction = enter
			res.Plane.Normal = mgl32.Vec3{}
			res.Plane.Normal[axis] = sign
			res.Entity = pmove.WorldEntity
		}
	}

	res.StartSolid = startInside
	if startInside && endInside {
		res.AllSolid = true
		res.Fraction = 0
		res.EndPos = start
		return res
	}
	if startInside {
		// Started embedded but the sweep escapes; report no progress so
		// callers treat the position conservatively.
		res.Fraction = 0
		res.EndPos = start
		return res
	}

	if res.Fraction < 1.0 {
		// Back the hit off the surface so the resulting position does not
		// start the next trace embedded.
		if dist := delta.Len(); dist > 0 {
			res.Fraction -= game.DistEpsilon / dist
			if res.Fraction < 0 {
				res.Fraction = 0
			}
		}
		res.EndPos = start.Add(delta.Mul(res.Fraction))
		res.Plane.Dist = res.Plane.Normal.Dot(res.EndPos)
	} else {
		res.InOpen = true
	}

	if w.PointContents(res.EndPos).Liquid() {
		res.InWater = true
	}
	return res
}

// expandBrush grows a brush by the hull's extents so that a point sweep
// against the result is equivalent to a hull sweep against the brush.
func expandBrush(box cube.BBox, hull pmove.Hull) cube.BBox {
	mins, maxs := hull.Mins(), hull.Maxs()
	bmin, bmax := box.Min(), box.Max()
	return cube.Box(
		bmin.X()-maxs.X(), bmin.Y()-maxs.Y(), bmin.Z()-maxs.Z(),
		bmax.X()-mins.X(), bmax.Y()-mins.Y(), bmax.Z()-mins.Z(),
	)
}

// clipSegment intersects the segment start + t*delta, t in [0,1], with an
// axis-aligned box via the slab method. It reports entry/exit times, the axis
// whose plane was entered last and the sign of that plane's outward normal.
func clipSegment(start, delta mgl32.Vec3, box cube.BBox) (enter, exit float32, axis int, sign float32, hit bool) {
	min, max := box.Min(), box.Max()
	enter, exit = -mgl32.MaxValue, mgl32.MaxValue
	axis = -1

	for i := 0; i < 3; i++ {
		if delta[i] == 0 {
			if start[i] <= min[i] || start[i] >= max[i] {
				return 0, 0, 0, 0, false
			}
			continue
		}

		t1 := (min[i] - start[i]) / delta[i]
		t2 := (max[i] - start[i]) / delta[i]
		// A positive delta enters through the min face, whose outward
		// normal points along negative i.
		axisSign := float32(-1)
		if delta[i] < 0 {
			t1, t2 = t2, t1
			axisSign = 1
		}

		if t1 > enter {
			enter = t1
			axis = i
			sign = axisSign
		}
		if t2 < exit {
			exit = t2
		}
	}

	if axis == -1 {
		// Degenerate zero-length sweep fully inside the box.
		return -1, 2, 0, 0, true
	}
	if enter > exit || exit < 0 || enter > 1 {
		return 0, 0, 0, 0, false
	}
	return enter, exit, axis, sign, true
}
