package pmove

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/strafesim/pmove/game"
)

// traceFunc adapts a plain function into a TraceProvider for tests.
type traceFunc struct {
	trace    func(start, end mgl32.Vec3, hull Hull) TraceResult
	contents func(pos mgl32.Vec3) Contents
	calls    int
}

func (f *traceFunc) Trace(start, end mgl32.Vec3, hull Hull) TraceResult {
	f.calls++
	return f.trace(start, end, hull)
}

func (f *traceFunc) PointContents(pos mgl32.Vec3) Contents {
	if f.contents == nil {
		return ContentsEmpty
	}
	return f.contents(pos)
}

func hitAt(start, end mgl32.Vec3, fraction float32, normal mgl32.Vec3) TraceResult {
	delta := end.Sub(start)
	endPos := start.Add(delta.Mul(fraction))
	return TraceResult{
		Fraction: fraction,
		EndPos:   endPos,
		Plane:    Plane{Normal: normal, Dist: normal.Dot(endPos)},
		Entity:   WorldEntity,
	}
}

func TestFlyMoveUnobstructed(t *testing.T) {
	ctx := testCtx(nil, 0.1)
	ctx.state.Velocity = mgl32.Vec3{100, -50, 20}

	ctx.flyMove()

	want := mgl32.Vec3{10, -5, 2}
	if ctx.state.Origin != want {
		t.Fatalf("expected origin %v, got %v", want, ctx.state.Origin)
	}
}

func TestFlyMoveSlidesAlongWall(t *testing.T) {
	ctx := testCtx(nil, 0.1)
	ctx.state.Velocity = mgl32.Vec3{100, 100, 0}

	wall := mgl32.Vec3{-1, 0, 0}
	first := true
	ctx.sim.Trace = &traceFunc{trace: func(start, end mgl32.Vec3, hull Hull) TraceResult {
		if first {
			first = false
			return hitAt(start, end, 0.5, wall)
		}
		return unobstructed(end)
	}}

	blocked := ctx.flyMove()

	if blocked&BlockedWall == 0 {
		t.Fatalf("expected wall blocked flag, got %v", blocked)
	}
	// The X component is clipped away and the result parallels the only
	// recorded plane, so the slide settles after the partial move.
	if v := ctx.state.Velocity; v.X() != 0 || v.Y() != 100 {
		t.Fatalf("expected velocity (0, 100, 0), got %v", v)
	}
	want := mgl32.Vec3{5, 5, 0}
	if o := ctx.state.Origin; !game.Float32ApproxEq(o.X(), want.X()) || !game.Float32ApproxEq(o.Y(), want.Y()) {
		t.Fatalf("expected origin %v, got %v", want, o)
	}
	if ctx.sim.Trace.(*traceFunc).calls != 1 {
		t.Fatalf("expected a single trace, got %d", ctx.sim.Trace.(*traceFunc).calls)
	}
}

func TestFlyMoveWedgeRetainsSlide(t *testing.T) {
	ctx := testCtx(nil, 0.1)
	ctx.state.Velocity = mgl32.Vec3{100, 100, 0}

	// Zero progress into the first of two wedge walls. Clipping against it
	// leaves the component along the wall, which satisfies every recorded
	// plane, so the slide velocity survives and the second wall is never
	// queried.
	normals := []mgl32.Vec3{{-1, 0, 0}, {0, -1, 0}}
	stub := &traceFunc{}
	stub.trace = func(start, end mgl32.Vec3, hull Hull) TraceResult {
		return hitAt(start, end, 0, normals[(stub.calls-1)%2])
	}
	ctx.sim.Trace = stub

	blocked := ctx.flyMove()

	if blocked&BlockedWall == 0 {
		t.Fatalf("expected wall blocked flag, got %v", blocked)
	}
	if stub.calls != 1 {
		t.Fatalf("expected a single trace, got %d", stub.calls)
	}
	if v := ctx.state.Velocity; v.X() != 0 || v.Y() != 100 {
		t.Fatalf("expected velocity (0, 100, 0), got %v", v)
	}
	if ctx.state.Origin != (mgl32.Vec3{}) {
		t.Fatalf("expected no progress, got origin %v", ctx.state.Origin)
	}
}

func TestFlyMoveBumpLimitBoundsAdversarialTraces(t *testing.T) {
	ctx := testCtx(nil, 0.1)
	ctx.state.Velocity = mgl32.Vec3{100, 100, 0}

	// Degenerate short normals make every clip re-penetrate an earlier
	// plane, so the loop never settles; only the bump limit ends the tick.
	normals := []mgl32.Vec3{{-0.5, 0, 0}, {0, -0.5, 0}}
	stub := &traceFunc{}
	stub.trace = func(start, end mgl32.Vec3, hull Hull) TraceResult {
		return hitAt(start, end, 0, normals[(stub.calls-1)%2])
	}
	ctx.sim.Trace = stub

	blocked := ctx.flyMove()

	if stub.calls != game.MaxBumps {
		t.Fatalf("expected %d traces, got %d", game.MaxBumps, stub.calls)
	}
	if blocked&BlockedWall == 0 {
		t.Fatalf("expected wall blocked flag, got %v", blocked)
	}
	if ctx.state.Origin != (mgl32.Vec3{}) {
		t.Fatalf("expected no progress, got origin %v", ctx.state.Origin)
	}
}

func TestFlyMoveStuckInSolid(t *testing.T) {
	ctx := testCtx(nil, 0.1)
	ctx.state.Velocity = mgl32.Vec3{100, 0, 0}

	ctx.sim.Trace = &traceFunc{trace: func(start, end mgl32.Vec3, hull Hull) TraceResult {
		return TraceResult{AllSolid: true, StartSolid: true, EndPos: start, Entity: WorldEntity}
	}}

	blocked := ctx.flyMove()

	if blocked&BlockedStuck == 0 {
		t.Fatalf("expected stuck flag, got %v", blocked)
	}
	if ctx.state.Velocity != (mgl32.Vec3{}) {
		t.Fatalf("expected zeroed velocity, got %v", ctx.state.Velocity)
	}
}

func TestFlyMoveHeadOnWallStops(t *testing.T) {
	ctx := testCtx(nil, 0.1)
	ctx.state.Velocity = mgl32.Vec3{100, 0, 0}

	// A wall square against the motion leaves nothing to slide along; the
	// clipped velocity satisfies the plane immediately and movement stops.
	stub := &traceFunc{}
	stub.trace = func(start, end mgl32.Vec3, hull Hull) TraceResult {
		return hitAt(start, end, 0, mgl32.Vec3{-1, 0, 0})
	}
	ctx.sim.Trace = stub

	ctx.flyMove()

	if ctx.state.Velocity != (mgl32.Vec3{}) {
		t.Fatalf("expected dead stop against square wall, got %v", ctx.state.Velocity)
	}
	if stub.calls != 1 {
		t.Fatalf("expected a single trace, got %d", stub.calls)
	}
}
