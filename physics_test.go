package pmove

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/strafesim/pmove/game"
)

func testCtx(vars *MoveVars, frameTime float32) *moveContext {
	if vars == nil {
		vars = DefaultMoveVars()
	}
	return &moveContext{
		sim:       &Simulator{Vars: vars},
		state:     NewPlayerState(vars),
		frameTime: frameTime,
	}
}

func TestAccelerateFromRest(t *testing.T) {
	ctx := testCtx(nil, 1.0/128)

	// accel * frameTime * wishSpeed = 10 * (1/128) * 320 = 25, well below
	// the 320 shortfall, so it applies unclamped.
	ctx.accelerate(mgl32.Vec3{1, 0, 0}, 320, 10)

	v := ctx.state.Velocity
	if v.X() != 25.0 || v.Y() != 0 || v.Z() != 0 {
		t.Fatalf("expected velocity (25, 0, 0), got %v", v)
	}
}

func TestAccelerateNeverOvershoots(t *testing.T) {
	ctx := testCtx(nil, 0.01)
	ctx.state.Velocity = mgl32.Vec3{315, 0, 0}

	// An absurd acceleration value must still be capped to the shortfall.
	ctx.accelerate(mgl32.Vec3{1, 0, 0}, 320, 10000)

	if v := ctx.state.Velocity.X(); v != 320 {
		t.Fatalf("expected velocity capped at wish speed 320, got %v", v)
	}
}

func TestAccelerateNoOpAboveWishSpeed(t *testing.T) {
	ctx := testCtx(nil, 0.01)
	ctx.state.Velocity = mgl32.Vec3{400, 0, 0}

	ctx.accelerate(mgl32.Vec3{1, 0, 0}, 320, 10)

	if v := ctx.state.Velocity; v != (mgl32.Vec3{400, 0, 0}) {
		t.Fatalf("expected velocity unchanged, got %v", v)
	}
}

func TestAirAccelerateCapBlocksForwardGain(t *testing.T) {
	ctx := testCtx(nil, 1.0/128)
	ctx.state.Velocity = mgl32.Vec3{320, 0, 0}

	// Pushing straight along the velocity projects the full 320 against the
	// 30 unit cap, so nothing is added.
	ctx.airAccelerate(mgl32.Vec3{1, 0, 0}, 320, 10)

	if v := ctx.state.Velocity; v != (mgl32.Vec3{320, 0, 0}) {
		t.Fatalf("expected no forward gain in air, got %v", v)
	}
}

func TestAirAccelerateSidewaysGains(t *testing.T) {
	ctx := testCtx(nil, 1.0/128)
	ctx.state.Velocity = mgl32.Vec3{320, 0, 0}

	// Perpendicular wish projects to zero current speed, so the full
	// per-tick gain of accel * wishSpeed * frameTime = 25 applies.
	ctx.airAccelerate(mgl32.Vec3{0, 1, 0}, 320, 10)

	if v := ctx.state.Velocity.Y(); !game.Float32ApproxEq(v, 25.0) {
		t.Fatalf("expected sideways gain of 25, got %v", v)
	}
}

func TestAirStrafeSpeedStrictlyIncreases(t *testing.T) {
	ctx := testCtx(nil, 1.0/128)
	ctx.state.Velocity = mgl32.Vec3{320, 0, 0}

	prev := game.Vec3HzLen(ctx.state.Velocity)
	for i := 0; i < 50; i++ {
		v := ctx.state.Velocity
		speed := game.Vec3HzLen(v)
		// Wish exactly perpendicular to the current velocity, as a
		// perfect strafe would aim.
		wishDir := mgl32.Vec3{-v.Y() / speed, v.X() / speed, 0}

		ctx.airAccelerate(wishDir, 320, 10)

		speed = game.Vec3HzLen(ctx.state.Velocity)
		if speed <= prev {
			t.Fatalf("tick %d: speed %v did not increase from %v", i, speed, prev)
		}
		prev = speed
	}

	if prev <= 320 {
		t.Fatalf("expected cumulative speed gain above 320, got %v", prev)
	}
}

func TestFrictionProportionalAboveStopSpeed(t *testing.T) {
	ctx := testCtx(nil, 0.1)
	ctx.state.setOnGround(true)
	ctx.state.Velocity = mgl32.Vec3{400, 0, 0}

	ctx.friction()

	// drop = speed * friction * frameTime = 400 * 4 * 0.1.
	if v := ctx.state.Velocity.X(); !game.Float32ApproxEq(v, 240.0) {
		t.Fatalf("expected 240 after friction, got %v", v)
	}
}

func TestFrictionStopSpeedFloor(t *testing.T) {
	ctx := testCtx(nil, 0.1)
	ctx.state.setOnGround(true)
	ctx.state.Velocity = mgl32.Vec3{50, 0, 0}

	ctx.friction()

	// Below StopSpeed the control floor of 100 applies: drop = 100*4*0.1.
	if v := ctx.state.Velocity.X(); !game.Float32ApproxEq(v, 10.0) {
		t.Fatalf("expected 10 after floored friction, got %v", v)
	}
}

func TestFrictionOnlyOnGround(t *testing.T) {
	ctx := testCtx(nil, 0.1)
	ctx.state.Velocity = mgl32.Vec3{400, 0, 0}

	ctx.friction()

	if v := ctx.state.Velocity.X(); v != 400 {
		t.Fatalf("expected no friction while airborne, got %v", v)
	}
}

func TestClipVelocityOrthogonalResult(t *testing.T) {
	cases := []struct {
		name   string
		in     mgl32.Vec3
		normal mgl32.Vec3
	}{
		{"floor", mgl32.Vec3{250, 120, -800}, mgl32.Vec3{0, 0, 1}},
		{"wall", mgl32.Vec3{300, 200, -50}, mgl32.Vec3{-1, 0, 0}},
		{"ramp", mgl32.Vec3{-100, 0, -300}, mgl32.Vec3{0.6, 0, 0.8}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := clipVelocity(tc.in, tc.normal, 1.0)
			if dot := out.Dot(tc.normal); dot < -1e-3 || dot > 1e-3 {
				t.Fatalf("clipped velocity %v still drives into plane %v (dot %v)", out, tc.normal, dot)
			}
		})
	}
}

func TestClipVelocityOverbounceReflects(t *testing.T) {
	out := clipVelocity(mgl32.Vec3{0, 0, -100}, mgl32.Vec3{0, 0, 1}, 2.0)
	if !game.Float32ApproxEq(out.Z(), 100) {
		t.Fatalf("expected reflected Z of 100, got %v", out.Z())
	}
}

func TestClipVelocitySnapsResidue(t *testing.T) {
	// Residues below the stop epsilon snap to exactly zero on every axis.
	out := clipVelocity(mgl32.Vec3{0.05, 0.01, -100}, mgl32.Vec3{0, 0, 1}, 1.0)
	if out != (mgl32.Vec3{}) {
		t.Fatalf("expected fully snapped velocity, got %v", out)
	}
}

func TestAddGravity(t *testing.T) {
	ctx := testCtx(nil, 0.1)
	ctx.state.BaseVelocity = mgl32.Vec3{0, 0, 100}

	ctx.addGravity()

	// -800*0.1 from gravity, +100*0.1 from the base impulse.
	if v := ctx.state.Velocity.Z(); !game.Float32ApproxEq(v, -70.0) {
		t.Fatalf("expected -70 vertical velocity, got %v", v)
	}
	if ctx.state.BaseVelocity.Z() != 0 {
		t.Fatalf("expected base velocity consumed, got %v", ctx.state.BaseVelocity)
	}
}

func TestCheckVelocityClampsComponents(t *testing.T) {
	ctx := testCtx(nil, 0.1)
	ctx.state.Velocity = mgl32.Vec3{5000, -5000, 120}

	ctx.checkVelocity()

	want := mgl32.Vec3{2000, -2000, 120}
	if ctx.state.Velocity != want {
		t.Fatalf("expected %v, got %v", want, ctx.state.Velocity)
	}
}
