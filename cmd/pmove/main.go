package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/strafesim/pmove"
	"github.com/strafesim/pmove/event"
	"github.com/strafesim/pmove/game"
	"github.com/strafesim/pmove/world"
)

var CLI struct {
	Debug bool   `help:"Whether to enable per-tick simulation trace logging."`
	Vars  string `help:"Path to a movement variable TOML file. Defaults are used when omitted." type:"path"`

	Run struct {
		Ticks int     `help:"Number of ticks to simulate." default:"512"`
		Rate  float32 `help:"Simulation tick rate in Hz." default:"128"`
	} `cmd:"" default:"1" help:"Run a scripted strafe-jumping session in the demo arena."`

	WriteVars struct {
		Path string `arg:"" help:"Destination file for the default movement variable table." type:"path"`
	} `cmd:"" help:"Write the default movement variable table as TOML and exit."`
}

// logSink forwards movement signals to the logger and keeps them for the
// end-of-run summary.
type logSink struct {
	lg     *logrus.Logger
	events []event.Event
}

func (s *logSink) Push(ev event.Event) {
	s.events = append(s.events, ev)
	switch e := ev.(type) {
	case event.FallDamage:
		s.lg.Warnf("tick %d: damaging landing at %.1f ups", e.EvTick, e.Speed)
	case event.HardLanding:
		s.lg.Infof("tick %d: hard landing at %.1f ups (punch %.2f)", e.EvTick, e.Speed, e.Punch)
	}
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("pmove"),
		kong.Description("deterministic strafe movement simulator"),
		kong.UsageOnError(),
	)

	lg := logrus.New()
	lg.Formatter = &logrus.TextFormatter{ForceColors: true}
	lg.Level = logrus.InfoLevel
	if CLI.Debug {
		lg.Level = logrus.DebugLevel
	}

	switch ctx.Command() {
	case "write-vars <path>":
		if err := pmove.DefaultMoveVars().Save(CLI.WriteVars.Path); err != nil {
			lg.Fatalf("unable to write movement variables: %v", err)
		}
		lg.Infof("wrote default movement variables to %s", CLI.WriteVars.Path)
		os.Exit(0)
	}

	vars := pmove.DefaultMoveVars()
	if CLI.Vars != "" {
		var err error
		if vars, err = pmove.LoadMoveVars(CLI.Vars); err != nil {
			lg.Fatalf("unable to load movement variables: %v", err)
		}
		lg.Infof("loaded movement variables from %s", CLI.Vars)
	}

	runDemo(lg, vars)
}

// runDemo simulates a scripted bunnyhop through a small arena: a long floor,
// a staircase, a back wall with a ladder, and a water pool.
func runDemo(lg *logrus.Logger, vars *pmove.MoveVars) {
	w := buildArena()
	sink := &logSink{lg: lg}

	sim := &pmove.Simulator{
		Trace:  w,
		Ladder: w,
		Vars:   vars,
		Sink:   sink,
	}
	if CLI.Debug {
		sim.Debugf = lg.Debugf
	}

	state := pmove.NewPlayerState(vars)
	state.Origin = mgl32.Vec3{-768, 0, game.StandingHalfHeight + 1}

	frameTime := 1.0 / CLI.Run.Rate
	ticks := CLI.Run.Ticks

	for i := 0; i < ticks; i++ {
		cmd := strafeScript(uint32(i), state)
		res := sim.Simulate(state, cmd, frameTime)

		if i%int(CLI.Run.Rate) == 0 {
			lg.Infof("tick %4d: speed %7.1f ups, origin (%.1f, %.1f, %.1f), ground=%v",
				i, game.Vec3HzLen(res.Velocity), res.Origin.X(), res.Origin.Y(), res.Origin.Z(), res.OnGround)
		}
	}

	lg.Infof("simulated %d ticks at %v Hz", ticks, CLI.Run.Rate)
	lg.Infof("final speed %v ups, %d movement events", game.Round32(game.Vec3HzLen(state.Velocity), 2), len(sink.events))
	fmt.Printf("state checksum: %016x\n", state.Checksum())
}

// strafeScript produces the input for one tick of an airstrafe run down the
// positive X axis: hold jump so every landing rebounds immediately, and swing
// the view side to side while airborne with the matching strafe key held.
func strafeScript(tick uint32, state *pmove.PlayerState) pmove.Command {
	cmd := pmove.Command{
		Tick:    tick,
		Buttons: pmove.ButtonJump,
	}

	// Swing period of half a second, centered on the +X run direction.
	phase := float32(tick%64) / 64
	swing := float32(30)
	if phase >= 0.5 {
		cmd.ViewAngles[1] = swing * (phase - 0.75) * 4
		cmd.SideMove = 1
	} else {
		cmd.ViewAngles[1] = -swing * (phase - 0.25) * 4
		cmd.SideMove = -1
	}

	if state.OnGround() {
		cmd.ForwardMove = 1
		cmd.SideMove = 0
		cmd.ViewAngles[1] = 0
	}
	return cmd
}

func buildArena() *world.World {
	w := world.New()

	// Main runway with a staircase of 16-unit steps up to a landing.
	w.AddFloor("runway", -1024, -256, 512, 256, 0)
	w.AddFloor("step1", 512, -256, 544, 256, 16)
	w.AddFloor("step2", 544, -256, 576, 256, 32)
	w.AddFloor("landing", 576, -256, 1024, 256, 48)

	// Back wall closing the arena, with a ladder strip up its face.
	w.AddBrush("backwall", cube.Box(1024, -256, -64, 1056, 256, 512), pmove.ContentsSolid)
	w.AddBrush("ladder", cube.Box(1022, -16, 48, 1024, 16, 512), pmove.ContentsLadder)

	// Water pool sunk beside the runway.
	w.AddBrush("poolfloor", cube.Box(-1024, 256, -160, 512, 512, -128), pmove.ContentsSolid)
	w.AddBrush("pool", cube.Box(-1024, 256, -128, 512, 512, -4), pmove.ContentsWater)

	return w
}
