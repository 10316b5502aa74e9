package pmove

import "github.com/strafesim/pmove/event"

// Simulator advances player movement state by fixed ticks. It holds only
// shared, read-only collaborators, so a single Simulator may be used for any
// number of entities, including concurrently, as long as the TraceProvider is
// itself safe for concurrent use.
type Simulator struct {
	// Trace answers world collision queries. A nil provider treats every
	// move as unobstructed.
	Trace TraceProvider

	// Ladder decides ladder contact. A nil detector means no entity is ever
	// on a ladder.
	Ladder LadderDetector

	// Vars is the shared movement table. Must be identical on every
	// participant simulating the same entity.
	Vars *MoveVars

	// Sink receives movement-produced signals such as fall damage. Optional.
	Sink event.Sink

	// Debugf receives internal simulation trace logs for callers that need
	// deep diagnostics. Optional.
	Debugf func(format string, args ...any)
}

// Simulate advances the given state by exactly one tick of frameTime seconds
// using one input command. The state is mutated in place; the returned result
// summarizes the tick for the component/network layers.
//
// For a single entity, calls must be made in strictly increasing tick order:
// velocity, duck timers and edge-triggered buttons all depend on the
// immediately preceding tick's output.
func (s *Simulator) Simulate(state *PlayerState, cmd Command, frameTime float32) MoveResult {
	ctx := newCtx(s, state, cmd, frameTime)
	defer putCtx(ctx)

	ctx.playerMove()

	return MoveResult{
		Origin:     state.Origin,
		Velocity:   state.Velocity,
		OnGround:   state.OnGround(),
		Ducking:    state.Ducking(),
		WaterLevel: state.WaterLevel,
		Blocked:    ctx.blocked,
		Outcome:    ctx.outcome,
	}
}

func (s *Simulator) debugf(format string, args ...any) {
	if s.Debugf != nil {
		s.Debugf(format, args...)
	}
}
