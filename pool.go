package pmove

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

var ctxPool = sync.Pool{
	New: func() any {
		return &moveContext{}
	},
}

func newCtx(sim *Simulator, state *PlayerState, cmd Command, frameTime float32) *moveContext {
	ctx := ctxPool.Get().(*moveContext)
	ctx.sim = sim
	ctx.state = state
	ctx.cmd = cmd
	ctx.frameTime = frameTime
	return ctx
}

func putCtx(ctx *moveContext) {
	ctx.reset()
	ctxPool.Put(ctx)
}

func (ctx *moveContext) reset() {
	ctx.sim = nil
	ctx.state = nil
	ctx.cmd = Command{}
	ctx.frameTime = 0
	ctx.forward = mgl32.Vec3{}
	ctx.right = mgl32.Vec3{}
	ctx.up = mgl32.Vec3{}
	ctx.blocked = 0
	ctx.outcome = OutcomeNormal
}
