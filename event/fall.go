package event

import (
	"bytes"
	"encoding/binary"

	"github.com/strafesim/pmove/internal"
)

// FallDamage is emitted once per landing whose peak fall speed crossed the
// damage threshold. Applying the actual damage is the consumer's concern.
type FallDamage struct {
	EvTick uint32
	// Speed is the peak downward speed observed during the fall, in units/s.
	Speed float32
}

func (FallDamage) ID() byte {
	return EventIDFallDamage
}

func (ev FallDamage) Tick() uint32 {
	return ev.EvTick
}

func (ev FallDamage) Encode() []byte {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	WriteEventHeader(ev, buf)
	binary.Write(buf, binary.LittleEndian, ev.Speed)
	return append([]byte{}, buf.Bytes()...)
}

// HardLanding is emitted on landings hard enough to kick the view, whether or
// not the damage threshold was crossed.
type HardLanding struct {
	EvTick uint32
	Speed  float32
	// Punch is the pitch punch angle applied to the view, in degrees.
	Punch float32
}

func (HardLanding) ID() byte {
	return EventIDHardLanding
}

func (ev HardLanding) Tick() uint32 {
	return ev.EvTick
}

func (ev HardLanding) Encode() []byte {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	WriteEventHeader(ev, buf)
	binary.Write(buf, binary.LittleEndian, ev.Speed)
	binary.Write(buf, binary.LittleEndian, ev.Punch)
	return append([]byte{}, buf.Bytes()...)
}
