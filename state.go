package pmove

import (
	"bytes"
	"encoding/binary"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/strafesim/pmove/internal"
	"github.com/zeebo/xxh3"
)

// EntityFlags is the bit-level movement flag state. The bit layout is part of
// the wire/component boundary; inside the simulation the named accessors on
// PlayerState are used instead.
type EntityFlags int32

const (
	FlagOnGround EntityFlags = 1 << iota
	FlagDucking
	FlagWaterJump
	FlagOnTrain
	FlagInRain
	FlagFrozen
	FlagAtControls
	FlagClient
	FlagFakeClient
	FlagInWater
)

// Buttons is the bit-level input button state.
type Buttons uint16

const (
	ButtonAttack Buttons = 1 << iota
	ButtonJump
	ButtonDuck
	ButtonForward
	ButtonBack
	ButtonUse
	ButtonMoveLeft
	ButtonMoveRight
	ButtonAttack2
	ButtonReload
	ButtonSpeed
	ButtonScore
)

// Held reports whether the given button is down.
func (b Buttons) Held(btn Buttons) bool {
	return b&btn != 0
}

// Pressed reports whether the given button is down this tick but was not down
// in the previous one.
func (b Buttons) Pressed(old Buttons, btn Buttons) bool {
	return b&btn != 0 && old&btn == 0
}

// WaterLevel describes how deep an entity is submerged.
type WaterLevel uint8

const (
	WaterLevelNone WaterLevel = iota
	WaterLevelFeet
	WaterLevelWaist
	WaterLevelHead
)

// PlayerState is the complete kinematic movement state for one simulated
// entity. It is mutated in place for the duration of one Simulate call and
// lives for the entity's lifetime.
type PlayerState struct {
	Origin       mgl32.Vec3
	Velocity     mgl32.Vec3
	// BaseVelocity is a one-shot external impulse channel (conveyors, push
	// triggers). Its vertical component is consumed and cleared the first
	// time gravity or a jump merges it in.
	BaseVelocity mgl32.Vec3

	ViewAngles mgl32.Vec3
	PunchAngle mgl32.Vec3

	Flags    EntityFlags
	OldFlags EntityFlags

	Buttons    Buttons
	OldButtons Buttons

	Hull Hull

	// DuckTime counts down from game.DuckTime while a duck transition is in
	// progress.
	DuckTime float32
	InDuck   bool

	// FallVelocity tracks the peak downward speed while airborne. It resets
	// to zero on the tick the entity lands.
	FallVelocity float32

	WaterLevel WaterLevel
	WaterType  Contents

	// GroundEntity is the entity reported by the ground probe, or NoEntity
	// while airborne.
	GroundEntity int32

	OnLadder     bool
	LadderNormal mgl32.Vec3

	MaxSpeed float32
	Dead     bool
}

// NewPlayerState returns a spawn-default state using the given movement table.
func NewPlayerState(vars *MoveVars) *PlayerState {
	s := &PlayerState{}
	s.Reset(vars)
	return s
}

// Reset restores spawn defaults, keeping the entity's position.
func (s *PlayerState) Reset(vars *MoveVars) {
	s.Velocity = mgl32.Vec3{}
	s.BaseVelocity = mgl32.Vec3{}
	s.PunchAngle = mgl32.Vec3{}
	s.Flags = FlagClient
	s.OldFlags = FlagClient
	s.Buttons = 0
	s.OldButtons = 0
	s.Hull = HullStanding
	s.DuckTime = 0
	s.InDuck = false
	s.FallVelocity = 0
	s.WaterLevel = WaterLevelNone
	s.WaterType = ContentsEmpty
	s.GroundEntity = NoEntity
	s.OnLadder = false
	s.LadderNormal = mgl32.Vec3{}
	s.MaxSpeed = vars.MaxSpeed
	s.Dead = false
}

func (s *PlayerState) OnGround() bool {
	return s.Flags&FlagOnGround != 0
}

func (s *PlayerState) setOnGround(on bool) {
	if on {
		s.Flags |= FlagOnGround
	} else {
		s.Flags &^= FlagOnGround
	}
}

func (s *PlayerState) Ducking() bool {
	return s.Flags&FlagDucking != 0
}

func (s *PlayerState) setDucking(on bool) {
	if on {
		s.Flags |= FlagDucking
	} else {
		s.Flags &^= FlagDucking
	}
}

func (s *PlayerState) Frozen() bool {
	return s.Flags&FlagFrozen != 0
}

func (s *PlayerState) InWater() bool {
	return s.Flags&FlagInWater != 0
}

func (s *PlayerState) setInWater(on bool) {
	if on {
		s.Flags |= FlagInWater
	} else {
		s.Flags &^= FlagInWater
	}
}

// Checksum returns a 64-bit hash of the canonical serialization of the state.
// Two states produced by deterministic simulation of identical inputs hash
// identically, which makes the checksum usable for cheap server/client
// reconciliation diffing.
func (s *PlayerState) Checksum() uint64 {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	binary.Write(buf, binary.LittleEndian, s.Origin)
	binary.Write(buf, binary.LittleEndian, s.Velocity)
	binary.Write(buf, binary.LittleEndian, s.BaseVelocity)
	binary.Write(buf, binary.LittleEndian, s.ViewAngles)
	binary.Write(buf, binary.LittleEndian, s.PunchAngle)
	binary.Write(buf, binary.LittleEndian, int32(s.Flags))
	binary.Write(buf, binary.LittleEndian, int32(s.OldFlags))
	binary.Write(buf, binary.LittleEndian, uint16(s.Buttons))
	binary.Write(buf, binary.LittleEndian, uint16(s.OldButtons))
	binary.Write(buf, binary.LittleEndian, uint8(s.Hull))
	binary.Write(buf, binary.LittleEndian, s.DuckTime)
	binary.Write(buf, binary.LittleEndian, s.InDuck)
	binary.Write(buf, binary.LittleEndian, s.FallVelocity)
	binary.Write(buf, binary.LittleEndian, uint8(s.WaterLevel))
	binary.Write(buf, binary.LittleEndian, int32(s.WaterType))
	binary.Write(buf, binary.LittleEndian, s.GroundEntity)
	binary.Write(buf, binary.LittleEndian, s.OnLadder)
	binary.Write(buf, binary.LittleEndian, s.LadderNormal)
	binary.Write(buf, binary.LittleEndian, s.MaxSpeed)
	binary.Write(buf, binary.LittleEndian, s.Dead)

	return xxh3.Hash(buf.Bytes())
}
