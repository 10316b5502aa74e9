package event

import (
	"bytes"
	"encoding/binary"

	"github.com/strafesim/pmove/internal"
	"github.com/strafesim/pmove/serror"
)

const EventsVersion = "1"

const (
	EventIDFallDamage byte = iota + 1
	EventIDHardLanding
)

// Event is a signal produced by the movement simulation for external gameplay
// systems to consume.
type Event interface {
	ID() byte
	Encode() []byte

	Tick() uint32
}

// Sink receives events emitted during a simulation tick. Implementations must
// not retain the event past the call if they mutate it.
type Sink interface {
	Push(ev Event)
}

func WriteEventHeader(ev Event, buf *bytes.Buffer) {
	binary.Write(buf, binary.LittleEndian, uint64(ev.ID()))
	binary.Write(buf, binary.LittleEndian, uint64(ev.Tick()))
}

func DecodeEvents(dat []byte) ([]Event, error) {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	buf.Write(dat)
	defer internal.BufferPool.Put(buf)

	events := []Event{}
	for buf.Len() > 0 {
		ev, err := DecodeEvent(buf)
		if err != nil {
			return events, serror.New("error decoding event: %v", err)
		}
		events = append(events, ev)
	}
	return events, nil
}

func DecodeEvent(buf *bytes.Buffer) (Event, error) {
	if buf.Len() < 16 {
		return nil, serror.New("truncated event header (%d bytes)", buf.Len())
	}
	rawID := binary.LittleEndian.Uint64(buf.Next(8))
	id := byte(rawID)
	tick := uint32(binary.LittleEndian.Uint64(buf.Next(8)))

	switch id {
	case EventIDFallDamage:
		ev := FallDamage{EvTick: tick}
		if err := binary.Read(buf, binary.LittleEndian, &ev.Speed); err != nil {
			return nil, err
		}
		return ev, nil
	case EventIDHardLanding:
		ev := HardLanding{EvTick: tick}
		if err := binary.Read(buf, binary.LittleEndian, &ev.Speed); err != nil {
			return nil, err
		}
		if err := binary.Read(buf, binary.LittleEndian, &ev.Punch); err != nil {
			return nil, err
		}
		return ev, nil
	default:
		return nil, serror.New("unknown event ID %d", id)
	}
}
