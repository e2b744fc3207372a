package amphipod

import (
	"errors"
	"fmt"
)

// Sentinel errors for amphipod construction.
var (
	// ErrUnknownKind indicates a rune that does not name an amphipod kind.
	ErrUnknownKind = errors.New("amphipod: unknown kind")

	// ErrBadKind indicates a Kind value that is not one of the four tokens.
	ErrBadKind = errors.New("amphipod: kind is not a token")

	// ErrBadDepth indicates a room depth outside 1..MaxDepth.
	ErrBadDepth = errors.New("amphipod: room depth out of range")

	// ErrSlotRange indicates a slot index outside the room.
	ErrSlotRange = errors.New("amphipod: slot index out of range")

	// ErrRoomOrder indicates that room i is not the home of the i-th kind.
	ErrRoomOrder = errors.New("amphipod: rooms must be ordered A, B, C, D")

	// ErrDepthMismatch indicates rooms of different depths in one State.
	ErrDepthMismatch = errors.New("amphipod: rooms differ in depth")

	// ErrDoorwayOccupied indicates an amphipod at rest on a doorway slot.
	ErrDoorwayOccupied = errors.New("amphipod: doorway slot is occupied")
)

const (
	// RoomCount is the number of side rooms, one per kind.
	RoomCount = 4

	// MaxDepth is the deepest supported room.
	MaxDepth = 4

	// HallwayLen is the number of hallway slots.
	HallwayLen = 11
)

// Kind labels an amphipod. The zero value Empty marks a vacant slot.
type Kind uint8

const (
	// Empty is a vacant slot, not an amphipod.
	Empty Kind = iota
	// Amber amphipods cost 1 energy per step and live in room 0.
	Amber
	// Bronze amphipods cost 10 energy per step and live in room 1.
	Bronze
	// Copper amphipods cost 100 energy per step and live in room 2.
	Copper
	// Desert amphipods cost 1000 energy per step and live in room 3.
	Desert
)

var energy = [...]int64{0, 1, 10, 100, 1000}

// Kinds returns the four amphipod kinds ordered left to right by home room.
func Kinds() [RoomCount]Kind {
	return [RoomCount]Kind{Amber, Bronze, Copper, Desert}
}

// KindOf returns the kind whose home is room index i.
func KindOf(room int) Kind {
	return Kind(room + 1)
}

// ParseKind maps 'A'..'D' to a Kind and '.' to Empty.
func ParseKind(r rune) (Kind, error) {
	switch r {
	case '.':
		return Empty, nil
	case 'A':
		return Amber, nil
	case 'B':
		return Bronze, nil
	case 'C':
		return Copper, nil
	case 'D':
		return Desert, nil
	}

	return Empty, fmt.Errorf("%w: %q", ErrUnknownKind, r)
}

// Valid reports whether k is one of the four amphipod kinds.
func (k Kind) Valid() bool { return k >= Amber && k <= Desert }

// Energy returns the cost of moving one step.
func (k Kind) Energy() int64 {
	if !k.Valid() {
		return 0
	}
	return energy[k]
}

// Cost returns the energy needed to walk the given number of steps.
func (k Kind) Cost(steps int) int64 { return int64(steps) * k.Energy() }

// Home returns the index of the room this kind belongs in, or -1 for Empty.
func (k Kind) Home() int {
	if !k.Valid() {
		return -1
	}
	return int(k) - 1
}

// Rune returns the diagram letter for k.
func (k Kind) Rune() rune {
	if !k.Valid() {
		return '.'
	}
	return rune('A' + k - 1)
}

func (k Kind) String() string { return string(k.Rune()) }
