package amphipod

import (
	"fmt"
	"strings"
)

// State is one configuration of the burrow: the hallway plus all rooms.
// Two States are equal iff every slot matches, so State works as a map key.
// Methods never modify the receiver; successors are fresh copies.
type State struct {
	hall  Hallway
	rooms [RoomCount]Room
}

// NewState validates and assembles a State. Room i must belong to the i-th
// kind, all rooms must share a depth and no amphipod may rest on a doorway.
// Token counts are not checked here; see Census.
func NewState(hall Hallway, rooms [RoomCount]Room) (State, error) {
	var i int
	for i = range rooms {
		if rooms[i].home != KindOf(i) {
			return State{}, fmt.Errorf("%w: room %d has home %v", ErrRoomOrder, i, rooms[i].home)
		}
		if rooms[i].depth < 1 || rooms[i].depth > MaxDepth {
			return State{}, fmt.Errorf("%w: room %d depth %d", ErrBadDepth, i, rooms[i].depth)
		}
		if rooms[i].depth != rooms[0].depth {
			return State{}, fmt.Errorf("%w: room %d depth %d, room 0 depth %d",
				ErrDepthMismatch, i, rooms[i].depth, rooms[0].depth)
		}
	}
	for i = range hall {
		if hall[i] == Empty {
			continue
		}
		if !hall[i].Valid() {
			return State{}, fmt.Errorf("%w: hallway %d", ErrBadKind, i)
		}
		if IsDoorway(i) {
			return State{}, fmt.Errorf("%w: position %d", ErrDoorwayOccupied, i)
		}
	}

	return State{hall: hall, rooms: rooms}, nil
}

// EmptyState returns a State with an empty hallway and empty rooms of depth.
func EmptyState(depth int) (State, error) {
	var rooms [RoomCount]Room
	var err error
	for i, k := range Kinds() {
		if rooms[i], err = NewRoom(k, depth); err != nil {
			return State{}, err
		}
	}

	return NewState(Hallway{}, rooms)
}

// Hall returns a copy of the hallway.
func (s State) Hall() Hallway { return s.hall }

// Room returns a copy of room i.
func (s State) Room(i int) Room { return s.rooms[i] }

// Depth returns the shared room depth (0 for the zero State).
func (s State) Depth() int { return int(s.rooms[0].depth) }

// Organized reports whether every room is full of its own kind.
func (s State) Organized() bool {
	for i := range s.rooms {
		if !s.rooms[i].Complete() {
			return false
		}
	}
	return true
}

// Census counts amphipods per kind, indexed by home room.
func (s State) Census() [RoomCount]int {
	var out [RoomCount]int
	for _, k := range s.hall {
		if k.Valid() {
			out[k.Home()]++
		}
	}
	for i := range s.rooms {
		for j := 0; j < s.rooms[i].Depth(); j++ {
			if k := s.rooms[i].slots[j]; k.Valid() {
				out[k.Home()]++
			}
		}
	}

	return out
}

// String renders the State in the puzzle's diagram format.
func (s State) String() string {
	var b strings.Builder
	b.WriteString("#############\n#")
	for _, k := range s.hall {
		b.WriteRune(k.Rune())
	}
	b.WriteString("#\n")

	for j := 0; j < s.Depth(); j++ {
		if j == 0 {
			b.WriteString("###")
		} else {
			b.WriteString("  #")
		}
		for i := range s.rooms {
			b.WriteRune(s.rooms[i].slots[j].Rune())
			b.WriteByte('#')
		}
		if j == 0 {
			b.WriteString("##")
		}
		b.WriteByte('\n')
	}
	b.WriteString("  #########\n")

	return b.String()
}
