package amphipod

import "fmt"

// Room is a side room holding up to Depth() amphipods. Slot 0 touches the
// hallway; slot Depth()-1 is the back wall. Room is a comparable value.
type Room struct {
	home  Kind
	depth uint8
	slots [MaxDepth]Kind
}

// NewRoom returns an empty room of the given depth for home kind.
func NewRoom(home Kind, depth int) (Room, error) {
	if !home.Valid() {
		return Room{}, fmt.Errorf("%w: home %d", ErrBadKind, home)
	}
	if depth < 1 || depth > MaxDepth {
		return Room{}, fmt.Errorf("%w: %d", ErrBadDepth, depth)
	}

	return Room{home: home, depth: uint8(depth)}, nil
}

// Put places k in the given slot regardless of legality. It exists for
// building initial states; moves go through TryAccept and TryRelease.
func (r *Room) Put(slot int, k Kind) error {
	if slot < 0 || slot >= int(r.depth) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrSlotRange, slot, r.depth)
	}
	if !k.Valid() {
		return fmt.Errorf("%w: %d", ErrBadKind, k)
	}
	r.slots[slot] = k

	return nil
}

// Home returns the kind this room belongs to.
func (r Room) Home() Kind { return r.home }

// Depth returns the room capacity.
func (r Room) Depth() int { return int(r.depth) }

// Slot returns the content of slot i (Empty when vacant or out of range).
func (r Room) Slot(i int) Kind {
	if i < 0 || i >= int(r.depth) {
		return Empty
	}
	return r.slots[i]
}

// Len returns the number of amphipods in the room.
func (r Room) Len() int {
	n := 0
	for i := 0; i < int(r.depth); i++ {
		if r.slots[i] != Empty {
			n++
		}
	}
	return n
}

// Organized reports whether every occupied slot holds the home kind.
// An empty room is organized.
func (r Room) Organized() bool { return r.organizedFrom(0) }

// Complete reports whether the room is full and organized.
func (r Room) Complete() bool {
	return r.Len() == int(r.depth) && r.Organized()
}

// organizedFrom reports whether slots i..depth-1 hold no foreign kinds.
func (r Room) organizedFrom(i int) bool {
	for ; i < int(r.depth); i++ {
		if r.slots[i] != Empty && r.slots[i] != r.home {
			return false
		}
	}
	return true
}

// TryAccept moves k into the deepest vacant slot and returns the number of
// steps walked from the doorway. It fails, leaving the room untouched, when
// k is not the home kind, when a foreign amphipod is still inside, or when
// the room is full.
func (r *Room) TryAccept(k Kind) (int, bool) {
	if k != r.home || !r.Organized() {
		return 0, false
	}

	var i int
	for i = int(r.depth) - 1; i >= 0; i-- {
		if r.slots[i] == Empty {
			r.slots[i] = k
			return i + 1, true
		}
	}

	return 0, false
}

// TryRelease removes the amphipod nearest the doorway and returns the steps
// walked to reach the doorway along with its kind. It fails when the room is
// empty or when that amphipod and everything behind it are already home.
func (r *Room) TryRelease() (int, Kind, bool) {
	var i int
	for i = 0; i < int(r.depth); i++ {
		if r.slots[i] == Empty {
			continue
		}
		if r.organizedFrom(i) {
			return 0, Empty, false
		}
		k := r.slots[i]
		r.slots[i] = Empty
		return i + 1, k, true
	}

	return 0, Empty, false
}
