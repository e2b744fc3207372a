package amphipod

// Hallway is the corridor above the rooms. Doorway positions stay empty.
type Hallway [HallwayLen]Kind

// restingSpots lists the hallway positions an amphipod may stop on.
var restingSpots = [...]int{0, 1, 3, 5, 7, 9, 10}

// RestingSpots returns the non-doorway hallway positions.
func RestingSpots() []int {
	out := make([]int, len(restingSpots))
	copy(out, restingSpots[:])
	return out
}

// Doorway returns the hallway position in front of the given room.
//
//	room:      0     1     2     3
//	doorway:   2     4     6     8
func Doorway(room int) int { return 2*room + 2 }

// IsDoorway reports whether pos sits in front of a room.
func IsDoorway(pos int) bool {
	return pos >= 2 && pos <= 8 && pos%2 == 0
}

// Travel returns the number of hallway steps from src to dst if the way is
// clear. Every slot between the two, dst included, must be empty; src is the
// walker's own slot and is not checked. When toRoom is false dst must be a
// resting spot, when true dst is a doorway passed straight through.
func (h *Hallway) Travel(src, dst int, toRoom bool) (int, bool) {
	if src == dst {
		return 0, false
	}
	if src < 0 || src >= HallwayLen || dst < 0 || dst >= HallwayLen {
		return 0, false
	}
	if !toRoom && IsDoorway(dst) {
		return 0, false
	}

	lo, hi := src, dst
	if lo > hi {
		lo, hi = hi, lo
	}
	var i int
	for i = lo; i <= hi; i++ {
		if i != src && h[i] != Empty {
			return 0, false
		}
	}

	return hi - lo, true
}
