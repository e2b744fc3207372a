package amphipod

import "fmt"

// Area tells whether a Site is a hallway slot or a room.
type Area uint8

const (
	// AreaHall is a hallway position 0..10.
	AreaHall Area = iota
	// AreaRoom is a side room 0..3.
	AreaRoom
)

// Site is one end of a move.
type Site struct {
	Area  Area
	Index int
}

func (s Site) String() string {
	if s.Area == AreaRoom {
		return fmt.Sprintf("room %v", KindOf(s.Index))
	}
	return fmt.Sprintf("hall %d", s.Index)
}

// Move is one legal transition: a single amphipod walking from one site to
// another. Cost is the energy spent, Next the resulting State.
type Move struct {
	Kind Kind
	From Site
	To   Site
	Cost int64
	Next State
}

func (m Move) String() string {
	return fmt.Sprintf("%v: %v -> %v (%d)", m.Kind, m.From, m.To, m.Cost)
}

// Moves enumerates every legal single-amphipod move from s. The receiver is
// not modified; each Move carries its own copy of the successor State.
//
// Three shapes of move are produced:
//
//  1. hallway -> home room, when the path to the doorway is clear and the
//     room accepts the amphipod;
//  2. room -> another room, straight along the hallway between doorways;
//  3. room -> hallway resting spot.
func (s State) Moves() []Move {
	moves := make([]Move, 0, 32)

	var i, j int
	for i = range s.rooms {
		// 1) hallway -> room i
		for j = range s.hall {
			k := s.hall[j]
			if k == Empty || k.Home() != i {
				continue
			}
			steps, ok := s.hall.Travel(j, Doorway(i), true)
			if !ok {
				continue
			}
			next := s
			enter, ok := next.rooms[i].TryAccept(k)
			if !ok {
				continue
			}
			next.hall[j] = Empty
			moves = append(moves, Move{
				Kind: k,
				From: Site{Area: AreaHall, Index: j},
				To:   Site{Area: AreaRoom, Index: i},
				Cost: k.Cost(steps + enter),
				Next: next,
			})
		}

		released := s
		exit, k, ok := released.rooms[i].TryRelease()
		if !ok {
			continue
		}

		// 2) room i -> room j
		for j = range released.rooms {
			if j == i {
				continue
			}
			steps, ok := released.hall.Travel(Doorway(i), Doorway(j), true)
			if !ok {
				continue
			}
			next := released
			enter, ok := next.rooms[j].TryAccept(k)
			if !ok {
				continue
			}
			moves = append(moves, Move{
				Kind: k,
				From: Site{Area: AreaRoom, Index: i},
				To:   Site{Area: AreaRoom, Index: j},
				Cost: k.Cost(exit + steps + enter),
				Next: next,
			})
		}

		// 3) room i -> hallway
		for _, j = range restingSpots {
			steps, ok := released.hall.Travel(Doorway(i), j, false)
			if !ok {
				continue
			}
			next := released
			next.hall[j] = k
			moves = append(moves, Move{
				Kind: k,
				From: Site{Area: AreaRoom, Index: i},
				To:   Site{Area: AreaHall, Index: j},
				Cost: k.Cost(exit + steps),
				Next: next,
			})
		}
	}

	return moves
}
