// Package amphipod models the burrow puzzle: four kinds of amphipods
// (Amber, Bronze, Copper, Desert) spread across an 11-slot hallway and four
// side rooms must be moved into their home rooms using as little energy as
// possible.
//
// Overview:
//
//   - Kind is a token label. Each kind has a per-step energy multiplier
//     (1, 10, 100, 1000) and exactly one home room.
//   - Room is a fixed-capacity stack of slots bound to one home kind.
//     Slot 0 is next to the doorway, slot Depth()-1 is the deepest.
//   - Hallway is the 11-slot transit corridor. Positions 2, 4, 6 and 8 are
//     doorways and never hold a resting amphipod.
//   - State is one hallway plus four rooms. It is a plain comparable value,
//     so it can be used directly as a map key.
//   - State.Moves enumerates every legal single-amphipod transition together
//     with its energy cost, computing neighbors on demand.
//
// Layout:
//
//	#############
//	#01234567890#      hallway positions 0..10
//	###B#C#B#D###      slot 0 of rooms A, B, C, D (doorways at 2, 4, 6, 8)
//	  #A#D#C#A#        slot 1 (deeper)
//	  #########
//
// Movement rules:
//
//   - An amphipod in the hallway may only move into its own home room, and
//     only when that room holds no amphipods of another kind.
//   - An amphipod leaving a room either stops on a hallway resting spot or
//     walks straight into its home room.
//   - Hallway paths must be clear; amphipods never pass through each other.
//   - An amphipod that already sits on top of a correctly filled suffix of
//     its home room never moves again.
//
// Room depth is a construction-time parameter (1..MaxDepth); all logic is
// written once and shared by the 2-deep and 4-deep variants.
//
// Errors:
//
//   - ErrUnknownKind      – a rune outside A–D (or '.').
//   - ErrBadKind          – a Kind value that is not a token where one is required.
//   - ErrBadDepth         – room depth outside 1..MaxDepth.
//   - ErrSlotRange        – slot index outside the room.
//   - ErrRoomOrder        – rooms not in A, B, C, D order.
//   - ErrDepthMismatch    – rooms of different depths in one State.
//   - ErrDoorwayOccupied  – an amphipod resting on a doorway.
package amphipod
