package amphipod_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burrow/amphipod"
)

// build assembles a State from an 11-rune hallway string and room rows of
// four runes each, top row first. '.' marks a vacant slot.
func build(t testing.TB, hall string, rows ...string) amphipod.State {
	t.Helper()
	require.Len(t, hall, amphipod.HallwayLen)

	var h amphipod.Hallway
	var i, j int
	var err error
	for i = 0; i < amphipod.HallwayLen; i++ {
		h[i], err = amphipod.ParseKind(rune(hall[i]))
		require.NoError(t, err)
	}

	var rooms [amphipod.RoomCount]amphipod.Room
	for i = range rooms {
		rooms[i], err = amphipod.NewRoom(amphipod.KindOf(i), len(rows))
		require.NoError(t, err)
	}
	for j = range rows {
		require.Len(t, rows[j], amphipod.RoomCount)
		for i = 0; i < amphipod.RoomCount; i++ {
			if rows[j][i] == '.' {
				continue
			}
			k, err := amphipod.ParseKind(rune(rows[j][i]))
			require.NoError(t, err)
			require.NoError(t, rooms[i].Put(j, k))
		}
	}

	s, err := amphipod.NewState(h, rooms)
	require.NoError(t, err)

	return s
}

// example is the small published layout.
func example(t testing.TB) amphipod.State {
	return build(t, "...........", "BCBD", "ADCA")
}
