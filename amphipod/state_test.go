package amphipod_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burrow/amphipod"
)

func TestNewState_Validation(t *testing.T) {
	var rooms [amphipod.RoomCount]amphipod.Room
	var err error
	for i, k := range amphipod.Kinds() {
		rooms[i], err = amphipod.NewRoom(k, 2)
		require.NoError(t, err)
	}

	_, err = amphipod.NewState(amphipod.Hallway{}, rooms)
	require.NoError(t, err)

	swapped := rooms
	swapped[0], swapped[1] = swapped[1], swapped[0]
	_, err = amphipod.NewState(amphipod.Hallway{}, swapped)
	assert.ErrorIs(t, err, amphipod.ErrRoomOrder)

	deeper := rooms
	deeper[2], err = amphipod.NewRoom(amphipod.Copper, 4)
	require.NoError(t, err)
	_, err = amphipod.NewState(amphipod.Hallway{}, deeper)
	assert.ErrorIs(t, err, amphipod.ErrDepthMismatch)

	var hall amphipod.Hallway
	hall[amphipod.Doorway(1)] = amphipod.Amber
	_, err = amphipod.NewState(hall, rooms)
	assert.ErrorIs(t, err, amphipod.ErrDoorwayOccupied)

	_, err = amphipod.NewState(amphipod.Hallway{}, [amphipod.RoomCount]amphipod.Room{})
	assert.ErrorIs(t, err, amphipod.ErrRoomOrder)
}

func TestEmptyState(t *testing.T) {
	s, err := amphipod.EmptyState(4)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Depth())
	assert.Equal(t, [amphipod.RoomCount]int{}, s.Census())
	assert.False(t, s.Organized(), "empty rooms are not complete")
	assert.Empty(t, s.Moves())

	_, err = amphipod.EmptyState(0)
	assert.ErrorIs(t, err, amphipod.ErrBadDepth)
}

func TestState_String(t *testing.T) {
	s := example(t)
	want := "#############\n" +
		"#...........#\n" +
		"###B#C#B#D###\n" +
		"  #A#D#C#A#\n" +
		"  #########\n"
	assert.Equal(t, want, s.String())

	h := build(t, "AB.......CD", "....", "ABCD")
	assert.Contains(t, h.String(), "#AB.......CD#")
}

func TestState_Census(t *testing.T) {
	assert.Equal(t, [amphipod.RoomCount]int{2, 2, 2, 2}, example(t).Census())
	assert.Equal(t, [amphipod.RoomCount]int{1, 1, 1, 1}, build(t, "A.........B", "..C.", "...D").Census())
}

func TestState_Organized(t *testing.T) {
	assert.True(t, build(t, "...........", "ABCD", "ABCD").Organized())
	assert.False(t, example(t).Organized())
	assert.False(t, build(t, "A..........", ".BCD", "ABCD").Organized())
}

func TestState_IsMapKey(t *testing.T) {
	a := example(t)
	b := example(t)
	seen := map[amphipod.State]int64{a: 7}
	got, ok := seen[b]
	require.True(t, ok, "equal states must hash equally")
	assert.Equal(t, int64(7), got)

	c := a.Moves()[0].Next
	_, ok = seen[c]
	assert.False(t, ok)
}
