// Package diagram reads burrow diagrams into amphipod.State values.
//
// A diagram looks like
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// The second line is the hallway, then one line per room row from the
// doorway down, then the closing wall. Room letters sit in columns 3, 5, 7
// and 9. The number of room rows sets the room depth.
//
// Everything amphipod.State assumes is checked here: the alphabet, the
// depth, doorway occupancy, gaps inside rooms and that each kind appears
// exactly depth times.
package diagram

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/burrow/amphipod"
)

// Sentinel errors for diagram parsing.
var (
	// ErrTooShort indicates fewer lines than a one-row burrow needs.
	ErrTooShort = errors.New("diagram: too few lines")
	// ErrMalformedLine indicates a line that does not fit the layout.
	ErrMalformedLine = errors.New("diagram: malformed line")
	// ErrRoomGap indicates a vacant room slot below an occupied one.
	ErrRoomGap = errors.New("diagram: vacant slot below an amphipod")
	// ErrTokenCount indicates a kind that does not appear exactly depth times.
	ErrTokenCount = errors.New("diagram: wrong number of amphipods")
)

const (
	topWall    = "#############"
	bottomWall = "#########"
)

// roomColumns are the character columns of rooms A..D in a room row.
var roomColumns = [amphipod.RoomCount]int{3, 5, 7, 9}

// extraRows are inserted by Unfold.
var extraRows = []string{
	"  #D#C#B#A#",
	"  #D#B#A#C#",
}

// Parse reads a diagram from r.
func Parse(r io.Reader) (amphipod.State, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return amphipod.State{}, fmt.Errorf("diagram: read: %w", err)
	}

	return ParseLines(lines)
}

// ParseString is Parse over an in-memory diagram.
func ParseString(s string) (amphipod.State, error) {
	return Parse(strings.NewReader(s))
}

// ParseLines builds a State from diagram lines. Trailing blank lines and
// trailing whitespace are ignored.
func ParseLines(lines []string) (amphipod.State, error) {
	lines = trim(lines)
	if len(lines) < 4 {
		return amphipod.State{}, fmt.Errorf("%w: got %d, need at least 4", ErrTooShort, len(lines))
	}

	// 1) Walls.
	if strings.TrimSpace(lines[0]) != topWall {
		return amphipod.State{}, malformed(1, lines[0])
	}
	last := len(lines) - 1
	if strings.TrimSpace(lines[last]) != bottomWall {
		return amphipod.State{}, malformed(last+1, lines[last])
	}

	// 2) Hallway.
	hall, err := parseHall(lines[1])
	if err != nil {
		return amphipod.State{}, fmt.Errorf("line 2: %w", err)
	}

	// 3) Rooms.
	depth := last - 2
	var rooms [amphipod.RoomCount]amphipod.Room
	var i int
	for i = range rooms {
		if rooms[i], err = amphipod.NewRoom(amphipod.KindOf(i), depth); err != nil {
			return amphipod.State{}, err
		}
	}
	var row int
	for row = 0; row < depth; row++ {
		if err = parseRow(&rooms, row, lines[row+2]); err != nil {
			return amphipod.State{}, fmt.Errorf("line %d: %w", row+3, err)
		}
	}

	// 4) Assemble and check the token census.
	s, err := amphipod.NewState(hall, rooms)
	if err != nil {
		return amphipod.State{}, err
	}
	for i, n := range s.Census() {
		if n != depth {
			return amphipod.State{}, fmt.Errorf("%w: %v appears %d times, want %d",
				ErrTokenCount, amphipod.KindOf(i), n, depth)
		}
	}

	return s, nil
}

// Unfold returns a copy of lines with the two hidden rows inserted below the
// first room row, turning a 2-deep diagram into the 4-deep one.
func Unfold(lines []string) []string {
	out := make([]string, 0, len(lines)+len(extraRows))
	if len(lines) < 3 {
		return append(out, lines...)
	}
	out = append(out, lines[:3]...)
	out = append(out, extraRows...)
	out = append(out, lines[3:]...)

	return out
}

// Lines splits a diagram held in memory into lines.
func Lines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

func trim(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimRight(l, " \t\r")
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}

func malformed(n int, line string) error {
	return fmt.Errorf("%w: line %d: %q", ErrMalformedLine, n, line)
}

func parseHall(line string) (amphipod.Hallway, error) {
	var hall amphipod.Hallway
	if len(line) != amphipod.HallwayLen+2 || line[0] != '#' || line[len(line)-1] != '#' {
		return hall, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	var err error
	for i := 0; i < amphipod.HallwayLen; i++ {
		if hall[i], err = amphipod.ParseKind(rune(line[i+1])); err != nil {
			return hall, err
		}
	}
	return hall, nil
}

func parseRow(rooms *[amphipod.RoomCount]amphipod.Room, row int, line string) error {
	if len(line) < 11 {
		return fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	for _, c := range []int{2, 4, 6, 8, 10} {
		if line[c] != '#' {
			return fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
	}

	for i, c := range roomColumns {
		k, err := amphipod.ParseKind(rune(line[c]))
		if err != nil {
			return err
		}
		if k == amphipod.Empty {
			if row > 0 && rooms[i].Slot(row-1) != amphipod.Empty {
				return fmt.Errorf("%w: room %v slot %d", ErrRoomGap, amphipod.KindOf(i), row)
			}
			continue
		}
		if err = rooms[i].Put(row, k); err != nil {
			return err
		}
	}
	return nil
}
