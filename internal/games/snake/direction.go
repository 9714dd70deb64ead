package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Direction represents a movement direction on the grid.
type Direction int

const (
	// DirUnassigned means no direction has been determined.
	DirUnassigned Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Point is a grid coordinate.
type Point struct {
	Row, Col int
}

// Add offsets p one cell in direction d.
// Panics on DirUnassigned: a movement step must always have a real direction.
func (p Point) Add(d Direction) Point {
	switch d {
	case DirUp:
		return Point{Row: p.Row - 1, Col: p.Col}
	case DirDown:
		return Point{Row: p.Row + 1, Col: p.Col}
	case DirLeft:
		return Point{Row: p.Row, Col: p.Col - 1}
	case DirRight:
		return Point{Row: p.Row, Col: p.Col + 1}
	default:
		panic(fmt.Sprintf("snake: cannot move from %v in direction %v", p, d))
	}
}

// Horizontal reports whether d lies on the left/right axis.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// Vertical reports whether d lies on the up/down axis.
func (d Direction) Vertical() bool {
	return d == DirUp || d == DirDown
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirUnassigned
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unassigned"
	}
}

// heading returns the direction the snake travels given its head and the
// segment right behind it. Returns DirUnassigned if they are not adjacent.
func heading(head, neck Point) Direction {
	switch {
	case neck.Row-head.Row == 1 && neck.Col == head.Col:
		return DirUp
	case neck.Row-head.Row == -1 && neck.Col == head.Col:
		return DirDown
	case neck.Col-head.Col == 1 && neck.Row == head.Row:
		return DirLeft
	case neck.Col-head.Col == -1 && neck.Row == head.Row:
		return DirRight
	default:
		return DirUnassigned
	}
}

// nextDirection picks the direction for the coming step. A buffered turn is
// taken only when it is perpendicular to the current heading; presses along
// the heading's axis (repeats and reversals alike) keep the snake going straight.
func nextDirection(current, pressed Direction) Direction {
	switch {
	case current.Horizontal() && pressed.Vertical():
		return pressed
	case current.Vertical() && pressed.Horizontal():
		return pressed
	default:
		return current
	}
}

// PressedDirection decodes the direction held in a frame.
// When several are present the priority is Left, Right, Down, Up.
func PressedDirection(in core.InputFrame) Direction {
	switch {
	case in.Has(core.ActionLeft):
		return DirLeft
	case in.Has(core.ActionRight):
		return DirRight
	case in.Has(core.ActionDown):
		return DirDown
	case in.Has(core.ActionUp):
		return DirUp
	default:
		return DirUnassigned
	}
}
