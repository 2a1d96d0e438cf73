package routing

import "fmt"

// GridSize is the side length of the square delivery grid.
const GridSize = 5

// Coord identifies a single grid cell. X grows rightward, Y grows upward.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// InBounds reports whether c lies on the grid.
func InBounds(c Coord) bool {
	return c.X >= 0 && c.X < GridSize && c.Y >= 0 && c.Y < GridSize
}

// Adjacent reports whether a and b share a grid link: exactly one axis
// differs, by exactly 1.
func Adjacent(a, b Coord) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}

// Edge is an unordered pair of adjacent cells. Construct with NewEdge so
// that the identity of a link does not depend on traversal direction.
type Edge struct {
	A Coord `json:"a"`
	B Coord `json:"b"`
}

// NewEdge returns the canonical edge between a and b.
func NewEdge(a, b Coord) Edge {
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}
	return Edge{a, b}
}

// Direction is one of the four unit moves along grid links.
type Direction int8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "invalid"
}

// Offset returns the unit offset d applies to a coordinate. Up is +Y,
// matching the plotted grid.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// ParseDirection maps a wire string to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, fmt.Errorf("invalid direction %q", s)
}
