package game

import "fmt"

// Size is the width and height of the board.
const Size = 7

// Coord addresses a grid cell. (0,0) is the top-left corner, X grows rightward and Y grows downward.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoord(x, y int) (Coord, error) {
	c := Coord{X: x, Y: y}
	if !c.Valid() {
		return Coord{}, fmt.Errorf("%w: (%d,%d) is outside the %dx%d grid", ErrInvalidCoord, x, y, Size, Size)
	}
	return c, nil
}

func (c Coord) Valid() bool {
	return c.X >= 0 && c.X < Size && c.Y >= 0 && c.Y < Size
}

// IsCorner reports whether c is one of the four fixed start cells.
func (c Coord) IsCorner() bool {
	return (c.X == 0 || c.X == Size-1) && (c.Y == 0 || c.Y == Size-1)
}

// Step returns the neighbouring coordinate on the given side. The result may be invalid.
func (c Coord) Step(side Openings) Coord {
	switch side {
	case OpenLeft:
		return Coord{c.X - 1, c.Y}
	case OpenTop:
		return Coord{c.X, c.Y - 1}
	case OpenRight:
		return Coord{c.X + 1, c.Y}
	case OpenBottom:
		return Coord{c.X, c.Y + 1}
	default:
		panic(fmt.Sprintf("not a single side: %s", side))
	}
}

func (c Coord) Manhattan(o Coord) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
