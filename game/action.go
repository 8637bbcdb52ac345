package game

import "fmt"

// Direction names the edge the spare tile is inserted at.
type Direction int

const (
	FromTop Direction = iota
	FromBottom
	FromLeft
	FromRight
)

var Directions = []Direction{FromTop, FromBottom, FromLeft, FromRight}

func (d Direction) Valid() bool {
	return d >= FromTop && d <= FromRight
}

func (d Direction) Opposite() Direction {
	switch d {
	case FromTop:
		return FromBottom
	case FromBottom:
		return FromTop
	case FromLeft:
		return FromRight
	case FromRight:
		return FromLeft
	}
	return d
}

// ShiftsRow reports whether the direction moves a row (as opposed to a column).
func (d Direction) ShiftsRow() bool {
	return d == FromLeft || d == FromRight
}

func (d Direction) String() string {
	switch d {
	case FromTop:
		return "FromTop"
	case FromBottom:
		return "FromBottom"
	case FromLeft:
		return "FromLeft"
	case FromRight:
		return "FromRight"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Rotation is a clockwise quarter turn count applied to the spare tile before insertion.
type Rotation int

const (
	Deg0 Rotation = iota
	Deg90
	Deg180
	Deg270
)

var Rotations = []Rotation{Deg0, Deg90, Deg180, Deg270}

func (r Rotation) normalize() Rotation {
	return ((r % 4) + 4) % 4
}

func (r Rotation) Degrees() int {
	return int(r.normalize()) * 90
}

// ShiftableLines are the row and column indices that may be shifted. Even lines hold the fixed tiles.
var ShiftableLines = []int{1, 3, 5}

type Shift struct {
	Index     int       `json:"index"`
	Direction Direction `json:"direction"`
}

func (s Shift) Reverse() Shift {
	return Shift{Index: s.Index, Direction: s.Direction.Opposite()}
}

func (s Shift) String() string {
	kind := "column"
	if s.Direction.ShiftsRow() {
		kind = "row"
	}
	return fmt.Sprintf("%s %d %s", kind, s.Index, s.Direction)
}

func (s Shift) validate() error {
	if !s.Direction.Valid() {
		return fmt.Errorf("%w: unknown direction %d", ErrInvalidShift, int(s.Direction))
	}
	for _, line := range ShiftableLines {
		if s.Index == line {
			return nil
		}
	}
	return fmt.Errorf("%w: %s is not a shiftable line", ErrInvalidShift, s)
}

// line returns the coordinates of the shifted line in push order: the entry cell first, the exit cell last.
func (s Shift) line() [Size]Coord {
	var coords [Size]Coord
	for i := range Size {
		switch s.Direction {
		case FromLeft:
			coords[i] = Coord{X: i, Y: s.Index}
		case FromRight:
			coords[i] = Coord{X: Size - 1 - i, Y: s.Index}
		case FromTop:
			coords[i] = Coord{X: s.Index, Y: i}
		case FromBottom:
			coords[i] = Coord{X: s.Index, Y: Size - 1 - i}
		}
	}
	return coords
}

// Action is a full turn decision: the spare rotation and the shift to insert it with.
type Action struct {
	Shift
	Rotation Rotation `json:"rotation"`
}

func (a Action) String() string {
	return fmt.Sprintf("%s rotated %d", a.Shift, a.Rotation.Degrees())
}

// AllShifts returns every shift in (line index, direction) order.
func AllShifts() []Shift {
	shifts := make([]Shift, 0, len(ShiftableLines)*len(Directions))
	for _, index := range ShiftableLines {
		for _, d := range Directions {
			shifts = append(shifts, Shift{Index: index, Direction: d})
		}
	}
	return shifts
}
