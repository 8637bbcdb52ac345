package game

import (
	"encoding/json"
	"fmt"
)

type tileJSON struct {
	Top       bool     `json:"top"`
	Bottom    bool     `json:"bottom"`
	Left      bool     `json:"left"`
	Right     bool     `json:"right"`
	Treasure  Treasure `json:"treasure,omitempty"`
	Occupants []Player `json:"occupants,omitempty"`
}

type boardJSON struct {
	Grid      [][]tileJSON `json:"grid"` // Indexed [y][x]
	Spare     tileJSON     `json:"spare"`
	LastShift *Shift       `json:"lastShift,omitempty"`
}

func encodeTile(t *Tile) tileJSON {
	return tileJSON{
		Top:       t.IsOpen(OpenTop),
		Bottom:    t.IsOpen(OpenBottom),
		Left:      t.IsOpen(OpenLeft),
		Right:     t.IsOpen(OpenRight),
		Treasure:  t.treasure,
		Occupants: t.Occupants(),
	}
}

func (t tileJSON) decode() *Tile {
	var o Openings
	if t.Top {
		o |= OpenTop
	}
	if t.Bottom {
		o |= OpenBottom
	}
	if t.Left {
		o |= OpenLeft
	}
	if t.Right {
		o |= OpenRight
	}
	return NewTile(o, t.Treasure, t.Occupants...)
}

func (b *Board) MarshalJSON() ([]byte, error) {
	out := boardJSON{
		Grid:      make([][]tileJSON, Size),
		Spare:     encodeTile(b.spare),
		LastShift: b.lastShift,
	}
	for y := range Size {
		out.Grid[y] = make([]tileJSON, Size)
		for x := range Size {
			out.Grid[y][x] = encodeTile(b.grid[y][x])
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON rebuilds the board through NewBoard so a decoded board satisfies the same
// invariants as a constructed one.
func (b *Board) UnmarshalJSON(data []byte) error {
	var in boardJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	rows := make([][]*Tile, len(in.Grid))
	for y, row := range in.Grid {
		rows[y] = make([]*Tile, len(row))
		for x, t := range row {
			rows[y][x] = t.decode()
		}
	}
	decoded, err := NewBoard(rows, in.Spare.decode())
	if err != nil {
		return err
	}
	if in.LastShift != nil {
		if err := in.LastShift.validate(); err != nil {
			return fmt.Errorf("%w: last shift: %v", ErrInvalidBoard, err)
		}
		last := *in.LastShift
		decoded.lastShift = &last
	}
	*b = *decoded
	return nil
}
