package game

import "fmt"

// Shift inserts the spare at the entry edge of the line, pushes the line one cell and
// makes the tile pushed out the exit edge the new spare, which is returned.
//
// Players travel with their tile. A player on the ejected tile is displaced onto the tile
// that moved into the exit cell, so players never leave the grid.
//
// The board is left unchanged on error.
func (b *Board) Shift(index int, direction Direction) (*Tile, error) {
	s := Shift{Index: index, Direction: direction}
	if err := s.validate(); err != nil {
		return nil, err
	}

	line := s.line()
	exit := line[Size-1]
	ejected := b.TileAt(exit)
	for i := Size - 1; i > 0; i-- {
		b.set(line[i], b.TileAt(line[i-1]))
	}
	b.set(line[0], b.spare)

	for p, c := range b.positions {
		for i := 0; i < Size-1; i++ {
			if c == line[i] {
				b.positions[p] = line[i+1]
				break
			}
		}
	}
	landing := b.TileAt(exit)
	for _, p := range ejected.occupants {
		landing.addOccupant(p)
	}
	ejected.occupants = nil

	b.spare = ejected
	b.lastShift = &s
	return ejected, nil
}

// IsForbidden reports whether s would push back the tile ejected by the previous shift.
func (b *Board) IsForbidden(s Shift) bool {
	return b.lastShift != nil && *b.lastShift == s.Reverse()
}

// LegalShifts returns the valid, non-forbidden shifts in (line index, direction) order.
func (b *Board) LegalShifts() []Shift {
	all := AllShifts()
	legal := all[:0]
	for _, s := range all {
		if !b.IsForbidden(s) {
			legal = append(legal, s)
		}
	}
	return legal
}

// RotateSpare turns the spare tile clockwise.
func (b *Board) RotateSpare(r Rotation) {
	b.spare = b.spare.Rotated(r)
}

// Play commits a turn's shift: the spare is rotated, then inserted. Unlike Shift it
// rejects pushing back the previous shift. The board is left unchanged on error.
func (b *Board) Play(a Action) (*Tile, error) {
	if err := a.Shift.validate(); err != nil {
		return nil, err
	}
	if b.IsForbidden(a.Shift) {
		return nil, fmt.Errorf("%w: %s", ErrForbiddenShift, a.Shift)
	}
	b.RotateSpare(a.Rotation)
	return b.Shift(a.Index, a.Direction)
}
