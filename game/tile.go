package game

import (
	"slices"

	"mazenet/utils"
)

type Player int

type Treasure string

const NoTreasure Treasure = ""

// Openings is a bit set of the sides a tile is open on.
type Openings uint8

const (
	OpenLeft Openings = 1 << iota
	OpenTop
	OpenRight
	OpenBottom
)

const OpenAll = OpenLeft | OpenTop | OpenRight | OpenBottom

// Sides lists the single-side openings in clockwise order starting at the left.
var Sides = []Openings{OpenLeft, OpenTop, OpenRight, OpenBottom}

func (o Openings) Has(side Openings) bool {
	return o&side == side
}

// Rotate turns the openings clockwise in quarter steps.
func (o Openings) Rotate(r Rotation) Openings {
	steps := uint(r.normalize())
	o &= OpenAll
	return (o<<steps | o>>(4-steps)) & OpenAll
}

// Opposite returns the opening facing the other way.
func (o Openings) Opposite() Openings {
	return o.Rotate(Deg180)
}

func (o Openings) String() string {
	s := ""
	for i, side := range Sides {
		if o.Has(side) {
			s += string("LTRB"[i])
		}
	}
	if s == "" {
		return "-"
	}
	return s
}

// Tile is a single maze cell. Its openings never change once it is placed on a board;
// occupants and treasure are only mutated through Board operations.
type Tile struct {
	openings  Openings
	treasure  Treasure
	occupants []Player // Sorted ascending
}

func NewTile(openings Openings, treasure Treasure, occupants ...Player) *Tile {
	t := &Tile{openings: openings & OpenAll, treasure: treasure}
	for _, p := range occupants {
		t.addOccupant(p)
	}
	return t
}

func (t *Tile) Openings() Openings { return t.openings }

func (t *Tile) IsOpen(side Openings) bool { return t.openings.Has(side) }

func (t *Tile) Treasure() Treasure { return t.treasure }

// Occupants returns a copy of the players standing on the tile.
func (t *Tile) Occupants() []Player {
	return slices.Clone(t.occupants)
}

func (t *Tile) HasOccupant(p Player) bool {
	return utils.FindIndex(t.occupants, p) >= 0
}

// Rotated returns a copy of the tile turned clockwise by r.
func (t *Tile) Rotated(r Rotation) *Tile {
	rotated := t.clone()
	rotated.openings = t.openings.Rotate(r)
	return rotated
}

// Glyph renders the tile as 3 rows of 3 characters. Corners are always walls and the
// centre is always open.
func (t *Tile) Glyph() [3]string {
	cell := func(side Openings) string {
		if t.IsOpen(side) {
			return " "
		}
		return "#"
	}
	return [3]string{
		"#" + cell(OpenTop) + "#",
		cell(OpenLeft) + " " + cell(OpenRight),
		"#" + cell(OpenBottom) + "#",
	}
}

func (t *Tile) clone() *Tile {
	return &Tile{
		openings:  t.openings,
		treasure:  t.treasure,
		occupants: slices.Clone(t.occupants),
	}
}

func (t *Tile) addOccupant(p Player) {
	i, found := slices.BinarySearch(t.occupants, p)
	if found {
		return
	}
	t.occupants = slices.Insert(t.occupants, i, p)
}

func (t *Tile) removeOccupant(p Player) {
	i := utils.FindIndex(t.occupants, p)
	if i < 0 {
		return
	}
	t.occupants = slices.Delete(t.occupants, i, i+1)
}
