package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"maps"
	"slices"
)

// Board is the 7x7 tile grid, the spare tile and the player positions.
type Board struct {
	grid      [Size][Size]*Tile // Indexed [y][x]
	spare     *Tile
	positions map[Player]Coord
	lastShift *Shift // Most recent shift, nil before the first one
}

// NewBoard takes ownership of the given rows of tiles (indexed [y][x]) and the spare tile.
// Player positions are derived from tile occupants.
func NewBoard(rows [][]*Tile, spare *Tile) (*Board, error) {
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidBoard, Size, len(rows))
	}
	b := &Board{spare: spare, positions: make(map[Player]Coord)}
	for y, row := range rows {
		if len(row) != Size {
			return nil, fmt.Errorf("%w: row %d has %d tiles, expected %d", ErrInvalidBoard, y, len(row), Size)
		}
		for x, tile := range row {
			if tile == nil {
				return nil, fmt.Errorf("%w: missing tile at (%d,%d)", ErrInvalidBoard, x, y)
			}
			b.grid[y][x] = tile
			for _, p := range tile.occupants {
				if prev, ok := b.positions[p]; ok {
					return nil, fmt.Errorf("%w: player %d stands on both %s and (%d,%d)", ErrInvalidBoard, p, prev, x, y)
				}
				b.positions[p] = Coord{X: x, Y: y}
			}
		}
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate checks the structural invariants: a single distinct spare, no shared tiles,
// and player positions matching tile occupants in both directions.
func (b *Board) Validate() error {
	if b.spare == nil {
		return fmt.Errorf("%w: missing spare tile", ErrInvalidBoard)
	}
	if len(b.spare.occupants) > 0 {
		return fmt.Errorf("%w: players %v stand on the spare tile", ErrInvalidBoard, b.spare.occupants)
	}

	seen := make(map[*Tile]Coord, Size*Size+1)
	occupied := 0
	for y := range Size {
		for x := range Size {
			c := Coord{X: x, Y: y}
			tile := b.grid[y][x]
			if tile == nil {
				return fmt.Errorf("%w: missing tile at %s", ErrInvalidBoard, c)
			}
			if tile == b.spare {
				return fmt.Errorf("%w: tile at %s is also the spare", ErrInvalidBoard, c)
			}
			if prev, ok := seen[tile]; ok {
				return fmt.Errorf("%w: tile at %s is also placed at %s", ErrInvalidBoard, c, prev)
			}
			seen[tile] = c
			for _, p := range tile.occupants {
				if pos, ok := b.positions[p]; !ok || pos != c {
					return fmt.Errorf("%w: player %d is on tile %s but positioned at %v", ErrInvalidBoard, p, c, pos)
				}
				occupied++
			}
		}
	}
	if occupied != len(b.positions) {
		return fmt.Errorf("%w: %d players positioned but %d found on tiles", ErrInvalidBoard, len(b.positions), occupied)
	}
	return nil
}

// Clone returns a deep copy sharing no tiles with b.
func (b *Board) Clone() *Board {
	clone := &Board{
		spare:     b.spare.clone(),
		positions: maps.Clone(b.positions),
	}
	for y := range Size {
		for x := range Size {
			clone.grid[y][x] = b.grid[y][x].clone()
		}
	}
	if b.lastShift != nil {
		last := *b.lastShift
		clone.lastShift = &last
	}
	return clone
}

func (b *Board) TileAt(c Coord) *Tile {
	if !c.Valid() {
		return nil
	}
	return b.grid[c.Y][c.X]
}

func (b *Board) Spare() *Tile { return b.spare }

func (b *Board) Position(p Player) (Coord, bool) {
	c, ok := b.positions[p]
	return c, ok
}

// Players returns the player ids on the board in ascending order.
func (b *Board) Players() []Player {
	return slices.Sorted(maps.Keys(b.positions))
}

func (b *Board) LastShift() (Shift, bool) {
	if b.lastShift == nil {
		return Shift{}, false
	}
	return *b.lastShift, true
}

// Find returns the grid coordinate of the tile carrying the treasure. It reports false
// when the treasure is on the spare or nowhere on the board.
func (b *Board) Find(treasure Treasure) (Coord, bool) {
	if treasure == NoTreasure {
		return Coord{}, false
	}
	for y := range Size {
		for x := range Size {
			if b.grid[y][x].treasure == treasure {
				return Coord{X: x, Y: y}, true
			}
		}
	}
	return Coord{}, false
}

// Hash is a FNV-1a digest of tile layout, treasures, occupants and the spare.
func (b *Board) Hash() uint64 {
	h := fnv.New64a()
	buf := make([]byte, 8)
	write := func(t *Tile) {
		h.Write([]byte{byte(t.openings)})
		h.Write([]byte(t.treasure))
		h.Write([]byte{0})
		for _, p := range t.occupants {
			binary.LittleEndian.PutUint64(buf, uint64(p))
			h.Write(buf)
		}
		h.Write([]byte{0xff})
	}
	for y := range Size {
		for x := range Size {
			write(b.grid[y][x])
		}
	}
	write(b.spare)
	return h.Sum64()
}

func (b *Board) set(c Coord, t *Tile) {
	b.grid[c.Y][c.X] = t
}
