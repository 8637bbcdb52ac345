package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// wallRows returns a 7x7 grid of fully walled tiles.
func wallRows() [][]*Tile {
	rows := make([][]*Tile, Size)
	for y := range rows {
		rows[y] = make([]*Tile, Size)
		for x := range rows[y] {
			rows[y][x] = NewTile(0, NoTreasure)
		}
	}
	return rows
}

func mustBoard(t *testing.T, rows [][]*Tile, spare *Tile) *Board {
	t.Helper()
	b, err := NewBoard(rows, spare)
	require.NoError(t, err, "Board should be valid")
	return b
}

func lineTiles(b *Board, s Shift) []*Tile {
	tiles := make([]*Tile, 0, Size)
	for _, c := range s.line() {
		tiles = append(tiles, b.TileAt(c))
	}
	return tiles
}

func requireConsistent(t *testing.T, b *Board) {
	t.Helper()
	require.NoError(t, b.Validate(), "Board invariants should hold")
}
