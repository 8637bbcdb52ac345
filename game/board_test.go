package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNewBoard(t *testing.T) {
	t.Run("derives positions from occupants", func(t *testing.T) {
		rows := wallRows()
		rows[2][5] = NewTile(OpenAll, NoTreasure, 1, 2)
		b := mustBoard(t, rows, NewTile(OpenAll, NoTreasure))

		pos, ok := b.Position(1)
		require.True(t, ok)
		require.Equal(t, Coord{X: 5, Y: 2}, pos)
		require.Equal(t, []Player{1, 2}, b.Players())
	})

	t.Run("rejects a short grid", func(t *testing.T) {
		_, err := NewBoard(wallRows()[:6], NewTile(0, NoTreasure))
		require.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("rejects a short row", func(t *testing.T) {
		rows := wallRows()
		rows[3] = rows[3][:4]
		_, err := NewBoard(rows, NewTile(0, NoTreasure))
		require.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("rejects a missing tile", func(t *testing.T) {
		rows := wallRows()
		rows[1][1] = nil
		_, err := NewBoard(rows, NewTile(0, NoTreasure))
		require.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("rejects a player on two tiles", func(t *testing.T) {
		rows := wallRows()
		rows[0][0] = NewTile(0, NoTreasure, 1)
		rows[6][6] = NewTile(0, NoTreasure, 1)
		_, err := NewBoard(rows, NewTile(0, NoTreasure))
		require.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("rejects a player on the spare", func(t *testing.T) {
		_, err := NewBoard(wallRows(), NewTile(0, NoTreasure, 1))
		require.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("rejects a tile placed twice", func(t *testing.T) {
		rows := wallRows()
		rows[1][2] = rows[1][1]
		_, err := NewBoard(rows, NewTile(0, NoTreasure))
		require.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("rejects a spare that is also on the grid", func(t *testing.T) {
		rows := wallRows()
		_, err := NewBoard(rows, rows[3][3])
		require.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("rejects a missing spare", func(t *testing.T) {
		_, err := NewBoard(wallRows(), nil)
		require.ErrorIs(t, err, ErrInvalidBoard)
	})
}

func TestNewCoord(t *testing.T) {
	t.Run("accepts the grid range", func(t *testing.T) {
		c, err := NewCoord(6, 0)
		require.NoError(t, err)
		require.Equal(t, Coord{X: 6, Y: 0}, c)
		require.True(t, c.IsCorner())
	})

	t.Run("rejects coordinates off the grid", func(t *testing.T) {
		for _, xy := range [][2]int{{-1, 0}, {0, -1}, {7, 3}, {3, 7}} {
			_, err := NewCoord(xy[0], xy[1])
			require.ErrorIs(t, err, ErrInvalidCoord, "(%d,%d) should be rejected", xy[0], xy[1])
		}
	})
}

func TestClone(t *testing.T) {
	b := NewStandardBoard(rand.New(rand.NewSource(7)), 4)
	clone := b.Clone()

	require.Equal(t, b.Hash(), clone.Hash(), "Clone should hash equal")
	for y := range Size {
		for x := range Size {
			c := Coord{X: x, Y: y}
			require.NotSame(t, b.TileAt(c), clone.TileAt(c), "Clone should not share tile %s", c)
		}
	}

	_, err := clone.Shift(3, FromLeft)
	require.NoError(t, err)
	require.NoError(t, clone.PlayerMove(1, 0, 0))

	require.NotEqual(t, b.Hash(), clone.Hash(), "Mutating the clone should not affect the original")
	_, ok := b.LastShift()
	require.False(t, ok, "Original should not record the clone's shift")
	requireConsistent(t, b)
	requireConsistent(t, clone)
}

func TestNewStandardBoard(t *testing.T) {
	t.Run("places players on their start corners", func(t *testing.T) {
		b := NewStandardBoard(rand.New(rand.NewSource(1)), 4)

		for p := Player(1); p <= 4; p++ {
			pos, ok := b.Position(p)
			require.True(t, ok)
			require.Equal(t, StartCoord(p), pos)
			require.Equal(t, Home(p), b.TileAt(pos).Treasure())
		}
		requireConsistent(t, b)
	})

	t.Run("corner tiles face the board", func(t *testing.T) {
		b := NewStandardBoard(rand.New(rand.NewSource(1)), 2)

		require.Equal(t, OpenRight|OpenBottom, b.TileAt(Coord{0, 0}).Openings())
		require.Equal(t, OpenLeft|OpenBottom, b.TileAt(Coord{6, 0}).Openings())
		require.Equal(t, OpenTop|OpenRight, b.TileAt(Coord{0, 6}).Openings())
		require.Equal(t, OpenTop|OpenLeft, b.TileAt(Coord{6, 6}).Openings())
		require.Equal(t, []Player{1, 2}, b.Players())
	})

	t.Run("every symbol treasure appears exactly once", func(t *testing.T) {
		b := NewStandardBoard(rand.New(rand.NewSource(3)), 2)

		counts := map[Treasure]int{b.Spare().Treasure(): 1}
		for y := range Size {
			for x := range Size {
				counts[b.TileAt(Coord{x, y}).Treasure()]++
			}
		}
		for _, treasure := range SymbolTreasures() {
			require.Equal(t, 1, counts[treasure], "%s should be placed once", treasure)
		}
	})

	t.Run("same seed yields the same layout", func(t *testing.T) {
		b1 := NewStandardBoard(rand.New(rand.NewSource(42)), 4)
		b2 := NewStandardBoard(rand.New(rand.NewSource(42)), 4)
		require.Equal(t, b1.Hash(), b2.Hash())
	})

	t.Run("panics on an unsupported player count", func(t *testing.T) {
		require.Panics(t, func() {
			NewStandardBoard(rand.New(rand.NewSource(1)), 5)
		})
	})
}
