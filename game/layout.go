package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

const (
	Straight  = OpenTop | OpenBottom
	Corner    = OpenRight | OpenBottom
	TJunction = OpenLeft | OpenRight | OpenBottom
)

// MaxPlayers is the number of start corners.
const MaxPlayers = 4

var startCorners = []Coord{{0, 0}, {Size - 1, 0}, {0, Size - 1}, {Size - 1, Size - 1}}

// startOpenings faces each corner tile toward the board.
var startOpenings = []Openings{
	OpenRight | OpenBottom,
	OpenLeft | OpenBottom,
	OpenTop | OpenRight,
	OpenTop | OpenLeft,
}

// fixedOpenings lists the non-corner tiles on even coordinates, all T-junctions.
var fixedOpenings = map[Coord]Openings{
	{2, 0}: OpenAll &^ OpenTop,
	{4, 0}: OpenAll &^ OpenTop,
	{0, 2}: OpenAll &^ OpenLeft,
	{2, 2}: OpenAll &^ OpenLeft,
	{4, 2}: OpenAll &^ OpenTop,
	{6, 2}: OpenAll &^ OpenRight,
	{0, 4}: OpenAll &^ OpenLeft,
	{2, 4}: OpenAll &^ OpenBottom,
	{4, 4}: OpenAll &^ OpenRight,
	{6, 4}: OpenAll &^ OpenRight,
	{2, 6}: OpenAll &^ OpenBottom,
	{4, 6}: OpenAll &^ OpenBottom,
}

// Home returns the treasure marking the player's start tile.
func Home(p Player) Treasure {
	return Treasure(fmt.Sprintf("Start%02d", int(p)))
}

// StartCoord returns the corner the player starts on.
func StartCoord(p Player) Coord {
	if p < 1 || int(p) > MaxPlayers {
		panic(fmt.Sprintf("no start corner for player %d", p))
	}
	return startCorners[p-1]
}

// SymbolTreasures returns the 24 collectible treasures sym01..sym24.
func SymbolTreasures() []Treasure {
	treasures := make([]Treasure, 24)
	for i := range treasures {
		treasures[i] = Treasure(fmt.Sprintf("sym%02d", i+1))
	}
	return treasures
}

// NewStandardBoard lays out the classic board: fixed start corners and T-junctions on even
// coordinates, and a shuffled, randomly rotated pool of loose tiles for the shiftable cells
// and the spare. Players 1..players stand on their start corners.
func NewStandardBoard(rng *rand.Rand, players int) *Board {
	if players < 1 || players > MaxPlayers {
		panic(fmt.Sprintf("players must be between 1 and %d, got %d", MaxPlayers, players))
	}

	symbols := SymbolTreasures()
	rows := make([][]*Tile, Size)
	for y := range rows {
		rows[y] = make([]*Tile, Size)
	}

	for i, c := range startCorners {
		p := Player(i + 1)
		tile := NewTile(startOpenings[i], Home(p))
		if i < players {
			tile.addOccupant(p)
		}
		rows[c.Y][c.X] = tile
	}

	next := 0
	for y := 0; y < Size; y += 2 {
		for x := 0; x < Size; x += 2 {
			c := Coord{X: x, Y: y}
			if c.IsCorner() {
				continue
			}
			rows[y][x] = NewTile(fixedOpenings[c], symbols[next])
			next++
		}
	}

	// 12 straights, 16 corners (6 with treasures) and 6 T-junctions with treasures
	var loose []*Tile
	for range 12 {
		loose = append(loose, NewTile(Straight, NoTreasure))
	}
	for i := range 16 {
		treasure := NoTreasure
		if i < 6 {
			treasure = symbols[next]
			next++
		}
		loose = append(loose, NewTile(Corner, treasure))
	}
	for range 6 {
		loose = append(loose, NewTile(TJunction, symbols[next]))
		next++
	}
	rng.Shuffle(len(loose), func(i, j int) { loose[i], loose[j] = loose[j], loose[i] })
	for _, tile := range loose {
		tile.openings = tile.openings.Rotate(Rotation(rng.Intn(len(Rotations))))
	}

	k := 0
	for y := range Size {
		for x := range Size {
			if rows[y][x] == nil {
				rows[y][x] = loose[k]
				k++
			}
		}
	}

	b, err := NewBoard(rows, loose[k])
	if err != nil {
		panic(fmt.Sprintf("standard layout is invalid: %v", err))
	}
	return b
}
