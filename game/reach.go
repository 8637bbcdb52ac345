package game

import "fmt"

// CanMove reports whether a player can step from c to its neighbour on side: both tiles
// must be open toward each other.
func (b *Board) CanMove(c Coord, side Openings) bool {
	next := c.Step(side)
	if !c.Valid() || !next.Valid() {
		return false
	}
	return b.TileAt(c).IsOpen(side) && b.TileAt(next).IsOpen(side.Opposite())
}

// distances runs a breadth-first search from c. Unreachable cells hold -1.
func (b *Board) distances(from Coord) (dist [Size][Size]int, order []Coord) {
	for y := range Size {
		for x := range Size {
			dist[y][x] = -1
		}
	}
	if !from.Valid() {
		return dist, nil
	}

	dist[from.Y][from.X] = 0
	order = append(order, from)
	for i := 0; i < len(order); i++ {
		c := order[i]
		for _, side := range Sides {
			if !b.CanMove(c, side) {
				continue
			}
			next := c.Step(side)
			if dist[next.Y][next.X] >= 0 {
				continue
			}
			dist[next.Y][next.X] = dist[c.Y][c.X] + 1
			order = append(order, next)
		}
	}
	return dist, order
}

// Reachable returns every cell connected to from, in breadth-first order starting with from.
func (b *Board) Reachable(from Coord) []Coord {
	_, order := b.distances(from)
	return order
}

// Distance returns the length of the shortest open path between two cells, or -1 if none.
func (b *Board) Distance(from, to Coord) int {
	if !to.Valid() {
		return -1
	}
	dist, _ := b.distances(from)
	return dist[to.Y][to.X]
}

// OpenPaths counts the traversable edges between neighbouring tiles.
func (b *Board) OpenPaths() int {
	count := 0
	for y := range Size {
		for x := range Size {
			c := Coord{X: x, Y: y}
			if b.CanMove(c, OpenRight) {
				count++
			}
			if b.CanMove(c, OpenBottom) {
				count++
			}
		}
	}
	return count
}

// PlayerMove walks a player to (x, y) if an open path connects it to the player's tile.
// Moving to the current tile succeeds without change. The board is left unchanged on error.
func (b *Board) PlayerMove(p Player, x, y int) error {
	target, err := NewCoord(x, y)
	if err != nil {
		return err
	}
	from, ok := b.positions[p]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownPlayer, p)
	}
	if from == target {
		return nil
	}
	if b.Distance(from, target) < 0 {
		return fmt.Errorf("%w: player %d cannot reach %s from %s", ErrUnreachableTarget, p, target, from)
	}

	b.TileAt(from).removeOccupant(p)
	b.TileAt(target).addOccupant(p)
	b.positions[p] = target
	return nil
}
