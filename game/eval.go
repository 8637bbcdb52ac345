package game

import (
	"fmt"
	"math"
	"sort"
)

// Score rates a board from a player's perspective while it pursues target. Lower is better.
type Score func(b *Board, p Player, target Treasure) float64

const (
	// Penalty for a target that is on the grid but cut off from the player.
	disconnected = Size * Size
	// Penalty for a target held by the spare tile.
	offBoard = disconnected + 2*Size
)

var scores = map[string]Score{
	"shortest-path":       ShortestPath,
	"manhattan":           Manhattan,
	"euclidean":           Euclidean,
	"reachable-treasures": ReachableTreasures,
}

// ScoreByName looks up a score function by its configuration name.
func ScoreByName(name string) (Score, error) {
	score, ok := scores[name]
	if !ok {
		return nil, fmt.Errorf("unknown score %q, expected one of %v", name, ScoreNames())
	}
	return score, nil
}

func ScoreNames() []string {
	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ShortestPath is the open-path distance to the target. A disconnected target costs a fixed
// penalty plus its grid distance, so closer still ranks better.
func ShortestPath(b *Board, p Player, target Treasure) float64 {
	from, goal, ok := locate(b, p, target)
	if !ok {
		return offBoard
	}
	if d := b.Distance(from, goal); d >= 0 {
		return float64(d)
	}
	return float64(disconnected + from.Manhattan(goal))
}

// Manhattan is the grid distance to the target, ignoring walls.
func Manhattan(b *Board, p Player, target Treasure) float64 {
	from, goal, ok := locate(b, p, target)
	if !ok {
		return offBoard
	}
	return float64(from.Manhattan(goal))
}

// Euclidean is the straight-line distance to the target, ignoring walls.
func Euclidean(b *Board, p Player, target Treasure) float64 {
	from, goal, ok := locate(b, p, target)
	if !ok {
		return offBoard
	}
	return math.Hypot(float64(from.X-goal.X), float64(from.Y-goal.Y))
}

// ReachableTreasures rewards mobility: the negated count of treasures reachable from the
// player, with a large bonus when the target itself is reachable.
func ReachableTreasures(b *Board, p Player, target Treasure) float64 {
	from, ok := b.Position(p)
	if !ok {
		return offBoard
	}
	count := 0
	for _, c := range b.Reachable(from) {
		t := b.TileAt(c).treasure
		if t == NoTreasure {
			continue
		}
		if t == target {
			count += disconnected
		}
		count++
	}
	return -float64(count)
}

func locate(b *Board, p Player, target Treasure) (from, goal Coord, ok bool) {
	from, ok = b.Position(p)
	if !ok {
		return from, goal, false
	}
	goal, ok = b.Find(target)
	return from, goal, ok
}
