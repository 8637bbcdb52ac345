package searcher

import (
	"mazenet/game"

	"golang.org/x/exp/rand"
)

// Rollout picks where the player walks during a simulated turn. The returned coordinate
// must be reachable from the player's tile.
type Rollout func(b *game.Board, p game.Player, target game.Treasure, rng *rand.Rand) game.Coord

// RandomRollout walks to a uniformly random reachable tile.
func RandomRollout(b *game.Board, p game.Player, target game.Treasure, rng *rand.Rand) game.Coord {
	from, _ := b.Position(p)
	reachable := b.Reachable(from)
	return reachable[rng.Intn(len(reachable))]
}

// GreedyRollout walks onto the target if it is reachable, otherwise to the reachable tile
// closest to it by grid distance. Ties are broken randomly.
func GreedyRollout(b *game.Board, p game.Player, target game.Treasure, rng *rand.Rand) game.Coord {
	from, _ := b.Position(p)
	reachable := b.Reachable(from)
	goal, ok := b.Find(target)
	if !ok {
		return reachable[rng.Intn(len(reachable))]
	}

	var closest []game.Coord
	nearest := -1
	for _, c := range reachable {
		d := c.Manhattan(goal)
		switch {
		case nearest < 0 || d < nearest:
			nearest = d
			closest = append(closest[:0], c)
		case d == nearest:
			closest = append(closest, c)
		}
	}
	return closest[rng.Intn(len(closest))]
}

var rollouts = map[string]Rollout{
	"random": RandomRollout,
	"greedy": GreedyRollout,
}

// RolloutByName looks up a rollout policy by its configuration name.
func RolloutByName(name string) (Rollout, bool) {
	r, ok := rollouts[name]
	return r, ok
}

// seedFor derives an independent stream per (candidate, round) so results do not depend
// on which worker runs a rollout.
func seedFor(seed uint64, candidate, round int) uint64 {
	z := seed ^ (uint64(candidate)+1)*0x9e3779b97f4a7c15 ^ (uint64(round)+1)*0xbf58476d1ce4e5b9
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
