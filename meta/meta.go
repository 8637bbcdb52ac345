// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines the evaluator fans out to.
const GO_ROUTINES = 8

// ROUNDS defines the number of rollouts per candidate action.
const ROUNDS = 20

// ROLLOUT_DEPTH defines the number of simulated player turns per rollout.
const ROLLOUT_DEPTH = 2

// MAX_TURNS defines the turn limit of a local game.
const MAX_TURNS = 300

const PLAYERS = 2

// TREASURES_PER_PLAYER of 0 deals the 24 symbols evenly among the players.
const TREASURES_PER_PLAYER = 0

const SCORE = "shortest-path"

const ROLLOUT = "random"
