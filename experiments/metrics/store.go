package metrics

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store persists experiment runs in SQLite.
type Store struct {
	db *sql.DB
}

// AgentSummary is the win tally of one agent configuration within a run.
type AgentSummary struct {
	Agent  int
	Games  int
	Wins   int
	Rounds int // Rollouts across all of the agent's moves
}

// OpenStore creates or opens the database at path, creating parent directories and the schema.
func OpenStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("metrics: cannot create directory for %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("metrics: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("metrics: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("metrics: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS agent_configs (
			run_id TEXT NOT NULL REFERENCES runs(id),
			id INTEGER NOT NULL,
			goroutines INTEGER NOT NULL,
			duration_ns INTEGER NOT NULL,
			rounds INTEGER NOT NULL,
			depth INTEGER NOT NULL,
			score TEXT NOT NULL,
			rollout TEXT NOT NULL,
			PRIMARY KEY (run_id, id)
		);

		CREATE TABLE IF NOT EXISTS games (
			run_id TEXT NOT NULL REFERENCES runs(id),
			id INTEGER NOT NULL,
			agent1 INTEGER NOT NULL,
			agent2 INTEGER NOT NULL,
			starting_player INTEGER NOT NULL,
			winner INTEGER NOT NULL,
			start_time DATETIME NOT NULL,
			end_time DATETIME NOT NULL,
			duration_ns INTEGER NOT NULL,
			total_moves INTEGER NOT NULL,
			treasures_found INTEGER NOT NULL,
			PRIMARY KEY (run_id, id)
		);

		CREATE TABLE IF NOT EXISTS moves (
			run_id TEXT NOT NULL REFERENCES runs(id),
			game INTEGER NOT NULL,
			step INTEGER NOT NULL,
			player INTEGER NOT NULL,
			action TEXT NOT NULL,
			duration_ns INTEGER NOT NULL,
			rounds INTEGER NOT NULL,
			candidates INTEGER NOT NULL,
			target_reached INTEGER NOT NULL,
			PRIMARY KEY (run_id, game, step)
		);
		CREATE INDEX IF NOT EXISTS idx_moves_game ON moves(run_id, game);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun stores a complete experiment and returns its generated run id.
func (s *Store) SaveRun(name string, configs []AgentConfig, games []GameRecord, moves []MoveRecord) (string, error) {
	runID := uuid.NewString()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("metrics: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO runs (id, name, created_at) VALUES (?, ?, ?)`, runID, name, time.Now().UTC()); err != nil {
		return "", fmt.Errorf("metrics: cannot save run: %w", err)
	}
	for _, c := range configs {
		_, err := tx.Exec(`INSERT INTO agent_configs (run_id, id, goroutines, duration_ns, rounds, depth, score, rollout) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, c.ID, c.Goroutines, int64(c.Duration), c.Rounds, c.Depth, c.Score, c.Rollout)
		if err != nil {
			return "", fmt.Errorf("metrics: cannot save agent config %d: %w", c.ID, err)
		}
	}
	for _, g := range games {
		_, err := tx.Exec(`INSERT INTO games (run_id, id, agent1, agent2, starting_player, winner, start_time, end_time, duration_ns, total_moves, treasures_found) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, g.ID, g.Agent1, g.Agent2, g.StartingPlayer, g.Winner, g.StartTime.UTC(), g.EndTime.UTC(), int64(g.Duration), g.TotalMoves, g.TreasuresFound)
		if err != nil {
			return "", fmt.Errorf("metrics: cannot save game %d: %w", g.ID, err)
		}
	}
	for _, m := range moves {
		_, err := tx.Exec(`INSERT INTO moves (run_id, game, step, player, action, duration_ns, rounds, candidates, target_reached) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, m.Game, m.Step, m.Player, m.Action, int64(m.Duration), m.Rounds, m.Candidates, m.TargetReached)
		if err != nil {
			return "", fmt.Errorf("metrics: cannot save move %d of game %d: %w", m.Step, m.Game, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("metrics: cannot commit run: %w", err)
	}
	return runID, nil
}

// Summary tallies games and wins per agent configuration of a run. Player 1 plays agent1
// and player 2 plays agent2.
func (s *Store) Summary(runID string) ([]AgentSummary, error) {
	rows, err := s.db.Query(`
		SELECT agent, COUNT(*), SUM(won), SUM(rounds) FROM (
			SELECT g.agent1 AS agent, g.winner = 1 AS won,
				(SELECT COALESCE(SUM(m.rounds), 0) FROM moves m WHERE m.run_id = g.run_id AND m.game = g.id AND m.player = 1) AS rounds
			FROM games g WHERE g.run_id = ?
			UNION ALL
			SELECT g.agent2, g.winner = 2,
				(SELECT COALESCE(SUM(m.rounds), 0) FROM moves m WHERE m.run_id = g.run_id AND m.game = g.id AND m.player = 2)
			FROM games g WHERE g.run_id = ?
		)
		GROUP BY agent
		ORDER BY agent`, runID, runID)
	if err != nil {
		return nil, fmt.Errorf("metrics: cannot query summary: %w", err)
	}
	defer rows.Close()

	var summaries []AgentSummary
	for rows.Next() {
		var a AgentSummary
		if err := rows.Scan(&a.Agent, &a.Games, &a.Wins, &a.Rounds); err != nil {
			return nil, fmt.Errorf("metrics: cannot scan summary: %w", err)
		}
		summaries = append(summaries, a)
	}
	return summaries, rows.Err()
}

// Runs returns the ids of stored runs with the given name, newest first.
func (s *Store) Runs(name string) ([]string, error) {
	rows, err := s.db.Query(`SELECT id FROM runs WHERE name = ? ORDER BY created_at DESC`, name)
	if err != nil {
		return nil, fmt.Errorf("metrics: cannot query runs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("metrics: cannot scan run: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
