package main

import (
	"encoding/json"
	"fmt"
	"os"

	"mazenet/game"

	xrand "golang.org/x/exp/rand"
)

// loadBoard reads a JSON board from path, or lays out a standard board when path is empty.
func loadBoard(path string, players int) (*game.Board, error) {
	if path == "" {
		return game.NewStandardBoard(xrand.New(xrand.NewSource(seed())), players), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read board %s: %w", path, err)
	}
	var board game.Board
	if err := json.Unmarshal(data, &board); err != nil {
		return nil, fmt.Errorf("failed to parse board %s: %w", path, err)
	}
	return &board, nil
}
