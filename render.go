package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	renderBoard   string
	renderPlayers int
	renderJSON    bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print a board as ASCII or JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		board, err := loadBoard(renderBoard, renderPlayers)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if renderJSON {
			data, err := json.MarshalIndent(board, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
			return nil
		}
		fmt.Fprint(out, board.RenderDebug())
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderBoard, "board", "", "JSON board file (default: a new standard board)")
	renderCmd.Flags().IntVar(&renderPlayers, "players", 4, "Players on a new standard board")
	renderCmd.Flags().BoolVar(&renderJSON, "json", false, "Print JSON instead of ASCII")
}
