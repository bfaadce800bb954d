package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score commands",
	}

	cmd.AddCommand(newScoreSubmitCmd())

	return cmd
}

func newScoreSubmitCmd() *cobra.Command {
	var game string

	cmd := &cobra.Command{
		Use:   "submit <score>",
		Short: "Submit a score for a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if game == "" {
				return fmt.Errorf("--game is required")
			}

			score, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid score %q: %w", args[0], err)
			}

			req := map[string]any{
				"game_id": game,
				"score":   score,
			}

			if err := client.Post("/api/score", req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Submitted %d for %s", score, game))
			return nil
		},
	}

	cmd.Flags().StringVar(&game, "game", "", "Game name (required)")
	_ = cmd.MarkFlagRequired("game")

	return cmd
}

func newLeaderboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard <game>",
		Short: "Show the top scores for a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var entries []LeaderboardEntry

			if err := client.Get("/api/leaderboard/"+args[0], &entries); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(entries)
			return nil
		},
	}
}
