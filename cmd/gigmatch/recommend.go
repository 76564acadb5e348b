package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/okian/gigmatch/internal/adapters/cli"
	"github.com/okian/gigmatch/internal/domain/recommend"
)

func newRecommendCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "recommend SCORE",
		Short: "Show the recommendation tier for a match score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("score %q: %w", args[0], err)
			}
			rec, err := recommend.Recommend(score)
			if err != nil {
				return err
			}
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
					"score":   score,
					"tier":    rec.Tier,
					"message": rec.Message,
				})
			}
			return cli.New(cmd.OutOrStdout()).Recommendation(score, rec)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}
