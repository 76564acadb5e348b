package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/gigmatch/internal/adapters/cli"
	service "github.com/okian/gigmatch/internal/app"
	"github.com/okian/gigmatch/internal/domain/match"
	"github.com/okian/gigmatch/internal/domain/model"
	"github.com/okian/gigmatch/internal/domain/scoring"
	"github.com/okian/gigmatch/pkg/logger"
)

type searchFlags struct {
	catalog   string
	profile   string
	text      string
	minBudget float64
	maxBudget float64
	minScore  int
	explain   bool
	asJSON    bool
}

func newSearchCmd() *cobra.Command {
	var f searchFlags

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Rank catalog listings for a freelancer profile",
		Long:  "Scores every listing in the configured repository against the freelancer profile, drops listings below --min-score and prints the rest best first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.catalog, "catalog", "", "YAML catalog path (overrides config catalog_path)")
	cmd.Flags().StringVarP(&f.profile, "profile", "p", "", "YAML profile path (overrides config profile_path)")
	cmd.Flags().StringVarP(&f.text, "text", "t", "", "Case-insensitive text filter")
	cmd.Flags().Float64Var(&f.minBudget, "min-budget", 0, "Only listings whose budget reaches this amount")
	cmd.Flags().Float64Var(&f.maxBudget, "max-budget", 0, "Only listings whose budget starts at or below this amount")
	cmd.Flags().IntVarP(&f.minScore, "min-score", "m", 0, "Minimum match score in [0,100] (default from config)")
	cmd.Flags().BoolVar(&f.explain, "explain", false, "Print the score breakdown for each result")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "Print results as JSON")
	return cmd
}

func runSearch(cmd *cobra.Command, f searchFlags) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(ctx, logger.WithOutput(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	if f.catalog != "" {
		cfg.CatalogPath = f.catalog
	}
	if f.profile != "" {
		cfg.ProfilePath = f.profile
	}

	svc, engine, err := newService(ctx, cfg, logger.Get())
	if err != nil {
		return err
	}
	if err := svc.Start(ctx); err != nil {
		return err
	}
	defer svc.Stop()

	// Fetch the profile once so the breakdown explains the same input.
	p, err := profileProvider(cfg).GetProfile(ctx)
	if err != nil {
		return err
	}

	req := service.SearchRequest{Profile: &p, Text: f.text}
	if cmd.Flags().Changed("min-budget") {
		req.MinBudget = model.Float(f.minBudget)
	}
	if cmd.Flags().Changed("max-budget") {
		req.MaxBudget = model.Float(f.maxBudget)
	}
	if cmd.Flags().Changed("min-score") {
		req.MinScore = &f.minScore
	}

	res, err := svc.Search(ctx, req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if f.asJSON {
		return writeSearchJSON(cmd, res, engine, p, f.explain)
	}

	var opts []cli.Option
	if f.explain {
		opts = append(opts, cli.WithExplainer(func(l model.ProjectListing) (scoring.Breakdown, error) {
			return engine.Explain(p, l)
		}))
	}
	r := cli.New(out, opts...)
	if err := r.Results(res.Results); err != nil {
		return err
	}
	if res.Truncated {
		_, err = fmt.Fprintf(out, "showing %d of %d matches\n", len(res.Results), res.Matched)
	}
	return err
}

type explainedResult struct {
	model.ScoredListing
	Breakdown *scoring.Breakdown `json:"breakdown,omitempty"`
}

func writeSearchJSON(cmd *cobra.Command, res service.SearchResult, engine *match.Engine, p model.FreelancerProfile, explain bool) error {
	results := make([]explainedResult, 0, len(res.Results))
	for _, r := range res.Results {
		er := explainedResult{ScoredListing: r}
		if explain {
			b, err := engine.Explain(p, r.ProjectListing)
			if err != nil {
				return err
			}
			er.Breakdown = &b
		}
		results = append(results, er)
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"request_id": res.RequestID,
		"results":    results,
		"count":      len(results),
		"matched":    res.Matched,
		"truncated":  res.Truncated,
	})
}
