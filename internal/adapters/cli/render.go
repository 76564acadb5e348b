// Package cli renders match results for a terminal.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/okian/gigmatch/internal/domain/model"
	"github.com/okian/gigmatch/internal/domain/recommend"
	"github.com/okian/gigmatch/internal/domain/scoring"
)

// Explainer returns the score breakdown for one listing.
type Explainer func(model.ProjectListing) (scoring.Breakdown, error)

// Option configures a Renderer.
type Option func(*Renderer)

// WithExplainer adds a score breakdown line to every card.
func WithExplainer(fn Explainer) Option {
	return func(r *Renderer) {
		r.explain = fn
	}
}

// Renderer writes styled result cards. Colour is dropped automatically when
// the writer is not a terminal.
type Renderer struct {
	out     io.Writer
	explain Explainer
	styles  styles
}

// New creates a Renderer writing to w.
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{out: w}
	for _, opt := range opts {
		opt(r)
	}
	r.styles = newStyles(lipgloss.NewRenderer(w), DefaultTheme())
	return r
}

// Results renders results in the order given; it never re-sorts.
func (r *Renderer) Results(results []model.ScoredListing) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(r.out, r.styles.muted.Render("No matching projects."))
		return err
	}
	noun := "projects"
	if len(results) == 1 {
		noun = "project"
	}
	if _, err := fmt.Fprintln(r.out, r.styles.title.Render(fmt.Sprintf("%d %s matched", len(results), noun))); err != nil {
		return err
	}
	for i, res := range results {
		card, err := r.card(i+1, res)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(r.out, card); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) card(pos int, res model.ScoredListing) (string, error) {
	tierStyle, ok := r.styles.tiers[string(res.RecommendationTier)]
	if !ok {
		tierStyle = r.styles.score
	}
	head := fmt.Sprintf("%d. %s %s  %s",
		pos,
		r.styles.score.Render("["+strconv.Itoa(res.MatchScore)+"]"),
		res.Title,
		tierStyle.Render(string(res.RecommendationTier)),
	)

	lines := []string{head, r.styles.muted.Render(details(res.ProjectListing))}
	if res.RecommendationMessage != "" {
		lines = append(lines, res.RecommendationMessage)
	}
	if r.explain != nil {
		b, err := r.explain(res.ProjectListing)
		if err != nil {
			return "", fmt.Errorf("explain %q: %w", res.ID, err)
		}
		lines = append(lines, r.styles.muted.Render(breakdown(b)))
	}
	return r.styles.card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)), nil
}

func details(l model.ProjectListing) string {
	parts := []string{"id " + l.ID}
	if len(l.RequiredSkills) > 0 {
		parts = append(parts, strings.Join(l.RequiredSkills, ", "))
	}
	parts = append(parts, fmt.Sprintf("$%s-%s", money(l.BudgetMin), money(l.BudgetMax)))
	if l.DeadlineLabel != "" {
		parts = append(parts, l.DeadlineLabel)
	}
	if l.Client.Name != "" {
		parts = append(parts, fmt.Sprintf("%s (%.1f)", l.Client.Name, l.Client.Rating))
	}
	if l.Client.Location != "" {
		parts = append(parts, l.Client.Location)
	}
	return strings.Join(parts, " · ")
}

func breakdown(b scoring.Breakdown) string {
	s := fmt.Sprintf("skill %.1f · experience %.1f · track record %.1f · %d/%d skills",
		b.Skill, b.Experience, b.TrackRecord, b.MatchedSkills, b.RequiredSkills)
	if len(b.Domains) > 0 {
		s += " · domains: " + strings.Join(b.Domains, ", ")
	}
	return s
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Recommendation renders a single score to tier lookup.
func (r *Renderer) Recommendation(score int, rec recommend.Recommendation) error {
	tierStyle, ok := r.styles.tiers[string(rec.Tier)]
	if !ok {
		tierStyle = r.styles.score
	}
	_, err := fmt.Fprintf(r.out, "%s %s\n%s\n",
		r.styles.score.Render(strconv.Itoa(score)),
		tierStyle.Render(string(rec.Tier)),
		rec.Message,
	)
	return err
}

// Error renders err in the error colour.
func (r *Renderer) Error(err error) {
	_, _ = fmt.Fprintln(r.out, r.styles.errMsg.Render("error: "+err.Error()))
}
