package model

// Client describes the party that posted a listing.
type Client struct {
	Name     string  `json:"name" koanf:"name"`
	Rating   float64 `json:"rating" koanf:"rating" validate:"gte=0,lte=5"`
	Location string  `json:"location" koanf:"location"`
}

// ProjectListing is a read-only project posting from the repository.
type ProjectListing struct {
	ID             string   `json:"id" koanf:"id" validate:"required"`
	Title          string   `json:"title" koanf:"title"`
	Description    string   `json:"description" koanf:"description"`
	RequiredSkills []string `json:"required_skills" koanf:"required_skills"` // display order only
	BudgetMin      float64  `json:"budget_min" koanf:"budget_min" validate:"gte=0"`
	BudgetMax      float64  `json:"budget_max" koanf:"budget_max" validate:"gte=0,gtefield=BudgetMin"`
	DeadlineLabel  string   `json:"deadline_label" koanf:"deadline_label"` // free text, never parsed
	Client         Client   `json:"client" koanf:"client"`
}

// Tier is a discrete recommendation bucket derived from a match score.
type Tier string

// Recommendation tiers, best first.
const (
	TierPerfect Tier = "Perfect"
	TierGreat   Tier = "Great"
	TierGood    Tier = "Good"
	TierFair    Tier = "Fair"
)

// ScoredListing is a listing annotated with its compatibility score and
// recommendation. It only lives for the duration of one search.
type ScoredListing struct {
	ProjectListing
	MatchScore            int    `json:"match_score"`
	RecommendationTier    Tier   `json:"recommendation_tier"`
	RecommendationMessage string `json:"recommendation_message"`
}
