package model

// Query carries the caller's search options. Nil budget bounds are unset.
type Query struct {
	Text      string   `json:"text,omitempty"`
	MinBudget *float64 `json:"min_budget,omitempty"`
	MaxBudget *float64 `json:"max_budget,omitempty"`
	MinScore  int      `json:"min_score"`
}

// Float returns a pointer to v, handy for populating optional budget bounds.
func Float(v float64) *float64 {
	return &v
}
