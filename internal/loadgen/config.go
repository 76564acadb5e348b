// Package loadgen drives concurrent searches against a running gigmatch
// server and checks every response for ordering and threshold violations.
package loadgen

import "time"

// Config holds configuration for a load run.
type Config struct {
	BaseURL    string        // Base URL of the service
	Searches   int           // Number of searches to submit
	Workers    int           // Number of concurrent workers
	Timeout    time.Duration // HTTP request timeout
	Rate       float64       // Searches per second across all workers; 0 is unlimited
	MinScore   int           // Threshold sent with every search
	Text       string        // Optional text filter sent with every search
	OutputFile string        // Optional JSON dump of generated profiles
	Verbose    bool          // Log every violation as it is found
}

// Profile is a generated freelancer profile tagged with a unique id.
type Profile struct {
	ID                string   `json:"id"`
	Skills            []string `json:"skills"`
	ExperienceTags    []string `json:"experience_tags"`
	CompletedProjects int      `json:"completed_projects"`
	Rating            float64  `json:"rating"`
}

// Result is one ranked listing as returned by POST /search.
type Result struct {
	ID                 string `json:"id"`
	MatchScore         int    `json:"match_score"`
	RecommendationTier string `json:"recommendation_tier"`
}

// SearchResponse is the body of a successful POST /search.
type SearchResponse struct {
	RequestID string   `json:"request_id"`
	Results   []Result `json:"results"`
	Count     int      `json:"count"`
}

// Stats holds run statistics.
type Stats struct {
	ProfilesGenerated int
	SearchesSubmitted int
	SearchesOK        int
	SearchesFailed    int
	ResultsChecked    int
	Violations        int
	StartTime         time.Time
	EndTime           time.Time
	Duration          time.Duration
}
