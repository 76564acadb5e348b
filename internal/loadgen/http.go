package loadgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/okian/gigmatch/pkg/logger"
)

// HTTPClient wraps http.Client with a per-request timeout.
type HTTPClient struct {
	client *http.Client
}

func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{client: &http.Client{Timeout: timeout}}
}

// Get performs a GET request.
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post performs a POST request with a JSON body.
func (c *HTTPClient) Post(ctx context.Context, url string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

type searchBody struct {
	Profile profileBody `json:"profile"`
	Query   searchQuery `json:"query"`
}

// profileBody is the wire form of a Profile. The id stays on this side: the
// server rejects unknown fields.
type profileBody struct {
	Skills            []string `json:"skills"`
	ExperienceTags    []string `json:"experience_tags"`
	CompletedProjects int      `json:"completed_projects"`
	Rating            float64  `json:"rating"`
}

func (p Profile) body() profileBody {
	return profileBody{
		Skills:            p.Skills,
		ExperienceTags:    p.ExperienceTags,
		CompletedProjects: p.CompletedProjects,
		Rating:            p.Rating,
	}
}

type searchQuery struct {
	Text     string `json:"text,omitempty"`
	MinScore int    `json:"min_score"`
}

// submitSearches posts one search per profile (round-robin until cfg.Searches
// are sent) and verifies each response.
func submitSearches(ctx context.Context, cfg *Config, profiles []Profile, stats *Stats) {
	log := logger.Get()
	client := newHTTPClient(cfg.Timeout)
	url := cfg.BaseURL + "/search"

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.Rate > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Rate), 1)
	}

	var submitted, ok, failed, checked, violations atomic.Int64

	jobs := make(chan Profile, cfg.Workers*2)
	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				if err := limiter.Wait(ctx); err != nil {
					return
				}
				submitted.Add(1)
				resp, err := searchOnce(ctx, client, url, searchBody{
					Profile: p.body(),
					Query:   searchQuery{Text: cfg.Text, MinScore: cfg.MinScore},
				})
				if err != nil {
					failed.Add(1)
					if cfg.Verbose {
						log.Warn(ctx, "search failed", logger.String("profile_id", p.ID), logger.Error(err))
					}
					continue
				}
				ok.Add(1)
				checked.Add(int64(len(resp.Results)))
				if errs := Verify(resp, cfg.MinScore); len(errs) > 0 {
					violations.Add(int64(len(errs)))
					for _, e := range errs {
						log.Error(ctx, "response violates ranking contract",
							logger.String("profile_id", p.ID),
							logger.String("request_id", resp.RequestID),
							logger.Error(e))
					}
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := 0; i < cfg.Searches; i++ {
			select {
			case <-ctx.Done():
				return
			case jobs <- profiles[i%len(profiles)]:
			}
		}
	}()
	wg.Wait()

	stats.SearchesSubmitted = int(submitted.Load())
	stats.SearchesOK = int(ok.Load())
	stats.SearchesFailed = int(failed.Load())
	stats.ResultsChecked = int(checked.Load())
	stats.Violations = int(violations.Load())
}

func searchOnce(ctx context.Context, client *HTTPClient, url string, body searchBody) (SearchResponse, error) {
	resp, err := client.Post(ctx, url, body)
	if err != nil {
		return SearchResponse{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return SearchResponse{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return SearchResponse{}, fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(raw))
	}
	var out SearchResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return SearchResponse{}, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}
