package loadgen

import (
	"context"
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"

	"github.com/okian/gigmatch/pkg/logger"
)

var (
	skillPool = []string{
		"React", "TypeScript", "Go", "Python", "PostgreSQL", "Kubernetes", "CSS",
		"Node.js", "GraphQL", "Figma", "Swift", "Kotlin", "Terraform", "Charts",
	}
	tagPool = []string{"E-commerce", "Fintech", "Healthcare", "Education", "Media"}
)

const (
	maxSkills      = 6
	maxTags        = 2
	maxCompleted   = 60
	ratingSteps    = 51 // 0.0 .. 5.0 in 0.1 steps
	ratingStepSize = 0.1
)

// randInt returns a uniform int in [0, n).
func randInt(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}

// pick returns up to k distinct entries of pool in random order.
func pick(pool []string, k int) []string {
	idx := make([]int, len(pool))
	for i := range idx {
		idx[i] = i
	}
	if k > len(pool) {
		k = len(pool)
	}
	out := make([]string, 0, k)
	for i := 0; i < k; i++ {
		j := i + randInt(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		out = append(out, pool[idx[i]])
	}
	return out
}

// generateProfiles creates n random profiles, each with a unique id.
func generateProfiles(ctx context.Context, n int, stats *Stats) []Profile {
	profiles := make([]Profile, n)
	for i := range profiles {
		profiles[i] = Profile{
			ID:                uuid.NewString(),
			Skills:            pick(skillPool, 1+randInt(maxSkills)),
			ExperienceTags:    pick(tagPool, randInt(maxTags+1)),
			CompletedProjects: randInt(maxCompleted + 1),
			Rating:            float64(randInt(ratingSteps)) * ratingStepSize,
		}
	}
	stats.ProfilesGenerated = n
	logger.Get().Info(ctx, "generated profiles", logger.Int("count", n))
	return profiles
}
