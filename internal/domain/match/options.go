package match

import "github.com/okian/gigmatch/internal/domain/scoring"

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithScoringOptions builds the engine calculator from scoring options.
func WithScoringOptions(opts ...scoring.Option) Option {
	return func(e *Engine) {
		e.calc = scoring.New(opts...)
	}
}
