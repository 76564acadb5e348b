package metrics

import (
	"errors"
)

// Sentinel kinds for metrics errors.
var (
	ErrUnknownTier = errors.New("unknown recommendation tier")
)
