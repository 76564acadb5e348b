package filter

import "errors"

// Sentinel kinds for filter errors.
var (
	ErrInvalidThreshold = errors.New("invalid score threshold")
)
