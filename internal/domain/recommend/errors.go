package recommend

import "errors"

// Sentinel kinds for recommendation errors.
var (
	ErrInvalidScore = errors.New("score outside [0,100]")
)
