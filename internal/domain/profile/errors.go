package profile

import "errors"

// Sentinel kinds for profile validation errors.
var (
	ErrInvalidProfile = errors.New("invalid freelancer profile")
)
