package profiles

import "errors"

// Sentinel kinds for profile provider errors.
var (
	ErrNoProfile = errors.New("no freelancer profile configured")
	ErrLoad      = errors.New("load freelancer profile failed")
)
