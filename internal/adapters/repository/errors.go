package repository

import "errors"

// Sentinel kinds for project repository errors.
var (
	ErrInvalidFilter  = errors.New("invalid project filter")
	ErrInvalidCatalog = errors.New("invalid project catalog")
	ErrQuery          = errors.New("project query failed")
)
