package geomatcher

import "errors"

var (
	ErrInvalidPoint    = errors.New("invalid point")
	ErrInvalidDistance = errors.New("invalid distance")
)
