package assignment

import "errors"

var (
	ErrInvalidPoint      = errors.New("invalid point")
	ErrNoCoverage        = errors.New("no service area covers the point")
	ErrNoEligibleDrivers = errors.New("no eligible drivers in the area")
)
