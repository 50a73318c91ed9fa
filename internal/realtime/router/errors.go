package router

import "errors"

var (
	ErrInvalidTarget  = errors.New("invalid delivery target")
	ErrMessageDropped = errors.New("message dropped, offline queue unavailable")
)
