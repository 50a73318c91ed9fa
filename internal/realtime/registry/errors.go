package registry

import "errors"

var (
	ErrTooManyConnections = errors.New("user reached the connection limit")
	ErrDuplicateConn      = errors.New("connection id already registered")
	ErrInvalidConn        = errors.New("invalid connection")
)
