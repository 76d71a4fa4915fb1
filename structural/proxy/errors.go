package proxy

import "errors"

var (
	ErrNotFound     = errors.New("content not found")
	ErrEmptyPath    = errors.New("content path is empty")
	ErrInvalidTTL   = errors.New("invalid cache ttl")
	ErrInvalidLimit = errors.New("cache capacity must be positive")
)
