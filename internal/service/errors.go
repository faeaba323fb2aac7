package service

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrAmbiguousID  = errors.New("ambiguous id")
	ErrInvalidInput = errors.New("invalid input")
)
