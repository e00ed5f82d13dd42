package database

import "errors"

// Failure values shared by all repositories. Single-row reads report an
// absent record as a nil result instead; these errors cover writes,
// filtered listings and scalar lookups.
var (
	ErrNotFound         = errors.New("record not found")
	ErrNicknameTaken    = errors.New("nickname already taken")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrConnectionClosed = errors.New("connection already closed")
)
