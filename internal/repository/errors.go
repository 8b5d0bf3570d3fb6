package repository

import "errors"

// ErrNotFound is returned by lookups when no record matches.
var ErrNotFound = errors.New("record not found")
