package repository

import "errors"

// ErrNotFound is returned when a document lookup by id matches nothing.
var ErrNotFound = errors.New("record not found")
