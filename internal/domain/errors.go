package domain

import "errors"

// ErrNotFound is returned by stores when a keyed row does not exist.
var ErrNotFound = errors.New("not found")
