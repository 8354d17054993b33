package domain

import "errors"

// ErrKeyNotFound is returned when a storage key does not exist.
var ErrKeyNotFound = errors.New("key not found")

// ErrGroupNotFound is returned when a group id cannot be found in the store.
var ErrGroupNotFound = errors.New("animation group not found")

// ErrUnsupported is returned for declared but unimplemented operations
// (currently only animation export).
var ErrUnsupported = errors.New("operation not supported")

// ErrUnknownMessage is returned when the host receives a message type it
// has no handler for.
var ErrUnknownMessage = errors.New("unknown message type")
