package repositories

import "errors"

// ErrNotFound is wrapped by every repository implementation when a lookup
// matches no row, so callers can classify misses with errors.Is instead of
// inspecting messages.
var ErrNotFound = errors.New("record not found")
