package health

import "errors"

// ErrCheckTimeout is reported when a check outlives the configured timeout.
var ErrCheckTimeout = errors.New("health: check timeout")
