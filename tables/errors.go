package tables

import "errors"

// ErrResourceMissing means a sidecar byte blob a loader requires to build
// a usable table was empty or absent. Fatal to whatever resource set was
// being assembled.
var ErrResourceMissing = errors.New("tables: required resource data is missing")
