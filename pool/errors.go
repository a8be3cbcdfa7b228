package pool

import "errors"

// ErrInvalidConfig is returned by Dynapool when Config fails validation
// before any work begins.
var ErrInvalidConfig = errors.New("pool: invalid configuration")

// ErrAllocationFailed is returned when the scratch buffers required for a
// solve could not be sized within the configured bounds. It stands in for
// the original's fatal "allocation failure during init" path; in Go there
// is no real malloc to fail, so this is raised instead when the active
// orders outnumber MaxThreadMem*NumbThreads, i.e. the workers' scratch
// buffers together could not hold even one branch per order.
var ErrAllocationFailed = errors.New("pool: allocation failed during init")
