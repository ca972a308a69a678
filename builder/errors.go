// File: errors.go
// Role: sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context using %w with the constructor name.

package builder

import "errors"

// ErrNilGraph indicates Apply was called with a nil target graph.
var ErrNilGraph = errors.New("builder: graph is nil")

// ErrConstructFailed indicates a constructor could not be applied
// (nil constructor, or a core mutation rejected the observation).
var ErrConstructFailed = errors.New("builder: construction failed")
