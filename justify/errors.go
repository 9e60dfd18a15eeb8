package justify

import "errors"

// ErrInvalidWidth indicates a non-positive target line width. The width is a
// precondition: Justify fails before computing anything, with no partial
// output.
var ErrInvalidWidth = errors.New("justify: line width must be at least 1")
