package matcher

import "errors"

// ErrInvalidInput is returned when the inputs violate a structural
// precondition of matching, such as an empty target list.
var ErrInvalidInput = errors.New("invalid input")
