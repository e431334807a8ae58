package matcher

import "errors"

var (
	ErrNoMissingStrokes = errors.New("must have at least one missing stroke")
	ErrInvalidStroke    = errors.New("stroke must have at least two points")
	ErrBadMissing       = errors.New("missing strokes must be ascending and non-negative")
)
