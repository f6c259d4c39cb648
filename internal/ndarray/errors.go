package ndarray

import "errors"

// Sentinel errors returned by constructors and Reshape. Callers match them
// with errors.Is; the wrapping message carries the offending values.
//
// Out-of-bounds indexing is not part of this taxonomy: At and Set treat a
// bad index as a programming error and panic.
var (
	// ErrShapeMismatch reports that a shape's element count does not
	// reconcile with the available data (FromSlice) or the array's current
	// length (Reshape).
	ErrShapeMismatch = errors.New("shape does not match element count")

	// ErrInvalidRange reports a progression whose start exceeds its end.
	ErrInvalidRange = errors.New("range start exceeds end")

	// ErrConversionFailure reports a progression value that cannot be
	// represented in the target element type.
	ErrConversionFailure = errors.New("value not representable in element type")
)
