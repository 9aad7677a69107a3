package bundle

import "errors"

// Sentinel errors returned by the bundle readers, wrapped with
// fmt.Errorf("...: %w", ...) by callers that have plane/row context to add.
var (
	ErrRunOutOfBounds = errors.New("bundle: run value went out of bounds")
	ErrTooManyValues  = errors.New("bundle: producer would overflow scratch buffer")
	ErrDCOutOfBounds  = errors.New("bundle: DC value went out of range")
	ErrUnknownSource  = errors.New("bundle: unknown source")
)
