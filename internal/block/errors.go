package block

import "errors"

var (
	ErrRunOutOfBounds   = errors.New("block: run went out of bounds")
	ErrCopyOutOfBounds  = errors.New("block: motion-compensated copy out of bounds")
	ErrNoPreviousFrame  = errors.New("block: no previous frame available for prediction")
	ErrInvalidBlockType = errors.New("block: invalid block type")
)
