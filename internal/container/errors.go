package container

import "errors"

// Sentinel errors returned by header and frame parsing. Container errors
// are fatal at construction; packet-size violations are fatal at frame
// decode.
var (
	ErrUnknownFourCC  = errors.New("container: unknown FourCC")
	ErrInvalidFPS     = errors.New("container: zero frame-rate numerator or denominator")
	ErrFrameTooLarge  = errors.New("container: largest frame size exceeds file size")
	ErrTruncated      = errors.New("container: truncated header or index")
	ErrBadFrameOffset = errors.New("container: frame offsets not strictly increasing")
	ErrPacketOverrun  = errors.New("container: audio packet exceeds remaining frame size")
	ErrFrameIndex     = errors.New("container: frame index out of range")
)
