package bink

import "errors"

// Sentinel errors surfaced by Open and ProcessData. Container errors
// are fatal at construction; packet-size and range violations are fatal
// at frame decode. None are retried; a fatal error halts the decoder.
var (
	ErrNoSuchFrame       = errors.New("bink: frame index out of range")
	ErrAudioPacketTooBig = errors.New("bink: audio packet exceeds remaining frame size")
	ErrAlreadyFinished   = errors.New("bink: stream already finished")
)
