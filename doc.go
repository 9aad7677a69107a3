// Package bink implements the Bink video decoder core used by this
// partial reimplementation of BioWare's Aurora engine: the container
// demuxer, the bit-level bundle parser, the Huffman/RLE sub-decoders, and
// the per-block plane reconstruction dispatcher.
//
// DCT coefficient reconstruction and motion compensation are pluggable
// contracts (block.CodecKernel and block.CoeffReader); package
// internal/dsp supplies a default, runnable implementation, and callers
// may substitute their own by implementing the same interfaces.
//
// The decoder is single-threaded and cooperative: ProcessData decodes at
// most one frame per call (none if the next frame is not yet due) and
// returns; GotTime reports whether there
// is still spare time before the next frame is due, driven by an
// externally supplied Clock. There is no internal clock thread and no
// partial-frame resumption.
//
// Basic usage:
//
//	dec, err := bink.Open(data, bink.NewSystemClock())
//	for !dec.Finished() {
//		if dec.GotTime() {
//			continue // next frame not due yet; do other work
//		}
//		frame, err := dec.ProcessData()
//	}
package bink
