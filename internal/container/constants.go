// Package container parses the Bink container: the fixed header, the
// frame index, and the per-frame audio/video packet split.
//
// Everything after the FourCC is little-endian; the FourCC itself is the
// four raw bytes as they appear on disk, packed into a uint32 in on-disk
// byte order for comparison.
package container

import "encoding/binary"

// FourCC creates a FourCC value from four bytes in on-disk order.
func FourCC(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}

// Container FourCC values. Integers following the FourCC are
// little-endian throughout the header.
var (
	FourCCBIKf = FourCC('B', 'I', 'K', 'f')
	FourCCBIKg = FourCC('B', 'I', 'K', 'g')
	FourCCBIKh = FourCC('B', 'I', 'K', 'h')
	FourCCBIKi = FourCC('B', 'I', 'K', 'i')
)

// IsKnownFourCC reports whether id is one of the four supported container
// identifiers.
func IsKnownFourCC(id uint32) bool {
	switch id {
	case FourCCBIKf, FourCCBIKg, FourCCBIKh, FourCCBIKi:
		return true
	default:
		return false
	}
}

// AlphaFlag is bit 20 of the video-flags word.
const AlphaFlag uint32 = 0x00100000

// HeaderSize is the size in bytes of the fixed portion of the header, up
// to and including the audio-track count, not counting the FourCC.
const HeaderSize = 4 /*fileSize+8*/ + 4 /*frameCount*/ + 4 /*largestFrame*/ + 4 /*skip*/ +
	8 /*width,height*/ + 8 /*fps*/ + 4 /*videoFlags*/ + 4 /*audioTrackCount*/

// ReadLE32 reads a little-endian uint32 from data.
func ReadLE32(data []byte) uint32 { return binary.LittleEndian.Uint32(data) }

// ReadLE16 reads a little-endian uint16 from data.
func ReadLE16(data []byte) uint16 { return binary.LittleEndian.Uint16(data) }
