package container

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// AudioTrack describes one audio stream multiplexed alongside the video.
// Sample decoding is out of scope; only the packet envelope matters
// here.
type AudioTrack struct {
	SampleRate uint16
	Flags      uint16
}

// FrameRecord is one entry of the frame index: an absolute byte
// offset, a derived size, and the keyframe flag carried in the offset's
// low bit.
type FrameRecord struct {
	Offset   uint32 // even; keyframe bit already masked off
	Size     uint32 // next.Offset - this.Offset, or EOF for the last frame
	Keyframe bool
}

// Header holds everything the file's fixed header and frame index carry.
type Header struct {
	FourCC           uint32
	FrameCount       int
	LargestFrameSize uint32
	Width            int
	Height           int
	FPSNum           uint32
	FPSDen           uint32
	VideoFlags       uint32
	AudioTracks      []AudioTrack
	Frames           []FrameRecord
}

// HasAlpha reports whether bit 20 of the video-flags word is set.
func (h *Header) HasAlpha() bool { return h.VideoFlags&AlphaFlag != 0 }

// SwapPlanes reports whether chroma planes iterate V before U: true for
// BIKh and BIKi.
func (h *Header) SwapPlanes() bool {
	return h.FourCC == FourCCBIKh || h.FourCC == FourCCBIKi
}

// IsBIKi reports whether the container is the BIKi variant, which skips
// the Colors bundle's sign fold and carries extra per-frame alignment
// padding around the alpha plane.
func (h *Header) IsBIKi() bool { return h.FourCC == FourCCBIKi }

// Parse reads a complete Bink header and frame index from data. data must
// hold the entire file; frame payloads are sliced out of it directly by
// the caller using the returned FrameRecords, so a per-frame seek becomes
// a slice operation over the in-memory file.
func Parse(data []byte) (*Header, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: file shorter than FourCC", ErrTruncated)
	}

	fourCC := ReadLE32(data[0:4])
	if !IsKnownFourCC(fourCC) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFourCC, FourCCString(fourCC))
	}

	if len(data) < 4+HeaderSize {
		return nil, fmt.Errorf("%w: header", ErrTruncated)
	}

	h := &Header{FourCC: fourCC}
	pos := 4

	// fileSize+8; only used as a sanity bound, not retained.
	fileSizePlus8 := ReadLE32(data[pos:])
	pos += 4

	h.FrameCount = int(ReadLE32(data[pos:]))
	pos += 4

	h.LargestFrameSize = ReadLE32(data[pos:])
	pos += 4

	if fileSizePlus8 >= 8 {
		fileSize := uint64(fileSizePlus8) - 8
		if uint64(h.LargestFrameSize) > fileSize {
			return nil, fmt.Errorf("%w: %d > %d", ErrFrameTooLarge, h.LargestFrameSize, fileSize)
		}
	}

	pos += 4 // skip 4 reserved bytes

	h.Width = int(ReadLE32(data[pos:]))
	pos += 4
	h.Height = int(ReadLE32(data[pos:]))
	pos += 4

	h.FPSNum = ReadLE32(data[pos:])
	pos += 4
	h.FPSDen = ReadLE32(data[pos:])
	pos += 4
	if h.FPSNum == 0 || h.FPSDen == 0 {
		return nil, ErrInvalidFPS
	}

	h.VideoFlags = ReadLE32(data[pos:])
	pos += 4

	audioCount := int(ReadLE32(data[pos:]))
	pos += 4

	if audioCount > 0 {
		if len(data) < pos+4*audioCount {
			return nil, fmt.Errorf("%w: audio sample-count table", ErrTruncated)
		}
		pos += 4 * audioCount // per-track sample counts, unused here

		if len(data) < pos+4*audioCount {
			return nil, fmt.Errorf("%w: audio track descriptors", ErrTruncated)
		}
		h.AudioTracks = make([]AudioTrack, audioCount)
		for i := 0; i < audioCount; i++ {
			h.AudioTracks[i] = AudioTrack{
				SampleRate: ReadLE16(data[pos:]),
				Flags:      ReadLE16(data[pos+2:]),
			}
			pos += 4
		}

		if len(data) < pos+4*audioCount {
			return nil, fmt.Errorf("%w: audio flags table", ErrTruncated)
		}
		pos += 4 * audioCount // duplicated per-track word, unused here
	}

	if len(data) < pos+4*h.FrameCount {
		return nil, fmt.Errorf("%w: frame index", ErrTruncated)
	}

	rawOffsets := make([]uint32, h.FrameCount)
	for i := range rawOffsets {
		rawOffsets[i] = ReadLE32(data[pos:])
		pos += 4
	}

	maskedOffsets := make([]uint32, h.FrameCount)
	for i := 0; i < h.FrameCount; i++ {
		maskedOffsets[i] = rawOffsets[i] &^ 1
	}
	// Offsets must be strictly increasing once the keyframe bit is masked
	// off. IsSortedFunc only treats a pair as out of order when the
	// comparator is negative, so equal offsets have to compare as -1 too
	// or duplicates would slip through.
	if !slices.IsSortedFunc(maskedOffsets, func(a, b uint32) int {
		if a > b {
			return 1
		}
		return -1
	}) {
		return nil, ErrBadFrameOffset
	}

	h.Frames = make([]FrameRecord, h.FrameCount)
	for i := 0; i < h.FrameCount; i++ {
		offset := rawOffsets[i] &^ 1
		keyframe := rawOffsets[i]&1 != 0

		var size uint32
		if i+1 < len(rawOffsets) {
			next := rawOffsets[i+1] &^ 1
			size = next - offset
		} else {
			size = uint32(len(data)) - offset
		}

		h.Frames[i] = FrameRecord{Offset: offset, Size: size, Keyframe: keyframe}
	}

	return h, nil
}

// FramePayload returns the raw bytes of frame i, sliced out of the
// original file buffer data passed to Parse.
func (h *Header) FramePayload(data []byte, i int) ([]byte, error) {
	if i < 0 || i >= len(h.Frames) {
		return nil, fmt.Errorf("%w: %d", ErrFrameIndex, i)
	}
	f := h.Frames[i]
	end := uint64(f.Offset) + uint64(f.Size)
	if end > uint64(len(data)) {
		return nil, fmt.Errorf("%w: frame %d", ErrTruncated, i)
	}
	return data[f.Offset:end], nil
}

// FourCCString returns a human-readable string for a FourCC value.
func FourCCString(fourcc uint32) string {
	b := [4]byte{byte(fourcc), byte(fourcc >> 8), byte(fourcc >> 16), byte(fourcc >> 24)}
	return string(b[:])
}
