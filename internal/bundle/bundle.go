// Package bundle implements Bink's per-plane bundle store: nine typed
// scratch buffers that decouple "how many values of this kind does this
// row need" (driven by a per-bundle Huffman-coded run) from
// "what block consumes the next one" (driven by the block dispatcher in
// package block).
//
// Each bundle has two cursors into the same backing buffer: curDec, where
// the next decoded value is produced, and curPtr, where the next block
// consumes a value. A bundle only produces a fresh run of values once the
// consumer has caught up to the last run it produced; this file's
// ReadCount implements that throttle.
package bundle

import (
	"encoding/binary"

	"github.com/eosengine/bink/internal/bitio"
	"github.com/eosengine/bink/internal/huffman"
)

// Source identifies one of the nine bundle kinds. The relative order of
// the constants is load-bearing: Get branches on comparisons against
// XOff and Run, mirroring the source layout's
// implicit value-width table.
type Source int

const (
	BlockTypes Source = iota
	SubBlockTypes
	Colors
	Pattern
	XOff
	YOff
	IntraDC
	InterDC
	Run

	numSources
)

// NumSources is the number of bundle kinds a Store holds.
const NumSources = int(numSources)

// Bundle is one typed scratch buffer and its producer/consumer cursors.
type Bundle struct {
	data []byte

	// curDec is the producer (decode) cursor; -1 marks the bundle as
	// exhausted for the current row group, standing in for the original
	// decoder's null "no more to decode" pointer.
	curDec int
	curPtr int // consumer (block-read) cursor

	countLength int
	huff        huffman.Selector
}

// Store holds all nine bundles for one plane's worth of block-row
// decoding, plus the auxiliary per-pixel color Huffman state.
type Store struct {
	bundles [numSources]Bundle

	colHighHuffman [16]huffman.Selector
	colLastVal     byte
}

// NewStore allocates a Store sized for a frame of the given pixel
// dimensions. Every bundle gets the same capacity: blocks*64 bytes, where
// blocks is the number of 8x8 luma blocks in the frame. That is large
// enough for any plane's bundle traffic, chroma included, because chroma
// planes have fewer, not more, blocks than luma.
func NewStore(width, height int) *Store {
	bw := (width + 7) >> 3
	bh := (height + 7) >> 3
	blocks := bw * bh

	s := &Store{}
	for i := range s.bundles {
		s.bundles[i].data = make([]byte, blocks*64)
	}
	return s
}

// log2Plus1 returns floor(log2(v)) + 1 for v > 0, matching InitLengths'
// countLength derivation.
func log2Plus1(v uint32) int {
	n := 0
	for v > 0 {
		v >>= 1
		n++
	}
	return n
}

// InitLengths recomputes each bundle's countLength for a plane of the
// given (possibly chroma-halved) width and block width bw.
func (s *Store) InitLengths(width, bw int) {
	s.bundles[BlockTypes].countLength = log2Plus1(uint32(width>>3) + 511)
	s.bundles[SubBlockTypes].countLength = log2Plus1(uint32(width>>4) + 511)
	s.bundles[Colors].countLength = log2Plus1(uint32(width>>3)*64 + 511)
	s.bundles[IntraDC].countLength = log2Plus1(uint32(width>>3) + 511)
	s.bundles[InterDC].countLength = log2Plus1(uint32(width>>3) + 511)
	s.bundles[XOff].countLength = log2Plus1(uint32(width>>3) + 511)
	s.bundles[YOff].countLength = log2Plus1(uint32(width>>3) + 511)
	s.bundles[Pattern].countLength = log2Plus1(uint32(bw<<3) + 511)
	s.bundles[Run].countLength = log2Plus1(uint32(width>>3)*48 + 511)
}

// ReadBundle reads (or defaults) the bundle's Huffman selector and resets
// both cursors to the start of its scratch buffer. Colors also
// refreshes its sixteen high-nibble selectors and resets colLastVal.
func (s *Store) ReadBundle(br *bitio.Reader, src Source) {
	if src == Colors {
		for i := range s.colHighHuffman {
			s.colHighHuffman[i] = huffman.ReadSelector(br)
		}
		s.colLastVal = 0
	}

	b := &s.bundles[src]
	if src != IntraDC && src != InterDC {
		b.huff = huffman.ReadSelector(br)
	}

	b.curDec = 0
	b.curPtr = 0
}

// ReadCount reads and returns how many values the next producer call
// should decode, or 0 if the consumer hasn't yet drained the bundle's
// last run. Producing stalls whenever curDec > curPtr.
func (s *Store) ReadCount(br *bitio.Reader, src Source) int {
	b := &s.bundles[src]
	if b.curDec < 0 || b.curDec > b.curPtr {
		return 0
	}

	n := int(br.GetBits(b.countLength))
	if n == 0 {
		b.curDec = -1
	}
	return n
}

// Get consumes and returns the next value from src, advancing its
// consumer cursor by the source's natural value width: one unsigned byte
// for BlockTypes, SubBlockTypes, Colors, Pattern and Run; one signed
// byte for XOff and YOff; one little-endian signed int16 for IntraDC and
// InterDC.
func (s *Store) Get(src Source) int32 {
	b := &s.bundles[src]

	switch {
	case src < XOff || src == Run:
		v := b.data[b.curPtr]
		b.curPtr++
		return int32(v)
	case src == XOff || src == YOff:
		v := int8(b.data[b.curPtr])
		b.curPtr++
		return int32(v)
	default: // IntraDC, InterDC
		v := int16(binary.LittleEndian.Uint16(b.data[b.curPtr:]))
		b.curPtr += 2
		return int32(v)
	}
}

// SeedForTest loads values directly into a bundle's scratch buffer and
// marks them available for consumption, bypassing the Huffman-coded
// producer path. It exists for package block's tests, which exercise the
// block dispatcher's consumption order without reconstructing a full
// bitstream for every bundle.
func (s *Store) SeedForTest(src Source, values []byte) {
	b := &s.bundles[src]
	copy(b.data, values)
	b.curPtr = 0
	b.curDec = len(values)
}

// CurPtrForTest returns how many values have been consumed from src so
// far, for assertions in package block's tests.
func (s *Store) CurPtrForTest(src Source) int {
	return s.bundles[src].curPtr
}
