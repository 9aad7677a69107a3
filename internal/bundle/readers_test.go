package bundle

import (
	"testing"

	"github.com/eosengine/bink/internal/bitio"
	"github.com/eosengine/bink/internal/huffman"
)

// bitWriter packs bits in the exact order bitio.Reader consumes them:
// each putBits call appends its n bits LSB-first, and GetBit/GetBits
// drain the buffer in append order.
type bitWriter struct {
	bits []int
}

func (w *bitWriter) putBits(v uint32, n int) {
	for i := 0; i < n; i++ {
		w.bits = append(w.bits, int((v>>uint(i))&1))
	}
}

func (w *bitWriter) putBit(b int) {
	w.bits = append(w.bits, b)
}

// putTree0Symbol pushes the bits that StaticTrees[0].GetSymbol (the
// all-length-4 identity tree) will decode as v. Codewords are
// transmitted least-significant-bit first, so for tree 0 the codeword
// is the raw nibble itself.
func (w *bitWriter) putTree0Symbol(v uint8) {
	w.putBits(uint32(v), 4)
}

func (w *bitWriter) reader() *bitio.Reader {
	nBytes := (len(w.bits) + 31) / 32 * 4
	if nBytes == 0 {
		nBytes = 4
	}
	buf := make([]byte, nBytes)
	for i, b := range w.bits {
		if b == 0 {
			continue
		}
		wordStart := (i / 32) * 4
		bitInWord := i % 32
		byteIdx := wordStart + bitInWord/8
		bitIdx := uint(bitInWord % 8)
		buf[byteIdx] |= 1 << bitIdx
	}
	return bitio.NewReader(buf)
}

// identitySelector returns a Selector over tree 0, whose permutation is
// the identity — GetSymbol then returns exactly what putTree0Symbol
// encoded.
func identitySelector() huffman.Selector {
	var sel huffman.Selector
	for i := range sel.Symbols {
		sel.Symbols[i] = uint8(i)
	}
	return sel
}

func TestReadRuns_RLEShortcut(t *testing.T) {
	s := NewStore(64, 64)
	s.InitLengths(64, 8)

	w := &bitWriter{}
	w.putBits(4, s.bundles[Run].countLength) // count = 4
	w.putBit(1)                              // RLE shortcut flag
	w.putBits(9, 4)                          // fill value

	b := &s.bundles[Run]
	b.curDec, b.curPtr = 0, 0

	if err := s.ReadRuns(w.reader()); err != nil {
		t.Fatalf("ReadRuns: %v", err)
	}
	for i := 0; i < 4; i++ {
		if b.data[i] != 9 {
			t.Errorf("data[%d] = %d, want 9", i, b.data[i])
		}
	}
	if b.curDec != 4 {
		t.Errorf("curDec = %d, want 4", b.curDec)
	}
}

func TestReadBlockTypes_RLEEscape(t *testing.T) {
	s := NewStore(64, 64)
	s.InitLengths(64, 8)
	s.bundles[BlockTypes].huff = identitySelector()

	w := &bitWriter{}
	w.putBits(5, s.bundles[BlockTypes].countLength) // count = 5
	w.putBit(0)                                     // not the RLE-fill shortcut
	w.putTree0Symbol(3)  // literal symbol 3 (< 12)
	w.putTree0Symbol(12) // escape symbol 12 -> run of 4, fills with 3

	b := &s.bundles[BlockTypes]
	b.curDec, b.curPtr = 0, 0

	if err := s.ReadBlockTypes(w.reader(), BlockTypes); err != nil {
		t.Fatalf("ReadBlockTypes: %v", err)
	}
	want := []byte{3, 3, 3, 3, 3}
	for i, wv := range want {
		if b.data[i] != wv {
			t.Errorf("data[%d] = %d, want %d", i, b.data[i], wv)
		}
	}
}

func TestReadDCS_FirstCoefficientAndGroup(t *testing.T) {
	s := NewStore(64, 64)
	s.InitLengths(64, 8)

	w := &bitWriter{}
	w.putBits(9, s.bundles[IntraDC].countLength) // length = 9 coefficients
	w.putBits(100, 11)                           // first coeff, no sign (hasSign=false)
	// remaining 8 coefficients in one group of 8, bSize=0 -> all equal to v
	w.putBits(0, 4)

	b := &s.bundles[IntraDC]
	b.curDec, b.curPtr = 0, 0

	if err := s.ReadDCS(w.reader(), IntraDC, 11, false); err != nil {
		t.Fatalf("ReadDCS: %v", err)
	}

	for i := 0; i < 9; i++ {
		v := int16(uint16(b.data[i*2]) | uint16(b.data[i*2+1])<<8)
		if v != 100 {
			t.Errorf("coeff[%d] = %d, want 100", i, v)
		}
	}
}
