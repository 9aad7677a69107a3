package huffman

import (
	"testing"

	"github.com/eosengine/bink/internal/bitio"
)

func TestReadSelector_Identity(t *testing.T) {
	// index=0 (4 bits), no further bits consumed for the permutation.
	br := bitio.NewReader([]byte{0x00, 0x00})
	sel := ReadSelector(br)

	if sel.Index != 0 {
		t.Fatalf("Index = %d, want 0", sel.Index)
	}
	for i, s := range sel.Symbols {
		if int(s) != i {
			t.Errorf("Symbols[%d] = %d, want %d", i, s, i)
		}
	}
}

func TestReadSelector_ExplicitList(t *testing.T) {
	// index=3, flag bit=1 (explicit list), length=0 (one symbol: 7),
	// remaining symbols filled ascending skipping 7.
	br := newBitWriter()
	br.putBits(3, 4)  // index
	br.putBits(1, 1)  // explicit-list flag
	br.putBits(0, 3)  // length = 0 -> one symbol follows
	br.putBits(7, 4)  // symbol 7 goes first

	r := br.reader()
	sel := ReadSelector(r)

	if sel.Index != 3 {
		t.Fatalf("Index = %d, want 3", sel.Index)
	}
	if sel.Symbols[0] != 7 {
		t.Fatalf("Symbols[0] = %d, want 7", sel.Symbols[0])
	}
	want := 0
	for i := 1; i < NumSymbols; i++ {
		if want == 7 {
			want++
		}
		if sel.Symbols[i] != uint8(want) {
			t.Errorf("Symbols[%d] = %d, want %d", i, sel.Symbols[i], want)
		}
		want++
	}
}

func TestMergeHuffmanSymbols_AllZeroLeavesSrcOrder(t *testing.T) {
	src := []uint8{0, 1, 2, 3, 4, 5, 6, 7}
	dst := make([]uint8, 8)

	// 4 flag bits, all zero: left half (0..3) drained first, then the
	// right half (4..7) is appended verbatim.
	br := newBitWriter()
	for i := 0; i < 4; i++ {
		br.putBits(0, 1)
	}
	r := br.reader()

	mergeHuffmanSymbols(r, dst, src, 4)

	want := []uint8{0, 1, 2, 3, 4, 5, 6, 7}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestMergeHuffmanSymbols_AllOneSwapsHalves(t *testing.T) {
	src := []uint8{0, 1, 2, 3, 4, 5, 6, 7}
	dst := make([]uint8, 8)

	br := newBitWriter()
	for i := 0; i < 4; i++ {
		br.putBits(1, 1)
	}
	r := br.reader()

	mergeHuffmanSymbols(r, dst, src, 4)

	want := []uint8{4, 5, 6, 7, 0, 1, 2, 3}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

// bitWriter is a tiny LSB-first-per-32-bit-word test helper that packs
// bits the way Reader expects to read them back: each
// GetBits(n) call consumes the next n bits starting from bit 0 of the
// stream, packed low-to-high within each 32-bit little-endian word.
type bitWriter struct {
	bits []int
}

func newBitWriter() *bitWriter { return &bitWriter{} }

func (w *bitWriter) putBits(v uint32, n int) {
	for i := 0; i < n; i++ {
		w.bits = append(w.bits, int((v>>uint(i))&1))
	}
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
