// Package huffman implements the canonical Huffman decoder used by Bink's
// bundle parser, plus the bundle-level Huffman selector layered on top of
// it.
//
// Codes are derived purely from a per-symbol length array (that is what
// "canonical" means), bucketed by length, and decoded by reading one bit
// at a time and probing the bucket for that length. Decoders for large
// alphabets usually build a root table plus second-level sub-tables to
// keep lookups O(1); Bink's alphabet is always 16 symbols, so a single
// length bucket per tree is enough and the second level is unnecessary.
package huffman

import (
	"golang.org/x/exp/slices"

	"github.com/eosengine/bink/internal/bitio"
)

// NumSymbols is the fixed alphabet size of every Bink Huffman tree.
const NumSymbols = 16

// MaxCodeLength bounds the canonical code length of any tree; no static
// table defined in this package exceeds it.
const MaxCodeLength = 15

type codeSym struct {
	code   uint32
	symbol uint8
}

// Tree is a canonical Huffman decode tree over a fixed 16-symbol alphabet.
type Tree struct {
	maxLength int
	byLength  [MaxCodeLength + 1][]codeSym
}

// NewTree builds a canonical Huffman tree from per-symbol code lengths.
// lengths[i] is the bit length of symbol i's code; it must not exceed
// MaxCodeLength. Codes are first assigned by the standard canonical
// algorithm (the first code of each length is double the previous
// length's code+count, the JPEG/DEFLATE convention), then each length's
// codes are bit-reversed and re-sorted before being handed out to that
// length's symbols in ascending symbol order. The reversal converts the
// codebook to the least-significant-bit-first transmission order the
// rest of the Bink bitstream uses: reversing every code of a prefix-free
// set yields a set that is prefix-free in the low bits, and for the
// all-length-4 tree the reversed, re-sorted codes come out as 0..15
// again — decoding there is exactly a raw 4-bit nibble read.
func NewTree(lengths [NumSymbols]uint8) *Tree {
	t := &Tree{}

	var count [MaxCodeLength + 2]int
	for _, l := range lengths {
		if l > 0 {
			count[l]++
			if int(l) > t.maxLength {
				t.maxLength = int(l)
			}
		}
	}

	var code uint32
	for l := 1; l <= MaxCodeLength; l++ {
		code = (code + uint32(count[l-1])) << 1
		if count[l] == 0 {
			continue
		}

		revs := make([]uint32, 0, count[l])
		for i := 0; i < count[l]; i++ {
			revs = append(revs, reverseBits(code+uint32(i), l))
		}
		slices.Sort(revs)

		next := 0
		for sym, sl := range lengths {
			if int(sl) == l {
				t.byLength[l] = append(t.byLength[l], codeSym{code: revs[next], symbol: uint8(sym)})
				next++
			}
		}
	}

	return t
}

// reverseBits reverses the low n bits of v.
func reverseBits(v uint32, n int) uint32 {
	var r uint32
	for i := 0; i < n; i++ {
		r = r<<1 | (v>>uint(i))&1
	}
	return r
}

// GetSymbol decodes one symbol, reading one bit at a time until the
// accumulated code matches an assigned codeword. Bits accumulate
// low-to-high, matching the stream's LSB-first transmission order.
func (t *Tree) GetSymbol(br *bitio.Reader) uint8 {
	var code uint32
	for length := 1; length <= t.maxLength; length++ {
		code |= uint32(br.GetBit()) << uint(length-1)
		for _, e := range t.byLength[length] {
			if e.code == code {
				return e.symbol
			}
		}
	}
	return 0
}
