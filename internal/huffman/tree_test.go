package huffman

import (
	"testing"

	"github.com/eosengine/bink/internal/bitio"
)

// lsbBytes packs bits (given in stream order) into 32-bit little-endian
// words the way bitio.Reader consumes them.
func lsbBytes(bits []int) []byte {
	nBytes := (len(bits) + 31) / 32 * 4
	if nBytes == 0 {
		nBytes = 4
	}
	buf := make([]byte, nBytes)
	for i, b := range bits {
		if b == 0 {
			continue
		}
		wordStart := (i / 32) * 4
		bitInWord := i % 32
		buf[wordStart+bitInWord/8] |= 1 << uint(bitInWord%8)
	}
	return buf
}

func TestTree0DecodesRawNibble(t *testing.T) {
	// Tree 0's codewords are the raw nibble values transmitted LSB-first:
	// decoding must agree with GetBits(4) on the same stream position.
	var bits []int
	for v := 0; v < 16; v++ {
		for i := 0; i < 4; i++ {
			bits = append(bits, (v>>uint(i))&1)
		}
	}

	br := bitio.NewReader(lsbBytes(bits))
	for v := 0; v < 16; v++ {
		if got := StaticTrees[0].GetSymbol(br); got != uint8(v) {
			t.Fatalf("GetSymbol #%d = %d, want %d", v, got, v)
		}
	}
}

func TestStaticTreesAreCompleteCodes(t *testing.T) {
	// Every tree must assign each of its 16 symbols a code, and codes
	// within a tree must be unique per (length, code) pair.
	for ti, tree := range StaticTrees {
		total := 0
		for l := 1; l <= MaxCodeLength; l++ {
			seen := map[uint32]bool{}
			for _, e := range tree.byLength[l] {
				if seen[e.code] {
					t.Errorf("tree %d: duplicate code %#x at length %d", ti, e.code, l)
				}
				seen[e.code] = true
				total++
			}
		}
		if total != NumSymbols {
			t.Errorf("tree %d: %d codes assigned, want %d", ti, total, NumSymbols)
		}
	}
}

func TestTree1ShortestCodeDecodes(t *testing.T) {
	// In tree 1 symbol 15 carries the single length-1 code; a lone zero
	// bit must decode to it without consuming anything further.
	br := bitio.NewReader(lsbBytes([]int{0, 1, 1, 1}))
	if got := StaticTrees[1].GetSymbol(br); got != 15 {
		t.Fatalf("GetSymbol = %d, want 15", got)
	}
	if br.Pos() != 1 {
		t.Fatalf("Pos() = %d, want 1 (one bit consumed)", br.Pos())
	}
}
