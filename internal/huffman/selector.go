package huffman

import "github.com/eosengine/bink/internal/bitio"

// Selector layers a 16-symbol permutation on top of one of the sixteen
// static trees: GetSymbol returns Symbols[StaticTrees[Index].GetSymbol()].
type Selector struct {
	Index   uint8
	Symbols [NumSymbols]uint8
}

// ReadSelector reads a Huffman bundle selector from br.
func ReadSelector(br *bitio.Reader) Selector {
	var sel Selector
	sel.Index = uint8(br.GetBits(4))

	if sel.Index == 0 {
		for i := range sel.Symbols {
			sel.Symbols[i] = uint8(i)
		}
		return sel
	}

	if br.GetBit() != 0 {
		readExplicitList(br, &sel)
	} else {
		readShuffleNetwork(br, &sel)
	}
	return sel
}

// readExplicitList implements the "explicit list" branch: a 3-bit length,
// then a prefix of length+1 (up to 8) four-bit symbols, followed by the
// remaining symbols appended in ascending order.
func readExplicitList(br *bitio.Reader, sel *Selector) {
	var hasSymbol [NumSymbols]bool

	length := int(br.GetBits(3))
	for i := 0; i <= length; i++ {
		s := uint8(br.GetBits(4))
		sel.Symbols[i] = s
		hasSymbol[s] = true
	}

	for i := 0; i < NumSymbols; i++ {
		if !hasSymbol[i] {
			length++
			sel.Symbols[length] = uint8(i)
		}
	}
}

// readShuffleNetwork implements the "shuffle network" branch: an
// interleave-merge cascade over depth+1 rounds of doubling block size.
func readShuffleNetwork(br *bitio.Reader, sel *Selector) {
	var tmp1, tmp2 [NumSymbols]uint8
	in, out := tmp1[:], tmp2[:]

	depth := int(br.GetBits(2))

	for i := range in {
		in[i] = uint8(i)
	}

	for i := 0; i <= depth; i++ {
		size := 1 << uint(i)
		for j := 0; j < NumSymbols; j += size * 2 {
			mergeHuffmanSymbols(br, out[j:], in[j:], size)
		}
		in, out = out, in
	}

	copy(sel.Symbols[:], in)
}

// mergeHuffmanSymbols interleaves two adjacent runs of length size (src and
// src[size:]) into dst, one flag bit per element choosing which side
// contributes next; once one side is exhausted, the other is copied
// verbatim. Stable and deterministic.
func mergeHuffmanSymbols(br *bitio.Reader, dst, src []uint8, size int) {
	srcIdx, src2Idx := 0, 0
	src2 := src[size:]
	size2 := size
	dstIdx := 0

	for {
		if br.GetBit() == 0 {
			dst[dstIdx] = src[srcIdx]
			dstIdx++
			srcIdx++
			size--
		} else {
			dst[dstIdx] = src2[src2Idx]
			dstIdx++
			src2Idx++
			size2--
		}
		if size == 0 || size2 == 0 {
			break
		}
	}

	for ; size > 0; size-- {
		dst[dstIdx] = src[srcIdx]
		dstIdx++
		srcIdx++
	}
	for ; size2 > 0; size2-- {
		dst[dstIdx] = src2[src2Idx]
		dstIdx++
		src2Idx++
	}
}

// GetSymbol decodes one symbol through the selector: the underlying static
// tree produces a tree-local symbol, which is then mapped through the
// selector's permutation.
func (sel *Selector) GetSymbol(br *bitio.Reader) uint8 {
	treeSym := StaticTrees[sel.Index].GetSymbol(br)
	return sel.Symbols[treeSym]
}
