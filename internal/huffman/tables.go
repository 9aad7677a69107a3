package huffman

// NumTrees is the number of statically embedded canonical Huffman trees a
// bundle selector can index into.
const NumTrees = 16

// treeLengths holds the per-symbol code length for each of the 16 static
// trees. Tree 0 is the identity: every symbol has length 4, and after
// NewTree's LSB-first code reversal its codes are exactly 0..15 in
// ascending symbol order, so GetSymbol there reads a raw 4-bit nibble.
//
// The remaining fifteen trees are cyclic rotations of one length multiset
// (1,2,...,14,15,15) that satisfies the Kraft equality for 16 symbols
// exactly: sum(2^-l) over lengths 1..14 is 1-2^-14, and the two trailing
// length-15 symbols contribute the remaining 2*2^-15 = 2^-14. Rotating
// which symbol gets which length produces sixteen structurally distinct,
// individually complete, valid canonical codes. The length tables shipped
// with the original codec's data files are not reproduced here; these
// are a synthesized, equally valid replacement (see DESIGN.md).
var treeLengths = [NumTrees][NumSymbols]uint8{
	{4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4},
	{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 15, 1},
	{3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 15, 1, 2},
	{4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 15, 1, 2, 3},
	{5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 15, 1, 2, 3, 4},
	{6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 15, 1, 2, 3, 4, 5},
	{7, 8, 9, 10, 11, 12, 13, 14, 15, 15, 1, 2, 3, 4, 5, 6},
	{8, 9, 10, 11, 12, 13, 14, 15, 15, 1, 2, 3, 4, 5, 6, 7},
	{9, 10, 11, 12, 13, 14, 15, 15, 1, 2, 3, 4, 5, 6, 7, 8},
	{10, 11, 12, 13, 14, 15, 15, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	{11, 12, 13, 14, 15, 15, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
	{12, 13, 14, 15, 15, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	{13, 14, 15, 15, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
	{14, 15, 15, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13},
	{15, 15, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14},
	{15, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
}

// StaticTrees holds the sixteen module-wide canonical Huffman trees,
// built once at package init.
var StaticTrees [NumTrees]*Tree

func init() {
	for i, lengths := range treeLengths {
		StaticTrees[i] = NewTree(lengths)
	}
}
