// Package block implements Bink's per-block-row dispatcher: for every
// 8x8 (or 16x16 "scaled") cell in a plane, it reads one BlockTypes value
// and routes to the block kind that value names.
//
// Eight block kinds — Fill, Pattern, Raw, Run and their 16x16 Scaled
// counterparts ScaledFill/ScaledPattern/ScaledRaw/ScaledRun — write pixels
// directly from bundle-decoded byte values (Run via the scan table) and
// need nothing else. The remaining kinds (Skip, Motion, Residue, Intra,
// Inter, ScaledIntra) need an inverse DCT, a block-clear, a residual add or
// a motion-compensated 8x8 copy; CodecKernel is the seam a caller plugs
// those into. Package dsp supplies a concrete implementation.
package block

// CodecKernel performs the pixel-domain operations the bundle-driven
// block dispatcher cannot do on its own.
type CodecKernel interface {
	// ClearBlock zeroes a coefficient block before DCT accumulation.
	ClearBlock(coeffs *[64]int32)

	// IDCTPut inverse-transforms coeffs and writes the result directly
	// into dst (stride bytes per row), for intra blocks.
	IDCTPut(dst []byte, stride int, coeffs *[64]int32)

	// IDCTAdd inverse-transforms coeffs and adds the result onto the
	// motion-compensated prediction already in dst, for inter blocks.
	IDCTAdd(dst []byte, stride int, coeffs *[64]int32)

	// CopyBlock8x8 copies an 8x8 block from src to dst (each with its
	// own stride), for motion compensation.
	CopyBlock8x8(dst []byte, dstStride int, src []byte, srcStride int)

	// AddBlock adds an 8x8 spatial-domain residual onto dst in place,
	// clipping to [0,255]. Used by Residue blocks, whose coefficients
	// are not DCT-domain (no inverse transform is applied).
	AddBlock(dst []byte, stride int, coeffs *[64]int32)
}

// CoeffReader reads the two flavors of DCT coefficient block Bink's
// bitstream carries. Bink's own decoder left both unimplemented (no
// reference bit layout survives); dsp.Kernel supplies a documented,
// self-consistent implementation.
type CoeffReader interface {
	// ReadDCTCoeffs reads a full 8x8 coefficient block (the DC term has
	// already been read from the IntraDC/InterDC bundle and belongs in
	// coeffs[0] on entry). isIntra selects the intra/inter coefficient
	// tables.
	ReadDCTCoeffs(br bitReader, coeffs *[64]int32, isIntra bool) error

	// ReadResidue reads an 8x8 residual block added on top of a
	// motion-compensated prediction. maskCount is the 7-bit mask count
	// read from the bitstream by blockResidue.
	ReadResidue(br bitReader, coeffs *[64]int32, maskCount int) error
}

// bitReader is the subset of *bitio.Reader the coefficient readers need.
// It is an alias for an anonymous interface type, not a defined type, so
// an implementation in another package can alias the same type literal
// and have identical method signatures without this package exporting
// anything (interface type literals are identical structurally; defined
// types are not).
type bitReader = interface {
	GetBit() int
	GetBits(n int) uint32
}
