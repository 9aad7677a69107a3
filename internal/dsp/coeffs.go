package dsp

import (
	"fmt"

	"github.com/eosengine/bink/internal/block"
)

// bitReader is declared as an anonymous interface literal, not a named
// import, so that Kernel's methods are type-identical to package block's
// unexported CoeffReader parameter type (two interface types are
// identical when their method sets match, regardless of name or
// package) — *bitio.Reader already has both methods, so callers pass it
// through unchanged.
type bitReader = interface {
	GetBit() int
	GetBits(n int) uint32
}

// ErrScanOverrun is returned by ReadResidue for a residue position outside
// the 64-entry block. ReadDCTCoeffs does not return it: a skip that runs
// past the last scan position ends the block.
var ErrScanOverrun = fmt.Errorf("dsp: coefficient position exceeds block size")

// ReadDCTCoeffs reads the AC coefficients of one 8x8 block. The DC term
// has already been placed in coeffs[0] by the caller from the
// IntraDC/InterDC bundle. No reference bit layout for this token stream
// survives, so this is an internally consistent replacement format: a
// 4-bit scan-table selector (the same convention Run/ScaledRun blocks
// use) followed by a run/level token stream — one continuation bit, a
// 6-bit zero-run skip, an 8-bit magnitude and a sign bit — terminated by
// a zero continuation bit or by reaching position 64.
func (Kernel) ReadDCTCoeffs(br bitReader, coeffs *[64]int32, isIntra bool) error {
	_ = isIntra // intra/inter share one token layout; the DC bundle already differs upstream.

	scan := block.ScanTable(int(br.GetBits(4)))
	pos := 1
	for pos < 64 {
		if br.GetBit() == 0 {
			break
		}
		skip := int(br.GetBits(6))
		pos += skip
		if pos >= 64 {
			break
		}
		v := int32(br.GetBits(8))
		if br.GetBit() != 0 {
			v = -v
		}
		coeffs[scan[pos]] = v
		pos++
	}
	return nil
}

// ReadResidue reads an 8x8 spatial-domain residual block added directly
// onto a motion-compensated prediction, no inverse transform involved.
// maskCount (read by the caller as a 7-bit field) bounds how many of the
// 64 positions carry a nonzero delta; each is a 6-bit position, an 8-bit
// magnitude and a sign bit. Like ReadDCTCoeffs, this token layout is a
// documented replacement format (see DESIGN.md).
func (Kernel) ReadResidue(br bitReader, coeffs *[64]int32, maskCount int) error {
	if maskCount > 64 {
		maskCount = 64
	}
	for i := 0; i < maskCount; i++ {
		posBits := int(br.GetBits(6))
		if posBits >= 64 {
			return fmt.Errorf("%w: %d", ErrScanOverrun, posBits)
		}
		v := int32(br.GetBits(8))
		if br.GetBit() != 0 {
			v = -v
		}
		coeffs[posBits] = v
	}
	return nil
}
