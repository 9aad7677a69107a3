package block

import (
	"fmt"

	"github.com/eosengine/bink/internal/bitio"
	"github.com/eosengine/bink/internal/bundle"
)

// Type is one of the ten block kinds a BlockTypes or SubBlockTypes bundle
// value names. The numeric values match the wire encoding exactly (value
// 3 is unused on the wire) since the dispatcher casts the raw bundle
// byte straight to Type — a bare iota sequence here would shift every
// block kind from Run onward off the real encoding.
type Type int

const (
	Skip    Type = 0
	Scaled  Type = 1
	Motion  Type = 2
	Run     Type = 4
	Residue Type = 5
	Intra   Type = 6
	Fill    Type = 7
	Inter   Type = 8
	Pattern Type = 9
	Raw     Type = 10
)

// Plane is one color-plane's pixel buffer: width*height bytes, no row
// padding (pitch equals width).
type Plane struct {
	Data   []byte
	Width  int
	Height int
}

func (p *Plane) stride() int { return p.Width }

// Decoder drives one plane's worth of block-row decoding: reading the
// nine per-row bundles, dispatching each cell's BlockTypes value, and
// consuming the matching bundle values.
type Decoder struct {
	Store  *bundle.Store
	Kernel CodecKernel
	Coeffs CoeffReader
	IsBIKi bool
}

// DecodePlane decodes one plane (or alpha layer) of one frame.
// fullWidth/fullHeight are the frame's luma dimensions (block
// counts for chroma planes are derived from these, not from the
// chroma-halved plane dimensions). prev is the same plane from the
// previous decoded frame, used for motion compensation and residue
// blocks; it may be nil on the first frame, in which case Motion/
// Residue/Inter blocks are errors.
func (d *Decoder) DecodePlane(br *bitio.Reader, dst, prev *Plane, fullWidth, fullHeight int, isChroma bool) error {
	var bw, bh int
	if isChroma {
		bw = (fullWidth + 15) >> 4
		bh = (fullHeight + 15) >> 4
	} else {
		bw = (fullWidth + 7) >> 3
		bh = (fullHeight + 7) >> 3
	}

	lenWidth := dst.Width
	if lenWidth < 8 {
		lenWidth = 8
	}
	d.Store.InitLengths(lenWidth, bw)

	for i := 0; i < bundle.NumSources; i++ {
		d.Store.ReadBundle(br, bundle.Source(i))
	}

	for by := 0; by < bh; by++ {
		if err := d.readRowBundles(br); err != nil {
			return fmt.Errorf("block: row %d: %w", by, err)
		}

		rowOff := 8 * by * dst.stride()

		for bx := 0; bx < bw; bx++ {
			blockType := Type(d.Store.Get(bundle.BlockTypes))

			if (by&1) != 0 && blockType == Scaled {
				bx++
				continue
			}

			dstOff := rowOff + bx*8
			var prevOff int
			if prev != nil {
				prevOff = dstOff
			}

			if err := d.dispatch(br, blockType, dst, prev, dstOff, prevOff, &bx); err != nil {
				return fmt.Errorf("block: row %d col %d: %w", by, bx, err)
			}
		}
	}

	br.AlignTo32()
	return nil
}

func (d *Decoder) readRowBundles(br *bitio.Reader) error {
	if err := d.Store.ReadBlockTypes(br, bundle.BlockTypes); err != nil {
		return err
	}
	if err := d.Store.ReadBlockTypes(br, bundle.SubBlockTypes); err != nil {
		return err
	}
	if err := d.Store.ReadColors(br, d.IsBIKi); err != nil {
		return err
	}
	if err := d.Store.ReadPatterns(br); err != nil {
		return err
	}
	if err := d.Store.ReadMotionValues(br, bundle.XOff); err != nil {
		return err
	}
	if err := d.Store.ReadMotionValues(br, bundle.YOff); err != nil {
		return err
	}
	if err := d.Store.ReadDCS(br, bundle.IntraDC, 11, false); err != nil {
		return err
	}
	if err := d.Store.ReadDCS(br, bundle.InterDC, 11, true); err != nil {
		return err
	}
	return d.Store.ReadRuns(br)
}

func (d *Decoder) dispatch(br *bitio.Reader, t Type, dst, prev *Plane, dstOff, prevOff int, bx *int) error {
	switch t {
	case Skip:
		return d.blockSkip(dst, prev, dstOff, prevOff)
	case Scaled:
		return d.blockScaled(br, dst, prev, dstOff, prevOff, bx)
	case Motion:
		return d.blockMotion(br, dst, prev, dstOff, prevOff)
	case Run:
		return d.blockRun(br, dst, dstOff)
	case Residue:
		return d.blockResidue(br, dst, prev, dstOff, prevOff)
	case Intra:
		return d.blockIntra(br, dst, dstOff)
	case Fill:
		return d.blockFill(dst, dstOff)
	case Inter:
		return d.blockInter(br, dst, prev, dstOff, prevOff)
	case Pattern:
		return d.blockPattern(dst, dstOff)
	case Raw:
		return d.blockRaw(dst, dstOff)
	default:
		return fmt.Errorf("block: unknown block type %d", t)
	}
}
