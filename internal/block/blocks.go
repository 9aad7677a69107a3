package block

import (
	"fmt"

	"github.com/eosengine/bink/internal/bitio"
	"github.com/eosengine/bink/internal/bundle"
)

func (d *Decoder) blockSkip(dst, prev *Plane, dstOff, prevOff int) error {
	if prev == nil {
		return ErrNoPreviousFrame
	}
	d.Kernel.CopyBlock8x8(dst.Data[dstOff:], dst.stride(), prev.Data[prevOff:], prev.stride())
	return nil
}

func (d *Decoder) blockMotion(br *bitio.Reader, dst, prev *Plane, dstOff, prevOff int) error {
	xOff := int(d.Store.Get(bundle.XOff))
	yOff := int(d.Store.Get(bundle.YOff))
	if prev == nil {
		return ErrNoPreviousFrame
	}

	refOff := prevOff + xOff + yOff*prev.stride()
	if !withinPlane(prev, refOff) {
		return fmt.Errorf("%w: xOff=%d yOff=%d", ErrCopyOutOfBounds, xOff, yOff)
	}

	d.Kernel.CopyBlock8x8(dst.Data[dstOff:], dst.stride(), prev.Data[refOff:], prev.stride())
	return nil
}

func withinPlane(p *Plane, off int) bool {
	if off < 0 {
		return false
	}
	return off+7*p.stride()+7 < len(p.Data)
}

// blockRun decodes an 8x8 cell whose pixels are given as scan-ordered
// runs of a repeated or individually coded color.
func (d *Decoder) blockRun(br *bitio.Reader, dst *Plane, dstOff int) error {
	scan := scanTable(int(br.GetBits(4)))
	stride := dst.stride()

	i := 0
	for {
		run := int(d.Store.Get(bundle.Run)) + 1
		i += run
		if i > 64 {
			return ErrRunOutOfBounds
		}

		if br.GetBit() != 0 {
			v := byte(d.Store.Get(bundle.Colors))
			for j := i - run; j < i; j++ {
				idx := scan[j]
				dst.Data[dstOff+(idx&7)+(idx>>3)*stride] = v
			}
		} else {
			for j := i - run; j < i; j++ {
				v := byte(d.Store.Get(bundle.Colors))
				idx := scan[j]
				dst.Data[dstOff+(idx&7)+(idx>>3)*stride] = v
			}
		}

		if i >= 63 {
			break
		}
	}

	if i == 63 {
		v := byte(d.Store.Get(bundle.Colors))
		idx := scan[63]
		dst.Data[dstOff+(idx&7)+(idx>>3)*stride] = v
	}
	return nil
}

func (d *Decoder) blockResidue(br *bitio.Reader, dst, prev *Plane, dstOff, prevOff int) error {
	xOff := int(d.Store.Get(bundle.XOff))
	yOff := int(d.Store.Get(bundle.YOff))
	if prev == nil {
		return ErrNoPreviousFrame
	}

	refOff := prevOff + xOff + yOff*prev.stride()
	if !withinPlane(prev, refOff) {
		return fmt.Errorf("%w: xOff=%d yOff=%d", ErrCopyOutOfBounds, xOff, yOff)
	}
	d.Kernel.CopyBlock8x8(dst.Data[dstOff:], dst.stride(), prev.Data[refOff:], prev.stride())

	var coeffs [64]int32
	d.Kernel.ClearBlock(&coeffs)

	maskCount := int(br.GetBits(7))
	if err := d.Coeffs.ReadResidue(br, &coeffs, maskCount); err != nil {
		return err
	}

	d.Kernel.AddBlock(dst.Data[dstOff:], dst.stride(), &coeffs)
	return nil
}

func (d *Decoder) blockIntra(br *bitio.Reader, dst *Plane, dstOff int) error {
	var coeffs [64]int32
	d.Kernel.ClearBlock(&coeffs)
	coeffs[0] = d.Store.Get(bundle.IntraDC)

	if err := d.Coeffs.ReadDCTCoeffs(br, &coeffs, true); err != nil {
		return err
	}

	d.Kernel.IDCTPut(dst.Data[dstOff:], dst.stride(), &coeffs)
	return nil
}

func (d *Decoder) blockFill(dst *Plane, dstOff int) error {
	v := byte(d.Store.Get(bundle.Colors))
	stride := dst.stride()
	for row := 0; row < 8; row++ {
		o := dstOff + row*stride
		for col := 0; col < 8; col++ {
			dst.Data[o+col] = v
		}
	}
	return nil
}

func (d *Decoder) blockInter(br *bitio.Reader, dst, prev *Plane, dstOff, prevOff int) error {
	xOff := int(d.Store.Get(bundle.XOff))
	yOff := int(d.Store.Get(bundle.YOff))
	if prev == nil {
		return ErrNoPreviousFrame
	}

	refOff := prevOff + xOff + yOff*prev.stride()
	if !withinPlane(prev, refOff) {
		return fmt.Errorf("%w: xOff=%d yOff=%d", ErrCopyOutOfBounds, xOff, yOff)
	}
	d.Kernel.CopyBlock8x8(dst.Data[dstOff:], dst.stride(), prev.Data[refOff:], prev.stride())

	var coeffs [64]int32
	d.Kernel.ClearBlock(&coeffs)
	coeffs[0] = d.Store.Get(bundle.InterDC)

	if err := d.Coeffs.ReadDCTCoeffs(br, &coeffs, false); err != nil {
		return err
	}

	d.Kernel.IDCTAdd(dst.Data[dstOff:], dst.stride(), &coeffs)
	return nil
}

func (d *Decoder) blockPattern(dst *Plane, dstOff int) error {
	var col [2]byte
	col[0] = byte(d.Store.Get(bundle.Colors))
	col[1] = byte(d.Store.Get(bundle.Colors))

	stride := dst.stride()
	for row := 0; row < 8; row++ {
		v := byte(d.Store.Get(bundle.Pattern))
		for colIdx := 0; colIdx < 8; colIdx++ {
			dst.Data[dstOff+row*stride+colIdx] = col[v&1]
			v >>= 1
		}
	}
	return nil
}

func (d *Decoder) blockRaw(dst *Plane, dstOff int) error {
	stride := dst.stride()
	for row := 0; row < 8; row++ {
		o := dstOff + row*stride
		for col := 0; col < 8; col++ {
			dst.Data[o+col] = byte(d.Store.Get(bundle.Colors))
		}
	}
	return nil
}

// blockScaled dispatches a 16x16 cell, which covers two block-row
// columns; it is responsible for advancing bx past both.
func (d *Decoder) blockScaled(br *bitio.Reader, dst, prev *Plane, dstOff, prevOff int, bx *int) error {
	sub := Type(d.Store.Get(bundle.SubBlockTypes))

	var err error
	switch sub {
	case Run:
		err = d.blockScaledRun(br, dst, dstOff)
	case Intra:
		err = d.blockScaledIntra(br, dst, dstOff)
	case Fill:
		err = d.blockScaledFill(dst, dstOff)
	case Pattern:
		err = d.blockScaledPattern(dst, dstOff)
	case Raw:
		err = d.blockScaledRaw(dst, dstOff)
	default:
		return fmt.Errorf("%w: %d", ErrInvalidBlockType, sub)
	}

	(*bx)++
	return err
}

// upsample2x doubles each pixel of an 8x8 source block into the
// corresponding 2x2 cell of a 16x16 destination region.
func upsample2x(dst *Plane, dstOff int, src *[64]byte) {
	stride := dst.stride()
	for row := 0; row < 8; row++ {
		o1 := dstOff + (row*2)*stride
		o2 := o1 + stride
		for col := 0; col < 8; col++ {
			v := src[row*8+col]
			x := o1 + col*2
			y := o2 + col*2
			dst.Data[x] = v
			dst.Data[x+1] = v
			dst.Data[y] = v
			dst.Data[y+1] = v
		}
	}
}

func (d *Decoder) blockScaledRun(br *bitio.Reader, dst *Plane, dstOff int) error {
	scan := scanTable(int(br.GetBits(4)))

	var ublock [64]byte
	i := 0
	for {
		run := int(d.Store.Get(bundle.Run)) + 1
		i += run
		if i > 64 {
			return ErrRunOutOfBounds
		}

		if br.GetBit() != 0 {
			v := byte(d.Store.Get(bundle.Colors))
			for j := i - run; j < i; j++ {
				ublock[scan[j]] = v
			}
		} else {
			for j := i - run; j < i; j++ {
				ublock[scan[j]] = byte(d.Store.Get(bundle.Colors))
			}
		}

		if i >= 63 {
			break
		}
	}

	if i == 63 {
		ublock[scan[63]] = byte(d.Store.Get(bundle.Colors))
	}

	upsample2x(dst, dstOff, &ublock)
	return nil
}

func (d *Decoder) blockScaledIntra(br *bitio.Reader, dst *Plane, dstOff int) error {
	var coeffs [64]int32
	d.Kernel.ClearBlock(&coeffs)
	coeffs[0] = d.Store.Get(bundle.IntraDC)

	if err := d.Coeffs.ReadDCTCoeffs(br, &coeffs, true); err != nil {
		return err
	}

	var scratch [64]byte
	d.Kernel.IDCTPut(scratch[:], 8, &coeffs)
	upsample2x(dst, dstOff, &scratch)
	return nil
}

func (d *Decoder) blockScaledFill(dst *Plane, dstOff int) error {
	v := byte(d.Store.Get(bundle.Colors))
	stride := dst.stride()
	for row := 0; row < 16; row++ {
		o := dstOff + row*stride
		for col := 0; col < 16; col++ {
			dst.Data[o+col] = v
		}
	}
	return nil
}

func (d *Decoder) blockScaledPattern(dst *Plane, dstOff int) error {
	var col [2]byte
	col[0] = byte(d.Store.Get(bundle.Colors))
	col[1] = byte(d.Store.Get(bundle.Colors))

	stride := dst.stride()
	for j := 0; j < 8; j++ {
		v := byte(d.Store.Get(bundle.Pattern))
		o1 := dstOff + (j*2)*stride
		o2 := o1 + stride
		for i := 0; i < 8; i++ {
			c := col[v&1]
			x := o1 + i*2
			y := o2 + i*2
			dst.Data[x] = c
			dst.Data[x+1] = c
			dst.Data[y] = c
			dst.Data[y+1] = c
			v >>= 1
		}
	}
	return nil
}

func (d *Decoder) blockScaledRaw(dst *Plane, dstOff int) error {
	var ublock [64]byte
	for i := range ublock {
		ublock[i] = byte(d.Store.Get(bundle.Colors))
	}
	upsample2x(dst, dstOff, &ublock)
	return nil
}
