package dsp

import "math"

// idctSize is the block dimension every kernel primitive operates on.
const idctSize = 8

// cosTable[x][u] caches cos((2x+1)u*pi/16), the basis the separable 2D
// inverse DCT-II is built from. Small transforms often hard-code this
// basis as a couple of fixed-point multiplier constants; at N=8 it has
// four independent angles, so it is kept as a precomputed table instead
// of inlined magic constants.
var cosTable [idctSize][idctSize]float64

func init() {
	for x := 0; x < idctSize; x++ {
		for u := 0; u < idctSize; u++ {
			cosTable[x][u] = math.Cos(float64((2*x+1)*u) * math.Pi / (2 * idctSize))
		}
	}
}

func idctAlpha(u int) float64 {
	if u == 0 {
		return 1 / math.Sqrt2
	}
	return 1
}

// idct8x8 performs a separable 2D inverse DCT-II over an 8x8 coefficient
// block. Clarity is favored over fixed-point butterfly shortcuts: the
// block loop is single-threaded and decodes one frame per ProcessData
// call, so the straightforward O(N^3) separable sum is used rather than
// a fixed-point AAN factorization.
func idct8x8(coeffs *[64]int32) [64]int32 {
	var rows [64]float64
	for y := 0; y < idctSize; y++ {
		for x := 0; x < idctSize; x++ {
			var sum float64
			for u := 0; u < idctSize; u++ {
				sum += idctAlpha(u) * float64(coeffs[y*idctSize+u]) * cosTable[x][u]
			}
			rows[y*idctSize+x] = sum / 2
		}
	}

	var out [64]int32
	for x := 0; x < idctSize; x++ {
		for y := 0; y < idctSize; y++ {
			var sum float64
			for v := 0; v < idctSize; v++ {
				sum += idctAlpha(v) * rows[v*idctSize+x] * cosTable[y][v]
			}
			out[y*idctSize+x] = int32(math.Round(sum / 2))
		}
	}
	return out
}

// Kernel is the default block.CodecKernel implementation: inverse DCT
// with store/add semantics, block clear, motion-compensated 8x8 copy,
// and direct spatial-residual add.
type Kernel struct{}

// ClearBlock zeroes a coefficient block before DCT accumulation.
func (Kernel) ClearBlock(coeffs *[64]int32) {
	for i := range coeffs {
		coeffs[i] = 0
	}
}

// IDCTPut inverse-transforms coeffs and writes the result directly into
// dst, for Intra and ScaledIntra blocks.
func (Kernel) IDCTPut(dst []byte, stride int, coeffs *[64]int32) {
	px := idct8x8(coeffs)
	for row := 0; row < idctSize; row++ {
		o := row * stride
		ro := row * idctSize
		for col := 0; col < idctSize; col++ {
			dst[o+col] = Clip8b(int(px[ro+col]))
		}
	}
}

// IDCTAdd inverse-transforms coeffs and adds the result onto the
// motion-compensated prediction already in dst, for Inter blocks.
func (Kernel) IDCTAdd(dst []byte, stride int, coeffs *[64]int32) {
	px := idct8x8(coeffs)
	for row := 0; row < idctSize; row++ {
		o := row * stride
		ro := row * idctSize
		for col := 0; col < idctSize; col++ {
			dst[o+col] = Clip8b(int(dst[o+col]) + int(px[ro+col]))
		}
	}
}

// CopyBlock8x8 copies an 8x8 block from src to dst, each with its own
// stride, for Skip/Motion/Residue/Inter's motion-compensation step.
func (Kernel) CopyBlock8x8(dst []byte, dstStride int, src []byte, srcStride int) {
	for row := 0; row < idctSize; row++ {
		copy(dst[row*dstStride:row*dstStride+idctSize], src[row*srcStride:row*srcStride+idctSize])
	}
}

// AddBlock adds an 8x8 spatial-domain residual onto dst in place,
// clipping to [0,255]. Residue blocks are spatial, not DCT-domain — no
// inverse transform runs before the add.
func (Kernel) AddBlock(dst []byte, stride int, coeffs *[64]int32) {
	for row := 0; row < idctSize; row++ {
		o := row * stride
		ro := row * idctSize
		for col := 0; col < idctSize; col++ {
			dst[o+col] = Clip8b(int(dst[o+col]) + int(coeffs[ro+col]))
		}
	}
}
