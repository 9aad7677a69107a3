package bundle

import (
	"fmt"

	"github.com/eosengine/bink/internal/bitio"
)

// rleLens maps the four BlockTypes/SubBlockTypes escape symbols (12..15)
// to run lengths.
var rleLens = [4]byte{4, 8, 12, 32}

// foldSign applies Bink's one-flag-bit sign fold: v = (v ^ sign) - sign,
// sign being 0 or -1 depending on the next bit read. Read unconditionally
// by callers that already know v != 0 (a zero magnitude carries no sign
// bit in the stream).
func foldSign(br *bitio.Reader, v int32) int32 {
	sign := int32(-br.GetBit())
	return (v ^ sign) - sign
}

// ReadRuns decodes the Run bundle's values for the current block row.
func (s *Store) ReadRuns(br *bitio.Reader) error {
	n := s.ReadCount(br, Run)
	if n == 0 {
		return nil
	}

	b := &s.bundles[Run]
	decEnd := b.curDec + n
	if decEnd > len(b.data) {
		return fmt.Errorf("%w: run", ErrRunOutOfBounds)
	}

	if br.GetBit() != 0 {
		v := byte(br.GetBits(4))
		for i := b.curDec; i < decEnd; i++ {
			b.data[i] = v
		}
		b.curDec = decEnd
		return nil
	}

	for b.curDec < decEnd {
		b.data[b.curDec] = b.huff.GetSymbol(br)
		b.curDec++
	}
	return nil
}

// ReadMotionValues decodes the XOff or YOff bundle's values for the
// current block row.
func (s *Store) ReadMotionValues(br *bitio.Reader, src Source) error {
	n := s.ReadCount(br, src)
	if n == 0 {
		return nil
	}

	b := &s.bundles[src]
	decEnd := b.curDec + n
	if decEnd > len(b.data) {
		return fmt.Errorf("%w: motion values", ErrTooManyValues)
	}

	if br.GetBit() != 0 {
		v := int32(br.GetBits(4))
		if v != 0 {
			v = foldSign(br, v)
		}
		fill := byte(v)
		for i := b.curDec; i < decEnd; i++ {
			b.data[i] = fill
		}
		b.curDec = decEnd
		return nil
	}

	for b.curDec < decEnd {
		v := int32(b.huff.GetSymbol(br))
		if v != 0 {
			v = foldSign(br, v)
		}
		b.data[b.curDec] = byte(v)
		b.curDec++
	}
	return nil
}

// ReadBlockTypes decodes the BlockTypes or SubBlockTypes bundle's values
// for the current block row.
func (s *Store) ReadBlockTypes(br *bitio.Reader, src Source) error {
	n := s.ReadCount(br, src)
	if n == 0 {
		return nil
	}

	b := &s.bundles[src]
	decEnd := b.curDec + n
	if decEnd > len(b.data) {
		return fmt.Errorf("%w: block types", ErrTooManyValues)
	}

	if br.GetBit() != 0 {
		v := byte(br.GetBits(4))
		for i := b.curDec; i < decEnd; i++ {
			b.data[i] = v
		}
		b.curDec = decEnd
		return nil
	}

	var last byte
	for b.curDec < decEnd {
		v := b.huff.GetSymbol(br)
		if v < 12 {
			last = v
			b.data[b.curDec] = v
			b.curDec++
			continue
		}

		run := int(rleLens[v-12])
		if b.curDec+run > len(b.data) {
			return fmt.Errorf("%w: block type run", ErrTooManyValues)
		}
		for i := 0; i < run; i++ {
			b.data[b.curDec+i] = last
		}
		b.curDec += run
	}
	return nil
}

// ReadPatterns decodes the Pattern bundle's values for the current block
// row. Each value is two nibble-sized Huffman symbols packed
// low-then-high.
func (s *Store) ReadPatterns(br *bitio.Reader) error {
	n := s.ReadCount(br, Pattern)
	if n == 0 {
		return nil
	}

	b := &s.bundles[Pattern]
	decEnd := b.curDec + n
	if decEnd > len(b.data) {
		return fmt.Errorf("%w: patterns", ErrTooManyValues)
	}

	for b.curDec < decEnd {
		v := b.huff.GetSymbol(br)
		v |= b.huff.GetSymbol(br) << 4
		b.data[b.curDec] = v
		b.curDec++
	}
	return nil
}

// ReadColors decodes the Colors bundle's values for the current block
// row. isBIKi selects whether the BIKi-variant sign fold is
// skipped (BIKi stores colors without it).
func (s *Store) ReadColors(br *bitio.Reader, isBIKi bool) error {
	n := s.ReadCount(br, Colors)
	if n == 0 {
		return nil
	}

	b := &s.bundles[Colors]
	decEnd := b.curDec + n
	if decEnd > len(b.data) {
		return fmt.Errorf("%w: colors", ErrTooManyValues)
	}

	nextColor := func() byte {
		s.colLastVal = s.colHighHuffman[s.colLastVal].GetSymbol(br)

		v := (s.colLastVal << 4) | b.huff.GetSymbol(br)
		if !isBIKi {
			sign := int8(v) >> 7
			v = ((v & 0x7F) ^ byte(sign)) - byte(sign)
			v += 0x80
		}
		return v
	}

	if br.GetBit() != 0 {
		v := nextColor()
		for i := b.curDec; i < decEnd; i++ {
			b.data[i] = v
		}
		b.curDec = decEnd
		return nil
	}

	for b.curDec < decEnd {
		b.data[b.curDec] = nextColor()
		b.curDec++
	}
	return nil
}

// ReadDCS decodes the IntraDC or InterDC bundle's values for the current
// block row. startBits is the leading coefficient's bit width (11 for
// both DC bundles); hasSign additionally consumes a sign-fold bit for
// nonzero values.
func (s *Store) ReadDCS(br *bitio.Reader, src Source, startBits int, hasSign bool) error {
	length := s.ReadCount(br, src)
	if length == 0 {
		return nil
	}

	b := &s.bundles[src]
	pos := b.curDec

	bits := startBits
	if hasSign {
		bits--
	}

	v := int32(br.GetBits(bits))
	if v != 0 && hasSign {
		v = foldSign(br, v)
	}

	if pos+2 > len(b.data) {
		return fmt.Errorf("%w: dc coefficients", ErrTooManyValues)
	}
	putInt16(b.data, pos, int16(v))
	pos += 2
	length--

	for i := 0; i < length; i += 8 {
		length2 := length - i
		if length2 > 8 {
			length2 = 8
		}

		bSize := int(br.GetBits(4))
		if bSize != 0 {
			for j := 0; j < length2; j++ {
				v2 := int32(br.GetBits(bSize))
				if v2 != 0 {
					v2 = foldSign(br, v2)
				}
				v += v2
				if v < -32768 || v > 32767 {
					return fmt.Errorf("%w: %d", ErrDCOutOfBounds, v)
				}

				if pos+2 > len(b.data) {
					return fmt.Errorf("%w: dc coefficients", ErrTooManyValues)
				}
				putInt16(b.data, pos, int16(v))
				pos += 2
			}
		} else {
			for j := 0; j < length2; j++ {
				if pos+2 > len(b.data) {
					return fmt.Errorf("%w: dc coefficients", ErrTooManyValues)
				}
				putInt16(b.data, pos, int16(v))
				pos += 2
			}
		}
	}

	b.curDec = pos
	return nil
}

func putInt16(data []byte, pos int, v int16) {
	data[pos] = byte(v)
	data[pos+1] = byte(v >> 8)
}
