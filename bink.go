package bink

import (
	"fmt"

	"github.com/eosengine/bink/internal/bitio"
	"github.com/eosengine/bink/internal/block"
	"github.com/eosengine/bink/internal/bundle"
	"github.com/eosengine/bink/internal/colorconv"
	"github.com/eosengine/bink/internal/container"
	"github.com/eosengine/bink/internal/dsp"
)

// ErrOddDimensions is returned by Open when width or height is odd.
// Chroma block counts derive from ceil(width/16) while the chroma plane
// stride is width/2; for odd widths the two disagree, so the decoder
// requires even dimensions and rejects odd ones at construction.
var ErrOddDimensions = fmt.Errorf("bink: width and height must be even")

// Frame is one decoded and colour-converted video frame.
type Frame struct {
	Index    int
	Keyframe bool
	BGRA     []byte
	Width    int
	Height   int
	Pitch    int
}

// Decoder drives one Bink stream end to end: container parsing, per-frame
// bundle/block decoding, and YUVA->BGRA colour conversion. It owns two
// exclusively-owned plane sets (current and previous) and swaps their
// roles after every frame — there is no sharing or aliasing between
// them, and no goroutines touch either.
type Decoder struct {
	data   []byte
	header *container.Header
	clock  Clock

	block *block.Decoder

	cur, prev [4]*block.Plane // Y, U, V, A

	bgra []byte

	started     bool
	startMillis int64
	curFrame    int
	finished    bool
}

// Open parses a complete Bink file already held in memory and constructs
// a Decoder ready to produce frames. Container errors (unknown FourCC,
// zero FPS, largest frame exceeding file size) are fatal here.
func Open(data []byte, clock Clock) (*Decoder, error) {
	h, err := container.Parse(data)
	if err != nil {
		return nil, err
	}
	if h.Width%2 != 0 || h.Height%2 != 0 {
		return nil, ErrOddDimensions
	}

	d := &Decoder{data: data, header: h, clock: clock}
	d.allocatePlanes()

	store := bundle.NewStore(h.Width, h.Height)
	kernel := dsp.Kernel{}
	d.block = &block.Decoder{
		Store:  store,
		Kernel: kernel,
		Coeffs: kernel,
		IsBIKi: h.IsBIKi(),
	}

	d.bgra = make([]byte, h.Width*h.Height*4)
	return d, nil
}

// allocatePlanes builds both the current and previous plane sets:
// Y/U/V start zero, A fully opaque.
func (d *Decoder) allocatePlanes() {
	w, hgt := d.header.Width, d.header.Height
	cw, ch := w/2, hgt/2

	newSet := func() [4]*block.Plane {
		return [4]*block.Plane{
			{Data: make([]byte, w*hgt), Width: w, Height: hgt},
			{Data: make([]byte, cw*ch), Width: cw, Height: ch},
			{Data: make([]byte, cw*ch), Width: cw, Height: ch},
			{Data: make([]byte, w*hgt), Width: w, Height: hgt},
		}
	}
	d.cur = newSet()
	d.prev = newSet()
	for _, set := range [][4]*block.Plane{d.cur, d.prev} {
		for i := range set[3].Data {
			set[3].Data[i] = 0xFF
		}
	}
}

// Header exposes the parsed container header.
func (d *Decoder) Header() *container.Header { return d.header }

// Finished reports whether every frame has been produced.
func (d *Decoder) Finished() bool { return d.finished }

func (d *Decoder) ensureStarted() {
	if !d.started {
		d.startMillis = d.clock.NowMillis()
		d.started = true
	}
}

// dueAt returns the millisecond offset from stream start at which frame
// index is due: floor(index * 1000 * fpsDen / fpsNum).
func (d *Decoder) dueAt(index int) int64 {
	return int64(index) * 1000 * int64(d.header.FPSDen) / int64(d.header.FPSNum)
}

// GotTime reports whether there is still spare time before the next
// frame is due, with an 11ms slack allowance.
func (d *Decoder) GotTime() bool {
	d.ensureStarted()
	now := d.clock.NowMillis()
	return now-d.startMillis+11 < d.dueAt(d.curFrame)
}

// ProcessData decodes exactly one frame if it is due, advancing curFrame;
// it is a no-op (nil, nil) if called before the next frame is due, and
// marks the stream Finished once every frame has been produced.
func (d *Decoder) ProcessData() (*Frame, error) {
	if d.finished {
		return nil, ErrAlreadyFinished
	}
	d.ensureStarted()

	now := d.clock.NowMillis()
	if now-d.startMillis < d.dueAt(d.curFrame) {
		return nil, nil
	}

	frame, err := d.decodeFrame(d.curFrame)
	if err != nil {
		return nil, err
	}

	d.curFrame++
	if d.curFrame >= len(d.header.Frames) {
		d.finished = true
	}
	return frame, nil
}

// decodeFrame decodes one frame: audio packets are skipped (sample
// reconstruction is out of scope), the remaining video packet is decoded
// plane by plane, and the result is colour converted into the BGRA
// output buffer.
func (d *Decoder) decodeFrame(index int) (*Frame, error) {
	if index < 0 || index >= len(d.header.Frames) {
		return nil, ErrNoSuchFrame
	}
	rec := d.header.Frames[index]

	payload, err := d.header.FramePayload(d.data, index)
	if err != nil {
		return nil, err
	}

	pos, err := d.skipAudioPackets(payload)
	if err != nil {
		return nil, fmt.Errorf("bink: frame %d: %w", index, err)
	}

	videoPacket := payload[pos:]
	br := bitio.NewReader(videoPacket)

	isBIKi := d.header.IsBIKi()
	hasAlpha := d.header.HasAlpha()

	if isBIKi && hasAlpha {
		br.Skip(32)
	}
	if hasAlpha {
		if err := d.block.DecodePlane(br, d.cur[3], d.prev[3], d.header.Width, d.header.Height, false); err != nil {
			return nil, fmt.Errorf("bink: frame %d: alpha plane: %w", index, err)
		}
	}
	if isBIKi {
		br.Skip(32)
	}

	chromaOrder := [2]int{1, 2} // U, V
	if d.header.SwapPlanes() {
		chromaOrder = [2]int{2, 1} // V, U
	}
	planeOrder := [3]int{0, chromaOrder[0], chromaOrder[1]}

	// The plane loop stops the moment the bit reader runs dry, leaving
	// any remaining planes at their previous values rather than decoding
	// past the end of the packet.
	for n, pi := range planeOrder {
		if br.Pos() >= br.Size() {
			// cur/prev swap as whole plane sets, not per-plane, so a
			// plane left undecoded this frame must have prev's value
			// copied forward into cur now — otherwise the swap below
			// hands the next frame a two-frames-stale buffer for this
			// plane instead of the last value it actually held.
			for _, skipped := range planeOrder[n:] {
				copy(d.cur[skipped].Data, d.prev[skipped].Data)
			}
			break
		}
		isChroma := n != 0
		if err := d.block.DecodePlane(br, d.cur[pi], d.prev[pi], d.header.Width, d.header.Height, isChroma); err != nil {
			return nil, fmt.Errorf("bink: frame %d: plane %d: %w", index, pi, err)
		}
	}

	colorconv.YUVAToBGRA(d.bgra, d.header.Width*4,
		d.cur[0].Data, d.cur[1].Data, d.cur[2].Data, d.cur[3].Data,
		d.header.Width, d.header.Height)

	out := &Frame{
		Index:    index,
		Keyframe: rec.Keyframe,
		BGRA:     d.bgra,
		Width:    d.header.Width,
		Height:   d.header.Height,
		Pitch:    d.header.Width * 4,
	}

	d.cur, d.prev = d.prev, d.cur
	return out, nil
}

// skipAudioPackets consumes the per-track audio packet envelope at the
// front of a frame payload and returns the byte offset at which the
// video packet begins. Sample reconstruction is out of scope; only the
// envelope bookkeeping matters here.
func (d *Decoder) skipAudioPackets(payload []byte) (int, error) {
	pos := 0
	remaining := len(payload)

	for range d.header.AudioTracks {
		if remaining < 4 {
			return 0, fmt.Errorf("%w: audio packet length", container.ErrTruncated)
		}
		packetLength := int(container.ReadLE32(payload[pos:]))
		pos += 4
		remaining -= 4

		if packetLength > remaining {
			return 0, ErrAudioPacketTooBig
		}
		if packetLength >= 4 {
			_ = container.ReadLE32(payload[pos:]) // sample count; audio decode is out of scope
		}
		pos += packetLength
		remaining -= packetLength
	}

	return pos, nil
}
