package main

import (
	"fmt"

	"github.com/schollz/progressbar/v2"

	"github.com/eosengine/bink"
)

// fastClock advances by a large step on every call, so ProcessData's
// due-time check does not hold decode-one back — this is a correctness smoke test, not a
// real-time player (frame pacing and the display loop are out of
// scope). A clock that always returned the same instant would make
// every "now - startMillis" in Decoder read as zero, since startMillis
// is captured from that same constant on the first call.
type fastClock struct {
	now int64
}

func (c *fastClock) NowMillis() int64 {
	c.now += 1 << 20
	return c.now
}

func decodeAll(dec *bink.Decoder, quiet bool) error {
	total := len(dec.Header().Frames)

	var bar *progressbar.ProgressBar
	if !quiet {
		bar = progressbar.New(total)
	}

	decoded := 0
	for !dec.Finished() {
		frame, err := dec.ProcessData()
		if err != nil {
			return fmt.Errorf("frame %d: %w", decoded, err)
		}
		if frame == nil {
			continue
		}
		decoded++
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		fmt.Println()
	}
	fmt.Printf("decoded %d/%d frames\n", decoded, total)
	return nil
}
