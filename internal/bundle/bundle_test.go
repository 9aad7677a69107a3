package bundle

import "testing"

func TestLog2Plus1(t *testing.T) {
	cases := []struct {
		v    uint32
		want int
	}{
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 3},
		{511, 9},
		{512, 10},
	}
	for _, c := range cases {
		if got := log2Plus1(c.v); got != c.want {
			t.Errorf("log2Plus1(%d) = %d, want %d", c.v, got, c.want)
		}
	}
}

func TestNewStore_AllocatesEveryBundle(t *testing.T) {
	s := NewStore(64, 64)
	bw, bh := (64+7)>>3, (64+7)>>3
	want := bw * bh * 64

	for src := Source(0); src < numSources; src++ {
		if len(s.bundles[src].data) != want {
			t.Errorf("bundle %d capacity = %d, want %d", src, len(s.bundles[src].data), want)
		}
	}
}

func TestInitLengths_MatchesFormulas(t *testing.T) {
	s := NewStore(64, 64)
	width, bw := 64, 8
	s.InitLengths(width, bw)

	want := map[Source]int{
		BlockTypes:    log2Plus1(uint32(width>>3) + 511),
		SubBlockTypes: log2Plus1(uint32(width>>4) + 511),
		Colors:        log2Plus1(uint32(width>>3)*64 + 511),
		IntraDC:       log2Plus1(uint32(width>>3) + 511),
		InterDC:       log2Plus1(uint32(width>>3) + 511),
		XOff:          log2Plus1(uint32(width>>3) + 511),
		YOff:          log2Plus1(uint32(width>>3) + 511),
		Pattern:       log2Plus1(uint32(bw<<3) + 511),
		Run:           log2Plus1(uint32(width>>3)*48 + 511),
	}
	for src, w := range want {
		if got := s.bundles[src].countLength; got != w {
			t.Errorf("countLength[%d] = %d, want %d", src, got, w)
		}
	}
}

func TestReadCount_StallsUntilConsumerCatchesUp(t *testing.T) {
	s := NewStore(64, 64)
	b := &s.bundles[BlockTypes]

	// Producer ahead of consumer: stall.
	b.curDec, b.curPtr = 4, 0
	if n := s.ReadCount(nil, BlockTypes); n != 0 {
		t.Errorf("ReadCount with curDec>curPtr = %d, want 0", n)
	}

	// Exhausted sentinel: stall.
	b.curDec = -1
	if n := s.ReadCount(nil, BlockTypes); n != 0 {
		t.Errorf("ReadCount with curDec=-1 = %d, want 0", n)
	}
}

func TestGet_ValueWidths(t *testing.T) {
	s := NewStore(64, 64)

	s.bundles[BlockTypes].data[0] = 7
	if v := s.Get(BlockTypes); v != 7 {
		t.Errorf("Get(BlockTypes) = %d, want 7", v)
	}

	var xoff int8 = -3
	s.bundles[XOff].data[0] = byte(xoff)
	if v := s.Get(XOff); v != -3 {
		t.Errorf("Get(XOff) = %d, want -3", v)
	}

	putInt16(s.bundles[IntraDC].data, 0, -300)
	if v := s.Get(IntraDC); v != -300 {
		t.Errorf("Get(IntraDC) = %d, want -300", v)
	}
}
