package dsp

import "testing"

func TestIDCTPutFlatDC(t *testing.T) {
	var coeffs [64]int32
	coeffs[0] = 8 * 128 // DC-only block should reconstruct to a flat 128 plane.

	dst := make([]byte, 64)
	Kernel{}.IDCTPut(dst, 8, &coeffs)

	for i, v := range dst {
		if v != 128 {
			t.Fatalf("dst[%d] = %d, want 128", i, v)
		}
	}
}

func TestIDCTAddAccumulates(t *testing.T) {
	var coeffs [64]int32
	coeffs[0] = 8 * 10

	dst := make([]byte, 64)
	for i := range dst {
		dst[i] = 100
	}
	Kernel{}.IDCTAdd(dst, 8, &coeffs)

	for i, v := range dst {
		if v != 110 {
			t.Fatalf("dst[%d] = %d, want 110", i, v)
		}
	}
}

func TestClipping(t *testing.T) {
	cases := []struct {
		in   int
		want byte
	}{
		{-5, 0},
		{0, 0},
		{200, 200},
		{255, 255},
		{300, 255},
	}
	for _, c := range cases {
		if got := Clip8b(c.in); got != c.want {
			t.Errorf("Clip8b(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestCopyBlock8x8(t *testing.T) {
	src := make([]byte, 64)
	for i := range src {
		src[i] = byte(i)
	}
	dst := make([]byte, 64)
	Kernel{}.CopyBlock8x8(dst, 8, src, 8)
	for i := range dst {
		if dst[i] != src[i] {
			t.Fatalf("dst[%d] = %d, want %d", i, dst[i], src[i])
		}
	}
}

func TestAddBlockClips(t *testing.T) {
	var coeffs [64]int32
	coeffs[0] = 1000 // forces a clip on the first pixel
	dst := make([]byte, 64)
	dst[0] = 250
	Kernel{}.AddBlock(dst, 8, &coeffs)
	if dst[0] != 255 {
		t.Fatalf("dst[0] = %d, want 255", dst[0])
	}
}
