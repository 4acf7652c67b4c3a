package render

import "testing"

func TestNewTarget(t *testing.T) {
	tgt := NewTarget(4, 3)
	if tgt.Width != 4 || tgt.Height != 3 {
		t.Errorf("size = %dx%d, want 4x3", tgt.Width, tgt.Height)
	}
	if len(tgt.Data) != 4*3*4 {
		t.Errorf("data length = %d, want %d", len(tgt.Data), 4*3*4)
	}
	for i, b := range tgt.Data {
		if b != 0 {
			t.Fatalf("data[%d] = %d, want 0", i, b)
		}
	}
}

func TestCompositeOpaquePixel(t *testing.T) {
	// One fully opaque red pixel in BGRA over a white background.
	src := []byte{0, 0, 255, 255} // B G R A
	dst := []byte{255, 255, 255, 255}

	compositeBGRAOverRGBA(src, dst, 1)

	want := []byte{255, 0, 0, 255} // R G B A
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestCompositeTransparentPixelLeavesDst(t *testing.T) {
	src := []byte{12, 34, 56, 0}
	dst := []byte{10, 20, 30, 40}

	compositeBGRAOverRGBA(src, dst, 1)

	want := []byte{10, 20, 30, 40}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestCompositeHalfAlpha(t *testing.T) {
	// ~50% white over opaque black. The readback holds premultiplied
	// color, so white at half coverage arrives as (128, 128, 128, 128);
	// the result should land near mid-gray.
	src := []byte{128, 128, 128, 128}
	dst := []byte{0, 0, 0, 255}

	compositeBGRAOverRGBA(src, dst, 1)

	for i := 0; i < 3; i++ {
		if dst[i] < 120 || dst[i] > 136 {
			t.Errorf("channel %d = %d, want near 128", i, dst[i])
		}
	}
	if dst[3] != 255 {
		t.Errorf("alpha = %d, want 255 (opaque background stays opaque)", dst[3])
	}
}

func TestCompositeHalfCoverageOverTransparent(t *testing.T) {
	// A pure red fragment at 50% coverage: the attachment blend
	// (SrcAlpha over a transparent clear) leaves the premultiplied texel
	// (0, 0, 128, 128) in BGRA. Over a transparent destination the
	// composite must keep the full premultiplied red, not halve it again.
	src := []byte{0, 0, 128, 128}
	dst := make([]byte, 4)

	compositeBGRAOverRGBA(src, dst, 1)

	want := []byte{128, 0, 0, 128} // R G B A
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestCompositeChannelSwap(t *testing.T) {
	// Pure blue in BGRA must land in the blue channel of RGBA.
	src := []byte{255, 0, 0, 255}
	dst := make([]byte, 4)

	compositeBGRAOverRGBA(src, dst, 1)

	if dst[0] != 0 || dst[1] != 0 || dst[2] != 255 {
		t.Errorf("got RGB (%d, %d, %d), want (0, 0, 255)", dst[0], dst[1], dst[2])
	}
}
