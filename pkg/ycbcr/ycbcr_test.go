package ycbcr

import (
	"image"
	"image/color"
	"testing"
)

func TestNewChromaGeometry(t *testing.T) {
	cases := []struct {
		ratio  image.YCbCrSubsampleRatio
		w, h   int
		cw, ch int
	}{
		{image.YCbCrSubsampleRatio444, 4, 4, 4, 4},
		{image.YCbCrSubsampleRatio422, 4, 4, 2, 4},
		{image.YCbCrSubsampleRatio420, 4, 4, 2, 2},
		{image.YCbCrSubsampleRatio440, 4, 4, 4, 2},
		{image.YCbCrSubsampleRatio420, 5, 5, 2, 2},
		{image.YCbCrSubsampleRatio420, 1, 1, 1, 1},
	}
	for _, c := range cases {
		img := New(image.Rect(0, 0, c.w, c.h), c.ratio)
		if got := img.Cb.Rect; got.Dx() != c.cw || got.Dy() != c.ch {
			t.Errorf("%v %dx%d: chroma %dx%d, want %dx%d",
				c.ratio, c.w, c.h, got.Dx(), got.Dy(), c.cw, c.ch)
		}
		if img.Cb.Rect != img.Cr.Rect {
			t.Errorf("%v: Cb and Cr rects differ", c.ratio)
		}
	}
}

func TestSubsampleRatio(t *testing.T) {
	cases := []struct {
		h, v int
		want image.YCbCrSubsampleRatio
	}{
		{1, 1, image.YCbCrSubsampleRatio444},
		{2, 1, image.YCbCrSubsampleRatio422},
		{2, 2, image.YCbCrSubsampleRatio420},
		{1, 2, image.YCbCrSubsampleRatio440},
	}
	for _, c := range cases {
		if got := SubsampleRatio(c.h, c.v); got != c.want {
			t.Errorf("SubsampleRatio(%d, %d) = %v, want %v", c.h, c.v, got, c.want)
		}
	}
}

func TestSampleAtReplicatesChroma(t *testing.T) {
	img := New(image.Rect(0, 0, 4, 4), image.YCbCrSubsampleRatio420)
	planeSet(img.Cb, 1, 0, 0x1234)
	planeSet(img.Cr, 1, 0, 0x4321)

	// Chroma sample (1,0) covers the luma block x in [2,4), y in [0,2).
	for _, pt := range []image.Point{{2, 0}, {3, 0}, {2, 1}, {3, 1}} {
		_, cb, cr := img.SampleAt(pt.X, pt.Y)
		if cb != 0x1234 || cr != 0x4321 {
			t.Errorf("SampleAt(%d, %d) chroma = %#x, %#x", pt.X, pt.Y, cb, cr)
		}
	}
	if _, cb, _ := img.SampleAt(0, 0); cb != 0 {
		t.Errorf("SampleAt(0, 0) cb = %#x, want 0", cb)
	}
}

func TestAtNarrows(t *testing.T) {
	img := New(image.Rect(0, 0, 2, 2), image.YCbCrSubsampleRatio444)
	planeSet(img.Y, 1, 1, 0x80*0x101)
	planeSet(img.Cb, 1, 1, 0x20*0x101)
	planeSet(img.Cr, 1, 1, 0xe0*0x101)

	got := img.At(1, 1).(color.YCbCr)
	want := color.YCbCr{Y: 0x80, Cb: 0x20, Cr: 0xe0}
	if got != want {
		t.Errorf("At(1, 1) = %+v, want %+v", got, want)
	}
	if out := img.At(5, 5).(color.YCbCr); out != (color.YCbCr{}) {
		t.Errorf("At out of bounds = %+v", out)
	}
}

func TestFromImageStdYCbCr(t *testing.T) {
	src := image.NewYCbCr(image.Rect(0, 0, 4, 2), image.YCbCrSubsampleRatio420)
	for i := range src.Y {
		src.Y[i] = uint8(16 + i)
	}
	for i := range src.Cb {
		src.Cb[i] = uint8(0x40 + i)
		src.Cr[i] = uint8(0xc0 + i)
	}

	got := FromImage(src)
	if got.SubsampleRatio != image.YCbCrSubsampleRatio444 {
		t.Fatalf("ratio = %v, want 4:4:4", got.SubsampleRatio)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			yy, cb, cr := got.SampleAt(x, y)
			wantY := uint16(src.Y[src.YOffset(x, y)]) * 0x101
			wantCb := uint16(src.Cb[src.COffset(x, y)]) * 0x101
			wantCr := uint16(src.Cr[src.COffset(x, y)]) * 0x101
			if yy != wantY || cb != wantCb || cr != wantCr {
				t.Errorf("(%d,%d) = %04x %04x %04x, want %04x %04x %04x",
					x, y, yy, cb, cr, wantY, wantCb, wantCr)
			}
		}
	}
}

func TestFromImagePassesThrough444(t *testing.T) {
	src := New(image.Rect(0, 0, 2, 2), image.YCbCrSubsampleRatio444)
	if got := FromImage(src); got != src {
		t.Error("4:4:4 input should pass through")
	}
}

func TestFromImageExpandsSubsampled(t *testing.T) {
	src := New(image.Rect(0, 0, 4, 2), image.YCbCrSubsampleRatio422)
	planeSet(src.Cb, 0, 0, 0x1000)
	planeSet(src.Cb, 1, 0, 0x2000)

	got := FromImage(src)
	if got == src {
		t.Fatal("subsampled input must be expanded")
	}
	for x, want := range []uint16{0x1000, 0x1000, 0x2000, 0x2000} {
		if _, cb, _ := got.SampleAt(x, 0); cb != want {
			t.Errorf("cb at %d = %#x, want %#x", x, cb, want)
		}
	}
}

func TestFromImageGrayIsNeutral(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff})
	src.Set(1, 0, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})

	got := FromImage(src)
	yy, cb, cr := got.SampleAt(0, 0)
	if yy != 0x55*0x101 || cb != 0x8000 || cr != 0x8000 {
		t.Errorf("gray pixel = %04x %04x %04x, want 5555 8000 8000", yy, cb, cr)
	}
	yy, cb, cr = got.SampleAt(1, 0)
	if yy != 0xffff || cb != 0x8000 || cr != 0x8000 {
		t.Errorf("white pixel = %04x %04x %04x, want ffff 8000 8000", yy, cb, cr)
	}
}

func TestRGBToYCbCr16Extremes(t *testing.T) {
	if yy, _, cr := rgbToYCbCr16(0xffff, 0, 0); yy == 0 || cr <= 0x8000 {
		t.Errorf("red = y %#x cr %#x", yy, cr)
	}
	if _, cb, _ := rgbToYCbCr16(0, 0, 0xffff); cb != 0xffff {
		t.Errorf("blue cb = %#x, want clamp to 0xffff", cb)
	}
	if yy, cb, cr := rgbToYCbCr16(0, 0, 0); yy != 0 || cb != 0x8000 || cr != 0x8000 {
		t.Errorf("black = %04x %04x %04x", yy, cb, cr)
	}
}

func TestYCbCrRoundsBack(t *testing.T) {
	img := New(image.Rect(0, 0, 4, 2), image.YCbCrSubsampleRatio420)
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			planeSet(img.Y, x, y, uint16(10*(y*4+x))*0x101)
		}
	}
	planeSet(img.Cb, 0, 0, 0x40*0x101)
	planeSet(img.Cb, 1, 0, 0x50*0x101)
	planeSet(img.Cr, 0, 0, 0xa0*0x101)
	planeSet(img.Cr, 1, 0, 0xb0*0x101)

	out := img.YCbCr()
	if out.SubsampleRatio != image.YCbCrSubsampleRatio420 {
		t.Fatalf("ratio = %v", out.SubsampleRatio)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if got, want := out.Y[out.YOffset(x, y)], uint8(10*(y*4+x)); got != want {
				t.Errorf("Y(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
	if got := out.Cb[out.COffset(0, 0)]; got != 0x40 {
		t.Errorf("Cb(0,0) = %#x, want 0x40", got)
	}
	if got := out.Cr[out.COffset(2, 0)]; got != 0xb0 {
		t.Errorf("Cr(2,0) = %#x, want 0xb0", got)
	}
}
