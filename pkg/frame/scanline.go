package frame

import (
	"encoding/binary"
	"image"

	"github.com/rawmedia/yuv/pkg/quantum"
)

// sampleAt decodes the sample at byte offset p, or 0 past the end of row.
func sampleAt(row []byte, p, sampleWidth int) uint16 {
	if p+sampleWidth > len(row) {
		return 0
	}
	return quantum.Decode(row[p:], sampleWidth)
}

// putSampleAt encodes q at byte offset p, dropping samples past the end of
// row. Odd-width images overrun their last two-column group on both sides of
// the stream; the guards keep the row at its declared size.
func putSampleAt(row []byte, p int, q uint16, sampleWidth int) {
	if p+sampleWidth > len(row) {
		return
	}
	quantum.Encode(row[p:], q, sampleWidth)
}

// ReadInterleavedRow scatters one U, Y0, V, Y1 scanline into row y of the
// luma and chroma planes. The chroma planes hold one column per two-column
// group.
func ReadInterleavedRow(row []byte, sampleWidth, y int, luma, cb, cr *image.Gray16) {
	w := luma.Rect.Dx()
	cw := cb.Rect.Dx()
	lo := luma.PixOffset(luma.Rect.Min.X, luma.Rect.Min.Y+y)
	co := cb.PixOffset(cb.Rect.Min.X, cb.Rect.Min.Y+y)
	p := 0
	for x := 0; x < w; x += 2 {
		u := sampleAt(row, p, sampleWidth)
		y0 := sampleAt(row, p+sampleWidth, sampleWidth)
		v := sampleAt(row, p+2*sampleWidth, sampleWidth)
		y1 := sampleAt(row, p+3*sampleWidth, sampleWidth)
		p += 4 * sampleWidth

		if cx := x / 2; cx < cw {
			binary.BigEndian.PutUint16(cb.Pix[co+2*cx:], u)
			binary.BigEndian.PutUint16(cr.Pix[co+2*cx:], v)
		}
		binary.BigEndian.PutUint16(luma.Pix[lo+2*x:], y0)
		if x+1 < w {
			binary.BigEndian.PutUint16(luma.Pix[lo+2*(x+1):], y1)
		}
	}
}

// WriteInterleavedRow gathers row y of the luma and chroma planes into one
// U, Y0, V, Y1 scanline. The chroma planes must cover row y; columns beyond
// their width repeat the last chroma sample.
func WriteInterleavedRow(luma, cb, cr *image.Gray16, sampleWidth, y int, row []byte) {
	w := luma.Rect.Dx()
	cw := cb.Rect.Dx()
	lo := luma.PixOffset(luma.Rect.Min.X, luma.Rect.Min.Y+y)
	co := cb.PixOffset(cb.Rect.Min.X, cb.Rect.Min.Y+y)
	p := 0
	for x := 0; x < w; x += 2 {
		cx := x / 2
		if cx >= cw {
			cx = cw - 1
		}
		x1 := x + 1
		if x1 >= w {
			x1 = w - 1
		}
		putSampleAt(row, p, binary.BigEndian.Uint16(cb.Pix[co+2*cx:]), sampleWidth)
		putSampleAt(row, p+sampleWidth, binary.BigEndian.Uint16(luma.Pix[lo+2*x:]), sampleWidth)
		putSampleAt(row, p+2*sampleWidth, binary.BigEndian.Uint16(cr.Pix[co+2*cx:]), sampleWidth)
		putSampleAt(row, p+3*sampleWidth, binary.BigEndian.Uint16(luma.Pix[lo+2*x1:]), sampleWidth)
		p += 4 * sampleWidth
	}
}

// ReadPlaneRow fills row y of plane from one plane-interlaced scanline.
func ReadPlaneRow(row []byte, sampleWidth, y int, plane *image.Gray16) {
	w := plane.Rect.Dx()
	o := plane.PixOffset(plane.Rect.Min.X, plane.Rect.Min.Y+y)
	for x := 0; x < w; x++ {
		q := sampleAt(row, x*sampleWidth, sampleWidth)
		binary.BigEndian.PutUint16(plane.Pix[o+2*x:], q)
	}
}

// WritePlaneRow renders row y of plane as one plane-interlaced scanline.
func WritePlaneRow(plane *image.Gray16, sampleWidth, y int, row []byte) {
	w := plane.Rect.Dx()
	o := plane.PixOffset(plane.Rect.Min.X, plane.Rect.Min.Y+y)
	for x := 0; x < w; x++ {
		putSampleAt(row, x*sampleWidth, binary.BigEndian.Uint16(plane.Pix[o+2*x:]), sampleWidth)
	}
}
