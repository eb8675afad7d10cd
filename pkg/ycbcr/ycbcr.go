// Package ycbcr provides an in-memory Y'CbCr image with 16 bit samples held
// in separate planes, plus conversions to and from the standard library
// image types.
package ycbcr

import (
	"encoding/binary"
	"image"
	"image/color"

	"github.com/rawmedia/yuv/pkg/quantum"
)

// Image is a Y'CbCr image backed by three Gray16 planes. Y covers the full
// bounds; Cb and Cr may be stored at the reduced resolution given by
// SubsampleRatio. It implements image.Image.
type Image struct {
	// Y holds the full resolution luma plane.
	Y *image.Gray16
	// Cb and Cr hold the chroma planes, subsampled per SubsampleRatio.
	Cb *image.Gray16
	Cr *image.Gray16
	// Rect is the image's bounds.
	Rect image.Rectangle
	// SubsampleRatio is the chroma subsample ratio.
	SubsampleRatio image.YCbCrSubsampleRatio
}

// SubsampleRatio maps per-axis chroma divisors to the standard library
// constant: {1,1} is 4:4:4, {2,1} is 4:2:2, {2,2} is 4:2:0 and {1,2} is
// 4:4:0.
func SubsampleRatio(horizontal, vertical int) image.YCbCrSubsampleRatio {
	switch {
	case horizontal == 2 && vertical == 1:
		return image.YCbCrSubsampleRatio422
	case horizontal == 2 && vertical == 2:
		return image.YCbCrSubsampleRatio420
	case horizontal == 1 && vertical == 2:
		return image.YCbCrSubsampleRatio440
	default:
		return image.YCbCrSubsampleRatio444
	}
}

func divisors(sr image.YCbCrSubsampleRatio) (h, v int) {
	switch sr {
	case image.YCbCrSubsampleRatio422:
		return 2, 1
	case image.YCbCrSubsampleRatio420:
		return 2, 2
	case image.YCbCrSubsampleRatio440:
		return 1, 2
	case image.YCbCrSubsampleRatio411:
		return 4, 1
	case image.YCbCrSubsampleRatio410:
		return 4, 2
	default:
		return 1, 1
	}
}

func chromaRect(r image.Rectangle, sr image.YCbCrSubsampleRatio) image.Rectangle {
	h, v := divisors(sr)
	w, ht := r.Dx()/h, r.Dy()/v
	if w < 1 && r.Dx() > 0 {
		w = 1
	}
	if ht < 1 && r.Dy() > 0 {
		ht = 1
	}
	min := image.Point{X: r.Min.X / h, Y: r.Min.Y / v}
	return image.Rectangle{Min: min, Max: image.Point{X: min.X + w, Y: min.Y + ht}}
}

// New allocates an Image with bounds r and the given subsample ratio. The
// chroma planes truncate fractional sizes, never below one sample.
func New(r image.Rectangle, sr image.YCbCrSubsampleRatio) *Image {
	cr := chromaRect(r, sr)
	return &Image{
		Y:              image.NewGray16(r),
		Cb:             image.NewGray16(cr),
		Cr:             image.NewGray16(cr),
		Rect:           r,
		SubsampleRatio: sr,
	}
}

func planeAt(p *image.Gray16, x, y int) uint16 {
	if x < p.Rect.Min.X {
		x = p.Rect.Min.X
	} else if x >= p.Rect.Max.X {
		x = p.Rect.Max.X - 1
	}
	if y < p.Rect.Min.Y {
		y = p.Rect.Min.Y
	} else if y >= p.Rect.Max.Y {
		y = p.Rect.Max.Y - 1
	}
	return binary.BigEndian.Uint16(p.Pix[p.PixOffset(x, y):])
}

func planeSet(p *image.Gray16, x, y int, q uint16) {
	binary.BigEndian.PutUint16(p.Pix[p.PixOffset(x, y):], q)
}

// SampleAt returns the full precision samples at (x, y). Subsampled chroma
// repeats over its block of luma samples.
func (p *Image) SampleAt(x, y int) (yy, cb, cr uint16) {
	h, v := divisors(p.SubsampleRatio)
	cx := p.Cb.Rect.Min.X + (x-p.Rect.Min.X)/h
	cy := p.Cb.Rect.Min.Y + (y-p.Rect.Min.Y)/v
	return planeAt(p.Y, x, y), planeAt(p.Cb, cx, cy), planeAt(p.Cr, cx, cy)
}

// ColorModel returns color.YCbCrModel.
func (p *Image) ColorModel() color.Model { return color.YCbCrModel }

// Bounds returns the image's bounds.
func (p *Image) Bounds() image.Rectangle { return p.Rect }

// At returns the pixel at (x, y), narrowed to 8 bit Y'CbCr.
func (p *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return color.YCbCr{}
	}
	yy, cb, cr := p.SampleAt(x, y)
	return color.YCbCr{
		Y:  quantum.ToByte(yy),
		Cb: quantum.ToByte(cb),
		Cr: quantum.ToByte(cr),
	}
}

// Opaque always reports true.
func (p *Image) Opaque() bool { return true }
