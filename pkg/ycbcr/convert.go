package ycbcr

import (
	"image"

	"github.com/rawmedia/yuv/pkg/quantum"
)

func clamp16(v int64) uint16 {
	if v < 0 {
		return 0
	}
	if v > 0xffff {
		return 0xffff
	}
	return uint16(v)
}

// rgbToYCbCr16 is color.RGBToYCbCr widened to 16 bit samples. Equal
// channels map to neutral chroma 0x8000 exactly.
func rgbToYCbCr16(r, g, b uint16) (uint16, uint16, uint16) {
	r1, g1, b1 := int64(r), int64(g), int64(b)
	yy := (19595*r1 + 38470*g1 + 7471*b1 + 1<<15) >> 16
	cb := ((-11056*r1 - 21712*g1 + 32768*b1 + 1<<15) >> 16) + 1<<15
	cr := ((32768*r1 - 27440*g1 - 5328*b1 + 1<<15) >> 16) + 1<<15
	return clamp16(yy), clamp16(cb), clamp16(cr)
}

func fromStd(s *image.YCbCr) *Image {
	out := New(s.Rect, image.YCbCrSubsampleRatio444)
	b := s.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			ci := s.COffset(x, y)
			planeSet(out.Y, x, y, quantum.FromByte(s.Y[s.YOffset(x, y)]))
			planeSet(out.Cb, x, y, quantum.FromByte(s.Cb[ci]))
			planeSet(out.Cr, x, y, quantum.FromByte(s.Cr[ci]))
		}
	}
	return out
}

func expand(s *Image) *Image {
	out := New(s.Rect, image.YCbCrSubsampleRatio444)
	b := s.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			yy, cb, cr := s.SampleAt(x, y)
			planeSet(out.Y, x, y, yy)
			planeSet(out.Cb, x, y, cb)
			planeSet(out.Cr, x, y, cr)
		}
	}
	return out
}

// FromImage converts src to a full resolution 4:4:4 Image. Y'CbCr sources
// keep their sample values, widened to 16 bit; subsampled chroma is
// replicated over its block. Anything else goes through the standard
// library's RGB conversion coefficients. A 4:4:4 Image passes through
// unchanged.
func FromImage(src image.Image) *Image {
	switch s := src.(type) {
	case *Image:
		if s.SubsampleRatio == image.YCbCrSubsampleRatio444 {
			return s
		}
		return expand(s)
	case *image.YCbCr:
		return fromStd(s)
	case *image.NYCbCrA:
		return fromStd(&s.YCbCr)
	case *image.RGBA64:
		out := New(s.Rect, image.YCbCrSubsampleRatio444)
		b := s.Rect
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := s.RGBA64At(x, y)
				yy, cb, cr := rgbToYCbCr16(c.R, c.G, c.B)
				planeSet(out.Y, x, y, yy)
				planeSet(out.Cb, x, y, cb)
				planeSet(out.Cr, x, y, cr)
			}
		}
		return out
	default:
		b := src.Bounds()
		out := New(b, image.YCbCrSubsampleRatio444)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				r, g, bb, _ := src.At(x, y).RGBA()
				yy, cb, cr := rgbToYCbCr16(uint16(r), uint16(g), uint16(bb))
				planeSet(out.Y, x, y, yy)
				planeSet(out.Cb, x, y, cb)
				planeSet(out.Cr, x, y, cr)
			}
		}
		return out
	}
}

// YCbCr renders the image as a standard library 8 bit image at the same
// subsample ratio, rounding each sample to its byte form.
func (p *Image) YCbCr() *image.YCbCr {
	out := image.NewYCbCr(p.Rect, p.SubsampleRatio)
	h, v := divisors(p.SubsampleRatio)
	b := p.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Y[out.YOffset(x, y)] = quantum.ToByte(planeAt(p.Y, x, y))
			ci := out.COffset(x, y)
			cx := p.Cb.Rect.Min.X + (x-b.Min.X)/h
			cy := p.Cb.Rect.Min.Y + (y-b.Min.Y)/v
			out.Cb[ci] = quantum.ToByte(planeAt(p.Cb, cx, cy))
			out.Cr[ci] = quantum.ToByte(planeAt(p.Cr, cx, cy))
		}
	}
	return out
}
