// Package resample scales image planes with the kernels from
// golang.org/x/image/draw.
package resample

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/rawmedia/yuv/pkg/ycbcr"
)

// Filter represents a resampling kernel.
type Filter draw.Scaler

// List of resampling kernels. FilterTriangle is the tent kernel and the
// codec default.
var (
	FilterNearestNeighbor = Filter(draw.NearestNeighbor)
	FilterApproxBiLinear  = Filter(draw.ApproxBiLinear)
	FilterTriangle        = Filter(draw.BiLinear)
	FilterCatmullRom      = Filter(draw.CatmullRom)
)

// Gray16 resamples a single plane to width x height. It returns src itself
// when the size already matches. Setting f=nil uses FilterTriangle.
func Gray16(src *image.Gray16, width, height int, f Filter) *image.Gray16 {
	if src.Rect.Dx() == width && src.Rect.Dy() == height {
		return src
	}
	if f == nil {
		f = FilterTriangle
	}
	dst := image.NewGray16(image.Rect(0, 0, width, height))
	f.Scale(dst, dst.Rect, src, src.Rect, draw.Src, nil)
	return dst
}

// Planes resamples the luma and chroma planes of img independently to a new
// image of the given size, preserving its subsample ratio. Setting f=nil
// uses FilterTriangle.
func Planes(img *ycbcr.Image, width, height int, f Filter) *ycbcr.Image {
	if f == nil {
		f = FilterTriangle
	}
	out := ycbcr.New(image.Rect(0, 0, width, height), img.SubsampleRatio)
	f.Scale(out.Y, out.Y.Rect, img.Y, img.Y.Rect, draw.Src, nil)
	f.Scale(out.Cb, out.Cb.Rect, img.Cb, img.Cb.Rect, draw.Src, nil)
	f.Scale(out.Cr, out.Cr.Rect, img.Cr, img.Cr.Rect, draw.Src, nil)
	return out
}

// RGBA64 renders src resampled to width x height at 16 bit depth. Setting
// f=nil uses FilterTriangle.
func RGBA64(src image.Image, width, height int, f Filter) *image.RGBA64 {
	if f == nil {
		f = FilterTriangle
	}
	dst := image.NewRGBA64(image.Rect(0, 0, width, height))
	f.Scale(dst, dst.Rect, src, src.Bounds(), draw.Src, nil)
	return dst
}
