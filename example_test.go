package yuv_test

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/rawmedia/yuv"
	"github.com/rawmedia/yuv/pkg/frame"
	"github.com/rawmedia/yuv/pkg/quantum"
	"github.com/rawmedia/yuv/pkg/ycbcr"
)

func Example() {
	src := ycbcr.New(image.Rect(0, 0, 4, 4), image.YCbCrSubsampleRatio420)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Y.SetGray16(x, y, color.Gray16{Y: quantum.FromByte(byte(16 * (y*4 + x)))})
		}
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.Cb.SetGray16(x, y, color.Gray16{Y: 0x8000})
			src.Cr.SetGray16(x, y, color.Gray16{Y: 0x8000})
		}
	}

	enc, err := yuv.NewEncoder(yuv.Options{Interlace: frame.InterlacePlane})
	if err != nil {
		panic(err)
	}
	var buf bytes.Buffer
	if err := enc.Encode(&buf, src); err != nil {
		panic(err)
	}
	fmt.Printf("encoded %d bytes\n", buf.Len())

	dec, err := yuv.NewDecoder(yuv.Options{Columns: 4, Rows: 4, Interlace: frame.InterlacePlane})
	if err != nil {
		panic(err)
	}
	seq, err := dec.Decode(&buf)
	if err != nil {
		panic(err)
	}
	bounds := seq.Frames()[0].Bounds()
	fmt.Printf("decoded %d frame of %dx%d\n", seq.Len(), bounds.Dx(), bounds.Dy())

	// Output:
	// encoded 24 bytes
	// decoded 1 frame of 4x4
}
