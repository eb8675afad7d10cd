package yuv

import (
	"fmt"
	"image"
	"io"

	"github.com/rawmedia/yuv/pkg/frame"
	"github.com/rawmedia/yuv/pkg/resample"
	"github.com/rawmedia/yuv/pkg/ycbcr"
)

// Encoder writes raw Y'CbCr image sequences laid out per one Options
// value. Frames carry their own geometry; Options.Columns and Rows are not
// consulted. Depth is pinned to 8 or 16 bits on the stream.
type Encoder struct {
	cfg *config
}

// NewEncoder validates opts and returns an Encoder.
func NewEncoder(opts Options) (*Encoder, error) {
	cfg, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	return &Encoder{cfg: cfg}, nil
}

// Encode writes frames to w. Without Options.Adjoin only the first frame
// is written. Partition-interlaced layouts write one stream per channel
// and need EncodeFile instead.
func (e *Encoder) Encode(w io.Writer, frames ...image.Image) error {
	if e.cfg.layout == frame.LayoutPartitionInterlaced {
		return fmt.Errorf("%w: use EncodeFile", ErrPartitionName)
	}
	return e.encode(newStreamSink(w), frames)
}

// EncodeFile writes frames to name through Options.FS. For
// partition-interlaced layouts name is the base the Y, U and V stream
// names derive from.
func (e *Encoder) EncodeFile(name string, frames ...image.Image) error {
	if e.cfg.layout == frame.LayoutPartitionInterlaced {
		if name == "" {
			return ErrPartitionName
		}
		return e.encode(newPartitionSink(e.cfg.fs, name), frames)
	}
	k, err := newFileSink(e.cfg.fs, name)
	if err != nil {
		return err
	}
	return e.encode(k, frames)
}

func (e *Encoder) encode(k *sink, frames []image.Image) error {
	cfg := e.cfg
	if len(frames) == 0 {
		k.abort()
		return ErrNoFrames
	}
	n := len(frames)
	if !cfg.adjoin {
		n = 1
	}
	if cfg.layout == frame.LayoutPartitionInterlaced && n > 1 {
		k.abort()
		return fmt.Errorf("%w: %d frames", ErrPartitionAdjoin, n)
	}
	for scene := 0; scene < n; scene++ {
		if err := e.encodeFrame(k, scene, frames[scene]); err != nil {
			k.abort()
			return err
		}
		if !cfg.step(TagSaveSequence, scene, int64(scene+1), int64(n)) {
			k.abort()
			return fmt.Errorf("%w: frame %d", ErrCanceled, scene)
		}
	}
	return k.finish()
}

// encodeFrame pads img to dimensions the sampling factors divide, converts
// it to the luma/chroma colorspace, downsamples the converted copy for the
// chroma planes and writes the planes in the configured layout.
func (e *Encoder) encodeFrame(k *sink, scene int, img image.Image) error {
	cfg := e.cfg
	b := img.Bounds()
	cols, rows := b.Dx(), b.Dy()
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("%w: frame %d is empty", ErrMissingDimensions, scene)
	}
	width := cols + (cols & (cfg.factor.Horizontal - 1))
	height := rows + (rows & (cfg.factor.Vertical - 1))
	if need := 2 * uint64(cfg.sampleWidth) * uint64(width) * uint64(height); need > maxFrameBytes {
		return fmt.Errorf("%w: %dx%d at depth %d", ErrResourceLimit, width, height, cfg.depth)
	}

	var full *ycbcr.Image
	if src, ok := img.(*ycbcr.Image); ok {
		full = src
		if width != cols || height != rows {
			full = resample.Planes(full, width, height, resample.FilterTriangle)
		}
		full = ycbcr.FromImage(full)
	} else if width != cols || height != rows {
		full = ycbcr.FromImage(resample.RGBA64(img, width, height, resample.FilterTriangle))
	} else {
		full = ycbcr.FromImage(img)
	}
	chroma := resample.Planes(full,
		width/cfg.factor.Horizontal, height/cfg.factor.Vertical, resample.FilterTriangle)

	row := make([]byte, frame.RowSize(cfg.layout, width, cfg.sampleWidth))
	chromaRows := chroma.Cb.Rect.Dy()
	total := int64(height)
	if cfg.layout != frame.LayoutNonInterlaced {
		total += 2 * int64(chromaRows)
	}
	var done int64
	step := func() bool {
		done++
		return cfg.step(TagSaveImage, scene, done, total)
	}
	canceled := func() error {
		return fmt.Errorf("%w: frame %d", ErrCanceled, scene)
	}

	switch cfg.layout {
	case frame.LayoutNonInterlaced:
		for y := 0; y < height; y++ {
			frame.WriteInterleavedRow(full.Y, chroma.Cb, chroma.Cr, cfg.sampleWidth, y, row)
			if err := k.write(row); err != nil {
				return err
			}
			if !step() {
				return canceled()
			}
		}

	default:
		if cfg.layout == frame.LayoutPartitionInterlaced {
			if err := k.openChannel(frame.ChannelY); err != nil {
				return err
			}
		}
		for y := 0; y < height; y++ {
			frame.WritePlaneRow(full.Y, cfg.sampleWidth, y, row)
			if err := k.write(row); err != nil {
				return err
			}
			if !step() {
				return canceled()
			}
		}
		chromaRow := row[:frame.ChromaRowSize(chroma.Cb.Rect.Dx(), cfg.sampleWidth)]
		for _, plane := range []struct {
			ch  frame.Channel
			src *image.Gray16
		}{{frame.ChannelU, chroma.Cb}, {frame.ChannelV, chroma.Cr}} {
			if cfg.layout == frame.LayoutPartitionInterlaced {
				if err := k.openChannel(plane.ch); err != nil {
					return err
				}
			}
			for y := 0; y < chromaRows; y++ {
				frame.WritePlaneRow(plane.src, cfg.sampleWidth, y, chromaRow)
				if err := k.write(chromaRow); err != nil {
					return err
				}
				if !step() {
					return canceled()
				}
			}
		}
	}

	logger.Debugf("frame %d: %dx%d %v %v depth %d",
		scene, width, height, cfg.layout, cfg.factor, cfg.depth)
	return nil
}
