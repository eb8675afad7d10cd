package yuv

import (
	"fmt"
	"image"
	"io"

	"github.com/rawmedia/yuv/pkg/frame"
	"github.com/rawmedia/yuv/pkg/resample"
	"github.com/rawmedia/yuv/pkg/ycbcr"
)

// Decoder reads raw Y'CbCr image sequences laid out per one Options value.
type Decoder struct {
	cfg *config
}

// NewDecoder validates opts and returns a Decoder.
func NewDecoder(opts Options) (*Decoder, error) {
	cfg, err := opts.resolveDecode()
	if err != nil {
		return nil, err
	}
	return &Decoder{cfg: cfg}, nil
}

// Decode reads every frame from r. Partition-interlaced layouts read one
// stream per channel and need DecodeFile instead.
//
// When decoding fails partway, the returned sequence still holds every
// frame completed before the error.
func (d *Decoder) Decode(r io.Reader) (*Sequence, error) {
	if d.cfg.layout == frame.LayoutPartitionInterlaced {
		return nil, fmt.Errorf("%w: use DecodeFile", ErrPartitionName)
	}
	return d.decode(newStreamSource(r))
}

// DecodeFile opens name through Options.FS and reads every frame. For
// partition-interlaced layouts name is the base the Y, U and V stream
// names derive from.
func (d *Decoder) DecodeFile(name string) (*Sequence, error) {
	if d.cfg.layout == frame.LayoutPartitionInterlaced {
		if name == "" {
			return nil, ErrPartitionName
		}
		return d.decode(newPartitionSource(d.cfg.fs, name))
	}
	rc, err := d.cfg.fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("yuv: open %s: %w", name, err)
	}
	src := newStreamSource(rc)
	src.closer = rc
	return d.decode(src)
}

func (d *Decoder) decode(src *source) (*Sequence, error) {
	defer src.Close()
	cfg := d.cfg
	seq := newSequence()

	if cfg.offset > 0 && cfg.layout != frame.LayoutPartitionInterlaced {
		if err := src.discard(cfg.offset); err != nil {
			return seq, err
		}
	}

	rowLen := frame.RowSize(cfg.layout, cfg.columns, cfg.sampleWidth)
	row := make([]byte, rowLen)

	for scene := cfg.scene; ; scene++ {
		img, err := d.decodeFrame(src, scene, row)
		if err != nil {
			return seq, err
		}
		if src.eof {
			// The stream ended inside this frame. Keep the complete
			// frames and report the truncation.
			return seq, fmt.Errorf("%w: frame %d", ErrUnexpectedEOF, scene)
		}
		seq.frames = append(seq.frames, img)
		logger.Debugf("frame %d: %dx%d %v %v depth %d",
			scene, cfg.columns, cfg.rows, cfg.layout, cfg.factor, cfg.depth)
		if !cfg.step(TagLoadSequence, scene, int64(seq.Len()), -1) {
			return seq, fmt.Errorf("%w: frame %d", ErrCanceled, scene)
		}
		if cfg.numberScenes > 0 && scene >= cfg.scene+cfg.numberScenes-1 {
			break
		}
		more, err := src.peekRow(rowLen)
		if err != nil {
			return seq, err
		}
		if !more {
			break
		}
	}
	return seq, nil
}

// decodeFrame reads one frame's planes and merges them into a full
// resolution image. Subsampled chroma comes back up through the triangle
// filter.
func (d *Decoder) decodeFrame(src *source, scene int, row []byte) (*ycbcr.Image, error) {
	cfg := d.cfg
	luma := image.NewGray16(image.Rect(0, 0, cfg.columns, cfg.rows))
	chromaRect := image.Rect(0, 0, cfg.chromaColumns, cfg.chromaRows)
	cb := image.NewGray16(chromaRect)
	cr := image.NewGray16(chromaRect)

	total := int64(cfg.rows)
	if cfg.layout != frame.LayoutNonInterlaced {
		total += 2 * int64(cfg.chromaRows)
	}
	var done int64
	step := func() bool {
		done++
		return cfg.step(TagLoadImage, scene, done, total)
	}
	canceled := func() error {
		return fmt.Errorf("%w: frame %d", ErrCanceled, scene)
	}

	switch cfg.layout {
	case frame.LayoutNonInterlaced:
		for y := 0; y < cfg.rows; y++ {
			if err := src.readRow(row); err != nil {
				return nil, err
			}
			frame.ReadInterleavedRow(row, cfg.sampleWidth, y, luma, cb, cr)
			if !step() {
				return nil, canceled()
			}
		}

	default:
		if cfg.layout == frame.LayoutPartitionInterlaced {
			if err := src.openChannel(frame.ChannelY); err != nil {
				return nil, err
			}
		}
		for y := 0; y < cfg.rows; y++ {
			if err := src.readRow(row); err != nil {
				return nil, err
			}
			frame.ReadPlaneRow(row, cfg.sampleWidth, y, luma)
			if !step() {
				return nil, canceled()
			}
		}
		chromaRow := row[:frame.ChromaRowSize(cfg.chromaColumns, cfg.sampleWidth)]
		for _, plane := range []struct {
			ch  frame.Channel
			dst *image.Gray16
		}{{frame.ChannelU, cb}, {frame.ChannelV, cr}} {
			if cfg.layout == frame.LayoutPartitionInterlaced {
				if err := src.openChannel(plane.ch); err != nil {
					return nil, err
				}
			}
			for y := 0; y < cfg.chromaRows; y++ {
				if err := src.readRow(chromaRow); err != nil {
					return nil, err
				}
				frame.ReadPlaneRow(chromaRow, cfg.sampleWidth, y, plane.dst)
				if !step() {
					return nil, canceled()
				}
			}
		}
	}

	return &ycbcr.Image{
		Y:              luma,
		Cb:             resample.Gray16(cb, cfg.columns, cfg.rows, resample.FilterTriangle),
		Cr:             resample.Gray16(cr, cfg.columns, cfg.rows, resample.FilterTriangle),
		Rect:           luma.Rect,
		SubsampleRatio: image.YCbCrSubsampleRatio444,
	}, nil
}
