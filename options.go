package yuv

import (
	"fmt"
	"io"
	"os"

	"github.com/rawmedia/yuv/pkg/frame"
	"github.com/rawmedia/yuv/pkg/quantum"
)

// maxFrameBytes bounds the memory one decoded frame may claim.
const maxFrameBytes = 1 << 31

// ProgressTag names the phase a progress report belongs to.
type ProgressTag string

const (
	// TagLoadImage and TagSaveImage report scanline progress within one
	// frame: completed rows out of the frame's total.
	TagLoadImage ProgressTag = "load/image"
	TagSaveImage ProgressTag = "save/image"

	// TagLoadSequence and TagSaveSequence report whole frames. A negative
	// total means the frame count is not known up front.
	TagLoadSequence ProgressTag = "load/sequence"
	TagSaveSequence ProgressTag = "save/sequence"
)

// ProgressFunc observes codec progress. Returning false cancels the
// operation; the codec then fails with ErrCanceled.
type ProgressFunc func(tag ProgressTag, frame int, completed, total int64) bool

// FS opens and creates named streams. Partition-interlaced images read and
// write one stream per channel through it.
type FS interface {
	Open(name string) (io.ReadCloser, error)
	Create(name string) (io.WriteCloser, error)
}

type osFS struct{}

func (osFS) Open(name string) (io.ReadCloser, error)    { return os.Open(name) }
func (osFS) Create(name string) (io.WriteCloser, error) { return os.Create(name) }

// Options configures a Decoder or an Encoder.
type Options struct {
	// Columns and Rows declare the full resolution luma geometry. Both are
	// mandatory for decoding; an Encoder takes geometry from its frames.
	Columns int
	Rows    int

	// Depth is the sample bit depth. Samples occupy one byte on the stream
	// through 8 bits and two big-endian bytes above. Zero means 8.
	Depth int

	// Interlace declares the stream arrangement. The effective layout also
	// depends on the vertical sampling factor; see frame.ResolveLayout.
	Interlace frame.Interlace

	// SamplingFactor is the chroma subsampling ratio as "H" or "H:V", each
	// axis 1 or 2. Empty means "2:2".
	SamplingFactor string

	// Offset is a byte count to discard before the first frame of a
	// single-stream decode.
	Offset int64

	// Scene numbers the first frame; NumberScenes, when positive, stops a
	// decode after frame index Scene+NumberScenes-1.
	Scene        int
	NumberScenes int

	// Adjoin lets Encode write every supplied frame instead of only the
	// first.
	Adjoin bool

	// Progress, when non-nil, is invoked once per scanline and once per
	// frame.
	Progress ProgressFunc

	// FS resolves named streams. Nil means the operating system's files.
	FS FS
}

// config is an Options value validated and resolved for one codec instance.
type config struct {
	columns, rows             int
	depth                     int
	sampleWidth               int
	factor                    frame.SamplingFactor
	layout                    frame.Layout
	chromaColumns, chromaRows int

	offset       int64
	scene        int
	numberScenes int
	adjoin       bool
	progress     ProgressFunc
	fs           FS
}

func (o Options) resolve() (*config, error) {
	factor, err := frame.ParseSamplingFactor(o.SamplingFactor)
	if err != nil {
		return nil, err
	}
	depth := o.Depth
	if depth <= 0 {
		depth = 8
	}

	cfg := &config{
		columns:      o.Columns,
		rows:         o.Rows,
		depth:        depth,
		sampleWidth:  quantum.WidthForDepth(depth),
		factor:       factor,
		layout:       frame.ResolveLayout(o.Interlace, factor.Vertical),
		offset:       o.Offset,
		scene:        o.Scene,
		numberScenes: o.NumberScenes,
		adjoin:       o.Adjoin,
		progress:     o.Progress,
		fs:           o.FS,
	}
	if cfg.fs == nil {
		cfg.fs = osFS{}
	}
	return cfg, nil
}

// resolveDecode additionally requires the declared geometry a raw stream
// cannot supply itself.
func (o Options) resolveDecode() (*config, error) {
	if o.Columns <= 0 || o.Rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrMissingDimensions, o.Columns, o.Rows)
	}
	cfg, err := o.resolve()
	if err != nil {
		return nil, err
	}
	if need := 2 * uint64(cfg.sampleWidth) * uint64(cfg.columns) * uint64(cfg.rows); need > maxFrameBytes {
		return nil, fmt.Errorf("%w: %dx%d at depth %d", ErrResourceLimit, cfg.columns, cfg.rows, cfg.depth)
	}
	cfg.chromaColumns = max(1, cfg.columns/cfg.factor.Horizontal)
	cfg.chromaRows = max(1, cfg.rows/cfg.factor.Vertical)
	return cfg, nil
}

// step reports progress and returns false when the callback cancels.
func (c *config) step(tag ProgressTag, frameIdx int, completed, total int64) bool {
	if c.progress == nil {
		return true
	}
	return c.progress(tag, frameIdx, completed, total)
}
