// Package yuv reads and writes raw CCIR 601 Y'CbCr rasters. The streams
// carry no header: the caller declares geometry, sample depth, chroma
// subsampling and interlacing through Options, and the codec moves the
// planes byte for byte.
package yuv

import (
	"image"
	"io"

	"github.com/google/uuid"

	"github.com/rawmedia/yuv/internal/logging"
	"github.com/rawmedia/yuv/pkg/ycbcr"
)

var logger = logging.NewLogger("yuv")

// Sequence is the ordered list of frames decoded from one stream.
type Sequence struct {
	id     string
	frames []*ycbcr.Image
}

func newSequence() *Sequence {
	return &Sequence{id: uuid.NewString()}
}

// ID returns an identifier unique to this decode.
func (s *Sequence) ID() string { return s.id }

// Len returns the number of decoded frames.
func (s *Sequence) Len() int { return len(s.frames) }

// Frames returns the decoded frames in stream order. Every frame is full
// resolution 4:4:4; subsampled chroma has been interpolated back up.
func (s *Sequence) Frames() []*ycbcr.Image { return s.frames }

// Reader hands out frames one at a time. The release callback is a no-op
// for decoded sequences; it keeps the shape of sources that recycle frame
// buffers.
type Reader interface {
	Read() (img image.Image, release func(), err error)
}

// Reader returns a Reader yielding each frame once, then io.EOF.
func (s *Sequence) Reader() Reader {
	return &sequenceReader{seq: s}
}

type sequenceReader struct {
	seq  *Sequence
	next int
}

func (r *sequenceReader) Read() (image.Image, func(), error) {
	if r.next >= len(r.seq.frames) {
		return nil, func() {}, io.EOF
	}
	img := r.seq.frames[r.next]
	r.next++
	return img, func() {}, nil
}
