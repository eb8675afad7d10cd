package yuv

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/rawmedia/yuv/pkg/frame"
)

// source reads scanlines for one decode. At most one substream is open at a
// time; partition-interlaced layouts switch substreams between planes.
// Once any read comes up short the source stays at end of stream for the
// rest of the decode and hands out zero filled rows.
type source struct {
	reader io.Reader
	closer io.Closer

	fs   FS
	base string // partition base name; empty for single-stream decodes

	eof    bool
	peeked []byte
}

func newStreamSource(r io.Reader) *source {
	return &source{reader: r}
}

func newPartitionSource(fs FS, base string) *source {
	return &source{fs: fs, base: base}
}

// openChannel switches to the named substream of one channel, closing the
// previous one.
func (s *source) openChannel(c frame.Channel) error {
	if err := s.Close(); err != nil {
		return err
	}
	name := frame.PartitionName(s.base, c)
	rc, err := s.fs.Open(name)
	if err != nil {
		return fmt.Errorf("yuv: open %s: %w", name, err)
	}
	s.reader = rc
	s.closer = rc
	return nil
}

// discard skips n bytes of the current substream.
func (s *source) discard(n int64) error {
	skipped, err := io.CopyN(io.Discard, s.reader, n)
	if skipped < n {
		return fmt.Errorf("yuv: discarding %d byte offset: %w", n, ErrUnexpectedEOF)
	}
	if err != nil {
		return fmt.Errorf("yuv: discarding %d byte offset: %w", n, err)
	}
	return nil
}

// readRow fills buf with the next scanline. A short read marks the source
// ended and zero fills the remainder; only transport failures are returned
// as errors.
func (s *source) readRow(buf []byte) error {
	if s.peeked != nil {
		n := copy(buf, s.peeked)
		s.peeked = nil
		for i := n; i < len(buf); i++ {
			buf[i] = 0
		}
		return nil
	}
	if s.eof {
		for i := range buf {
			buf[i] = 0
		}
		return nil
	}
	n, err := io.ReadFull(s.reader, buf)
	if n < len(buf) {
		s.eof = true
		for i := n; i < len(buf); i++ {
			buf[i] = 0
		}
	}
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("yuv: read: %w", err)
	}
	return nil
}

// peekRow probes for another frame by reading one scanline ahead. It
// reports false on a clean end of stream; otherwise the buffered bytes are
// handed back by the next readRow.
func (s *source) peekRow(n int) (bool, error) {
	if s.peeked != nil {
		return true, nil
	}
	if s.eof {
		return false, nil
	}
	buf := make([]byte, n)
	got, err := io.ReadFull(s.reader, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false, fmt.Errorf("yuv: read: %w", err)
	}
	if got == 0 {
		return false, nil
	}
	if got < n {
		s.eof = true
	}
	s.peeked = buf[:got]
	return true, nil
}

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.reader = nil
	s.closer = nil
	return err
}

// sink writes scanlines for one encode, buffered. Partition-interlaced
// layouts switch substreams between planes.
type sink struct {
	w      *bufio.Writer
	closer io.Closer

	fs   FS
	base string
}

func newStreamSink(w io.Writer) *sink {
	return &sink{w: bufio.NewWriter(w)}
}

func newFileSink(fs FS, name string) (*sink, error) {
	wc, err := fs.Create(name)
	if err != nil {
		return nil, fmt.Errorf("yuv: create %s: %w", name, err)
	}
	return &sink{w: bufio.NewWriter(wc), closer: wc}, nil
}

func newPartitionSink(fs FS, base string) *sink {
	return &sink{fs: fs, base: base}
}

// openChannel switches to the named substream of one channel, flushing and
// closing the previous one.
func (k *sink) openChannel(c frame.Channel) error {
	if err := k.closeCurrent(); err != nil {
		return err
	}
	name := frame.PartitionName(k.base, c)
	wc, err := k.fs.Create(name)
	if err != nil {
		return fmt.Errorf("yuv: create %s: %w", name, err)
	}
	k.w = bufio.NewWriter(wc)
	k.closer = wc
	return nil
}

func (k *sink) write(p []byte) error {
	if _, err := k.w.Write(p); err != nil {
		return fmt.Errorf("yuv: write: %w", err)
	}
	return nil
}

func (k *sink) closeCurrent() error {
	if k.w == nil {
		return nil
	}
	if err := k.w.Flush(); err != nil {
		return fmt.Errorf("yuv: write: %w", err)
	}
	if k.closer != nil {
		if err := k.closer.Close(); err != nil {
			return fmt.Errorf("yuv: close: %w", err)
		}
		k.closer = nil
	}
	if k.base != "" {
		k.w = nil
	}
	return nil
}

// finish flushes and closes whatever substream is still open.
func (k *sink) finish() error {
	return k.closeCurrent()
}

// abort closes any open substream without surfacing flush failures; the
// encode already failed.
func (k *sink) abort() {
	if k.closer != nil {
		k.closer.Close()
		k.closer = nil
	}
	k.w = nil
}
