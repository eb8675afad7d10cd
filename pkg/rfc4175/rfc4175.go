// Package rfc4175 carries uncompressed 8 bit 4:2:2 video over RTP per RFC
// 4175. A frame is the byte form of non-interlaced scanlines: Cb, Y0, Cr,
// Y1 groups covering two pixels in four bytes, which is exactly the RFC's
// pgroup for that sampling.
package rfc4175

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/pion/rtp"
)

const (
	// pgroupBytes covers pgroupPixels columns at 8 bit 4:2:2 sampling.
	pgroupBytes  = 4
	pgroupPixels = 2

	headerBytes  = 2 // extended sequence number
	segmentBytes = 6 // length, line number, offset

	continuationBit = 0x8000
	fieldMask       = 0x7fff
)

var (
	// ErrShortPayload is returned when a payload ends inside its headers.
	ErrShortPayload = errors.New("rfc4175: payload shorter than its headers")

	// ErrTruncatedData is returned when a payload's data falls short of
	// the lengths its segment headers declare.
	ErrTruncatedData = errors.New("rfc4175: payload data shorter than its segment lengths")

	// ErrSegmentBounds is returned when a segment falls outside the frame
	// geometry an Assembler was built for.
	ErrSegmentBounds = errors.New("rfc4175: segment outside frame bounds")
)

var (
	_ rtp.Payloader    = (*Payloader)(nil)
	_ rtp.Depacketizer = Depacketizer{}
)

// Payloader fragments frames into RFC 4175 payloads for the pion/rtp
// packetizer.
type Payloader struct {
	// Width and Height are the frame geometry in pixels. Width must be
	// even; two pixels share one pgroup.
	Width  int
	Height int
}

func (p *Payloader) stride() int { return p.Width * pgroupBytes / pgroupPixels }

// Payload splits one frame into payloads no larger than mtu bytes. Each
// payload opens with the two byte extended sequence number, then one
// header per scanline segment, then the segment data in header order.
// Segments never split a pgroup.
func (p *Payloader) Payload(mtu uint16, frame []byte) [][]byte {
	stride := p.stride()
	if stride <= 0 || len(frame) < stride {
		return nil
	}
	height := len(frame) / stride
	if p.Height > 0 && height > p.Height {
		height = p.Height
	}
	if height > fieldMask {
		height = fieldMask
	}
	budget := int(mtu)
	if budget < headerBytes+segmentBytes+pgroupBytes {
		return nil
	}

	type segment struct {
		line, offset, length int
	}

	var payloads [][]byte
	line, offset := 0, 0 // byte position within the current line
	for line < height {
		segs := make([]segment, 0, 4)
		room := budget - headerBytes
		for line < height && room >= segmentBytes+pgroupBytes {
			room -= segmentBytes
			take := stride - offset
			if take > room {
				take = room - room%pgroupBytes
			}
			if take <= 0 {
				break
			}
			segs = append(segs, segment{line: line, offset: offset, length: take})
			room -= take
			offset += take
			if offset == stride {
				line++
				offset = 0
			}
		}
		if len(segs) == 0 {
			break
		}
		payload := make([]byte, headerBytes, budget)
		for i, sg := range segs {
			var hdr [segmentBytes]byte
			binary.BigEndian.PutUint16(hdr[0:], uint16(sg.length))
			binary.BigEndian.PutUint16(hdr[2:], uint16(sg.line))
			off := uint16(sg.offset / (pgroupBytes / pgroupPixels))
			if i < len(segs)-1 {
				off |= continuationBit
			}
			binary.BigEndian.PutUint16(hdr[4:], off)
			payload = append(payload, hdr[:]...)
		}
		for _, sg := range segs {
			start := sg.line*stride + sg.offset
			payload = append(payload, frame[start:start+sg.length]...)
		}
		payloads = append(payloads, payload)
	}
	return payloads
}

// Segment is one scanline fragment carried by a payload.
type Segment struct {
	// Line is the scanline number and Offset the first pixel covered.
	Line   int
	Offset int
	Data   []byte
}

// Depacketizer parses RFC 4175 payloads for the pion/rtp machinery.
type Depacketizer struct{}

// Segments parses payload into its scanline fragments. The returned Data
// slices alias payload.
func (Depacketizer) Segments(payload []byte) ([]Segment, error) {
	p := payload
	if len(p) < headerBytes+segmentBytes {
		return nil, ErrShortPayload
	}
	p = p[headerBytes:]

	var (
		segs    []Segment
		lengths []int
	)
	for {
		if len(p) < segmentBytes {
			return nil, ErrShortPayload
		}
		length := int(binary.BigEndian.Uint16(p[0:]))
		line := int(binary.BigEndian.Uint16(p[2:]) & fieldMask)
		off := binary.BigEndian.Uint16(p[4:])
		segs = append(segs, Segment{Line: line, Offset: int(off & fieldMask)})
		lengths = append(lengths, length)
		p = p[segmentBytes:]
		if off&continuationBit == 0 {
			break
		}
	}
	for i := range segs {
		if len(p) < lengths[i] {
			return nil, ErrTruncatedData
		}
		segs[i].Data = p[:lengths[i]]
		p = p[lengths[i]:]
	}
	return segs, nil
}

// Unmarshal returns the concatenated fragment data of one payload.
func (d Depacketizer) Unmarshal(payload []byte) ([]byte, error) {
	segs, err := d.Segments(payload)
	if err != nil {
		return nil, err
	}
	size := 0
	for _, s := range segs {
		size += len(s.Data)
	}
	out := make([]byte, 0, size)
	for _, s := range segs {
		out = append(out, s.Data...)
	}
	return out, nil
}

// IsPartitionHead reports whether the payload opens a frame: its first
// fragment sits at line zero, pixel zero.
func (Depacketizer) IsPartitionHead(payload []byte) bool {
	if len(payload) < headerBytes+segmentBytes {
		return false
	}
	line := binary.BigEndian.Uint16(payload[4:]) & fieldMask
	off := binary.BigEndian.Uint16(payload[6:]) & fieldMask
	return line == 0 && off == 0
}

// IsPartitionTail reports whether the packet closes a frame; RFC 4175
// marks the final packet of a frame with the RTP marker bit.
func (Depacketizer) IsPartitionTail(marker bool, _ []byte) bool {
	return marker
}

// Assembler rebuilds frames from scanline fragments, in any arrival order.
type Assembler struct {
	height int
	stride int
	buf    []byte
	filled int
}

// NewAssembler sizes an Assembler for width x height frames.
func NewAssembler(width, height int) *Assembler {
	stride := width * pgroupBytes / pgroupPixels
	return &Assembler{
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

// Put places every fragment of one payload into the frame buffer.
func (a *Assembler) Put(payload []byte) error {
	segs, err := Depacketizer{}.Segments(payload)
	if err != nil {
		return err
	}
	for _, s := range segs {
		start := s.Line*a.stride + s.Offset*pgroupBytes/pgroupPixels
		if s.Line >= a.height || start+len(s.Data) > len(a.buf) {
			return fmt.Errorf("%w: line %d offset %d", ErrSegmentBounds, s.Line, s.Offset)
		}
		copy(a.buf[start:], s.Data)
		a.filled += len(s.Data)
	}
	return nil
}

// Complete reports whether every byte of the frame has been placed. It
// assumes fragments do not overlap.
func (a *Assembler) Complete() bool { return a.filled >= len(a.buf) }

// Frame returns the assembled frame buffer.
func (a *Assembler) Frame() []byte { return a.buf }

// Reset clears the assembler for the next frame.
func (a *Assembler) Reset() {
	a.filled = 0
	for i := range a.buf {
		a.buf[i] = 0
	}
}
