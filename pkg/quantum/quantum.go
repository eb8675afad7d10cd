// Package quantum converts between the codec's internal full-range 16 bit
// samples and their one or two byte big-endian stream form.
package quantum

import "encoding/binary"

// Max is the largest value an internal sample can hold.
const Max = 0xffff

// WidthForDepth returns the stream width of one sample in bytes for the
// given bit depth: one byte through 8 bits, two bytes above.
func WidthForDepth(depth int) int {
	if depth <= 8 {
		return 1
	}
	return 2
}

// FromByte widens an 8 bit stream sample to the internal range.
func FromByte(b uint8) uint16 {
	return uint16(b) * 0x101
}

// ToByte narrows an internal sample to its 8 bit stream form, rounding to
// nearest. It inverts FromByte exactly.
func ToByte(q uint16) uint8 {
	return uint8((uint32(q) + 128) / 257)
}

// Decode reads one sample of the given width from the head of p.
func Decode(p []byte, width int) uint16 {
	if width == 1 {
		return FromByte(p[0])
	}
	return binary.BigEndian.Uint16(p)
}

// Encode writes one sample of the given width to the head of p.
func Encode(p []byte, q uint16, width int) {
	if width == 1 {
		p[0] = ToByte(q)
		return
	}
	binary.BigEndian.PutUint16(p, q)
}
