package frame

// Interlace is the stream arrangement declared by the caller. The declared
// mode is a request; ResolveLayout decides the arrangement actually used.
type Interlace int

const (
	InterlaceUndefined Interlace = iota
	InterlaceNone
	InterlacePlane
	InterlacePartition
)

func (i Interlace) String() string {
	switch i {
	case InterlaceNone:
		return "none"
	case InterlacePlane:
		return "plane"
	case InterlacePartition:
		return "partition"
	default:
		return "undefined"
	}
}

// Layout is the effective physical arrangement of a stream.
type Layout int

const (
	// LayoutNonInterlaced interleaves chroma and luma samples within each
	// scanline as U, Y0, V, Y1 per two-column group.
	LayoutNonInterlaced Layout = iota
	// LayoutPlaneInterlaced stores the whole Y plane, then U, then V, in a
	// single stream.
	LayoutPlaneInterlaced
	// LayoutPartitionInterlaced stores the Y, U and V planes in separate
	// streams.
	LayoutPartitionInterlaced
)

func (l Layout) String() string {
	switch l {
	case LayoutPlaneInterlaced:
		return "plane-interlaced"
	case LayoutPartitionInterlaced:
		return "partition-interlaced"
	default:
		return "non-interlaced"
	}
}

type layoutKey struct {
	declared Interlace
	vertical int
}

// layoutTable fixes the effective layout for every declared interlace mode
// and vertical sampling factor. Interleaved scanlines cannot carry
// vertically subsampled chroma, so those combinations use planes.
var layoutTable = map[layoutKey]Layout{
	{InterlaceUndefined, 1}: LayoutNonInterlaced,
	{InterlaceUndefined, 2}: LayoutPlaneInterlaced,
	{InterlaceNone, 1}:      LayoutNonInterlaced,
	{InterlaceNone, 2}:      LayoutPlaneInterlaced,
	{InterlacePlane, 1}:     LayoutPlaneInterlaced,
	{InterlacePlane, 2}:     LayoutPlaneInterlaced,
	{InterlacePartition, 1}: LayoutPartitionInterlaced,
	{InterlacePartition, 2}: LayoutPartitionInterlaced,
}

// ResolveLayout maps a declared interlace mode and vertical sampling factor
// to the layout used on the stream.
func ResolveLayout(declared Interlace, vertical int) Layout {
	l, ok := layoutTable[layoutKey{declared, vertical}]
	if !ok {
		return LayoutPlaneInterlaced
	}
	return l
}

// Channel identifies one plane of a partition-interlaced image.
type Channel int

const (
	ChannelY Channel = iota
	ChannelU
	ChannelV
)

func (c Channel) String() string {
	switch c {
	case ChannelU:
		return "U"
	case ChannelV:
		return "V"
	default:
		return "Y"
	}
}

// PartitionName derives the stream name of one channel of a
// partition-interlaced image by appending the channel letter to the base
// name: "frame.yuv" becomes "frame.yuvY", "frame.yuvU" and "frame.yuvV".
func PartitionName(base string, c Channel) string {
	return base + c.String()
}
