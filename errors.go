package yuv

import "errors"

var (
	// ErrMissingDimensions is returned when the options do not declare the
	// image geometry. Raw streams carry no header to recover it from.
	ErrMissingDimensions = errors.New("yuv: image columns and rows must be declared")

	// ErrPartitionName is returned when a partition-interlaced layout is
	// used without a base stream name to derive the Y, U and V names from.
	ErrPartitionName = errors.New("yuv: partition-interlaced layout requires a named stream")

	// ErrPartitionAdjoin is returned when more than one frame is encoded to
	// a partition-interlaced layout, whose channel streams hold one frame.
	ErrPartitionAdjoin = errors.New("yuv: partition-interlaced layout holds a single frame")

	// ErrNoFrames is returned when an encode is given nothing to write.
	ErrNoFrames = errors.New("yuv: no frames to encode")

	// ErrResourceLimit is returned when the declared geometry would need an
	// unreasonable amount of memory for a single frame.
	ErrResourceLimit = errors.New("yuv: frame dimensions exceed the resource limit")

	// ErrUnexpectedEOF is returned when a stream ends while plane or row
	// data is still expected. Frames completed before the end are kept.
	ErrUnexpectedEOF = errors.New("yuv: unexpected end of stream")

	// ErrCanceled is returned when a progress callback stops the operation.
	ErrCanceled = errors.New("yuv: canceled by progress callback")
)
