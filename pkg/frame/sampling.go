// Package frame describes the physical arrangement of raw CCIR 601 Y'CbCr
// streams and codes individual scanlines of their planes.
package frame

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSamplingFactor is returned for sampling factors other than 1 or 2.
var ErrSamplingFactor = errors.New("frame: sampling factor must be 1 or 2 on each axis")

// SamplingFactor is the chroma subsampling divisor per axis. A factor of
// {2, 2} stores one chroma sample per 2x2 block of luma samples.
type SamplingFactor struct {
	Horizontal int
	Vertical   int
}

// DefaultSamplingFactor halves chroma on both axes, the CCIR 601 default.
var DefaultSamplingFactor = SamplingFactor{Horizontal: 2, Vertical: 2}

// ParseSamplingFactor parses "H" or "H:V" where each axis is 1 or 2. A lone
// horizontal factor applies to both axes. The empty string yields
// DefaultSamplingFactor.
func ParseSamplingFactor(s string) (SamplingFactor, error) {
	if s == "" {
		return DefaultSamplingFactor, nil
	}
	hs, vs, ok := strings.Cut(s, ":")
	h, err := strconv.Atoi(strings.TrimSpace(hs))
	if err != nil {
		return SamplingFactor{}, fmt.Errorf("%w: %q", ErrSamplingFactor, s)
	}
	v := h
	if ok {
		v, err = strconv.Atoi(strings.TrimSpace(vs))
		if err != nil {
			return SamplingFactor{}, fmt.Errorf("%w: %q", ErrSamplingFactor, s)
		}
	}
	f := SamplingFactor{Horizontal: h, Vertical: v}
	if err := f.Validate(); err != nil {
		return SamplingFactor{}, err
	}
	return f, nil
}

// Validate checks each axis independently.
func (f SamplingFactor) Validate() error {
	if f.Horizontal != 1 && f.Horizontal != 2 {
		return fmt.Errorf("%w: horizontal %d", ErrSamplingFactor, f.Horizontal)
	}
	if f.Vertical != 1 && f.Vertical != 2 {
		return fmt.Errorf("%w: vertical %d", ErrSamplingFactor, f.Vertical)
	}
	return nil
}

// String renders the factor in its "H:V" stream form.
func (f SamplingFactor) String() string {
	return fmt.Sprintf("%d:%d", f.Horizontal, f.Vertical)
}
