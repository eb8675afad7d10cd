package frame

import (
	"errors"
	"testing"
)

func TestParseSamplingFactor(t *testing.T) {
	cases := []struct {
		in   string
		want SamplingFactor
	}{
		{"", SamplingFactor{2, 2}},
		{"1", SamplingFactor{1, 1}},
		{"2", SamplingFactor{2, 2}},
		{"1:1", SamplingFactor{1, 1}},
		{"2:1", SamplingFactor{2, 1}},
		{"1:2", SamplingFactor{1, 2}},
		{"2:2", SamplingFactor{2, 2}},
		{" 2 : 1 ", SamplingFactor{2, 1}},
	}
	for _, c := range cases {
		got, err := ParseSamplingFactor(c.in)
		if err != nil {
			t.Errorf("ParseSamplingFactor(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseSamplingFactor(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseSamplingFactorRejects(t *testing.T) {
	for _, in := range []string{"0", "3", "4:1", "2:3", "2:0", "-1", "x", "2:x", ":2"} {
		_, err := ParseSamplingFactor(in)
		if !errors.Is(err, ErrSamplingFactor) {
			t.Errorf("ParseSamplingFactor(%q): err = %v, want ErrSamplingFactor", in, err)
		}
	}
}

func TestParseSamplingFactorChecksAxesIndependently(t *testing.T) {
	// A bad vertical factor must be caught even when horizontal is valid,
	// and the other way around.
	if _, err := ParseSamplingFactor("2:4"); !errors.Is(err, ErrSamplingFactor) {
		t.Errorf("ParseSamplingFactor(2:4): err = %v", err)
	}
	if _, err := ParseSamplingFactor("4:2"); !errors.Is(err, ErrSamplingFactor) {
		t.Errorf("ParseSamplingFactor(4:2): err = %v", err)
	}
}

func TestResolveLayout(t *testing.T) {
	cases := []struct {
		declared Interlace
		vertical int
		want     Layout
	}{
		{InterlaceUndefined, 1, LayoutNonInterlaced},
		{InterlaceUndefined, 2, LayoutPlaneInterlaced},
		{InterlaceNone, 1, LayoutNonInterlaced},
		{InterlaceNone, 2, LayoutPlaneInterlaced},
		{InterlacePlane, 1, LayoutPlaneInterlaced},
		{InterlacePlane, 2, LayoutPlaneInterlaced},
		{InterlacePartition, 1, LayoutPartitionInterlaced},
		{InterlacePartition, 2, LayoutPartitionInterlaced},
	}
	for _, c := range cases {
		if got := ResolveLayout(c.declared, c.vertical); got != c.want {
			t.Errorf("ResolveLayout(%v, %d) = %v, want %v", c.declared, c.vertical, got, c.want)
		}
	}
}

func TestPartitionName(t *testing.T) {
	base := "frame.yuv"
	cases := []struct {
		c    Channel
		want string
	}{
		{ChannelY, "frame.yuvY"},
		{ChannelU, "frame.yuvU"},
		{ChannelV, "frame.yuvV"},
	}
	for _, c := range cases {
		if got := PartitionName(base, c.c); got != c.want {
			t.Errorf("PartitionName(%q, %v) = %q, want %q", base, c.c, got, c.want)
		}
	}
}

func TestRowSize(t *testing.T) {
	if got := RowSize(LayoutNonInterlaced, 640, 1); got != 1280 {
		t.Errorf("non-interlaced row = %d, want 1280", got)
	}
	if got := RowSize(LayoutNonInterlaced, 640, 2); got != 2560 {
		t.Errorf("non-interlaced wide row = %d, want 2560", got)
	}
	if got := RowSize(LayoutPlaneInterlaced, 640, 2); got != 1280 {
		t.Errorf("plane row = %d, want 1280", got)
	}
	if got := RowSize(LayoutPartitionInterlaced, 640, 1); got != 640 {
		t.Errorf("partition row = %d, want 640", got)
	}
	if got := ChromaRowSize(320, 2); got != 640 {
		t.Errorf("chroma row = %d, want 640", got)
	}
}
