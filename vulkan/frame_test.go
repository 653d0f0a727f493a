// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"testing"

	"github.com/gogpu/framegraph"
)

// TestGroupEncodersByKind tests that consecutive passes group by
// encoder kind and render target.
func TestGroupEncodersByKind(t *testing.T) {
	rt1 := &framegraph.RenderTarget{}
	rt2 := &framegraph.RenderTarget{}

	passes := []framegraph.PassRecord{
		{ID: 0, Kind: framegraph.PassCompute, FirstCommand: 0, LastCommand: 1},
		{ID: 1, Kind: framegraph.PassCompute, FirstCommand: 2, LastCommand: 3},
		{ID: 2, Kind: framegraph.PassDraw, FirstCommand: 4, LastCommand: 5, RenderTarget: rt1},
		{ID: 3, Kind: framegraph.PassDraw, FirstCommand: 6, LastCommand: 7, RenderTarget: rt1, Subpass: 1},
		{ID: 4, Kind: framegraph.PassDraw, FirstCommand: 8, LastCommand: 9, RenderTarget: rt2},
		{ID: 5, Kind: framegraph.PassCPU, FirstCommand: 10, LastCommand: 9},
		{ID: 6, Kind: framegraph.PassBlit, FirstCommand: 10, LastCommand: 11},
		{ID: 7, Kind: framegraph.PassExternal, FirstCommand: 12, LastCommand: 12},
	}

	encoders := groupEncoders(passes)
	if len(encoders) != 4 {
		t.Fatalf("encoders = %d, want 4", len(encoders))
	}

	if encoders[0].Kind != framegraph.EncoderCompute || encoders[0].FirstCommand != 0 || encoders[0].LastCommand != 3 {
		t.Errorf("encoder 0 = %+v, want compute over commands 0..3", encoders[0])
	}
	if encoders[1].Kind != framegraph.EncoderDraw || encoders[1].RenderTarget != rt1 || encoders[1].LastCommand != 7 {
		t.Errorf("encoder 1 = %+v, want draw on rt1 over commands 4..7", encoders[1])
	}
	if encoders[2].Kind != framegraph.EncoderDraw || encoders[2].RenderTarget != rt2 {
		t.Errorf("encoder 2 = %+v, want draw on rt2", encoders[2])
	}
	if encoders[3].Kind != framegraph.EncoderBlit || encoders[3].LastCommand != 12 {
		t.Errorf("encoder 3 = %+v, want blit+external over commands 10..12", encoders[3])
	}

	for i, e := range encoders {
		if e.Index != i {
			t.Errorf("encoder %d has Index %d", i, e.Index)
		}
	}
}

// TestFilterSelfWaits tests that a submission never waits on its own or
// a later value of its own queue, and that duplicates collapse.
func TestFilterSelfWaits(t *testing.T) {
	waits := []eventWait{
		{queue: 0, value: 4}, // own queue, earlier: kept
		{queue: 0, value: 5}, // own value: dropped
		{queue: 1, value: 2},
		{queue: 1, value: 2}, // duplicate: dropped
	}

	got := filterSelfWaits(waits, 0, 5)
	want := []eventWait{{queue: 0, value: 4}, {queue: 1, value: 2}}
	if len(got) != len(want) {
		t.Fatalf("filtered = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("filtered[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
