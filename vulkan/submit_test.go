// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"testing"

	"github.com/gogpu/framegraph/vulkan/vk"
)

func testEngine() *submitEngine {
	return &submitEngine{
		queues: []*queueState{
			{index: 0, timeline: vk.Semaphore(100)},
			{index: 1, timeline: vk.Semaphore(200)},
		},
	}
}

// TestBuildSubmitInfoWaitList tests that timeline waits resolve to their
// queue's semaphore and binary waits are padded with ALL_GRAPHICS.
func TestBuildSubmitInfoWaitList(t *testing.T) {
	engine := testEngine()
	sub := &submission{
		queue: 0,
		waits: []eventWait{
			{queue: 1, value: 5},
		},
		waitStages:  vk.PipelineStageVertexShaderBit,
		binaryWaits: []vk.Semaphore{vk.Semaphore(300)},
		signalValue: 9,
	}

	waitSems, waitValues, waitStages, signalSems, signalValues := engine.buildSubmitInfo(sub)

	if len(waitSems) != 2 {
		t.Fatalf("wait count = %d, want 2", len(waitSems))
	}
	if waitSems[0] != vk.Semaphore(200) || waitValues[0] != 5 {
		t.Errorf("timeline wait = (%v,%d), want (200,5)", waitSems[0], waitValues[0])
	}
	if waitStages[0] != vk.PipelineStageVertexShaderBit {
		t.Errorf("timeline wait stages = %#x, want VERTEX_SHADER", waitStages[0])
	}
	if waitSems[1] != vk.Semaphore(300) || waitValues[1] != 0 {
		t.Errorf("binary wait = (%v,%d), want (300,0)", waitSems[1], waitValues[1])
	}
	if waitStages[1] != vk.PipelineStageAllGraphicsBit {
		t.Errorf("binary wait stages = %#x, want ALL_GRAPHICS", waitStages[1])
	}

	if len(signalSems) != 1 {
		t.Fatalf("signal count = %d, want 1", len(signalSems))
	}
	if signalSems[0] != vk.Semaphore(100) || signalValues[0] != 9 {
		t.Errorf("signal = (%v,%d), want (100,9)", signalSems[0], signalValues[0])
	}
}

// TestBuildSubmitInfoPresentSignals tests that present binary signals
// join the signal list after the timeline value.
func TestBuildSubmitInfoPresentSignals(t *testing.T) {
	engine := testEngine()
	sub := &submission{
		queue:         1,
		signalValue:   3,
		binarySignals: []vk.Semaphore{vk.Semaphore(400), vk.Semaphore(500)},
	}

	_, _, _, signalSems, signalValues := engine.buildSubmitInfo(sub)

	if len(signalSems) != 3 {
		t.Fatalf("signal count = %d, want 3", len(signalSems))
	}
	if signalSems[0] != vk.Semaphore(200) || signalValues[0] != 3 {
		t.Errorf("timeline signal = (%v,%d), want (200,3)", signalSems[0], signalValues[0])
	}
	for i, want := range []vk.Semaphore{400, 500} {
		if signalSems[i+1] != want || signalValues[i+1] != 0 {
			t.Errorf("binary signal %d = (%v,%d), want (%v,0)", i, signalSems[i+1], signalValues[i+1], want)
		}
	}
}

// TestBuildSubmitInfoDefaultWaitStages tests that an unspecified wait
// stage mask falls back to TOP_OF_PIPE rather than an empty mask.
func TestBuildSubmitInfoDefaultWaitStages(t *testing.T) {
	engine := testEngine()
	sub := &submission{
		queue:       0,
		waits:       []eventWait{{queue: 0, value: 1}},
		signalValue: 2,
	}

	_, _, waitStages, _, _ := engine.buildSubmitInfo(sub)
	if waitStages[0] == 0 {
		t.Errorf("wait stage mask is empty")
	}
}

// TestQueueNextValue tests the monotonic timeline counter.
func TestQueueNextValue(t *testing.T) {
	q := &queueState{}
	for want := uint64(1); want <= 3; want++ {
		if got := q.nextValue(); got != want {
			t.Errorf("nextValue() = %d, want %d", got, want)
		}
	}
}
