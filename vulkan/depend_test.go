// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/framegraph"
	"github.com/gogpu/framegraph/vulkan/vk"
)

// fakeInfo reports every image as starting undefined.
type fakeInfo struct{}

func (fakeInfo) imageInitialLayout(framegraph.ResourceHandle) vk.ImageLayout {
	return vk.ImageLayoutUndefined
}

func testAnalyzerConfig() analyzerConfig {
	return analyzerConfig{
		queueOf:       func(int) int { return 0 },
		timelineValue: func(e int) uint64 { return uint64(e) + 1 },
	}
}

func analyzeFrame(t *testing.T, frame *framegraph.Frame) (*analysis, []framegraph.EncoderInfo) {
	t.Helper()
	encoders := groupEncoders(frame.Passes)
	return analyze(frame, encoders, fakeInfo{}, testAnalyzerConfig()), encoders
}

func countKind(a *analysis, kind resourceCommandKind) int {
	n := 0
	for _, rc := range a.commands {
		if rc.kind == kind {
			n++
		}
	}
	return n
}

// TestComputeToDrawDependency covers the canonical producer/consumer
// frame: a compute pass writes a buffer, a draw pass reads it as a
// constant buffer. Expect one signal after the producer and one wait
// before the consumer with a SHADER_READ|SHADER_WRITE -> UNIFORM_READ
// buffer barrier.
func TestComputeToDrawDependency(t *testing.T) {
	x := framegraph.MakeHandle(framegraph.KindBuffer, 0, 1)
	rt := &framegraph.RenderTarget{Width: 64, Height: 64}

	frame := &framegraph.Frame{
		Passes: []framegraph.PassRecord{
			{ID: 0, Kind: framegraph.PassCompute, FirstCommand: 0, LastCommand: 0},
			{ID: 1, Kind: framegraph.PassDraw, FirstCommand: 1, LastCommand: 1, RenderTarget: rt},
		},
		Usages: []framegraph.UsageRecord{
			{Resource: x, Command: 0, Kind: framegraph.UsageStorageWrite, Stages: gputypes.ShaderStageCompute},
			{Resource: x, Command: 1, Kind: framegraph.UsageConstantBuffer, Stages: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment},
		},
		Commands: make([]framegraph.Command, 2),
	}

	a, encoders := analyzeFrame(t, frame)
	if len(encoders) != 2 {
		t.Fatalf("encoders = %d, want 2", len(encoders))
	}

	if got := countKind(a, cmdSignalEvent); got != 1 {
		t.Fatalf("SignalEvent count = %d, want 1", got)
	}
	if got := countKind(a, cmdWaitForEvents); got != 1 {
		t.Fatalf("WaitForEvents count = %d, want 1", got)
	}

	var signal, wait *resourceCommand
	for i := range a.commands {
		switch a.commands[i].kind {
		case cmdSignalEvent:
			signal = &a.commands[i]
		case cmdWaitForEvents:
			wait = &a.commands[i]
		}
	}

	if signal.index != 0 || signal.order != orderAfter {
		t.Errorf("signal anchored at (%d,%v), want (0,after)", signal.index, signal.order)
	}
	if signal.afterStages != vk.PipelineStageComputeShaderBit {
		t.Errorf("signal afterStages = %#x, want COMPUTE_SHADER", signal.afterStages)
	}

	if wait.index != 1 || wait.order != orderBefore {
		t.Errorf("wait anchored at (%d,%v), want (1,before)", wait.index, wait.order)
	}
	if wait.srcStages != vk.PipelineStageComputeShaderBit {
		t.Errorf("wait srcStages = %#x, want COMPUTE_SHADER", wait.srcStages)
	}
	wantDst := vk.PipelineStageVertexShaderBit | vk.PipelineStageFragmentShaderBit
	if wait.dstStages != wantDst {
		t.Errorf("wait dstStages = %#x, want VERTEX|FRAGMENT", wait.dstStages)
	}
	if len(wait.bufBarriers) != 1 {
		t.Fatalf("wait buffer barriers = %d, want 1", len(wait.bufBarriers))
	}
	bb := wait.bufBarriers[0]
	if bb.handle != x {
		t.Errorf("barrier on %v, want %v", bb.handle, x)
	}
	if bb.srcAccess != vk.AccessShaderReadBit|vk.AccessShaderWriteBit {
		t.Errorf("barrier srcAccess = %#x, want SHADER_READ|SHADER_WRITE", bb.srcAccess)
	}
	if bb.dstAccess != vk.AccessUniformReadBit {
		t.Errorf("barrier dstAccess = %#x, want UNIFORM_READ", bb.dstAccess)
	}

	// The signal must sort before the wait in the compacted stream.
	signalPos, waitPos := -1, -1
	for i, rc := range a.commands {
		switch rc.kind {
		case cmdSignalEvent:
			signalPos = i
		case cmdWaitForEvents:
			waitPos = i
		}
	}
	if signalPos > waitPos {
		t.Errorf("signal sorted after wait (%d > %d)", signalPos, waitPos)
	}
}

// TestTransitiveReduction covers redundant-edge elimination: with A->B,
// B->C, and A->C, only the first two survive, so C waits on B alone.
func TestTransitiveReduction(t *testing.T) {
	x := framegraph.MakeHandle(framegraph.KindBuffer, 0, 1)
	y := framegraph.MakeHandle(framegraph.KindBuffer, 0, 2)

	frame := &framegraph.Frame{
		Passes: []framegraph.PassRecord{
			{ID: 0, Kind: framegraph.PassCompute, FirstCommand: 0, LastCommand: 0},
			{ID: 1, Kind: framegraph.PassBlit, FirstCommand: 1, LastCommand: 1},
			{ID: 2, Kind: framegraph.PassCompute, FirstCommand: 2, LastCommand: 2},
		},
		Usages: []framegraph.UsageRecord{
			{Resource: x, Command: 0, Kind: framegraph.UsageStorageWrite, Stages: gputypes.ShaderStageCompute},
			{Resource: x, Command: 1, Kind: framegraph.UsageTransferSource},
			{Resource: y, Command: 1, Kind: framegraph.UsageTransferDestination},
			{Resource: x, Command: 2, Kind: framegraph.UsageStorageRead, Stages: gputypes.ShaderStageCompute},
			{Resource: y, Command: 2, Kind: framegraph.UsageStorageRead, Stages: gputypes.ShaderStageCompute},
		},
		Commands: make([]framegraph.Command, 3),
	}

	a, _ := analyzeFrame(t, frame)

	// D has edges into encoder 2 from both 0 and 1, but after
	// reduction encoder 2 waits only on encoder 1.
	if !a.table.hasEdge(2, 0) || !a.table.hasEdge(2, 1) {
		t.Fatalf("dependency table missing raw edges")
	}

	for _, rc := range a.commands {
		if rc.kind != cmdWaitForEvents || rc.index != 2 {
			continue
		}
		for _, w := range rc.waits {
			if w.value == 1 { // encoder 0's timeline value
				t.Errorf("consumer waits on reduced edge's semaphore")
			}
		}
	}

	// Two signals: encoder 0 (for 1) and encoder 1 (for 2).
	if got := countKind(a, cmdSignalEvent); got != 2 {
		t.Errorf("SignalEvent count = %d, want 2", got)
	}
}

// TestIndependentPassesNoEvents covers two passes on disjoint
// resources: no cross-encoder synchronization at all.
func TestIndependentPassesNoEvents(t *testing.T) {
	x := framegraph.MakeHandle(framegraph.KindBuffer, 0, 1)
	y := framegraph.MakeHandle(framegraph.KindBuffer, 0, 2)

	frame := &framegraph.Frame{
		Passes: []framegraph.PassRecord{
			{ID: 0, Kind: framegraph.PassCompute, FirstCommand: 0, LastCommand: 0},
			{ID: 1, Kind: framegraph.PassCompute, FirstCommand: 1, LastCommand: 1},
		},
		Usages: []framegraph.UsageRecord{
			{Resource: x, Command: 0, Kind: framegraph.UsageStorageWrite, Stages: gputypes.ShaderStageCompute},
			{Resource: y, Command: 1, Kind: framegraph.UsageStorageWrite, Stages: gputypes.ShaderStageCompute},
		},
		Commands: make([]framegraph.Command, 2),
	}

	a, _ := analyzeFrame(t, frame)
	if got := countKind(a, cmdSignalEvent); got != 0 {
		t.Errorf("SignalEvent count = %d, want 0", got)
	}
	if got := countKind(a, cmdWaitForEvents); got != 0 {
		t.Errorf("WaitForEvents count = %d, want 0", got)
	}
}

// TestRenderToSampleTransition covers a color target sampled by a later
// draw encoder: the wait carries a COLOR_ATTACHMENT_OPTIMAL ->
// SHADER_READ_ONLY_OPTIMAL image barrier from attachment-output to
// fragment stages.
func TestRenderToSampleTransition(t *testing.T) {
	tex := framegraph.MakeHandle(framegraph.KindTexture, 0, 1)
	rt1 := &framegraph.RenderTarget{Width: 64, Height: 64}
	rt2 := &framegraph.RenderTarget{Width: 64, Height: 64}

	frame := &framegraph.Frame{
		Passes: []framegraph.PassRecord{
			{ID: 0, Kind: framegraph.PassDraw, FirstCommand: 0, LastCommand: 0, RenderTarget: rt1},
			{ID: 1, Kind: framegraph.PassDraw, FirstCommand: 1, LastCommand: 1, RenderTarget: rt2},
		},
		Usages: []framegraph.UsageRecord{
			{Resource: tex, Command: 0, Kind: framegraph.UsageColorAttachmentWrite},
			{Resource: tex, Command: 1, Kind: framegraph.UsageSampledTexture, Stages: gputypes.ShaderStageFragment},
		},
		Commands: make([]framegraph.Command, 2),
	}

	a, _ := analyzeFrame(t, frame)

	var wait *resourceCommand
	for i := range a.commands {
		if a.commands[i].kind == cmdWaitForEvents {
			wait = &a.commands[i]
		}
	}
	if wait == nil {
		t.Fatalf("no WaitForEvents emitted")
	}
	if wait.srcStages != vk.PipelineStageColorAttachmentOutputBit {
		t.Errorf("srcStages = %#x, want COLOR_ATTACHMENT_OUTPUT", wait.srcStages)
	}
	if wait.dstStages != vk.PipelineStageFragmentShaderBit {
		t.Errorf("dstStages = %#x, want FRAGMENT_SHADER", wait.dstStages)
	}
	if len(wait.imgBarriers) != 1 {
		t.Fatalf("image barriers = %d, want 1", len(wait.imgBarriers))
	}
	ib := wait.imgBarriers[0]
	if ib.oldLayout != vk.ImageLayoutColorAttachmentOptimal || ib.newLayout != vk.ImageLayoutShaderReadOnlyOptimal {
		t.Errorf("layout transition %v -> %v, want COLOR_ATTACHMENT_OPTIMAL -> SHADER_READ_ONLY_OPTIMAL",
			ib.oldLayout, ib.newLayout)
	}

	// The image ends the frame in the sampled layout.
	if got := a.finalLayouts[tex]; got != vk.ImageLayoutShaderReadOnlyOptimal {
		t.Errorf("final layout = %v, want SHADER_READ_ONLY_OPTIMAL", got)
	}
}

// TestSwapchainPresentBarrier covers the window-texture path: the last
// write takes a final transition to PRESENT_SRC_KHR anchored after it.
func TestSwapchainPresentBarrier(t *testing.T) {
	tex := framegraph.MakeHandle(framegraph.KindTexture, framegraph.FlagWindowHandle, 1)
	rt := &framegraph.RenderTarget{Width: 64, Height: 64}

	frame := &framegraph.Frame{
		Passes: []framegraph.PassRecord{
			{ID: 0, Kind: framegraph.PassDraw, FirstCommand: 0, LastCommand: 0, RenderTarget: rt},
		},
		Usages: []framegraph.UsageRecord{
			{Resource: tex, Command: 0, Kind: framegraph.UsageColorAttachmentWrite},
		},
		Commands: make([]framegraph.Command, 1),
	}

	a, _ := analyzeFrame(t, frame)

	found := false
	for _, rc := range a.commands {
		if rc.kind != cmdPipelineBarrier || rc.order != orderAfter {
			continue
		}
		for _, ib := range rc.imgBarriers {
			if ib.handle == tex && ib.newLayout == vk.ImageLayoutPresentSrcKHR {
				found = true
				if rc.dstStages != vk.PipelineStageBottomOfPipeBit {
					t.Errorf("present barrier dstStages = %#x, want BOTTOM_OF_PIPE", rc.dstStages)
				}
			}
		}
	}
	if !found {
		t.Errorf("no final PRESENT_SRC_KHR barrier emitted")
	}
	if got := a.finalLayouts[tex]; got != vk.ImageLayoutPresentSrcKHR {
		t.Errorf("final layout = %v, want PRESENT_SRC_KHR", got)
	}
}

// TestIntraEncoderBatch covers write-then-read within one encoder: a
// single PipelineBarrier anchored before the consumer.
func TestIntraEncoderBatch(t *testing.T) {
	x := framegraph.MakeHandle(framegraph.KindBuffer, 0, 1)

	frame := &framegraph.Frame{
		Passes: []framegraph.PassRecord{
			{ID: 0, Kind: framegraph.PassCompute, FirstCommand: 0, LastCommand: 2},
		},
		Usages: []framegraph.UsageRecord{
			{Resource: x, Command: 0, Kind: framegraph.UsageStorageWrite, Stages: gputypes.ShaderStageCompute},
			{Resource: x, Command: 2, Kind: framegraph.UsageStorageRead, Stages: gputypes.ShaderStageCompute},
		},
		Commands: make([]framegraph.Command, 3),
	}

	a, _ := analyzeFrame(t, frame)

	if got := countKind(a, cmdPipelineBarrier); got != 1 {
		t.Fatalf("PipelineBarrier count = %d, want 1", got)
	}
	rc := a.commands[0]
	if rc.index != 2 || rc.order != orderBefore {
		t.Errorf("barrier anchored at (%d,%v), want (2,before)", rc.index, rc.order)
	}
	if len(rc.bufBarriers) != 1 {
		t.Fatalf("buffer barriers = %d, want 1", len(rc.bufBarriers))
	}
}

// TestBarrierStagesNeverEmpty checks the stage-mask invariant over
// every emitted synchronization command.
func TestBarrierStagesNeverEmpty(t *testing.T) {
	tex := framegraph.MakeHandle(framegraph.KindTexture, 0, 1)
	buf := framegraph.MakeHandle(framegraph.KindBuffer, 0, 2)

	frame := &framegraph.Frame{
		Passes: []framegraph.PassRecord{
			{ID: 0, Kind: framegraph.PassBlit, FirstCommand: 0, LastCommand: 1},
			{ID: 1, Kind: framegraph.PassCompute, FirstCommand: 2, LastCommand: 2},
		},
		Usages: []framegraph.UsageRecord{
			{Resource: buf, Command: 0, Kind: framegraph.UsageTransferSource},
			{Resource: tex, Command: 0, Kind: framegraph.UsageTransferDestination},
			{Resource: tex, Command: 1, Kind: framegraph.UsageTransferSource},
			{Resource: tex, Command: 2, Kind: framegraph.UsageSampledTexture, Stages: gputypes.ShaderStageCompute},
		},
		Commands: make([]framegraph.Command, 3),
	}

	a, _ := analyzeFrame(t, frame)
	for i, rc := range a.commands {
		if rc.kind == cmdSignalEvent {
			if rc.afterStages == 0 {
				t.Errorf("command %d: empty signal stages", i)
			}
			continue
		}
		if rc.srcStages == 0 {
			t.Errorf("command %d: empty src stages", i)
		}
		if rc.dstStages == 0 {
			t.Errorf("command %d: empty dst stages", i)
		}
	}
}

// TestDependencyTableLowerTriangular checks that entries with producer
// index >= consumer index are rejected.
func TestDependencyTableLowerTriangular(t *testing.T) {
	table := newDependencyTable(3)
	table.add(1, 1, dependencyEdge{})
	table.add(0, 2, dependencyEdge{})
	if len(table.cells) != 0 {
		t.Errorf("table accepted upper-triangular entries")
	}

	table.add(2, 0, dependencyEdge{})
	if !table.hasEdge(2, 0) {
		t.Errorf("table dropped a valid entry")
	}
}

// TestFirstUseInitialization checks that an uninitialised image takes a
// full UNDEFINED transition at its first use.
func TestFirstUseInitialization(t *testing.T) {
	tex := framegraph.MakeHandle(framegraph.KindTexture, 0, 1)

	frame := &framegraph.Frame{
		Passes: []framegraph.PassRecord{
			{ID: 0, Kind: framegraph.PassCompute, FirstCommand: 0, LastCommand: 0},
		},
		Usages: []framegraph.UsageRecord{
			{Resource: tex, Command: 0, Kind: framegraph.UsageStorageWrite, Stages: gputypes.ShaderStageCompute},
		},
		Commands: make([]framegraph.Command, 1),
	}

	a, _ := analyzeFrame(t, frame)
	if got := countKind(a, cmdPipelineBarrier); got != 1 {
		t.Fatalf("PipelineBarrier count = %d, want 1", got)
	}
	ib := a.commands[0].imgBarriers[0]
	if ib.oldLayout != vk.ImageLayoutUndefined || ib.newLayout != vk.ImageLayoutGeneral {
		t.Errorf("init transition %v -> %v, want UNDEFINED -> GENERAL", ib.oldLayout, ib.newLayout)
	}
	if a.commands[0].srcStages != vk.PipelineStageTopOfPipeBit {
		t.Errorf("init srcStages = %#x, want TOP_OF_PIPE", a.commands[0].srcStages)
	}
}
