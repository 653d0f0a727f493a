// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/framegraph"
	"github.com/gogpu/framegraph/vulkan/vk"
)

// TestRenderPipelineKeyStructural tests that the cache key reflects the
// descriptor content, render pass, and subpass.
func TestRenderPipelineKeyStructural(t *testing.T) {
	desc := &framegraph.RenderPipelineDescriptor{
		VertexFunction:   "vs_main",
		FragmentFunction: "fs_main",
		ColorTargets:     []framegraph.ColorTargetState{{Format: gputypes.TextureFormatBGRA8Unorm}},
	}

	base := renderPipelineKey(desc, vk.RenderPass(1), 0)
	if got := renderPipelineKey(desc, vk.RenderPass(1), 0); got != base {
		t.Errorf("identical inputs produced different keys")
	}
	if got := renderPipelineKey(desc, vk.RenderPass(2), 0); got == base {
		t.Errorf("different render pass shares a key")
	}
	if got := renderPipelineKey(desc, vk.RenderPass(1), 1); got == base {
		t.Errorf("different subpass shares a key")
	}

	other := *desc
	other.VertexFunction = "vs_other"
	if got := renderPipelineKey(&other, vk.RenderPass(1), 0); got == base {
		t.Errorf("different descriptor shares a key")
	}
}

// TestMergeReflections tests stage merging: constants union, bindings
// deduplicated by (set, binding).
func TestMergeReflections(t *testing.T) {
	vert := &framegraph.PipelineReflection{
		ConstantIndices: map[string]uint32{"lights": 0},
		Bindings: []framegraph.BindingReflection{
			{Name: "camera", Set: 0, Binding: 0, Kind: framegraph.KindBuffer, ReadOnly: true},
		},
	}
	frag := &framegraph.PipelineReflection{
		ConstantIndices: map[string]uint32{"shadows": 1},
		Bindings: []framegraph.BindingReflection{
			{Name: "camera", Set: 0, Binding: 0, Kind: framegraph.KindBuffer, ReadOnly: true},
			{Name: "albedo", Set: 0, Binding: 1, Kind: framegraph.KindTexture, ReadOnly: true},
		},
	}

	merged := mergeReflections(vert, frag)
	if len(merged.Bindings) != 2 {
		t.Errorf("merged bindings = %d, want 2 (camera deduplicated)", len(merged.Bindings))
	}
	if merged.ConstantIndices["lights"] != 0 || merged.ConstantIndices["shadows"] != 1 {
		t.Errorf("merged constants = %v", merged.ConstantIndices)
	}
}

// TestComputePipelineKeyIncludesThreadgroup tests that the threadgroup
// size participates in the key.
func TestComputePipelineKeyIncludesThreadgroup(t *testing.T) {
	a := &framegraph.ComputePipelineDescriptor{
		Function:              "cs_main",
		ThreadsPerThreadgroup: framegraph.Extent3D{Width: 8, Height: 8, Depth: 1},
	}
	b := &framegraph.ComputePipelineDescriptor{
		Function:              "cs_main",
		ThreadsPerThreadgroup: framegraph.Extent3D{Width: 16, Height: 16, Depth: 1},
	}
	if computePipelineKey(a) == computePipelineKey(b) {
		t.Errorf("different threadgroup sizes share a key")
	}
}
