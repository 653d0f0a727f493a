// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/framegraph"
	"github.com/gogpu/framegraph/vulkan/vk"
)

// TestDeriveUsageTable spot-checks the fixed access/stage/layout table.
func TestDeriveUsageTable(t *testing.T) {
	tests := []struct {
		name   string
		kind   framegraph.UsageKind
		stages gputypes.ShaderStages
		want   usageAccess
	}{
		{
			name: "colorAttachmentWrite",
			kind: framegraph.UsageColorAttachmentWrite,
			want: usageAccess{
				access: vk.AccessColorAttachmentReadBit | vk.AccessColorAttachmentWriteBit,
				stages: vk.PipelineStageColorAttachmentOutputBit,
				layout: vk.ImageLayoutColorAttachmentOptimal,
			},
		},
		{
			name:   "sampledFragment",
			kind:   framegraph.UsageSampledTexture,
			stages: gputypes.ShaderStageFragment,
			want: usageAccess{
				access: vk.AccessShaderReadBit,
				stages: vk.PipelineStageFragmentShaderBit,
				layout: vk.ImageLayoutShaderReadOnlyOptimal,
			},
		},
		{
			name:   "storageWriteCompute",
			kind:   framegraph.UsageStorageWrite,
			stages: gputypes.ShaderStageCompute,
			want: usageAccess{
				access: vk.AccessShaderReadBit | vk.AccessShaderWriteBit,
				stages: vk.PipelineStageComputeShaderBit,
				layout: vk.ImageLayoutGeneral,
			},
		},
		{
			name: "transferDestination",
			kind: framegraph.UsageTransferDestination,
			want: usageAccess{
				access: vk.AccessTransferWriteBit,
				stages: vk.PipelineStageTransferBit,
				layout: vk.ImageLayoutTransferDstOptimal,
			},
		},
		{
			name: "present",
			kind: framegraph.UsagePresent,
			want: usageAccess{
				stages: vk.PipelineStageBottomOfPipeBit,
				layout: vk.ImageLayoutPresentSrcKHR,
			},
		},
		{
			name: "indirect",
			kind: framegraph.UsageIndirect,
			want: usageAccess{
				access: vk.AccessIndirectCommandReadBit,
				stages: vk.PipelineStageDrawIndirectBit,
			},
		},
		{
			name: "depthStencilWrite",
			kind: framegraph.UsageDepthStencilWrite,
			want: usageAccess{
				access: vk.AccessDepthStencilAttachmentReadBit | vk.AccessDepthStencilAttachmentWriteBit,
				stages: vk.PipelineStageEarlyFragmentTestsBit | vk.PipelineStageLateFragmentTestsBit,
				layout: vk.ImageLayoutDepthStencilAttachmentOptimal,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deriveUsage(tt.kind, tt.stages, false)
			if got != tt.want {
				t.Errorf("deriveUsage(%v) = %+v, want %+v", tt.kind, got, tt.want)
			}
		})
	}
}

// TestDeriveUsageDefaultsStages tests the stage fallbacks for shader
// usages with no explicit stage mask.
func TestDeriveUsageDefaultsStages(t *testing.T) {
	if got := deriveUsage(framegraph.UsageConstantBuffer, 0, false).stages; got !=
		vk.PipelineStageVertexShaderBit|vk.PipelineStageFragmentShaderBit {
		t.Errorf("constantBuffer default stages = %#x, want VERTEX|FRAGMENT", got)
	}
	if got := deriveUsage(framegraph.UsageStorageRead, 0, false).stages; got != vk.PipelineStageComputeShaderBit {
		t.Errorf("storageRead default stages = %#x, want COMPUTE", got)
	}
}
