// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/framegraph"
	"github.com/gogpu/framegraph/vulkan/vk"
)

// usageAccess is the derived synchronization state of one usage kind:
// what the GPU does (access), where in the pipeline it does it (stages),
// and — for images — the layout the access wants.
type usageAccess struct {
	access vk.AccessFlags
	stages vk.PipelineStageFlags
	layout vk.ImageLayout
}

// deriveUsage maps a usage record to its access/stage/layout triple.
// depthStencil selects the depth variants of attachment usages.
// Stages from the record refine shader accesses; attachment, transfer,
// and fixed-function usages ignore them.
func deriveUsage(kind framegraph.UsageKind, stages gputypes.ShaderStages, depthStencil bool) usageAccess {
	shaderStages := shaderStagesToVk(stages)

	switch kind {
	case framegraph.UsageVertexRead:
		return usageAccess{
			access: vk.AccessShaderReadBit,
			stages: vk.PipelineStageVertexShaderBit,
			layout: vk.ImageLayoutShaderReadOnlyOptimal,
		}
	case framegraph.UsageFragmentRead:
		return usageAccess{
			access: vk.AccessShaderReadBit,
			stages: vk.PipelineStageFragmentShaderBit,
			layout: vk.ImageLayoutShaderReadOnlyOptimal,
		}
	case framegraph.UsageConstantBuffer:
		s := shaderStages
		if s == 0 {
			s = vk.PipelineStageVertexShaderBit | vk.PipelineStageFragmentShaderBit
		}
		return usageAccess{
			access: vk.AccessUniformReadBit,
			stages: s,
		}
	case framegraph.UsageSampledTexture:
		s := shaderStages
		if s == 0 {
			s = vk.PipelineStageFragmentShaderBit
		}
		return usageAccess{
			access: vk.AccessShaderReadBit,
			stages: s,
			layout: vk.ImageLayoutShaderReadOnlyOptimal,
		}
	case framegraph.UsageStorageRead:
		s := shaderStages
		if s == 0 {
			s = vk.PipelineStageComputeShaderBit
		}
		return usageAccess{
			access: vk.AccessShaderReadBit,
			stages: s,
			layout: vk.ImageLayoutGeneral,
		}
	case framegraph.UsageStorageWrite:
		s := shaderStages
		if s == 0 {
			s = vk.PipelineStageComputeShaderBit
		}
		return usageAccess{
			access: vk.AccessShaderReadBit | vk.AccessShaderWriteBit,
			stages: s,
			layout: vk.ImageLayoutGeneral,
		}
	case framegraph.UsageColorAttachmentRead:
		return usageAccess{
			access: vk.AccessColorAttachmentReadBit,
			stages: vk.PipelineStageColorAttachmentOutputBit,
			layout: vk.ImageLayoutColorAttachmentOptimal,
		}
	case framegraph.UsageColorAttachmentWrite:
		return usageAccess{
			access: vk.AccessColorAttachmentReadBit | vk.AccessColorAttachmentWriteBit,
			stages: vk.PipelineStageColorAttachmentOutputBit,
			layout: vk.ImageLayoutColorAttachmentOptimal,
		}
	case framegraph.UsageDepthStencilRead:
		return usageAccess{
			access: vk.AccessDepthStencilAttachmentReadBit,
			stages: vk.PipelineStageEarlyFragmentTestsBit | vk.PipelineStageLateFragmentTestsBit,
			layout: vk.ImageLayoutDepthStencilReadOnlyOptimal,
		}
	case framegraph.UsageDepthStencilWrite:
		return usageAccess{
			access: vk.AccessDepthStencilAttachmentReadBit | vk.AccessDepthStencilAttachmentWriteBit,
			stages: vk.PipelineStageEarlyFragmentTestsBit | vk.PipelineStageLateFragmentTestsBit,
			layout: vk.ImageLayoutDepthStencilAttachmentOptimal,
		}
	case framegraph.UsageTransferSource:
		return usageAccess{
			access: vk.AccessTransferReadBit,
			stages: vk.PipelineStageTransferBit,
			layout: vk.ImageLayoutTransferSrcOptimal,
		}
	case framegraph.UsageTransferDestination:
		return usageAccess{
			access: vk.AccessTransferWriteBit,
			stages: vk.PipelineStageTransferBit,
			layout: vk.ImageLayoutTransferDstOptimal,
		}
	case framegraph.UsageIndirect:
		return usageAccess{
			access: vk.AccessIndirectCommandReadBit,
			stages: vk.PipelineStageDrawIndirectBit,
		}
	case framegraph.UsageIndexBuffer:
		return usageAccess{
			access: vk.AccessIndexReadBit,
			stages: vk.PipelineStageVertexInputBit,
		}
	case framegraph.UsageVertexBuffer:
		return usageAccess{
			access: vk.AccessVertexAttributeReadBit,
			stages: vk.PipelineStageVertexInputBit,
		}
	case framegraph.UsagePresent:
		return usageAccess{
			access: 0,
			stages: vk.PipelineStageBottomOfPipeBit,
			layout: vk.ImageLayoutPresentSrcKHR,
		}
	}

	_ = depthStencil
	return usageAccess{
		access: vk.AccessMemoryReadBit | vk.AccessMemoryWriteBit,
		stages: vk.PipelineStageAllCommandsBit,
		layout: vk.ImageLayoutGeneral,
	}
}

// deriveUsageFor resolves the depth/stencil parameter from the record's
// usage kind for attachment accesses.
func deriveUsageFor(u framegraph.UsageRecord) usageAccess {
	depthStencil := u.Kind == framegraph.UsageDepthStencilRead || u.Kind == framegraph.UsageDepthStencilWrite
	return deriveUsage(u.Kind, u.Stages, depthStencil)
}
