// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/framegraph"
	"github.com/gogpu/framegraph/vulkan/memory"
	"github.com/gogpu/framegraph/vulkan/vk"
)

// textureFormatToVk converts a gputypes texture format to VkFormat.
func textureFormatToVk(format gputypes.TextureFormat) vk.Format {
	switch format {
	case gputypes.TextureFormatR8Unorm:
		return vk.FormatR8Unorm
	case gputypes.TextureFormatR8Snorm:
		return vk.FormatR8Snorm
	case gputypes.TextureFormatR8Uint:
		return vk.FormatR8Uint
	case gputypes.TextureFormatR8Sint:
		return vk.FormatR8Sint
	case gputypes.TextureFormatRG8Unorm:
		return vk.FormatR8G8Unorm
	case gputypes.TextureFormatRGBA8Unorm:
		return vk.FormatR8G8B8A8Unorm
	case gputypes.TextureFormatRGBA8Snorm:
		return vk.FormatR8G8B8A8Snorm
	case gputypes.TextureFormatRGBA8Uint:
		return vk.FormatR8G8B8A8Uint
	case gputypes.TextureFormatRGBA8Sint:
		return vk.FormatR8G8B8A8Sint
	case gputypes.TextureFormatRGBA8UnormSrgb:
		return vk.FormatR8G8B8A8Srgb
	case gputypes.TextureFormatBGRA8Unorm:
		return vk.FormatB8G8R8A8Unorm
	case gputypes.TextureFormatBGRA8UnormSrgb:
		return vk.FormatB8G8R8A8Srgb
	case gputypes.TextureFormatRGB10A2Unorm:
		return vk.FormatA2B10G10R10Unorm
	case gputypes.TextureFormatRG11B10Ufloat:
		return vk.FormatB10G11R11Ufloat
	case gputypes.TextureFormatR16Float:
		return vk.FormatR16Float
	case gputypes.TextureFormatRG16Float:
		return vk.FormatR16G16Float
	case gputypes.TextureFormatRGBA16Float:
		return vk.FormatR16G16B16A16Float
	case gputypes.TextureFormatR32Uint:
		return vk.FormatR32Uint
	case gputypes.TextureFormatR32Sint:
		return vk.FormatR32Sint
	case gputypes.TextureFormatR32Float:
		return vk.FormatR32Float
	case gputypes.TextureFormatRG32Float:
		return vk.FormatR32G32Float
	case gputypes.TextureFormatRGBA32Uint:
		return vk.FormatR32G32B32A32Uint
	case gputypes.TextureFormatRGBA32Sint:
		return vk.FormatR32G32B32A32Sint
	case gputypes.TextureFormatRGBA32Float:
		return vk.FormatR32G32B32A32Float
	case gputypes.TextureFormatDepth16Unorm:
		return vk.FormatD16Unorm
	case gputypes.TextureFormatDepth32Float:
		return vk.FormatD32Float
	case gputypes.TextureFormatDepth24PlusStencil8:
		return vk.FormatD24UnormS8Uint
	case gputypes.TextureFormatDepth32FloatStencil8:
		return vk.FormatD32FloatS8Uint
	case gputypes.TextureFormatStencil8:
		return vk.FormatS8Uint
	default:
		return vk.FormatUndefined
	}
}

// formatIsDepthStencil reports whether the format carries depth or
// stencil aspects.
func formatIsDepthStencil(format gputypes.TextureFormat) bool {
	switch format {
	case gputypes.TextureFormatDepth16Unorm,
		gputypes.TextureFormatDepth24Plus,
		gputypes.TextureFormatDepth24PlusStencil8,
		gputypes.TextureFormatDepth32Float,
		gputypes.TextureFormatDepth32FloatStencil8,
		gputypes.TextureFormatStencil8:
		return true
	}
	return false
}

// formatAspect returns the aspect mask for the format.
func formatAspect(format gputypes.TextureFormat) vk.ImageAspectFlags {
	switch format {
	case gputypes.TextureFormatDepth16Unorm,
		gputypes.TextureFormatDepth24Plus,
		gputypes.TextureFormatDepth32Float:
		return vk.ImageAspectDepthBit
	case gputypes.TextureFormatStencil8:
		return vk.ImageAspectStencilBit
	case gputypes.TextureFormatDepth24PlusStencil8,
		gputypes.TextureFormatDepth32FloatStencil8:
		return vk.ImageAspectDepthBit | vk.ImageAspectStencilBit
	default:
		return vk.ImageAspectColorBit
	}
}

// textureUsageToVk converts gputypes texture usage bits to
// VkImageUsageFlags.
func textureUsageToVk(usage gputypes.TextureUsage, depthStencil bool) vk.ImageUsageFlags {
	var flags vk.ImageUsageFlags
	if usage&gputypes.TextureUsageCopySrc != 0 {
		flags |= vk.ImageUsageTransferSrcBit
	}
	if usage&gputypes.TextureUsageCopyDst != 0 {
		flags |= vk.ImageUsageTransferDstBit
	}
	if usage&gputypes.TextureUsageTextureBinding != 0 {
		flags |= vk.ImageUsageSampledBit
	}
	if usage&gputypes.TextureUsageStorageBinding != 0 {
		flags |= vk.ImageUsageStorageBit
	}
	if usage&gputypes.TextureUsageRenderAttachment != 0 {
		if depthStencil {
			flags |= vk.ImageUsageDepthStencilAttachmentBit
		} else {
			flags |= vk.ImageUsageColorAttachmentBit
		}
	}
	return flags
}

// bufferUsageToVk converts gputypes buffer usage bits to
// VkBufferUsageFlags.
func bufferUsageToVk(usage gputypes.BufferUsage) vk.BufferUsageFlags {
	var flags vk.BufferUsageFlags
	if usage&gputypes.BufferUsageCopySrc != 0 {
		flags |= vk.BufferUsageTransferSrcBit
	}
	if usage&gputypes.BufferUsageCopyDst != 0 {
		flags |= vk.BufferUsageTransferDstBit
	}
	if usage&gputypes.BufferUsageUniform != 0 {
		flags |= vk.BufferUsageUniformBufferBit
	}
	if usage&gputypes.BufferUsageStorage != 0 {
		flags |= vk.BufferUsageStorageBufferBit
	}
	if usage&gputypes.BufferUsageIndex != 0 {
		flags |= vk.BufferUsageIndexBufferBit
	}
	if usage&gputypes.BufferUsageVertex != 0 {
		flags |= vk.BufferUsageVertexBufferBit
	}
	if usage&gputypes.BufferUsageIndirect != 0 {
		flags |= vk.BufferUsageIndirectBufferBit
	}
	return flags
}

// storageModeToMemoryUsage maps a storage mode to allocator usage flags.
func storageModeToMemoryUsage(mode framegraph.StorageMode) memory.UsageFlags {
	switch mode {
	case framegraph.StorageShared:
		return memory.UsageHostAccess | memory.UsageUpload
	case framegraph.StorageManaged:
		return memory.UsageHostAccess | memory.UsageManaged
	default:
		return memory.UsageFastDeviceAccess
	}
}

// loadActionToVk converts a load action.
func loadActionToVk(action framegraph.LoadAction) vk.AttachmentLoadOp {
	switch action {
	case framegraph.LoadLoad:
		return vk.AttachmentLoadOpLoad
	case framegraph.LoadClear:
		return vk.AttachmentLoadOpClear
	default:
		return vk.AttachmentLoadOpDontCare
	}
}

// storeActionToVk converts a store action.
func storeActionToVk(action framegraph.StoreAction) vk.AttachmentStoreOp {
	switch action {
	case framegraph.StoreStore:
		return vk.AttachmentStoreOpStore
	default:
		return vk.AttachmentStoreOpDontCare
	}
}

// shaderStagesToVk converts frontend shader stages to pipeline stage
// flags for synchronization.
func shaderStagesToVk(stages gputypes.ShaderStages) vk.PipelineStageFlags {
	var flags vk.PipelineStageFlags
	if stages&gputypes.ShaderStageVertex != 0 {
		flags |= vk.PipelineStageVertexShaderBit
	}
	if stages&gputypes.ShaderStageFragment != 0 {
		flags |= vk.PipelineStageFragmentShaderBit
	}
	if stages&gputypes.ShaderStageCompute != 0 {
		flags |= vk.PipelineStageComputeShaderBit
	}
	return flags
}

// vertexFormatToVk converts a gputypes vertex format.
func vertexFormatToVk(format gputypes.VertexFormat) vk.Format {
	switch format {
	case gputypes.VertexFormatFloat32:
		return vk.FormatR32Float
	case gputypes.VertexFormatFloat32x2:
		return vk.FormatR32G32Float
	case gputypes.VertexFormatFloat32x3:
		return vk.FormatR32G32B32Float
	case gputypes.VertexFormatFloat32x4:
		return vk.FormatR32G32B32A32Float
	case gputypes.VertexFormatUint32:
		return vk.FormatR32Uint
	case gputypes.VertexFormatSint32:
		return vk.FormatR32Sint
	default:
		return vk.FormatUndefined
	}
}

// topologyToVk converts a primitive topology.
func topologyToVk(topology gputypes.PrimitiveTopology) vk.PrimitiveTopology {
	switch topology {
	case gputypes.PrimitiveTopologyPointList:
		return vk.PrimitiveTopologyPointList
	case gputypes.PrimitiveTopologyLineList:
		return vk.PrimitiveTopologyLineList
	case gputypes.PrimitiveTopologyLineStrip:
		return vk.PrimitiveTopologyLineStrip
	case gputypes.PrimitiveTopologyTriangleStrip:
		return vk.PrimitiveTopologyTriangleStrip
	default:
		return vk.PrimitiveTopologyTriangleList
	}
}

// cullModeToVk converts a cull mode.
func cullModeToVk(mode gputypes.CullMode) vk.CullModeFlags {
	switch mode {
	case gputypes.CullModeFront:
		return vk.CullModeFrontBit
	case gputypes.CullModeBack:
		return vk.CullModeBackBit
	default:
		return vk.CullModeNone
	}
}

// frontFaceToVk converts a front-face winding.
func frontFaceToVk(face gputypes.FrontFace) vk.FrontFace {
	if face == gputypes.FrontFaceCW {
		return vk.FrontFaceClockwise
	}
	return vk.FrontFaceCounterClockwise
}

// compareFunctionToVk converts a compare function.
func compareFunctionToVk(fn gputypes.CompareFunction) vk.CompareOp {
	switch fn {
	case gputypes.CompareFunctionNever:
		return vk.CompareOpNever
	case gputypes.CompareFunctionLess:
		return vk.CompareOpLess
	case gputypes.CompareFunctionEqual:
		return vk.CompareOpEqual
	case gputypes.CompareFunctionLessEqual:
		return vk.CompareOpLessOrEqual
	case gputypes.CompareFunctionGreater:
		return vk.CompareOpGreater
	case gputypes.CompareFunctionNotEqual:
		return vk.CompareOpNotEqual
	case gputypes.CompareFunctionGreaterEqual:
		return vk.CompareOpGreaterOrEqual
	default:
		return vk.CompareOpAlways
	}
}

// indexFormatToVk converts an index format.
func indexFormatToVk(format gputypes.IndexFormat) vk.IndexType {
	if format == gputypes.IndexFormatUint32 {
		return vk.IndexTypeUint32
	}
	return vk.IndexTypeUint16
}

// filterToVk converts a filter mode.
func filterToVk(mode gputypes.FilterMode) vk.Filter {
	if mode == gputypes.FilterModeLinear {
		return vk.FilterLinear
	}
	return vk.FilterNearest
}

// addressModeToVk converts a sampler address mode.
func addressModeToVk(mode gputypes.AddressMode) vk.SamplerAddressMode {
	switch mode {
	case gputypes.AddressModeRepeat:
		return vk.SamplerAddressModeRepeat
	case gputypes.AddressModeMirrorRepeat:
		return vk.SamplerAddressModeMirroredRepeat
	default:
		return vk.SamplerAddressModeClampToEdge
	}
}
