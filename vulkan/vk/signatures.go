// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// CallInterface signatures reused across Vulkan functions with identical
// parameter types. Vulkan has ~700 functions but only a few dozen unique
// signatures; this backend needs the subset below.

package vk

import (
	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

// Signature templates. Naming: Sig<Ret><Args>, with Handle meaning a
// 64-bit Vulkan handle and Ptr a C pointer.
var (
	// === Result-returning signatures ===

	// VkResult(ptr, ptr, ptr) - vkCreateInstance
	SigResultPtrPtrPtr types.CallInterface

	// VkResult(handle) - vkEndCommandBuffer, vkQueueWaitIdle
	SigResultHandle types.CallInterface

	// VkResult(handle, ptr) - vkBeginCommandBuffer, vkQueuePresentKHR
	SigResultHandlePtr types.CallInterface

	// VkResult(handle, ptr, ptr) - vkEnumeratePhysicalDevices,
	// vkAllocateCommandBuffers, vkAllocateDescriptorSets
	SigResultHandlePtrPtr types.CallInterface

	// VkResult(handle, ptr, ptr, ptr) - vkCreateDevice,
	// vkEnumerateDeviceExtensionProperties and all vkCreate* taking
	// (device, createInfo, allocator, out)
	SigResultHandlePtrPtrPtr types.CallInterface

	// VkResult(handle, handle, ptr) - vkGetSemaphoreCounterValue
	SigResultHandleHandlePtr types.CallInterface

	// VkResult(handle, handle, ptr, ptr) - vkGetPipelineCacheData
	SigResultHandleHandlePtrPtr types.CallInterface

	// VkResult(handle, handle) - vkGetFenceStatus
	SigResultHandleHandle types.CallInterface

	// VkResult(handle, handle, u32) - vkResetCommandPool,
	// vkResetDescriptorPool
	SigResultHandleHandleU32 types.CallInterface

	// VkResult(handle, u32, ptr) - vkResetFences,
	// vkFlushMappedMemoryRanges
	SigResultHandleU32Ptr types.CallInterface

	// VkResult(handle, u32, ptr, handle) - vkQueueSubmit
	SigResultHandleU32PtrHandle types.CallInterface

	// VkResult(handle, u32, handle, ptr) -
	// vkGetPhysicalDeviceSurfaceSupportKHR
	SigResultHandleU32HandlePtr types.CallInterface

	// VkResult(handle, handle, handle, u64) - vkBindBufferMemory,
	// vkBindImageMemory
	SigResultHandle3U64 types.CallInterface

	// VkResult(handle, handle, u64, u64, u32, ptr) - vkMapMemory
	SigResultMapMemory types.CallInterface

	// VkResult(handle, u32, ptr, u32, u64) - vkWaitForFences
	SigResultWaitForFences types.CallInterface

	// VkResult(handle, ptr, u64) - vkWaitSemaphores
	SigResultHandlePtrU64 types.CallInterface

	// VkResult(handle, handle, u32, ptr, ptr, ptr) -
	// vkCreateGraphicsPipelines, vkCreateComputePipelines
	SigResultCreatePipelines types.CallInterface

	// === Void-returning signatures ===

	// void(handle) - vkCmdEndRenderPass
	SigVoidHandle types.CallInterface

	// void(handle, ptr) - vkDestroyInstance, vkDestroyDevice,
	// vkGetPhysicalDeviceProperties, vkCmdBeginDebugUtilsLabelEXT
	SigVoidHandlePtr types.CallInterface

	// void(handle, ptr, ptr) - vkGetPhysicalDeviceQueueFamilyProperties
	SigVoidHandlePtrPtr types.CallInterface

	// void(handle, ptr, u32) - vkCmdBeginRenderPass
	SigVoidHandlePtrU32 types.CallInterface

	// void(handle, u32) - vkCmdNextSubpass
	SigVoidHandleU32 types.CallInterface

	// void(handle, handle) - vkUnmapMemory
	SigVoidHandleHandle types.CallInterface

	// void(handle, handle, ptr) - vkDestroyBuffer, vkFreeMemory and all
	// vkDestroy* taking (device, object, allocator)
	SigVoidHandleHandlePtr types.CallInterface

	// void(handle, handle, u32, ptr) - vkFreeCommandBuffers
	SigVoidHandleHandleU32Ptr types.CallInterface

	// void(handle, u32, u32, ptr) - vkGetDeviceQueue, vkCmdSetViewport,
	// vkCmdSetScissor
	SigVoidHandleU32U32Ptr types.CallInterface

	// void(handle, u32, u32, ptr, ptr) - vkCmdBindVertexBuffers
	SigVoidHandleU32U32PtrPtr types.CallInterface

	// void(handle, u32, ptr, u32, ptr) - vkUpdateDescriptorSets
	SigVoidHandleU32PtrU32Ptr types.CallInterface

	// void(handle, u32, handle) - vkCmdBindPipeline
	SigVoidHandleU32Handle types.CallInterface

	// void(handle, handle, u64, u32) - vkCmdBindIndexBuffer
	SigVoidHandleHandleU64U32 types.CallInterface

	// void(handle, handle, u64, u32, u32) - vkCmdDrawIndirect,
	// vkCmdDrawIndexedIndirect
	SigVoidHandleHandleU64U32U32 types.CallInterface

	// void(handle, handle, u64) - vkCmdDispatchIndirect
	SigVoidHandleHandleU64 types.CallInterface

	// void(handle, u32, u32, u32) - vkCmdDispatch
	SigVoidHandleU32U32U32 types.CallInterface

	// void(handle, u32, u32, u32, u32) - vkCmdDraw
	SigVoidHandleU32x4 types.CallInterface

	// void(handle, u32, u32, u32, i32, u32) - vkCmdDrawIndexed
	SigVoidHandleU32x3I32U32 types.CallInterface

	// void(handle, u32, handle, u32, u32, ptr, u32, ptr) -
	// vkCmdBindDescriptorSets
	SigVoidCmdBindDescriptorSets types.CallInterface

	// void(handle, u32, u32, u32, u32, ptr, u32, ptr, u32, ptr) -
	// vkCmdPipelineBarrier
	SigVoidCmdPipelineBarrier types.CallInterface

	// void(handle, handle, u64, u64, u32) - vkCmdFillBuffer
	SigVoidCmdFillBuffer types.CallInterface

	// void(handle, handle, handle, u32, ptr) - vkCmdCopyBuffer
	SigVoidCmdCopyBuffer types.CallInterface

	// void(handle, handle, u32, handle, u32, u32, ptr) - vkCmdCopyImage
	SigVoidCmdCopyImage types.CallInterface

	// void(handle, handle, u32, handle, u32, u32, ptr, u32) -
	// vkCmdBlitImage
	SigVoidCmdBlitImage types.CallInterface

	// void(handle, handle, handle, u32, u32, ptr) -
	// vkCmdCopyBufferToImage
	SigVoidCmdCopyBufferToImage types.CallInterface

	// void(handle, handle, u32, handle, u32, ptr) -
	// vkCmdCopyImageToBuffer
	SigVoidCmdCopyImageToBuffer types.CallInterface

	// void(handle, handle, u32, u32, u32, ptr) - vkCmdPushConstants
	SigVoidCmdPushConstants types.CallInterface
)

// InitSignatures prepares all CallInterface templates.
// Must be called once after loading the Vulkan library.
func InitSignatures() error {
	ptr := types.PointerTypeDescriptor
	u32 := types.UInt32TypeDescriptor
	u64 := types.UInt64TypeDescriptor
	i32 := types.SInt32TypeDescriptor
	voidRet := types.VoidTypeDescriptor
	resultRet := types.SInt32TypeDescriptor // VkResult is int32

	var err error
	prep := func(cif *types.CallInterface, ret *types.TypeDescriptor, args ...*types.TypeDescriptor) {
		if err == nil {
			err = ffi.PrepareCallInterface(cif, types.DefaultCall, ret, args)
		}
	}

	prep(&SigResultPtrPtrPtr, resultRet, ptr, ptr, ptr)
	prep(&SigResultHandle, resultRet, u64)
	prep(&SigResultHandlePtr, resultRet, u64, ptr)
	prep(&SigResultHandlePtrPtr, resultRet, u64, ptr, ptr)
	prep(&SigResultHandlePtrPtrPtr, resultRet, u64, ptr, ptr, ptr)
	prep(&SigResultHandleHandlePtr, resultRet, u64, u64, ptr)
	prep(&SigResultHandleHandlePtrPtr, resultRet, u64, u64, ptr, ptr)
	prep(&SigResultHandleHandle, resultRet, u64, u64)
	prep(&SigResultHandleHandleU32, resultRet, u64, u64, u32)
	prep(&SigResultHandleU32Ptr, resultRet, u64, u32, ptr)
	prep(&SigResultHandleU32PtrHandle, resultRet, u64, u32, ptr, u64)
	prep(&SigResultHandleU32HandlePtr, resultRet, u64, u32, u64, ptr)
	prep(&SigResultHandle3U64, resultRet, u64, u64, u64, u64)
	prep(&SigResultMapMemory, resultRet, u64, u64, u64, u64, u32, ptr)
	prep(&SigResultWaitForFences, resultRet, u64, u32, ptr, u32, u64)
	prep(&SigResultHandlePtrU64, resultRet, u64, ptr, u64)
	prep(&SigResultCreatePipelines, resultRet, u64, u64, u32, ptr, ptr, ptr)

	prep(&SigVoidHandle, voidRet, u64)
	prep(&SigVoidHandlePtr, voidRet, u64, ptr)
	prep(&SigVoidHandlePtrPtr, voidRet, u64, ptr, ptr)
	prep(&SigVoidHandlePtrU32, voidRet, u64, ptr, u32)
	prep(&SigVoidHandleU32, voidRet, u64, u32)
	prep(&SigVoidHandleHandle, voidRet, u64, u64)
	prep(&SigVoidHandleHandlePtr, voidRet, u64, u64, ptr)
	prep(&SigVoidHandleHandleU32Ptr, voidRet, u64, u64, u32, ptr)
	prep(&SigVoidHandleU32U32Ptr, voidRet, u64, u32, u32, ptr)
	prep(&SigVoidHandleU32U32PtrPtr, voidRet, u64, u32, u32, ptr, ptr)
	prep(&SigVoidHandleU32PtrU32Ptr, voidRet, u64, u32, ptr, u32, ptr)
	prep(&SigVoidHandleU32Handle, voidRet, u64, u32, u64)
	prep(&SigVoidHandleHandleU64U32, voidRet, u64, u64, u64, u32)
	prep(&SigVoidHandleHandleU64U32U32, voidRet, u64, u64, u64, u32, u32)
	prep(&SigVoidHandleHandleU64, voidRet, u64, u64, u64)
	prep(&SigVoidHandleU32U32U32, voidRet, u64, u32, u32, u32)
	prep(&SigVoidHandleU32x4, voidRet, u64, u32, u32, u32, u32)
	prep(&SigVoidHandleU32x3I32U32, voidRet, u64, u32, u32, u32, i32, u32)
	prep(&SigVoidCmdBindDescriptorSets, voidRet, u64, u32, u64, u32, u32, ptr, u32, ptr)
	prep(&SigVoidCmdPipelineBarrier, voidRet, u64, u32, u32, u32, u32, ptr, u32, ptr, u32, ptr)
	prep(&SigVoidCmdFillBuffer, voidRet, u64, u64, u64, u64, u32)
	prep(&SigVoidCmdCopyBuffer, voidRet, u64, u64, u64, u32, ptr)
	prep(&SigVoidCmdCopyImage, voidRet, u64, u64, u32, u64, u32, u32, ptr)
	prep(&SigVoidCmdBlitImage, voidRet, u64, u64, u32, u64, u32, u32, ptr, u32)
	prep(&SigVoidCmdCopyBufferToImage, voidRet, u64, u64, u64, u32, u32, ptr)
	prep(&SigVoidCmdCopyImageToBuffer, voidRet, u64, u64, u32, u64, u32, ptr)
	prep(&SigVoidCmdPushConstants, voidRet, u64, u64, u32, u32, u32, ptr)

	return err
}
