// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Typed wrappers over the loaded function pointers. Each wrapper builds
// the goffi argument array (pointers to where the values are stored) and
// dispatches through the shared signature templates.

package vk

import (
	"unsafe"

	"github.com/go-webgpu/goffi/types"
)

type callInterface = types.CallInterface

// --- Instance and device bootstrap ---

// CreateInstance wraps vkCreateInstance.
func (c *Commands) CreateInstance(createInfo *InstanceCreateInfo, allocator unsafe.Pointer, instance *Instance) Result {
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&createInfo),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&instance),
	}
	return callResult(&SigResultPtrPtrPtr, c.createInstance, args[:])
}

// DestroyInstance wraps vkDestroyInstance.
func (c *Commands) DestroyInstance(instance Instance, allocator unsafe.Pointer) {
	args := [2]unsafe.Pointer{
		unsafe.Pointer(&instance),
		unsafe.Pointer(&allocator),
	}
	callVoid(&SigVoidHandlePtr, c.destroyInstance, args[:])
}

// EnumeratePhysicalDevices wraps vkEnumeratePhysicalDevices.
func (c *Commands) EnumeratePhysicalDevices(instance Instance, count *uint32, devices *PhysicalDevice) Result {
	countPtr := unsafe.Pointer(count)
	devicesPtr := unsafe.Pointer(devices)
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&instance),
		unsafe.Pointer(&countPtr),
		unsafe.Pointer(&devicesPtr),
	}
	return callResult(&SigResultHandlePtrPtr, c.enumeratePhysicalDevices, args[:])
}

// GetPhysicalDeviceProperties wraps vkGetPhysicalDeviceProperties.
func (c *Commands) GetPhysicalDeviceProperties(device PhysicalDevice, props *PhysicalDeviceProperties) {
	args := [2]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&props),
	}
	callVoid(&SigVoidHandlePtr, c.getPhysicalDeviceProperties, args[:])
}

// GetPhysicalDeviceQueueFamilyProperties wraps
// vkGetPhysicalDeviceQueueFamilyProperties.
func (c *Commands) GetPhysicalDeviceQueueFamilyProperties(device PhysicalDevice, count *uint32, props *QueueFamilyProperties) {
	countPtr := unsafe.Pointer(count)
	propsPtr := unsafe.Pointer(props)
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&countPtr),
		unsafe.Pointer(&propsPtr),
	}
	callVoid(&SigVoidHandlePtrPtr, c.getPhysicalDeviceQueueFamilyProperties, args[:])
}

// GetPhysicalDeviceMemoryProperties wraps
// vkGetPhysicalDeviceMemoryProperties.
func (c *Commands) GetPhysicalDeviceMemoryProperties(device PhysicalDevice, props *PhysicalDeviceMemoryProperties) {
	args := [2]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&props),
	}
	callVoid(&SigVoidHandlePtr, c.getPhysicalDeviceMemoryProperties, args[:])
}

// EnumerateDeviceExtensionProperties wraps
// vkEnumerateDeviceExtensionProperties with pLayerName = NULL.
func (c *Commands) EnumerateDeviceExtensionProperties(device PhysicalDevice, count *uint32, props *ExtensionProperties) Result {
	var layerName unsafe.Pointer
	countPtr := unsafe.Pointer(count)
	propsPtr := unsafe.Pointer(props)
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&layerName),
		unsafe.Pointer(&countPtr),
		unsafe.Pointer(&propsPtr),
	}
	return callResult(&SigResultHandlePtrPtrPtr, c.enumerateDeviceExtensionProperties, args[:])
}

// CreateDevice wraps vkCreateDevice.
func (c *Commands) CreateDevice(physicalDevice PhysicalDevice, createInfo *DeviceCreateInfo, allocator unsafe.Pointer, device *Device) Result {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&physicalDevice),
		unsafe.Pointer(&createInfo),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&device),
	}
	return callResult(&SigResultHandlePtrPtrPtr, c.createDevice, args[:])
}

// GetPhysicalDeviceSurfaceSupportKHR wraps
// vkGetPhysicalDeviceSurfaceSupportKHR.
func (c *Commands) GetPhysicalDeviceSurfaceSupportKHR(device PhysicalDevice, queueFamily uint32, surface SurfaceKHR, supported *Bool32) Result {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&queueFamily),
		unsafe.Pointer(&surface),
		unsafe.Pointer(&supported),
	}
	return callResult(&SigResultHandleU32HandlePtr, c.getPhysicalDeviceSurfaceSupportKHR, args[:])
}

// DestroyDevice wraps vkDestroyDevice.
func (c *Commands) DestroyDevice(device Device, allocator unsafe.Pointer) {
	args := [2]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&allocator),
	}
	callVoid(&SigVoidHandlePtr, c.destroyDevice, args[:])
}

// GetDeviceQueue wraps vkGetDeviceQueue.
func (c *Commands) GetDeviceQueue(device Device, queueFamily, queueIndex uint32, queue *Queue) {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&queueFamily),
		unsafe.Pointer(&queueIndex),
		unsafe.Pointer(&queue),
	}
	callVoid(&SigVoidHandleU32U32Ptr, c.getDeviceQueue, args[:])
}

// --- Submission and synchronization ---

// QueueSubmit wraps vkQueueSubmit.
func (c *Commands) QueueSubmit(queue Queue, submitCount uint32, submits *SubmitInfo, fence Fence) Result {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&queue),
		unsafe.Pointer(&submitCount),
		unsafe.Pointer(&submits),
		unsafe.Pointer(&fence),
	}
	return callResult(&SigResultHandleU32PtrHandle, c.queueSubmit, args[:])
}

// QueueWaitIdle wraps vkQueueWaitIdle.
func (c *Commands) QueueWaitIdle(queue Queue) Result {
	args := [1]unsafe.Pointer{unsafe.Pointer(&queue)}
	return callResult(&SigResultHandle, c.queueWaitIdle, args[:])
}

// DeviceWaitIdle wraps vkDeviceWaitIdle.
func (c *Commands) DeviceWaitIdle(device Device) Result {
	args := [1]unsafe.Pointer{unsafe.Pointer(&device)}
	return callResult(&SigResultHandle, c.deviceWaitIdle, args[:])
}

// QueuePresentKHR wraps vkQueuePresentKHR.
func (c *Commands) QueuePresentKHR(queue Queue, presentInfo *PresentInfoKHR) Result {
	args := [2]unsafe.Pointer{
		unsafe.Pointer(&queue),
		unsafe.Pointer(&presentInfo),
	}
	return callResult(&SigResultHandlePtr, c.queuePresentKHR, args[:])
}

// CreateFence wraps vkCreateFence.
func (c *Commands) CreateFence(device Device, createInfo *FenceCreateInfo, allocator unsafe.Pointer, fence *Fence) Result {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&createInfo),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&fence),
	}
	return callResult(&SigResultHandlePtrPtrPtr, c.createFence, args[:])
}

// DestroyFence wraps vkDestroyFence.
func (c *Commands) DestroyFence(device Device, fence Fence, allocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&fence),
		unsafe.Pointer(&allocator),
	}
	callVoid(&SigVoidHandleHandlePtr, c.destroyFence, args[:])
}

// ResetFences wraps vkResetFences.
func (c *Commands) ResetFences(device Device, count uint32, fences *Fence) Result {
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&count),
		unsafe.Pointer(&fences),
	}
	return callResult(&SigResultHandleU32Ptr, c.resetFences, args[:])
}

// GetFenceStatus wraps vkGetFenceStatus.
func (c *Commands) GetFenceStatus(device Device, fence Fence) Result {
	args := [2]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&fence),
	}
	return callResult(&SigResultHandleHandle, c.getFenceStatus, args[:])
}

// WaitForFences wraps vkWaitForFences.
func (c *Commands) WaitForFences(device Device, count uint32, fences *Fence, waitAll Bool32, timeoutNs uint64) Result {
	args := [5]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&count),
		unsafe.Pointer(&fences),
		unsafe.Pointer(&waitAll),
		unsafe.Pointer(&timeoutNs),
	}
	return callResult(&SigResultWaitForFences, c.waitForFences, args[:])
}

// CreateSemaphore wraps vkCreateSemaphore. Chain a SemaphoreTypeCreateInfo
// through PNext to create a timeline semaphore.
func (c *Commands) CreateSemaphore(device Device, createInfo *SemaphoreCreateInfo, allocator unsafe.Pointer, semaphore *Semaphore) Result {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&createInfo),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&semaphore),
	}
	return callResult(&SigResultHandlePtrPtrPtr, c.createSemaphore, args[:])
}

// DestroySemaphore wraps vkDestroySemaphore.
func (c *Commands) DestroySemaphore(device Device, semaphore Semaphore, allocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&semaphore),
		unsafe.Pointer(&allocator),
	}
	callVoid(&SigVoidHandleHandlePtr, c.destroySemaphore, args[:])
}

// GetSemaphoreCounterValue wraps vkGetSemaphoreCounterValue (Vulkan 1.2).
func (c *Commands) GetSemaphoreCounterValue(device Device, semaphore Semaphore, value *uint64) Result {
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&semaphore),
		unsafe.Pointer(&value),
	}
	return callResult(&SigResultHandleHandlePtr, c.getSemaphoreCounterValue, args[:])
}

// WaitSemaphores wraps vkWaitSemaphores (Vulkan 1.2).
func (c *Commands) WaitSemaphores(device Device, waitInfo *SemaphoreWaitInfo, timeoutNs uint64) Result {
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&waitInfo),
		unsafe.Pointer(&timeoutNs),
	}
	return callResult(&SigResultHandlePtrU64, c.waitSemaphores, args[:])
}

// --- Memory ---

// AllocateMemory wraps vkAllocateMemory.
func (c *Commands) AllocateMemory(device Device, allocInfo *MemoryAllocateInfo, allocator unsafe.Pointer, memory *DeviceMemory) Result {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&allocInfo),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&memory),
	}
	return callResult(&SigResultHandlePtrPtrPtr, c.allocateMemory, args[:])
}

// FreeMemory wraps vkFreeMemory.
func (c *Commands) FreeMemory(device Device, memory DeviceMemory, allocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&memory),
		unsafe.Pointer(&allocator),
	}
	callVoid(&SigVoidHandleHandlePtr, c.freeMemory, args[:])
}

// MapMemory wraps vkMapMemory.
func (c *Commands) MapMemory(device Device, memory DeviceMemory, offset, size DeviceSize, flags MemoryMapFlags, data *uintptr) Result {
	args := [6]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&memory),
		unsafe.Pointer(&offset),
		unsafe.Pointer(&size),
		unsafe.Pointer(&flags),
		unsafe.Pointer(&data),
	}
	return callResult(&SigResultMapMemory, c.mapMemory, args[:])
}

// UnmapMemory wraps vkUnmapMemory.
func (c *Commands) UnmapMemory(device Device, memory DeviceMemory) {
	args := [2]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&memory),
	}
	callVoid(&SigVoidHandleHandle, c.unmapMemory, args[:])
}

// FlushMappedMemoryRanges wraps vkFlushMappedMemoryRanges.
func (c *Commands) FlushMappedMemoryRanges(device Device, count uint32, ranges *MappedMemoryRange) Result {
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&count),
		unsafe.Pointer(&ranges),
	}
	return callResult(&SigResultHandleU32Ptr, c.flushMappedMemoryRanges, args[:])
}

// --- Buffers, images, samplers ---

// CreateBuffer wraps vkCreateBuffer.
func (c *Commands) CreateBuffer(device Device, createInfo *BufferCreateInfo, allocator unsafe.Pointer, buffer *Buffer) Result {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&createInfo),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&buffer),
	}
	return callResult(&SigResultHandlePtrPtrPtr, c.createBuffer, args[:])
}

// DestroyBuffer wraps vkDestroyBuffer.
func (c *Commands) DestroyBuffer(device Device, buffer Buffer, allocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&allocator),
	}
	callVoid(&SigVoidHandleHandlePtr, c.destroyBuffer, args[:])
}

// GetBufferMemoryRequirements wraps vkGetBufferMemoryRequirements.
func (c *Commands) GetBufferMemoryRequirements(device Device, buffer Buffer, reqs *MemoryRequirements) {
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&reqs),
	}
	callVoid(&SigVoidHandleHandlePtr, c.getBufferMemoryRequirements, args[:])
}

// BindBufferMemory wraps vkBindBufferMemory.
func (c *Commands) BindBufferMemory(device Device, buffer Buffer, memory DeviceMemory, offset DeviceSize) Result {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&memory),
		unsafe.Pointer(&offset),
	}
	return callResult(&SigResultHandle3U64, c.bindBufferMemory, args[:])
}

// CreateImage wraps vkCreateImage.
func (c *Commands) CreateImage(device Device, createInfo *ImageCreateInfo, allocator unsafe.Pointer, image *Image) Result {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&createInfo),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&image),
	}
	return callResult(&SigResultHandlePtrPtrPtr, c.createImage, args[:])
}

// DestroyImage wraps vkDestroyImage.
func (c *Commands) DestroyImage(device Device, image Image, allocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&image),
		unsafe.Pointer(&allocator),
	}
	callVoid(&SigVoidHandleHandlePtr, c.destroyImage, args[:])
}

// GetImageMemoryRequirements wraps vkGetImageMemoryRequirements.
func (c *Commands) GetImageMemoryRequirements(device Device, image Image, reqs *MemoryRequirements) {
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&image),
		unsafe.Pointer(&reqs),
	}
	callVoid(&SigVoidHandleHandlePtr, c.getImageMemoryRequirements, args[:])
}

// BindImageMemory wraps vkBindImageMemory.
func (c *Commands) BindImageMemory(device Device, image Image, memory DeviceMemory, offset DeviceSize) Result {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&image),
		unsafe.Pointer(&memory),
		unsafe.Pointer(&offset),
	}
	return callResult(&SigResultHandle3U64, c.bindImageMemory, args[:])
}

// CreateImageView wraps vkCreateImageView.
func (c *Commands) CreateImageView(device Device, createInfo *ImageViewCreateInfo, allocator unsafe.Pointer, view *ImageView) Result {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&createInfo),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&view),
	}
	return callResult(&SigResultHandlePtrPtrPtr, c.createImageView, args[:])
}

// DestroyImageView wraps vkDestroyImageView.
func (c *Commands) DestroyImageView(device Device, view ImageView, allocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&view),
		unsafe.Pointer(&allocator),
	}
	callVoid(&SigVoidHandleHandlePtr, c.destroyImageView, args[:])
}

// CreateSampler wraps vkCreateSampler.
func (c *Commands) CreateSampler(device Device, createInfo *SamplerCreateInfo, allocator unsafe.Pointer, sampler *Sampler) Result {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&createInfo),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&sampler),
	}
	return callResult(&SigResultHandlePtrPtrPtr, c.createSampler, args[:])
}

// DestroySampler wraps vkDestroySampler.
func (c *Commands) DestroySampler(device Device, sampler Sampler, allocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&sampler),
		unsafe.Pointer(&allocator),
	}
	callVoid(&SigVoidHandleHandlePtr, c.destroySampler, args[:])
}

// --- Shaders, pipelines, descriptors ---

// CreateShaderModule wraps vkCreateShaderModule.
func (c *Commands) CreateShaderModule(device Device, createInfo *ShaderModuleCreateInfo, allocator unsafe.Pointer, module *ShaderModule) Result {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&createInfo),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&module),
	}
	return callResult(&SigResultHandlePtrPtrPtr, c.createShaderModule, args[:])
}

// DestroyShaderModule wraps vkDestroyShaderModule.
func (c *Commands) DestroyShaderModule(device Device, module ShaderModule, allocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&module),
		unsafe.Pointer(&allocator),
	}
	callVoid(&SigVoidHandleHandlePtr, c.destroyShaderModule, args[:])
}

// CreatePipelineCache wraps vkCreatePipelineCache.
func (c *Commands) CreatePipelineCache(device Device, createInfo *PipelineCacheCreateInfo, allocator unsafe.Pointer, cache *PipelineCache) Result {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&createInfo),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&cache),
	}
	return callResult(&SigResultHandlePtrPtrPtr, c.createPipelineCache, args[:])
}

// DestroyPipelineCache wraps vkDestroyPipelineCache.
func (c *Commands) DestroyPipelineCache(device Device, cache PipelineCache, allocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&cache),
		unsafe.Pointer(&allocator),
	}
	callVoid(&SigVoidHandleHandlePtr, c.destroyPipelineCache, args[:])
}

// GetPipelineCacheData wraps vkGetPipelineCacheData.
func (c *Commands) GetPipelineCacheData(device Device, cache PipelineCache, size *uintptr, data unsafe.Pointer) Result {
	sizePtr := unsafe.Pointer(size)
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&cache),
		unsafe.Pointer(&sizePtr),
		unsafe.Pointer(&data),
	}
	return callResult(&SigResultHandleHandlePtrPtr, c.getPipelineCacheData, args[:])
}

// CreateGraphicsPipelines wraps vkCreateGraphicsPipelines.
func (c *Commands) CreateGraphicsPipelines(device Device, cache PipelineCache, count uint32, createInfos *GraphicsPipelineCreateInfo, allocator unsafe.Pointer, pipelines *Pipeline) Result {
	args := [6]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&cache),
		unsafe.Pointer(&count),
		unsafe.Pointer(&createInfos),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&pipelines),
	}
	return callResult(&SigResultCreatePipelines, c.createGraphicsPipelines, args[:])
}

// CreateComputePipelines wraps vkCreateComputePipelines.
func (c *Commands) CreateComputePipelines(device Device, cache PipelineCache, count uint32, createInfos *ComputePipelineCreateInfo, allocator unsafe.Pointer, pipelines *Pipeline) Result {
	args := [6]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&cache),
		unsafe.Pointer(&count),
		unsafe.Pointer(&createInfos),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&pipelines),
	}
	return callResult(&SigResultCreatePipelines, c.createComputePipelines, args[:])
}

// DestroyPipeline wraps vkDestroyPipeline.
func (c *Commands) DestroyPipeline(device Device, pipeline Pipeline, allocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&pipeline),
		unsafe.Pointer(&allocator),
	}
	callVoid(&SigVoidHandleHandlePtr, c.destroyPipeline, args[:])
}

// CreatePipelineLayout wraps vkCreatePipelineLayout.
func (c *Commands) CreatePipelineLayout(device Device, createInfo *PipelineLayoutCreateInfo, allocator unsafe.Pointer, layout *PipelineLayout) Result {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&createInfo),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&layout),
	}
	return callResult(&SigResultHandlePtrPtrPtr, c.createPipelineLayout, args[:])
}

// DestroyPipelineLayout wraps vkDestroyPipelineLayout.
func (c *Commands) DestroyPipelineLayout(device Device, layout PipelineLayout, allocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&layout),
		unsafe.Pointer(&allocator),
	}
	callVoid(&SigVoidHandleHandlePtr, c.destroyPipelineLayout, args[:])
}

// CreateDescriptorSetLayout wraps vkCreateDescriptorSetLayout.
func (c *Commands) CreateDescriptorSetLayout(device Device, createInfo *DescriptorSetLayoutCreateInfo, allocator unsafe.Pointer, layout *DescriptorSetLayout) Result {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&createInfo),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&layout),
	}
	return callResult(&SigResultHandlePtrPtrPtr, c.createDescriptorSetLayout, args[:])
}

// DestroyDescriptorSetLayout wraps vkDestroyDescriptorSetLayout.
func (c *Commands) DestroyDescriptorSetLayout(device Device, layout DescriptorSetLayout, allocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&layout),
		unsafe.Pointer(&allocator),
	}
	callVoid(&SigVoidHandleHandlePtr, c.destroyDescriptorSetLayout, args[:])
}

// CreateDescriptorPool wraps vkCreateDescriptorPool.
func (c *Commands) CreateDescriptorPool(device Device, createInfo *DescriptorPoolCreateInfo, allocator unsafe.Pointer, pool *DescriptorPool) Result {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&createInfo),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&pool),
	}
	return callResult(&SigResultHandlePtrPtrPtr, c.createDescriptorPool, args[:])
}

// DestroyDescriptorPool wraps vkDestroyDescriptorPool.
func (c *Commands) DestroyDescriptorPool(device Device, pool DescriptorPool, allocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&pool),
		unsafe.Pointer(&allocator),
	}
	callVoid(&SigVoidHandleHandlePtr, c.destroyDescriptorPool, args[:])
}

// ResetDescriptorPool wraps vkResetDescriptorPool.
func (c *Commands) ResetDescriptorPool(device Device, pool DescriptorPool, flags uint32) Result {
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&pool),
		unsafe.Pointer(&flags),
	}
	return callResult(&SigResultHandleHandleU32, c.resetDescriptorPool, args[:])
}

// AllocateDescriptorSets wraps vkAllocateDescriptorSets.
func (c *Commands) AllocateDescriptorSets(device Device, allocInfo *DescriptorSetAllocateInfo, sets *DescriptorSet) Result {
	setsPtr := unsafe.Pointer(sets)
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&allocInfo),
		unsafe.Pointer(&setsPtr),
	}
	return callResult(&SigResultHandlePtrPtr, c.allocateDescriptorSets, args[:])
}

// UpdateDescriptorSets wraps vkUpdateDescriptorSets with no copies.
func (c *Commands) UpdateDescriptorSets(device Device, writeCount uint32, writes *WriteDescriptorSet) {
	var copyCount uint32
	var copies unsafe.Pointer
	args := [5]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&writeCount),
		unsafe.Pointer(&writes),
		unsafe.Pointer(&copyCount),
		unsafe.Pointer(&copies),
	}
	callVoid(&SigVoidHandleU32PtrU32Ptr, c.updateDescriptorSets, args[:])
}

// --- Render passes and framebuffers ---

// CreateRenderPass wraps vkCreateRenderPass.
func (c *Commands) CreateRenderPass(device Device, createInfo *RenderPassCreateInfo, allocator unsafe.Pointer, renderPass *RenderPass) Result {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&createInfo),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&renderPass),
	}
	return callResult(&SigResultHandlePtrPtrPtr, c.createRenderPass, args[:])
}

// DestroyRenderPass wraps vkDestroyRenderPass.
func (c *Commands) DestroyRenderPass(device Device, renderPass RenderPass, allocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&renderPass),
		unsafe.Pointer(&allocator),
	}
	callVoid(&SigVoidHandleHandlePtr, c.destroyRenderPass, args[:])
}

// CreateFramebuffer wraps vkCreateFramebuffer.
func (c *Commands) CreateFramebuffer(device Device, createInfo *FramebufferCreateInfo, allocator unsafe.Pointer, framebuffer *Framebuffer) Result {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&createInfo),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&framebuffer),
	}
	return callResult(&SigResultHandlePtrPtrPtr, c.createFramebuffer, args[:])
}

// DestroyFramebuffer wraps vkDestroyFramebuffer.
func (c *Commands) DestroyFramebuffer(device Device, framebuffer Framebuffer, allocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&framebuffer),
		unsafe.Pointer(&allocator),
	}
	callVoid(&SigVoidHandleHandlePtr, c.destroyFramebuffer, args[:])
}

// --- Command pools and buffers ---

// CreateCommandPool wraps vkCreateCommandPool.
func (c *Commands) CreateCommandPool(device Device, createInfo *CommandPoolCreateInfo, allocator unsafe.Pointer, pool *CommandPool) Result {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&createInfo),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&pool),
	}
	return callResult(&SigResultHandlePtrPtrPtr, c.createCommandPool, args[:])
}

// DestroyCommandPool wraps vkDestroyCommandPool.
func (c *Commands) DestroyCommandPool(device Device, pool CommandPool, allocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&pool),
		unsafe.Pointer(&allocator),
	}
	callVoid(&SigVoidHandleHandlePtr, c.destroyCommandPool, args[:])
}

// ResetCommandPool wraps vkResetCommandPool.
func (c *Commands) ResetCommandPool(device Device, pool CommandPool, flags CommandPoolResetFlags) Result {
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&pool),
		unsafe.Pointer(&flags),
	}
	return callResult(&SigResultHandleHandleU32, c.resetCommandPool, args[:])
}

// AllocateCommandBuffers wraps vkAllocateCommandBuffers.
func (c *Commands) AllocateCommandBuffers(device Device, allocInfo *CommandBufferAllocateInfo, buffers *CommandBuffer) Result {
	buffersPtr := unsafe.Pointer(buffers)
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&allocInfo),
		unsafe.Pointer(&buffersPtr),
	}
	return callResult(&SigResultHandlePtrPtr, c.allocateCommandBuffers, args[:])
}

// FreeCommandBuffers wraps vkFreeCommandBuffers.
func (c *Commands) FreeCommandBuffers(device Device, pool CommandPool, count uint32, buffers *CommandBuffer) {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&pool),
		unsafe.Pointer(&count),
		unsafe.Pointer(&buffers),
	}
	callVoid(&SigVoidHandleHandleU32Ptr, c.freeCommandBuffers, args[:])
}

// BeginCommandBuffer wraps vkBeginCommandBuffer.
func (c *Commands) BeginCommandBuffer(buffer CommandBuffer, beginInfo *CommandBufferBeginInfo) Result {
	args := [2]unsafe.Pointer{
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&beginInfo),
	}
	return callResult(&SigResultHandlePtr, c.beginCommandBuffer, args[:])
}

// EndCommandBuffer wraps vkEndCommandBuffer.
func (c *Commands) EndCommandBuffer(buffer CommandBuffer) Result {
	args := [1]unsafe.Pointer{unsafe.Pointer(&buffer)}
	return callResult(&SigResultHandle, c.endCommandBuffer, args[:])
}

// --- Recorded commands ---

// CmdPipelineBarrier wraps vkCmdPipelineBarrier.
func (c *Commands) CmdPipelineBarrier(buffer CommandBuffer,
	srcStages, dstStages PipelineStageFlags, depFlags DependencyFlags,
	memoryBarrierCount uint32, memoryBarriers *MemoryBarrier,
	bufferBarrierCount uint32, bufferBarriers *BufferMemoryBarrier,
	imageBarrierCount uint32, imageBarriers *ImageMemoryBarrier) {
	args := [10]unsafe.Pointer{
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&srcStages),
		unsafe.Pointer(&dstStages),
		unsafe.Pointer(&depFlags),
		unsafe.Pointer(&memoryBarrierCount),
		unsafe.Pointer(&memoryBarriers),
		unsafe.Pointer(&bufferBarrierCount),
		unsafe.Pointer(&bufferBarriers),
		unsafe.Pointer(&imageBarrierCount),
		unsafe.Pointer(&imageBarriers),
	}
	callVoid(&SigVoidCmdPipelineBarrier, c.cmdPipelineBarrier, args[:])
}

// CmdBeginRenderPass wraps vkCmdBeginRenderPass.
func (c *Commands) CmdBeginRenderPass(buffer CommandBuffer, beginInfo *RenderPassBeginInfo, contents SubpassContents) {
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&beginInfo),
		unsafe.Pointer(&contents),
	}
	callVoid(&SigVoidHandlePtrU32, c.cmdBeginRenderPass, args[:])
}

// CmdNextSubpass wraps vkCmdNextSubpass.
func (c *Commands) CmdNextSubpass(buffer CommandBuffer, contents SubpassContents) {
	args := [2]unsafe.Pointer{
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&contents),
	}
	callVoid(&SigVoidHandleU32, c.cmdNextSubpass, args[:])
}

// CmdEndRenderPass wraps vkCmdEndRenderPass.
func (c *Commands) CmdEndRenderPass(buffer CommandBuffer) {
	args := [1]unsafe.Pointer{unsafe.Pointer(&buffer)}
	callVoid(&SigVoidHandle, c.cmdEndRenderPass, args[:])
}

// CmdBindPipeline wraps vkCmdBindPipeline.
func (c *Commands) CmdBindPipeline(buffer CommandBuffer, bindPoint PipelineBindPoint, pipeline Pipeline) {
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&bindPoint),
		unsafe.Pointer(&pipeline),
	}
	callVoid(&SigVoidHandleU32Handle, c.cmdBindPipeline, args[:])
}

// CmdBindDescriptorSets wraps vkCmdBindDescriptorSets.
func (c *Commands) CmdBindDescriptorSets(buffer CommandBuffer, bindPoint PipelineBindPoint, layout PipelineLayout, firstSet, setCount uint32, sets *DescriptorSet, dynamicOffsetCount uint32, dynamicOffsets *uint32) {
	args := [8]unsafe.Pointer{
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&bindPoint),
		unsafe.Pointer(&layout),
		unsafe.Pointer(&firstSet),
		unsafe.Pointer(&setCount),
		unsafe.Pointer(&sets),
		unsafe.Pointer(&dynamicOffsetCount),
		unsafe.Pointer(&dynamicOffsets),
	}
	callVoid(&SigVoidCmdBindDescriptorSets, c.cmdBindDescriptorSets, args[:])
}

// CmdBindVertexBuffers wraps vkCmdBindVertexBuffers.
func (c *Commands) CmdBindVertexBuffers(buffer CommandBuffer, firstBinding, bindingCount uint32, buffers *Buffer, offsets *DeviceSize) {
	args := [5]unsafe.Pointer{
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&firstBinding),
		unsafe.Pointer(&bindingCount),
		unsafe.Pointer(&buffers),
		unsafe.Pointer(&offsets),
	}
	callVoid(&SigVoidHandleU32U32PtrPtr, c.cmdBindVertexBuffers, args[:])
}

// CmdBindIndexBuffer wraps vkCmdBindIndexBuffer.
func (c *Commands) CmdBindIndexBuffer(buffer CommandBuffer, indexBuffer Buffer, offset DeviceSize, indexType IndexType) {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&indexBuffer),
		unsafe.Pointer(&offset),
		unsafe.Pointer(&indexType),
	}
	callVoid(&SigVoidHandleHandleU64U32, c.cmdBindIndexBuffer, args[:])
}

// CmdSetViewport wraps vkCmdSetViewport.
func (c *Commands) CmdSetViewport(buffer CommandBuffer, firstViewport, viewportCount uint32, viewports *Viewport) {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&firstViewport),
		unsafe.Pointer(&viewportCount),
		unsafe.Pointer(&viewports),
	}
	callVoid(&SigVoidHandleU32U32Ptr, c.cmdSetViewport, args[:])
}

// CmdSetScissor wraps vkCmdSetScissor.
func (c *Commands) CmdSetScissor(buffer CommandBuffer, firstScissor, scissorCount uint32, scissors *Rect2D) {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&firstScissor),
		unsafe.Pointer(&scissorCount),
		unsafe.Pointer(&scissors),
	}
	callVoid(&SigVoidHandleU32U32Ptr, c.cmdSetScissor, args[:])
}

// CmdDraw wraps vkCmdDraw.
func (c *Commands) CmdDraw(buffer CommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	args := [5]unsafe.Pointer{
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&vertexCount),
		unsafe.Pointer(&instanceCount),
		unsafe.Pointer(&firstVertex),
		unsafe.Pointer(&firstInstance),
	}
	callVoid(&SigVoidHandleU32x4, c.cmdDraw, args[:])
}

// CmdDrawIndexed wraps vkCmdDrawIndexed.
func (c *Commands) CmdDrawIndexed(buffer CommandBuffer, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	args := [6]unsafe.Pointer{
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&indexCount),
		unsafe.Pointer(&instanceCount),
		unsafe.Pointer(&firstIndex),
		unsafe.Pointer(&vertexOffset),
		unsafe.Pointer(&firstInstance),
	}
	callVoid(&SigVoidHandleU32x3I32U32, c.cmdDrawIndexed, args[:])
}

// CmdDrawIndirect wraps vkCmdDrawIndirect.
func (c *Commands) CmdDrawIndirect(buffer CommandBuffer, indirect Buffer, offset DeviceSize, drawCount, stride uint32) {
	args := [5]unsafe.Pointer{
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&indirect),
		unsafe.Pointer(&offset),
		unsafe.Pointer(&drawCount),
		unsafe.Pointer(&stride),
	}
	callVoid(&SigVoidHandleHandleU64U32U32, c.cmdDrawIndirect, args[:])
}

// CmdDrawIndexedIndirect wraps vkCmdDrawIndexedIndirect.
func (c *Commands) CmdDrawIndexedIndirect(buffer CommandBuffer, indirect Buffer, offset DeviceSize, drawCount, stride uint32) {
	args := [5]unsafe.Pointer{
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&indirect),
		unsafe.Pointer(&offset),
		unsafe.Pointer(&drawCount),
		unsafe.Pointer(&stride),
	}
	callVoid(&SigVoidHandleHandleU64U32U32, c.cmdDrawIndexedIndirect, args[:])
}

// CmdDispatch wraps vkCmdDispatch.
func (c *Commands) CmdDispatch(buffer CommandBuffer, x, y, z uint32) {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&x),
		unsafe.Pointer(&y),
		unsafe.Pointer(&z),
	}
	callVoid(&SigVoidHandleU32U32U32, c.cmdDispatch, args[:])
}

// CmdDispatchIndirect wraps vkCmdDispatchIndirect.
func (c *Commands) CmdDispatchIndirect(buffer CommandBuffer, indirect Buffer, offset DeviceSize) {
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&indirect),
		unsafe.Pointer(&offset),
	}
	callVoid(&SigVoidHandleHandleU64, c.cmdDispatchIndirect, args[:])
}

// CmdCopyBuffer wraps vkCmdCopyBuffer.
func (c *Commands) CmdCopyBuffer(buffer CommandBuffer, src, dst Buffer, regionCount uint32, regions *BufferCopy) {
	args := [5]unsafe.Pointer{
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&src),
		unsafe.Pointer(&dst),
		unsafe.Pointer(&regionCount),
		unsafe.Pointer(&regions),
	}
	callVoid(&SigVoidCmdCopyBuffer, c.cmdCopyBuffer, args[:])
}

// CmdCopyImage wraps vkCmdCopyImage.
func (c *Commands) CmdCopyImage(buffer CommandBuffer, src Image, srcLayout ImageLayout, dst Image, dstLayout ImageLayout, regionCount uint32, regions *ImageCopy) {
	args := [7]unsafe.Pointer{
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&src),
		unsafe.Pointer(&srcLayout),
		unsafe.Pointer(&dst),
		unsafe.Pointer(&dstLayout),
		unsafe.Pointer(&regionCount),
		unsafe.Pointer(&regions),
	}
	callVoid(&SigVoidCmdCopyImage, c.cmdCopyImage, args[:])
}

// CmdBlitImage wraps vkCmdBlitImage.
func (c *Commands) CmdBlitImage(buffer CommandBuffer, src Image, srcLayout ImageLayout, dst Image, dstLayout ImageLayout, regionCount uint32, regions *ImageBlit, filter Filter) {
	args := [8]unsafe.Pointer{
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&src),
		unsafe.Pointer(&srcLayout),
		unsafe.Pointer(&dst),
		unsafe.Pointer(&dstLayout),
		unsafe.Pointer(&regionCount),
		unsafe.Pointer(&regions),
		unsafe.Pointer(&filter),
	}
	callVoid(&SigVoidCmdBlitImage, c.cmdBlitImage, args[:])
}

// CmdCopyBufferToImage wraps vkCmdCopyBufferToImage.
func (c *Commands) CmdCopyBufferToImage(buffer CommandBuffer, src Buffer, dst Image, dstLayout ImageLayout, regionCount uint32, regions *BufferImageCopy) {
	args := [6]unsafe.Pointer{
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&src),
		unsafe.Pointer(&dst),
		unsafe.Pointer(&dstLayout),
		unsafe.Pointer(&regionCount),
		unsafe.Pointer(&regions),
	}
	callVoid(&SigVoidCmdCopyBufferToImage, c.cmdCopyBufferToImage, args[:])
}

// CmdCopyImageToBuffer wraps vkCmdCopyImageToBuffer.
func (c *Commands) CmdCopyImageToBuffer(buffer CommandBuffer, src Image, srcLayout ImageLayout, dst Buffer, regionCount uint32, regions *BufferImageCopy) {
	args := [6]unsafe.Pointer{
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&src),
		unsafe.Pointer(&srcLayout),
		unsafe.Pointer(&dst),
		unsafe.Pointer(&regionCount),
		unsafe.Pointer(&regions),
	}
	callVoid(&SigVoidCmdCopyImageToBuffer, c.cmdCopyImageToBuffer, args[:])
}

// CmdFillBuffer wraps vkCmdFillBuffer.
func (c *Commands) CmdFillBuffer(buffer CommandBuffer, dst Buffer, offset, size DeviceSize, data uint32) {
	args := [5]unsafe.Pointer{
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&dst),
		unsafe.Pointer(&offset),
		unsafe.Pointer(&size),
		unsafe.Pointer(&data),
	}
	callVoid(&SigVoidCmdFillBuffer, c.cmdFillBuffer, args[:])
}

// CmdPushConstants wraps vkCmdPushConstants.
func (c *Commands) CmdPushConstants(buffer CommandBuffer, layout PipelineLayout, stages ShaderStageFlags, offset, size uint32, values unsafe.Pointer) {
	args := [6]unsafe.Pointer{
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&layout),
		unsafe.Pointer(&stages),
		unsafe.Pointer(&offset),
		unsafe.Pointer(&size),
		unsafe.Pointer(&values),
	}
	callVoid(&SigVoidCmdPushConstants, c.cmdPushConstants, args[:])
}

// --- VK_EXT_debug_utils ---

// CmdBeginDebugUtilsLabelEXT wraps vkCmdBeginDebugUtilsLabelEXT.
// No-op when the extension is unavailable.
func (c *Commands) CmdBeginDebugUtilsLabelEXT(buffer CommandBuffer, label *DebugUtilsLabelEXT) {
	args := [2]unsafe.Pointer{
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&label),
	}
	callVoid(&SigVoidHandlePtr, c.cmdBeginDebugUtilsLabelEXT, args[:])
}

// CmdEndDebugUtilsLabelEXT wraps vkCmdEndDebugUtilsLabelEXT.
func (c *Commands) CmdEndDebugUtilsLabelEXT(buffer CommandBuffer) {
	args := [1]unsafe.Pointer{unsafe.Pointer(&buffer)}
	callVoid(&SigVoidHandle, c.cmdEndDebugUtilsLabelEXT, args[:])
}

// CmdInsertDebugUtilsLabelEXT wraps vkCmdInsertDebugUtilsLabelEXT.
func (c *Commands) CmdInsertDebugUtilsLabelEXT(buffer CommandBuffer, label *DebugUtilsLabelEXT) {
	args := [2]unsafe.Pointer{
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&label),
	}
	callVoid(&SigVoidHandlePtr, c.cmdInsertDebugUtilsLabelEXT, args[:])
}

// SetDebugUtilsObjectNameEXT wraps vkSetDebugUtilsObjectNameEXT.
func (c *Commands) SetDebugUtilsObjectNameEXT(device Device, nameInfo *DebugUtilsObjectNameInfoEXT) Result {
	args := [2]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&nameInfo),
	}
	return callResult(&SigResultHandlePtr, c.setDebugUtilsObjectNameEXT, args[:])
}
