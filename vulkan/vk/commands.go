// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

// Function pointer loading happens in three stages:
//
//  1. LoadGlobal() — functions callable without an instance
//  2. LoadInstance(instance) — instance-level functions; also call
//     SetDeviceProcAddr(instance) for Intel driver compatibility
//  3. LoadDevice(device) — device-level functions
//
// Intel Iris Xe drivers require special handling:
//   - vkGetInstanceProcAddr(NULL, "vkGetDeviceProcAddr") returns NULL
//   - Must call SetDeviceProcAddr(instance) after creating the instance

import (
	"fmt"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
)

// Commands holds the loaded Vulkan function pointers.
type Commands struct {
	// Global.
	createInstance unsafe.Pointer

	// Instance level.
	destroyInstance                        unsafe.Pointer
	enumeratePhysicalDevices               unsafe.Pointer
	getPhysicalDeviceProperties            unsafe.Pointer
	getPhysicalDeviceQueueFamilyProperties unsafe.Pointer
	getPhysicalDeviceMemoryProperties      unsafe.Pointer
	enumerateDeviceExtensionProperties     unsafe.Pointer
	createDevice                           unsafe.Pointer
	getPhysicalDeviceSurfaceSupportKHR     unsafe.Pointer

	// Device level.
	destroyDevice                unsafe.Pointer
	getDeviceQueue               unsafe.Pointer
	queueSubmit                  unsafe.Pointer
	queueWaitIdle                unsafe.Pointer
	deviceWaitIdle               unsafe.Pointer
	queuePresentKHR              unsafe.Pointer
	allocateMemory               unsafe.Pointer
	freeMemory                   unsafe.Pointer
	mapMemory                    unsafe.Pointer
	unmapMemory                  unsafe.Pointer
	flushMappedMemoryRanges      unsafe.Pointer
	createBuffer                 unsafe.Pointer
	destroyBuffer                unsafe.Pointer
	getBufferMemoryRequirements  unsafe.Pointer
	bindBufferMemory             unsafe.Pointer
	createImage                  unsafe.Pointer
	destroyImage                 unsafe.Pointer
	getImageMemoryRequirements   unsafe.Pointer
	bindImageMemory              unsafe.Pointer
	createImageView              unsafe.Pointer
	destroyImageView             unsafe.Pointer
	createSampler                unsafe.Pointer
	destroySampler               unsafe.Pointer
	createFence                  unsafe.Pointer
	destroyFence                 unsafe.Pointer
	resetFences                  unsafe.Pointer
	getFenceStatus               unsafe.Pointer
	waitForFences                unsafe.Pointer
	createSemaphore              unsafe.Pointer
	destroySemaphore             unsafe.Pointer
	getSemaphoreCounterValue     unsafe.Pointer
	waitSemaphores               unsafe.Pointer
	createShaderModule           unsafe.Pointer
	destroyShaderModule          unsafe.Pointer
	createPipelineCache          unsafe.Pointer
	destroyPipelineCache         unsafe.Pointer
	getPipelineCacheData         unsafe.Pointer
	createGraphicsPipelines      unsafe.Pointer
	createComputePipelines       unsafe.Pointer
	destroyPipeline              unsafe.Pointer
	createPipelineLayout         unsafe.Pointer
	destroyPipelineLayout        unsafe.Pointer
	createDescriptorSetLayout    unsafe.Pointer
	destroyDescriptorSetLayout   unsafe.Pointer
	createDescriptorPool         unsafe.Pointer
	destroyDescriptorPool        unsafe.Pointer
	resetDescriptorPool          unsafe.Pointer
	allocateDescriptorSets       unsafe.Pointer
	updateDescriptorSets         unsafe.Pointer
	createRenderPass             unsafe.Pointer
	destroyRenderPass            unsafe.Pointer
	createFramebuffer            unsafe.Pointer
	destroyFramebuffer           unsafe.Pointer
	createCommandPool            unsafe.Pointer
	destroyCommandPool           unsafe.Pointer
	resetCommandPool             unsafe.Pointer
	allocateCommandBuffers       unsafe.Pointer
	freeCommandBuffers           unsafe.Pointer
	beginCommandBuffer           unsafe.Pointer
	endCommandBuffer             unsafe.Pointer
	cmdPipelineBarrier           unsafe.Pointer
	cmdBeginRenderPass           unsafe.Pointer
	cmdNextSubpass               unsafe.Pointer
	cmdEndRenderPass             unsafe.Pointer
	cmdBindPipeline              unsafe.Pointer
	cmdBindDescriptorSets        unsafe.Pointer
	cmdBindVertexBuffers         unsafe.Pointer
	cmdBindIndexBuffer           unsafe.Pointer
	cmdSetViewport               unsafe.Pointer
	cmdSetScissor                unsafe.Pointer
	cmdDraw                      unsafe.Pointer
	cmdDrawIndexed               unsafe.Pointer
	cmdDrawIndirect              unsafe.Pointer
	cmdDrawIndexedIndirect       unsafe.Pointer
	cmdDispatch                  unsafe.Pointer
	cmdDispatchIndirect          unsafe.Pointer
	cmdCopyBuffer                unsafe.Pointer
	cmdCopyImage                 unsafe.Pointer
	cmdBlitImage                 unsafe.Pointer
	cmdCopyBufferToImage         unsafe.Pointer
	cmdCopyImageToBuffer         unsafe.Pointer
	cmdFillBuffer                unsafe.Pointer
	cmdPushConstants             unsafe.Pointer
	cmdBeginDebugUtilsLabelEXT   unsafe.Pointer
	cmdEndDebugUtilsLabelEXT     unsafe.Pointer
	cmdInsertDebugUtilsLabelEXT  unsafe.Pointer
	setDebugUtilsObjectNameEXT   unsafe.Pointer
}

// NewCommands creates a new Commands instance. Function pointers must be
// loaded via LoadGlobal, LoadInstance, and LoadDevice before use.
func NewCommands() *Commands {
	return &Commands{}
}

// LoadGlobal loads global Vulkan function pointers — those callable
// without an instance.
func (c *Commands) LoadGlobal() error {
	c.createInstance = GetInstanceProcAddr(0, "vkCreateInstance")
	if c.createInstance == nil {
		return fmt.Errorf("vk: failed to load vkCreateInstance")
	}
	return nil
}

// LoadInstance loads instance-level Vulkan function pointers.
// Must be called after vkCreateInstance succeeds.
func (c *Commands) LoadInstance(instance Instance) error {
	if instance == 0 {
		return fmt.Errorf("vk: invalid instance handle")
	}

	c.destroyInstance = GetInstanceProcAddr(instance, "vkDestroyInstance")
	c.enumeratePhysicalDevices = GetInstanceProcAddr(instance, "vkEnumeratePhysicalDevices")
	c.getPhysicalDeviceProperties = GetInstanceProcAddr(instance, "vkGetPhysicalDeviceProperties")
	c.getPhysicalDeviceQueueFamilyProperties = GetInstanceProcAddr(instance, "vkGetPhysicalDeviceQueueFamilyProperties")
	c.getPhysicalDeviceMemoryProperties = GetInstanceProcAddr(instance, "vkGetPhysicalDeviceMemoryProperties")
	c.enumerateDeviceExtensionProperties = GetInstanceProcAddr(instance, "vkEnumerateDeviceExtensionProperties")
	c.createDevice = GetInstanceProcAddr(instance, "vkCreateDevice")
	c.getPhysicalDeviceSurfaceSupportKHR = GetInstanceProcAddr(instance, "vkGetPhysicalDeviceSurfaceSupportKHR")

	if c.destroyInstance == nil || c.enumeratePhysicalDevices == nil || c.createDevice == nil {
		return fmt.Errorf("vk: failed to load critical instance functions")
	}
	return nil
}

// LoadDevice loads device-level Vulkan function pointers.
// Must be called after vkCreateDevice succeeds.
func (c *Commands) LoadDevice(device Device) error {
	if device == 0 {
		return fmt.Errorf("vk: invalid device handle")
	}

	c.destroyDevice = GetDeviceProcAddr(device, "vkDestroyDevice")
	c.getDeviceQueue = GetDeviceProcAddr(device, "vkGetDeviceQueue")
	c.queueSubmit = GetDeviceProcAddr(device, "vkQueueSubmit")
	c.queueWaitIdle = GetDeviceProcAddr(device, "vkQueueWaitIdle")
	c.deviceWaitIdle = GetDeviceProcAddr(device, "vkDeviceWaitIdle")
	c.queuePresentKHR = GetDeviceProcAddr(device, "vkQueuePresentKHR")
	c.allocateMemory = GetDeviceProcAddr(device, "vkAllocateMemory")
	c.freeMemory = GetDeviceProcAddr(device, "vkFreeMemory")
	c.mapMemory = GetDeviceProcAddr(device, "vkMapMemory")
	c.unmapMemory = GetDeviceProcAddr(device, "vkUnmapMemory")
	c.flushMappedMemoryRanges = GetDeviceProcAddr(device, "vkFlushMappedMemoryRanges")
	c.createBuffer = GetDeviceProcAddr(device, "vkCreateBuffer")
	c.destroyBuffer = GetDeviceProcAddr(device, "vkDestroyBuffer")
	c.getBufferMemoryRequirements = GetDeviceProcAddr(device, "vkGetBufferMemoryRequirements")
	c.bindBufferMemory = GetDeviceProcAddr(device, "vkBindBufferMemory")
	c.createImage = GetDeviceProcAddr(device, "vkCreateImage")
	c.destroyImage = GetDeviceProcAddr(device, "vkDestroyImage")
	c.getImageMemoryRequirements = GetDeviceProcAddr(device, "vkGetImageMemoryRequirements")
	c.bindImageMemory = GetDeviceProcAddr(device, "vkBindImageMemory")
	c.createImageView = GetDeviceProcAddr(device, "vkCreateImageView")
	c.destroyImageView = GetDeviceProcAddr(device, "vkDestroyImageView")
	c.createSampler = GetDeviceProcAddr(device, "vkCreateSampler")
	c.destroySampler = GetDeviceProcAddr(device, "vkDestroySampler")
	c.createFence = GetDeviceProcAddr(device, "vkCreateFence")
	c.destroyFence = GetDeviceProcAddr(device, "vkDestroyFence")
	c.resetFences = GetDeviceProcAddr(device, "vkResetFences")
	c.getFenceStatus = GetDeviceProcAddr(device, "vkGetFenceStatus")
	c.waitForFences = GetDeviceProcAddr(device, "vkWaitForFences")
	c.createSemaphore = GetDeviceProcAddr(device, "vkCreateSemaphore")
	c.destroySemaphore = GetDeviceProcAddr(device, "vkDestroySemaphore")
	c.getSemaphoreCounterValue = GetDeviceProcAddr(device, "vkGetSemaphoreCounterValue")
	c.waitSemaphores = GetDeviceProcAddr(device, "vkWaitSemaphores")
	c.createShaderModule = GetDeviceProcAddr(device, "vkCreateShaderModule")
	c.destroyShaderModule = GetDeviceProcAddr(device, "vkDestroyShaderModule")
	c.createPipelineCache = GetDeviceProcAddr(device, "vkCreatePipelineCache")
	c.destroyPipelineCache = GetDeviceProcAddr(device, "vkDestroyPipelineCache")
	c.getPipelineCacheData = GetDeviceProcAddr(device, "vkGetPipelineCacheData")
	c.createGraphicsPipelines = GetDeviceProcAddr(device, "vkCreateGraphicsPipelines")
	c.createComputePipelines = GetDeviceProcAddr(device, "vkCreateComputePipelines")
	c.destroyPipeline = GetDeviceProcAddr(device, "vkDestroyPipeline")
	c.createPipelineLayout = GetDeviceProcAddr(device, "vkCreatePipelineLayout")
	c.destroyPipelineLayout = GetDeviceProcAddr(device, "vkDestroyPipelineLayout")
	c.createDescriptorSetLayout = GetDeviceProcAddr(device, "vkCreateDescriptorSetLayout")
	c.destroyDescriptorSetLayout = GetDeviceProcAddr(device, "vkDestroyDescriptorSetLayout")
	c.createDescriptorPool = GetDeviceProcAddr(device, "vkCreateDescriptorPool")
	c.destroyDescriptorPool = GetDeviceProcAddr(device, "vkDestroyDescriptorPool")
	c.resetDescriptorPool = GetDeviceProcAddr(device, "vkResetDescriptorPool")
	c.allocateDescriptorSets = GetDeviceProcAddr(device, "vkAllocateDescriptorSets")
	c.updateDescriptorSets = GetDeviceProcAddr(device, "vkUpdateDescriptorSets")
	c.createRenderPass = GetDeviceProcAddr(device, "vkCreateRenderPass")
	c.destroyRenderPass = GetDeviceProcAddr(device, "vkDestroyRenderPass")
	c.createFramebuffer = GetDeviceProcAddr(device, "vkCreateFramebuffer")
	c.destroyFramebuffer = GetDeviceProcAddr(device, "vkDestroyFramebuffer")
	c.createCommandPool = GetDeviceProcAddr(device, "vkCreateCommandPool")
	c.destroyCommandPool = GetDeviceProcAddr(device, "vkDestroyCommandPool")
	c.resetCommandPool = GetDeviceProcAddr(device, "vkResetCommandPool")
	c.allocateCommandBuffers = GetDeviceProcAddr(device, "vkAllocateCommandBuffers")
	c.freeCommandBuffers = GetDeviceProcAddr(device, "vkFreeCommandBuffers")
	c.beginCommandBuffer = GetDeviceProcAddr(device, "vkBeginCommandBuffer")
	c.endCommandBuffer = GetDeviceProcAddr(device, "vkEndCommandBuffer")
	c.cmdPipelineBarrier = GetDeviceProcAddr(device, "vkCmdPipelineBarrier")
	c.cmdBeginRenderPass = GetDeviceProcAddr(device, "vkCmdBeginRenderPass")
	c.cmdNextSubpass = GetDeviceProcAddr(device, "vkCmdNextSubpass")
	c.cmdEndRenderPass = GetDeviceProcAddr(device, "vkCmdEndRenderPass")
	c.cmdBindPipeline = GetDeviceProcAddr(device, "vkCmdBindPipeline")
	c.cmdBindDescriptorSets = GetDeviceProcAddr(device, "vkCmdBindDescriptorSets")
	c.cmdBindVertexBuffers = GetDeviceProcAddr(device, "vkCmdBindVertexBuffers")
	c.cmdBindIndexBuffer = GetDeviceProcAddr(device, "vkCmdBindIndexBuffer")
	c.cmdSetViewport = GetDeviceProcAddr(device, "vkCmdSetViewport")
	c.cmdSetScissor = GetDeviceProcAddr(device, "vkCmdSetScissor")
	c.cmdDraw = GetDeviceProcAddr(device, "vkCmdDraw")
	c.cmdDrawIndexed = GetDeviceProcAddr(device, "vkCmdDrawIndexed")
	c.cmdDrawIndirect = GetDeviceProcAddr(device, "vkCmdDrawIndirect")
	c.cmdDrawIndexedIndirect = GetDeviceProcAddr(device, "vkCmdDrawIndexedIndirect")
	c.cmdDispatch = GetDeviceProcAddr(device, "vkCmdDispatch")
	c.cmdDispatchIndirect = GetDeviceProcAddr(device, "vkCmdDispatchIndirect")
	c.cmdCopyBuffer = GetDeviceProcAddr(device, "vkCmdCopyBuffer")
	c.cmdCopyImage = GetDeviceProcAddr(device, "vkCmdCopyImage")
	c.cmdBlitImage = GetDeviceProcAddr(device, "vkCmdBlitImage")
	c.cmdCopyBufferToImage = GetDeviceProcAddr(device, "vkCmdCopyBufferToImage")
	c.cmdCopyImageToBuffer = GetDeviceProcAddr(device, "vkCmdCopyImageToBuffer")
	c.cmdFillBuffer = GetDeviceProcAddr(device, "vkCmdFillBuffer")
	c.cmdPushConstants = GetDeviceProcAddr(device, "vkCmdPushConstants")

	// VK_EXT_debug_utils (optional).
	c.cmdBeginDebugUtilsLabelEXT = GetDeviceProcAddr(device, "vkCmdBeginDebugUtilsLabelEXT")
	c.cmdEndDebugUtilsLabelEXT = GetDeviceProcAddr(device, "vkCmdEndDebugUtilsLabelEXT")
	c.cmdInsertDebugUtilsLabelEXT = GetDeviceProcAddr(device, "vkCmdInsertDebugUtilsLabelEXT")
	c.setDebugUtilsObjectNameEXT = GetDeviceProcAddr(device, "vkSetDebugUtilsObjectNameEXT")

	if c.destroyDevice == nil || c.getDeviceQueue == nil || c.queueSubmit == nil {
		return fmt.Errorf("vk: failed to load critical device functions")
	}
	return nil
}

// HasTimelineSemaphore reports whether the timeline semaphore functions
// were loaded. These are Vulkan 1.2 core and should be available on all
// conformant drivers.
func (c *Commands) HasTimelineSemaphore() bool {
	return c.getSemaphoreCounterValue != nil && c.waitSemaphores != nil
}

// HasDebugUtils reports whether VK_EXT_debug_utils entry points were
// loaded.
func (c *Commands) HasDebugUtils() bool {
	return c.cmdBeginDebugUtilsLabelEXT != nil &&
		c.cmdEndDebugUtilsLabelEXT != nil &&
		c.cmdInsertDebugUtilsLabelEXT != nil
}

// callResult invokes a VkResult-returning function.
func callResult(cif *callInterface, fn unsafe.Pointer, args []unsafe.Pointer) Result {
	if fn == nil {
		return ErrorInitializationFailed
	}
	var result int32
	if err := ffi.CallFunction(cif, fn, unsafe.Pointer(&result), args); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// callVoid invokes a void-returning function.
func callVoid(cif *callInterface, fn unsafe.Pointer, args []unsafe.Pointer) {
	if fn == nil {
		return
	}
	_ = ffi.CallFunction(cif, fn, nil, args)
}
