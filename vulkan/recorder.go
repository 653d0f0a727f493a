// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"unsafe"

	"github.com/gogpu/framegraph/vulkan/vk"
)

// CommandRecorder records Vulkan commands into one command buffer. The
// dispatcher drives this interface only, so frame encoding can be
// exercised against a fake in tests; vkRecorder is the production
// implementation.
type CommandRecorder interface {
	Begin() error
	End() error

	PipelineBarrier(srcStages, dstStages vk.PipelineStageFlags, depFlags vk.DependencyFlags,
		mem []vk.MemoryBarrier, buf []vk.BufferMemoryBarrier, img []vk.ImageMemoryBarrier)

	BeginRenderPass(info *vk.RenderPassBeginInfo)
	NextSubpass()
	EndRenderPass()

	BindPipeline(bindPoint vk.PipelineBindPoint, pipeline vk.Pipeline)
	BindDescriptorSet(bindPoint vk.PipelineBindPoint, layout vk.PipelineLayout, set vk.DescriptorSet)
	BindVertexBuffer(slot uint32, buffer vk.Buffer, offset uint64)
	BindIndexBuffer(buffer vk.Buffer, offset uint64, indexType vk.IndexType)
	SetViewport(viewport vk.Viewport)
	SetScissor(scissor vk.Rect2D)
	PushConstants(layout vk.PipelineLayout, stages vk.ShaderStageFlags, offset uint32, data []byte)

	Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32)
	DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32)
	DrawIndirect(buffer vk.Buffer, offset uint64)
	DrawIndexedIndirect(buffer vk.Buffer, offset uint64)
	Dispatch(x, y, z uint32)
	DispatchIndirect(buffer vk.Buffer, offset uint64)

	CopyBuffer(src, dst vk.Buffer, regions []vk.BufferCopy)
	CopyImage(src vk.Image, srcLayout vk.ImageLayout, dst vk.Image, dstLayout vk.ImageLayout, regions []vk.ImageCopy)
	BlitImage(src vk.Image, srcLayout vk.ImageLayout, dst vk.Image, dstLayout vk.ImageLayout, regions []vk.ImageBlit, filter vk.Filter)
	CopyBufferToImage(src vk.Buffer, dst vk.Image, dstLayout vk.ImageLayout, regions []vk.BufferImageCopy)
	CopyImageToBuffer(src vk.Image, srcLayout vk.ImageLayout, dst vk.Buffer, regions []vk.BufferImageCopy)
	FillBuffer(dst vk.Buffer, offset, size uint64, data uint32)

	BeginDebugLabel(name string)
	EndDebugLabel()
	InsertDebugLabel(name string)

	Handle() vk.CommandBuffer
}

// vkRecorder records into a real Vulkan command buffer.
type vkRecorder struct {
	cmds   *vk.Commands
	buffer vk.CommandBuffer
	debug  bool
}

func newVkRecorder(cmds *vk.Commands, buffer vk.CommandBuffer) *vkRecorder {
	return &vkRecorder{cmds: cmds, buffer: buffer, debug: cmds.HasDebugUtils()}
}

func (r *vkRecorder) Begin() error {
	beginInfo := vk.CommandBufferBeginInfo{
		SType: vk.StructureTypeCommandBufferBeginInfo,
		Flags: vk.CommandBufferUsageOneTimeSubmitBit,
	}
	if result := r.cmds.BeginCommandBuffer(r.buffer, &beginInfo); result != vk.Success {
		return newVkError("vkBeginCommandBuffer", result)
	}
	return nil
}

func (r *vkRecorder) End() error {
	if result := r.cmds.EndCommandBuffer(r.buffer); result != vk.Success {
		return newVkError("vkEndCommandBuffer", result)
	}
	return nil
}

func (r *vkRecorder) PipelineBarrier(srcStages, dstStages vk.PipelineStageFlags, depFlags vk.DependencyFlags,
	mem []vk.MemoryBarrier, buf []vk.BufferMemoryBarrier, img []vk.ImageMemoryBarrier) {
	var memPtr *vk.MemoryBarrier
	var bufPtr *vk.BufferMemoryBarrier
	var imgPtr *vk.ImageMemoryBarrier
	if len(mem) > 0 {
		memPtr = &mem[0]
	}
	if len(buf) > 0 {
		bufPtr = &buf[0]
	}
	if len(img) > 0 {
		imgPtr = &img[0]
	}
	r.cmds.CmdPipelineBarrier(r.buffer, srcStages, dstStages, depFlags,
		uint32(len(mem)), memPtr, uint32(len(buf)), bufPtr, uint32(len(img)), imgPtr)
}

func (r *vkRecorder) BeginRenderPass(info *vk.RenderPassBeginInfo) {
	r.cmds.CmdBeginRenderPass(r.buffer, info, vk.SubpassContentsInline)
}

func (r *vkRecorder) NextSubpass() {
	r.cmds.CmdNextSubpass(r.buffer, vk.SubpassContentsInline)
}

func (r *vkRecorder) EndRenderPass() {
	r.cmds.CmdEndRenderPass(r.buffer)
}

func (r *vkRecorder) BindPipeline(bindPoint vk.PipelineBindPoint, pipeline vk.Pipeline) {
	r.cmds.CmdBindPipeline(r.buffer, bindPoint, pipeline)
}

func (r *vkRecorder) BindDescriptorSet(bindPoint vk.PipelineBindPoint, layout vk.PipelineLayout, set vk.DescriptorSet) {
	r.cmds.CmdBindDescriptorSets(r.buffer, bindPoint, layout, 0, 1, &set, 0, nil)
}

func (r *vkRecorder) BindVertexBuffer(slot uint32, buffer vk.Buffer, offset uint64) {
	off := vk.DeviceSize(offset)
	r.cmds.CmdBindVertexBuffers(r.buffer, slot, 1, &buffer, &off)
}

func (r *vkRecorder) BindIndexBuffer(buffer vk.Buffer, offset uint64, indexType vk.IndexType) {
	r.cmds.CmdBindIndexBuffer(r.buffer, buffer, vk.DeviceSize(offset), indexType)
}

func (r *vkRecorder) SetViewport(viewport vk.Viewport) {
	r.cmds.CmdSetViewport(r.buffer, 0, 1, &viewport)
}

func (r *vkRecorder) SetScissor(scissor vk.Rect2D) {
	r.cmds.CmdSetScissor(r.buffer, 0, 1, &scissor)
}

func (r *vkRecorder) PushConstants(layout vk.PipelineLayout, stages vk.ShaderStageFlags, offset uint32, data []byte) {
	if len(data) == 0 {
		return
	}
	r.cmds.CmdPushConstants(r.buffer, layout, stages, offset, uint32(len(data)), unsafe.Pointer(&data[0]))
}

func (r *vkRecorder) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	r.cmds.CmdDraw(r.buffer, vertexCount, instanceCount, firstVertex, firstInstance)
}

func (r *vkRecorder) DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32) {
	r.cmds.CmdDrawIndexed(r.buffer, indexCount, instanceCount, firstIndex, baseVertex, firstInstance)
}

func (r *vkRecorder) DrawIndirect(buffer vk.Buffer, offset uint64) {
	r.cmds.CmdDrawIndirect(r.buffer, buffer, vk.DeviceSize(offset), 1, 0)
}

func (r *vkRecorder) DrawIndexedIndirect(buffer vk.Buffer, offset uint64) {
	r.cmds.CmdDrawIndexedIndirect(r.buffer, buffer, vk.DeviceSize(offset), 1, 0)
}

func (r *vkRecorder) Dispatch(x, y, z uint32) {
	r.cmds.CmdDispatch(r.buffer, x, y, z)
}

func (r *vkRecorder) DispatchIndirect(buffer vk.Buffer, offset uint64) {
	r.cmds.CmdDispatchIndirect(r.buffer, buffer, vk.DeviceSize(offset))
}

func (r *vkRecorder) CopyBuffer(src, dst vk.Buffer, regions []vk.BufferCopy) {
	if len(regions) == 0 {
		return
	}
	r.cmds.CmdCopyBuffer(r.buffer, src, dst, uint32(len(regions)), &regions[0])
}

func (r *vkRecorder) CopyImage(src vk.Image, srcLayout vk.ImageLayout, dst vk.Image, dstLayout vk.ImageLayout, regions []vk.ImageCopy) {
	if len(regions) == 0 {
		return
	}
	r.cmds.CmdCopyImage(r.buffer, src, srcLayout, dst, dstLayout, uint32(len(regions)), &regions[0])
}

func (r *vkRecorder) BlitImage(src vk.Image, srcLayout vk.ImageLayout, dst vk.Image, dstLayout vk.ImageLayout, regions []vk.ImageBlit, filter vk.Filter) {
	if len(regions) == 0 {
		return
	}
	r.cmds.CmdBlitImage(r.buffer, src, srcLayout, dst, dstLayout, uint32(len(regions)), &regions[0], filter)
}

func (r *vkRecorder) CopyBufferToImage(src vk.Buffer, dst vk.Image, dstLayout vk.ImageLayout, regions []vk.BufferImageCopy) {
	if len(regions) == 0 {
		return
	}
	r.cmds.CmdCopyBufferToImage(r.buffer, src, dst, dstLayout, uint32(len(regions)), &regions[0])
}

func (r *vkRecorder) CopyImageToBuffer(src vk.Image, srcLayout vk.ImageLayout, dst vk.Buffer, regions []vk.BufferImageCopy) {
	if len(regions) == 0 {
		return
	}
	r.cmds.CmdCopyImageToBuffer(r.buffer, src, srcLayout, dst, uint32(len(regions)), &regions[0])
}

func (r *vkRecorder) FillBuffer(dst vk.Buffer, offset, size uint64, data uint32) {
	r.cmds.CmdFillBuffer(r.buffer, dst, vk.DeviceSize(offset), vk.DeviceSize(size), data)
}

func (r *vkRecorder) BeginDebugLabel(name string) {
	if !r.debug {
		return
	}
	label := cString(name)
	info := vk.DebugUtilsLabelEXT{
		SType:      vk.StructureTypeDebugUtilsLabelEXT,
		PLabelName: &label[0],
	}
	r.cmds.CmdBeginDebugUtilsLabelEXT(r.buffer, &info)
}

func (r *vkRecorder) EndDebugLabel() {
	if !r.debug {
		return
	}
	r.cmds.CmdEndDebugUtilsLabelEXT(r.buffer)
}

func (r *vkRecorder) InsertDebugLabel(name string) {
	if !r.debug {
		return
	}
	label := cString(name)
	info := vk.DebugUtilsLabelEXT{
		SType:      vk.StructureTypeDebugUtilsLabelEXT,
		PLabelName: &label[0],
	}
	r.cmds.CmdInsertDebugUtilsLabelEXT(r.buffer, &info)
}

func (r *vkRecorder) Handle() vk.CommandBuffer {
	return r.buffer
}
