// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/framegraph"
	"github.com/gogpu/framegraph/vulkan/vk"
)

// descriptorAllocator hands out per-frame descriptor sets for argument
// buffers. Sets are not pooled across frames: each frame slot owns a
// descriptor pool that is reset wholesale once the slot's previous
// frame has retired, and every bound argument buffer rebuilds its set.
type descriptorAllocator struct {
	device vk.Device
	cmds   *vk.Commands

	pools   []vk.DescriptorPool
	current int
}

const (
	descriptorPoolMaxSets       = 1024
	descriptorPoolSizePerType   = 2048
)

func newDescriptorAllocator(device vk.Device, cmds *vk.Commands, inflightFrames int) (*descriptorAllocator, error) {
	a := &descriptorAllocator{device: device, cmds: cmds}

	sizes := []vk.DescriptorPoolSize{
		{Type: vk.DescriptorTypeUniformBuffer, DescriptorCount: descriptorPoolSizePerType},
		{Type: vk.DescriptorTypeStorageBuffer, DescriptorCount: descriptorPoolSizePerType},
		{Type: vk.DescriptorTypeSampledImage, DescriptorCount: descriptorPoolSizePerType},
		{Type: vk.DescriptorTypeStorageImage, DescriptorCount: descriptorPoolSizePerType},
		{Type: vk.DescriptorTypeSampler, DescriptorCount: descriptorPoolSizePerType},
	}
	for i := 0; i < inflightFrames; i++ {
		createInfo := vk.DescriptorPoolCreateInfo{
			SType:         vk.StructureTypeDescriptorPoolCreateInfo,
			MaxSets:       descriptorPoolMaxSets,
			PoolSizeCount: uint32(len(sizes)),
			PPoolSizes:    &sizes[0],
		}
		var pool vk.DescriptorPool
		if result := cmds.CreateDescriptorPool(device, &createInfo, nil, &pool); result != vk.Success {
			a.destroy()
			return nil, newVkError("vkCreateDescriptorPool", result)
		}
		a.pools = append(a.pools, pool)
	}
	return a, nil
}

// beginFrame resets the slot's pool. Safe once the slot's previous
// frame has retired.
func (a *descriptorAllocator) beginFrame(frameIndex int) {
	a.current = frameIndex % len(a.pools)
	_ = a.cmds.ResetDescriptorPool(a.device, a.pools[a.current], 0)
}

func (a *descriptorAllocator) allocateSet(layout vk.DescriptorSetLayout) (vk.DescriptorSet, error) {
	allocInfo := vk.DescriptorSetAllocateInfo{
		SType:              vk.StructureTypeDescriptorSetAllocateInfo,
		DescriptorPool:     a.pools[a.current],
		DescriptorSetCount: 1,
		PSetLayouts:        &layout,
	}
	var set vk.DescriptorSet
	if result := a.cmds.AllocateDescriptorSets(a.device, &allocInfo, &set); result != vk.Success {
		return 0, newVkError("vkAllocateDescriptorSets", result)
	}
	return set, nil
}

// writeSet flushes an argument buffer's recorded entries into a
// descriptor set. Buffer ranges use the size of the binding range;
// zero means the rest of the buffer.
func (a *descriptorAllocator) writeSet(set vk.DescriptorSet, ab *argumentBuffer, resolver frameResolver) error {
	if len(ab.entries) == 0 {
		return nil
	}

	var writes []vk.WriteDescriptorSet
	var bufferInfos []vk.DescriptorBufferInfo
	var imageInfos []vk.DescriptorImageInfo

	// Two passes so the info slices never reallocate under the
	// pointers handed to Vulkan.
	for _, entry := range ab.entries {
		switch entry.kind {
		case framegraph.KindBuffer:
			bufferInfos = append(bufferInfos, vk.DescriptorBufferInfo{})
		default:
			imageInfos = append(imageInfos, vk.DescriptorImageInfo{})
		}
	}
	bufferInfos = bufferInfos[:0]
	imageInfos = imageInfos[:0]

	for binding, entry := range ab.entries {
		switch entry.kind {
		case framegraph.KindBuffer:
			res, ok := resolver.buffer(entry.buffer)
			if !ok {
				return fmt.Errorf("%w: %s", framegraph.ErrUnknownResource, entry.buffer)
			}
			size := entry.size
			if size == 0 {
				size = vk.WholeSize
			}
			bufferInfos = append(bufferInfos, vk.DescriptorBufferInfo{
				Buffer: res.buffer,
				Offset: vk.DeviceSize(entry.offset),
				Range:  vk.DeviceSize(size),
			})
			descType := vk.DescriptorTypeStorageBuffer
			if res.desc.Usage&gputypes.BufferUsageUniform != 0 {
				descType = vk.DescriptorTypeUniformBuffer
			}
			writes = append(writes, vk.WriteDescriptorSet{
				SType:           vk.StructureTypeWriteDescriptorSet,
				DstSet:          set,
				DstBinding:      binding,
				DescriptorCount: 1,
				DescriptorType:  descType,
				PBufferInfo:     &bufferInfos[len(bufferInfos)-1],
			})

		case framegraph.KindTexture:
			res, ok := resolver.image(entry.texture)
			if !ok {
				return fmt.Errorf("%w: %s", framegraph.ErrUnknownResource, entry.texture)
			}
			layout := vk.ImageLayoutShaderReadOnlyOptimal
			descType := vk.DescriptorTypeSampledImage
			if res.desc.Usage&gputypes.TextureUsageStorageBinding != 0 &&
				res.desc.Usage&gputypes.TextureUsageTextureBinding == 0 {
				layout = vk.ImageLayoutGeneral
				descType = vk.DescriptorTypeStorageImage
			}
			imageInfos = append(imageInfos, vk.DescriptorImageInfo{
				ImageView:   res.view,
				ImageLayout: layout,
			})
			writes = append(writes, vk.WriteDescriptorSet{
				SType:           vk.StructureTypeWriteDescriptorSet,
				DstSet:          set,
				DstBinding:      binding,
				DescriptorCount: 1,
				DescriptorType:  descType,
				PImageInfo:      &imageInfos[len(imageInfos)-1],
			})

		case framegraph.KindSampler:
			res, ok := resolver.sampler(entry.sampler)
			if !ok {
				return fmt.Errorf("%w: %s", framegraph.ErrUnknownResource, entry.sampler)
			}
			imageInfos = append(imageInfos, vk.DescriptorImageInfo{
				Sampler: res.sampler,
			})
			writes = append(writes, vk.WriteDescriptorSet{
				SType:           vk.StructureTypeWriteDescriptorSet,
				DstSet:          set,
				DstBinding:      binding,
				DescriptorCount: 1,
				DescriptorType:  vk.DescriptorTypeSampler,
				PImageInfo:      &imageInfos[len(imageInfos)-1],
			})
		}
	}

	if len(writes) > 0 {
		a.cmds.UpdateDescriptorSets(a.device, uint32(len(writes)), &writes[0])
	}
	ab.set = set
	ab.dirty = false
	return nil
}

func (a *descriptorAllocator) destroy() {
	for _, pool := range a.pools {
		if pool != 0 {
			a.cmds.DestroyDescriptorPool(a.device, pool, nil)
		}
	}
	a.pools = nil
}
