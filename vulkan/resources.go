// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/framegraph"
	"github.com/gogpu/framegraph/vulkan/memory"
	"github.com/gogpu/framegraph/vulkan/vk"
)

// createImage materializes a Vulkan image, binds memory from the flat
// allocator, and creates its default view.
func (b *Backend) createImage(desc framegraph.TextureDescriptor) (*imageResource, error) {
	desc = desc.Normalized()
	depthStencil := formatIsDepthStencil(desc.Format)

	imageType := vk.ImageType2D
	if desc.Depth > 1 {
		imageType = vk.ImageType3D
	}

	createInfo := vk.ImageCreateInfo{
		SType:     vk.StructureTypeImageCreateInfo,
		ImageType: imageType,
		Format:    textureFormatToVk(desc.Format),
		Extent: vk.Extent3D{
			Width:  desc.Width,
			Height: desc.Height,
			Depth:  desc.Depth,
		},
		MipLevels:     desc.MipLevels,
		ArrayLayers:   desc.ArrayLength,
		Samples:       vk.SampleCountFlagBits(desc.SampleCount),
		Tiling:        vk.ImageTilingOptimal,
		Usage:         textureUsageToVk(desc.Usage, depthStencil),
		SharingMode:   vk.SharingModeExclusive,
		InitialLayout: vk.ImageLayoutUndefined,
	}

	var image vk.Image
	if result := b.cmds.CreateImage(b.device, &createInfo, nil, &image); result != vk.Success {
		return nil, newVkError("vkCreateImage", result)
	}

	var memReqs vk.MemoryRequirements
	b.cmds.GetImageMemoryRequirements(b.device, image, &memReqs)

	alloc, err := b.allocator.Alloc(memory.AllocationRequest{
		Size:           uint64(memReqs.Size),
		Alignment:      uint64(memReqs.Alignment),
		Usage:          memory.UsageFastDeviceAccess,
		MemoryTypeBits: memReqs.MemoryTypeBits,
	})
	if err != nil {
		b.cmds.DestroyImage(b.device, image, nil)
		return nil, fmt.Errorf("%w: image memory: %v", framegraph.ErrOutOfMemory, err)
	}

	if result := b.cmds.BindImageMemory(b.device, image, alloc.Memory, 0); result != vk.Success {
		_ = b.allocator.Free(alloc)
		b.cmds.DestroyImage(b.device, image, nil)
		return nil, newVkError("vkBindImageMemory", result)
	}

	view, err := b.createImageView(image, desc)
	if err != nil {
		_ = b.allocator.Free(alloc)
		b.cmds.DestroyImage(b.device, image, nil)
		return nil, err
	}

	return &imageResource{
		desc:          desc,
		image:         image,
		view:          view,
		alloc:         alloc,
		currentLayout: vk.ImageLayoutUndefined,
	}, nil
}

// createImageView builds the full-resource view used for attachments
// and descriptor bindings.
func (b *Backend) createImageView(image vk.Image, desc framegraph.TextureDescriptor) (vk.ImageView, error) {
	viewType := vk.ImageViewType2D
	switch {
	case desc.Depth > 1:
		viewType = vk.ImageViewType3D
	case desc.ArrayLength > 1:
		viewType = vk.ImageViewType2DArray
	}

	createInfo := vk.ImageViewCreateInfo{
		SType:    vk.StructureTypeImageViewCreateInfo,
		Image:    image,
		ViewType: viewType,
		Format:   textureFormatToVk(desc.Format),
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask: formatAspect(desc.Format),
			LevelCount: vk.RemainingMipLevels,
			LayerCount: vk.RemainingArrayLayers,
		},
	}

	var view vk.ImageView
	if result := b.cmds.CreateImageView(b.device, &createInfo, nil, &view); result != vk.Success {
		return 0, newVkError("vkCreateImageView", result)
	}
	return view, nil
}

// createBuffer materializes a Vulkan buffer and binds memory per its
// storage mode.
func (b *Backend) createBuffer(desc framegraph.BufferDescriptor) (*bufferResource, error) {
	if desc.Size == 0 {
		return nil, fmt.Errorf("vulkan: buffer size must be > 0")
	}

	createInfo := vk.BufferCreateInfo{
		SType:       vk.StructureTypeBufferCreateInfo,
		Size:        vk.DeviceSize(desc.Size),
		Usage:       bufferUsageToVk(desc.Usage),
		SharingMode: vk.SharingModeExclusive,
	}

	var buffer vk.Buffer
	if result := b.cmds.CreateBuffer(b.device, &createInfo, nil, &buffer); result != vk.Success {
		return nil, newVkError("vkCreateBuffer", result)
	}

	var memReqs vk.MemoryRequirements
	b.cmds.GetBufferMemoryRequirements(b.device, buffer, &memReqs)

	alloc, err := b.allocator.Alloc(memory.AllocationRequest{
		Size:           uint64(memReqs.Size),
		Alignment:      uint64(memReqs.Alignment),
		Usage:          storageModeToMemoryUsage(desc.Storage),
		MemoryTypeBits: memReqs.MemoryTypeBits,
	})
	if err != nil {
		b.cmds.DestroyBuffer(b.device, buffer, nil)
		return nil, fmt.Errorf("%w: buffer memory: %v", framegraph.ErrOutOfMemory, err)
	}

	if result := b.cmds.BindBufferMemory(b.device, buffer, alloc.Memory, 0); result != vk.Success {
		_ = b.allocator.Free(alloc)
		b.cmds.DestroyBuffer(b.device, buffer, nil)
		return nil, newVkError("vkBindBufferMemory", result)
	}

	return &bufferResource{
		desc:   desc,
		buffer: buffer,
		alloc:  alloc,
	}, nil
}

func (b *Backend) destroyImage(res *imageResource) {
	if res == nil || res.isSwapchain() {
		return
	}
	if res.view != 0 {
		b.cmds.DestroyImageView(b.device, res.view, nil)
		res.view = 0
	}
	if res.image != 0 {
		b.cmds.DestroyImage(b.device, res.image, nil)
		res.image = 0
	}
	if res.alloc != nil {
		_ = b.allocator.Free(res.alloc)
		res.alloc = nil
	}
}

func (b *Backend) destroyBuffer(res *bufferResource) {
	if res == nil {
		return
	}
	if res.buffer != 0 {
		b.cmds.DestroyBuffer(b.device, res.buffer, nil)
		res.buffer = 0
	}
	if res.alloc != nil {
		_ = b.allocator.Free(res.alloc)
		res.alloc = nil
	}
}

// createSampler materializes a Vulkan sampler.
func (b *Backend) createSampler(desc framegraph.SamplerDescriptor) (*samplerResource, error) {
	createInfo := vk.SamplerCreateInfo{
		SType:        vk.StructureTypeSamplerCreateInfo,
		MagFilter:    filterToVk(desc.MagFilter),
		MinFilter:    filterToVk(desc.MinFilter),
		MipmapMode:   vk.SamplerMipmapModeNearest,
		AddressModeU: addressModeToVk(desc.AddressModeU),
		AddressModeV: addressModeToVk(desc.AddressModeV),
		AddressModeW: addressModeToVk(desc.AddressModeW),
		MaxLod:       1000, // VK_LOD_CLAMP_NONE
	}
	if desc.MipFilter == gputypes.FilterModeLinear {
		createInfo.MipmapMode = vk.SamplerMipmapModeLinear
	}
	if desc.MaxAnisotropy > 1 {
		createInfo.AnisotropyEnable = vk.True
		createInfo.MaxAnisotropy = float32(desc.MaxAnisotropy)
	}

	var sampler vk.Sampler
	if result := b.cmds.CreateSampler(b.device, &createInfo, nil, &sampler); result != vk.Success {
		return nil, newVkError("vkCreateSampler", result)
	}
	return &samplerResource{desc: desc, sampler: sampler}, nil
}
