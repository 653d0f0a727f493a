// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package memory

import (
	"errors"
	"sync"

	"github.com/gogpu/framegraph/vulkan/vk"
)

var (
	// ErrNoSuitableMemoryType indicates no memory type matches requirements.
	ErrNoSuitableMemoryType = errors.New("allocator: no suitable memory type")

	// ErrAllocationFailed indicates Vulkan memory allocation failed.
	ErrAllocationFailed = errors.New("allocator: allocation failed")

	// ErrInvalidAllocation indicates a nil or already-freed allocation.
	ErrInvalidAllocation = errors.New("allocator: invalid allocation")
)

// Stats contains allocator-wide statistics.
type Stats struct {
	TotalAllocated  uint64 // Total memory allocated from Vulkan
	AllocationCount uint64 // Number of active allocations
}

// Allocator hands out one VkDeviceMemory per request.
//
// Thread-safe. Use Alloc/Free for all allocations.
type Allocator struct {
	mu sync.Mutex

	device   vk.Device
	cmds     *vk.Commands
	selector *MemoryTypeSelector

	stats Stats
}

// New creates an allocator for the given device.
// props must come from vkGetPhysicalDeviceMemoryProperties.
func New(device vk.Device, cmds *vk.Commands, props vk.PhysicalDeviceMemoryProperties) *Allocator {
	return &Allocator{
		device:   device,
		cmds:     cmds,
		selector: NewMemoryTypeSelector(props),
	}
}

// Alloc allocates device memory. Host-visible allocations are mapped
// persistently; the pointer is available through Allocation.MappedPtr.
func (a *Allocator) Alloc(req AllocationRequest) (*Allocation, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	memTypeIndex, ok := a.selector.SelectMemoryType(req)
	if !ok {
		return nil, ErrNoSuitableMemoryType
	}

	// Round size up to the required alignment. With one VkDeviceMemory
	// per resource the bind offset is always zero, so alignment only
	// affects the tail.
	size := req.Size
	if align := req.Alignment; align > 1 && size%align != 0 {
		size = (size/align + 1) * align
	}

	allocInfo := vk.MemoryAllocateInfo{
		SType:           vk.StructureTypeMemoryAllocateInfo,
		AllocationSize:  vk.DeviceSize(size),
		MemoryTypeIndex: memTypeIndex,
	}
	var memory vk.DeviceMemory
	if result := a.cmds.AllocateMemory(a.device, &allocInfo, nil, &memory); result != vk.Success {
		return nil, ErrAllocationFailed
	}

	alloc := &Allocation{
		Memory:          memory,
		Size:            size,
		memoryTypeIndex: memTypeIndex,
		hostVisible:     a.selector.IsHostVisible(memTypeIndex),
		coherent:        a.selector.IsCoherent(memTypeIndex),
	}

	if alloc.hostVisible {
		var data uintptr
		if result := a.cmds.MapMemory(a.device, memory, 0, vk.DeviceSize(vk.WholeSize), 0, &data); result == vk.Success {
			alloc.MappedPtr = data
		}
	}

	a.stats.TotalAllocated += size
	a.stats.AllocationCount++
	return alloc, nil
}

// Free releases an allocation.
func (a *Allocator) Free(alloc *Allocation) error {
	if alloc == nil || alloc.Memory == 0 {
		return ErrInvalidAllocation
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if alloc.MappedPtr != 0 {
		a.cmds.UnmapMemory(a.device, alloc.Memory)
		alloc.MappedPtr = 0
	}
	a.cmds.FreeMemory(a.device, alloc.Memory, nil)

	a.stats.TotalAllocated -= alloc.Size
	a.stats.AllocationCount--
	alloc.Memory = 0
	return nil
}

// Flush makes host writes to a non-coherent allocation visible to the
// device. No-op for coherent memory.
func (a *Allocator) Flush(alloc *Allocation, offset, size uint64) error {
	if alloc == nil || alloc.Memory == 0 {
		return ErrInvalidAllocation
	}
	if alloc.coherent {
		return nil
	}

	r := vk.MappedMemoryRange{
		SType:  vk.StructureTypeMappedMemoryRange,
		Memory: alloc.Memory,
		Offset: vk.DeviceSize(offset),
		Size:   vk.DeviceSize(size),
	}
	if result := a.cmds.FlushMappedMemoryRanges(a.device, 1, &r); result != vk.Success {
		return ErrAllocationFailed
	}
	return nil
}

// Stats returns a snapshot of allocator statistics.
func (a *Allocator) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

// Destroy resets the statistics. The allocator owns no blocks of its
// own in the flat scheme, so there is nothing to release; allocations
// still outstanding are neither freed nor reported.
func (a *Allocator) Destroy() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stats.AllocationCount != 0 {
		// Leaked allocations keep their VkDeviceMemory alive until
		// device destruction; only the counters are cleared here.
		a.stats = Stats{}
	}
}
