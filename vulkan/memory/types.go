// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package memory

import (
	"github.com/gogpu/framegraph/vulkan/vk"
)

// UsageFlags specifies intended memory usage.
// These flags help select the optimal memory type.
type UsageFlags uint32

const (
	// UsageFastDeviceAccess indicates memory primarily accessed by GPU.
	// Prefers DEVICE_LOCAL memory.
	UsageFastDeviceAccess UsageFlags = 1 << iota

	// UsageHostAccess indicates memory needs CPU access.
	// Requires HOST_VISIBLE memory.
	UsageHostAccess

	// UsageUpload indicates memory used for CPU->GPU transfers.
	// Prefers HOST_VISIBLE + HOST_COHERENT.
	UsageUpload

	// UsageDownload indicates memory used for GPU->CPU readback.
	// Prefers HOST_VISIBLE + HOST_CACHED.
	UsageDownload

	// UsageManaged indicates host-mirrored memory with explicit flushes.
	// Requires HOST_VISIBLE; coherent and non-coherent types are
	// equally eligible (Flush is a no-op on coherent memory).
	UsageManaged
)

// AllocationRequest describes a memory allocation request.
type AllocationRequest struct {
	// Size is the required allocation size in bytes.
	Size uint64

	// Alignment is the required alignment (must be power of 2).
	// Use 0 or 1 for no specific alignment.
	Alignment uint64

	// Usage specifies how the memory will be used.
	Usage UsageFlags

	// MemoryTypeBits is a bitmask of allowed memory type indices,
	// from VkMemoryRequirements.memoryTypeBits.
	MemoryTypeBits uint32
}

// Allocation is one VkDeviceMemory owned by a single resource.
type Allocation struct {
	// Memory is the Vulkan device memory handle.
	Memory vk.DeviceMemory

	// Size is the allocated size in bytes.
	Size uint64

	// MappedPtr holds the persistently mapped pointer for host-visible
	// allocations, zero otherwise.
	MappedPtr uintptr

	// memoryTypeIndex is the Vulkan memory type used.
	memoryTypeIndex uint32

	// hostVisible records whether the memory can be mapped.
	hostVisible bool

	// coherent records whether host writes need no explicit flush.
	coherent bool
}

// MemoryTypeIndex returns the Vulkan memory type index.
func (a *Allocation) MemoryTypeIndex() uint32 {
	return a.memoryTypeIndex
}

// HostVisible reports whether the allocation is mappable.
func (a *Allocation) HostVisible() bool {
	return a.hostVisible
}

// Coherent reports whether host writes are visible without a flush.
func (a *Allocation) Coherent() bool {
	return a.coherent
}

// MemoryTypeSelector selects optimal memory types for allocations.
type MemoryTypeSelector struct {
	props vk.PhysicalDeviceMemoryProperties

	// validTypes is a bitmask of memory types safe to use.
	// Excludes exotic/vendor-specific types.
	validTypes uint32
}

// knownMemoryFlags are memory property flags we understand and can use.
const knownMemoryFlags = vk.MemoryPropertyDeviceLocalBit |
	vk.MemoryPropertyHostVisibleBit |
	vk.MemoryPropertyHostCoherentBit |
	vk.MemoryPropertyHostCachedBit |
	vk.MemoryPropertyLazilyAllocatedBit

// NewMemoryTypeSelector creates a selector from device memory properties.
func NewMemoryTypeSelector(props vk.PhysicalDeviceMemoryProperties) *MemoryTypeSelector {
	var validTypes uint32
	for i := uint32(0); i < props.MemoryTypeCount; i++ {
		// Only include types where we understand all flags.
		unknown := props.MemoryTypes[i].PropertyFlags &^ knownMemoryFlags
		if unknown == 0 {
			validTypes |= 1 << i
		}
	}
	return &MemoryTypeSelector{
		props:      props,
		validTypes: validTypes,
	}
}

// SelectMemoryType finds the best memory type for the given request.
// Returns the memory type index and true if found.
func (s *MemoryTypeSelector) SelectMemoryType(req AllocationRequest) (uint32, bool) {
	required, preferred := usageToFlags(req.Usage)

	// First pass: all preferred flags too.
	if idx, ok := s.findMemoryType(req.MemoryTypeBits, required|preferred); ok {
		return idx, true
	}
	// Second pass: just required flags.
	if idx, ok := s.findMemoryType(req.MemoryTypeBits, required); ok {
		return idx, true
	}
	return 0, false
}

func (s *MemoryTypeSelector) findMemoryType(typeBits uint32, flags vk.MemoryPropertyFlags) (uint32, bool) {
	for i := uint32(0); i < s.props.MemoryTypeCount; i++ {
		typeMask := uint32(1) << i
		if typeBits&typeMask == 0 {
			continue
		}
		if s.validTypes&typeMask == 0 {
			continue
		}
		if s.props.MemoryTypes[i].PropertyFlags&flags == flags {
			return i, true
		}
	}
	return 0, false
}

// usageToFlags converts usage flags to Vulkan memory property flags.
func usageToFlags(usage UsageFlags) (required, preferred vk.MemoryPropertyFlags) {
	if usage&(UsageHostAccess|UsageUpload|UsageDownload|UsageManaged) != 0 {
		required |= vk.MemoryPropertyHostVisibleBit
		if usage&UsageUpload != 0 {
			// Coherent preferred to avoid flushes on the upload path.
			preferred |= vk.MemoryPropertyHostCoherentBit
		}
		if usage&UsageDownload != 0 {
			// Cached preferred for read performance.
			preferred |= vk.MemoryPropertyHostCachedBit
		}
	} else if usage&UsageFastDeviceAccess != 0 {
		preferred |= vk.MemoryPropertyDeviceLocalBit
	}
	return required, preferred
}

// MemoryType returns the memory type at the given index.
func (s *MemoryTypeSelector) MemoryType(index uint32) (vk.MemoryType, bool) {
	if index >= s.props.MemoryTypeCount {
		return vk.MemoryType{}, false
	}
	return s.props.MemoryTypes[index], true
}

// IsHostVisible reports whether the memory type is host visible.
func (s *MemoryTypeSelector) IsHostVisible(typeIndex uint32) bool {
	mt, ok := s.MemoryType(typeIndex)
	return ok && mt.PropertyFlags&vk.MemoryPropertyHostVisibleBit != 0
}

// IsCoherent reports whether the memory type is host coherent.
func (s *MemoryTypeSelector) IsCoherent(typeIndex uint32) bool {
	mt, ok := s.MemoryType(typeIndex)
	return ok && mt.PropertyFlags&vk.MemoryPropertyHostCoherentBit != 0
}
