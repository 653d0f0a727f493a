// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package memory

import (
	"testing"

	"github.com/gogpu/framegraph/vulkan/vk"
)

func testMemoryProps() vk.PhysicalDeviceMemoryProperties {
	var props vk.PhysicalDeviceMemoryProperties
	props.MemoryTypeCount = 3
	// Type 0: device-local.
	props.MemoryTypes[0] = vk.MemoryType{
		PropertyFlags: vk.MemoryPropertyDeviceLocalBit,
		HeapIndex:     0,
	}
	// Type 1: host-visible + coherent (upload).
	props.MemoryTypes[1] = vk.MemoryType{
		PropertyFlags: vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit,
		HeapIndex:     1,
	}
	// Type 2: host-visible + cached (download).
	props.MemoryTypes[2] = vk.MemoryType{
		PropertyFlags: vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCachedBit,
		HeapIndex:     1,
	}
	props.MemoryHeapCount = 2
	props.MemoryHeaps[0] = vk.MemoryHeap{Size: 4 << 30}
	props.MemoryHeaps[1] = vk.MemoryHeap{Size: 16 << 30}
	return props
}

// TestSelectDeviceLocal tests the fast-device-access preference.
func TestSelectDeviceLocal(t *testing.T) {
	s := NewMemoryTypeSelector(testMemoryProps())

	idx, ok := s.SelectMemoryType(AllocationRequest{
		Size:           1024,
		Usage:          UsageFastDeviceAccess,
		MemoryTypeBits: 0x7,
	})
	if !ok {
		t.Fatalf("SelectMemoryType failed")
	}
	if idx != 0 {
		t.Errorf("selected type %d, want 0 (device local)", idx)
	}
}

// TestSelectUpload tests the coherent preference for uploads.
func TestSelectUpload(t *testing.T) {
	s := NewMemoryTypeSelector(testMemoryProps())

	idx, ok := s.SelectMemoryType(AllocationRequest{
		Size:           1024,
		Usage:          UsageHostAccess | UsageUpload,
		MemoryTypeBits: 0x7,
	})
	if !ok {
		t.Fatalf("SelectMemoryType failed")
	}
	if idx != 1 {
		t.Errorf("selected type %d, want 1 (host coherent)", idx)
	}
}

// TestSelectDownload tests the cached preference for readbacks.
func TestSelectDownload(t *testing.T) {
	s := NewMemoryTypeSelector(testMemoryProps())

	idx, ok := s.SelectMemoryType(AllocationRequest{
		Size:           1024,
		Usage:          UsageHostAccess | UsageDownload,
		MemoryTypeBits: 0x7,
	})
	if !ok {
		t.Fatalf("SelectMemoryType failed")
	}
	if idx != 2 {
		t.Errorf("selected type %d, want 2 (host cached)", idx)
	}
}

// TestSelectRespectsTypeBits tests that resource requirements restrict
// the candidate set.
func TestSelectRespectsTypeBits(t *testing.T) {
	s := NewMemoryTypeSelector(testMemoryProps())

	idx, ok := s.SelectMemoryType(AllocationRequest{
		Size:           1024,
		Usage:          UsageFastDeviceAccess,
		MemoryTypeBits: 0x2, // only type 1 allowed
	})
	if !ok {
		t.Fatalf("SelectMemoryType failed")
	}
	if idx != 1 {
		t.Errorf("selected type %d, want 1 (the only permitted type)", idx)
	}
}

// TestSelectFailsWithoutHostVisible tests the required-flag path: host
// access cannot fall back to device-only memory.
func TestSelectFailsWithoutHostVisible(t *testing.T) {
	s := NewMemoryTypeSelector(testMemoryProps())

	_, ok := s.SelectMemoryType(AllocationRequest{
		Size:           1024,
		Usage:          UsageHostAccess,
		MemoryTypeBits: 0x1, // only the device-local type
	})
	if ok {
		t.Errorf("SelectMemoryType succeeded, want failure for host access on device-only memory")
	}
}

// TestUnknownTypesExcluded tests that memory types carrying unknown
// property flags are never selected.
func TestUnknownTypesExcluded(t *testing.T) {
	props := testMemoryProps()
	props.MemoryTypes[0].PropertyFlags |= 1 << 12 // vendor-specific bit

	s := NewMemoryTypeSelector(props)
	idx, ok := s.SelectMemoryType(AllocationRequest{
		Size:           1024,
		Usage:          UsageFastDeviceAccess,
		MemoryTypeBits: 0x7,
	})
	if !ok {
		t.Fatalf("SelectMemoryType failed")
	}
	if idx == 0 {
		t.Errorf("selected the vendor-flagged type")
	}
}
