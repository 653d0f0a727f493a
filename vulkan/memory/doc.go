// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package memory implements the device memory allocator behind the
// framegraph Vulkan backend.
//
// The allocator is deliberately flat: every resource receives its own
// VkDeviceMemory allocation. Sub-allocation (pooling, buddy splitting)
// is out of scope for this backend — resource reuse happens one level
// up, in the transient resource pool, which recycles whole images and
// buffers across frames instead of carving up heaps.
//
// Memory type selection follows gpu-allocator's usage model: callers
// state intent (fast device access, host access, upload, download) and
// the selector maps that to required/preferred VkMemoryPropertyFlags.
package memory
