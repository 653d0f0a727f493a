// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package vulkan implements the framegraph backend for Vulkan.
//
// The backend lowers one frame description (passes, commands, usages)
// into synchronized Vulkan command buffers:
//
//   - The resource registry materializes persistent resources and, per
//     frame, transient ones backed by a ring of pooled images/buffers.
//   - The dependency analyzer derives the minimal set of pipeline
//     barriers, subpass dependencies, and timeline-semaphore
//     signals/waits from per-command resource usages.
//   - The encoder dispatcher interleaves those synchronization commands
//     with the frame's own commands into one command buffer per encoder.
//   - The submission engine submits with timeline-semaphore wait/signal
//     lists, queues swapchain presents, and runs the frame completion
//     callback after the GPU finishes.
//
// Vulkan entry points are loaded dynamically through the vk sub-package
// (goffi, no CGO). Device memory comes from the flat allocator in the
// memory sub-package.
package vulkan
