// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package framegraph

import "errors"

// Sentinel errors for the failure classes a backend reports. Vulkan-level
// failures are wrapped with %w so callers can match with errors.Is.
var (
	// ErrNoSuitableDevice indicates no physical device satisfied the
	// backend's requirements. Backend construction aborts.
	ErrNoSuitableDevice = errors.New("framegraph: no suitable physical device")

	// ErrExtensionMissing indicates a required device extension (e.g.
	// VK_KHR_swapchain, VK_KHR_timeline_semaphore) is unavailable.
	// Backend construction aborts.
	ErrExtensionMissing = errors.New("framegraph: required device extension missing")

	// ErrOutOfMemory indicates a resource creation failed for lack of
	// device or host memory. Materialise operations report it by
	// returning false; the caller decides how to degrade.
	ErrOutOfMemory = errors.New("framegraph: out of memory")

	// ErrUnsupported indicates an operation this backend deliberately
	// does not implement (heaps, managed-storage readback, direct
	// setBuffer/setTexture outside argument buffers). Hitting it means a
	// frontend bug; it is fatal for the frame.
	ErrUnsupported = errors.New("framegraph: operation not supported by this backend")

	// ErrUnknownResource indicates a handle that is not registered. At
	// encode time this is an error; during compilation a missing
	// transient entry only causes the affected encoder to be skipped.
	ErrUnknownResource = errors.New("framegraph: unknown resource handle")

	// ErrFrameSubmission indicates vkQueueSubmit failed. The frame is
	// abandoned; completion callbacks do not fire.
	ErrFrameSubmission = errors.New("framegraph: frame submission failed")
)
