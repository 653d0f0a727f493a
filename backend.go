// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package framegraph

import "github.com/gogpu/gputypes"

// CompletionFunc is invoked exactly once per submitted frame, after the
// GPU has finished executing it and any presents have been queued. A nil
// error means the frame completed; otherwise it carries the submission
// failure.
type CompletionFunc func(error)

// SwapchainContext is the windowing collaborator's view of a swapchain.
// Backends require richer, API-specific interfaces and assert for them
// when a window texture is registered.
type SwapchainContext interface {
	// Extent returns the current drawable size in pixels.
	Extent() (width, height uint32)
	// Format returns the pixel format of the swapchain's images.
	Format() gputypes.TextureFormat
}

// ShaderFunction is one entry point from the shader library: its SPIR-V
// module and the reflection data the backend's state caches consume.
type ShaderFunction struct {
	Name       string
	SPIRV      []uint32
	Reflection *PipelineReflection
}

// ShaderLibrary is the shader collaborator consumed by backends. The
// shaderlib package provides the default implementation.
type ShaderLibrary interface {
	// Function resolves an entry point by name.
	Function(name string) (*ShaderFunction, error)
}

// Backend is the inbound API a frame-graph frontend drives. All frame
// work funnels through ExecuteFrameGraph; the remaining operations manage
// persistent resources and delegate to the backend's state caches.
type Backend interface {
	// RegisterWindowTexture binds a texture handle to a swapchain. The
	// handle must carry FlagWindowHandle.
	RegisterWindowTexture(h ResourceHandle, surface SwapchainContext) error

	// MaterialisePersistentTexture creates the backing image for a
	// persistent texture handle. It returns false if creation failed
	// (out of memory); the caller decides how to degrade.
	MaterialisePersistentTexture(h ResourceHandle, desc *TextureDescriptor) bool

	// MaterialisePersistentBuffer creates the backing buffer for a
	// persistent buffer handle.
	MaterialisePersistentBuffer(h ResourceHandle, desc *BufferDescriptor) bool

	// BufferContents returns the mapped bytes of a host-visible buffer
	// range.
	BufferContents(h ResourceHandle, r Range) ([]byte, error)

	// BufferDidModifyRange flushes a managed-storage range after host
	// writes.
	BufferDidModifyRange(h ResourceHandle, r Range) error

	DisposeBuffer(h ResourceHandle)
	DisposeTexture(h ResourceHandle)
	DisposeArgumentBuffer(h ResourceHandle)
	DisposeSampler(h ResourceHandle)

	// ExecuteFrameGraph compiles and submits one frame. It returns after
	// scheduling the submissions; completion runs once the GPU finishes.
	// If compilation fails before anything was submitted, the error is
	// returned and completion never runs.
	ExecuteFrameGraph(frame *Frame, completion CompletionFunc) error

	// RenderPipelineReflection returns the binding layout of a render
	// pipeline, merged from its vertex and fragment functions. It does
	// not create or cache the pipeline.
	RenderPipelineReflection(desc *RenderPipelineDescriptor, target *RenderTarget) (*PipelineReflection, error)

	// ComputePipelineReflection returns the binding layout of a compute
	// pipeline.
	ComputePipelineReflection(desc *ComputePipelineDescriptor) (*PipelineReflection, error)
}
