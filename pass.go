// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package framegraph

import "github.com/gogpu/gputypes"

// PassKind classifies a render pass by the encoder it needs.
type PassKind uint8

// Pass kinds.
const (
	PassDraw PassKind = iota
	PassCompute
	PassBlit
	// PassExternal is executed outside the backend (e.g. by a plugin that
	// records its own commands). The backend still synchronizes around it.
	PassExternal
	// PassCPU runs on the host between GPU passes. It contributes no
	// commands to any encoder.
	PassCPU
)

// PassRecord describes one pass of the frame.
type PassRecord struct {
	ID   int
	Kind PassKind

	// FirstCommand and LastCommand bound the pass's slice of the frame's
	// command stream, inclusive. A pass with no commands has
	// FirstCommand > LastCommand.
	FirstCommand int
	LastCommand  int

	// RenderTarget is set for draw passes. Consecutive draw passes sharing
	// the same RenderTarget pointer become subpasses of one Vulkan render
	// pass; Subpass is the pass's index within it.
	RenderTarget *RenderTarget
	Subpass      int
}

// LoadAction selects what happens to an attachment at render-pass begin.
type LoadAction uint8

// Load actions.
const (
	LoadDontCare LoadAction = iota
	LoadLoad
	LoadClear
)

// StoreAction selects what happens to an attachment at render-pass end.
type StoreAction uint8

// Store actions.
const (
	StoreDontCare StoreAction = iota
	StoreStore
)

// ColorAttachment describes one color target of a render pass.
type ColorAttachment struct {
	Texture    ResourceHandle
	Load       LoadAction
	Store      StoreAction
	ClearColor [4]float32

	// Resolve is the multisample resolve destination, if any.
	Resolve ResourceHandle
}

// DepthStencilAttachment describes the depth/stencil target of a render pass.
type DepthStencilAttachment struct {
	Texture      ResourceHandle
	Load         LoadAction
	Store        StoreAction
	ClearDepth   float32
	ClearStencil uint32
}

// RenderTarget describes the attachments a group of draw passes renders
// into. The backend attaches derived subpass dependencies to it during
// frame compilation.
type RenderTarget struct {
	Width  uint32
	Height uint32
	Layers uint32

	Colors       []ColorAttachment
	DepthStencil *DepthStencilAttachment

	// SubpassCount is the number of subpasses the sharing draw passes
	// split into. Zero means one.
	SubpassCount int
}

// UsageKind is the closed set of ways a command can use a resource.
type UsageKind uint8

// Usage kinds.
const (
	UsageVertexRead UsageKind = iota
	UsageFragmentRead
	UsageConstantBuffer
	UsageSampledTexture
	UsageStorageRead
	UsageStorageWrite
	UsageColorAttachmentRead
	UsageColorAttachmentWrite
	UsageDepthStencilRead
	UsageDepthStencilWrite
	UsageTransferSource
	UsageTransferDestination
	UsageIndirect
	UsageIndexBuffer
	UsageVertexBuffer
	UsagePresent
)

// Writes reports whether the usage modifies the resource.
func (u UsageKind) Writes() bool {
	switch u {
	case UsageStorageWrite, UsageColorAttachmentWrite, UsageDepthStencilWrite,
		UsageTransferDestination:
		return true
	}
	return false
}

// UsageRecord ties a resource to one command that uses it.
type UsageRecord struct {
	Resource ResourceHandle
	// Command is the index of the using command in the frame's stream.
	Command int
	Kind    UsageKind
	// Stages are the shader stages that perform the access. Zero means
	// the stage is implied by the usage kind (attachments, transfers).
	Stages gputypes.ShaderStages
}

// EncoderKind classifies an encoder by the pass kinds it can contain.
type EncoderKind uint8

// Encoder kinds.
const (
	EncoderDraw EncoderKind = iota
	EncoderCompute
	EncoderBlit
)

// EncoderInfo describes one contiguous group of passes recorded into a
// single command buffer on a single queue.
type EncoderInfo struct {
	Index int
	Kind  EncoderKind

	FirstPass int
	LastPass  int

	FirstCommand int
	LastCommand  int

	RenderTarget *RenderTarget

	// CommandBuffer is the index of the backing command buffer within the
	// frame's submission set.
	CommandBuffer int
}

// TransientResource declares a per-frame resource the backend must
// materialize before encoding. Exactly one of Texture and Buffer is
// set, matching the handle's kind.
type TransientResource struct {
	Handle  ResourceHandle
	Texture *TextureDescriptor
	Buffer  *BufferDescriptor
}

// Frame is the full input to Backend.ExecuteFrameGraph: a linear pass
// list, the command stream the passes index into, per-command resource
// usages sorted by command index, and the frame's transient resource
// declarations.
type Frame struct {
	Passes     []PassRecord
	Usages     []UsageRecord
	Commands   []Command
	Transients []TransientResource
}
