// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package framegraph

import "github.com/gogpu/gputypes"

// Op is the closed set of frame-graph command opcodes.
type Op uint8

// Opcodes.
const (
	OpInsertDebugSignpost Op = iota
	OpSetLabel
	OpPushDebugGroup
	OpPopDebugGroup

	OpCopyBufferToTexture
	OpCopyBufferToBuffer
	OpCopyTextureToBuffer
	OpCopyTextureToTexture
	OpFillBuffer
	OpGenerateMipmaps

	OpSetArgumentBuffer
	OpSetBytes
	OpSetBufferOffset
	OpSetBuffer
	OpSetTexture
	OpSetSamplerState

	OpSetRenderPipeline
	OpSetComputePipeline

	OpDispatchThreads
	OpDispatchThreadgroups
	OpDispatchThreadgroupsIndirect

	OpDraw
	OpDrawIndexed
	OpDrawIndirect
	OpDrawIndexedIndirect

	OpSynchronizeTexture
	OpSynchronizeBuffer
)

// Origin3D is a texel offset into a texture.
type Origin3D struct {
	X, Y, Z uint32
}

// Extent3D is a region size in texels.
type Extent3D struct {
	Width, Height, Depth uint32
}

// DrawArgs carries the parameters of the draw* opcodes.
type DrawArgs struct {
	VertexCount   uint32
	IndexCount    uint32
	InstanceCount uint32
	FirstVertex   uint32
	FirstIndex    uint32
	BaseVertex    int32
	FirstInstance uint32

	IndexBuffer ResourceHandle
	IndexOffset uint64
	IndexFormat gputypes.IndexFormat

	VertexBuffers []VertexBufferBinding
}

// VertexBufferBinding names one vertex buffer consumed by a draw.
type VertexBufferBinding struct {
	Slot   uint32
	Buffer ResourceHandle
	Offset uint64
}

// DispatchArgs carries the parameters of the dispatch* opcodes.
type DispatchArgs struct {
	// Threads or threadgroups per grid dimension, depending on the opcode.
	GridX, GridY, GridZ uint32

	ThreadsPerGroupX uint32
	ThreadsPerGroupY uint32
	ThreadsPerGroupZ uint32
}

// Command is one entry of the frame's linear command stream. Which fields
// are meaningful depends on Op; unused fields are zero. Pipeline
// descriptors referenced by a command are owned by the command list for
// the lifetime of the frame — the backend borrows them.
type Command struct {
	Op Op

	// Resource is the primary resource: copy source, fill target, bind
	// target, mipmap texture, synchronize target.
	Resource ResourceHandle
	// Aux is the secondary resource: copy destination, indirect buffer,
	// argument buffer being written into.
	Aux ResourceHandle

	// Index is a binding slot or argument-buffer index.
	Index uint32
	// Offset and Length address bytes within Resource (or Aux for the
	// destination side of buffer copies).
	Offset    uint64
	AuxOffset uint64
	Length    uint64

	// Range is the affected byte range for fillBuffer and synchronize.
	Range Range
	// FillValue is the byte written by fillBuffer.
	FillValue uint8

	// Texture copy addressing.
	SrcOrigin Origin3D
	DstOrigin Origin3D
	Extent    Extent3D
	SrcLevel  uint32
	DstLevel  uint32
	SrcSlice  uint32
	DstSlice  uint32
	// BytesPerRow and RowsPerImage describe the buffer side of
	// buffer<->texture copies.
	BytesPerRow  uint32
	RowsPerImage uint32

	// Stages restricts a binding to specific shader stages.
	Stages gputypes.ShaderStages

	// Label is the payload of the debug opcodes and setLabel.
	Label string
	// Bytes is the inline payload of setBytes.
	Bytes []byte

	Draw     *DrawArgs
	Dispatch *DispatchArgs

	RenderPipeline  *RenderPipelineDescriptor
	ComputePipeline *ComputePipelineDescriptor
}
