// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package framegraph

import "github.com/gogpu/gputypes"

// FunctionConstant is one specialization value applied to a shader
// function at pipeline creation.
type FunctionConstant struct {
	Name  string
	Index uint32
	// Value holds the constant's bit pattern, up to 8 bytes.
	Value uint64
	// Size is the constant's size in bytes (4 for bool/int/float,
	// 8 for 64-bit types).
	Size uint32
}

// VertexStepMode selects per-vertex or per-instance stepping of a vertex
// buffer layout.
type VertexStepMode uint8

// Step modes.
const (
	StepPerVertex VertexStepMode = iota
	StepPerInstance
)

// VertexAttribute describes one attribute of a vertex descriptor.
type VertexAttribute struct {
	Format         gputypes.VertexFormat
	Offset         uint64
	BufferIndex    int
	ShaderLocation uint32
}

// VertexBufferLayout describes the stride and stepping of one vertex
// buffer slot.
type VertexBufferLayout struct {
	Stride   uint64
	StepMode VertexStepMode
}

// VertexDescriptor describes the vertex input of a render pipeline.
type VertexDescriptor struct {
	Attributes []VertexAttribute
	Layouts    []VertexBufferLayout
}

// ColorTargetState describes one color output of a render pipeline.
type ColorTargetState struct {
	Format    gputypes.TextureFormat
	Blend     *gputypes.BlendState
	WriteMask gputypes.ColorWriteMask
}

// RenderPipelineDescriptor describes a graphics pipeline. Descriptors are
// compared structurally by the backend's pipeline cache, so they must not
// be mutated after first use.
type RenderPipelineDescriptor struct {
	Label string

	VertexFunction   string
	FragmentFunction string
	Constants        []FunctionConstant

	Vertex *VertexDescriptor

	ColorTargets []ColorTargetState
	DepthFormat  gputypes.TextureFormat
	DepthWrite   bool
	DepthCompare gputypes.CompareFunction

	Topology    gputypes.PrimitiveTopology
	CullMode    gputypes.CullMode
	FrontFace   gputypes.FrontFace
	SampleCount uint32
}

// ComputePipelineDescriptor describes a compute pipeline.
type ComputePipelineDescriptor struct {
	Label     string
	Function  string
	Constants []FunctionConstant

	ThreadsPerThreadgroup Extent3D
}

// BindingReflection describes one resource binding discovered by shader
// reflection.
type BindingReflection struct {
	Name    string
	Set     uint32
	Binding uint32
	Kind    ResourceKind
	// ReadOnly is false for storage bindings the shader writes.
	ReadOnly bool
}

// PipelineReflection is the binding and constant layout of a pipeline, as
// reported by the shader library collaborator.
type PipelineReflection struct {
	Bindings []BindingReflection
	// ConstantIndices maps function-constant names to specialization
	// constant IDs.
	ConstantIndices map[string]uint32
}
