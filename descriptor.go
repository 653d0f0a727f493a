// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package framegraph

import "github.com/gogpu/gputypes"

// StorageMode selects where a resource's memory lives.
type StorageMode uint8

// Storage modes.
const (
	// StoragePrivate is device-local memory, inaccessible to the host.
	StoragePrivate StorageMode = iota
	// StorageShared is host-visible, host-coherent memory.
	StorageShared
	// StorageManaged is host-visible memory with explicit flushes
	// (BufferDidModifyRange).
	StorageManaged
)

// TextureDescriptor holds the creation-time parameters of a texture.
type TextureDescriptor struct {
	Width  uint32
	Height uint32
	Depth  uint32

	MipLevels   uint32
	ArrayLength uint32
	SampleCount uint32

	Format  gputypes.TextureFormat
	Usage   gputypes.TextureUsage
	Storage StorageMode
}

// Normalized returns a copy with zero-valued dimension fields clamped to 1,
// matching what the backend will actually create.
func (d TextureDescriptor) Normalized() TextureDescriptor {
	if d.Depth == 0 {
		d.Depth = 1
	}
	if d.MipLevels == 0 {
		d.MipLevels = 1
	}
	if d.ArrayLength == 0 {
		d.ArrayLength = 1
	}
	if d.SampleCount == 0 {
		d.SampleCount = 1
	}
	return d
}

// BufferDescriptor holds the creation-time parameters of a buffer.
type BufferDescriptor struct {
	Size    uint64
	Usage   gputypes.BufferUsage
	Storage StorageMode
}

// Range is a byte range within a buffer.
type Range struct {
	Offset uint64
	Size   uint64
}

// Empty reports whether the range covers no bytes.
func (r Range) Empty() bool { return r.Size == 0 }

// SamplerDescriptor holds the creation-time parameters of a sampler.
type SamplerDescriptor struct {
	MinFilter    gputypes.FilterMode
	MagFilter    gputypes.FilterMode
	MipFilter    gputypes.FilterMode
	AddressModeU gputypes.AddressMode
	AddressModeV gputypes.AddressMode
	AddressModeW gputypes.AddressMode
	Compare      gputypes.CompareFunction
	MaxAnisotropy uint32
}
